package authenticator

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)
	return raw
}

func TestParseClaims(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"sub":        "user-1",
		"email":      "an@uni.edu.vn",
		"name":       "An Nguyen",
		"user_type":  "STUDENT",
		"university": "uni-1",
	})

	claims, err := parseClaims(raw)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "an@uni.edu.vn", claims.Email)
	require.Equal(t, "STUDENT", claims.Attributes.UserType)
	require.Equal(t, "uni-1", claims.Attributes.University)
}

func TestParseClaims_MissingAttributes(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{"sub": "user-2"})

	claims, err := parseClaims(raw)
	require.NoError(t, err)
	require.Equal(t, "user-2", claims.Subject)
	require.Empty(t, claims.Attributes.UserType)
	require.Empty(t, claims.Attributes.University)
}

func TestParseClaims_Garbage(t *testing.T) {
	_, err := parseClaims("not-a-token")
	require.Error(t, err)
}
