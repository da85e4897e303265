package authenticator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestStorageKey(t *testing.T) {
	key := StorageKey("https://id.unipoint.vn", "unipoint-app")
	require.Equal(t, "oidc.user:https://id.unipoint.vn:unipoint-app", key)
}

func TestTokenStorage_RoundTrip(t *testing.T) {
	storage := NewTokenStorage(t.TempDir())
	key := StorageKey("https://id.unipoint.vn", "unipoint-app")

	sess := &session{
		Token: &oauth2.Token{
			AccessToken:  "access",
			RefreshToken: "refresh",
			Expiry:       time.Now().Add(time.Hour).Truncate(time.Second),
		},
		IDToken: "raw-id-token",
	}
	require.NoError(t, storage.Store(key, sess))

	loaded, err := storage.Load(key)
	require.NoError(t, err)
	require.Equal(t, "access", loaded.Token.AccessToken)
	require.Equal(t, "raw-id-token", loaded.IDToken)
}

func TestTokenStorage_Clear(t *testing.T) {
	storage := NewTokenStorage(t.TempDir())
	key := StorageKey("https://id.unipoint.vn", "unipoint-app")

	require.NoError(t, storage.Store(key, &session{IDToken: "x"}))
	require.NoError(t, storage.Clear(key))

	_, err := storage.Load(key)
	require.Error(t, err)

	// Clearing an absent entry is not an error.
	require.NoError(t, storage.Clear(key))
}
