package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	require.Equal(t, "0912345678", NormalizePhone("0912-345-678"))
	require.Equal(t, "0912345678", NormalizePhone("091 234 5678"))
	require.Equal(t, "0912345678", NormalizePhone("0912345678"))
	require.Equal(t, "", NormalizePhone("abc"))
}

func TestValidPhone(t *testing.T) {
	valid := []string{
		"0312345678",
		"0512345678",
		"0712345678",
		"0812345678",
		"0912345678",
		"0912-345-678", // normalized before matching
		"091 234 5678",
	}
	for _, phone := range valid {
		require.True(t, ValidPhone(phone), phone)
	}

	invalid := []string{
		"0212345678",  // 02 is not a mobile prefix
		"091234567",   // 9 digits
		"09123456789", // 11 digits
		"+84912345678",
		"",
	}
	for _, phone := range invalid {
		require.False(t, ValidPhone(phone), phone)
	}
}
