package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("create a enum of string", func(t *testing.T) {
		type EnumString string

		bar := New(EnumString("BAR"))
		foo := New(EnumString("FOO"))
		require.Equal(t, bar, EnumString("BAR"))

		v, err := ToEnum[EnumString]("BAR")
		require.NoError(t, err)
		require.Equal(t, v, bar)

		_, err = ToEnum[EnumString]("bar")
		require.Error(t, err)

		require.Equal(t, []EnumString{bar, foo}, All[EnumString]())
	})

	t.Run("unregistered enum type", func(t *testing.T) {
		type EnumUnknown string

		_, err := ToEnum[EnumUnknown]("anything")
		require.Error(t, err)
		require.Nil(t, All[EnumUnknown]())
	})
}
