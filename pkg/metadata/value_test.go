package metadata_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propkit/propkit/pkg/metadata"
)

func TestValueDowncasts(t *testing.T) {
	t.Parallel()
	t.Run("unboxes matching kind", func(t *testing.T) {
		s, err := metadata.String("hello").AsString()
		require.NoError(t, err)
		assert.Equal(t, "hello", s)

		i, err := metadata.Int(42).AsInt()
		require.NoError(t, err)
		assert.Equal(t, int64(42), i)

		f, err := metadata.Float(3.5).AsFloat()
		require.NoError(t, err)
		assert.Equal(t, 3.5, f)

		b, err := metadata.Bool(true).AsBool()
		require.NoError(t, err)
		assert.True(t, b)

		now := time.Now()
		tm, err := metadata.Time(now).AsTime()
		require.NoError(t, err)
		assert.True(t, now.Equal(tm))
	})

	t.Run("fails on kind mismatch", func(t *testing.T) {
		_, err := metadata.Int(42).AsString()
		assert.ErrorIs(t, err, metadata.ErrTypeMismatch)

		_, err = metadata.String("42").AsInt()
		assert.ErrorIs(t, err, metadata.ErrTypeMismatch)
	})

	t.Run("null unboxes to zero payload without error", func(t *testing.T) {
		i, err := metadata.Null(metadata.KindInt).AsInt()
		require.NoError(t, err)
		assert.Equal(t, int64(0), i)
	})
}

func TestValueIsZero(t *testing.T) {
	t.Parallel()
	t.Run("zero payloads are default", func(t *testing.T) {
		assert.True(t, metadata.Int(0).IsZero())
		assert.True(t, metadata.String("").IsZero())
		assert.True(t, metadata.Float(0).IsZero())
		assert.True(t, metadata.Bool(false).IsZero())
		assert.True(t, metadata.Time(time.Time{}).IsZero())
	})

	t.Run("null is default", func(t *testing.T) {
		assert.True(t, metadata.Null(metadata.KindString).IsZero())
	})

	t.Run("non-zero payloads are not default", func(t *testing.T) {
		assert.False(t, metadata.Int(1).IsZero())
		assert.False(t, metadata.String("x").IsZero())
		assert.False(t, metadata.Bool(true).IsZero())
	})
}

func TestValueEqual(t *testing.T) {
	t.Parallel()
	t.Run("same kind and payload are equal", func(t *testing.T) {
		assert.True(t, metadata.Int(7).Equal(metadata.Int(7)))
		assert.True(t, metadata.Null(metadata.KindInt).Equal(metadata.Null(metadata.KindInt)))
	})

	t.Run("different kinds are never equal", func(t *testing.T) {
		assert.False(t, metadata.Int(0).Equal(metadata.Float(0)))
		assert.False(t, metadata.Null(metadata.KindInt).Equal(metadata.Null(metadata.KindString)))
	})

	t.Run("null differs from zero payload", func(t *testing.T) {
		assert.False(t, metadata.Null(metadata.KindInt).Equal(metadata.Int(0)))
	})
}

func TestValueFormat(t *testing.T) {
	t.Parallel()
	t.Run("invariant rendering", func(t *testing.T) {
		assert.Equal(t, "0", metadata.Int(0).Format())
		assert.Equal(t, "1000000", metadata.Int(1000000).Format())
		assert.Equal(t, "2.5", metadata.Float(2.5).Format())
		assert.Equal(t, "true", metadata.Bool(true).Format())
		assert.Equal(t, "hello", metadata.String("hello").Format())
		assert.Equal(t, "null", metadata.Null(metadata.KindFloat).Format())
	})

	t.Run("time renders as RFC 3339", func(t *testing.T) {
		tm := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, "2024-06-01T12:00:00Z", metadata.Time(tm).Format())
	})
}

func TestValueNative(t *testing.T) {
	t.Parallel()
	t.Run("returns natural Go types", func(t *testing.T) {
		assert.Equal(t, int64(5), metadata.Int(5).Native())
		assert.Equal(t, "a", metadata.String("a").Native())
		assert.Equal(t, 1.5, metadata.Float(1.5).Native())
		assert.Equal(t, true, metadata.Bool(true).Native())
	})

	t.Run("null is nil", func(t *testing.T) {
		assert.Nil(t, metadata.Null(metadata.KindBool).Native())
	})
}

func TestKindFromString(t *testing.T) {
	t.Parallel()
	t.Run("resolves known kinds", func(t *testing.T) {
		for _, name := range []string{"string", "int", "float", "bool", "time"} {
			k, ok := metadata.KindFromString(name)
			require.True(t, ok, name)
			assert.Equal(t, name, k.String())
		}
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, ok := metadata.KindFromString("decimal")
		assert.False(t, ok)
	})
}
