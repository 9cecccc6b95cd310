package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propkit/propkit/pkg/metadata"
	"github.com/propkit/propkit/pkg/validation"
)

func TestExists(t *testing.T) {
	t.Parallel()
	name := metadata.NewProperty("Name", metadata.KindString)
	nickname := metadata.NewProperty("Nickname", metadata.KindString, metadata.Nullable())

	t.Run("fires on a truly absent property", func(t *testing.T) {
		msgs := validation.Exists(name).Evaluate(metadata.NewContainer())
		require.Len(t, msgs, 1)
		assert.Equal(t, "Name is not exists.", msgs[0].Text)
		assert.Equal(t, validation.SeverityError, msgs[0].Severity)
		assert.Equal(t, "Name", msgs[0].PropertyName)
	})

	t.Run("does not fire on a defined value", func(t *testing.T) {
		c := metadata.NewContainer().MustWithValue(name, metadata.String("Alex"))
		assert.Empty(t, validation.Exists(name).Evaluate(c))
	})

	t.Run("stored null counts as existing", func(t *testing.T) {
		c := metadata.NewContainer().MustWithValue(nickname, metadata.Null(metadata.KindString))
		assert.Empty(t, validation.Exists(nickname).Evaluate(c))
	})

	t.Run("default supplier does not count as existing", func(t *testing.T) {
		age := metadata.NewProperty("Age", metadata.KindInt,
			metadata.WithDefault(func() metadata.Value { return metadata.Int(18) }))
		msgs := validation.Exists(age).Evaluate(metadata.NewContainer())
		require.Len(t, msgs, 1)
		assert.Equal(t, "Age is not exists.", msgs[0].Text)
	})

	t.Run("calculator does not count as existing", func(t *testing.T) {
		total := metadata.NewProperty("Total", metadata.KindInt,
			metadata.WithCalculator(func(*metadata.Container) metadata.Value { return metadata.Int(1) }))
		assert.Len(t, validation.Exists(total).Evaluate(metadata.NewContainer()), 1)
	})

	t.Run("value stored in the parent counts as existing", func(t *testing.T) {
		parent := metadata.NewContainer().MustWithValue(name, metadata.String("Parent"))
		child, err := metadata.NewContainer().WithParent(parent)
		require.NoError(t, err)
		assert.Empty(t, validation.Exists(name).Evaluate(child))
	})
}

func TestNotNull(t *testing.T) {
	t.Parallel()
	nickname := metadata.NewProperty("Nickname", metadata.KindString, metadata.Nullable())

	t.Run("fires on a stored null", func(t *testing.T) {
		c := metadata.NewContainer().MustWithValue(nickname, metadata.Null(metadata.KindString))
		msgs := validation.NotNull(nickname).Evaluate(c)
		require.Len(t, msgs, 1)
		assert.Equal(t, "Nickname should not be null.", msgs[0].Text)
	})

	t.Run("skips an absent property", func(t *testing.T) {
		assert.Empty(t, validation.NotNull(nickname).Evaluate(metadata.NewContainer()))
	})

	t.Run("does not fire on a non-null value", func(t *testing.T) {
		c := metadata.NewContainer().MustWithValue(nickname, metadata.String("nick"))
		assert.Empty(t, validation.NotNull(nickname).Evaluate(c))
	})
}

func TestNotDefault(t *testing.T) {
	t.Parallel()
	age := metadata.NewProperty("Age", metadata.KindInt)

	t.Run("fires on the kind default", func(t *testing.T) {
		c := metadata.NewContainer().MustWithValue(age, metadata.Int(0))
		msgs := validation.NotDefault(age).Evaluate(c)
		require.Len(t, msgs, 1)
		assert.Equal(t, "Age should not have default value 0.", msgs[0].Text)
	})

	t.Run("does not fire on a non-default value", func(t *testing.T) {
		c := metadata.NewContainer().MustWithValue(age, metadata.Int(9))
		assert.Empty(t, validation.NotDefault(age).Evaluate(c))
	})

	t.Run("fires for an absent property", func(t *testing.T) {
		assert.Len(t, validation.NotDefault(age).Evaluate(metadata.NewContainer()), 1)
	})

	t.Run("fires regardless of provenance", func(t *testing.T) {
		zeroed := metadata.NewProperty("Zeroed", metadata.KindInt,
			metadata.WithDefault(func() metadata.Value { return metadata.Int(0) }))
		msgs := validation.NotDefault(zeroed).Evaluate(metadata.NewContainer())
		require.Len(t, msgs, 1)
	})
}

func TestShouldBe(t *testing.T) {
	t.Parallel()
	age := metadata.NewProperty("Age", metadata.KindInt)
	over18 := func(v metadata.Value) bool {
		i, _ := v.AsInt()
		return i > 18
	}

	t.Run("fires when the condition rejects the value", func(t *testing.T) {
		c := metadata.NewContainer().MustWithValue(age, metadata.Int(9))
		msgs := validation.ShouldBe(age, over18).Evaluate(c)
		require.Len(t, msgs, 1)
		assert.Equal(t, "Age should match condition but was 9.", msgs[0].Text)
	})

	t.Run("does not fire when the condition accepts", func(t *testing.T) {
		c := metadata.NewContainer().MustWithValue(age, metadata.Int(33))
		assert.Empty(t, validation.ShouldBe(age, over18).Evaluate(c))
	})

	t.Run("silently skips an absent property", func(t *testing.T) {
		assert.Empty(t, validation.ShouldBe(age, over18).Evaluate(metadata.NewContainer()))
	})
}
