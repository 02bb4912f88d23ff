package valueobject_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drwave-www/mapbounds/internal/domain/valueobject"
)

func TestPosition_IsValid(t *testing.T) {
	t.Run("accepts in-range coordinates", func(t *testing.T) {
		assert.True(t, valueobject.NewPosition(38.7, -9.1).IsValid())
		assert.True(t, valueobject.NewPosition(-90, -180).IsValid())
		assert.True(t, valueobject.NewPosition(90, 180).IsValid())
	})

	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		assert.False(t, valueobject.NewPosition(90.1, 0).IsValid())
		assert.False(t, valueobject.NewPosition(0, -180.1).IsValid())
	})

	t.Run("rejects NaN and infinity", func(t *testing.T) {
		assert.False(t, valueobject.NewPosition(math.NaN(), 0).IsValid())
		assert.False(t, valueobject.NewPosition(0, math.Inf(1)).IsValid())
	})
}

func TestBoundingBox(t *testing.T) {
	box := valueobject.NewBoundingBox(
		valueobject.NewPosition(10, 20),
		valueobject.NewPosition(14, 30),
	)

	t.Run("derived dimensions", func(t *testing.T) {
		assert.InDelta(t, 10.0, box.Width(), 1e-12)
		assert.InDelta(t, 4.0, box.Height(), 1e-12)
		assert.Equal(t, valueobject.NewPosition(12, 25), box.Center())
	})

	t.Run("contains is an axis-aligned range test", func(t *testing.T) {
		assert.True(t, box.Contains(valueobject.NewPosition(12, 25)))
		assert.True(t, box.Contains(valueobject.NewPosition(10, 20)))
		assert.False(t, box.Contains(valueobject.NewPosition(15, 25)))
		assert.False(t, box.Contains(valueobject.NewPosition(12, 31)))
	})

	t.Run("covers", func(t *testing.T) {
		inner := valueobject.NewBoundingBox(
			valueobject.NewPosition(11, 22),
			valueobject.NewPosition(13, 28),
		)
		assert.True(t, box.Covers(inner))
		assert.False(t, inner.Covers(box))
	})

	t.Run("inverted box is invalid", func(t *testing.T) {
		inverted := valueobject.NewBoundingBox(
			valueobject.NewPosition(14, 30),
			valueobject.NewPosition(10, 20),
		)
		assert.False(t, inverted.IsValid())
	})

	t.Run("inset shrinks inward", func(t *testing.T) {
		shrunk := box.Inset(1, 2)
		assert.Equal(t, valueobject.NewPosition(11, 22), shrunk.Southwest)
		assert.Equal(t, valueobject.NewPosition(13, 28), shrunk.Northeast)
	})

	t.Run("inset past half the span inverts", func(t *testing.T) {
		assert.False(t, box.Inset(3, 0).IsValid())
	})
}
