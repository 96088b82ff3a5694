package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotKeepsInsertionOrder(t *testing.T) {
	snap := NewSnapshot()
	snap.Add(BodyPosition{Planet: Sun})
	snap.Add(BodyPosition{Planet: Moon})
	snap.Add(BodyPosition{Planet: Rahu})

	assert.Equal(t, []Planet{Sun, Moon, Rahu}, snap.Planets())
	assert.Equal(t, 3, snap.Len())

	_, ok := snap.Get(Moon)
	assert.True(t, ok)
	_, ok = snap.Get(Ketu)
	assert.False(t, ok)
}

// BodyPosition embeds both the ecliptic position and the zodiac placement;
// the plain Longitude selector must resolve to the ecliptic field.
func TestBodyPositionLongitudeIsEcliptic(t *testing.T) {
	bp := BodyPosition{
		Planet:           Moon,
		EclipticPosition: EclipticPosition{Longitude: 120.05},
		Placement:        ClassifyLongitude(120.05),
	}

	assert.Equal(t, 120.05, bp.Longitude)
	assert.Equal(t, "Leo", bp.Sign)
	assert.InDelta(t, 0.05, bp.DegreeInSign, 1e-9)
}

func TestSnapshotReplaceKeepsPosition(t *testing.T) {
	snap := NewSnapshot()
	snap.Add(BodyPosition{Planet: Sun, EclipticPosition: EclipticPosition{Longitude: 10}})
	snap.Add(BodyPosition{Planet: Moon})
	snap.Add(BodyPosition{Planet: Sun, EclipticPosition: EclipticPosition{Longitude: 20}})

	require.Equal(t, []Planet{Sun, Moon}, snap.Planets())
	sun, _ := snap.Get(Sun)
	assert.Equal(t, 20.0, sun.Longitude)
}
