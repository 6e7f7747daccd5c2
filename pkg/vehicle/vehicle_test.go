package vehicle

import (
	"testing"

	"github.com/golangdaddy/junkyard/pkg/models/part"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInOrder(t *testing.T) {
	var b Build
	assert.Equal(t, 0, b.Len())

	next, ok := b.Next()
	require.True(t, ok)
	assert.Equal(t, part.Chassis, next)

	require.NoError(t, b.Add(part.Chassis, "cart"))
	assert.ErrorIs(t, b.Add(part.Engine, "coffee"), ErrOutOfOrder, "engine before wheels")
	assert.Equal(t, "", b.Engine)
	require.NoError(t, b.Add(part.Wheels, "wheel1"))
	require.NoError(t, b.Add(part.Engine, "coffee"))
	assert.True(t, b.Complete())

	_, ok = b.Next()
	assert.False(t, ok)
	assert.ErrorIs(t, b.Add(part.Engine, "fan"), ErrBuildComplete)
	assert.Equal(t, "coffee", b.Engine)
}

func TestAcceptsDoesNotFill(t *testing.T) {
	b := Build{Chassis: "cart"}
	require.NoError(t, b.Accepts(part.Wheels))
	assert.ErrorIs(t, b.Accepts(part.Chassis), ErrOutOfOrder)
	assert.Equal(t, 1, b.Len())

	full := Build{Chassis: "cart", Wheels: "wheel1", Engine: "coffee"}
	assert.ErrorIs(t, full.Accepts(part.Engine), ErrBuildComplete)
}

func TestMaxSpeed(t *testing.T) {
	c := part.DefaultCatalog()
	b := Build{Chassis: "cart", Wheels: "wheel1", Engine: "coffee"}
	assert.Equal(t, 43.0, b.MaxSpeed(c, 40))

	assert.Equal(t, 40.0, Build{Chassis: "cart"}.MaxSpeed(c, 40))
	assert.Equal(t, 40.0, Build{Chassis: "cart", Wheels: "wheel1", Engine: "???"}.MaxSpeed(c, 40))
}

func TestReplace(t *testing.T) {
	b := Build{Chassis: "cart", Wheels: "wheel1", Engine: "coffee"}
	prev := b.Replace(part.Wheels, "wheel2")
	assert.Equal(t, "wheel1", prev)
	assert.Equal(t, "wheel2", b.Wheels)

	b.Clear()
	assert.Equal(t, Build{}, b)
}
