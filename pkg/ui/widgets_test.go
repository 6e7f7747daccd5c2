package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/junkyard/pkg/input"
	"github.com/golangdaddy/junkyard/pkg/render"
)

func TestButtonHitIncludesEdges(t *testing.T) {
	b := Button{Label: "NEXT", X: 30, Y: 250, W: 100, H: 28}
	in := &input.State{}

	assert.False(t, b.Hit(in))

	in.Click(30, 250)
	assert.True(t, b.Hit(in))

	in.Click(130, 278)
	assert.True(t, b.Hit(in))

	in.Click(131, 260)
	assert.False(t, b.Hit(in))
}

func TestButtonDraw(t *testing.T) {
	r := render.NewRecorder(nil)
	Button{Label: "YES", X: 10, Y: 20, W: 100, H: 30}.Draw(r, true)

	require.Len(t, r.Ops, 2)
	assert.Equal(t, "button", r.Ops[0].Name)
	assert.Equal(t, []string{"YES"}, r.Texts())
	assert.Equal(t, 60.0, r.Ops[1].X)
	assert.Equal(t, 35.0, r.Ops[1].Y)
}

func TestWrapped(t *testing.T) {
	r := render.NewRecorder(nil)
	// the recorder measures six pixels per character
	last := Wrapped(r, "aaa bbb ccc", 0, 10, 42, 16, White, 1)

	assert.Equal(t, []string{"aaa bbb", "ccc"}, r.Texts())
	assert.Equal(t, 26.0, last)
}

func TestDollars(t *testing.T) {
	assert.Equal(t, "$12.00", Dollars(12))
}
