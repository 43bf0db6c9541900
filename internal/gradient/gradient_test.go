package gradient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/tailgen/internal/css"
)

func testResolver(name string) (string, bool) {
	colors := map[string]string{
		"blue-500": "#3b82f6",
		"red-500":  "#ef4444",
		"white":    "#fff",
	}
	v, ok := colors[name]
	return v, ok
}

func TestParseDirection(t *testing.T) {
	dir, ok := ParseDirection("bg-gradient-to-r")
	require.True(t, ok)
	assert.Equal(t, "to right", dir)

	dir, ok = ParseDirection("bg-gradient-to-tl")
	require.True(t, ok)
	assert.Equal(t, "to top left", dir)

	_, ok = ParseDirection("bg-gradient-to-x")
	assert.False(t, ok)
	_, ok = ParseDirection("bg-blue-500")
	assert.False(t, ok)
}

func TestParseStop(t *testing.T) {
	tests := []struct {
		base  string
		stop  Stop
		color string
		ok    bool
	}{
		{"from-blue-500", From, "#3b82f6", true},
		{"via-white", Via, "#fff", true},
		{"to-red-500", To, "#ef4444", true},
		{"to-nowhere", 0, "", false},
		{"top-4", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			stop, color, ok := ParseStop(tt.base, testResolver)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.stop, stop)
				assert.Equal(t, tt.color, color)
			}
		})
	}
}

func TestSingleClassRendering(t *testing.T) {
	assert.Equal(t, []css.Property{css.Prop("--tw-gradient-from", "#3b82f6")}, StopProperties(From, "#3b82f6"))

	props := DirectionProperties("to right")
	require.Len(t, props, 2)
	assert.Equal(t, "--tw-gradient-stops", props[0].Name)
	assert.Contains(t, props[0].Value, "var(--tw-gradient-to, transparent)")
	assert.Equal(t, "linear-gradient(to right, var(--tw-gradient-stops))", props[1].Value)
}

func TestGradientValidate(t *testing.T) {
	tests := []struct {
		name string
		g    Gradient
		err  error
	}{
		{"no stops", Gradient{Direction: "to right"}, ErrNoStops},
		{"missing from", Gradient{Direction: "to right", To: "#fff"}, ErrMissingFromStop},
		{"missing to", Gradient{Direction: "to right", From: "#fff"}, ErrMissingToStop},
		{"only via", Gradient{Direction: "to right", Via: "#fff"}, ErrMissingFromStop},
		{"complete", Gradient{Direction: "to right", From: "#000", To: "#fff"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.g.Validate(), tt.err)
		})
	}
}

func TestGradientCSS(t *testing.T) {
	g := Gradient{Direction: "to right", From: "#3b82f6", To: "#ef4444"}
	assert.Equal(t, "linear-gradient(to right, #3b82f6, #ef4444)", g.CSS())

	g.Via = "#fff"
	assert.Equal(t, "linear-gradient(to right, #3b82f6, #fff, #ef4444)", g.CSS())

	g = Gradient{Direction: "to bottom", From: "#000"}
	assert.Equal(t, "linear-gradient(to bottom, #000, transparent)", g.CSS())
}

func TestContext(t *testing.T) {
	ctx := NewContext()
	ctx.Set(From, "#000")
	ctx.Set(From, "#111")
	ctx.Set(To, "#fff")

	assert.Equal(t, 2, ctx.Len())
	v, ok := ctx.Get(From)
	require.True(t, ok)
	assert.Equal(t, "#111", v, "last write wins")

	g := ctx.Gradient("to left")
	assert.Equal(t, Gradient{Direction: "to left", From: "#111", To: "#fff"}, g)

	ctx.Clear()
	assert.Equal(t, 0, ctx.Len())
}
