package utilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/tailgen/internal/css"
	"github.com/yacobolo/tailgen/internal/theme"
)

func TestDefaultRegistry_ExamplesDispatchToOwner(t *testing.T) {
	reg := Default(theme.Default())

	for _, p := range reg.Parsers() {
		require.NotEmpty(t, p.Examples(), "parser %s has no examples", p.Name())
		for _, example := range p.Examples() {
			base, negative := example, false
			if len(base) > 1 && base[0] == '-' {
				base, negative = base[1:], true
			}

			owner, props, ok := reg.Match(base, negative)
			if !assert.True(t, ok, "%s: example %q did not resolve", p.Name(), example) {
				continue
			}
			assert.Equal(t, p.Name(), owner.Name(), "example %q", example)
			assert.NotEmpty(t, props, "example %q", example)
		}
	}
}

func TestDefaultRegistry_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Default(nil).Parsers() {
		assert.False(t, seen[p.Name()], "duplicate parser name %s", p.Name())
		seen[p.Name()] = true
	}
}

func TestDefaultRegistry_SharedPrefixes(t *testing.T) {
	reg := Default(theme.Default())

	tests := []struct {
		token string
		owner string
	}{
		{"bg-gradient-to-r", "gradient-direction"},
		{"bg-center", "background-position"},
		{"bg-red-500", "color"},
		{"bg-none", "background-image"},
		{"text-red-500", "color"},
		{"text-sm", "font-size"},
		{"text-center", "text-align"},
		{"text-shadow-md", "text-shadow"},
		{"border-red-500", "color"},
		{"border-2", "border-width"},
		{"border-dashed", "border-style"},
		{"border-collapse", "table-layout"},
		{"border-spacing-2", "border-spacing"},
		{"ring-blue-500", "color"},
		{"ring-2", "ring"},
		{"shadow-red-500", "color"},
		{"shadow-lg", "box-shadow"},
		{"divide-x-2", "divide"},
		{"divide-gray-100", "divide-color"},
		{"font-bold", "font-weight"},
		{"font-mono", "font-family"},
		{"stroke-red-500", "color"},
		{"stroke-2", "stroke-width"},
		{"fill-none", "svg-paint"},
		{"decoration-red-500", "color"},
		{"decoration-2", "text-decoration-thickness"},
		{"flex", "display"},
		{"flex-1", "flex"},
		{"flex-col", "flex-direction"},
		{"grid", "display"},
		{"grid-cols-3", "grid-template-columns"},
		{"table", "display"},
		{"table-fixed", "table-layout"},
		{"hidden", "display"},
		{"content-center", "align-content"},
		{"content-none", "content"},
		{"break-words", "word-break"},
		{"break-after-page", "break"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			owner, _, ok := reg.Match(tt.token, false)
			require.True(t, ok)
			assert.Equal(t, tt.owner, owner.Name())
		})
	}
}

func TestRegistry_Parse(t *testing.T) {
	reg := Default(theme.Default())

	tests := []struct {
		name     string
		token    string
		negative bool
		want     []css.Property
	}{
		{
			name:  "padding",
			token: "p-4",
			want:  []css.Property{css.Prop("padding", "1rem")},
		},
		{
			name:  "padding axis expands to two properties",
			token: "px-4",
			want:  []css.Property{css.Prop("padding-left", "1rem"), css.Prop("padding-right", "1rem")},
		},
		{
			name:     "negative margin",
			token:    "mt-2",
			negative: true,
			want:     []css.Property{css.Prop("margin-top", "-0.5rem")},
		},
		{
			name:  "color with opacity",
			token: "bg-blue-500/50",
			want:  []css.Property{css.Prop("background-color", "rgba(59, 130, 246, 0.5)")},
		},
		{
			name:  "arbitrary color",
			token: "text-[#333]",
			want:  []css.Property{css.Prop("color", "#333")},
		},
		{
			name:  "arbitrary width",
			token: "w-[320px]",
			want:  []css.Property{css.Prop("width", "320px")},
		},
		{
			name:  "fraction width",
			token: "w-1/2",
			want:  []css.Property{css.Prop("width", "50%")},
		},
		{
			name:  "font size carries line height",
			token: "text-sm",
			want:  []css.Property{css.Prop("font-size", "0.875rem"), css.Prop("line-height", "1.25rem")},
		},
		{
			name:  "arbitrary underscore becomes space",
			token: "grid-cols-[200px_1fr]",
			want:  []css.Property{css.Prop("grid-template-columns", "200px 1fr")},
		},
		{
			name:     "negative rotate",
			token:    "rotate-45",
			negative: true,
			want:     []css.Property{css.Prop("transform", "rotate(-45deg)")},
		},
		{
			name:  "scale",
			token: "scale-105",
			want:  []css.Property{css.Prop("transform", "scale(1.05)")},
		},
		{
			name:  "blur default",
			token: "blur",
			want:  []css.Property{css.Prop("filter", "blur(8px)")},
		},
		{
			name:  "backdrop blur",
			token: "backdrop-blur-sm",
			want:  []css.Property{css.Prop("backdrop-filter", "blur(4px)")},
		},
		{
			name:  "opacity",
			token: "opacity-50",
			want:  []css.Property{css.Prop("opacity", "0.5")},
		},
		{
			name:  "hidden",
			token: "hidden",
			want:  []css.Property{css.Prop("display", "none")},
		},
		{
			name:  "inset fraction",
			token: "left-1/2",
			want:  []css.Property{css.Prop("left", "50%")},
		},
		{
			name:  "z index",
			token: "z-10",
			want:  []css.Property{css.Prop("z-index", "10")},
		},
		{
			name:  "duration",
			token: "duration-300",
			want:  []css.Property{css.Prop("transition-duration", "300ms")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Parse(tt.token, tt.negative)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_ParseUnknown(t *testing.T) {
	reg := Default(theme.Default())

	for _, token := range []string{"not-a-class", "bg-nonexistent-500", "p-banana", "w-[red]", "-p-4"} {
		t.Run(token, func(t *testing.T) {
			base, negative := token, false
			if token[0] == '-' {
				base, negative = token[1:], true
			}
			_, err := reg.Parse(base, negative)
			var unknown *UnknownClassError
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, base, unknown.Base)
		})
	}
}

func TestRegistry_ParseDoesNotAliasTables(t *testing.T) {
	reg := Default(theme.Default())

	first, err := reg.Parse("sr-only", false)
	require.NoError(t, err)
	first[0].Value = "mutated"

	second, err := reg.Parse("sr-only", false)
	require.NoError(t, err)
	assert.Equal(t, "absolute", second[0].Value)
}

func TestScope(t *testing.T) {
	reg := Default(theme.Default())

	tests := []struct {
		token string
		want  string
	}{
		{"space-x-4", spaceBetweenSelector},
		{"divide-y", spaceBetweenSelector},
		{"divide-red-500", spaceBetweenSelector},
		{"placeholder-gray-400", "::placeholder"},
		{"bg-red-500", ""},
		{"p-4", ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			p, _, ok := reg.Match(tt.token, false)
			require.True(t, ok)
			assert.Equal(t, tt.want, Scope(p, tt.token))
		})
	}
}

func TestCustomRegistryOrder(t *testing.T) {
	always := &funcParser{
		name:     "always",
		prefixes: []string{"p-"},
		parse: func(string, bool) ([]css.Property, bool) {
			return []css.Property{css.Prop("x", "y")}, true
		},
	}
	th := theme.Default()

	first := New(append([]Parser{always}, spacingParsers(th)...)...)
	owner, _, ok := first.Match("p-4", false)
	require.True(t, ok)
	assert.Equal(t, "always", owner.Name())

	last := New(append(spacingParsers(th), always)...)
	owner, _, ok = last.Match("p-4", false)
	require.True(t, ok)
	assert.Equal(t, "padding", owner.Name())
}
