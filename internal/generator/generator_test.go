package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yacobolo/tailgen/internal/css"
	"github.com/yacobolo/tailgen/internal/theme"
	"github.com/yacobolo/tailgen/internal/utilities"
)

func TestAddClass_Idempotent(t *testing.T) {
	g := New()

	require.NoError(t, g.AddClass("p-4"))
	once := g.GenerateCSS()

	require.NoError(t, g.AddClass("p-4"))
	assert.Equal(t, 1, g.RuleCount())
	assert.Equal(t, once, g.GenerateCSS())
}

func TestGenerateCSS_Deterministic(t *testing.T) {
	tokens := []string{"p-4", "md:px-2", "hover:bg-red-500", "text-sm", "dark:text-white", "w-1/2"}

	build := func() string {
		g := New()
		for _, tok := range tokens {
			require.NoError(t, g.AddClass(tok))
		}
		return g.GenerateCSS()
	}

	assert.Equal(t, build(), build())
}

func TestAddClass_AxisExpansion(t *testing.T) {
	g := New()
	require.NoError(t, g.AddClass("px-4"))
	require.NoError(t, g.AddClass("p-4"))

	px, ok := g.Rule("px-4")
	require.True(t, ok)
	assert.Equal(t, []css.Property{
		css.Prop("padding-left", "1rem"),
		css.Prop("padding-right", "1rem"),
	}, px.Properties)

	p, ok := g.Rule("p-4")
	require.True(t, ok)
	assert.Equal(t, []css.Property{css.Prop("padding", "1rem")}, p.Properties)
}

func TestAddClass_OpacitySuffix(t *testing.T) {
	g := New()
	require.NoError(t, g.AddClass("bg-blue-500/50"))
	require.NoError(t, g.AddClass("bg-blue-500"))

	withAlpha, _ := g.Rule("bg-blue-500/50")
	assert.Equal(t, "rgba(59, 130, 246, 0.5)", withAlpha.Properties[0].Value)
	assert.Equal(t, `.bg-blue-500\/50`, withAlpha.Selector)

	plain, _ := g.Rule("bg-blue-500")
	assert.Equal(t, "#3b82f6", plain.Properties[0].Value)
}

func TestAddClass_UnknownToken(t *testing.T) {
	g := New()
	require.NoError(t, g.AddClass("p-4"))

	err := g.AddClass("not-a-real-class")
	require.Error(t, err)

	var cge *ClassGenerationError
	require.ErrorAs(t, err, &cge)
	assert.Equal(t, "not-a-real-class", cge.Token)
	assert.True(t, errors.Is(err, ErrUnknownClass))
	assert.Contains(t, err.Error(), "not-a-real-class")
	assert.Equal(t, 1, g.RuleCount())
}

func TestAddClass_HoverScenario(t *testing.T) {
	g := New()
	for _, tok := range []string{"p-4", "bg-blue-500", "hover:bg-blue-600"} {
		require.NoError(t, g.AddClass(tok))
	}

	out := g.GenerateCSS()
	assert.Contains(t, out, ".p-4 {")
	assert.Contains(t, out, ".bg-blue-500 {")
	assert.Contains(t, out, `.hover\:bg-blue-600:hover {`)

	p, _ := g.Rule("p-4")
	bg, _ := g.Rule("bg-blue-500")
	hover, _ := g.Rule("hover:bg-blue-600")
	assert.Greater(t, hover.Specificity, p.Specificity)
	assert.Greater(t, hover.Specificity, bg.Specificity)

	// Higher weight sorts later.
	assert.Greater(t, strings.Index(out, `.hover\:bg-blue-600`), strings.Index(out, ".bg-blue-500 {"))
}

func TestAddClass_Variants(t *testing.T) {
	tests := []struct {
		token       string
		selector    string
		media       string
		specificity uint32
	}{
		{"p-4", ".p-4", "", 10},
		{"md:p-4", `.md\:p-4`, "(min-width: 768px)", 20},
		{"dark:md:hover:p-4", `.dark\:md\:hover\:p-4:hover`, "(prefers-color-scheme: dark) and (min-width: 768px)", 40},
		{"group-hover:text-white", `.group:hover .group-hover\:text-white`, "", 20},
		{"peer-checked:bg-red-500", `.peer:checked ~ .peer-checked\:bg-red-500`, "", 20},
		{"before:p-4", `.before\:p-4::before`, "", 20},
		{"placeholder-gray-400", `.placeholder-gray-400::placeholder`, "", 10},
		{"space-x-4", `.space-x-4 > :not([hidden]) ~ :not([hidden])`, "", 10},
		{"hover:space-y-2", `.hover\:space-y-2:hover > :not([hidden]) ~ :not([hidden])`, "", 20},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			g := New()
			require.NoError(t, g.AddClass(tt.token))

			r, ok := g.Rule(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.selector, r.Selector)
			assert.Equal(t, tt.media, r.MediaQuery)
			assert.Equal(t, tt.specificity, r.Specificity)
		})
	}
}

func TestAddClass_ImportantAndNegative(t *testing.T) {
	g := New()
	require.NoError(t, g.AddClass("!p-4"))
	require.NoError(t, g.AddClass("-mt-2"))

	imp, _ := g.Rule("!p-4")
	assert.True(t, imp.Properties[0].Important)
	assert.Equal(t, `.\!p-4`, imp.Selector)

	neg, _ := g.Rule("-mt-2")
	assert.Equal(t, "-0.5rem", neg.Properties[0].Value)
}

func TestAddClassesForElement_GradientBatch(t *testing.T) {
	tokens := []string{"from-blue-500", "to-red-500", "bg-gradient-to-r"}

	batch := New()
	require.NoError(t, batch.AddClassesForElement(tokens))
	require.Equal(t, 1, batch.RuleCount())

	r, ok := batch.Rule("bg-gradient-to-r")
	require.True(t, ok)
	assert.Equal(t, []css.Property{
		css.Prop("background-image", "linear-gradient(to right, #3b82f6, #ef4444)"),
	}, r.Properties)
	_, ok = batch.Rule("from-blue-500")
	assert.False(t, ok)

	single := New()
	for _, tok := range tokens {
		require.NoError(t, single.AddClass(tok))
	}
	require.Equal(t, 3, single.RuleCount())

	from, _ := single.Rule("from-blue-500")
	assert.Equal(t, "--tw-gradient-from", from.Properties[0].Name)
	dir, _ := single.Rule("bg-gradient-to-r")
	assert.Contains(t, dir.Properties[1].Value, "var(--tw-gradient-stops)")
}

func TestAddClassesForElement_GradientVariants(t *testing.T) {
	g := New()
	require.NoError(t, g.AddClassesForElement([]string{
		"from-blue-500", "via-white", "hover:to-red-500", "bg-gradient-to-b", "p-4",
	}))

	// Hover stop stays in single mode; the plain stops are folded in.
	assert.Equal(t, 3, g.RuleCount())
	dir, _ := g.Rule("bg-gradient-to-b")
	assert.Equal(t, "linear-gradient(to bottom, #3b82f6, #fff, transparent)", dir.Properties[0].Value)
	hover, ok := g.Rule("hover:to-red-500")
	require.True(t, ok)
	assert.Equal(t, "--tw-gradient-to", hover.Properties[0].Name)
}

func TestAddClassesForElement_StopsWithoutDirection(t *testing.T) {
	g := New()
	require.NoError(t, g.AddClassesForElement([]string{"from-blue-500", "to-red-500"}))
	assert.Equal(t, 2, g.RuleCount())
}

func TestAddClassesForElement_NoLeakBetweenCalls(t *testing.T) {
	g := New()
	require.NoError(t, g.AddClassesForElement([]string{"from-blue-500", "bg-gradient-to-r"}))
	require.NoError(t, g.AddClassesForElement([]string{"bg-gradient-to-l"}))

	r, _ := g.Rule("bg-gradient-to-l")
	assert.Equal(t, "linear-gradient(to left, transparent, transparent)", r.Properties[0].Value)
}

func TestAddClassesForElement_FailFast(t *testing.T) {
	g := New()
	err := g.AddClassesForElement([]string{"p-4", "bogus-token", "m-2"})
	require.Error(t, err)

	var cge *ClassGenerationError
	require.ErrorAs(t, err, &cge)
	assert.Equal(t, "bogus-token", cge.Token)

	_, ok := g.Rule("p-4")
	assert.True(t, ok)
	_, ok = g.Rule("m-2")
	assert.False(t, ok)
}

func TestAddCSSSelector(t *testing.T) {
	g := New()
	g.AddCSSSelector(".btn > span", "color: red; background: url(a;b.png); broken")

	r, ok := g.Rule(".btn > span")
	require.True(t, ok)
	assert.Equal(t, SpecificityRaw, r.Specificity)
	assert.Equal(t, []css.Property{
		css.Prop("color", "red"),
		css.Prop("background", "url(a;b.png)"),
	}, r.Properties)
}

func TestAddResponsiveClass(t *testing.T) {
	g := New()
	require.NoError(t, g.AddResponsiveClass("lg", "hover:p-4"))

	r, ok := g.Rule("lg:hover:p-4")
	require.True(t, ok)
	assert.Equal(t, SpecificityResponsive, r.Specificity)
	assert.Equal(t, "(min-width: 1024px)", r.MediaQuery)
	assert.Equal(t, `.lg\:hover\:p-4:hover`, r.Selector)

	err := g.AddResponsiveClass("huge", "p-4")
	assert.ErrorIs(t, err, ErrUnknownBreakpoint)
}

func TestAddCustomProperty(t *testing.T) {
	g := New()
	g.AddCustomProperty("brand", "#123456")
	g.AddCustomProperty("--gap", "4px")
	g.AddCustomProperty("brand", "#654321")

	require.Equal(t, 1, g.RuleCount())
	r, _ := g.Rule(":root")
	assert.Equal(t, []css.Property{
		css.Prop("--brand", "#654321"),
		css.Prop("--gap", "4px"),
	}, r.Properties)
}

func TestRemoveAndUpdateRule(t *testing.T) {
	g := New()
	require.NoError(t, g.AddClass("p-4"))
	require.NoError(t, g.AddClass("m-2"))

	assert.True(t, g.UpdateRule("p-4", []css.Property{css.Prop("padding", "3px")}))
	assert.False(t, g.UpdateRule("missing", nil))

	rules := g.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, ".p-4", rules[0].Selector)
	assert.Equal(t, "3px", rules[0].Properties[0].Value)

	assert.True(t, g.RemoveRule("p-4"))
	assert.False(t, g.RemoveRule("p-4"))
	assert.Equal(t, 1, g.RuleCount())
}

func TestGenerateCSS_Format(t *testing.T) {
	g := New()
	require.NoError(t, g.AddClass("px-4"))
	require.NoError(t, g.AddClass("md:p-2"))

	want := ".px-4 {\n" +
		"  padding-left: 1rem;\n" +
		"  padding-right: 1rem;\n" +
		"}\n" +
		"\n" +
		"@media (min-width: 768px) {\n" +
		"  .md\\:p-2 {\n" +
		"    padding: 0.5rem;\n" +
		"  }\n" +
		"}\n"
	assert.Equal(t, want, g.GenerateCSS())

	assert.Equal(t,
		".px-4{padding-left:1rem;padding-right:1rem}@media (min-width: 768px){.md\\:p-2{padding:0.5rem}}",
		g.GenerateMinifiedCSS())
}

func TestWithOptions(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	th := theme.Default()
	th.Colors["brand"] = map[string]string{"500": "#112233"}

	g := New(WithTheme(th), WithLogger(zap.New(core)))
	require.NoError(t, g.AddClass("text-brand-500"))
	r, _ := g.Rule("text-brand-500")
	assert.Equal(t, "#112233", r.Properties[0].Value)

	entries := logs.FilterMessage("rule added").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "generator", entries[0].LoggerName)

	custom := New(WithRegistry(utilities.New()))
	assert.ErrorIs(t, custom.AddClass("p-4"), ErrUnknownClass)
}

func TestMerge(t *testing.T) {
	a := New()
	require.NoError(t, a.AddClass("p-4"))
	b := New()
	require.NoError(t, b.AddClass("m-2"))
	require.NoError(t, b.AddClass("p-4"))

	a.Merge(b)
	rules := a.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, ".p-4", rules[0].Selector)
	assert.Equal(t, ".m-2", rules[1].Selector)
}
