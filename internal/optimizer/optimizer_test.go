package optimizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/tailgen/internal/css"
	"github.com/yacobolo/tailgen/internal/generator"
)

func entry(key, selector string, props ...css.Property) css.Entry {
	return css.Entry{Key: key, Rule: css.Rule{Selector: selector, Properties: props}}
}

func TestRemoveEmptyRules(t *testing.T) {
	in := []css.Entry{
		entry("a", ".a", css.Prop("color", "red")),
		entry("b", ".b"),
		entry("c", ".c", css.Prop("margin", "0")),
	}

	out, removed := removeEmptyRules(in)
	assert.Equal(t, 1, removed)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Key)
	assert.Equal(t, "c", out[1].Key)
}

func TestRemoveDuplicateProperties_FirstWins(t *testing.T) {
	in := []css.Entry{entry("a", ".a",
		css.Prop("color", "red"),
		css.Prop("margin", "0"),
		css.Prop("color", "blue"),
	)}

	out, removed := removeDuplicateProperties(in)
	assert.Equal(t, 1, removed)
	assert.Equal(t, []css.Property{css.Prop("color", "red"), css.Prop("margin", "0")}, out[0].Rule.Properties)
	// Input is untouched.
	assert.Len(t, in[0].Rule.Properties, 3)
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0px", "0"},
		{"0rem", "0"},
		{"0.0em", "0"},
		{"0%", "0%"},
		{"0px 1px 0em 2px", "0 1px 0 2px"},
		{"1.0rem", "1rem"},
		{"2.0", "2"},
		{"2.50", "2.50"},
		{"10px", "10px"},
		{"translate(0px, 0px)", "translate(0, 0)"},
		{"calc(100% - 0px)", "calc(100% - 0px)"},
		{"rgb(0 0 0 / 0.05)", "rgb(0 0 0 / 0.05)"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeValue(tt.in))
		})
	}
}

func TestOptimizeProperties_SkipsCustomProperties(t *testing.T) {
	in := []css.Entry{entry("a", ".a", css.Prop("--x", "0px"), css.Prop("margin", "0px"))}

	out, changed := optimizeProperties(in)
	assert.Equal(t, 1, changed)
	assert.Equal(t, "0px", out[0].Rule.Properties[0].Value)
	assert.Equal(t, "0", out[0].Rule.Properties[1].Value)
}

func TestMergeRules(t *testing.T) {
	in := []css.Entry{
		entry("1", ".a", css.Prop("color", "red")),
		entry("2", ".b", css.Prop("margin", "0")),
		entry("3", ".a", css.Prop("color", "blue"), css.Prop("padding", "1px")),
		{Key: "4", Rule: css.Rule{Selector: ".a", MediaQuery: "print", Properties: []css.Property{css.Prop("color", "black")}}},
	}

	out, merged := mergeRules(in)
	assert.Equal(t, 1, merged)
	require.Len(t, out, 3)
	assert.Equal(t, "1", out[0].Key)
	assert.Equal(t, []css.Property{css.Prop("color", "red"), css.Prop("padding", "1px")}, out[0].Rule.Properties)
	assert.Equal(t, "print", out[2].Rule.MediaQuery)
	assert.Len(t, in[0].Rule.Properties, 1)
}

func TestSortProperties(t *testing.T) {
	in := []css.Entry{
		entry("a", ".a", css.Prop("z-index", "1"), css.Prop("color", "red")),
		entry("b", ".b", css.Prop("color", "red"), css.Prop("margin", "0")),
	}

	out, changed := sortProperties(in)
	assert.Equal(t, 1, changed)
	assert.Equal(t, "color", out[0].Rule.Properties[0].Name)
	assert.Equal(t, "z-index", in[0].Rule.Properties[0].Name)
}

func TestOptimize_Generator(t *testing.T) {
	g := generator.New()
	require.NoError(t, g.AddClass("p-4"))
	require.NoError(t, g.AddClass("m-0"))
	g.AddCSSSelector(".empty", "")
	g.AddCSSSelector(".dup", "color: red; color: blue; margin: 0px")

	res := New(DefaultConfig(), nil).Optimize(g)

	assert.Equal(t, 4, res.RulesBefore)
	assert.Equal(t, 3, res.RulesAfter)
	assert.Equal(t, 1, res.EmptyRulesRemoved)
	assert.Equal(t, 1, res.DuplicatePropertiesRemoved)
	assert.Equal(t, 2, res.PropertiesOptimized) // m-0 and .dup margin
	assert.Equal(t, 5, res.PropertiesBefore)
	assert.Equal(t, 4, res.PropertiesAfter)
	assert.Less(t, res.OptimizedSize, res.OriginalSize)
	assert.Greater(t, res.ReductionPercent(), 0.0)

	dup, ok := g.Rule(".dup")
	require.True(t, ok)
	assert.Equal(t, []css.Property{css.Prop("color", "red"), css.Prop("margin", "0")}, dup.Properties)
}

func TestOptimize_DisabledPasses(t *testing.T) {
	g := generator.New()
	g.AddCSSSelector(".empty", "")

	res := New(Config{}, nil).Optimize(g)
	assert.Equal(t, 0, res.EmptyRulesRemoved)
	assert.Equal(t, 1, g.RuleCount())
}

func TestReductionPercent(t *testing.T) {
	assert.Equal(t, 0.0, Results{}.ReductionPercent())
	assert.InDelta(t, 25.0, Results{OriginalSize: 100, OptimizedSize: 75}.ReductionPercent(), 0.001)
}

func TestCompressCSS(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "comments and whitespace",
			in:   "/* header */\n.a {\n  color: red;\n}\n",
			want: ".a{color:red}",
		},
		{
			name: "first close ends comment",
			in:   "/* a /* b */ .a { margin: 1px; } /* c */",
			want: ".a{margin:1px}",
		},
		{
			name: "unterminated comment drops the rest",
			in:   ".a{color:red} /* open",
			want: ".a{color:red}",
		},
		{
			name: "hex shortening",
			in:   ".a { color: #ffffff; background: #aabbcc; border-color: #aabbcd; }",
			want: ".a{color:#fff;background:#abc;border-color:#aabbcd}",
		},
		{
			name: "rgb to hex",
			in:   ".a { color: rgb(255, 0, 0); fill: rgb(1, 2, 3); }",
			want: ".a{color:#f00;fill:#010203}",
		},
		{
			name: "rgb out of range untouched",
			in:   ".a{color:rgb(300,0,0)}",
			want: ".a{color:rgb(300,0,0)}",
		},
		{
			name: "zero units",
			in:   ".a { margin: 0px 10px 0em; width: 0.5rem; }",
			want: ".a{margin:0 10px 0;width:0.5rem}",
		},
		{
			name: "media and selectors",
			in:   "@media (min-width: 768px) {\n  .a > .b:hover { padding: 0rem; }\n}",
			want: "@media (min-width:768px){.a>.b:hover{padding:0}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompressCSS(tt.in)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), len(tt.in))
			assert.NotContains(t, got, "/*")
			assert.NotContains(t, got, "*/")
		})
	}
}

func TestCompressLevels(t *testing.T) {
	in := ".a { color: #ffffff; }"
	assert.Equal(t, in, Compress(in, 0))
	assert.Equal(t, ".a{color:#ffffff}", Compress(in, 1))
	assert.Equal(t, ".a{color:#fff}", Compress(in, 2))
}

func TestOptimizeCSS(t *testing.T) {
	in := `/* reset */
.a { color: #ffffff; margin: 0px; }
.a { color: red; padding: 1.0rem }
@font-face { font-family: x; src: url(x.woff); }
@media (min-width: 768px) {
  .b { margin: 0px !important; }
}
.c, .d { display: block }
.broken { color: red
`

	out, err := OptimizeCSS(in)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, ".a{color:#fff;margin:0;padding:1rem}"), out)
	assert.Contains(t, out, "@media (min-width:768px){.b{margin:0!important}}")
	assert.Contains(t, out, ".c")
	assert.Contains(t, out, ".d")
	assert.NotContains(t, out, "font-face")
	assert.NotContains(t, out, "broken")
	assert.NotContains(t, out, "reset")
}

func TestExtract(t *testing.T) {
	entries, err := Extract(strings.NewReader(`.a{color:red;--gap: 4px} @media print { .b { margin: 0 } }`), nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, ".a", entries[0].Rule.Selector)
	assert.Equal(t, css.Prop("color", "red"), entries[0].Rule.Properties[0])
	assert.Equal(t, "--gap", entries[0].Rule.Properties[1].Name)
	assert.Equal(t, "4px", entries[0].Rule.Properties[1].Value)

	assert.Equal(t, ".b", entries[1].Rule.Selector)
	assert.Equal(t, "print", entries[1].Rule.MediaQuery)
	assert.NotEqual(t, entries[0].Key, entries[1].Key)
}

func TestExtract_UnterminatedRule(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		selectors []string
	}{
		{"trailing open block", ".a{color:red} .broken { color: red", []string{".a"}},
		{"trailing open block after semicolon", ".a{color:red}\n.broken { color: red;", []string{".a"}},
		{"closed block", ".a{color:red} .b { color: blue }", []string{".a", ".b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Extract(strings.NewReader(tt.in), nil)
			require.NoError(t, err)

			var got []string
			for _, e := range entries {
				got = append(got, e.Rule.Selector)
			}
			assert.Equal(t, tt.selectors, got)
		})
	}
}
