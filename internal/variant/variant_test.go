package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		variants  []Variant
		base      string
		important bool
		negative  bool
	}{
		{
			name:  "plain",
			token: "p-4",
			base:  "p-4",
		},
		{
			name:     "hover",
			token:    "hover:bg-blue-600",
			variants: []Variant{{Kind: PseudoClass, Name: "hover"}},
			base:     "bg-blue-600",
		},
		{
			name:     "stacked responsive and state",
			token:    "md:hover:bg-blue-500/50",
			variants: []Variant{{Kind: Responsive, Name: "md"}, {Kind: PseudoClass, Name: "hover"}},
			base:     "bg-blue-500/50",
		},
		{
			name:     "dark group peer",
			token:    "dark:group-hover:peer-focus:text-white",
			variants: []Variant{{Kind: Dark, Name: "dark"}, {Kind: Group, Name: "group-hover"}, {Kind: Peer, Name: "peer-focus"}},
			base:     "text-white",
		},
		{
			name:  "colon inside brackets is not split",
			token: "bg-[url(http://x/a.png)]",
			base:  "bg-[url(http://x/a.png)]",
		},
		{
			name:     "arbitrary variant",
			token:    "[&>*]:p-2",
			variants: []Variant{{Kind: Arbitrary, Name: "[&>*]"}},
			base:     "p-2",
		},
		{
			name:  "unknown prefix fails open",
			token: "foo:bar",
			base:  "foo:bar",
		},
		{
			name:     "unknown segment after known one rolls back",
			token:    "hover:foo:p-4",
			variants: []Variant{{Kind: PseudoClass, Name: "hover"}},
			base:     "foo:p-4",
		},
		{
			name:  "unbalanced bracket is one segment",
			token: "hover:w-[10px",
			base:  "hover:w-[10px",
		},
		{
			name:      "important and negative",
			token:     "md:!-mt-4",
			variants:  []Variant{{Kind: Responsive, Name: "md"}},
			base:      "mt-4",
			important: true,
			negative:  true,
		},
		{
			name:     "custom markers",
			token:    "motion-safe:rtl:animate-spin",
			variants: []Variant{{Kind: Custom, Name: "motion-safe"}, {Kind: Custom, Name: "rtl"}},
			base:     "animate-spin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.token)
			assert.Equal(t, tt.token, res.Token)
			assert.Equal(t, tt.variants, res.Variants)
			assert.Equal(t, tt.base, res.Base)
			assert.Equal(t, tt.important, res.Important)
			assert.Equal(t, tt.negative, res.Negative)
		})
	}
}

func TestSelectorParts(t *testing.T) {
	tests := []struct {
		token  string
		prefix string
		suffix string
	}{
		{"hover:p-4", "", ":hover"},
		{"before:hover:p-4", "", ":hover::before"},
		{"group-hover:p-4", ".group:hover ", ""},
		{"peer-checked:p-4", ".peer:checked ~ ", ""},
		{"[&>*]:p-4", "", ">*"},
		{"[&_p]:p-4", "", " p"},
		{"[.dark_&]:p-4", ".dark ", ""},
		{"rtl:p-4", `[dir="rtl"] `, ""},
		{"odd:p-4", "", ":nth-child(odd)"},
		{"md:p-4", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			prefix, suffix := SelectorParts(Resolve(tt.token).Variants)
			assert.Equal(t, tt.prefix, prefix)
			assert.Equal(t, tt.suffix, suffix)
		})
	}
}

func TestMediaQuery(t *testing.T) {
	assert.Equal(t, "", MediaQuery(Resolve("hover:p-4").Variants))
	assert.Equal(t, "(min-width: 768px)", MediaQuery(Resolve("md:p-4").Variants))
	assert.Equal(t, "(prefers-color-scheme: dark) and (min-width: 1024px)", MediaQuery(Resolve("dark:lg:p-4").Variants))
	assert.Equal(t, "(prefers-reduced-motion: reduce)", MediaQuery(Resolve("motion-reduce:p-4").Variants))
	assert.Equal(t, "(min-width: 1536px)", BreakpointQuery("2xl"))
	assert.Equal(t, "", BreakpointQuery("huge"))
}

func TestVariantOrderDoesNotChangeSemantics(t *testing.T) {
	tests := []struct {
		a, b  string
		media string
	}{
		{"md:hover:p-4", "hover:md:p-4", "(min-width: 768px)"},
		{"md:print:hidden", "print:md:hidden", "print and (min-width: 768px)"},
		{"dark:print:hover:flex", "hover:print:dark:flex", "print and (prefers-color-scheme: dark)"},
	}

	for _, tt := range tests {
		t.Run(tt.a, func(t *testing.T) {
			a := Resolve(tt.a)
			b := Resolve(tt.b)
			require.Equal(t, a.Base, b.Base)

			prefixA, suffixA := SelectorParts(a.Variants)
			prefixB, suffixB := SelectorParts(b.Variants)
			assert.Equal(t, prefixA, prefixB)
			assert.Equal(t, suffixA, suffixB)
			assert.Equal(t, tt.media, MediaQuery(a.Variants))
			assert.Equal(t, tt.media, MediaQuery(b.Variants))
		})
	}
}
