package generator

import (
	"github.com/yacobolo/tailgen/internal/css"
	"github.com/yacobolo/tailgen/internal/variant"
)

// Specificity weights. These order output blocks; they are not CSS
// cascade specificity.
const (
	SpecificityRaw        uint32 = 0
	SpecificityPlain      uint32 = 10
	SpecificityResponsive uint32 = 20
	specificityPerVariant uint32 = 10
)

// assemble builds the rule for token from its resolution and declarations.
// scope is the parser's descendant or pseudo-element suffix, if any.
func assemble(token string, res variant.Resolution, props []css.Property, scope string) css.Rule {
	prefix, suffix := variant.SelectorParts(res.Variants)

	out := make([]css.Property, len(props))
	copy(out, props)
	if res.Important {
		for i := range out {
			out[i].Important = true
		}
	}

	return css.Rule{
		Selector:    prefix + css.ClassSelector(token) + suffix + scope,
		Properties:  out,
		MediaQuery:  variant.MediaQuery(res.Variants),
		Specificity: specificity(res.Variants),
	}
}

func specificity(variants []variant.Variant) uint32 {
	if len(variants) == 0 {
		return SpecificityPlain
	}
	return uint32(len(variants))*specificityPerVariant + SpecificityPlain
}
