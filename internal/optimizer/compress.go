package optimizer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yacobolo/tailgen/internal/theme"
)

var (
	whitespaceRun   = regexp.MustCompile(`\s+`)
	aroundPunct     = regexp.MustCompile(`\s*([{};:,>])\s*`)
	declarationText = regexp.MustCompile(`:[^;{}]*[;}]`)
	rgbFunction     = regexp.MustCompile(`rgb\((\d{1,3}),(\d{1,3}),(\d{1,3})\)`)
	longHex         = regexp.MustCompile(`#([0-9a-fA-F]{6})\b`)
	zeroUnit        = regexp.MustCompile(`([^\w.#-]|^)0(?:` + lengthUnits + `)\b`)
)

// CompressCSS minifies CSS text: comments, whitespace, the last semicolon
// of each block, rgb() colors, long hex colors and zero units. The result
// is never longer than raw.
func CompressCSS(raw string) string {
	return Compress(raw, 2)
}

// Compress minifies raw at level: 0 returns raw unchanged, 1 strips
// comments and whitespace, 2 also rewrites colors and zero units.
func Compress(raw string, level int) string {
	if level <= 0 {
		return raw
	}

	out := stripComments(raw)
	out = whitespaceRun.ReplaceAllString(out, " ")
	out = aroundPunct.ReplaceAllString(out, "$1")
	out = strings.ReplaceAll(out, ";}", "}")
	out = strings.TrimSpace(out)

	if level >= 2 {
		out = declarationText.ReplaceAllStringFunc(out, compressValue)
	}

	if len(out) > len(raw) {
		return raw
	}
	return out
}

// stripComments removes /* ... */ comments. The first */ closes a comment;
// an unterminated comment runs to the end of input.
func stripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for {
		start := strings.Index(s, "/*")
		if start < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		end := strings.Index(s[start+2:], "*/")
		if end < 0 {
			return b.String()
		}
		s = s[start+2+end+2:]
	}
}

// compressValue rewrites colors and zero units inside one ":value;" span.
func compressValue(decl string) string {
	decl = rgbFunction.ReplaceAllStringFunc(decl, func(m string) string {
		parts := rgbFunction.FindStringSubmatch(m)
		var channels [3]uint8
		for i := range channels {
			n, err := strconv.Atoi(parts[i+1])
			if err != nil || n > 255 {
				return m
			}
			channels[i] = uint8(n)
		}
		return theme.RGBToHex(channels[0], channels[1], channels[2])
	})

	decl = longHex.ReplaceAllStringFunc(decl, shortenHex)

	for _, fn := range mathFunctions {
		if strings.Contains(decl, fn) {
			return decl
		}
	}
	return zeroUnit.ReplaceAllString(decl, "${1}0")
}

// shortenHex turns #aabbcc into #abc when every channel repeats its digit.
func shortenHex(hex string) string {
	h := strings.ToLower(hex[1:])
	if h[0] != h[1] || h[2] != h[3] || h[4] != h[5] {
		return hex
	}
	return "#" + string([]byte{h[0], h[2], h[4]})
}
