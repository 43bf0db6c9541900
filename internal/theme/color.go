package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// WithOpacity converts a hex color and an integer percentage ("50") into
// "rgba(r, g, b, 0.5)". Keyword colors such as currentColor cannot carry an
// opacity and are rejected.
func WithOpacity(color, percent string) (string, bool) {
	n, err := strconv.Atoi(percent)
	if err != nil || n < 0 || n > 100 {
		return "", false
	}
	if !strings.HasPrefix(color, "#") {
		return "", false
	}

	c, err := colorful.Hex(color)
	if err != nil {
		return "", false
	}

	r, g, b := c.RGB255()
	alpha := strconv.FormatFloat(float64(n)/100, 'f', -1, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, alpha), true
}

// RGBToHex renders 8-bit channels as a lowercase 6-digit hex color.
func RGBToHex(r, g, b uint8) string {
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}.Hex()
}

// IsHexColor reports whether s parses as a 3- or 6-digit hex color.
func IsHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	_, err := colorful.Hex(s)
	return err == nil
}
