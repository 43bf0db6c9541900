// Package gradient reconciles gradient stop classes (from-*, via-*, to-*)
// with gradient direction classes (bg-gradient-to-*).
//
// A single class always produces a self-contained rule built on the
// --tw-gradient-* custom properties. Within one element batch the stops are
// collected into a Context and inlined into the direction rule instead.
package gradient

import (
	"errors"
	"strings"

	"github.com/yacobolo/tailgen/internal/css"
)

// Stop identifies one of the three color anchors
type Stop int

// Gradient stops
const (
	From Stop = iota
	Via
	To
)

var stopNames = [...]string{From: "from", Via: "via", To: "to"}

func (s Stop) String() string {
	return stopNames[s]
}

// Var returns the custom property a single stop class writes.
func (s Stop) Var() string {
	return "--tw-gradient-" + s.String()
}

// Directions maps the bg-gradient-to-* suffix to a linear-gradient direction
var Directions = map[string]string{
	"t":  "to top",
	"tr": "to top right",
	"r":  "to right",
	"br": "to bottom right",
	"b":  "to bottom",
	"bl": "to bottom left",
	"l":  "to left",
	"tl": "to top left",
}

const directionPrefix = "bg-gradient-to-"

// StopsValue is the --tw-gradient-stops value used by single-class directions.
const StopsValue = "var(--tw-gradient-from), var(--tw-gradient-via, var(--tw-gradient-from)), var(--tw-gradient-to, transparent)"

// Validation errors for an assembled Gradient
var (
	ErrNoStops         = errors.New("gradient has no color stops")
	ErrMissingFromStop = errors.New("gradient is missing a from- stop")
	ErrMissingToStop   = errors.New("gradient is missing a to- stop")
)

// ColorResolver resolves a color suffix such as "blue-500/50"
type ColorResolver func(name string) (string, bool)

// ParseDirection returns the CSS direction for a bg-gradient-to-* token.
func ParseDirection(base string) (string, bool) {
	suffix, ok := strings.CutPrefix(base, directionPrefix)
	if !ok {
		return "", false
	}
	dir, ok := Directions[suffix]
	return dir, ok
}

// IsDirection reports whether base is a bg-gradient-to-* token.
func IsDirection(base string) bool {
	_, ok := ParseDirection(base)
	return ok
}

// ParseStop recognizes from-*, via-* and to-* tokens whose suffix resolves
// to a color.
func ParseStop(base string, resolve ColorResolver) (Stop, string, bool) {
	for s, name := range stopNames {
		suffix, ok := strings.CutPrefix(base, name+"-")
		if !ok {
			continue
		}
		color, ok := resolve(suffix)
		if !ok {
			return 0, "", false
		}
		return Stop(s), color, true
	}
	return 0, "", false
}

// StopProperties is the single-class rendering of a stop.
func StopProperties(stop Stop, color string) []css.Property {
	return []css.Property{css.Prop(stop.Var(), color)}
}

// DirectionProperties is the single-class rendering of a direction.
func DirectionProperties(direction string) []css.Property {
	return []css.Property{
		css.Prop("--tw-gradient-stops", StopsValue),
		css.Prop("background-image", "linear-gradient("+direction+", var(--tw-gradient-stops))"),
	}
}

// Gradient is an assembled gradient value
type Gradient struct {
	Direction string // "to right"
	From      string
	Via       string
	To        string
}

// Validate checks that the gradient has both end stops.
func (g Gradient) Validate() error {
	switch {
	case g.From == "" && g.Via == "" && g.To == "":
		return ErrNoStops
	case g.From == "":
		return ErrMissingFromStop
	case g.To == "":
		return ErrMissingToStop
	}
	return nil
}

// CSS renders the gradient with inlined colors. Missing end stops fall back
// to transparent.
func (g Gradient) CSS() string {
	from, to := g.From, g.To
	if from == "" {
		from = "transparent"
	}
	if to == "" {
		to = "transparent"
	}

	parts := []string{g.Direction, from}
	if g.Via != "" {
		parts = append(parts, g.Via)
	}
	parts = append(parts, to)

	return "linear-gradient(" + strings.Join(parts, ", ") + ")"
}

// Properties is the batch rendering of a direction with inlined stops.
func (g Gradient) Properties() []css.Property {
	return []css.Property{css.Prop("background-image", g.CSS())}
}
