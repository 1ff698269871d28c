package tsconfig

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStrictness = errors.New("unknown strictness")

// Strictness controls which type-checking flags are switched on.
type Strictness int

const (
	StrictnessOff Strictness = iota
	StrictnessOn
	StrictnessStrict
)

// StrictnessLabels are the human-readable choices, indexed by Strictness.
var StrictnessLabels = []string{
	"Relaxed (Few checks)",
	"Balanced (Recommended)",
	"Rigorous (Maximum safety)",
}

func (s Strictness) String() string {
	switch s {
	case StrictnessOff:
		return "relaxed"
	case StrictnessOn:
		return "balanced"
	case StrictnessStrict:
		return "rigorous"
	default:
		return fmt.Sprintf("Strictness(%d)", int(s))
	}
}

// ParseStrictness accepts the flag names (relaxed, balanced, rigorous) and
// their aliases (off, on, strict), case-insensitively.
func ParseStrictness(s string) (Strictness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "relaxed", "off":
		return StrictnessOff, nil
	case "balanced", "on":
		return StrictnessOn, nil
	case "rigorous", "strict":
		return StrictnessStrict, nil
	default:
		return 0, fmt.Errorf("%w %q (want relaxed, balanced or rigorous)", ErrUnknownStrictness, s)
	}
}

// StrictnessFromIndex maps a position in StrictnessLabels back to a Strictness.
func StrictnessFromIndex(idx int) (Strictness, error) {
	if idx < 0 || idx >= len(StrictnessLabels) {
		return 0, fmt.Errorf("%w: choice %d out of range", ErrUnknownStrictness, idx)
	}
	return Strictness(idx), nil
}

// Options are the answers that shape a generated tsconfig.json.
type Options struct {
	ProjectName string
	Strictness  Strictness
	Transpile   bool
	Library     bool
	Monorepo    bool
	DOM         bool
}

// DefaultOptions mirrors the default answer of every question.
func DefaultOptions() Options {
	return Options{
		ProjectName: ".",
		Strictness:  StrictnessOn,
		Transpile:   true,
	}
}
