package model

import "fmt"

// FormattingStyle selects how a parsed playlist is rendered.
//
// The set is closed: there are exactly three styles and rendering
// switches on the value directly.
type FormattingStyle int

const (
	// StyleBasic prints one minimal line per track with no position
	// numbers. Closest to the raw input; suitable for piping.
	StyleBasic FormattingStyle = iota

	// StyleNumbered prefixes each line with the 1-based track position.
	StyleNumbered

	// StylePretty adds an info block and visual framing around the
	// numbered listing. This is the default style.
	StylePretty
)

// String returns the lowercase style name.
func (s FormattingStyle) String() string {
	switch s {
	case StyleBasic:
		return "basic"
	case StyleNumbered:
		return "numbered"
	case StylePretty:
		return "pretty"
	default:
		return fmt.Sprintf("FormattingStyle(%d)", int(s))
	}
}

// ParseStyle converts a style name to a FormattingStyle.
//
// Accepts "basic", "numbered" and "pretty". Returns an error for
// anything else.
func ParseStyle(name string) (FormattingStyle, error) {
	switch name {
	case "basic":
		return StyleBasic, nil
	case "numbered":
		return StyleNumbered, nil
	case "pretty":
		return StylePretty, nil
	default:
		return StylePretty, fmt.Errorf("unknown formatting style: %q", name)
	}
}
