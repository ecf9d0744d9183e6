package models

// Style is the closed set of outfit looks.
type Style string

const (
	StyleStreet    Style = "street"
	StyleSmart     Style = "smart"
	StyleStatement Style = "statement"
	StyleMinimal   Style = "minimal"
	StyleVintage   Style = "vintage"
)

// Styles lists every valid style.
var Styles = []Style{StyleStreet, StyleSmart, StyleStatement, StyleMinimal, StyleVintage}

// Valid reports whether s is one of the known styles.
func (s Style) Valid() bool {
	for _, known := range Styles {
		if s == known {
			return true
		}
	}
	return false
}

// NormalizeStyle maps anything outside the closed set to street.
func NormalizeStyle(raw string) Style {
	s := Style(raw)
	if s.Valid() {
		return s
	}
	return StyleStreet
}

// Title is the display word for the style, e.g. "Street".
func (s Style) Title() string {
	switch s {
	case StyleSmart:
		return "Smart"
	case StyleStatement:
		return "Statement"
	case StyleMinimal:
		return "Minimal"
	case StyleVintage:
		return "Vintage"
	default:
		return "Street"
	}
}
