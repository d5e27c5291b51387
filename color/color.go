// Package color provides a curated palette of colors.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

// Hex-defined accent colors.
var (
	Orange = New("#ffb703")
	Gray   = New("#808080")
)

// ForStatus picks a color for an HTTP status code by its class.
func ForStatus(code int) lipgloss.Color {
	switch {
	case code >= 500:
		return Red
	case code >= 400:
		return Orange
	case code >= 300:
		return Cyan
	case code >= 200:
		return Green
	default:
		return Gray
	}
}
