// Package icon renders feedback symbols for CLI output in the variant chosen by the user.
package icon

import (
	"github.com/shinigami-rest/shinigami/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns all supported icon variants.
func AvailableVariants() []string {
	return []string{emoji, plain, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Info
	Link
)

type iconDef struct {
	emoji   string
	plain   string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "✅", plain: "✓", squares: "🟩"},
	Fail:     {emoji: "❌", plain: "✗", squares: "🟥"},
	Progress: {emoji: "⏳", plain: "...", squares: "🟦"},
	Info:     {emoji: "ℹ️", plain: "i", squares: "🟨"},
	Link:     {emoji: "🔗", plain: "->", squares: "🟪"},
}

// Get returns the rendered string for an icon.
func Get(i Icon) string {
	return icons[i].Get()
}
