package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Color is a named foreground color used to highlight matches.
type Color struct {
	Name string
	attr color.Attribute
}

var palette = []Color{
	{"black", color.FgBlack},
	{"red", color.FgRed},
	{"green", color.FgGreen},
	{"yellow", color.FgYellow},
	{"blue", color.FgBlue},
	{"magenta", color.FgMagenta},
	{"cyan", color.FgCyan},
	{"white", color.FgWhite},
	{"bright_black", color.FgHiBlack},
	{"bright_red", color.FgHiRed},
	{"bright_green", color.FgHiGreen},
	{"bright_yellow", color.FgHiYellow},
	{"bright_blue", color.FgHiBlue},
	{"bright_magenta", color.FgHiMagenta},
	{"bright_cyan", color.FgHiCyan},
	{"bright_white", color.FgHiWhite},
}

var aliases = map[string]string{
	"purple":        "magenta",
	"bright_purple": "bright_magenta",
}

// Colors lists every accepted color in canonical order.
func Colors() []Color { return append([]Color{}, palette...) }

// ParseColor resolves a color name. Case is ignored and "bright red",
// "bright-red" and "bright_red" are the same color.
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	if a, ok := aliases[key]; ok {
		key = a
	}
	for _, c := range palette {
		if c.Name == key {
			return c, nil
		}
	}
	return Color{}, fmt.Errorf("unknown color %q", name)
}

// Sprint wraps s in the color's styling regardless of whether the terminal
// was detected as color capable.
func (c Color) Sprint(s string) string {
	p := color.New(c.attr)
	p.EnableColor()
	return p.Sprint(s)
}

func (c Color) String() string { return c.Name }
