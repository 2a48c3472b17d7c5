// Package colorizer picks the display colour of a listing row.
package colorizer

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/gobwas/glob"
)

const (
	DirColor     = tcell.ColorLightSkyBlue
	DefaultColor = tcell.ColorWhiteSmoke
)

// extGroups colours related file types alike.
var extGroups = []struct {
	color tcell.Color
	exts  []string
}{
	{tcell.ColorAqua, []string{"go", "mod", "sum"}},
	{tcell.ColorDodgerBlue, []string{"c", "h", "cc", "cpp", "hpp"}},
	{tcell.ColorLightGreen, []string{"py", "rb", "pl"}},
	{tcell.ColorYellow, []string{"js", "mjs", "ts", "tsx"}},
	{tcell.ColorOrange, []string{"rs", "java", "kt", "swift"}},
	{tcell.ColorGreen, []string{"sh", "bash", "zsh", "fish"}},
	{tcell.ColorOrangeRed, []string{"html", "htm", "css", "scss"}},
	{tcell.ColorGold, []string{"json", "yaml", "yml", "toml", "xml", "ini"}},
	{tcell.ColorBisque, []string{"md", "rst", "txt", "pdf"}},
	{tcell.ColorMediumPurple, []string{"png", "jpg", "jpeg", "gif", "bmp", "webp", "svg"}},
	{tcell.ColorLightSalmon, []string{"mp3", "mp4", "mkv", "wav", "flac"}},
	{tcell.ColorIndianRed, []string{"zip", "gz", "tgz", "tar", "xz", "7z", "rar"}},
	{tcell.ColorRed, []string{"exe", "dll", "so", "dylib"}},
	{tcell.ColorRosyBrown, []string{"log", "tmp", "bak", "swp"}},
}

var extColors = func() map[string]tcell.Color {
	m := make(map[string]tcell.Color)
	for _, g := range extGroups {
		for _, ext := range g.exts {
			m[ext] = g.color
		}
	}
	return m
}()

type rule struct {
	pattern string
	matcher glob.Glob
	color   tcell.Color
}

// Colorizer matches user glob rules first and falls back to extension colours.
// The zero value uses only the built-in extension colours.
type Colorizer struct {
	rules []rule
}

// New compiles rules that map a file name glob (e.g. "*_test.go") to a colour
// name understood by tcell (e.g. "green" or "#ff8800").
// Rules are tried in pattern order.
func New(rules map[string]string) (*Colorizer, error) {
	patterns := make([]string, 0, len(rules))
	for pattern := range rules {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)

	c := &Colorizer{rules: make([]rule, 0, len(patterns))}
	for _, pattern := range patterns {
		matcher, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid colour pattern %q: %w", pattern, err)
		}
		colorName := rules[pattern]
		color := tcell.GetColor(colorName)
		if color == tcell.ColorDefault {
			return nil, fmt.Errorf("unknown colour %q for pattern %q", colorName, pattern)
		}
		c.rules = append(c.rules, rule{pattern: pattern, matcher: matcher, color: color})
	}
	return c, nil
}

// Color returns the colour of a row named name.
func (c *Colorizer) Color(name string, isDir bool) tcell.Color {
	if c != nil {
		for _, r := range c.rules {
			if r.matcher.Match(name) {
				return r.color
			}
		}
	}
	if isDir {
		return DirColor
	}
	return ExtColor(name)
}

// ExtColor returns the built-in colour for the extension of name.
func ExtColor(name string) tcell.Color {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if color, ok := extColors[ext]; ok {
		return color
	}
	return DefaultColor
}
