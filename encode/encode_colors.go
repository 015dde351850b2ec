package encode

import (
	"strings"

	"github.com/fatih/color"
)

// ColorAttr names the parts of flat output and of diff lines that get
// their own color.
type ColorAttr int

const (
	BannerColor ColorAttr = iota
	KeyColor
	SepColor
	StringColor
	NumberColor
	InsertColor
	DeleteColor
	ReplaceColor
)

type Colors struct {
	m map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	c := &Colors{m: map[ColorAttr]func(string, ...any) string{}}
	c.Set(BannerColor, color.RGB(196, 168, 128).SprintfFunc())
	c.Set(KeyColor, color.RGB(128, 168, 196).SprintfFunc())
	c.Set(SepColor, color.RGB(255, 0, 196).SprintfFunc())
	c.Set(StringColor, color.RGB(8, 196, 16).SprintfFunc())
	c.Set(NumberColor, color.RGB(128, 216, 236).SprintfFunc())
	c.Set(InsertColor, color.GreenString)
	c.Set(DeleteColor, color.RedString)
	c.Set(ReplaceColor, color.YellowString)
	return c
}

// Set colors a with f.  Text is passed to f as its format, so percent
// signs are escaped first.
func (c *Colors) Set(a ColorAttr, f func(string, ...any) string) {
	c.m[a] = func(s string, _ ...any) string {
		return f(strings.ReplaceAll(s, "%", "%%"))
	}
}

// Color returns s in the color of a, or s itself when a has none.
func (c *Colors) Color(a ColorAttr, s string) string {
	if c == nil {
		return s
	}
	f := c.m[a]
	if f == nil {
		return s
	}
	return f(s)
}
