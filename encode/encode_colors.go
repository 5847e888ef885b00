package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/advent/fstree"
)

type Colorable struct {
	Kind fstree.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	NameColor ColorAttr = iota
	KindColor
	SizeColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range []fstree.Kind{fstree.Container, fstree.Leaf} {
		able := Colorable{Kind: k, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = KindColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SizeColor
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	colors.Map[Colorable{Kind: fstree.Container, Attr: NameColor}] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[Colorable{Kind: fstree.Leaf, Attr: NameColor}] = color.RGB(8, 196, 16).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k fstree.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k fstree.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
