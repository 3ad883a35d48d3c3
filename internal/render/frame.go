// Package render describes a frame as an ordered list of draw commands.
// A backend replays them in order; later commands paint over earlier ones.
package render

import (
	"image/color"

	"snake/internal/domain"
)

type CommandType int

const (
	CommandClear CommandType = iota
	CommandFillCircle
	CommandFillRect
	CommandStrokeRect
	CommandText
)

type FontSize int

const (
	FontSmall FontSize = iota
	FontNormal
	FontTitle
)

type Align int

const (
	AlignCenter Align = iota
	AlignLeft
)

type Command struct {
	Type   CommandType
	Color  color.RGBA
	Rect   domain.Rect
	X, Y   float32
	Radius float32
	Stroke float32
	Text   string
	Font   FontSize
	Align  Align
}

type Frame struct {
	Commands []Command
}

func NewFrame() *Frame {
	return &Frame{Commands: make([]Command, 0, 64)}
}

func (f *Frame) Clear(c color.RGBA) {
	f.Commands = append(f.Commands, Command{Type: CommandClear, Color: c})
}

func (f *Frame) FillCircle(cx, cy, radius float32, c color.RGBA) {
	f.Commands = append(f.Commands, Command{Type: CommandFillCircle, X: cx, Y: cy, Radius: radius, Color: c})
}

func (f *Frame) FillRect(r domain.Rect, c color.RGBA) {
	f.Commands = append(f.Commands, Command{Type: CommandFillRect, Rect: r, Color: c})
}

func (f *Frame) StrokeRect(r domain.Rect, width float32, c color.RGBA) {
	f.Commands = append(f.Commands, Command{Type: CommandStrokeRect, Rect: r, Stroke: width, Color: c})
}

// Text draws s. With AlignCenter, (x, y) is the center of the text box; with
// AlignLeft it is the top-left corner.
func (f *Frame) Text(s string, x, y int, size FontSize, align Align, c color.RGBA) {
	f.Commands = append(f.Commands, Command{
		Type:  CommandText,
		Text:  s,
		X:     float32(x),
		Y:     float32(y),
		Font:  size,
		Align: align,
		Color: c,
	})
}

// Count returns how many commands of type t the frame holds.
func (f *Frame) Count(t CommandType) int {
	n := 0
	for _, c := range f.Commands {
		if c.Type == t {
			n++
		}
	}
	return n
}

// Texts returns the strings of all text commands in draw order.
func (f *Frame) Texts() []string {
	var out []string
	for _, c := range f.Commands {
		if c.Type == CommandText {
			out = append(out, c.Text)
		}
	}
	return out
}
