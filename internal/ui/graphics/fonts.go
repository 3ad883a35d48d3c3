package graphics

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"snake/internal/render"
)

type Fonts struct {
	Small  *text.GoTextFace
	Normal *text.GoTextFace
	Title  *text.GoTextFace
}

func LoadFonts() (*Fonts, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	return &Fonts{
		Small:  &text.GoTextFace{Source: source, Size: 18},
		Normal: &text.GoTextFace{Source: source, Size: 28},
		Title:  &text.GoTextFace{Source: source, Size: 48},
	}, nil
}

func (f *Fonts) Face(size render.FontSize) text.Face {
	switch size {
	case render.FontTitle:
		return f.Title
	case render.FontNormal:
		return f.Normal
	}
	return f.Small
}
