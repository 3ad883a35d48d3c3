package menu

import "snake/internal/domain"

const (
	menuItemSpacing = 50
	menuItemWidth   = 160
	menuItemHeight  = 40

	optionsTitleY      = 30
	optionsFirstY      = 60
	optionsSectionStep = 120
	optionButtonWidth  = 80
	optionButtonHeight = 40
	optionButtonGap    = 20
	backWidth          = 100
	backHeight         = 36
)

// Layout places menu widgets in a window of the given size. Screens draw
// with it and controllers hit-test mouse clicks against the same rectangles.
type Layout struct {
	Width  int
	Height int
}

func (l Layout) TitleY() int {
	return l.Height / 4
}

func (l Layout) MenuItemRect(i int) domain.Rect {
	cx := l.Width / 2
	cy := l.Height/2 + i*menuItemSpacing
	return domain.Rect{
		X:      cx - menuItemWidth/2,
		Y:      cy - menuItemHeight/2,
		Width:  menuItemWidth,
		Height: menuItemHeight,
	}
}

func (l Layout) OptionsTitleY() int {
	return optionsTitleY
}

// SectionY is the top of an options section; the Back button's center sits
// one step below the last section.
func (l Layout) SectionY(section Section) int {
	return optionsFirstY + int(section)*optionsSectionStep
}

func (l Layout) SectionCaptionY(section Section) int {
	return l.SectionY(section) + 20
}

// OptionButtonRect is the i-th of n buttons in a section row.
func (l Layout) OptionButtonRect(section Section, i, n int) domain.Rect {
	total := n*optionButtonWidth + (n-1)*optionButtonGap
	startX := (l.Width - total) / 2
	return domain.Rect{
		X:      startX + i*(optionButtonWidth+optionButtonGap),
		Y:      l.SectionY(section) + 50,
		Width:  optionButtonWidth,
		Height: optionButtonHeight,
	}
}

func (l Layout) BackRect() domain.Rect {
	cy := l.SectionY(SectionBack)
	return domain.Rect{
		X:      l.Width/2 - backWidth/2,
		Y:      cy - backHeight/2,
		Width:  backWidth,
		Height: backHeight,
	}
}

func (l Layout) ErrorY() int {
	return l.SectionY(SectionBack) + 40
}
