package menu

import (
	"snake/internal/domain"
	"snake/internal/input"
)

type Section int

const (
	SectionSnakeColor Section = iota
	SectionAppleColor
	SectionSpeed
	SectionBack
)

func (s Section) Caption() string {
	switch s {
	case SectionSnakeColor:
		return "Select Snake Color:"
	case SectionAppleColor:
		return "Select Apple Color:"
	case SectionSpeed:
		return "Select Game Speed:"
	case SectionBack:
		return "Back"
	}
	return ""
}

// Options edits a pending copy of the settings. Nothing reaches the live
// settings until Commit succeeds.
type Options struct {
	layout Layout

	sections    *Selector[Section]
	snakeColors *Selector[domain.NamedColor]
	appleColors *Selector[domain.NamedColor]
	speeds      *Selector[domain.Speed]
}

func NewOptions(layout Layout) *Options {
	return &Options{
		layout:      layout,
		sections:    NewSelector([]Section{SectionSnakeColor, SectionAppleColor, SectionSpeed, SectionBack}),
		snakeColors: NewSelector(domain.ColorOptions),
		appleColors: NewSelector(domain.ColorOptions),
		speeds:      NewSelector(domain.SpeedOptions),
	}
}

// Load points every selector at the current settings and focuses the first section.
func (o *Options) Load(s *domain.Settings) {
	o.sections.Select(0)
	o.snakeColors.SelectFunc(func(c domain.NamedColor) bool { return c.Color == s.SnakeColor.Color })
	o.appleColors.SelectFunc(func(c domain.NamedColor) bool { return c.Color == s.AppleColor.Color })
	o.speeds.SelectFunc(func(sp domain.Speed) bool { return sp.TicksPerSecond == s.Speed.TicksPerSecond })
}

func (o *Options) HandleKey(k input.Key) Action {
	switch k {
	case input.KeyUp, input.KeyMenuUp:
		o.sections.Prev()
	case input.KeyDown, input.KeyMenuDown:
		o.sections.Next()
	case input.KeyLeft:
		o.cycle(o.sections.Current(), false)
	case input.KeyRight:
		o.cycle(o.sections.Current(), true)
	case input.KeyConfirm:
		if o.sections.Current() == SectionBack {
			return ActionBack
		}
	case input.KeyExit:
		o.sections.Select(int(SectionBack))
		return ActionBack
	}
	return ActionNone
}

func (o *Options) cycle(section Section, forward bool) {
	var step func()
	switch section {
	case SectionSnakeColor:
		step = o.snakeColors.Prev
		if forward {
			step = o.snakeColors.Next
		}
	case SectionAppleColor:
		step = o.appleColors.Prev
		if forward {
			step = o.appleColors.Next
		}
	case SectionSpeed:
		step = o.speeds.Prev
		if forward {
			step = o.speeds.Next
		}
	default:
		return
	}
	step()
}

func (o *Options) HandleClick(x, y int) Action {
	if o.clickRow(SectionSnakeColor, o.snakeColors.Len(), x, y, o.snakeColors.Select) ||
		o.clickRow(SectionAppleColor, o.appleColors.Len(), x, y, o.appleColors.Select) ||
		o.clickRow(SectionSpeed, o.speeds.Len(), x, y, o.speeds.Select) {
		return ActionNone
	}

	if o.layout.BackRect().Contains(x, y) {
		o.sections.Select(int(SectionBack))
		return ActionBack
	}
	return ActionNone
}

func (o *Options) clickRow(section Section, n, x, y int, selectFn func(int) bool) bool {
	for i := 0; i < n; i++ {
		if o.layout.OptionButtonRect(section, i, n).Contains(x, y) {
			selectFn(i)
			o.sections.Select(int(section))
			return true
		}
	}
	return false
}

// Clash reports whether the pending snake and apple colors are the same.
func (o *Options) Clash() bool {
	return o.snakeColors.Current().Color == o.appleColors.Current().Color
}

func (o *Options) Pending() domain.Settings {
	return domain.Settings{
		SnakeColor: o.snakeColors.Current(),
		AppleColor: o.appleColors.Current(),
		Speed:      o.speeds.Current(),
	}
}

// Commit copies the pending choices into s. On error s is left unchanged.
func (o *Options) Commit(s *domain.Settings) error {
	pending := o.Pending()
	if err := pending.Validate(); err != nil {
		return err
	}
	*s = pending
	return nil
}

func (o *Options) Focus() Section {
	return o.sections.Current()
}

func (o *Options) SnakeColors() *Selector[domain.NamedColor] {
	return o.snakeColors
}

func (o *Options) AppleColors() *Selector[domain.NamedColor] {
	return o.appleColors
}

func (o *Options) Speeds() *Selector[domain.Speed] {
	return o.speeds
}

func (o *Options) Layout() Layout {
	return o.layout
}
