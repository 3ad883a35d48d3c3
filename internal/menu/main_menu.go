package menu

import "snake/internal/input"

type Item int

const (
	ItemStart Item = iota
	ItemOptions
	ItemExit
)

func (i Item) String() string {
	switch i {
	case ItemStart:
		return "Start"
	case ItemOptions:
		return "Options"
	case ItemExit:
		return "Exit"
	}
	return "?"
}

func (i Item) action() Action {
	switch i {
	case ItemStart:
		return ActionStart
	case ItemOptions:
		return ActionOptions
	case ItemExit:
		return ActionExit
	}
	return ActionNone
}

type MainMenu struct {
	layout Layout
	items  *Selector[Item]
}

func NewMainMenu(layout Layout) *MainMenu {
	return &MainMenu{
		layout: layout,
		items:  NewSelector([]Item{ItemStart, ItemOptions, ItemExit}),
	}
}

// Reset moves the highlight back to the first item.
func (m *MainMenu) Reset() {
	m.items.Select(0)
}

func (m *MainMenu) HandleKey(k input.Key) Action {
	switch k {
	case input.KeyUp, input.KeyMenuUp:
		m.items.Prev()
	case input.KeyDown, input.KeyMenuDown:
		m.items.Next()
	case input.KeyConfirm:
		return m.items.Current().action()
	case input.KeyExit:
		return ActionExit
	}
	return ActionNone
}

func (m *MainMenu) HandleClick(x, y int) Action {
	for i, item := range m.items.Items() {
		if m.layout.MenuItemRect(i).Contains(x, y) {
			m.items.Select(i)
			return item.action()
		}
	}
	return ActionNone
}

func (m *MainMenu) Items() []Item {
	return m.items.Items()
}

func (m *MainMenu) Selected() int {
	return m.items.Index()
}

func (m *MainMenu) Layout() Layout {
	return m.layout
}
