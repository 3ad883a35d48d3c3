package screens_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake/internal/domain"
	"snake/internal/input"
	"snake/internal/menu"
	"snake/internal/render"
	"snake/internal/ui/screens"
)

type fakeContext struct {
	settings  *domain.Settings
	session   *domain.Session
	lastScore int
}

func (c *fakeContext) Size() (int, int)          { return 640, 480 }
func (c *fakeContext) Settings() *domain.Settings { return c.settings }
func (c *fakeContext) Session() *domain.Session   { return c.session }
func (c *fakeContext) LastScore() int             { return c.lastScore }

var layout = menu.Layout{Width: 640, Height: 480}

func newContext(t *testing.T) *fakeContext {
	t.Helper()
	session, err := domain.NewSession(domain.NewGrid(640, 480, 20), domain.NewFoodSpawner(3), time.Unix(0, 0))
	require.NoError(t, err)
	return &fakeContext{settings: domain.DefaultSettings(), session: session}
}

func TestMenuScreenDraw(t *testing.T) {
	ctx := newContext(t)
	m := menu.NewMainMenu(layout)
	f := render.NewFrame()

	screens.NewMenuScreen(ctx, m).Draw(f)

	require.NotEmpty(t, f.Commands)
	assert.Equal(t, render.CommandClear, f.Commands[0].Type)
	assert.Equal(t, 1, f.Count(render.CommandFillRect), "only the selected item is filled")
	assert.Equal(t, 2, f.Count(render.CommandStrokeRect))
	assert.Equal(t, []string{"Snake Game", "Start", "Options", "Exit"}, f.Texts()[:4])
}

func TestMenuScreenFollowsSelection(t *testing.T) {
	ctx := newContext(t)
	m := menu.NewMainMenu(layout)
	m.HandleKey(input.KeyDown)
	f := render.NewFrame()

	screens.NewMenuScreen(ctx, m).Draw(f)

	var filled domain.Rect
	for _, c := range f.Commands {
		if c.Type == render.CommandFillRect {
			filled = c.Rect
		}
	}
	assert.Equal(t, layout.MenuItemRect(1), filled)
}

func TestOptionsScreenDraw(t *testing.T) {
	ctx := newContext(t)
	o := menu.NewOptions(layout)
	o.Load(ctx.settings)
	f := render.NewFrame()

	screens.NewOptionsScreen(ctx, o).Draw(f)

	assert.Equal(t, 3, f.Count(render.CommandFillRect), "one chosen button per row")
	assert.Equal(t, 12, f.Count(render.CommandStrokeRect), "idle buttons, Back and the focus ring")
	texts := f.Texts()
	assert.Contains(t, texts, "Select Snake Color:")
	assert.Contains(t, texts, "Normal")
	assert.Contains(t, texts, "Back")
	assert.NotContains(t, texts, "Snake and apple colors must be different!")
}

func TestOptionsScreenShowsColorClash(t *testing.T) {
	ctx := newContext(t)
	settings := domain.DefaultSettings()
	settings.SnakeColor = settings.AppleColor
	o := menu.NewOptions(layout)
	o.Load(settings)
	f := render.NewFrame()

	screens.NewOptionsScreen(ctx, o).Draw(f)

	assert.Contains(t, f.Texts(), "Snake and apple colors must be different!")
}

func TestGameScreenDraw(t *testing.T) {
	ctx := newContext(t)
	f := render.NewFrame()

	screens.NewGameScreen(ctx).Draw(f)

	// apple and leaf, three body segments, two eyes
	assert.Equal(t, 7, f.Count(render.CommandFillCircle))
	assert.Equal(t, []string{"Score: 0"}, f.Texts())
	assert.Zero(t, f.Count(render.CommandFillRect))
}

func TestGameScreenPaused(t *testing.T) {
	ctx := newContext(t)
	ctx.session.TogglePause()
	f := render.NewFrame()

	screens.NewGameScreen(ctx).Draw(f)

	assert.Equal(t, 1, f.Count(render.CommandFillRect))
	assert.Contains(t, f.Texts(), "Paused")
}

func TestGameScreenWithoutSession(t *testing.T) {
	ctx := newContext(t)
	ctx.session = nil
	f := render.NewFrame()

	screens.NewGameScreen(ctx).Draw(f)

	require.Len(t, f.Commands, 1)
	assert.Equal(t, render.CommandClear, f.Commands[0].Type)
}

func TestGameOverScreenDraw(t *testing.T) {
	ctx := newContext(t)
	ctx.lastScore = 7
	f := render.NewFrame()

	screens.NewGameOverScreen(ctx).Draw(f)

	assert.Equal(t, []string{"Game Over", "Score: 7"}, f.Texts())
}
