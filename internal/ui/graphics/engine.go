package graphics

import (
	"errors"
	"log"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/input"
	gfxinput "snake/internal/ui/graphics/input"

	"github.com/hajimehoshi/ebiten/v2"
)

const WindowTitle = "Snake Game"

// Engine adapts App to ebiten.Game. ebiten calls Update at the configured
// frame rate and Draw once per rendered frame.
type Engine struct {
	width     int
	height    int
	frameRate int

	app      *app.App
	source   input.Source
	renderer *Renderer
}

func NewEngine(a *app.App, config *domain.GameConfig, fonts *Fonts) *Engine {
	return &Engine{
		width:     config.Width,
		height:    config.Height,
		frameRate: config.FrameRate,
		app:       a,
		source:    gfxinput.NewKeyboardHandler(),
		renderer:  NewRenderer(fonts),
	}
}

// Run blocks until the game quits or the window fails.
func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetTPS(e.frameRate)
	ebiten.SetWindowClosingHandled(true)

	err := ebiten.RunGame(e)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	log.Println("Engine: stopped")
	return nil
}

func (e *Engine) Update() error {
	for _, ev := range e.source.Poll() {
		e.app.HandleEvent(ev)
	}
	e.app.Update()

	if e.app.Done() {
		return ebiten.Termination
	}
	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	e.renderer.Render(screen, e.app.Frame())
}

func (e *Engine) Layout(_, _ int) (int, int) {
	return e.width, e.height
}
