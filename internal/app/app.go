package app

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"snake/internal/domain"
	"snake/internal/input"
	"snake/internal/menu"
	"snake/internal/render"
	"snake/internal/ui/screens"
	"snake/internal/ui/types"
)

// App drives the game: it routes input to the active state, advances the
// session on tick boundaries and describes the current frame. Everything
// except RequestQuit must be called from the frame loop goroutine.
type App struct {
	config   *domain.GameConfig
	grid     domain.Grid
	settings *domain.Settings
	spawner  *domain.FoodSpawner
	now      func() time.Time

	state    State
	mainMenu *menu.MainMenu
	options  *menu.Options
	screens  map[State]types.Screen

	session    *domain.Session
	lastTick   time.Time
	gameOverAt time.Time
	lastScore  int

	quitRequested atomic.Bool
	done          bool
}

type Option func(*App)

// WithClock replaces the wall clock used for tick pacing and the game over dwell.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

func NewApp(config *domain.GameConfig, opts ...Option) (*App, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	layout := menu.Layout{Width: config.Width, Height: config.Height}
	a := &App{
		config:   config.Copy(),
		grid:     config.Grid(),
		settings: domain.DefaultSettings(),
		spawner:  domain.NewFoodSpawner(seed),
		now:      time.Now,
		state:    StateMainMenu,
		mainMenu: menu.NewMainMenu(layout),
		options:  menu.NewOptions(layout),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.screens = map[State]types.Screen{
		StateMainMenu: screens.NewMenuScreen(a, a.mainMenu),
		StateOptions:  screens.NewOptionsScreen(a, a.options),
		StatePlaying:  screens.NewGameScreen(a),
		StateGameOver: screens.NewGameOverScreen(a),
	}

	log.Printf("App: board %dx%d cells, seed %d", a.grid.Width, a.grid.Height, seed)
	return a, nil
}

func (a *App) HandleEvent(ev input.Event) {
	if a.done {
		return
	}
	if ev.Type == input.EventQuit {
		a.quit("quit requested")
		return
	}

	switch a.state {
	case StateMainMenu:
		a.handleMainMenu(ev)
	case StateOptions:
		a.handleOptions(ev)
	case StatePlaying:
		a.handlePlaying(ev)
	case StateGameOver:
		// Input is discarded until the dwell ends.
	}
}

func (a *App) handleMainMenu(ev input.Event) {
	var action menu.Action
	switch ev.Type {
	case input.EventKeyDown:
		action = a.mainMenu.HandleKey(ev.Key)
	case input.EventMouseDown:
		action = a.mainMenu.HandleClick(ev.X, ev.Y)
	}

	switch action {
	case menu.ActionStart:
		a.startSession()
	case menu.ActionOptions:
		a.setState(StateOptions)
	case menu.ActionExit:
		a.quit("exit selected")
	}
}

func (a *App) handleOptions(ev input.Event) {
	var action menu.Action
	switch ev.Type {
	case input.EventKeyDown:
		action = a.options.HandleKey(ev.Key)
	case input.EventMouseDown:
		action = a.options.HandleClick(ev.X, ev.Y)
	}
	if action != menu.ActionBack {
		return
	}

	// A rejected commit keeps the options screen up; it shows the clash itself.
	if err := a.options.Commit(a.settings); err != nil {
		log.Printf("Options: rejected, %v", err)
		return
	}

	log.Printf("Options: snake %s, apple %s, speed %s",
		a.settings.SnakeColor.Name, a.settings.AppleColor.Name, a.settings.Speed.Name)
	a.setState(StateMainMenu)
}

func (a *App) handlePlaying(ev input.Event) {
	if ev.Type != input.EventKeyDown {
		return
	}

	switch ev.Key {
	case input.KeyUp:
		a.session.Steer(domain.DirectionUp)
	case input.KeyDown:
		a.session.Steer(domain.DirectionDown)
	case input.KeyLeft:
		a.session.Steer(domain.DirectionLeft)
	case input.KeyRight:
		a.session.Steer(domain.DirectionRight)
	case input.KeyPauseToggle:
		paused := a.session.TogglePause()
		a.lastTick = a.now()
		log.Printf("Session %s: paused=%t", a.session.ID, paused)
	case input.KeyExit:
		log.Printf("Session %s: abandoned with score %d", a.session.ID, a.session.Score)
		a.session = nil
		a.setState(StateMainMenu)
	}
}

// Update runs once per frame. It advances the session at most once, and only
// when a full tick interval has passed since the previous advance.
func (a *App) Update() {
	if a.quitRequested.Load() {
		a.quit("shutdown requested")
	}
	if a.done {
		return
	}

	now := a.now()
	switch a.state {
	case StatePlaying:
		a.tick(now)
	case StateGameOver:
		if now.Sub(a.gameOverAt) >= a.config.GameOverDelay {
			a.mainMenu.Reset()
			a.setState(StateMainMenu)
		}
	}
}

func (a *App) tick(now time.Time) {
	if a.session.Paused {
		a.lastTick = now
		return
	}

	interval := a.settings.TickInterval()
	if now.Sub(a.lastTick) < interval {
		return
	}
	a.lastTick = a.lastTick.Add(interval)
	if now.Sub(a.lastTick) >= interval {
		// Fell behind; resynchronize instead of bursting.
		a.lastTick = now
	}

	res := a.session.Tick()
	if res.Advance.Consumed {
		log.Printf("Session %s: score %d, food at %v", a.session.ID, a.session.Score, a.session.Food)
	}
	if res.Outcome.Terminal() {
		a.endSession(res.Outcome, now)
	}
}

func (a *App) startSession() {
	now := a.now()
	session, err := domain.NewSession(a.grid, a.spawner, now)
	if err != nil {
		log.Printf("App: cannot start session: %v", err)
		return
	}

	a.session = session
	a.lastTick = now
	log.Printf("Session %s: started, speed %s (%d tps)",
		session.ID, a.settings.Speed.Name, a.settings.Speed.TicksPerSecond)
	a.setState(StatePlaying)
}

func (a *App) endSession(outcome domain.Outcome, now time.Time) {
	a.lastScore = a.session.Score
	log.Printf("Session %s: over (%s), score %d, length %d, lasted %s",
		a.session.ID, outcome, a.session.Score, a.session.Snake.Len(),
		now.Sub(a.session.StartedAt).Round(time.Millisecond))

	a.session = nil
	a.gameOverAt = now
	a.setState(StateGameOver)
}

func (a *App) setState(next State) {
	log.Printf("App: %s -> %s", a.state, next)
	a.state = next

	if next == StateOptions {
		a.options.Load(a.settings)
	}
}

func (a *App) quit(reason string) {
	if a.done {
		return
	}
	if a.session != nil {
		log.Printf("Session %s: closed with score %d", a.session.ID, a.session.Score)
	}
	log.Printf("App: shutting down (%s)", reason)
	a.done = true
}

// RequestQuit asks the frame loop to stop at its next Update. Safe to call
// from any goroutine.
func (a *App) RequestQuit() {
	a.quitRequested.Store(true)
}

func (a *App) Frame() *render.Frame {
	f := render.NewFrame()
	a.screens[a.state].Draw(f)
	return f
}

func (a *App) State() State {
	return a.state
}

func (a *App) Done() bool {
	return a.done
}

// Score is the running score of the current session, zero outside Playing.
func (a *App) Score() int {
	if a.session == nil {
		return 0
	}
	return a.session.Score
}

func (a *App) Settings() *domain.Settings {
	return a.settings
}

func (a *App) Session() *domain.Session {
	return a.session
}

func (a *App) LastScore() int {
	return a.lastScore
}

func (a *App) Size() (int, int) {
	return a.config.Width, a.config.Height
}
