package sandbox

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/meghashyamc/bee/config"
	"github.com/meghashyamc/bee/logger"
	"github.com/meghashyamc/bee/simulation"
)

type State int

const (
	StateRunning State = iota
	StatePaused
)

const messageDuration = 2 * time.Second

type Sandbox struct {
	cfg          *config.Config
	world        *simulation.World
	store        *simulation.Store
	spawnTimer   *simulation.Timer
	messageTimer *simulation.Timer
	fountain     bool
	state        State
	dragStart    *simulation.Point
	rng          *rand.Rand
	logger       logger.Logger
	userMessage  string
}

func NewSandbox(cfg *config.Config, log logger.Logger) (*Sandbox, error) {
	spawnInterval := time.Duration(cfg.GetSpawnInterval()) * time.Millisecond
	if spawnInterval <= 0 {
		return nil, fmt.Errorf("spawn interval must be positive, got %s", spawnInterval)
	}
	if cfg.GetWindowWidth() <= 0 || cfg.GetWindowHeight() <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", cfg.GetWindowWidth(), cfg.GetWindowHeight())
	}

	world := simulation.NewWorld(simulation.Settings{
		Bounds: simulation.Bounds{
			Width:  float64(cfg.GetWindowWidth()),
			Height: float64(cfg.GetWindowHeight()),
		},
		Gravity:      cfg.GetGravity(),
		Restitution:  cfg.GetRestitution(),
		Fade:         cfg.GetFade(),
		LaunchScale:  cfg.GetLaunchScale(),
		MaxParticles: cfg.GetMaxParticles(),
	}, log)

	s := &Sandbox{
		cfg:          cfg,
		world:        world,
		store:        simulation.NewStore(cfg.GetSnapshotPath()),
		spawnTimer:   simulation.NewTimer(spawnInterval),
		messageTimer: simulation.NewTimer(messageDuration),
		fountain:     true,
		state:        StateRunning,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:       log,
	}

	s.logger.Info("sandbox initialized", "spawn_interval", spawnInterval.String(), "snapshot", s.store.Path())
	return s, nil
}

func (s *Sandbox) Run() error {
	s.logger.Info("starting sandbox")
	s.setupWindow()

	// Running the sandbox calls Update() on every 'tick'
	return ebiten.RunGame(s)
}

func (s *Sandbox) setupWindow() {
	ebiten.SetWindowSize(s.cfg.GetWindowWidth(), s.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(s.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

func (s *Sandbox) Update() error {
	s.handleKeys()
	s.handleMouse()

	if s.userMessage != "" {
		s.messageTimer.Update()
		if s.messageTimer.IsReady() {
			s.userMessage = ""
		}
	}

	if s.state == StatePaused {
		return nil
	}

	if s.fountain {
		s.spawnTimer.Update()
		if s.spawnTimer.IsReady() {
			s.world.Emit(s.fountainOrigin(), s.rng)
			s.spawnTimer.Reset()
		}
	}

	s.world.Step(simulation.TickDuration.Seconds())
	return nil
}

func (s *Sandbox) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if s.state == StatePaused {
			s.state = StateRunning
		} else {
			s.state = StatePaused
		}
		s.logger.Debug("pause toggled", "state", s.state)

	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		s.fountain = !s.fountain
		s.spawnTimer.Reset()

	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		s.world.FlipGravity()

	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		s.world.Clear()

	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		s.save()

	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		s.load()
	}
}

func (s *Sandbox) handleMouse() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		start := getCurrentMousePosition()
		s.dragStart = &start
		return
	}

	if s.dragStart != nil && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.world.Launch(*s.dragStart, getCurrentMousePosition())
		s.dragStart = nil
	}
}

func (s *Sandbox) save() {
	particles := s.world.Particles()
	if err := s.store.Save(particles); err != nil {
		s.logger.Error("failed to save snapshot", "err", err, "path", s.store.Path())
		s.showMessage("Save failed")
		return
	}

	s.logger.Info("snapshot saved", "particles", len(particles), "path", s.store.Path())
	s.showMessage(fmt.Sprintf("Saved %d particles", len(particles)))
}

func (s *Sandbox) load() {
	particles, err := s.store.Load()
	if err != nil {
		s.logger.Error("failed to load snapshot", "err", err, "path", s.store.Path())
		s.showMessage("Load failed")
		return
	}

	s.world.Restore(particles)
	s.showMessage(fmt.Sprintf("Loaded %d particles", s.world.Len()))
}

func (s *Sandbox) showMessage(message string) {
	s.userMessage = message
	s.messageTimer.Reset()
}

func (s *Sandbox) fountainOrigin() simulation.Point {
	bounds := s.world.Bounds()
	if s.world.Gravity().Y().Value() < 0 {
		return simulation.NewPoint(bounds.Width/2, 0)
	}
	return simulation.NewPoint(bounds.Width/2, bounds.Height)
}

func (s *Sandbox) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return s.cfg.GetWindowWidth(), s.cfg.GetWindowHeight()
}

func getCurrentMousePosition() simulation.Point {
	mouseX, mouseY := ebiten.CursorPosition()
	return simulation.NewPoint(float64(mouseX), float64(mouseY))
}
