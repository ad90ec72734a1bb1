package dropzone

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// ErrQuit can be returned from RunConfig.OnUpdate to end the game loop
// without reporting an error from Run.
var ErrQuit = errors.New("quit")

const homeScrollSeconds = 0.6

// RunConfig configures the window and loop created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowHUD draws the FPS/entity overlay.
	ShowHUD bool
	// Backgrounds holds one texture per world segment.
	Backgrounds []*Texture
	// AddSprites are spawned in view, in rotation, each time A is pressed.
	AddSprites []EntitySpec
	// OnUpdate runs after World.Update each tick.
	OnUpdate func() error
}

// game adapts a World to ebiten.Game.
type game struct {
	world    *World
	renderer *Renderer
	hud      *HUD
	cfg      RunConfig
	nextAdd  int
	homeX    float64
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		full := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(full)
		g.world.logger.Debug("fullscreen toggled", zap.Bool("fullscreen", full))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.world.cam.ScrollTo(g.homeX, homeScrollSeconds, ease.InOutQuad)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) && len(g.cfg.AddSprites) > 0 {
		spec := g.cfg.AddSprites[g.nextAdd%len(g.cfg.AddSprites)]
		spec.PopIn = true
		g.world.SpawnInView(spec)
		g.nextAdd++
	}

	g.world.Update()

	if g.hud != nil {
		g.hud.Update(1.0 / float64(ebiten.TPS()))
	}
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	if g.hud != nil {
		g.hud.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.world.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and drives w until the window closes or
// OnUpdate returns an error. Pointer input is polled from Ebitengine.
func Run(w *World, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	w.SetInputSource(NewEbitenInput())
	w.Resize(float64(cfg.Width), float64(cfg.Height))

	g := &game{
		world:    w,
		renderer: NewRenderer(w),
		cfg:      cfg,
		homeX:    w.cam.X,
	}
	g.renderer.Backgrounds = cfg.Backgrounds
	if cfg.ShowHUD {
		g.hud = NewHUD(w)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	w.logger.Info("starting game loop",
		zap.String("title", cfg.Title),
		zap.String("preset", w.cfg.Preset),
		zap.Int("entities", len(w.entities)))

	err := ebiten.RunGame(g)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}
