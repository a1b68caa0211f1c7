package game

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Ghost-Lanes/internal/config"
	"github.com/Garsondee/Ghost-Lanes/internal/sim"
)

// statusLifetime is how long a status line stays up (about three seconds).
const statusLifetime = 180

// Game drives one sim.Session at a time and animates its changes.
type Game struct {
	cfg    config.Config
	rules  sim.Rules
	logger zerolog.Logger

	width  int
	height int
	layout trackLayout

	session  *sim.Session
	sessions int
	sprites  *spriteSet
	feed     *ActionFeed

	speechBubbles []*SpeechBubble

	// Cosmetic RNG for ghost placement inside a lane.
	rng *rand.Rand

	status      string
	statusTicks int
}

// New builds a game and starts the first session.
func New(cfg config.Config, logger zerolog.Logger) *Game {
	rules := cfg.Rules()
	w, h := screenSize(rules.LaneCount)
	g := &Game{
		cfg:    cfg,
		rules:  rules,
		logger: logger,
		width:  w,
		height: h,
		layout: newTrackLayout(rules.LaneCount),
		feed:   NewActionFeed(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404 -- cosmetic only
	}
	g.newSession()
	return g
}

// WindowSize is the logical size multiplied by the configured scale.
func (g *Game) WindowSize() (int, int) {
	return int(float64(g.width) * g.cfg.WindowScale), int(float64(g.height) * g.cfg.WindowScale)
}

// sessionSeed is fixed per session number when a seed is configured so a
// replayed run produces the same sequence of puzzles.
func (g *Game) sessionSeed() int64 {
	if g.cfg.Seed != 0 {
		return g.cfg.Seed + int64(g.sessions)
	}
	return time.Now().UnixNano()
}

func (g *Game) newSession() {
	g.session = sim.NewSession(g.rules, sim.WithSeed(g.sessionSeed()), sim.WithLogger(g.logger))
	g.sessions++
	g.sprites = newSpriteSet(g.rng, g.layout, g.session.Snapshot().Ghosts)
	g.speechBubbles = nil
	g.feed.Reset()
	g.feed.Sync(g.session.Log())
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTicks = statusLifetime
}

// handle applies one decoded action. Mutating actions are dropped while the
// last fire is still animating.
func (g *Game) handle(a inputAction) {
	switch a.kind {
	case actCopy:
		if err := copyLog(g.session.Log()); err != nil {
			g.logger.Warn().Err(err).Msg("copy action log")
			g.setStatus("clipboard unavailable")
			return
		}
		g.setStatus("action log copied")
		return
	case actNewSession:
		if g.session.Result().Terminal() {
			g.newSession()
		}
		return
	}

	if a.mutates() && !g.session.Settled() {
		return
	}
	res := perform(g.session, a)
	if res.fire != nil {
		g.bubblesForFire(*res.fire)
		g.sprites.applyFire(*res.fire)
	}
	if res.capture != nil {
		g.bubblesForCapture(*res.capture)
		g.sprites.applyCapture(*res.capture)
	}
	g.feed.Sync(g.session.Log())
}

// step advances animation by dt seconds and settles the session once every
// sprite has come to rest.
func (g *Game) step(dt float64) {
	busy := g.sprites.update(dt)
	if !busy && !g.session.Settled() {
		g.session.Settle()
	}
	g.ageSpeech()
	if g.statusTicks > 0 {
		g.statusTicks--
	}
}

func (g *Game) Update() error {
	g.step(1 / float64(ebiten.TPS()))
	for _, a := range readInput() {
		g.handle(a)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 6, B: 12, A: 255})
	snap := g.session.Snapshot()

	drawPanel(screen, snap, playWidth(g.rules.LaneCount))
	drawTrack(screen, g.layout, snap.CaptureLane)
	for _, gs := range g.sprites.visible() {
		gs.Draw(screen)
	}
	g.drawSpeechBubbles(screen)
	drawHUD(screen, snap, g.layout)
	g.feed.Draw(screen, g.width-feedPanelWidth, g.height)

	if g.statusTicks > 0 {
		ebitenutil.DebugPrintAt(screen, g.status, int(g.layout.left)+460, int(g.layout.top+laneHeight)+12)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
