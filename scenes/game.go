package scenes

import (
	"github.com/automoto/castlecrush/config"
	"github.com/automoto/castlecrush/core"
	"github.com/automoto/castlecrush/render"
	"github.com/automoto/castlecrush/shared/gamemath"
	"github.com/automoto/castlecrush/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// referenceTPS is the tick rate that one simulation ratio unit stands for.
const referenceTPS = 60

// CastleScene runs one castle round after another until the window closes.
type CastleScene struct {
	cfg     config.Config
	round   *core.Round
	pointer pointer
	outcome *ui.OutcomeUI
	logger  *log.Logger

	canvas           *ebiten.Image
	scale            float64
	offsetX, offsetY float64

	wins int
}

// NewCastleScene builds the first round from cfg.
func NewCastleScene(cfg config.Config, logger *log.Logger) (*CastleScene, error) {
	if logger == nil {
		logger = log.Default()
	}
	s := &CastleScene{cfg: cfg, logger: logger, scale: 1}
	round, err := core.NewRound(cfg, s, logger)
	if err != nil {
		return nil, err
	}
	s.round = round
	s.outcome = ui.NewOutcomeUI(s.round.Reset)
	return s, nil
}

// Update returns ebiten.Termination when the player quits.
func (s *CastleScene) Update() error {
	if justPressed(ActionQuit) {
		return ebiten.Termination
	}
	if justPressed(ActionReset) {
		s.round.Reset()
	}

	s.outcome.Update()
	s.pointer.poll(s.round)
	s.round.Update(tickRatio())

	snap := s.round.Snapshot()
	s.outcome.Sync(snap.Outcome, snap.BannerOffset)
	return nil
}

// tickRatio is the simulated time per update in reference ticks. Ebiten
// calls Update at a fixed TPS, so this is constant for a given setting.
func tickRatio() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		return 1
	}
	return referenceTPS / float64(tps)
}

// Layout fits the world into the window and keeps pointer mapping in step.
func (s *CastleScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.scale, s.offsetX, s.offsetY = gamemath.FitViewport(
		float64(outsideWidth), float64(outsideHeight),
		float64(s.cfg.Screen.Width), float64(s.cfg.Screen.Height),
	)
	s.round.SetViewport(s.scale, s.offsetX, s.offsetY)
	return outsideWidth, outsideHeight
}

func (s *CastleScene) Draw(screen *ebiten.Image) {
	if s.canvas == nil {
		s.canvas = ebiten.NewImage(s.cfg.Screen.Width, s.cfg.Screen.Height)
	}
	render.Draw(s.canvas, s.round.Snapshot(), s.cfg.Palette)

	screen.Fill(s.cfg.Palette.Ground)
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(s.scale, s.scale)
	op.GeoM.Translate(s.offsetX, s.offsetY)
	screen.DrawImage(s.canvas, op)

	s.outcome.Draw(screen, s.scale)
}

func (s *CastleScene) Win() {
	s.wins++
	s.logger.Info("victory", "wins", s.wins)
}

func (s *CastleScene) Lose() {
	s.logger.Info("defeat", "wins", s.wins)
}
