package sandbox

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/bee/assets"
	"github.com/meghashyamc/bee/simulation"
)

const particleRadius = 5

var (
	dragColor   = color.RGBA{255, 255, 255, 160}
	borderColor = color.RGBA{60, 60, 60, 255}
)

func (s *Sandbox) Draw(screen *ebiten.Image) {
	// Clear screen with black background
	screen.Fill(color.RGBA{0, 0, 0, 255})

	bounds := s.world.Bounds()
	vector.StrokeRect(screen, 0, 0, float32(bounds.Width), float32(bounds.Height), 2, borderColor, false)

	for _, p := range s.world.Particles() {
		vector.DrawFilledCircle(
			screen,
			float32(p.Position.X().Value()),
			float32(p.Position.Y().Value()),
			particleRadius,
			simulation.TintRGBA(p.Tint),
			true,
		)
	}

	if s.dragStart != nil {
		current := getCurrentMousePosition()
		vector.StrokeLine(
			screen,
			float32(s.dragStart.X().Value()), float32(s.dragStart.Y().Value()),
			float32(current.X().Value()), float32(current.Y().Value()),
			2, dragColor, true,
		)
	}

	s.drawHUD(screen)
}

func (s *Sandbox) drawHUD(screen *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("Particles: %d", s.world.Len()),
		fmt.Sprintf("Centroid: %s", s.world.Centroid()),
		fmt.Sprintf("Gravity: %s", s.world.Gravity()),
	}
	if s.state == StatePaused {
		lines = append(lines, "PAUSED")
	}
	if !s.fountain {
		lines = append(lines, "Fountain off")
	}

	for i, line := range lines {
		drawText(screen, line, assets.HUDFont, 20, float64(30+30*i), color.White)
	}

	if s.userMessage != "" {
		drawText(screen, s.userMessage, assets.HUDFont, 20, float64(30+30*len(lines)), color.RGBA{255, 210, 80, 255})
	}

	instructionText := "Drag to launch | Space pause | F fountain | G flip gravity | S save | L load | C clear"
	drawText(screen, instructionText, assets.LabelFont, 20, float64(s.cfg.GetWindowHeight()-30), color.White)
}

func drawText(screen *ebiten.Image, str string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
