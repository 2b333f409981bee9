//go:build ebiten

package app

import (
	"pingpong/internal/input"
	"pingpong/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyButtons = map[ebiten.Key]input.Button{
	ebiten.KeyArrowUp:   input.ButtonPrimary,
	ebiten.KeyW:         input.ButtonPrimary,
	ebiten.KeyEnter:     input.ButtonTertiary,
	ebiten.KeySpace:     input.ButtonTertiary,
	ebiten.KeyArrowDown: input.ButtonSecondary,
	ebiten.KeyS:         input.ButtonSecondary,
}

// Game adapts a scoring session to the ebiten.Game interface.
type Game struct {
	session *Session
	hud     *ui.HUD
}

// New constructs a Game showing session on hud.
func New(session *Session, hud *ui.HUD) *Game {
	return &Game{session: session, hud: hud}
}

// Update feeds key transitions to the session as button events.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, b := range keyButtons {
		if inpututil.IsKeyJustPressed(key) {
			g.session.Press(b)
		}
		if inpututil.IsKeyJustReleased(key) {
			g.session.Release(b)
		}
	}
	return nil
}

// Draw renders the watch face.
func (g *Game) Draw(screen *ebiten.Image) {
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.hud.Size()
	return s.W, s.H
}
