package dino

import (
	"testing"

	"github.com/vovakirdan/trex-runner/internal/core"
)

func TestCellRendererAnchorsGround(t *testing.T) {
	screen := core.NewScreen(80, 24)
	r := newCellRenderer(screen, 600, 575)

	ground := r.cells(core.NewBox(0, 553, 600, 12))
	if ground.Y < 20 || ground.Y > 23 {
		t.Errorf("ground row = %d, expected near the bottom", ground.Y)
	}
	if ground.W != 80 {
		t.Errorf("ground width = %d cells, expected 80", ground.W)
	}

	cloud := r.cells(core.NewBox(300, 221, 46, 14))
	if cloud.Y < 0 || cloud.Y > 5 {
		t.Errorf("cloud row = %d, expected near the top", cloud.Y)
	}
}

func TestCellRendererMinimumOneCell(t *testing.T) {
	r := newCellRenderer(core.NewScreen(80, 24), 600, 575)
	c := r.cells(core.NewBox(100, 300, 1, 1))
	if c.W < 1 || c.H < 1 {
		t.Errorf("cells = %+v", c)
	}
}

func TestCellRendererGlyphs(t *testing.T) {
	screen := core.NewScreen(80, 24)
	r := newCellRenderer(screen, 600, 575)

	r.Draw(RenderRequest{Kind: EntityTRex, Dest: core.NewBox(50, 518, 44, 47), Status: StatusCrashed})
	body := r.cells(core.NewBox(50, 518, 44, 47))
	cell := screen.GetCell(body.X+1, body.Y+1)
	if cell.Rune != TRexBody || cell.Color != core.ColorRed {
		t.Errorf("crashed body cell = %+v", cell)
	}

	r.Draw(RenderRequest{Kind: EntityObstacle, Obstacle: CactusSmall, Dest: core.NewBox(300, 530, 17, 35)})
	cactus := r.cells(core.NewBox(300, 530, 17, 35))
	if got := screen.GetCell(cactus.X, cactus.Y); got.Rune != CactusChar || got.Color != core.ColorGreen {
		t.Errorf("cactus cell = %+v", got)
	}

	r.Draw(RenderRequest{Kind: EntityHorizonLine, Frame: 1, Dest: core.NewBox(0, 553, 600, 12)})
	line := r.cells(core.NewBox(0, 553, 600, 12))
	if got := screen.Get(5, line.Y); got != BumpChar {
		t.Errorf("bumpy ground rune = %q", got)
	}
}

func TestRendererFunc(t *testing.T) {
	var got []EntityKind
	r := RendererFunc(func(req RenderRequest) { got = append(got, req.Kind) })
	r.Draw(RenderRequest{Kind: EntityMoon})
	if len(got) != 1 || got[0] != EntityMoon {
		t.Errorf("got %v", got)
	}
	if EntityMoon.String() != "moon" {
		t.Errorf("String() = %q", EntityMoon.String())
	}
}
