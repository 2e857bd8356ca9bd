package dino

import (
	"math"

	"github.com/vovakirdan/trex-runner/internal/core"
)

// EntityKind identifies what a render request draws.
type EntityKind int

const (
	EntityHorizonLine EntityKind = iota
	EntityCloud
	EntityMoon
	EntityStar
	EntityObstacle
	EntityTRex
	EntityDigit
	EntityHighScoreDigit
	EntityGameOverText
	EntityRestartIcon
)

// String returns a human-readable name for the kind.
func (k EntityKind) String() string {
	switch k {
	case EntityHorizonLine:
		return "horizon_line"
	case EntityCloud:
		return "cloud"
	case EntityMoon:
		return "moon"
	case EntityStar:
		return "star"
	case EntityObstacle:
		return "obstacle"
	case EntityTRex:
		return "trex"
	case EntityDigit:
		return "digit"
	case EntityHighScoreDigit:
		return "high_score_digit"
	case EntityGameOverText:
		return "game_over_text"
	case EntityRestartIcon:
		return "restart_icon"
	default:
		return "unknown"
	}
}

// RenderRequest asks the renderer to copy Source from the sprite atlas to Dest in the world.
type RenderRequest struct {
	Kind    EntityKind
	Index   int      // Position among entities of the same kind
	Source  core.Box // Atlas pixels
	Dest    core.Box // World pixels
	Frame   int
	Opacity float64 // 0 transparent, 1 opaque

	Obstacle ObstacleKind // EntityObstacle only
	Size     int          // EntityObstacle only
	Status   TRexStatus   // EntityTRex only
	Digit    int          // Digit kinds only; glyph index in the text sprite
}

// Renderer receives one request per visible entity, back to front.
type Renderer interface {
	Draw(req RenderRequest)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(req RenderRequest)

// Draw calls f(req).
func (f RendererFunc) Draw(req RenderRequest) { f(req) }

// Visual characters for terminal rendering
const (
	TRexBody     = '█'
	TRexHead     = '◆'
	TRexLeg1     = '╱'
	TRexLeg2     = '╲'
	CactusChar   = '▓'
	WingUpChar   = '^'
	WingDownChar = 'v'
	GroundChar   = '═'
	BumpChar     = '╧'
	CloudChar    = '░'
	MoonChar     = '☾'
	FullMoonChar = '●'
	StarChar     = '*'
)

const (
	skyMarginPx   = 10 // rows start this far above the cloud band
	cellAspect    = 2  // a cell is about twice as tall as it is wide
	minCellsWide  = 1
	minCellsHigh  = 1
	fullMoonPhase = 3
)

// cellRenderer maps world pixels onto a terminal screen.
// Columns span the world width; rows are anchored to the ground and tall enough
// to show the sky band where clouds and the moon live.
type cellRenderer struct {
	dst    *core.Screen
	sx, sy float64 // world pixels per column and per row
	top    float64 // world y of the first row
}

func newCellRenderer(dst *core.Screen, worldW, worldH int) *cellRenderer {
	cols := float64(core.Max(dst.Width(), 1))
	rows := float64(core.Max(dst.Height(), 1))

	sx := float64(worldW) / cols
	sy := sx * cellAspect
	sky := float64(worldH/3 - skyMarginPx)
	if fit := (float64(worldH) - sky) / rows; fit > sy {
		sy = fit
	}
	return &cellRenderer{
		dst: dst,
		sx:  sx,
		sy:  sy,
		top: float64(worldH) - rows*sy,
	}
}

// cells converts a world box to the screen cells it covers, at least one cell.
func (c *cellRenderer) cells(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X / c.sx))
	y0 := int(math.Floor((b.Y - c.top) / c.sy))
	x1 := int(math.Ceil(b.Right() / c.sx))
	y1 := int(math.Ceil((b.Bottom() - c.top) / c.sy))
	return core.NewRect(x0, y0, core.Max(x1-x0, minCellsWide), core.Max(y1-y0, minCellsHigh))
}

func (c *cellRenderer) Draw(req RenderRequest) {
	r := c.cells(req.Dest)
	switch req.Kind {
	case EntityHorizonLine:
		ch := GroundChar
		if req.Frame == 1 {
			ch = BumpChar
		}
		c.dst.DrawHLine(r.X, r.Y, r.W, ch, core.ColorDefault)
	case EntityCloud:
		c.dst.DrawHLine(r.X, r.Y, r.W, CloudChar, core.ColorGray)
	case EntityMoon:
		ch := MoonChar
		if req.Frame == fullMoonPhase {
			ch = FullMoonChar
		}
		c.dst.SetColor(r.X, r.Y, ch, fadeColor(req.Opacity, core.ColorBrightYellow))
	case EntityStar:
		c.dst.SetColor(r.X, r.Y, StarChar, fadeColor(req.Opacity, core.ColorBrightWhite))
	case EntityObstacle:
		c.drawObstacle(req, r)
	case EntityTRex:
		c.drawTRex(req, r)
	}
	// Digits and the game-over panel are drawn as text by Game.Render.
}

func (c *cellRenderer) drawObstacle(req RenderRequest, r core.Rect) {
	if req.Obstacle != Pterodactyl {
		c.dst.DrawRect(r, CactusChar, core.ColorGreen)
		return
	}
	wing := WingUpChar
	if req.Frame == 1 {
		wing = WingDownChar
	}
	mid := r.Y + r.H/2
	c.dst.DrawHLine(r.X, mid, r.W, '=', core.ColorOrange)
	c.dst.SetColor(r.X, mid, '<', core.ColorOrange)
	c.dst.SetColor(r.X+r.W/2, mid-1, wing, core.ColorOrange)
}

func (c *cellRenderer) drawTRex(req RenderRequest, r core.Rect) {
	color := core.ColorWhite
	if req.Status == StatusCrashed {
		color = core.ColorRed
	}
	c.dst.DrawRect(r, TRexBody, color)
	c.dst.SetColor(r.Right()-1, r.Y, TRexHead, color)

	legs := r.Bottom() - 1
	if r.H < 2 {
		return
	}
	switch {
	case req.Status == StatusJumping:
		c.dst.SetColor(r.X, legs, TRexLeg1, color)
		c.dst.SetColor(r.X+1, legs, TRexLeg2, color)
		c.dst.DrawHLine(r.X+2, legs, r.W-2, ' ', core.ColorDefault)
	case req.Frame%2 == 0:
		c.dst.DrawHLine(r.X, legs, r.W, ' ', core.ColorDefault)
		c.dst.SetColor(r.X, legs, TRexLeg1, color)
		c.dst.SetColor(r.Right()-1, legs, TRexLeg2, color)
	default:
		c.dst.DrawHLine(r.X, legs, r.W, ' ', core.ColorDefault)
		c.dst.SetColor(r.X+1, legs, TRexLeg1, color)
		c.dst.SetColor(r.Right()-1, legs, TRexLeg2, color)
	}
}

func fadeColor(opacity float64, c core.Color) core.Color {
	if opacity < 0.5 {
		return core.ColorGray
	}
	return c
}
