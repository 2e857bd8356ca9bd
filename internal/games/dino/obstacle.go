package dino

import (
	"fmt"
	"math"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
)

// ObstacleKind is the obstacle variant. Parameters live in the lookup table.
type ObstacleKind int

const (
	CactusSmall ObstacleKind = iota
	CactusLarge
	Pterodactyl
)

// String returns the configuration name of the kind.
func (k ObstacleKind) String() string {
	switch k {
	case CactusSmall:
		return config.ObstacleCactusSmall
	case CactusLarge:
		return config.ObstacleCactusLarge
	case Pterodactyl:
		return config.ObstaclePterodactyl
	default:
		return "UNKNOWN"
	}
}

// ParseObstacleKind maps a configuration name to its kind.
func ParseObstacleKind(name string) (ObstacleKind, error) {
	switch name {
	case config.ObstacleCactusSmall:
		return CactusSmall, nil
	case config.ObstacleCactusLarge:
		return CactusLarge, nil
	case config.ObstaclePterodactyl:
		return Pterodactyl, nil
	default:
		return 0, fmt.Errorf("dino: %w: unknown obstacle type %q", config.ErrInvalidConfig, name)
	}
}

func (k ObstacleKind) sprite() Sprite {
	switch k {
	case CactusLarge:
		return SpriteCactusLarge
	case Pterodactyl:
		return SpritePterodactyl
	default:
		return SpriteCactusSmall
	}
}

// obstacleType is one row of the obstacle lookup table, in world coordinates.
type obstacleType struct {
	kind          ObstacleKind
	width         float64
	height        float64
	yPositions    []float64
	multipleSpeed float64
	minGap        float64
	minSpeed      float64
	boxes         []core.Box
	frames        int
	frameRate     float64
	speedOffset   float64
}

// newObstacleTable builds the lookup table in configuration order.
func newObstacleTable(types []config.ObstacleTypeConfig, worldHeight int) ([]obstacleType, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("dino: %w: no obstacle types", config.ErrInvalidConfig)
	}
	table := make([]obstacleType, 0, len(types))
	for _, tc := range types {
		if err := tc.Validate(worldHeight); err != nil {
			return nil, fmt.Errorf("dino: %w", err)
		}
		kind, err := ParseObstacleKind(tc.Type)
		if err != nil {
			return nil, err
		}
		ys := make([]float64, len(tc.YFromBottom))
		for i, y := range tc.YFromBottom {
			ys[i] = float64(worldHeight - y)
		}
		table = append(table, obstacleType{
			kind:          kind,
			width:         float64(tc.Width),
			height:        float64(tc.Height),
			yPositions:    ys,
			multipleSpeed: tc.MultipleSpeed,
			minGap:        tc.MinGap,
			minSpeed:      tc.MinSpeed,
			boxes:         boxesFromConfig(tc.Boxes),
			frames:        tc.Frames,
			frameRate:     tc.FrameRate,
			speedOffset:   tc.SpeedOffset,
		})
	}
	return table, nil
}

// spawnParams carries the spawner settings an obstacle needs at creation.
type spawnParams struct {
	worldWidth        float64
	fps               float64
	gapCoefficient    float64
	maxGapCoefficient float64
	maxLength         int
}

// Obstacle is a cactus group or a flying pterodactyl scrolling towards the character.
type Obstacle struct {
	typ   *obstacleType
	atlas *Atlas
	fps   float64

	size        int
	x, y        float64
	width       float64
	gap         int
	boxes       []core.Box
	speedOffset float64

	currentFrame int
	timer        float64

	followingObstacleCreated bool
	remove                   bool
}

// newObstacle spawns an obstacle just past the right edge of the world.
func newObstacle(typ *obstacleType, atlas *Atlas, rng core.Rand, speed float64, p spawnParams) *Obstacle {
	o := &Obstacle{
		typ:   typ,
		atlas: atlas,
		fps:   p.fps,
		size:  randRange(rng, 1, p.maxLength),
		x:     p.worldWidth + typ.width,
		boxes: append([]core.Box(nil), typ.boxes...),
	}

	if o.size > 1 && typ.multipleSpeed > speed {
		o.size = 1
	}
	o.width = typ.width * float64(o.size)

	o.y = typ.yPositions[0]
	if len(typ.yPositions) > 1 {
		o.y = typ.yPositions[rng.Intn(len(typ.yPositions))]
	}

	if o.size > 1 && len(o.boxes) >= 3 {
		o.boxes[1].W = o.width - o.boxes[0].W - o.boxes[2].W
		o.boxes[2].X = o.width - o.boxes[2].W
	}

	if typ.speedOffset != 0 {
		o.speedOffset = typ.speedOffset
		if rng.Float64() <= 0.5 {
			o.speedOffset = -typ.speedOffset
		}
	}

	o.gap = o.computeGap(rng, p.gapCoefficient, p.maxGapCoefficient, speed)
	return o
}

// computeGap picks the distance to clear before the next spawn.
// The minimum widens with speed so obstacles stay reachable.
func (o *Obstacle) computeGap(rng core.Rand, gapCoefficient, maxGapCoefficient, speed float64) int {
	minGap, maxGap := gapRange(o.width, o.typ.minGap, gapCoefficient, maxGapCoefficient, speed)
	return randRange(rng, minGap, maxGap)
}

// gapRange returns the inclusive gap bounds for an obstacle of the given width.
func gapRange(width, typeMinGap, gapCoefficient, maxGapCoefficient, speed float64) (int, int) {
	minGap := int(math.Floor(width*speed + typeMinGap*gapCoefficient + 0.5))
	maxGap := int(math.Floor(float64(minGap)*maxGapCoefficient + 0.5))
	return minGap, maxGap
}

// update scrolls and animates the obstacle and flags it once off screen.
func (o *Obstacle) update(deltaMs, speed float64) {
	if o.remove {
		return
	}
	speed += o.speedOffset
	o.x -= math.Floor(speed*o.fps/1000*deltaMs + 0.5)

	if o.typ.frames > 1 {
		o.timer += deltaMs
		if o.timer >= o.typ.frameRate {
			o.currentFrame = (o.currentFrame + 1) % o.typ.frames
			o.timer = 0
		}
	}

	if !o.visible() {
		o.remove = true
	}
}

func (o *Obstacle) visible() bool {
	return o.x+o.width > 0
}

// CoarseBox returns the obstacle bounds shrunk by one pixel on each side.
func (o *Obstacle) CoarseBox() core.Box {
	return core.NewBox(o.x, o.y, o.width, o.typ.height).Inset(1)
}

// Boxes returns the fine collision boxes, relative to the coarse box.
func (o *Obstacle) Boxes() []core.Box {
	return o.boxes
}

func (o *Obstacle) Kind() ObstacleKind             { return o.typ.kind }
func (o *Obstacle) X() float64                     { return o.x }
func (o *Obstacle) Y() float64                     { return o.y }
func (o *Obstacle) Width() float64                 { return o.width }
func (o *Obstacle) Height() float64                { return o.typ.height }
func (o *Obstacle) Size() int                      { return o.size }
func (o *Obstacle) Gap() int                       { return o.gap }
func (o *Obstacle) Frame() int                     { return o.currentFrame }
func (o *Obstacle) SpeedOffset() float64           { return o.speedOffset }
func (o *Obstacle) Removed() bool                  { return o.remove }
func (o *Obstacle) FollowingObstacleCreated() bool { return o.followingObstacleCreated }

func (o *Obstacle) draw(r Renderer, index int) {
	w := o.typ.width
	size := float64(o.size)
	// Groups are laid out left to right after the singles in the sheet.
	sx := (w * size) * (0.5 * (size - 1))
	if o.currentFrame > 0 {
		sx += w * float64(o.currentFrame)
	}
	r.Draw(RenderRequest{
		Kind:     EntityObstacle,
		Index:    index,
		Source:   o.atlas.Region(o.typ.kind.sprite(), sx, 0, w*size, o.typ.height),
		Dest:     core.NewBox(o.x, o.y, w*size, o.typ.height),
		Frame:    o.currentFrame,
		Opacity:  1,
		Obstacle: o.typ.kind,
		Size:     o.size,
	})
}

// randRange returns a uniform integer in [lo, hi].
// An empty range is a configuration bug and panics.
func randRange(rng core.Rand, lo, hi int) int {
	if lo > hi {
		panic(fmt.Sprintf("dino: empty random range [%d, %d]", lo, hi))
	}
	return lo + rng.Intn(hi-lo+1)
}
