package felt

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CardImageProvider maps abstract card identity to raster images. The core
// never touches pixel data; asset loading lives behind this interface.
type CardImageProvider interface {
	// CardImage returns the face image for a rank and suit.
	CardImage(rank Rank, suit Suit) *ebiten.Image
	// BackImage returns the shared card-back image.
	BackImage() *ebiten.Image
}

// Renderer walks a table's draw list once per frame and submits it to an
// ebiten image.
type Renderer struct {
	Images CardImageProvider

	// Marker colors. Zero values get sensible defaults from NewRenderer.
	StackColor   color.RGBA
	PileColor    color.RGBA
	OutlineColor color.RGBA

	// ScreenshotDir is where Screenshot writes its PNG files.
	ScreenshotDir string

	list            DrawList // reused between frames
	screenshotQueue []string
}

// NewRenderer creates a renderer with default marker colors.
func NewRenderer(images CardImageProvider) *Renderer {
	return &Renderer{
		Images:        images,
		StackColor:    color.RGBA{R: 0x39, G: 0xc5, B: 0x6e, A: 0xff},
		PileColor:     color.RGBA{R: 0x3f, G: 0x8f, B: 0xde, A: 0xff},
		OutlineColor:  color.RGBA{R: 0xe8, G: 0xe0, B: 0xc8, A: 0xff},
		ScreenshotDir: "screenshots",
	}
}

// Draw renders the table bottom-up onto screen.
func (r *Renderer) Draw(screen *ebiten.Image, t *Table) {
	r.list = t.BuildDrawList(r.list)

	for i := range r.list.Ops {
		r.drawOp(screen, &r.list.Ops[i])
	}
	for i := range r.list.Outlines {
		r.drawOutline(screen, &r.list.Outlines[i])
	}

	r.flushScreenshots(screen)
}

func (r *Renderer) drawOp(screen *ebiten.Image, op *DrawOp) {
	img := r.Images.CardImage(op.Card.Rank, op.Card.Suit)
	if op.FaceDown {
		img = r.Images.BackImage()
	}
	if img == nil {
		return
	}

	w := float64(img.Bounds().Dx())
	var geo ebiten.GeoM
	if op.SquashX != 1 {
		// Squash about the card's vertical centerline for the flip effect.
		geo.Translate(-w/2, 0)
		geo.Scale(op.SquashX, 1)
		geo.Translate(w/2, 0)
	}
	geo.Scale(op.Scale, op.Scale)
	geo.Rotate(op.Dir.Radians())
	geo.Translate(op.X, op.Y)

	opts := &ebiten.DrawImageOptions{GeoM: geo}
	screen.DrawImage(img, opts)

	if op.Marker != MarkerNone {
		r.strokeMarker(screen, op)
	}
}

// strokeMarker outlines the op's footprint in the marker's color. Quarter
// turns keep the footprint axis-aligned, so the anchor and opposite corner
// bound it exactly.
func (r *Renderer) strokeMarker(screen *ebiten.Image, op *DrawOp) {
	var col color.RGBA
	switch op.Marker {
	case MarkerStackPreview:
		col = r.StackColor
	case MarkerPilePreview:
		col = r.PileColor
	default:
		col = r.OutlineColor
	}
	w := op.Card.W * op.Scale
	h := op.Card.H * op.Scale
	strokeFootprint(screen, op.X, op.Y, w, h, op.Dir, col)
}

func (r *Renderer) drawOutline(screen *ebiten.Image, op *OutlineOp) {
	strokeFootprint(screen, op.X, op.Y, op.W, op.H, op.Dir, r.OutlineColor)
}

func strokeFootprint(screen *ebiten.Image, x, y, w, h float64, d Direction, col color.RGBA) {
	cx, cy := d.Corner(x, y, w, h)
	x0 := math.Min(x, cx)
	y0 := math.Min(y, cy)
	vector.StrokeRect(screen,
		float32(x0), float32(y0),
		float32(math.Abs(cx-x)), float32(math.Abs(cy-y)),
		2, col, true)
}
