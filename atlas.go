package felt

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// BackRegion is the atlas region name for the shared card back. Face
// regions use the card's short label: "AS", "10H", "QC".
const BackRegion = "back"

// Atlas serves card images cut from sprite-sheet pages. Regions are
// sub-images of their page, so no pixel data is copied. Implements
// CardImageProvider.
type Atlas struct {
	pages   []*ebiten.Image
	regions map[string]*ebiten.Image
	debug   bool
}

// CardImage returns the face image for rank and suit. A missing region
// yields a magenta placeholder so broken sheets are visible, not fatal.
func (a *Atlas) CardImage(rank Rank, suit Suit) *ebiten.Image {
	return a.Region(rank.String() + suit.String())
}

// BackImage returns the shared card-back image.
func (a *Atlas) BackImage() *ebiten.Image {
	return a.Region(BackRegion)
}

// Region returns the named region, or the magenta placeholder if the
// sheet has no such region.
func (a *Atlas) Region(name string) *ebiten.Image {
	if img, ok := a.regions[name]; ok {
		return img
	}
	if a.debug {
		log.Printf("felt: atlas region %q not found, using magenta placeholder", name)
	}
	return ensurePlaceholderImage()
}

// SetDebugMode enables a stderr warning for each missing-region lookup.
func (a *Atlas) SetDebugMode(enabled bool) {
	a.debug = enabled
}

// placeholder singleton (no sync.Once — felt is single-threaded)
var placeholderImage *ebiten.Image

func ensurePlaceholderImage() *ebiten.Image {
	if placeholderImage == nil {
		placeholderImage = ebiten.NewImage(int(defaultCardWidth), int(defaultCardHeight))
		placeholderImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return placeholderImage
}

// NewGridAtlas cuts a single sheet laid out as a regular grid: one row per
// suit in Hearts, Diamonds, Clubs, Spades order with thirteen face columns
// Ace through King, and a fifth row whose first cell is the card back.
// Cell size is cw×ch pixels.
func NewGridAtlas(sheet *ebiten.Image, cw, ch int) *Atlas {
	a := &Atlas{
		pages:   []*ebiten.Image{sheet},
		regions: make(map[string]*ebiten.Image, 53),
	}
	for s := Hearts; s <= Spades; s++ {
		row := int(s - Hearts)
		for r := Ace; r <= King; r++ {
			col := int(r - Ace)
			a.regions[r.String()+s.String()] = cell(sheet, col, row, cw, ch)
		}
	}
	a.regions[BackRegion] = cell(sheet, 0, 4, cw, ch)
	return a
}

func cell(sheet *ebiten.Image, col, row, cw, ch int) *ebiten.Image {
	rect := image.Rect(col*cw, row*ch, (col+1)*cw, (row+1)*ch)
	return sheet.SubImage(rect).(*ebiten.Image)
}

// LoadAtlas parses TexturePacker JSON data and associates the given page
// images. Supports both the hash format (single "frames" object) and the
// array format ("textures" array with per-page frame lists). Region names
// follow the sheet's frame names; card faces are expected under their
// short labels and the back under BackRegion.
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("felt: failed to parse atlas JSON: %w", err)
	}

	a := &Atlas{
		pages:   pages,
		regions: make(map[string]*ebiten.Image),
	}

	switch {
	case probe.Textures != nil:
		var textures []jsonTexturePage
		if err := json.Unmarshal(probe.Textures, &textures); err != nil {
			return nil, fmt.Errorf("felt: failed to parse atlas textures array: %w", err)
		}
		for i, tex := range textures {
			if err := a.cutFrames(tex.Frames, i); err != nil {
				return nil, err
			}
		}
	case probe.Frames != nil:
		var frames map[string]jsonFrame
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("felt: failed to parse atlas frames: %w", err)
		}
		if err := a.cutFrames(frames, 0); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("felt: atlas JSON has neither \"frames\" nor \"textures\" key")
	}

	return a, nil
}

func (a *Atlas) cutFrames(frames map[string]jsonFrame, page int) error {
	if page >= len(a.pages) || a.pages[page] == nil {
		return fmt.Errorf("felt: atlas frame references missing page %d", page)
	}
	img := a.pages[page]
	for name, f := range frames {
		rect := image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+f.Frame.W, f.Frame.Y+f.Frame.H)
		a.regions[name] = img.SubImage(rect).(*ebiten.Image)
	}
	return nil
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame jsonRect `json:"frame"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}
