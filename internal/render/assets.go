package render

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"path"

	"github.com/dino-pairs/dino_pairs/internal/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/image/draw"
)

// Fit selects how a source image is scaled into its target box.
type Fit uint8

const (
	FitLetterbox Fit = iota // keep aspect ratio, center, pad transparent
	FitStretch              // fill the box exactly
)

type assetKey struct {
	path string
	w, h int
	fit  Fit
}

type assetEntry struct {
	img *ebiten.Image
	ok  bool
}

// AssetStore loads card and background images from an fs.FS and caches them
// by (path, size, fit). Missing or corrupt files are replaced by a
// placeholder and logged once per path.
type AssetStore struct {
	fsys    fs.FS
	envs    *world.Environments
	logger  *log.Logger
	cache   map[assetKey]assetEntry
	missing mapset.Set[string]
}

// NewAssetStore creates a store reading images from fsys. A nil logger uses
// log.Default().
func NewAssetStore(fsys fs.FS, envs *world.Environments, logger *log.Logger) *AssetStore {
	if logger == nil {
		logger = log.Default()
	}
	return &AssetStore{
		fsys:    fsys,
		envs:    envs,
		logger:  logger,
		cache:   make(map[assetKey]assetEntry),
		missing: mapset.New[string](),
	}
}

// CharacterPath returns the image path of a character, split by species.
func (s *AssetStore) CharacterPath(id world.CharacterID) string {
	dir := "animals"
	if rec, ok := s.envs.Catalog().Get(id); ok && rec.Species == world.SpeciesDinosaur {
		dir = "dinosaurs"
	}
	return path.Join("characters", dir, string(id)+".png")
}

// CardBackPath returns the image path of a card-back motif.
func CardBackPath(motif string) string {
	return path.Join("card_backs", motif+".png")
}

// Character returns the letterboxed front image of a character. It never
// fails: a missing image yields a placeholder.
func (s *AssetStore) Character(id world.CharacterID, w, h int) *ebiten.Image {
	img, _ := s.image(s.CharacterPath(id), w, h, FitLetterbox)
	return img
}

// CardBack returns the motif image stretched to the card. ok is false when
// the image is missing and a placeholder was returned.
func (s *AssetStore) CardBack(motif string, w, h int) (*ebiten.Image, bool) {
	if motif == "" {
		return nil, false
	}
	return s.image(CardBackPath(motif), w, h, FitStretch)
}

// Background returns the environment background stretched to the viewport.
// ok is false when there is no usable image.
func (s *AssetStore) Background(env world.HabitatID, w, h int) (*ebiten.Image, bool) {
	p := s.envs.Lookup(env).Background
	if p == "" {
		return nil, false
	}
	return s.image(p, w, h, FitStretch)
}

func (s *AssetStore) image(p string, w, h int, fit Fit) (*ebiten.Image, bool) {
	key := assetKey{path: p, w: w, h: h, fit: fit}
	if e, hit := s.cache[key]; hit {
		return e.img, e.ok
	}
	src, ok := s.prepare(p, w, h, fit)
	e := assetEntry{img: ebiten.NewImageFromImage(src), ok: ok}
	s.cache[key] = e
	return e.img, e.ok
}

// prepare decodes p and scales it into a w x h box.
func (s *AssetStore) prepare(p string, w, h int, fit Fit) (image.Image, bool) {
	src, err := s.decode(p)
	if err != nil {
		if !s.missing.Has(p) {
			s.missing.Put(p)
			s.logger.Printf("asset %s: %v (using placeholder)", p, err)
		}
		return Placeholder(w, h), false
	}
	if fit == FitStretch {
		return Stretch(src, w, h), true
	}
	return Letterbox(src, w, h), true
}

func (s *AssetStore) decode(p string) (image.Image, error) {
	if s.fsys == nil {
		return nil, fs.ErrNotExist
	}
	f, err := s.fsys.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// Letterbox scales src to fit inside w x h with its aspect ratio intact,
// centered on a transparent canvas.
func Letterbox(src image.Image, w, h int) *image.NRGBA {
	w, h = max(w, 1), max(h, 1)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	sb := src.Bounds()
	if sb.Empty() {
		return dst
	}

	sw, sh := sb.Dx(), sb.Dy()
	fw, fh := w, sh*w/sw
	if sw*h < sh*w {
		fw, fh = sw*h/sh, h
	}
	fw, fh = max(fw, 1), max(fh, 1)

	x0 := (w - fw) / 2
	y0 := (h - fh) / 2
	draw.CatmullRom.Scale(dst, image.Rect(x0, y0, x0+fw, y0+fh), src, sb, draw.Over, nil)
	return dst
}

// Stretch scales src to exactly w x h.
func Stretch(src image.Image, w, h int) *image.NRGBA {
	w, h = max(w, 1), max(h, 1)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if src.Bounds().Empty() {
		return dst
	}
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Placeholder draws a translucent gray box with a 2px border and a diagonal
// cross.
func Placeholder(w, h int) *image.NRGBA {
	w, h = max(w, 1), max(h, 1)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := placeholderFill
			if x < 2 || y < 2 || x >= w-2 || y >= h-2 {
				c = placeholderLine
			}
			img.SetNRGBA(x, y, c)
		}
	}
	for x := 0; x < w; x++ {
		y := x * (h - 1) / max(w-1, 1)
		img.SetNRGBA(x, y, placeholderLine)
		img.SetNRGBA(x, h-1-y, placeholderLine)
	}
	return img
}
