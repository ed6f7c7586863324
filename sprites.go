package ja2cp

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"
)

// SheetLayout describes the fixed grid of a spritesheet
type SheetLayout struct {
	Name       string
	Columns    int
	CellWidth  int
	CellHeight int
}

// Grids used by the game for each kind of texture
var (
	ObjectLayout    = SheetLayout{Name: "objects", Columns: 24, CellWidth: 16, CellHeight: 16}
	CropLayout      = SheetLayout{Name: "crops", Columns: 2, CellWidth: 128, CellHeight: 32}
	FruitTreeLayout = SheetLayout{Name: "fruittrees", Columns: 1, CellWidth: 432, CellHeight: 80}
	WeaponLayout    = SheetLayout{Name: "weapons", Columns: 8, CellWidth: 16, CellHeight: 16}
	BigObjectLayout = SheetLayout{Name: "bigobjects", Columns: 8, CellWidth: 16, CellHeight: 32}
)

// Width returns the pixel width of the sheet
func (l SheetLayout) Width() int {
	return l.Columns * l.CellWidth
}

// Rows returns how many rows count sprites occupy
func (l SheetLayout) Rows(count int) int {
	return (count + l.Columns - 1) / l.Columns
}

// Size returns the pixel size of a sheet holding count sprites
func (l SheetLayout) Size(count int) image.Point {
	return image.Pt(l.Width(), l.Rows(count)*l.CellHeight)
}

// Slot returns the cell occupied by the sprite at index
func (l SheetLayout) Slot(index int) image.Rectangle {
	x := (index % l.Columns) * l.CellWidth
	y := (index / l.Columns) * l.CellHeight
	return image.Rect(x, y, x+l.CellWidth, y+l.CellHeight)
}

// SpriteSheet collects sprite files and hands out their indices
type SpriteSheet struct {
	Name   string
	Layout SheetLayout

	paths []string
	index map[string]int
}

// NewSpriteSheet creates an empty sheet written as <name>.png
func NewSpriteSheet(name string, layout SheetLayout) *SpriteSheet {
	return &SpriteSheet{
		Name:   name,
		Layout: layout,
		index:  make(map[string]int),
	}
}

// Add allocates the next free index for the image at path. Adding a path
// twice returns the index it already has.
func (s *SpriteSheet) Add(path string) int {
	if idx, ok := s.index[path]; ok {
		return idx
	}
	idx := len(s.paths)
	s.paths = append(s.paths, path)
	s.index[path] = idx
	return idx
}

// Len returns the number of sprites on the sheet
func (s *SpriteSheet) Len() int {
	return len(s.paths)
}

// Paths returns the sprite files in index order
func (s *SpriteSheet) Paths() []string {
	return append([]string(nil), s.paths...)
}

// FileName returns the name of the PNG written for the sheet
func (s *SpriteSheet) FileName() string {
	return s.Name + ".png"
}

// Compose pastes every sprite into its cell. Every unreadable sprite is
// reported in the returned error.
func (s *SpriteSheet) Compose(log *zap.Logger) (*image.RGBA, error) {
	if log == nil {
		log = zap.NewNop()
	}
	size := s.Layout.Size(len(s.paths))
	sheet := image.NewRGBA(image.Rectangle{Max: size})

	var errs error
	for i, path := range s.paths {
		img, err := decodeImage(path)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		cell := s.Layout.Slot(i)
		b := img.Bounds()
		if b.Dx() > cell.Dx() || b.Dy() > cell.Dy() {
			log.Warn("sprite larger than its cell, clipping",
				zap.String("file", path),
				zap.Int("width", b.Dx()),
				zap.Int("height", b.Dy()),
				zap.String("layout", s.Layout.Name))
		}
		sr := image.Rectangle{Min: b.Min, Max: b.Min.Add(cell.Size())}.Intersect(b)
		xdraw.Copy(sheet, cell.Min, img, sr, xdraw.Src, nil)
		log.Debug("placed sprite",
			zap.String("file", path),
			zap.Int("index", i),
			zap.Int("x", cell.Min.X),
			zap.Int("y", cell.Min.Y))
	}
	if errs != nil {
		return nil, fmt.Errorf("spritesheet %s: %w", s.Name, errs)
	}
	return sheet, nil
}

// Save composes the sheet and writes it to dir. Empty sheets are skipped
// and return an empty path.
func (s *SpriteSheet) Save(dir string, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if s.Len() == 0 {
		log.Info("no sprites, skipping sheet", zap.String("sheet", s.Name))
		return "", nil
	}
	sheet, err := s.Compose(log)
	if err != nil {
		return "", err
	}
	return s.writePNG(dir, sheet)
}

// writePNG encodes a composed sheet as <dir>/<name>.png
func (s *SpriteSheet) writePNG(dir string, sheet image.Image) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create texture directory: %w", err)
	}
	outPath := filepath.Join(dir, s.FileName())
	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer f.Close()
	if err := png.Encode(f, sheet); err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", outPath, err)
	}
	return outPath, nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sprite %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sprite %s: %w", path, err)
	}
	return img, nil
}
