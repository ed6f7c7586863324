package ja2cp

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

const testModID = "Tester.Pack"

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// writePNG writes a w x h image filled with c
func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

// newPack creates a source pack with a manifest and returns its directory
func newPack(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "manifest.json"), `{
	"Name": "Test Pack",
	"Author": "Tester",
	"Version": "1.0.0",
	"UniqueID": "Tester.Pack",
	"ContentPackFor": {"UniqueID": "spacechase0.JsonAssets"},
}`)
	return dir
}

func testOptions() Options {
	return Options{
		ModID:     testModID,
		LogPrefix: "Test Pack",
		Vanilla:   VanillaIndex{"Apple": "613", "Parsnip": "24"},
	}
}

// changeByTarget finds the single change patching target
func changeByTarget(t *testing.T, pack ContentPack, action, target string) Change {
	t.Helper()
	for _, ch := range pack.Changes {
		if ch.Action == action && ch.Target == target {
			return ch
		}
	}
	t.Fatalf("no %s change for %s", action, target)
	return Change{}
}
