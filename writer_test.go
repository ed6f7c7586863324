package ja2cp

import (
	"encoding/json"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestResultWrite(t *testing.T) {
	src := newPack(t)
	writeArtisanPack(t, src)
	dst := t.TempDir()

	res, err := Convert(src, ModeObjects, testOptions())
	require.NoError(t, err)
	require.NoError(t, res.Write(dst, zaptest.NewLogger(t)))

	content, err := os.ReadFile(filepath.Join(dst, "Artisan", "content.json"))
	require.NoError(t, err)
	var pack struct {
		Format  string
		Changes []map[string]any
	}
	require.NoError(t, json.Unmarshal(content, &pack))
	assert.Equal(t, DefaultFormat, pack.Format)
	assert.Len(t, pack.Changes, 7)
	assert.Equal(t, "Load", pack.Changes[0]["Action"])
	assert.NotContains(t, pack.Changes[0], "Entries")
	assert.Contains(t, string(content), "    \"Format\": \"1.30.0\"")

	var defaults map[string]string
	raw, err := os.ReadFile(filepath.Join(dst, "i18n", "default", "Artisan.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &defaults))
	assert.Equal(t, "Apple Cider", defaults["AppleCider.DisplayName"])
	assert.Contains(t, string(raw), "Fizzy & sweet.")

	var german map[string]string
	raw, err = os.ReadFile(filepath.Join(dst, "i18n", "de", "Artisan.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &german))
	assert.Equal(t, map[string]string{"AppleCider.DisplayName": "Apfelwein"}, german)

	objects := readPNG(t, filepath.Join(dst, "assets", "textures", "artisanobjects.png"))
	assert.Equal(t, image.Rect(0, 0, 384, 16), objects.Bounds())
	assert.Equal(t, red, rgbaAt(objects, 0, 0))
	assert.Equal(t, green, rgbaAt(objects, 16, 0))

	machines := readPNG(t, filepath.Join(dst, "assets", "textures", "artisanmachines.png"))
	assert.Equal(t, image.Rect(0, 0, 128, 32), machines.Bounds())
	assert.Equal(t, blue, rgbaAt(machines, 0, 31))
}

func TestResultWriteSkipsEmptySheets(t *testing.T) {
	src := newPack(t)
	writeFile(t, filepath.Join(src, "Objects", "Pebble", "object.json"), `{"Name": "Pebble", "Category": "Mineral"}`)
	writePNG(t, filepath.Join(src, "Objects", "Pebble", "object.png"), 16, 16, red)
	dst := t.TempDir()

	res, err := Convert(src, ModeObjects, testOptions())
	require.NoError(t, err)
	require.NoError(t, res.Write(dst, nil))

	assert.FileExists(t, filepath.Join(dst, "assets", "textures", "artisanobjects.png"))
	assert.NoFileExists(t, filepath.Join(dst, "assets", "textures", "artisanmachines.png"))
	assert.NoDirExists(t, filepath.Join(dst, "i18n", "de"))
}

func TestResultWriteMissingSpriteWritesNothing(t *testing.T) {
	src := newPack(t)
	writeFile(t, filepath.Join(src, "Objects", "Ghost", "object.json"), `{"Name": "Ghost", "Category": "Junk"}`)
	writeFile(t, filepath.Join(src, "BigCraftables", "Shade", "big-craftable.json"), `{"Name": "Shade"}`)
	dst := t.TempDir()

	res, err := Convert(src, ModeObjects, testOptions())
	require.NoError(t, err)
	err = res.Write(dst, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), filepath.Join("Ghost", "object.png"))
	assert.Contains(t, err.Error(), filepath.Join("Shade", "big-craftable.png"))

	assert.NoFileExists(t, filepath.Join(dst, "Artisan", "content.json"))
	assert.NoDirExists(t, filepath.Join(dst, "i18n"))
	assert.NoDirExists(t, filepath.Join(dst, "assets"))
}
