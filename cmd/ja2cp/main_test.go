package main

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/JiepengTan/ja2cp"
)

// execute runs the root command with args and a config path that does
// not exist, so every run starts from the defaults
func execute(t *testing.T, args ...string) error {
	t.Helper()
	verbose = false
	vanillaPath = ""
	args = append(args, "--config", filepath.Join(t.TempDir(), "ja2cp.yaml"))
	rootCmd.SetArgs(args)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	return rootCmd.Execute()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func writeSprite(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, A: 255})
		}
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func newWeaponPack(t *testing.T) string {
	t.Helper()
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "manifest.json"), `{"Name": "Blades", "UniqueID": "Tester.Blades"}`)
	writeFile(t, filepath.Join(src, "Weapons", "Saber", "weapon.json"), `{
	"Name": "Saber",
	"Description": "Curved.",
	"Type": "Sword",
	"MinimumDamage": 5,
	"MaximumDamage": 9,
}`)
	writeSprite(t, filepath.Join(src, "Weapons", "Saber", "weapon.png"), 16, 16)
	return src
}

func TestConvertCommand(t *testing.T) {
	src := newWeaponPack(t)
	dst := filepath.Join(t.TempDir(), "[CP] Blades")

	require.NoError(t, execute(t, "convert", "-m", "Weapons", "-s", src, "-d", dst))

	content, err := os.ReadFile(filepath.Join(dst, "Weapons", "content.json"))
	require.NoError(t, err)
	doc := gjson.ParseBytes(content)
	assert.Equal(t, ja2cp.DefaultFormat, doc.Get("Format").String())
	assert.Equal(t, "Blades Weapon Textures", doc.Get("Changes.0.LogName").String())
	assert.Equal(t, "Mods/Tester.Blades/Weapons", doc.Get("Changes.0.Target").String())
	assert.Equal(t, int64(3), doc.Get(`Changes.1.Entries.Tester\.Blades_Saber.Type`).Int())

	assert.FileExists(t, filepath.Join(dst, "assets", "textures", "weaponobjects.png"))
	assert.FileExists(t, filepath.Join(dst, "i18n", "default", "Weapons.json"))
}

func TestConvertCommandErrors(t *testing.T) {
	src := newWeaponPack(t)
	dst := t.TempDir()

	err := execute(t, "convert", "-m", "hats", "-s", src, "-d", dst)
	assert.ErrorIs(t, err, ja2cp.ErrUnknownMode)

	err = execute(t, "convert", "-m", "weapons", "-s", t.TempDir(), "-d", dst)
	assert.ErrorIs(t, err, ja2cp.ErrNoManifest)

	err = execute(t, "convert", "-m", "weapons", "-s", filepath.Join(src, "missing"), "-d", dst)
	assert.Error(t, err)
}

func TestMYCCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Objects.json"), `{"24": {"Name": "Parsnip"}}`)
	writeFile(t, filepath.Join(dir, "HarvestRules.json"), `{
	"Harvests": [
		{"CropName": "Blue Melon", "HarvestRules": [{"ItemName": "Parsnip", "MinAmount": 1}]},
	],
}`)
	out := filepath.Join(dir, "out", "HarvestRules.json")

	require.NoError(t, execute(t, "myc",
		"--mod-id", "Tester.Pack",
		"--in", filepath.Join(dir, "HarvestRules.json"),
		"--out", out,
		"--vanilla", filepath.Join(dir, "Objects.json")))

	converted, err := os.ReadFile(out)
	require.NoError(t, err)
	doc := gjson.ParseBytes(converted)
	assert.Equal(t, "Tester.Pack_BlueMelon", doc.Get("Harvests.0.CropName").String())
	assert.Equal(t, "Parsnip", doc.Get("Harvests.0.HarvestRules.0.ItemName").String())
}

func TestVanillaCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Objects.json"), `{
	"24": {"Name": "Parsnip"},
	"613": {"Name": "Apple"},
}`)
	out := filepath.Join(dir, "vanillaObjects.json")

	require.NoError(t, execute(t, "vanilla", "--objects", filepath.Join(dir, "Objects.json"), "--out", out))

	idx, err := ja2cp.LoadVanillaIndex(out)
	require.NoError(t, err)
	assert.Equal(t, ja2cp.VanillaIndex{"Parsnip": "24", "Apple": "613"}, idx)
}

func TestVanillaCommandWithoutObjects(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Objects.json"), `{"24": {"Type": "Basic"}}`)

	err := execute(t, "vanilla", "--objects", filepath.Join(dir, "Objects.json"), "--out", filepath.Join(dir, "idx.json"))
	assert.Error(t, err)
}

func TestCleanPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := map[string]string{
		`"[JA] My Mod"`:    "[JA] My Mod",
		` 'mods/pack/' `:   filepath.Join("mods", "pack"),
		`mods\pack\a.json`: filepath.Join("mods", "pack", "a.json"),
		`~/mods`:           filepath.Join(home, "mods"),
		`mods/./x/../y`:    filepath.Join("mods", "y"),
	}
	for in, want := range tests {
		assert.Equal(t, want, cleanPath(in), in)
	}
}
