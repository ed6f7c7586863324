package ja2cp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	dir := newPack(t)
	m, err := LoadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, Manifest{
		UniqueID: "Tester.Pack",
		Name:     "Test Pack",
		Author:   "Tester",
		Version:  "1.0.0",
	}, m)
}

func TestLoadManifestWithBOM(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "manifest.json"), "\ufeff{\"UniqueID\": \"Bom.Pack\"}")
	m, err := LoadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, "Bom.Pack", m.UniqueID)
}

func TestLoadManifestErrors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := LoadManifest(t.TempDir())
		assert.ErrorIs(t, err, ErrNoManifest)
	})
	t.Run("no UniqueID", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "manifest.json"), `{"Name": "Nameless"}`)
		_, err := LoadManifest(dir)
		assert.ErrorIs(t, err, ErrNoManifest)
	})
	t.Run("invalid", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "manifest.json"), `{"UniqueID": `)
		_, err := LoadManifest(dir)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoManifest)
		assert.Contains(t, err.Error(), "invalid JSON")
	})
}

func TestScanDescriptors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b", "object.json"), `{}`)
	writeFile(t, filepath.Join(dir, "a", "object.JSON"), `{}`)
	writeFile(t, filepath.Join(dir, "a", "notes.txt"), `not json`)
	writeFile(t, filepath.Join(dir, "c", "nested", "object.json"), `{}`)

	files, err := ScanDescriptors(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a", "object.JSON"),
		filepath.Join(dir, "b", "object.json"),
		filepath.Join(dir, "c", "nested", "object.json"),
	}, files)
}

func TestScanDescriptorsMissingDir(t *testing.T) {
	files, err := ScanDescriptors(filepath.Join(t.TempDir(), "Objects"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLoadDescriptor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Cider", "object.json")
	writeFile(t, path, `{
	// JSON Assets files often carry comments
	"Name": "Cider",
	"Price": 100, /* and block comments */
	"ContextTags": ["a", "b",],
}`)

	d, err := LoadDescriptor(path)
	require.NoError(t, err)
	assert.Equal(t, "Cider", d.Get("Name").String())
	assert.Equal(t, int64(100), d.Get("Price").Int())
	assert.Equal(t, []string{"a", "b"}, stringList(d.Get("ContextTags")))
	assert.True(t, d.Has("Price"))
	assert.False(t, d.Has("Description"))

	assert.Equal(t, filepath.Join(dir, "Cider"), d.Dir())
	assert.Equal(t, filepath.Join(dir, "Cider", "object.png"), d.OwnImage())
	assert.Equal(t, filepath.Join(dir, "Cider", "seeds.png"), d.SiblingImage("seeds.png"))
}

func TestLoadDescriptorJSON5(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Apple", "object.json")
	writeFile(t, path, `{
	Name: 'Apple',
	Description: 'It\'s "red"', // single quotes
	Source: 'http://example.com/a',
	Price: 50,
	ContextTags: ['fruit_item',],
}`)

	d, err := LoadDescriptor(path)
	require.NoError(t, err)
	assert.Equal(t, "Apple", d.Get("Name").String())
	assert.Equal(t, `It's "red"`, d.Get("Description").String())
	assert.Equal(t, "http://example.com/a", d.Get("Source").String())
	assert.Equal(t, int64(50), d.Get("Price").Int())
	assert.Equal(t, []string{"fruit_item"}, stringList(d.Get("ContextTags")))
}

func TestRelaxJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{Name: 'Apple'}`, `{"Name": "Apple"}`},
		{`{"a": 'x"y'}`, `{"a": "x\"y"}`},
		{`{a: 'it\'s'}`, `{"a": "it's"}`},
		{`{a: '', $b2 : null}`, `{"a": "", "$b2" : null}`},
		{`{"url": "http://x", b: true}`, `{"url": "http://x", "b": true}`},
		{`{"s": "don't", n: 1e5}`, `{"s": "don't", "n": 1e5}`},
		{"// note: 'x'\n{k: 1}", "// note: 'x'\n{\"k\": 1}"},
		{`/* a: 'b' */ {k: [true, false]}`, `/* a: 'b' */ {"k": [true, false]}`},
		{`{a: 'open}`, `{"a": 'open}`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, string(relaxJSON([]byte(tt.in))))
		})
	}
}

func TestLoadDescriptorsStopsAtInvalidFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "object.json"), `{"Name": "A"}`)
	writeFile(t, filepath.Join(dir, "b", "object.json"), `{"Name": `)

	_, err := LoadDescriptors(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), filepath.Join(dir, "b", "object.json"))
}
