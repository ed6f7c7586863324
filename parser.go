package ja2cp

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

// JSON Assets content directories
const (
	ObjectsDir       = "Objects"
	BigCraftablesDir = "BigCraftables"
	CropsDir         = "Crops"
	FruitTreesDir    = "FruitTrees"
	WeaponsDir       = "Weapons"
)

var ErrNoManifest = errors.New("no usable manifest.json in source directory")

// Descriptor is one parsed JSON Assets item file
type Descriptor struct {
	Path string
	Data gjson.Result
}

// Dir returns the directory holding the descriptor and its sprites
func (d Descriptor) Dir() string {
	return filepath.Dir(d.Path)
}

// SiblingImage returns the path of a sprite stored next to the descriptor
func (d Descriptor) SiblingImage(name string) string {
	return filepath.Join(d.Dir(), name)
}

// OwnImage returns the descriptor path with its .json extension swapped for .png
func (d Descriptor) OwnImage() string {
	return strings.TrimSuffix(d.Path, filepath.Ext(d.Path)) + ".png"
}

// Get reads a field of the descriptor
func (d Descriptor) Get(path string) gjson.Result {
	return d.Data.Get(path)
}

// Has reports whether the descriptor sets a field
func (d Descriptor) Has(path string) bool {
	return d.Data.Get(path).Exists()
}

// LoadManifest reads the UniqueID and display fields of a source pack
func LoadManifest(srcDir string) (Manifest, error) {
	var m Manifest
	path := filepath.Join(srcDir, "manifest.json")
	doc, err := readJSON(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m, fmt.Errorf("%w: %s", ErrNoManifest, srcDir)
		}
		return m, err
	}

	m.UniqueID = doc.Get("UniqueID").String()
	m.Name = doc.Get("Name").String()
	m.Author = doc.Get("Author").String()
	m.Version = doc.Get("Version").String()
	if m.UniqueID == "" {
		return m, fmt.Errorf("%w: %s has no UniqueID", ErrNoManifest, path)
	}
	return m, nil
}

// ScanDescriptors lists every .json file below dir in lexical order.
// A missing directory has no descriptors.
func ScanDescriptors(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipDir
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(d.Name()), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// LoadDescriptor reads a JSON Assets item file
func LoadDescriptor(path string) (Descriptor, error) {
	doc, err := readJSON(path)
	if err != nil {
		return Descriptor{}, err
	}
	return Descriptor{Path: path, Data: doc}, nil
}

// LoadDescriptors scans dir and parses every descriptor below it
func LoadDescriptors(dir string) ([]Descriptor, error) {
	files, err := ScanDescriptors(dir)
	if err != nil {
		return nil, err
	}
	descs := make([]Descriptor, 0, len(files))
	for _, f := range files {
		d, err := LoadDescriptor(f)
		if err != nil {
			return nil, err
		}
		descs = append(descs, d)
	}
	return descs, nil
}

// readJSON loads a file that may carry comments and trailing commas
func readJSON(path string) (gjson.Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return parseJSON(path, content)
}

func parseJSON(name string, content []byte) (gjson.Result, error) {
	// Strip a UTF-8 BOM
	content = []byte(strings.TrimPrefix(string(content), "\ufeff"))
	strict := jsonc.ToJSON(relaxJSON(content))
	if !gjson.ValidBytes(strict) {
		return gjson.Result{}, fmt.Errorf("invalid JSON in %s", name)
	}
	return gjson.ParseBytes(strict), nil
}

// relaxJSON rewrites the two JSON5 forms found in hand-written packs,
// single-quoted strings and unquoted object keys, into plain JSON. Comments
// and double-quoted strings are copied unchanged.
func relaxJSON(src []byte) []byte {
	out := make([]byte, 0, len(src)+len(src)/8)
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '"':
			end := stringEnd(src, i)
			out = append(out, src[i:end]...)
			i = end
		case c == '\'':
			end := stringEnd(src, i)
			if end-i < 2 || src[end-1] != '\'' {
				// unterminated, left for the validator to reject
				out = append(out, src[i:end]...)
			} else {
				out = appendRequoted(out, src[i+1:end-1])
			}
			i = end
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			end := bytes.IndexByte(src[i:], '\n')
			if end < 0 {
				end = len(src)
			} else {
				end += i
			}
			out = append(out, src[i:end]...)
			i = end
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := bytes.Index(src[i+2:], []byte("*/"))
			if end < 0 {
				end = len(src)
			} else {
				end += i + 4
			}
			out = append(out, src[i:end]...)
			i = end
		case isIdentStart(c):
			end := i + 1
			for end < len(src) && isIdentPart(src[end]) {
				end++
			}
			next := end
			for next < len(src) && isSpace(src[next]) {
				next++
			}
			if next < len(src) && src[next] == ':' {
				out = append(out, '"')
				out = append(out, src[i:end]...)
				out = append(out, '"')
			} else {
				out = append(out, src[i:end]...)
			}
			i = end
		default:
			out = append(out, c)
			i++
		}
	}
	return out
}

// stringEnd returns the index just past the string literal opened at
// start, or len(src) when it is never closed
func stringEnd(src []byte, start int) int {
	quote := src[start]
	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		}
	}
	return len(src)
}

// appendRequoted appends the body of a single-quoted string as a
// double-quoted one
func appendRequoted(out, body []byte) []byte {
	out = append(out, '"')
	for i := 0; i < len(body); i++ {
		switch b := body[i]; {
		case b == '\\' && i+1 < len(body) && body[i+1] == '\'':
			out = append(out, '\'')
			i++
		case b == '\\' && i+1 < len(body):
			out = append(out, b, body[i+1])
			i++
		case b == '"':
			out = append(out, '\\', '"')
		default:
			out = append(out, b)
		}
	}
	return append(out, '"')
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
