package ja2cp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// TexturesDir is where composed spritesheets are written, relative to the
// output pack; FromFile paths point here.
const TexturesDir = "assets/textures"

// Write saves the Content Patcher document, translations and spritesheets
// of r below dstDir:
//
//	<dst>/<subdir>/content.json
//	<dst>/i18n/<locale>/<subdir>.json
//	<dst>/assets/textures/<sheet>.png
func (r *Result) Write(dstDir string, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	// Nothing is written unless every sheet composes.
	composed := make([]*image.RGBA, len(r.Sheets))
	var errs error
	for i, sheet := range r.Sheets {
		if sheet.Len() == 0 {
			log.Info("no sprites, skipping sheet", zap.String("sheet", sheet.Name))
			continue
		}
		img, err := sheet.Compose(log)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		composed[i] = img
	}
	if errs != nil {
		return errs
	}

	contentPath, err := r.WriteContent(dstDir)
	if err != nil {
		return err
	}
	log.Info("Content Patcher data written", zap.String("path", contentPath))

	files, err := r.WriteTranslations(dstDir)
	if err != nil {
		return err
	}
	log.Info("i18n data written", zap.Strings("files", files))

	textureDir := filepath.Join(dstDir, filepath.FromSlash(TexturesDir))
	for i, sheet := range r.Sheets {
		if composed[i] == nil {
			continue
		}
		out, err := sheet.writePNG(textureDir, composed[i])
		if err != nil {
			return err
		}
		log.Info("spritesheet saved", zap.String("path", out), zap.Int("sprites", sheet.Len()))
	}
	return nil
}

// WriteContent writes <dst>/<subdir>/content.json and returns its path
func (r *Result) WriteContent(dstDir string) (string, error) {
	dir := filepath.Join(dstDir, r.Subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	data, err := marshalIndent(r.Pack)
	if err != nil {
		return "", fmt.Errorf("failed to marshal content.json: %w", err)
	}
	outPath := filepath.Join(dir, "content.json")
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return outPath, nil
}

// WriteTranslations writes one file per language and returns their paths
// in language order
func (r *Result) WriteTranslations(dstDir string) ([]string, error) {
	langs := make([]string, 0, len(r.Translations))
	for lang := range r.Translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	var files []string
	for _, lang := range langs {
		table := r.Translations[lang]
		if len(table) == 0 {
			continue
		}
		dir := filepath.Join(dstDir, "i18n", Locale(lang))
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
		data, err := marshalIndent(table)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s translations: %w", lang, err)
		}
		outPath := filepath.Join(dir, r.Subdir+".json")
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		files = append(files, outPath)
	}
	return files, nil
}

// marshalIndent encodes v with four-space indentation, leaving &, < and >
// unescaped so descriptions stay readable
func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
