package ja2cp

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Mode selects which JSON Assets content a conversion handles
type Mode string

const (
	ModeObjects Mode = "objects"
	ModeCrops   Mode = "crops"
	ModeTrees   Mode = "trees"
	ModeWeapons Mode = "weapons"
)

var ErrUnknownMode = errors.New("unknown conversion mode")

// Modes lists every supported mode
var Modes = []Mode{ModeObjects, ModeCrops, ModeTrees, ModeWeapons}

// ParseMode parses a mode name, ignoring case
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q (options: objects, crops, trees, weapons)", ErrUnknownMode, s)
}

// ModeSettings names the outputs of a mode
type ModeSettings struct {
	// Label distinguishes the object textures and patch names of the mode.
	Label string
	// Subdir is the output folder of content.json and the i18n file name.
	Subdir string
	// ObjectSheet receives object sprites (weapon sprites in weapons mode).
	ObjectSheet string
	// ExtraSheet receives big craftable, crop or fruit tree sprites.
	ExtraSheet string
}

// DefaultModeSettings returns the naming used when nothing is configured
func DefaultModeSettings(m Mode) ModeSettings {
	switch m {
	case ModeCrops:
		return ModeSettings{Label: "Crops", Subdir: "Crops", ObjectSheet: "cropobjects", ExtraSheet: "crops"}
	case ModeTrees:
		return ModeSettings{Label: "Trees", Subdir: "Trees", ObjectSheet: "treeobjects", ExtraSheet: "fruittrees"}
	case ModeWeapons:
		return ModeSettings{Label: "Weapons", Subdir: "Weapons", ObjectSheet: "weaponobjects"}
	default:
		return ModeSettings{Label: "Artisan", Subdir: "Artisan", ObjectSheet: "artisanobjects", ExtraSheet: "artisanmachines"}
	}
}

// withDefaults fills every empty field from the mode's defaults
func (s ModeSettings) withDefaults(m Mode) ModeSettings {
	def := DefaultModeSettings(m)
	if s.Label == "" {
		s.Label = def.Label
	}
	if s.Subdir == "" {
		s.Subdir = def.Subdir
	}
	if s.ObjectSheet == "" {
		s.ObjectSheet = def.ObjectSheet
	}
	if s.ExtraSheet == "" {
		s.ExtraSheet = def.ExtraSheet
	}
	return s
}

// Result is everything one conversion produces
type Result struct {
	Mode         Mode
	Subdir       string
	Pack         ContentPack
	Translations Translations
	Sheets       []*SpriteSheet
}

// Convert reads the JSON Assets pack in srcDir and converts the content
// selected by mode
func Convert(srcDir string, mode Mode, opts Options) (*Result, error) {
	if srcDir == "" {
		return nil, errors.New("source directory is empty")
	}
	if opts.ModID == "" {
		return nil, errors.New("mod ID is empty")
	}
	if opts.Format == "" {
		opts.Format = DefaultFormat
	}
	settings := opts.Settings.withDefaults(mode)

	c := NewConverter(opts)
	c.log.Info("converting",
		zap.String("mode", string(mode)),
		zap.String("source", srcDir),
		zap.String("mod", opts.ModID))

	var (
		textures []Change
		data     []Change
		sheets   []*SpriteSheet
	)
	addTexture := func(logName, target string, sheet *SpriteSheet) {
		sheets = append(sheets, sheet)
		if sheet.Len() > 0 {
			textures = append(textures, c.textureChange(logName, target, sheet))
		}
	}
	addData := func(logName, target string, entries map[string]any) {
		if len(entries) > 0 {
			data = append(data, c.editData(logName, target, entries))
		}
	}

	switch mode {
	case ModeObjects, ModeCrops, ModeTrees:
		objDescs, err := LoadDescriptors(filepath.Join(srcDir, ObjectsDir))
		if err != nil {
			return nil, err
		}
		objSheet := NewSpriteSheet(settings.ObjectSheet, ObjectLayout)
		objects, err := c.buildObjects(objDescs, settings.Label, objSheet)
		if err != nil {
			return nil, err
		}

		var (
			extraSheet  *SpriteSheet
			extra       map[string]any
			extraLog    string
			extraTex    string
			extraTgt    string
			extraTexLog string
		)
		switch mode {
		case ModeObjects:
			descs, err := LoadDescriptors(filepath.Join(srcDir, BigCraftablesDir))
			if err != nil {
				return nil, err
			}
			extraSheet = NewSpriteSheet(settings.ExtraSheet, BigObjectLayout)
			if extra, err = c.buildBigCraftables(descs, settings.Label, extraSheet); err != nil {
				return nil, err
			}
			extraLog, extraTgt = c.logName("New Big Objects - %s", settings.Label), "Data/BigCraftables"
			extraTexLog, extraTex = c.logName("Big Object Textures - %s", settings.Label), c.bigObjectTexture(settings.Label)
		case ModeCrops:
			descs, err := LoadDescriptors(filepath.Join(srcDir, CropsDir))
			if err != nil {
				return nil, err
			}
			extraSheet = NewSpriteSheet(settings.ExtraSheet, CropLayout)
			if extra, err = c.buildCrops(descs, settings.Label, objects, objSheet, extraSheet); err != nil {
				return nil, err
			}
			extraLog, extraTgt = c.logName("New Crops"), "Data/Crops"
			extraTexLog, extraTex = c.logName("Crop Textures"), c.cropTexture()
		case ModeTrees:
			descs, err := LoadDescriptors(filepath.Join(srcDir, FruitTreesDir))
			if err != nil {
				return nil, err
			}
			extraSheet = NewSpriteSheet(settings.ExtraSheet, FruitTreeLayout)
			if extra, err = c.buildTrees(descs, settings.Label, objects, objSheet, extraSheet); err != nil {
				return nil, err
			}
			extraLog, extraTgt = c.logName("New Trees"), "Data/FruitTrees"
			extraTexLog, extraTex = c.logName("Tree Textures"), c.treeTexture()
		}

		addTexture(c.logName("Object Textures - %s", settings.Label), c.objectTexture(settings.Label), objSheet)
		addTexture(extraTexLog, extraTex, extraSheet)
		addData(c.logName("New Objects - %s", settings.Label), "Data/Objects", objects)
		addData(extraLog, extraTgt, extra)
		data = append(data, c.recipeChanges()...)
		if gifts, ok := c.giftChange(settings.Label); ok {
			data = append(data, gifts)
		}

	case ModeWeapons:
		descs, err := LoadDescriptors(filepath.Join(srcDir, WeaponsDir))
		if err != nil {
			return nil, err
		}
		sheet := NewSpriteSheet(settings.ObjectSheet, WeaponLayout)
		weapons, err := c.buildWeapons(descs, sheet)
		if err != nil {
			return nil, err
		}
		addTexture(c.logName("Weapon Textures"), c.weaponTexture(), sheet)
		addData(c.logName("New Weapons"), "Data/Weapons", weapons)

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, mode)
	}

	changes := make([]Change, 0, len(textures)+len(data))
	changes = append(changes, textures...)
	changes = append(changes, data...)
	for _, s := range sheets {
		c.log.Debug("allocated sprites", zap.String("sheet", s.Name), zap.Int("count", s.Len()))
	}

	return &Result{
		Mode:         mode,
		Subdir:       settings.Subdir,
		Pack:         ContentPack{Format: opts.Format, Changes: changes},
		Translations: c.Translations(),
		Sheets:       sheets,
	}, nil
}
