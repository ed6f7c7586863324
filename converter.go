package ja2cp

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// DefaultFormat is the Content Patcher format version written to content.json
const DefaultFormat = "1.30.0"

var ErrDuplicateID = errors.New("duplicate item ID")

// Options configures a conversion
type Options struct {
	// ModID is the UniqueID of the JSON Assets pack; it prefixes every item ID.
	ModID string
	// LogPrefix starts every patch LogName, usually the pack's name.
	LogPrefix string
	// Format is the Content Patcher format version.
	Format string
	// Vanilla resolves references to vanilla items by name.
	Vanilla VanillaIndex
	// Settings overrides the label, subdirectory and sheet names of a mode.
	Settings ModeSettings
	Logger   *zap.Logger
}

// Converter maps JSON Assets descriptors into Content Patcher records and
// collects the translations, gift tastes and recipes they produce
type Converter struct {
	modID     string
	logPrefix string
	vanilla   VanillaIndex
	log       *zap.Logger

	translations Translations
	gifts        map[string]map[int][]string // NPC -> gift taste field -> item IDs
	cooking      map[string]any
	crafting     map[string]any
	sources      map[string]string // data asset + item ID -> descriptor path
}

// NewConverter creates a converter for one mod
func NewConverter(opts Options) *Converter {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{
		modID:        opts.ModID,
		logPrefix:    opts.LogPrefix,
		vanilla:      opts.Vanilla,
		log:          log,
		translations: Translations{DefaultLanguage: {}},
		gifts:        make(map[string]map[int][]string),
		cooking:      make(map[string]any),
		crafting:     make(map[string]any),
		sources:      make(map[string]string),
	}
}

// Translations returns the text collected so far
func (c *Converter) Translations() Translations {
	return c.translations
}

// claim records that the descriptor at path defines id in the data asset
// target. A second definition of the same ID is an error naming both files.
func (c *Converter) claim(target, id, path string) error {
	key := target + ":" + id
	if prev, ok := c.sources[key]; ok {
		return fmt.Errorf("%w %s in %s: defined by %s and %s", ErrDuplicateID, id, target, prev, path)
	}
	c.sources[key] = path
	return nil
}

func (c *Converter) logName(format string, args ...any) string {
	return strings.TrimSpace(c.logPrefix + " " + fmt.Sprintf(format, args...))
}

func (c *Converter) modAsset(parts ...string) string {
	return path.Join(append([]string{"Mods", c.modID}, parts...)...)
}

func (c *Converter) objectTexture(label string) string { return c.modAsset("Objects", label) }
func (c *Converter) bigObjectTexture(label string) string {
	return c.modAsset("BigObjects", label)
}
func (c *Converter) cropTexture() string   { return c.modAsset("Crops") }
func (c *Converter) treeTexture() string   { return c.modAsset("Trees") }
func (c *Converter) weaponTexture() string { return c.modAsset("Weapons") }

// textureChange loads a composed sheet into the asset the records point at
func (c *Converter) textureChange(logName, target string, sheet *SpriteSheet) Change {
	return Change{
		LogName:  logName,
		Action:   "Load",
		Target:   target,
		FromFile: path.Join("assets", "textures", sheet.FileName()),
	}
}

func (c *Converter) editData(logName, target string, entries map[string]any) Change {
	return Change{
		LogName: logName,
		Action:  "EditData",
		Target:  target,
		Entries: entries,
	}
}

// Gift taste field indices in Data/NPCGiftTastes
var giftTasteFields = map[string]int{
	"Love":    1,
	"Like":    3,
	"Dislike": 5,
	"Hate":    7,
	"Neutral": 9,
}

var vanillaNPCs = map[string]bool{
	"Abigail": true, "Alex": true, "Caroline": true, "Clint": true, "Demetrius": true,
	"Dwarf": true, "Elliott": true, "Emily": true, "Evelyn": true, "George": true,
	"Gus": true, "Haley": true, "Harvey": true, "Jas": true, "Jodi": true,
	"Kent": true, "Krobus": true, "Leah": true, "Leo": true, "Lewis": true,
	"Linus": true, "Marnie": true, "Maru": true, "Pam": true, "Penny": true,
	"Pierre": true, "Robin": true, "Sam": true, "Sandy": true, "Sebastian": true,
	"Shane": true, "Vincent": true, "Willy": true, "Wizard": true,
}

func (c *Converter) addGiftTaste(npc string, field int, itemID string) {
	tiers, ok := c.gifts[npc]
	if !ok {
		tiers = make(map[int][]string)
		c.gifts[npc] = tiers
	}
	tiers[field] = append(tiers[field], itemID)
}

// giftChange appends the collected gift tastes to each NPC's fields. It
// returns false when no descriptor declared any.
func (c *Converter) giftChange(label string) (Change, bool) {
	if len(c.gifts) == 0 {
		return Change{}, false
	}
	npcs := make([]string, 0, len(c.gifts))
	for npc := range c.gifts {
		npcs = append(npcs, npc)
	}
	sort.Strings(npcs)

	var ops []TextOperation
	for _, npc := range npcs {
		if !vanillaNPCs[npc] {
			c.log.Warn("gift taste for non-vanilla NPC, the patch fails unless that NPC's mod is installed",
				zap.String("npc", npc))
		}
		tiers := c.gifts[npc]
		fields := make([]int, 0, len(tiers))
		for field := range tiers {
			fields = append(fields, field)
		}
		sort.Ints(fields)
		for _, field := range fields {
			ops = append(ops, TextOperation{
				Operation: "Append",
				Target:    []any{"Fields", npc, field},
				Value:     strings.Join(tiers[field], " "),
				Delimiter: " ",
			})
		}
	}
	return Change{
		LogName:        c.logName("Gift Taste Edit - %s", label),
		Action:         "EditData",
		Target:         "Data/NPCGiftTastes",
		TextOperations: ops,
	}, true
}

// recipeChanges returns the cooking and crafting recipe patches, if any
func (c *Converter) recipeChanges() []Change {
	var changes []Change
	if len(c.cooking) > 0 {
		changes = append(changes, c.editData(c.logName("New Cooking Recipes"), "Data/CookingRecipes", c.cooking))
	}
	if len(c.crafting) > 0 {
		changes = append(changes, c.editData(c.logName("New Crafting Recipes"), "Data/CraftingRecipes", c.crafting))
	}
	return changes
}
