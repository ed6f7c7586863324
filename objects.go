package ja2cp

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Inedible is the Edibility of objects that cannot be eaten
const Inedible = -300

// buffAttributes maps JSON Assets buff names to Content Patcher attributes
var buffAttributes = map[string]string{
	"Farming":      "FarmingLevel",
	"Fishing":      "FishingLevel",
	"Mining":       "MiningLevel",
	"Luck":         "LuckLevel",
	"Foraging":     "ForagingLevel",
	"MaxStamina":   "MaxStamina",
	"MagnetRadius": "MagneticRadius",
	"Speed":        "Speed",
	"Defense":      "Defense",
	"Attack":       "Attack",
}

// buildObjects converts every descriptor under Objects into a Data/Objects
// entry, queueing its sprite on sheet
func (c *Converter) buildObjects(descs []Descriptor, label string, sheet *SpriteSheet) (map[string]any, error) {
	entries := make(map[string]any, len(descs))
	for _, d := range descs {
		obj, err := c.buildObject(d, label, sheet)
		if err != nil {
			return nil, err
		}
		entries[obj.Name] = obj
	}
	return entries, nil
}

func (c *Converter) buildObject(d Descriptor, label string, sheet *SpriteSheet) (*ObjectData, error) {
	name := d.Get("Name").String()
	if name == "" {
		return nil, fmt.Errorf("%s: object has no Name", d.Path)
	}
	ident := Identifier(name)
	id := QualifiedID(c.modID, name)
	if err := c.claim("Data/Objects", id, d.Path); err != nil {
		return nil, err
	}

	obj := &ObjectData{
		Name:        id,
		DisplayName: Token(displayNameKey(ident)),
		Price:       int(d.Get("Price").Int()),
		Texture:     c.objectTexture(label),
		SpriteIndex: sheet.Add(d.OwnImage()),
		Edibility:   Inedible,
	}
	c.translations.Set(DefaultLanguage, displayNameKey(ident), name)
	c.translations.SetLocalized(displayNameKey(ident), d.Get("NameLocalization"))

	if d.Has("Description") {
		obj.Description = Token(descriptionKey(ident))
		c.translations.Set(DefaultLanguage, descriptionKey(ident), d.Get("Description").String())
		c.translations.SetLocalized(descriptionKey(ident), d.Get("DescriptionLocalization"))
	}

	var cat Category
	if d.Has("Category") {
		var ok bool
		cat, ok = ResolveCategory(d.Get("Category"))
		if !ok {
			c.log.Warn("unknown category, check Type and Category",
				zap.String("object", name),
				zap.String("category", d.Get("Category").String()))
		}
		obj.Type = cat.Type
		obj.Category = cat.Code
	} else {
		c.log.Warn("no category, set Type and Category manually", zap.String("object", name))
	}

	if d.Has("Edibility") {
		obj.Edibility = int(d.Get("Edibility").Int())
	}
	obj.IsDrink = d.Get("EdibleIsDrink").Bool()
	if buffs := d.Get("EdibleBuffs"); buffs.IsObject() && len(buffs.Map()) > 0 {
		obj.Buffs = append(obj.Buffs, c.buildBuff(obj.Name+"_buff", buffs))
	}

	obj.ContextTags = stringList(d.Get("ContextTags"))
	if override := d.Get("CategoryTextOverride").String(); override != "" {
		tag := "category_" + strings.ReplaceAll(strings.ToLower(override), " ", "_")
		obj.ContextTags = append(obj.ContextTags, tag)
	}
	obj.ExcludeFromShippingCollection = d.Get("HideFromShippingCollection").Bool()

	d.Get("GiftTastes").ForEach(func(taste, npcs gjson.Result) bool {
		field, ok := giftTasteFields[taste.String()]
		if !ok {
			c.log.Warn("unknown gift taste", zap.String("object", name), zap.String("taste", taste.String()))
			return true
		}
		for _, npc := range stringList(npcs) {
			c.addGiftTaste(npc, field, obj.Name)
		}
		return true
	})

	if recipe := d.Get("Recipe"); recipe.IsObject() {
		c.addRecipe(recipe, obj.Name, ident, cat.IsCooking(), false)
	}
	return obj, nil
}

// buildBuff maps EdibleBuffs into a single buff. Zero attributes are
// dropped; any negative attribute marks the buff as a debuff.
func (c *Converter) buildBuff(id string, buffs gjson.Result) BuffData {
	buff := BuffData{ID: id, CustomAttributes: make(map[string]float64)}
	buffs.ForEach(func(key, value gjson.Result) bool {
		if key.String() == "Duration" {
			buff.Duration = int(value.Int())
			return true
		}
		attr, ok := buffAttributes[key.String()]
		if !ok {
			c.log.Debug("passing through unmapped buff attribute", zap.String("buff", id), zap.String("attribute", key.String()))
			attr = key.String()
		}
		v := value.Float()
		if v == 0 {
			return true
		}
		if v < 0 {
			buff.IsDebuff = true
		}
		buff.CustomAttributes[attr] = v
		return true
	})
	return buff
}

// buildBigCraftables converts every descriptor under BigCraftables into a
// Data/BigCraftables entry
func (c *Converter) buildBigCraftables(descs []Descriptor, label string, sheet *SpriteSheet) (map[string]any, error) {
	entries := make(map[string]any, len(descs))
	for _, d := range descs {
		name := d.Get("Name").String()
		if name == "" {
			return nil, fmt.Errorf("%s: big craftable has no Name", d.Path)
		}
		ident := Identifier(name)
		id := QualifiedID(c.modID, name)
		if err := c.claim("Data/BigCraftables", id, d.Path); err != nil {
			return nil, err
		}

		bc := &BigCraftableData{
			Name:                id,
			DisplayName:         Token(displayNameKey(ident)),
			Description:         Token(descriptionKey(ident)),
			Price:               int(d.Get("Price").Int()),
			CanBePlacedIndoors:  true,
			CanBePlacedOutdoors: true,
			IsLamp:              d.Get("ProvidesLight").Bool(),
			Texture:             c.bigObjectTexture(label),
			SpriteIndex:         sheet.Add(d.OwnImage()),
			ContextTags:         stringList(d.Get("ContextTags")),
		}
		c.translations.Set(DefaultLanguage, displayNameKey(ident), name)
		c.translations.Set(DefaultLanguage, descriptionKey(ident), d.Get("Description").String())
		c.translations.SetLocalized(displayNameKey(ident), d.Get("NameLocalization"))
		c.translations.SetLocalized(descriptionKey(ident), d.Get("DescriptionLocalization"))

		if recipe := d.Get("Recipe"); recipe.IsObject() {
			c.addRecipe(recipe, bc.Name, ident, false, true)
		}
		entries[bc.Name] = bc
	}
	return entries, nil
}

// stringList reads a JSON array of strings, skipping empty values
func stringList(v gjson.Result) []string {
	if !v.IsArray() {
		return nil
	}
	var out []string
	for _, item := range v.Array() {
		if s := item.String(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// intList reads a JSON array of integers
func intList(v gjson.Result) []int {
	if !v.IsArray() {
		return nil
	}
	items := v.Array()
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, int(item.Int()))
	}
	return out
}
