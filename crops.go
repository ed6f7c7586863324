package ja2cp

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// seedObject creates the Data/Objects entry of a seed packet or sapling
func (c *Converter) seedObject(name, description string, price int, label string, sprite int) *ObjectData {
	ident := Identifier(name)
	c.translations.Set(DefaultLanguage, displayNameKey(ident), name)
	c.translations.Set(DefaultLanguage, descriptionKey(ident), description)
	return &ObjectData{
		Name:        QualifiedID(c.modID, name),
		DisplayName: Token(displayNameKey(ident)),
		Description: Token(descriptionKey(ident)),
		Type:        "Seeds",
		Category:    CategorySeeds,
		Price:       price,
		Texture:     c.objectTexture(label),
		SpriteIndex: sprite,
		Edibility:   Inedible,
	}
}

// buildCrops converts every crop under Crops. The seed packets are added
// to objects and continue objSheet's index sequence; the crop records are
// keyed by their seed ID.
func (c *Converter) buildCrops(descs []Descriptor, label string, objects map[string]any, objSheet, cropSheet *SpriteSheet) (map[string]any, error) {
	entries := make(map[string]any, len(descs))
	for _, d := range descs {
		seedName := d.Get("SeedName").String()
		if seedName == "" {
			return nil, fmt.Errorf("%s: crop has no SeedName", d.Path)
		}
		product := d.Get("Product")
		if !product.Exists() {
			return nil, fmt.Errorf("%s: crop has no Product", d.Path)
		}
		if err := c.claim("Data/Objects", QualifiedID(c.modID, seedName), d.Path); err != nil {
			return nil, err
		}

		seed := c.seedObject(seedName, d.Get("SeedDescription").String(),
			int(d.Get("SeedPurchasePrice").Int()), label, objSheet.Add(d.SiblingImage("seeds.png")))
		seedIdent := Identifier(seedName)
		c.translations.SetLocalized(displayNameKey(seedIdent), d.Get("SeedNameLocalization"))
		c.translations.SetLocalized(descriptionKey(seedIdent), d.Get("SeedDescriptionLocalization"))
		objects[seed.Name] = seed

		crop := &CropData{
			Seasons:         stringList(d.Get("Seasons")),
			DaysInPhase:     intList(d.Get("Phases")),
			HarvestItemID:   ItemRef(c.modID, c.vanilla, product),
			Texture:         c.cropTexture(),
			SpriteIndex:     cropSheet.Add(d.SiblingImage("crop.png")),
			RegrowDays:      -1,
			NeedsWatering:   true,
			HarvestMethod:   "Grab",
			HarvestMinStack: 1,
			HarvestMaxStack: 1,
		}
		if len(crop.Seasons) == 0 {
			c.log.Warn("crop has no Seasons", zap.String("crop", seedName), zap.String("file", d.Path))
			crop.Seasons = []string{}
		}
		if len(crop.DaysInPhase) == 0 {
			c.log.Warn("crop has no Phases", zap.String("crop", seedName), zap.String("file", d.Path))
			crop.DaysInPhase = []int{}
		}
		if d.Has("RegrowthPhase") {
			crop.RegrowDays = int(d.Get("RegrowthPhase").Int())
		}
		crop.IsRaised = d.Get("TrellisCrop").Bool()
		if d.Get("HarvestWithScythe").Bool() {
			crop.HarvestMethod = "Scythe"
		}

		if bonus := d.Get("Bonus"); bonus.IsObject() {
			if v := bonus.Get("MinimumPerHarvest"); v.Exists() {
				crop.HarvestMinStack = int(v.Int())
			}
			if v := bonus.Get("MaximumPerHarvest"); v.Exists() {
				crop.HarvestMaxStack = int(v.Int())
			}
			crop.HarvestMaxIncreasePerFarmingLevel = bonus.Get("MaxIncreasePerFarmLevel").Float()
			crop.ExtraHarvestChance = bonus.Get("ExtraChance").Float()
		}

		d.Get("Colors").ForEach(func(_, v gjson.Result) bool {
			if color, ok := tintColor(v); ok {
				crop.TintColors = append(crop.TintColors, color)
			} else {
				c.log.Warn("unreadable crop color", zap.String("crop", seedName), zap.String("color", v.Raw))
			}
			return true
		})

		switch d.Get("CropType").String() {
		case "Paddy":
			crop.IsPaddyCrop = true
		case "IndoorsOnly":
			crop.PlantableLocationRules = append(crop.PlantableLocationRules, PlantableRule{
				ID:        seed.Name + "_Rule",
				Result:    "Deny",
				Condition: "LOCATION_IS_OUTDOORS Here",
			})
		}

		entries[seed.Name] = crop
	}
	return entries, nil
}

// tintColor accepts the color forms found in JSON Assets packs: a string
// ("255, 0, 0, 255" or "red"), an array of channels, or an {R,G,B} object.
func tintColor(v gjson.Result) (string, bool) {
	switch {
	case v.Type == gjson.String:
		s := strings.TrimSpace(v.String())
		if s == "" {
			return "", false
		}
		return strings.Join(strings.Fields(strings.ReplaceAll(s, ",", " ")), " "), true
	case v.IsArray():
		var channels []string
		for _, ch := range v.Array() {
			channels = append(channels, fmt.Sprint(ch.Int()))
		}
		return strings.Join(channels, " "), len(channels) >= 3
	case v.IsObject():
		r, g, b := v.Get("R"), v.Get("G"), v.Get("B")
		if !r.Exists() || !g.Exists() || !b.Exists() {
			return "", false
		}
		return fmt.Sprintf("%d %d %d", r.Int(), g.Int(), b.Int()), true
	}
	return "", false
}
