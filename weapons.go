package ja2cp

import (
	"errors"
	"fmt"
)

var ErrUnknownWeaponType = errors.New("unknown weapon type")

// weaponTypes maps JSON Assets weapon types to Data/Weapons type codes
var weaponTypes = map[string]int{
	"Dagger":    1,
	"Club":      2,
	"Sword":     3,
	"Slingshot": 4,
}

// buildWeapons converts every descriptor under Weapons into a Data/Weapons entry
func (c *Converter) buildWeapons(descs []Descriptor, sheet *SpriteSheet) (map[string]any, error) {
	entries := make(map[string]any, len(descs))
	for _, d := range descs {
		name := d.Get("Name").String()
		if name == "" {
			return nil, fmt.Errorf("%s: weapon has no Name", d.Path)
		}
		typ, ok := weaponTypes[d.Get("Type").String()]
		if !ok {
			return nil, fmt.Errorf("%s: %w %q", d.Path, ErrUnknownWeaponType, d.Get("Type").String())
		}
		ident := Identifier(name)
		id := QualifiedID(c.modID, name)
		if err := c.claim("Data/Weapons", id, d.Path); err != nil {
			return nil, err
		}

		w := &WeaponData{
			Name:             id,
			DisplayName:      Token(displayNameKey(ident)),
			Description:      Token(descriptionKey(ident)),
			Type:             typ,
			Texture:          c.weaponTexture(),
			SpriteIndex:      sheet.Add(d.SiblingImage("weapon.png")),
			MinDamage:        int(d.Get("MinimumDamage").Int()),
			MaxDamage:        int(d.Get("MaximumDamage").Int()),
			CanBeLostOnDeath: true,
			Knockback:        d.Get("Knockback").Float(),
			Speed:            int(d.Get("Speed").Int()),
			Precision:        int(d.Get("Accuracy").Int()),
			Defense:          int(d.Get("Defense").Int()),
			AreaOfEffect:     int(d.Get("ExtraSwingArea").Int()),
			CritChance:       d.Get("CritChance").Float(),
			CritMultiplier:   d.Get("CritMultiplier").Float(),
			MineBaseLevel:    -1,
			MineMinLevel:     -1,
		}
		if d.Has("MineDropVar") {
			w.MineBaseLevel = int(d.Get("MineDropVar").Int())
		}
		if d.Has("MineDropMinimumLevel") {
			w.MineMinLevel = int(d.Get("MineDropMinimumLevel").Int())
		}

		c.translations.Set(DefaultLanguage, displayNameKey(ident), name)
		c.translations.Set(DefaultLanguage, descriptionKey(ident), d.Get("Description").String())
		c.translations.SetLocalized(displayNameKey(ident), d.Get("NameLocalization"))
		c.translations.SetLocalized(descriptionKey(ident), d.Get("DescriptionLocalization"))
		entries[w.Name] = w
	}
	return entries, nil
}
