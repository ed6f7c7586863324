package ja2cp

import (
	"fmt"

	"go.uber.org/zap"
)

// buildTrees converts every fruit tree under FruitTrees. Saplings go to
// objects and objSheet like seeds; tree records are keyed by sapling ID
// and take one row of treeSheet each.
func (c *Converter) buildTrees(descs []Descriptor, label string, objects map[string]any, objSheet, treeSheet *SpriteSheet) (map[string]any, error) {
	entries := make(map[string]any, len(descs))
	for _, d := range descs {
		saplingName := d.Get("SaplingName").String()
		if saplingName == "" {
			return nil, fmt.Errorf("%s: fruit tree has no SaplingName", d.Path)
		}
		product := d.Get("Product")
		if !product.Exists() {
			return nil, fmt.Errorf("%s: fruit tree has no Product", d.Path)
		}
		if err := c.claim("Data/Objects", QualifiedID(c.modID, saplingName), d.Path); err != nil {
			return nil, err
		}

		sapling := c.seedObject(saplingName, d.Get("SaplingDescription").String(),
			int(d.Get("SaplingPurchasePrice").Int()), label, objSheet.Add(d.SiblingImage("sapling.png")))
		ident := Identifier(saplingName)
		c.translations.SetLocalized(displayNameKey(ident), d.Get("SaplingNameLocalization"))
		c.translations.SetLocalized(descriptionKey(ident), d.Get("SaplingDescriptionLocalization"))
		objects[sapling.Name] = sapling

		treeName := d.Get("Name").String()
		if treeName == "" {
			treeName = saplingName
		}
		c.translations.Set(DefaultLanguage, treeNameKey(ident), treeName)
		c.translations.SetLocalized(treeNameKey(ident), d.Get("NameLocalization"))

		seasons := []string{}
		if season := d.Get("Season").String(); season != "" {
			seasons = append(seasons, season)
		} else {
			c.log.Warn("fruit tree has no Season", zap.String("tree", saplingName), zap.String("file", d.Path))
		}
		entries[sapling.Name] = &FruitTreeData{
			DisplayName:      Token(treeNameKey(ident)),
			Seasons:          seasons,
			Fruit:            []FruitDrop{{ItemID: ItemRef(c.modID, c.vanilla, product)}},
			Texture:          c.treeTexture(),
			TextureSpriteRow: treeSheet.Add(d.SiblingImage("tree.png")),
		}
	}
	return entries, nil
}
