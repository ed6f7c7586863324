package ja2cp

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	CategorySeeds   = -74
	CategoryCooking = -7
)

// categoryCodes maps JSON Assets category names to object category codes
var categoryCodes = map[string]int{
	"Animal Goods":             -18,
	"AnimalGoods":              -18,
	"Artisan Goods":            -26,
	"ArtisanGoods":             -26,
	"Bait":                     -21,
	"Boots":                    -97,
	"Building Resource":        -16,
	"Building Resources":       -16,
	"Clothing":                 -100,
	"Cooking":                  -7,
	"Crafting":                 -8,
	"Decor":                    -24,
	"Egg":                      -5,
	"Equipment":                -29,
	"Fertilizer":               -19,
	"Fish":                     -4,
	"Fishing Tackle":           -22,
	"Flower":                   -80,
	"Forage":                   -81,
	"Fruit":                    -79,
	"Gem":                      -2,
	"Greens":                   -81,
	"Hat":                      -95,
	"Junk":                     -20,
	"Meat":                     -14,
	"Metal":                    -15,
	"Metal Resource":           -15,
	"Milk":                     -6,
	"Mineral":                  -12,
	"Monster Loot":             -28,
	"MonsterLoot":              -28,
	"Ring":                     -96,
	"Seeds":                    -74,
	"Sell at Pierre":           -17,
	"Sell at Pierre or Marnie": -18,
	"Sell at Willy":            -23,
	"Syrup":                    -27,
	"Syrups":                   -27,
	"Tool":                     -99,
	"Trash":                    -20,
	"Vegetable":                -75,
	"Weapon":                   -98,
}

// categoryTypes maps object category codes to the type names written out
var categoryTypes = map[int]string{
	-2:   "Mineral",
	-4:   "Fish",
	-5:   "Egg",
	-6:   "Milk",
	-7:   "Cooking",
	-8:   "Crafting",
	-9:   "BigCraftable",
	-12:  "Mineral",
	-14:  "Meat",
	-15:  "Metal Resource",
	-16:  "Building Resource",
	-17:  "Sell at Pierre",
	-18:  "Sell at Pierre or Marnie",
	-19:  "Fertilizer",
	-20:  "Trash",
	-21:  "Bait",
	-22:  "Fishing Tackle",
	-23:  "Sell at Willy",
	-24:  "Decor",
	-25:  "Cooking",
	-26:  "Artisan Goods",
	-27:  "Syrups",
	-28:  "Monster Loot",
	-29:  "Equipment",
	-74:  "Seeds",
	-75:  "Vegetable",
	-79:  "Fruit",
	-80:  "Flower",
	-81:  "Forage",
	-95:  "Hat",
	-96:  "Ring",
	-97:  "Boots",
	-98:  "Weapon",
	-99:  "Tool",
	-100: "Clothing",
	-777: "Wild Seeds",
}

// Category is a resolved object category
type Category struct {
	Type string
	Code int
}

// IsCooking reports whether objects of this category are made in the kitchen
func (c Category) IsCooking() bool {
	return c.Code == CategoryCooking || c.Code == -25 || c.Type == "Cooking"
}

// ResolveCategory translates a JSON Assets category, given either as a
// name or as a numeric code, into a type name and category code. ok is
// false when one half could not be resolved; the other half is still set.
func ResolveCategory(v gjson.Result) (cat Category, ok bool) {
	switch v.Type {
	case gjson.Number:
		return categoryFromCode(int(v.Int()))
	case gjson.String:
		s := strings.TrimSpace(v.String())
		if isNumericID(s) {
			code, _ := strconv.Atoi(s)
			return categoryFromCode(code)
		}
		cat.Type = s
		cat.Code, ok = categoryCodes[s]
		return cat, ok
	}
	return cat, false
}

func categoryFromCode(code int) (Category, bool) {
	typ, ok := categoryTypes[code]
	return Category{Type: typ, Code: code}, ok
}
