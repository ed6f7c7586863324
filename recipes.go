package ja2cp

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// addRecipe records the recipe of an object or big craftable.
//
// Data/CookingRecipes:  <ingredients>/<unused>/<yield>/<unlock>/<display name>
// Data/CraftingRecipes: <ingredients>/<unused>/<yield>/<big craftable>/<unlock>/<display name>
func (c *Converter) addRecipe(recipe gjson.Result, itemID, ident string, cooking, bigCraftable bool) {
	var ingredients []string
	recipe.Get("Ingredients").ForEach(func(_, ing gjson.Result) bool {
		obj := ing.Get("Object")
		if !obj.Exists() {
			c.log.Warn("recipe ingredient without Object", zap.String("item", itemID))
			return true
		}
		ingredients = append(ingredients, fmt.Sprintf("%s %d", ItemRef(c.modID, c.vanilla, obj), countOrOne(ing.Get("Count"))))
		return true
	})
	if len(ingredients) == 0 {
		c.log.Warn("recipe has no ingredients, skipping", zap.String("item", itemID))
		return
	}

	yield := fmt.Sprintf("%s %d", itemID, countOrOne(recipe.Get("ResultCount")))
	unlock := recipeUnlock(recipe)
	display := Token(displayNameKey(ident))
	ings := strings.Join(ingredients, " ")

	if cooking {
		c.cooking[itemID] = fmt.Sprintf("%s/none/%s/%s/%s", ings, yield, unlock, display)
		return
	}
	c.crafting[itemID] = fmt.Sprintf("%s/Home/%s/%t/%s/%s", ings, yield, bigCraftable, unlock, display)
}

// recipeUnlock builds the unlock condition field of a recipe
func recipeUnlock(recipe gjson.Result) string {
	if recipe.Get("IsDefault").Bool() {
		return "default"
	}
	if skill := recipe.Get("SkillUnlockName").String(); skill != "" {
		return fmt.Sprintf("s %s %d", skill, recipe.Get("SkillUnlockLevel").Int())
	}
	return "none"
}

func countOrOne(v gjson.Result) int64 {
	if n := v.Int(); n > 0 {
		return n
	}
	return 1
}
