package ja2cp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

var prettyOptions = &pretty.Options{Width: 80, Indent: "    "}

// ConvertHarvestRules rewrites a Multi Yield Crops HarvestRules.json so
// that crop and item names refer to the qualified IDs produced by Convert.
// Vanilla names are kept. Every other field, and the key order, is left
// untouched.
func ConvertHarvestRules(doc []byte, modID string, vanilla VanillaIndex) ([]byte, error) {
	if modID == "" {
		return nil, errors.New("mod ID is empty")
	}
	parsed, err := parseJSON("HarvestRules.json", doc)
	if err != nil {
		return nil, err
	}
	harvests := parsed.Get("Harvests")
	if !harvests.IsArray() {
		return nil, errors.New("HarvestRules.json: no Harvests array")
	}

	out := []byte(parsed.Raw)
	rename := func(path string, v gjson.Result) error {
		if v.Type != gjson.String {
			return nil
		}
		name := harvestName(modID, vanilla, v.String())
		if name == v.String() {
			return nil
		}
		out, err = sjson.SetBytes(out, path, name)
		if err != nil {
			return fmt.Errorf("HarvestRules.json: failed to set %s: %w", path, err)
		}
		return nil
	}

	for i, h := range harvests.Array() {
		if err := rename(fmt.Sprintf("Harvests.%d.CropName", i), h.Get("CropName")); err != nil {
			return nil, err
		}
		for j, rule := range h.Get("HarvestRules").Array() {
			if err := rename(fmt.Sprintf("Harvests.%d.HarvestRules.%d.ItemName", i, j), rule.Get("ItemName")); err != nil {
				return nil, err
			}
		}
	}
	return pretty.PrettyOptions(out, prettyOptions), nil
}

func harvestName(modID string, vanilla VanillaIndex, name string) string {
	if _, ok := vanilla.Lookup(name); ok {
		return name
	}
	if strings.HasPrefix(name, modID+"_") {
		return name
	}
	return QualifiedID(modID, name)
}
