package ja2cp

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/tidwall/gjson"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Identifier turns an item name into the suffix used in item IDs and
// translation keys: spaces removed and diacritics folded ("Crème Brûlée"
// becomes "CremeBrulee").
func Identifier(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	return strings.ReplaceAll(folded, " ", "")
}

// QualifiedID prefixes an item name with the mod's UniqueID
func QualifiedID(modID, name string) string {
	return modID + "_" + Identifier(name)
}

// isNumericID reports whether s is a plain (possibly negative) integer
func isNumericID(s string) bool {
	s = strings.TrimPrefix(strings.TrimSpace(s), "-")
	if s == "" {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

// ItemRef resolves a reference to another item. Numbers are vanilla IDs,
// names known to the vanilla index map to their ID, everything else is
// assumed to belong to the mod being converted.
func ItemRef(modID string, vanilla VanillaIndex, v gjson.Result) string {
	switch v.Type {
	case gjson.Number:
		return strconv.FormatInt(v.Int(), 10)
	case gjson.String:
		return itemRefByName(modID, vanilla, v.String())
	}
	return itemRefByName(modID, vanilla, v.Raw)
}

func itemRefByName(modID string, vanilla VanillaIndex, name string) string {
	if isNumericID(name) {
		return strings.TrimSpace(name)
	}
	if id, ok := vanilla.Lookup(name); ok {
		return id
	}
	return QualifiedID(modID, name)
}
