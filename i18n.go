package ja2cp

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// DefaultLanguage is the language of the text fields in JSON Assets files
const DefaultLanguage = "en"

// Translations maps a language code to translation keys and their text
type Translations map[string]map[string]string

// Set stores the text of key in lang
func (t Translations) Set(lang, key, text string) {
	table, ok := t[lang]
	if !ok {
		table = make(map[string]string)
		t[lang] = table
	}
	table[key] = text
}

// SetLocalized stores every language of a JSON Assets localization map,
// e.g. {"de": "Apfel", "fr": "Pomme"}.
func (t Translations) SetLocalized(key string, localized gjson.Result) {
	if !localized.IsObject() {
		return
	}
	localized.ForEach(func(lang, text gjson.Result) bool {
		if s := text.String(); s != "" {
			t.Set(lang.String(), key, s)
		}
		return true
	})
}

// Locale returns the file name SMAPI expects for a language
func Locale(lang string) string {
	if lang == DefaultLanguage {
		return "default"
	}
	return lang
}

// Token returns the Content Patcher token that reads key from i18n
func Token(key string) string {
	return fmt.Sprintf("{{i18n:%s}}", key)
}

func displayNameKey(ident string) string { return ident + ".DisplayName" }
func descriptionKey(ident string) string { return ident + ".Description" }
func treeNameKey(ident string) string    { return ident + ".TreeName" }
