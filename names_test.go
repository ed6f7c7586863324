package ja2cp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestIdentifier(t *testing.T) {
	tests := map[string]string{
		"Apple Cider":  "AppleCider",
		"Crème Brûlée": "CremeBrulee",
		"Épée Longue":  "EpeeLongue",
		"Ñandú Egg":    "NanduEgg",
		"Plain":        "Plain",
		"":             "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Identifier(in), in)
	}
}

func TestQualifiedID(t *testing.T) {
	assert.Equal(t, "Tester.Pack_CremeSoup", QualifiedID(testModID, "Crème Soup"))
}

func TestItemRef(t *testing.T) {
	vanilla := VanillaIndex{"Apple": "613"}
	tests := []struct {
		raw  string
		want string
	}{
		{`340`, "340"},
		{`"388"`, "388"},
		{`"-5"`, "-5"},
		{`"Apple"`, "613"},
		{`"Golden Berry"`, "Tester.Pack_GoldenBerry"},
		{`"Crème Soup"`, "Tester.Pack_CremeSoup"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ItemRef(testModID, vanilla, gjson.Parse(tt.raw)))
		})
	}
}

func TestItemRefWithoutVanillaIndex(t *testing.T) {
	assert.Equal(t, "Tester.Pack_Apple", ItemRef(testModID, nil, gjson.Parse(`"Apple"`)))
}
