package ja2cp

// ContentPack is the root of a Content Patcher content.json document
type ContentPack struct {
	Format  string   `json:"Format"`
	Changes []Change `json:"Changes"`
}

// Change represents one Content Patcher patch
type Change struct {
	LogName        string          `json:"LogName"`
	Action         string          `json:"Action"`
	Target         string          `json:"Target"`
	FromFile       string          `json:"FromFile,omitempty"`
	Entries        map[string]any  `json:"Entries,omitempty"`
	TextOperations []TextOperation `json:"TextOperations,omitempty"`
}

// TextOperation represents an edit applied to a delimited text field
type TextOperation struct {
	Operation string `json:"Operation"`
	Target    []any  `json:"Target"`
	Value     string `json:"Value"`
	Delimiter string `json:"Delimiter"`
}

// BuffData represents a buff applied when an object is eaten
type BuffData struct {
	ID               string             `json:"Id"`
	Duration         int                `json:"Duration"`
	IsDebuff         bool               `json:"IsDebuff"`
	CustomAttributes map[string]float64 `json:"CustomAttributes"`
}

// ObjectData represents an entry in Data/Objects
type ObjectData struct {
	Name                          string     `json:"Name"`
	DisplayName                   string     `json:"DisplayName"`
	Description                   string     `json:"Description"`
	Type                          string     `json:"Type"`
	Category                      int        `json:"Category"`
	Price                         int        `json:"Price"`
	Texture                       string     `json:"Texture"`
	SpriteIndex                   int        `json:"SpriteIndex"`
	Edibility                     int        `json:"Edibility"`
	IsDrink                       bool       `json:"IsDrink,omitempty"`
	Buffs                         []BuffData `json:"Buffs,omitempty"`
	ContextTags                   []string   `json:"ContextTags,omitempty"`
	ExcludeFromShippingCollection bool       `json:"ExcludeFromShippingCollection,omitempty"`
}

// BigCraftableData represents an entry in Data/BigCraftables
type BigCraftableData struct {
	Name                string   `json:"Name"`
	DisplayName         string   `json:"DisplayName"`
	Description         string   `json:"Description"`
	Price               int      `json:"Price,omitempty"`
	Fragility           int      `json:"Fragility,omitempty"`
	CanBePlacedIndoors  bool     `json:"CanBePlacedIndoors"`
	CanBePlacedOutdoors bool     `json:"CanBePlacedOutdoors"`
	IsLamp              bool     `json:"IsLamp,omitempty"`
	Texture             string   `json:"Texture"`
	SpriteIndex         int      `json:"SpriteIndex"`
	ContextTags         []string `json:"ContextTags,omitempty"`
}

// PlantableRule restricts where a seed or sapling can be planted
type PlantableRule struct {
	ID        string `json:"Id"`
	Result    string `json:"Result"`
	Condition string `json:"Condition"`
}

// CropData represents an entry in Data/Crops
type CropData struct {
	Seasons                           []string        `json:"Seasons"`
	DaysInPhase                       []int           `json:"DaysInPhase"`
	HarvestItemID                     string          `json:"HarvestItemId"`
	Texture                           string          `json:"Texture"`
	SpriteIndex                       int             `json:"SpriteIndex"`
	RegrowDays                        int             `json:"RegrowDays"`
	IsRaised                          bool            `json:"IsRaised,omitempty"`
	IsPaddyCrop                       bool            `json:"IsPaddyCrop,omitempty"`
	NeedsWatering                     bool            `json:"NeedsWatering"`
	HarvestMethod                     string          `json:"HarvestMethod"`
	HarvestMinStack                   int             `json:"HarvestMinStack"`
	HarvestMaxStack                   int             `json:"HarvestMaxStack"`
	HarvestMinQuality                 int             `json:"HarvestMinQuality,omitempty"`
	HarvestMaxQuality                 int             `json:"HarvestMaxQuality,omitempty"`
	HarvestMaxIncreasePerFarmingLevel float64         `json:"HarvestMaxIncreasePerFarmingLevel,omitempty"`
	ExtraHarvestChance                float64         `json:"ExtraHarvestChance,omitempty"`
	TintColors                        []string        `json:"TintColors,omitempty"`
	PlantableLocationRules            []PlantableRule `json:"PlantableLocationRules,omitempty"`
}

// FruitDrop represents one item a fruit tree can produce
type FruitDrop struct {
	ItemID string `json:"ItemId"`
}

// FruitTreeData represents an entry in Data/FruitTrees
type FruitTreeData struct {
	DisplayName            string          `json:"DisplayName"`
	Seasons                []string        `json:"Seasons"`
	Fruit                  []FruitDrop     `json:"Fruit"`
	Texture                string          `json:"Texture"`
	TextureSpriteRow       int             `json:"TextureSpriteRow"`
	PlantableLocationRules []PlantableRule `json:"PlantableLocationRules,omitempty"`
}

// WeaponData represents an entry in Data/Weapons
type WeaponData struct {
	Name             string  `json:"Name"`
	DisplayName      string  `json:"DisplayName"`
	Description      string  `json:"Description"`
	Type             int     `json:"Type"`
	Texture          string  `json:"Texture"`
	SpriteIndex      int     `json:"SpriteIndex"`
	MinDamage        int     `json:"MinDamage"`
	MaxDamage        int     `json:"MaxDamage"`
	CanBeLostOnDeath bool    `json:"CanBeLostOnDeath"`
	Knockback        float64 `json:"Knockback,omitempty"`
	Speed            int     `json:"Speed,omitempty"`
	Precision        int     `json:"Precision,omitempty"`
	Defense          int     `json:"Defense,omitempty"`
	AreaOfEffect     int     `json:"AreaOfEffect,omitempty"`
	CritChance       float64 `json:"CritChance,omitempty"`
	CritMultiplier   float64 `json:"CritMultiplier,omitempty"`
	MineBaseLevel    int     `json:"MineBaseLevel"`
	MineMinLevel     int     `json:"MineMinLevel"`
}

// Manifest holds the fields read from a source pack's manifest.json
type Manifest struct {
	UniqueID string `json:"UniqueID"`
	Name     string `json:"Name"`
	Author   string `json:"Author"`
	Version  string `json:"Version"`
}
