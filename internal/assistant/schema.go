package assistant

// Schema mirrors the subset of the Gemini responseSchema vocabulary the
// service relies on.
type Schema struct {
	Type       string             `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

const (
	typeObject  = "OBJECT"
	typeArray   = "ARRAY"
	typeString  = "STRING"
	typeNumber  = "NUMBER"
	typeBoolean = "BOOLEAN"
)

func bilingualString() *Schema {
	return &Schema{
		Type: typeObject,
		Properties: map[string]*Schema{
			"en": {Type: typeString},
			"ar": {Type: typeString},
		},
		Required: []string{"en", "ar"},
	}
}

func bilingualStringList() *Schema {
	return &Schema{
		Type: typeObject,
		Properties: map[string]*Schema{
			"en": {Type: typeArray, Items: &Schema{Type: typeString}},
			"ar": {Type: typeArray, Items: &Schema{Type: typeString}},
		},
		Required: []string{"en", "ar"},
	}
}

// scholarshipSchema constrains listing generation to an array of fully
// bilingual scholarship records.
func scholarshipSchema() *Schema {
	return &Schema{
		Type: typeArray,
		Items: &Schema{
			Type: typeObject,
			Properties: map[string]*Schema{
				"id":            {Type: typeNumber},
				"title":         bilingualString(),
				"university":    {Type: typeString},
				"country":       bilingualString(),
				"countryCode":   {Type: typeString},
				"deadline":      {Type: typeString},
				"level":         bilingualString(),
				"specialty":     bilingualString(),
				"isOpen":        {Type: typeBoolean},
				"isOpeningSoon": {Type: typeBoolean},
				"summary":       bilingualString(),
				"requirements":  bilingualStringList(),
				"benefits":      bilingualStringList(),
				"applyLink":     {Type: typeString},
			},
		},
	}
}

// certificateSchema constrains certificate description generation to an
// object with short and long variants.
func certificateSchema() *Schema {
	return &Schema{
		Type: typeObject,
		Properties: map[string]*Schema{
			"short": {Type: typeString},
			"long":  {Type: typeString},
		},
		Required: []string{"short", "long"},
	}
}
