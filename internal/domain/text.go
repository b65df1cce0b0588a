package domain

// Lang enumerates supported locales.
type Lang string

const (
	LangEN Lang = "en"
	LangAR Lang = "ar"
)

// DefaultLang is the locale a fresh session starts with.
const DefaultLang = LangAR

// IsRTL reports whether the locale renders right-to-left.
func (l Lang) IsRTL() bool {
	return l == LangAR
}

// Valid reports whether the locale is one of the supported values.
func (l Lang) Valid() bool {
	return l == LangEN || l == LangAR
}

// Text carries a value in both supported locales. The JSON keys match the
// wire format produced by the assistant schema.
type Text struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// In returns the value for the given locale, falling back to English.
func (t Text) In(lang Lang) string {
	if lang == LangAR && t.AR != "" {
		return t.AR
	}
	return t.EN
}

// TextList carries a string list in both supported locales.
type TextList struct {
	EN []string `json:"en"`
	AR []string `json:"ar"`
}

// In returns the list for the given locale, falling back to English.
func (t TextList) In(lang Lang) []string {
	if lang == LangAR && len(t.AR) > 0 {
		return t.AR
	}
	return t.EN
}
