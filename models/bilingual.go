package models

// Bilingual holds the English and Arabic variants of a text field.
// Persisted as paired columns (e.g. name_en / name_ar); collapsed to a
// single string at response time by i18n.Shape.
type Bilingual struct {
	EN string `json:"en,omitempty"`
	AR string `json:"ar,omitempty"`
}

// Resolve returns the variant for lang, falling back to whichever
// variant is populated when the requested one is empty.
func (b Bilingual) Resolve(lang string) string {
	switch lang {
	case "ar":
		if b.AR != "" {
			return b.AR
		}
		return b.EN
	default:
		if b.EN != "" {
			return b.EN
		}
		return b.AR
	}
}

func (b Bilingual) IsEmpty() bool {
	return b.EN == "" && b.AR == ""
}
