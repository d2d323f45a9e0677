package catalog

// Entity is the catalog API's representation of an app, developer, or
// category. The API owns the full shape; only the bilingual display fields
// used for preview metadata are decoded here, and every field is optional.
type Entity struct {
	Slug               string `json:"slug"`
	NameAr             string `json:"name_ar"`
	NameEn             string `json:"name_en"`
	ShortDescriptionAr string `json:"short_description_ar"`
	ShortDescriptionEn string `json:"short_description_en"`
	DescriptionAr      string `json:"description_ar"`
	DescriptionEn      string `json:"description_en"`
	ApplicationIcon    string `json:"application_icon"`
	Logo               string `json:"logo"`
}

// Name returns the display name for lang, falling back to the other
// language when the localized field is empty.
func (e *Entity) Name(lang string) string {
	if lang == "ar" {
		return firstNonEmpty(e.NameAr, e.NameEn)
	}
	return firstNonEmpty(e.NameEn, e.NameAr)
}

// Description returns the short description for lang, falling back to the
// long description and then to the other language.
func (e *Entity) Description(lang string) string {
	if lang == "ar" {
		return firstNonEmpty(e.ShortDescriptionAr, e.DescriptionAr, e.ShortDescriptionEn, e.DescriptionEn)
	}
	return firstNonEmpty(e.ShortDescriptionEn, e.DescriptionEn, e.ShortDescriptionAr, e.DescriptionAr)
}

// Image returns the entity's icon or logo URL, empty when neither is set.
func (e *Entity) Image() string {
	return firstNonEmpty(e.ApplicationIcon, e.Logo)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
