package hello_world

// Category groups related spokes together, both logically and visually (it creates a
// box on a hub). Spokes reference the category they should be included in.
type Category struct {
	// TitleKey is the translator key for the category title.
	TitleKey  string
	SortOrder int
}

// HelloWorldCategory is the category all spokes of this addon are shown in.
var HelloWorldCategory = Category{TitleKey: "category_title", SortOrder: 0}

// Title returns the localized category title.
func (c Category) Title(translator *Translator) string { return translator.Get(c.TitleKey) }
