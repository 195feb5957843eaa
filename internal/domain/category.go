package domain

import "strings"

// Category is the closed set of categories that carry presentation metadata.
type Category string

const (
	CategoryMusic    Category = "Music"
	CategoryBusiness Category = "Business"
	CategoryTech     Category = "Tech"
	CategorySports   Category = "Sports"
	CategoryArt      Category = "Art"
	CategoryFood     Category = "Food"
	CategoryHealth   Category = "Health"
	CategoryOther    Category = "Other"
	// CategoryUnknown stands for any label outside the set above.
	CategoryUnknown Category = "Unknown"
)

// SentinelCategory is the bucket for events without a category.
const SentinelCategory = string(CategoryOther)

// KnownCategories lists the tagged categories in display order.
var KnownCategories = []Category{
	CategoryMusic, CategoryBusiness, CategoryTech, CategorySports,
	CategoryArt, CategoryFood, CategoryHealth, CategoryOther,
}

// ParseCategory maps an exact category label to its tag; anything else is CategoryUnknown.
func ParseCategory(name string) Category {
	for _, c := range KnownCategories {
		if string(c) == name {
			return c
		}
	}
	return CategoryUnknown
}

// CategoryFromSlug resolves a lower-case URL slug ("music") to its tag, falling back to Other.
func CategoryFromSlug(slug string) Category {
	for _, c := range KnownCategories {
		if strings.EqualFold(string(c), strings.TrimSpace(slug)) {
			return c
		}
	}
	return CategoryOther
}

// CategoryMeta is the presentation metadata of a category.
type CategoryMeta struct {
	Icon    string `json:"icon"`
	Color   string `json:"color"`
	BgColor string `json:"bg_color"`
}

// Meta returns the presentation metadata for c.
func (c Category) Meta() CategoryMeta {
	switch c {
	case CategoryMusic:
		return CategoryMeta{Icon: "🎵", Color: "from-purple-600 to-pink-600", BgColor: "from-purple-500/10 to-pink-500/10"}
	case CategoryBusiness:
		return CategoryMeta{Icon: "💼", Color: "from-blue-600 to-indigo-600", BgColor: "from-blue-500/10 to-indigo-500/10"}
	case CategoryTech:
		return CategoryMeta{Icon: "💻", Color: "from-indigo-600 to-purple-600", BgColor: "from-indigo-500/10 to-purple-500/10"}
	case CategorySports:
		return CategoryMeta{Icon: "🏀", Color: "from-orange-600 to-red-600", BgColor: "from-orange-500/10 to-red-500/10"}
	case CategoryArt:
		return CategoryMeta{Icon: "🎨", Color: "from-pink-600 to-rose-600", BgColor: "from-pink-500/10 to-rose-500/10"}
	case CategoryFood:
		return CategoryMeta{Icon: "🍔", Color: "from-green-600 to-emerald-600", BgColor: "from-green-500/10 to-emerald-500/10"}
	case CategoryHealth:
		return CategoryMeta{Icon: "🩺", Color: "from-red-600 to-pink-600", BgColor: "from-red-500/10 to-pink-500/10"}
	case CategoryOther:
		return CategoryMeta{Icon: "🎉", Color: "from-fuchsia-600 to-purple-600", BgColor: "from-fuchsia-500/10 to-purple-500/10"}
	default:
		return CategoryMeta{Icon: "🎉", Color: "from-gray-600 to-gray-700", BgColor: "from-gray-500/10 to-gray-600/10"}
	}
}

// Slug is the lower-case form used in category URLs.
func (c Category) Slug() string {
	return strings.ToLower(string(c))
}

// CategorySummary is one bucket of the category explorer.
// swagger:model CategorySummary
type CategorySummary struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
	CategoryMeta
}
