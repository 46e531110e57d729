package models

// Category classifies an expense. The set is closed: anything the API
// receives outside this list is bucketed into CategoryOther.
type Category string

const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryHousing        Category = "Housing"
	CategoryUtilities      Category = "Utilities"
	CategoryEntertainment  Category = "Entertainment"
	CategoryShopping       Category = "Shopping"
	CategoryHealthcare     Category = "Healthcare"
	CategoryTravel         Category = "Travel"
	CategoryEducation      Category = "Education"
	CategoryPersonal       Category = "Personal"
	CategoryGifts          Category = "Gifts"
	CategoryOther          Category = "Other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransportation,
	CategoryHousing,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealthcare,
	CategoryTravel,
	CategoryEducation,
	CategoryPersonal,
	CategoryGifts,
	CategoryOther,
}

var categoryColors = map[Category]string{
	CategoryFood:           "#FF6B6B",
	CategoryTransportation: "#4CAF50",
	CategoryHousing:        "#2196F3",
	CategoryUtilities:      "#9C27B0",
	CategoryEntertainment:  "#FF9800",
	CategoryShopping:       "#FFC107",
	CategoryHealthcare:     "#00BCD4",
	CategoryTravel:         "#3F51B5",
	CategoryEducation:      "#8BC34A",
	CategoryPersonal:       "#E91E63",
	CategoryGifts:          "#CDDC39",
	CategoryOther:          "#607D8B",
}

// DefaultCategoryColor is used for anything outside the known set.
const DefaultCategoryColor = "#607D8B"

// CategoryColor returns the chart color for a category. Unknown categories
// get the default color rather than an error.
func CategoryColor(c Category) string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return DefaultCategoryColor
}

// ParseCategory maps a raw string onto the closed category set.
// Unrecognized values fall back to CategoryOther.
func ParseCategory(s string) Category {
	c := Category(s)
	if _, ok := categoryColors[c]; ok {
		return c
	}
	return CategoryOther
}

// IsValidCategory reports whether s is exactly one of the known categories.
func IsValidCategory(s string) bool {
	_, ok := categoryColors[Category(s)]
	return ok
}
