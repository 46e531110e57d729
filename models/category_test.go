package models

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"Food", CategoryFood},
		{"Travel", CategoryTravel},
		{"Other", CategoryOther},
		{"food", CategoryOther},  // case sensitive, buckets to Other
		{"Crypto", CategoryOther},
		{"", CategoryOther},
	}
	for _, tt := range tests {
		if got := ParseCategory(tt.in); got != tt.want {
			t.Errorf("ParseCategory(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestCategoryColor(t *testing.T) {
	if got := CategoryColor(CategoryFood); got != "#FF6B6B" {
		t.Errorf("CategoryColor(Food) = %q, want #FF6B6B", got)
	}
	if got := CategoryColor(Category("Nonsense")); got != DefaultCategoryColor {
		t.Errorf("CategoryColor(unknown) = %q, want default %q", got, DefaultCategoryColor)
	}
}

func TestCategoriesAllHaveColors(t *testing.T) {
	for _, c := range Categories {
		if !IsValidCategory(string(c)) {
			t.Errorf("category %s missing from the color table", c)
		}
	}
	if len(Categories) != 12 {
		t.Errorf("len(Categories) = %d, want 12", len(Categories))
	}
}
