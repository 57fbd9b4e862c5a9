package enums

import "fmt"

// ProductCategory represents the storefront's fixed category set.
type ProductCategory string

const (
	ProductCategoryPlayStation ProductCategory = "playstation"
	ProductCategoryXbox        ProductCategory = "xbox"
	ProductCategoryNintendo    ProductCategory = "nintendo"
	ProductCategoryAccessories ProductCategory = "accessories"
)

var validProductCategories = []ProductCategory{
	ProductCategoryPlayStation,
	ProductCategoryXbox,
	ProductCategoryNintendo,
	ProductCategoryAccessories,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}

// ProductCategories returns the allowed categories in display order.
func ProductCategories() []ProductCategory {
	out := make([]ProductCategory, len(validProductCategories))
	copy(out, validProductCategories)
	return out
}
