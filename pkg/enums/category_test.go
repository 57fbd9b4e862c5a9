package enums

import "testing"

func TestParseProductCategory(t *testing.T) {
	for _, raw := range []string{"playstation", "xbox", "nintendo", "accessories"} {
		category, err := ParseProductCategory(raw)
		if err != nil {
			t.Fatalf("expected %q to parse, got %v", raw, err)
		}
		if !category.IsValid() {
			t.Fatalf("parsed category %q should be valid", category)
		}
		if category.String() != raw {
			t.Fatalf("round trip mismatch for %q", raw)
		}
	}
}

func TestParseProductCategoryRejectsUnknown(t *testing.T) {
	if _, err := ParseProductCategory("sega"); err == nil {
		t.Fatal("expected unknown category to be rejected")
	}
	if ProductCategory("Playstation").IsValid() {
		t.Fatal("category matching is case-sensitive")
	}
}
