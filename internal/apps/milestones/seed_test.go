package milestones

import (
	"strings"
	"testing"

	"github.com/bobo-app/bobo-backend/internal/models"
)

func TestGuideForMonth(t *testing.T) {
	tests := []struct {
		month int
		want  string
	}{
		{0, "Breast milk or infant formula only."},
		{3, "Continue with breast milk or formula. Consider introducing Vitamin D supplements if exclusively breastfeeding."},
		{5, "Continue with breast milk or formula. Consider introducing Vitamin D supplements if exclusively breastfeeding."},
		{6, "Introduce solid foods, starting with iron-fortified cereals. Continue breastfeeding or formula feeding."},
		{8, "Gradually introduce a variety of solid foods, including pureed fruits, vegetables, and meats. Continue with breast milk or formula."},
		{11, "Gradually introduce a variety of solid foods, including pureed fruits, vegetables, and meats. Continue with breast milk or formula."},
	}
	for _, tt := range tests {
		if got := GuideForMonth(tt.month); got != tt.want {
			t.Errorf("GuideForMonth(%d) = %q, want %q", tt.month, got, tt.want)
		}
	}

	// The remaining bands are shared texts; pin the band edges.
	if got := GuideForMonth(12); !strings.Contains(got, "textured foods") {
		t.Errorf("GuideForMonth(12) = %q, want the textured-foods guide", got)
	}
	if GuideForMonth(23) != GuideForMonth(12) {
		t.Error("months 12-23 should share one guide text")
	}
	if GuideForMonth(36) == GuideForMonth(24) {
		t.Error("months 24 and 36 should have distinct guide texts")
	}
	if GuideForMonth(48) == "" {
		t.Error("GuideForMonth(48) is empty")
	}
}

func TestSeedNutritionGuides(t *testing.T) {
	db := newTestDB(t)

	if err := SeedNutritionGuides(db); err != nil {
		t.Fatalf("SeedNutritionGuides() error = %v", err)
	}

	var count int64
	db.Model(&models.NutritionGuide{}).Count(&count)
	if count != 49 {
		t.Fatalf("nutrition guide rows = %d, want 49 (months 0-48)", count)
	}

	var first models.NutritionGuide
	if err := db.Where("month = ?", 0).First(&first).Error; err != nil {
		t.Fatalf("failed to load month 0: %v", err)
	}
	if first.Guide != "Breast milk or infant formula only." {
		t.Errorf("month 0 guide = %q", first.Guide)
	}

	// Reseeding replaces the catalog instead of accumulating rows.
	if err := SeedNutritionGuides(db); err != nil {
		t.Fatalf("repeated SeedNutritionGuides() error = %v", err)
	}
	db.Model(&models.NutritionGuide{}).Count(&count)
	if count != 49 {
		t.Errorf("nutrition guide rows after reseed = %d, want 49", count)
	}
}

func TestSeedCatalogsIdempotent(t *testing.T) {
	db := newTestDB(t)

	if err := SeedCatalogs(db); err != nil {
		t.Fatalf("SeedCatalogs() error = %v", err)
	}

	var milestones, activities int64
	db.Model(&models.Milestone{}).Count(&milestones)
	db.Model(&models.Activity{}).Count(&activities)
	if milestones == 0 {
		t.Fatal("SeedCatalogs() created no milestones")
	}
	if activities == 0 {
		t.Fatal("SeedCatalogs() created no activities")
	}

	if err := SeedCatalogs(db); err != nil {
		t.Fatalf("repeated SeedCatalogs() error = %v", err)
	}

	var milestones2, activities2 int64
	db.Model(&models.Milestone{}).Count(&milestones2)
	db.Model(&models.Activity{}).Count(&activities2)
	if milestones2 != milestones || activities2 != activities {
		t.Errorf("reseed changed counts: milestones %d -> %d, activities %d -> %d",
			milestones, milestones2, activities, activities2)
	}
}
