package milestones

import (
	"log/slog"

	"github.com/bobo-app/bobo-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxGuideMonth = 48

// GuideForMonth returns the fixed feeding guidance for one month of age.
func GuideForMonth(month int) string {
	switch {
	case month == 0:
		return "Breast milk or infant formula only."
	case month < 6:
		return "Continue with breast milk or formula. Consider introducing Vitamin D supplements if exclusively breastfeeding."
	case month == 6:
		return "Introduce solid foods, starting with iron-fortified cereals. Continue breastfeeding or formula feeding."
	case month < 12:
		return "Gradually introduce a variety of solid foods, including pureed fruits, vegetables, and meats. Continue with breast milk or formula."
	case month < 24:
		return "Introduce more textured foods and a greater variety of family foods. Keep offering breast milk or formula alongside meals."
	case month < 36:
		return "Encourage self-feeding with finger foods and a varied diet to include all food groups."
	case month < 48:
		return "Focus on providing a balanced diet with whole grains, fruits, vegetables, and appropriate proteins. Limit sugary snacks."
	default:
		return "Continue encouraging a balanced diet that includes a variety of foods from all food groups."
	}
}

// SeedNutritionGuides replaces the whole nutrition guide catalog with one
// row per month 0 through 48.
func SeedNutritionGuides(db *gorm.DB) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.NutritionGuide{}).Error; err != nil {
			return err
		}
		for month := 0; month <= maxGuideMonth; month++ {
			guide := models.NutritionGuide{
				ID:    uuid.New(),
				Month: month,
				Guide: GuideForMonth(month),
			}
			if err := tx.Create(&guide).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("seeded nutrition guides", "rows", maxGuideMonth+1)
	return nil
}

type milestoneSeed struct {
	Month       int
	Area        string
	Description string
}

var seedMilestones = []milestoneSeed{
	{Month: 2, Area: "Gross Motor", Description: "Holds head up when lying on tummy"},
	{Month: 2, Area: "Fine Motor", Description: "Opens hands briefly"},
	{Month: 2, Area: "Language", Description: "Makes sounds other than crying"},
	{Month: 2, Area: "Social", Description: "Smiles when you talk to or smile at them"},
	{Month: 4, Area: "Gross Motor", Description: "Holds head steady without support when held"},
	{Month: 4, Area: "Fine Motor", Description: "Holds a toy when you put it in their hand"},
	{Month: 4, Area: "Language", Description: "Makes cooing sounds like ooo and aahh"},
	{Month: 4, Area: "Social", Description: "Chuckles when you try to make them laugh"},
	{Month: 6, Area: "Gross Motor", Description: "Rolls from tummy to back"},
	{Month: 6, Area: "Gross Motor", Description: "Leans on hands to support themselves when sitting"},
	{Month: 6, Area: "Fine Motor", Description: "Reaches to grab a toy they want"},
	{Month: 6, Area: "Language", Description: "Takes turns making sounds with you"},
	{Month: 6, Area: "Social", Description: "Knows familiar people"},
	{Month: 9, Area: "Gross Motor", Description: "Gets to a sitting position by themselves"},
	{Month: 9, Area: "Fine Motor", Description: "Moves things from one hand to the other"},
	{Month: 9, Area: "Language", Description: "Makes different sounds like mamamama and babababa"},
	{Month: 9, Area: "Social", Description: "Shows several facial expressions, like happy, sad, angry, and surprised"},
	{Month: 12, Area: "Gross Motor", Description: "Pulls up to stand"},
	{Month: 12, Area: "Gross Motor", Description: "Walks holding on to furniture"},
	{Month: 12, Area: "Fine Motor", Description: "Picks things up between thumb and pointer finger"},
	{Month: 12, Area: "Language", Description: "Says mama or dada with meaning"},
	{Month: 12, Area: "Social", Description: "Plays games with you, like pat-a-cake"},
	{Month: 18, Area: "Gross Motor", Description: "Walks without holding on to anyone or anything"},
	{Month: 18, Area: "Fine Motor", Description: "Tries to use a spoon"},
	{Month: 18, Area: "Language", Description: "Tries to say three or more words besides mama or dada"},
	{Month: 18, Area: "Social", Description: "Points to show you something interesting"},
	{Month: 24, Area: "Gross Motor", Description: "Kicks a ball"},
	{Month: 24, Area: "Gross Motor", Description: "Runs"},
	{Month: 24, Area: "Fine Motor", Description: "Uses hands to twist things, like turning doorknobs"},
	{Month: 24, Area: "Language", Description: "Puts at least two words together, like more milk"},
	{Month: 24, Area: "Social", Description: "Notices when others are hurt or upset"},
	{Month: 36, Area: "Gross Motor", Description: "Climbs well and pedals a tricycle"},
	{Month: 36, Area: "Fine Motor", Description: "Draws a circle when you show them how"},
	{Month: 36, Area: "Language", Description: "Talks in conversation using at least two back-and-forth exchanges"},
	{Month: 36, Area: "Social", Description: "Calms down within ten minutes after you leave them"},
	{Month: 48, Area: "Gross Motor", Description: "Catches a large ball most of the time"},
	{Month: 48, Area: "Fine Motor", Description: "Holds a crayon between fingers and thumb"},
	{Month: 48, Area: "Language", Description: "Says sentences with four or more words"},
	{Month: 48, Area: "Social", Description: "Likes to be a helper"},
}

type activitySeed struct {
	Month       int
	Description string
}

var seedActivities = []activitySeed{
	{Month: 0, Description: "Hold, cuddle, and talk to your baby during feeding and changing"},
	{Month: 2, Description: "Give short supervised tummy time sessions several times a day"},
	{Month: 4, Description: "Offer a rattle or soft toy to grasp and explore"},
	{Month: 6, Description: "Play peek-a-boo and copy your baby's sounds back to them"},
	{Month: 9, Description: "Hide a toy under a cloth and let your baby find it"},
	{Month: 12, Description: "Roll a ball back and forth and name objects in picture books"},
	{Month: 18, Description: "Stack blocks together and encourage scribbling with chunky crayons"},
	{Month: 24, Description: "Kick a ball around the yard and sing songs with hand motions"},
	{Month: 36, Description: "Play simple pretend games and practice riding a tricycle"},
	{Month: 48, Description: "Play catch, do simple puzzles, and act out favorite stories"},
}

// SeedCatalogs inserts any missing milestone and activity catalog rows.
// Existing rows are left alone, so it is safe to run at every startup.
func SeedCatalogs(db *gorm.DB) error {
	seeded := 0
	for _, sm := range seedMilestones {
		var existing models.Milestone
		err := db.Where("month = ? AND area = ? AND description = ?", sm.Month, sm.Area, sm.Description).
			First(&existing).Error
		if err == nil {
			continue
		}

		milestone := models.Milestone{
			ID:          uuid.New(),
			Month:       sm.Month,
			Area:        sm.Area,
			Description: sm.Description,
		}
		if err := db.Create(&milestone).Error; err != nil {
			return err
		}
		seeded++
	}

	for _, sa := range seedActivities {
		var existing models.Activity
		err := db.Where("month = ? AND description = ?", sa.Month, sa.Description).
			First(&existing).Error
		if err == nil {
			continue
		}

		activity := models.Activity{
			ID:          uuid.New(),
			Month:       sa.Month,
			Description: sa.Description,
		}
		if err := db.Create(&activity).Error; err != nil {
			return err
		}
		seeded++
	}

	if seeded > 0 {
		slog.Info("seeded milestone and activity catalogs", "new", seeded)
	}
	return nil
}
