package catalog

import "github.com/meltforce/recoverytrack/internal/models"

// seedExercises returns the built-in library persisted on first run. Seed ids
// are stable slugs; custom entries get UUIDs.
func seedExercises() []models.ExerciseDefinition {
	return []models.ExerciseDefinition{
		{
			ID:          "gentle-hip-circles",
			Name:        "Gentle Hip Circles",
			Description: "Lying on back, slowly circle leg in both directions",
			TargetArea:  "Hip Labrum",
			RepRange:    "10 each direction",
		},
		{
			ID:          "clamshells",
			Name:        "Clamshells",
			Description: "Side-lying, lift top knee while keeping feet together",
			TargetArea:  "Hip Labrum",
			RepRange:    "10-15 reps",
		},
		{
			ID:          "glute-bridges",
			Name:        "Glute Bridges",
			Description: "Lying on back, lift hips up gently",
			TargetArea:  "Hip/Knee Support",
			RepRange:    "10 reps, 5 sec hold",
		},
		{
			ID:          "straight-leg-raises",
			Name:        "Straight Leg Raises",
			Description: "Lying down, lift straight leg slowly",
			TargetArea:  "Knee Meniscus",
			RepRange:    "10 reps each leg",
		},
		{
			ID:          "heel-slides",
			Name:        "Heel Slides",
			Description: "Lying down, slowly slide heel toward buttocks and back",
			TargetArea:  "Knee Meniscus",
			RepRange:    "10 reps",
		},
		{
			ID:          "gentle-cat-cow",
			Name:        "Gentle Cat-Cow Stretch",
			Description: "On hands and knees, arch and round back gently",
			TargetArea:  "Overall Mobility",
			RepRange:    "10 movements",
		},
		{
			ID:          "seated-hip-flexor-stretch",
			Name:        "Seated Hip Flexor Stretch",
			Description: "Seated, bring ankle to opposite knee, lean forward gently",
			TargetArea:  "Hip Labrum",
			RepRange:    "30 sec hold",
		},
		{
			ID:          "wall-sits-modified",
			Name:        "Wall Sits (Modified)",
			Description: "Back against wall, slide down slightly",
			TargetArea:  "Knee Support",
			RepRange:    "15-30 sec hold",
		},
	}
}
