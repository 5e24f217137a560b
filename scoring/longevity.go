package scoring

import (
	"fmt"
	"math"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
)

// IdealBodyFat returns the reference body-fat percentage for a gender.
// The second return value is false for unknown gender values.
func IdealBodyFat(gender models.Gender) (float64, bool) {
	switch gender {
	case models.GenderMale:
		return 14.0, true
	case models.GenderFemale:
		return 21.5, true
	case models.GenderOther:
		return 17.75, true
	}
	return 0, false
}

// ProteinTarget derives the daily protein target in grams from body weight.
// Male x1.6, female x1.4, other x1.5, rounded to the nearest gram.
func ProteinTarget(bodyWeightKg float64, gender models.Gender) int {
	switch gender {
	case models.GenderMale:
		return round(bodyWeightKg * 1.6)
	case models.GenderFemale:
		return round(bodyWeightKg * 1.4)
	default:
		return round(bodyWeightKg * 1.5)
	}
}

// ComputeLongevityScore derives the three longevity sub-scores and their
// clamped total. It couples to the autophagy scorer's total, so it must be
// invoked after it, against the same metrics snapshot.
//
// It fails with ErrMissingInput for an unknown gender or an autophagy total
// outside [0,100]; it never substitutes defaults for either.
func ComputeLongevityScore(m models.DailyMetrics, autophagyTotal int, gender models.Gender) (models.LongevityScore, error) {
	idealBodyFat, ok := IdealBodyFat(gender)
	if !ok {
		return models.LongevityScore{}, fmt.Errorf("%w: gender %q", ErrMissingInput, gender)
	}
	if autophagyTotal < 0 || autophagyTotal > models.MaxTotalScore {
		return models.LongevityScore{}, fmt.Errorf("%w: autophagy total %d out of range", ErrMissingInput, autophagyTotal)
	}

	bodyComp := bodyCompositionScore(m.BodyFatPercent, m.MuscleMassKg, idealBodyFat)
	nutrition := nutritionScore(m)
	coupling := round(float64(autophagyTotal) * models.MaxAutophagyCouplingScore / models.MaxTotalScore)

	total := clampInt(bodyComp+nutrition+coupling, 0, models.MaxTotalScore)

	return models.LongevityScore{
		BodyCompositionScore:   bodyComp,
		NutritionScore:         nutrition,
		AutophagyCouplingScore: coupling,
		TotalScore:             total,
	}, nil
}

// bodyCompositionScore averages a body-fat component and a muscle-mass
// component, each worth up to 50. Body fat inside the 10-25% band scores
// full; outside it, the score falls off by 2 points per percent of distance
// from the gender's ideal. Muscle mass scales linearly across 10-100 kg.
func bodyCompositionScore(bodyFatPercent, muscleMassKg, idealBodyFat float64) int {
	bodyFatComponent := 0.0
	if bodyFatPercent >= 10.0 && bodyFatPercent <= 25.0 {
		bodyFatComponent = 50.0
	} else {
		diff := math.Abs(bodyFatPercent - idealBodyFat)
		bodyFatComponent = math.Max(0, 50.0-diff*2.0)
	}

	muscleComponent := 0.0
	if muscleMassKg >= 10.0 && muscleMassKg <= 100.0 {
		muscleComponent = 50.0 * (muscleMassKg - 10.0) / 90.0
	}

	combined := (bodyFatComponent + muscleComponent) / 2.0
	return clampInt(round(combined), 0, models.MaxBodyCompositionScore)
}

// nutritionScore awards up to 10 points each for protein, vegetables and
// water. Each component is rounded individually before summing; intakes at
// or above target saturate at 10.
func nutritionScore(m models.DailyMetrics) int {
	proteinPts := 10
	if m.ProteinIntakeGrams < m.ProteinTargetGrams {
		proteinPts = round(m.ProteinIntakeGrams * 10 / m.ProteinTargetGrams)
	}

	veggiePts := 10
	if m.VeggieIntakeGrams < 400 {
		veggiePts = round(m.VeggieIntakeGrams * 10 / 400)
	}

	waterPts := 10
	if m.WaterIntakeLiters < 2 {
		waterPts = round(m.WaterIntakeLiters * 10 / 2)
	}

	return clampInt(proteinPts+veggiePts+waterPts, 0, models.MaxNutritionScore)
}
