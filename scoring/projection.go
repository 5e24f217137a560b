package scoring

import (
	"math"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
)

// BiologicalAge shifts the chronological age by how far the combined health
// score sits from the neutral midpoint of 50, at 0.2 years per point, with a
// floor of 18.
func BiologicalAge(chronologicalAge, autophagyTotal, longevityTotal int) int {
	healthScore := float64(autophagyTotal+longevityTotal) / 2.0
	ageDelta := (50 - healthScore) * 0.2
	return int(math.Max(18, math.Round(float64(chronologicalAge)+ageDelta)))
}

// ComputeProjection derives the dashboard's future-projection values from
// the current snapshot and both score totals.
func ComputeProjection(m models.DailyMetrics, chronologicalAge, autophagyTotal, longevityTotal int) models.FutureProjection {
	bodyCompCompletion := 0.0
	if m.BodyFatPercent > 0 {
		bodyCompCompletion += 0.5
	}
	if m.MuscleMassKg > 0 {
		bodyCompCompletion += 0.5
	}

	sleepCompletion := math.Min(1, (m.SleepDurationHours/8+m.SleepQuality/10)/2)

	nutritionCompletion := 0.0
	if m.ProteinTargetGrams > 0 {
		nutritionCompletion = math.Min(1, (m.ProteinIntakeGrams/m.ProteinTargetGrams+m.VeggieIntakeGrams/400+m.WaterIntakeLiters/2)/3)
	}

	stressCompletion := 0.3
	switch StressIndicator(m.Systolic, m.Diastolic, m.Pulse) {
	case models.IndicatorGreen:
		stressCompletion = 1
	case models.IndicatorYellow:
		stressCompletion = 0.6
	}

	return models.FutureProjection{
		BiologicalAge: BiologicalAge(chronologicalAge, autophagyTotal, longevityTotal),
		BodyForm:      round(bodyCompCompletion * 100),
		EnergyFocus:   round((sleepCompletion + nutritionCompletion + (1 - stressCompletion)) / 3 * 100),
	}
}
