package scoring

import (
	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
)

// ComputeAutophagyScore derives the four autophagy sub-scores and their
// clamped total from one day's metrics. Sub-score weights: fasting 40,
// training 30, sleep 20, stress 10.
func ComputeAutophagyScore(m models.DailyMetrics) models.AutophagyScore {
	fasting := fastingScore(m.FastingHours)
	training := trainingScore(m.TrainingSessions)
	sleep := sleepScore(m.SleepDurationHours, m.SleepQuality)
	stress := stressScore(m.Pulse, m.Systolic, m.Diastolic)

	total := clampInt(fasting+training+sleep+stress, 0, models.MaxTotalScore)

	return models.AutophagyScore{
		FastingScore:  fasting,
		TrainingScore: training,
		SleepScore:    sleep,
		StressScore:   stress,
		TotalScore:    total,
	}
}

// fastingScore tiers elapsed fasting hours. Autophagy activation ramps up
// between 12 and 20 hours; anything below 12 scores zero.
func fastingScore(hours float64) int {
	switch {
	case hours < 12:
		return 0
	case hours < 14:
		return 10
	case hours < 16:
		return 25
	case hours < 20:
		return 35
	default:
		return models.MaxFastingScore
	}
}

// trainingScore awards durationMinutes x intensityWeight / 10 per session,
// summed across all sessions and capped at 30.
func trainingScore(sessions []models.TrainingSession) int {
	total := 0.0
	for _, s := range sessions {
		total += float64(s.DurationMinutes) * float64(s.Intensity.Weight()) / 10
	}
	return round(clampFloat(total, 0, models.MaxTrainingScore))
}

// sleepScore combines tiered duration points with quality points that
// saturate at a quality rating of 5.
func sleepScore(durationHours, quality float64) int {
	durPoints := 0.0
	switch {
	case durationHours < 5:
		durPoints = 0
	case durationHours < 7:
		durPoints = 5
	default:
		durPoints = 10
	}

	qualityPoints := 10.0
	if quality <= 5 {
		qualityPoints = quality * 10 / 5
	}

	return round(clampFloat(durPoints+qualityPoints, 0, models.MaxSleepScore))
}

// stressScore combines resting-heart-rate points with blood-pressure points.
func stressScore(pulse, systolic, diastolic int) int {
	rhrPoints := 0
	switch {
	case pulse < 60:
		rhrPoints = 5
	case pulse < 75:
		rhrPoints = 3
	}

	bpPoints := 3
	if systolic < 120 && diastolic < 80 {
		bpPoints = 5
	} else if systolic > 130 || diastolic > 85 {
		bpPoints = 0
	}

	return clampInt(rhrPoints+bpPoints, 0, models.MaxStressScore)
}
