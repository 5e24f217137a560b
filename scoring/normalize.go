package scoring

import (
	"math"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
)

// NormalizeMetrics clamps a raw metrics snapshot into the canonical shape the
// scorers consume: non-negative durations and intakes, sleep quality in
// [0,10]. The tier logic tolerates out-of-range values on its own; this pass
// keeps persisted snapshots and message interpolations sane as well.
func NormalizeMetrics(m models.DailyMetrics) models.DailyMetrics {
	m.FastingHours = math.Max(0, m.FastingHours)
	m.SleepDurationHours = math.Max(0, m.SleepDurationHours)
	m.SleepQuality = clampFloat(m.SleepQuality, 0, 10)
	m.ProteinIntakeGrams = math.Max(0, m.ProteinIntakeGrams)
	m.ProteinTargetGrams = math.Max(0, m.ProteinTargetGrams)
	m.VeggieIntakeGrams = math.Max(0, m.VeggieIntakeGrams)
	m.WaterIntakeLiters = math.Max(0, m.WaterIntakeLiters)

	sessions := make([]models.TrainingSession, 0, len(m.TrainingSessions))
	for _, s := range m.TrainingSessions {
		if s.DurationMinutes < 0 {
			s.DurationMinutes = 0
		}
		sessions = append(sessions, s)
	}
	m.TrainingSessions = sessions
	return m
}

// StressIndicator classifies the day's vitals into the traffic-light bands
// the stress card shows. Green requires all three vitals in the normal band;
// a single mildly-off vital yields yellow, anything further red.
func StressIndicator(systolic, diastolic, pulse int) models.ColorIndicator {
	systolicNormal := systolic >= 90 && systolic <= 120
	diastolicNormal := diastolic >= 60 && diastolic <= 80
	pulseNormal := pulse >= 60 && pulse <= 80

	if systolicNormal && diastolicNormal && pulseNormal {
		return models.IndicatorGreen
	}

	systolicMild := (systolic >= 80 && systolic < 90) || (systolic > 120 && systolic <= 140)
	diastolicMild := (diastolic >= 50 && diastolic < 60) || (diastolic > 80 && diastolic <= 90)
	pulseMild := (pulse >= 50 && pulse < 60) || (pulse > 80 && pulse <= 100)

	if systolicMild || diastolicMild || pulseMild {
		return models.IndicatorYellow
	}
	return models.IndicatorRed
}
