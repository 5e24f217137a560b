package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
)

func TestNormalizeMetrics(t *testing.T) {
	m := models.DailyMetrics{
		FastingHours:       -3,
		SleepDurationHours: -1,
		SleepQuality:       14,
		ProteinIntakeGrams: -20,
		WaterIntakeLiters:  -0.5,
		TrainingSessions: []models.TrainingSession{
			{DurationMinutes: -10, Intensity: models.IntensityLow},
			{DurationMinutes: 45, Intensity: models.IntensityHigh},
		},
	}

	n := NormalizeMetrics(m)

	assert.Equal(t, 0.0, n.FastingHours)
	assert.Equal(t, 0.0, n.SleepDurationHours)
	assert.Equal(t, 10.0, n.SleepQuality)
	assert.Equal(t, 0.0, n.ProteinIntakeGrams)
	assert.Equal(t, 0.0, n.WaterIntakeLiters)
	assert.Equal(t, 0, n.TrainingSessions[0].DurationMinutes)
	assert.Equal(t, 45, n.TrainingSessions[1].DurationMinutes)

	// the input snapshot is left untouched
	assert.Equal(t, -3.0, m.FastingHours)
	assert.Equal(t, -10, m.TrainingSessions[0].DurationMinutes)
}

func TestStressIndicator(t *testing.T) {
	assert.Equal(t, models.IndicatorGreen, StressIndicator(110, 70, 65))
	assert.Equal(t, models.IndicatorYellow, StressIndicator(130, 70, 65))
	assert.Equal(t, models.IndicatorYellow, StressIndicator(110, 70, 95))
	assert.Equal(t, models.IndicatorRed, StressIndicator(160, 100, 120))
}

func TestComputeProjection(t *testing.T) {
	m := nominalMetrics()
	p := ComputeProjection(m, 40, 77, 77)

	// health score 77 -> delta (50-77)*0.2 = -5.4 -> round(34.6) = 35
	assert.Equal(t, 35, p.BiologicalAge)
	assert.Equal(t, 100, p.BodyForm)
	assert.GreaterOrEqual(t, p.EnergyFocus, 0)
	assert.LessOrEqual(t, p.EnergyFocus, 100)

	// poor health pushes biological age up, floored at 18 from below
	assert.Equal(t, 48, BiologicalAge(40, 10, 10)) // delta (50-10)*0.2 = 8
	assert.Equal(t, 18, BiologicalAge(10, 100, 100))
}
