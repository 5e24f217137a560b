package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
)

func nominalMetrics() models.DailyMetrics {
	return models.DailyMetrics{
		FastingHours: 18,
		TrainingSessions: []models.TrainingSession{
			{DurationMinutes: 60, Intensity: models.IntensityMedium},
		},
		SleepDurationHours: 8,
		SleepQuality:       8,
		Systolic:           115,
		Diastolic:          75,
		Pulse:              58,
		ProteinIntakeGrams: 120,
		ProteinTargetGrams: 150,
		VeggieIntakeGrams:  400,
		WaterIntakeLiters:  2.5,
		BodyFatPercent:     18,
		MuscleMassKg:       40,
		Gender:             models.GenderMale,
	}
}

func TestComputeAutophagyScore(t *testing.T) {
	t.Run("nominal day breakdown", func(t *testing.T) {
		score := ComputeAutophagyScore(nominalMetrics())

		assert.Equal(t, 35, score.FastingScore) // 18h sits in the 16-20h tier
		assert.Equal(t, 12, score.TrainingScore)
		assert.Equal(t, 20, score.SleepScore)
		assert.Equal(t, 10, score.StressScore)
		assert.Equal(t, 77, score.TotalScore)
	})

	t.Run("fasting tiers", func(t *testing.T) {
		cases := []struct {
			hours float64
			want  int
		}{
			{0, 0}, {11.9, 0}, {12, 10}, {13.5, 10}, {14, 25},
			{15.9, 25}, {16, 35}, {19.9, 35}, {20, 40}, {36, 40},
		}
		for _, tc := range cases {
			m := nominalMetrics()
			m.FastingHours = tc.hours
			assert.Equal(t, tc.want, ComputeAutophagyScore(m).FastingScore, "hours=%v", tc.hours)
		}
	})

	t.Run("fasting monotonicity", func(t *testing.T) {
		m := nominalMetrics()
		prev := -1
		for hours := 0.0; hours <= 30; hours += 0.5 {
			m.FastingHours = hours
			got := ComputeAutophagyScore(m).FastingScore
			assert.GreaterOrEqual(t, got, prev, "fasting score dropped at %v hours", hours)
			prev = got
		}
	})

	t.Run("training sums across sessions and caps at 30", func(t *testing.T) {
		m := nominalMetrics()
		m.TrainingSessions = []models.TrainingSession{
			{DurationMinutes: 30, Intensity: models.IntensityLow},    // 3
			{DurationMinutes: 45, Intensity: models.IntensityMedium}, // 9
			{DurationMinutes: 20, Intensity: models.IntensityHigh},   // 6
		}
		assert.Equal(t, 18, ComputeAutophagyScore(m).TrainingScore)

		m.TrainingSessions = []models.TrainingSession{
			{DurationMinutes: 180, Intensity: models.IntensityHigh}, // 54, capped
		}
		assert.Equal(t, models.MaxTrainingScore, ComputeAutophagyScore(m).TrainingScore)

		m.TrainingSessions = nil
		assert.Equal(t, 0, ComputeAutophagyScore(m).TrainingScore)
	})

	t.Run("sleep quality saturates above 5", func(t *testing.T) {
		m := nominalMetrics()
		m.SleepDurationHours = 8

		m.SleepQuality = 3
		assert.Equal(t, 16, ComputeAutophagyScore(m).SleepScore) // 10 + 6

		m.SleepQuality = 5
		assert.Equal(t, 20, ComputeAutophagyScore(m).SleepScore)

		m.SleepQuality = 9
		assert.Equal(t, 20, ComputeAutophagyScore(m).SleepScore)
	})

	t.Run("sleep quality monotonicity up to saturation", func(t *testing.T) {
		m := nominalMetrics()
		prev := -1
		for q := 0.0; q <= 10; q += 0.5 {
			m.SleepQuality = q
			got := ComputeAutophagyScore(m).SleepScore
			assert.GreaterOrEqual(t, got, prev, "sleep score dropped at quality %v", q)
			prev = got
		}
	})

	t.Run("sleep duration tiers", func(t *testing.T) {
		m := nominalMetrics()
		m.SleepQuality = 0

		m.SleepDurationHours = 4
		assert.Equal(t, 0, ComputeAutophagyScore(m).SleepScore)
		m.SleepDurationHours = 6
		assert.Equal(t, 5, ComputeAutophagyScore(m).SleepScore)
		m.SleepDurationHours = 7
		assert.Equal(t, 10, ComputeAutophagyScore(m).SleepScore)
	})

	t.Run("stress bands", func(t *testing.T) {
		cases := []struct {
			name                      string
			pulse, systolic, diastolic int
			want                      int
		}{
			{"rested and normotensive", 55, 110, 70, 10},
			{"moderate pulse normal bp", 65, 110, 70, 8},
			{"high pulse elevated bp", 80, 135, 88, 0},
			{"moderate everything", 65, 125, 82, 6},
			{"low pulse elevated bp", 55, 140, 90, 5},
		}
		for _, tc := range cases {
			m := nominalMetrics()
			m.Pulse, m.Systolic, m.Diastolic = tc.pulse, tc.systolic, tc.diastolic
			assert.Equal(t, tc.want, ComputeAutophagyScore(m).StressScore, tc.name)
		}
	})

	t.Run("boundedness for extreme inputs", func(t *testing.T) {
		extremes := []models.DailyMetrics{
			{},
			{FastingHours: 500, SleepDurationHours: 100, SleepQuality: 100, Pulse: -10, Systolic: -10, Diastolic: -10},
			{TrainingSessions: []models.TrainingSession{{DurationMinutes: 100000, Intensity: models.IntensityHigh}}},
		}
		for _, m := range extremes {
			score := ComputeAutophagyScore(m)
			assert.GreaterOrEqual(t, score.FastingScore, 0)
			assert.LessOrEqual(t, score.FastingScore, models.MaxFastingScore)
			assert.GreaterOrEqual(t, score.TrainingScore, 0)
			assert.LessOrEqual(t, score.TrainingScore, models.MaxTrainingScore)
			assert.GreaterOrEqual(t, score.SleepScore, 0)
			assert.LessOrEqual(t, score.SleepScore, models.MaxSleepScore)
			assert.GreaterOrEqual(t, score.StressScore, 0)
			assert.LessOrEqual(t, score.StressScore, models.MaxStressScore)
			assert.GreaterOrEqual(t, score.TotalScore, 0)
			assert.LessOrEqual(t, score.TotalScore, models.MaxTotalScore)
		}
	})

	t.Run("idempotence", func(t *testing.T) {
		m := nominalMetrics()
		assert.Equal(t, ComputeAutophagyScore(m), ComputeAutophagyScore(m))
	})
}
