package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
)

// balancedInput is a day where no coaching rule should fire.
func balancedInput() CoachingInput {
	m := nominalMetrics()
	m.FastingHours = 17
	m.ProteinIntakeGrams = 150
	m.BodyFatPercent = 18
	m.MuscleMassKg = 40
	return CoachingInput{Metrics: m, Scores: ScorePair{Autophagy: 75, Longevity: 75}}
}

func TestGenerateCoachingSteps(t *testing.T) {
	t.Run("fallback fires when nothing else does", func(t *testing.T) {
		steps := GenerateCoachingSteps(balancedInput())

		assert.Len(t, steps, 1)
		assert.Equal(t, "general-wellness", steps[0].ID)
		assert.Equal(t, 8, steps[0].Priority)
	})

	t.Run("no training logged yields the priority-2 training step", func(t *testing.T) {
		in := balancedInput()
		in.Metrics.TrainingSessions = nil
		in.Scores.Autophagy = 60

		steps := GenerateCoachingSteps(in)

		ids := stepIDs(steps)
		assert.Contains(t, ids, "training-needed")
		assert.NotContains(t, ids, "general-wellness")
		assert.LessOrEqual(t, len(steps), 5)
	})

	t.Run("critical rules sort ahead of the rest", func(t *testing.T) {
		in := balancedInput()
		in.Metrics.SleepDurationHours = 5 // priority 1
		in.Metrics.VeggieIntakeGrams = 100 // priority 3
		in.Metrics.FastingHours = 10       // priority 2 (autophagy < 70 required)
		in.Scores.Autophagy = 40

		steps := GenerateCoachingSteps(in)

		assert.Equal(t, "sleep-critical", steps[0].ID)
		for i := 1; i < len(steps); i++ {
			assert.GreaterOrEqual(t, steps[i].Priority, steps[i-1].Priority)
		}
	})

	t.Run("ties keep catalogue order", func(t *testing.T) {
		in := balancedInput()
		in.Metrics.SleepDurationHours = 5  // priority 1, first in catalogue
		in.Metrics.WaterIntakeLiters = 0.5 // priority 1, second in catalogue

		steps := GenerateCoachingSteps(in)

		assert.Equal(t, "sleep-critical", steps[0].ID)
		assert.Equal(t, "hydration-critical", steps[1].ID)
	})

	t.Run("never more than five steps", func(t *testing.T) {
		in := CoachingInput{
			Metrics: models.DailyMetrics{
				FastingHours:       2,
				SleepDurationHours: 3,
				SleepQuality:       2,
				Systolic:           150,
				Diastolic:          95,
				Pulse:              95,
				WaterIntakeLiters:  0.2,
				VeggieIntakeGrams:  50,
				ProteinIntakeGrams: 10,
				ProteinTargetGrams: 150,
				BodyFatPercent:     35,
				MuscleMassKg:       20,
			},
			Scores: ScorePair{Autophagy: 10, Longevity: 10},
		}

		steps := GenerateCoachingSteps(in)

		assert.Len(t, steps, 5)
		// The lowest-urgency fired rules must have been truncated away.
		assert.NotContains(t, stepIDs(steps), "sleep-quality")
	})

	t.Run("each rule id appears at most once", func(t *testing.T) {
		in := balancedInput()
		in.Metrics.SleepDurationHours = 4
		in.Metrics.WaterIntakeLiters = 0.5

		seen := map[string]bool{}
		for _, s := range GenerateCoachingSteps(in) {
			assert.False(t, seen[s.ID], "duplicate step id %s", s.ID)
			seen[s.ID] = true
		}
	})

	t.Run("praise steps fire on high scores", func(t *testing.T) {
		in := balancedInput()
		in.Scores = ScorePair{Autophagy: 85, Longevity: 88}

		ids := stepIDs(GenerateCoachingSteps(in))
		assert.Contains(t, ids, "autophagy-excellent")
		assert.Contains(t, ids, "longevity-excellent")
	})

	t.Run("fasting rule needs both short fast and low score", func(t *testing.T) {
		in := balancedInput()
		in.Metrics.FastingHours = 10
		in.Scores.Autophagy = 75 // high score suppresses the rule

		assert.NotContains(t, stepIDs(GenerateCoachingSteps(in)), "fasting-optimize")
	})
}

func stepIDs(steps []models.CoachingStep) []string {
	ids := make([]string, 0, len(steps))
	for _, s := range steps {
		ids = append(ids, s.ID)
	}
	return ids
}
