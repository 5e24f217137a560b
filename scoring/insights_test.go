package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
)

func TestGenerateInsights(t *testing.T) {
	t.Run("long fast earns praise and suppresses the warning", func(t *testing.T) {
		m := nominalMetrics()
		m.FastingHours = 19

		insights := GenerateInsights(InsightInput{Metrics: m})

		ids := insightIDs(insights)
		assert.Contains(t, ids, "fasting-optimal")
		assert.NotContains(t, ids, "fasting-low")
	})

	t.Run("short fast warns", func(t *testing.T) {
		m := nominalMetrics()
		m.FastingHours = 10

		ids := insightIDs(GenerateInsights(InsightInput{Metrics: m}))
		assert.Contains(t, ids, "fasting-low")
		assert.NotContains(t, ids, "fasting-optimal")
	})

	t.Run("mid-range fast produces neither fasting message", func(t *testing.T) {
		m := nominalMetrics()
		m.FastingHours = 14

		ids := insightIDs(GenerateInsights(InsightInput{Metrics: m}))
		assert.NotContains(t, ids, "fasting-optimal")
		assert.NotContains(t, ids, "fasting-low")
	})

	t.Run("independent rules co-occur up to the cap", func(t *testing.T) {
		m := nominalMetrics()
		m.FastingHours = 10      // warning
		m.SleepDurationHours = 6 // warning
		m.WaterIntakeLiters = 1  // tip
		m.ProteinIntakeGrams = 50 // tip, but beyond the cap

		insights := GenerateInsights(InsightInput{Metrics: m})

		assert.Len(t, insights, 3)
		assert.Equal(t, "fasting-low", insights[0].ID)
		assert.Equal(t, "sleep-deficit", insights[1].ID)
		assert.Equal(t, "hydration-low", insights[2].ID)
	})

	t.Run("protein tip reports percent of target", func(t *testing.T) {
		m := nominalMetrics()
		m.FastingHours = 14
		m.ProteinIntakeGrams = 90
		m.ProteinTargetGrams = 150

		insights := GenerateInsights(InsightInput{Metrics: m})

		assert.Len(t, insights, 1)
		assert.Equal(t, "protein-low", insights[0].ID)
		assert.Equal(t, models.InsightTip, insights[0].Type)
		assert.Contains(t, insights[0].Message, "60%")
	})

	t.Run("elevated vitals warn", func(t *testing.T) {
		m := nominalMetrics()
		m.Systolic = 135

		ids := insightIDs(GenerateInsights(InsightInput{Metrics: m}))
		assert.Contains(t, ids, "stress-elevated")

		m.Systolic = 115
		m.Pulse = 90
		ids = insightIDs(GenerateInsights(InsightInput{Metrics: m}))
		assert.Contains(t, ids, "stress-elevated")
	})

	t.Run("autophagy trend praise and decline", func(t *testing.T) {
		m := nominalMetrics()

		up := GenerateInsights(InsightInput{
			Metrics: m,
			Trends:  &TrendInput{AutophagyTrend: []float64{60, 65, 70}},
		})
		assert.Contains(t, insightIDs(up), "autophagy-improving")

		down := GenerateInsights(InsightInput{
			Metrics: m,
			Trends:  &TrendInput{AutophagyTrend: []float64{70, 65, 60}},
		})
		assert.Contains(t, insightIDs(down), "autophagy-declining")
	})

	t.Run("longevity trend only praises improvement", func(t *testing.T) {
		m := nominalMetrics()
		m.FastingHours = 14 // keep the current-state rules quiet

		up := GenerateInsights(InsightInput{
			Metrics: m,
			Trends:  &TrendInput{LongevityTrend: []float64{60, 68, 70}},
		})
		assert.Contains(t, insightIDs(up), "longevity-improving")

		down := GenerateInsights(InsightInput{
			Metrics: m,
			Trends:  &TrendInput{LongevityTrend: []float64{70, 65, 55}},
		})
		assert.NotContains(t, insightIDs(down), "longevity-declining")
		assert.Empty(t, down)
	})

	t.Run("trend rules need at least three points", func(t *testing.T) {
		m := nominalMetrics()

		insights := GenerateInsights(InsightInput{
			Metrics: m,
			Trends:  &TrendInput{AutophagyTrend: []float64{40, 90}},
		})
		assert.NotContains(t, insightIDs(insights), "autophagy-improving")
	})

	t.Run("only the last three trend points count", func(t *testing.T) {
		m := nominalMetrics()

		// 80 -> 70 over the last three points, despite the early climb.
		insights := GenerateInsights(InsightInput{
			Metrics: m,
			Trends:  &TrendInput{AutophagyTrend: []float64{10, 20, 80, 75, 70}},
		})
		assert.Contains(t, insightIDs(insights), "autophagy-declining")
	})

	t.Run("never more than three insights", func(t *testing.T) {
		m := models.DailyMetrics{
			FastingHours:       5,
			SleepDurationHours: 4,
			WaterIntakeLiters:  0.5,
			ProteinIntakeGrams: 10,
			ProteinTargetGrams: 150,
			Systolic:           140,
			Pulse:              95,
		}
		insights := GenerateInsights(InsightInput{
			Metrics: m,
			Trends: &TrendInput{
				AutophagyTrend: []float64{80, 70, 60},
				LongevityTrend: []float64{50, 60, 70},
			},
		})
		assert.Len(t, insights, 3)
	})
}

func insightIDs(insights []models.CoachingInsight) []string {
	ids := make([]string, 0, len(insights))
	for _, i := range insights {
		ids = append(ids, i.ID)
	}
	return ids
}
