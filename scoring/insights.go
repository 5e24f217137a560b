package scoring

import (
	"fmt"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
)

// maxInsights caps the insight feed; the first matches by evaluation order
// win, there is no severity re-sort.
const maxInsights = 3

// TrendInput carries the recent composite-score history (oldest to newest)
// for the trend-based insight rules.
type TrendInput struct {
	AutophagyTrend []float64
	LongevityTrend []float64
}

// InsightInput is the snapshot the insight rule set evaluates. Trends may be
// nil when no history is available.
type InsightInput struct {
	Metrics models.DailyMetrics
	Trends  *TrendInput
}

// GenerateInsights evaluates the insight rules in fixed order and returns at
// most 3 insights. The two fasting rules are mutually exclusive; every other
// rule is independent and may co-occur.
func GenerateInsights(in InsightInput) []models.CoachingInsight {
	insights := make([]models.CoachingInsight, 0, 8)
	m := in.Metrics

	if m.FastingHours >= 18 {
		insights = append(insights, models.CoachingInsight{
			ID:      "fasting-optimal",
			Type:    models.InsightPraise,
			Message: fmt.Sprintf("Excellent! %sh fasting is optimal for deep autophagy activation.", fmtNum(m.FastingHours)),
			Icon:    "🔥",
		})
	} else if m.FastingHours < 12 {
		insights = append(insights, models.CoachingInsight{
			ID:      "fasting-low",
			Type:    models.InsightWarning,
			Message: fmt.Sprintf("Fasting window is short (%sh). Aim for 16+ hours for autophagy benefits.", fmtNum(m.FastingHours)),
			Icon:    "⚠️",
		})
	}

	if m.SleepDurationHours < 7 {
		insights = append(insights, models.CoachingInsight{
			ID:      "sleep-deficit",
			Type:    models.InsightWarning,
			Message: fmt.Sprintf("Sleep deficit detected (%sh). Recovery and cellular repair are compromised.", fmtNum(m.SleepDurationHours)),
			Icon:    "😴",
		})
	}

	if m.WaterIntakeLiters < 1.5 {
		insights = append(insights, models.CoachingInsight{
			ID:      "hydration-low",
			Type:    models.InsightTip,
			Message: fmt.Sprintf("Hydration is below optimal (%.1fL). Drink more water for better cellular function.", m.WaterIntakeLiters),
			Icon:    "💧",
		})
	}

	if m.ProteinIntakeGrams < m.ProteinTargetGrams*0.8 {
		pct := round(m.ProteinIntakeGrams / m.ProteinTargetGrams * 100)
		insights = append(insights, models.CoachingInsight{
			ID:      "protein-low",
			Type:    models.InsightTip,
			Message: fmt.Sprintf("Protein intake is %d%% of target. Increase for muscle maintenance.", pct),
			Icon:    "🥩",
		})
	}

	if m.Systolic > 130 || m.Pulse > 85 {
		insights = append(insights, models.CoachingInsight{
			ID:      "stress-elevated",
			Type:    models.InsightWarning,
			Message: "Cardiovascular metrics suggest elevated stress. Consider relaxation techniques.",
			Icon:    "🧘",
		})
	}

	if in.Trends != nil {
		insights = append(insights, trendInsights(in.Trends)...)
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

// trendInsights compares the last three points of each score series with a
// +-5 band. Autophagy has both an improving and a declining message; for
// longevity only the improvement is called out.
func trendInsights(trends *TrendInput) []models.CoachingInsight {
	var insights []models.CoachingInsight

	if len(trends.AutophagyTrend) >= 3 {
		recent := trends.AutophagyTrend[len(trends.AutophagyTrend)-3:]
		if recent[2] > recent[0]+5 {
			insights = append(insights, models.CoachingInsight{
				ID:      "autophagy-improving",
				Type:    models.InsightPraise,
				Message: "Your autophagy score is trending upward! Keep up the excellent work.",
				Icon:    "📈",
			})
		} else if recent[2] < recent[0]-5 {
			insights = append(insights, models.CoachingInsight{
				ID:      "autophagy-declining",
				Type:    models.InsightTrend,
				Message: "Autophagy score is declining. Review your fasting and training routine.",
				Icon:    "📉",
			})
		}
	}

	if len(trends.LongevityTrend) >= 3 {
		recent := trends.LongevityTrend[len(trends.LongevityTrend)-3:]
		if recent[2] > recent[0]+5 {
			insights = append(insights, models.CoachingInsight{
				ID:      "longevity-improving",
				Type:    models.InsightPraise,
				Message: "Longevity score is improving! Your health optimization is working.",
				Icon:    "🎯",
			})
		}
	}

	return insights
}
