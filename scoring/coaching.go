package scoring

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
)

// maxCoachingSteps caps the daily coaching feed.
const maxCoachingSteps = 5

// ScorePair carries both composite totals into the rule engines.
type ScorePair struct {
	Autophagy int
	Longevity int
}

// CoachingInput is the snapshot the coaching rule catalogue evaluates.
type CoachingInput struct {
	Metrics models.DailyMetrics
	Scores  ScorePair
}

// coachingRule is one entry of the ordered rule catalogue. Matches and build
// are split so each rule can be tested in isolation and so the catalogue
// order stays explicit instead of implied by code layout.
type coachingRule struct {
	matches func(in CoachingInput) bool
	build   func(in CoachingInput) models.CoachingStep
}

// coachingCatalogue is evaluated top to bottom; each rule fires
// independently and contributes at most one step per invocation.
var coachingCatalogue = []coachingRule{
	{
		matches: func(in CoachingInput) bool { return in.Metrics.SleepDurationHours < 6 },
		build: func(in CoachingInput) models.CoachingStep {
			return models.CoachingStep{
				ID:          "sleep-critical",
				Priority:    1,
				Category:    models.CategorySleep,
				Title:       "Critical: Sleep Deficit",
				Description: fmt.Sprintf("You slept only %s hours. This significantly impacts recovery and autophagy.", fmtNum(in.Metrics.SleepDurationHours)),
				Actionable:  "Aim for 7-9 hours tonight. Consider an earlier bedtime and reduce screen time before sleep.",
				Icon:        "🚨",
			}
		},
	},
	{
		matches: func(in CoachingInput) bool { return in.Metrics.WaterIntakeLiters < 1.0 },
		build: func(in CoachingInput) models.CoachingStep {
			return models.CoachingStep{
				ID:          "hydration-critical",
				Priority:    1,
				Category:    models.CategoryNutrition,
				Title:       "Critical: Severe Dehydration",
				Description: fmt.Sprintf("You've consumed only %.1fL of water today.", in.Metrics.WaterIntakeLiters),
				Actionable:  "Drink at least 2L of water throughout the day. Start with a large glass now.",
				Icon:        "💧",
			}
		},
	},
	{
		matches: func(in CoachingInput) bool {
			return in.Metrics.FastingHours < 16 && in.Scores.Autophagy < 70
		},
		build: func(in CoachingInput) models.CoachingStep {
			return models.CoachingStep{
				ID:          "fasting-optimize",
				Priority:    2,
				Category:    models.CategoryFasting,
				Title:       "Extend Your Fasting Window",
				Description: fmt.Sprintf("Current fasting: %sh. Autophagy activation peaks at 16-20 hours.", fmtNum(in.Metrics.FastingHours)),
				Actionable:  "Try to extend your fast to at least 16 hours. Consider skipping breakfast or having an early dinner.",
				Icon:        "⏱️",
			}
		},
	},
	{
		matches: func(in CoachingInput) bool { return len(in.Metrics.TrainingSessions) == 0 },
		build: func(in CoachingInput) models.CoachingStep {
			return models.CoachingStep{
				ID:          "training-needed",
				Priority:    2,
				Category:    models.CategoryTraining,
				Title:       "Add Movement Today",
				Description: "No training sessions logged yet. Exercise boosts autophagy and longevity.",
				Actionable:  "Schedule at least 30 minutes of moderate exercise. Even a brisk walk counts!",
				Icon:        "🏃",
			}
		},
	},
	{
		matches: func(in CoachingInput) bool {
			return in.Metrics.ProteinIntakeGrams < in.Metrics.ProteinTargetGrams*0.7
		},
		build: func(in CoachingInput) models.CoachingStep {
			return models.CoachingStep{
				ID:          "protein-boost",
				Priority:    3,
				Category:    models.CategoryNutrition,
				Title:       "Increase Protein Intake",
				Description: fmt.Sprintf("Current: %sg / Target: %sg. Protein supports muscle maintenance.", fmtNum(in.Metrics.ProteinIntakeGrams), fmtNum(in.Metrics.ProteinTargetGrams)),
				Actionable:  "Add a protein-rich meal or snack. Consider lean meat, fish, eggs, or plant-based alternatives.",
				Icon:        "🥩",
			}
		},
	},
	{
		matches: func(in CoachingInput) bool { return in.Metrics.VeggieIntakeGrams < 300 },
		build: func(in CoachingInput) models.CoachingStep {
			return models.CoachingStep{
				ID:          "veggies-boost",
				Priority:    3,
				Category:    models.CategoryNutrition,
				Title:       "Boost Vegetable Intake",
				Description: fmt.Sprintf("Current: %sg / Target: 400g. Vegetables provide essential micronutrients.", fmtNum(in.Metrics.VeggieIntakeGrams)),
				Actionable:  "Add a large salad or vegetable side dish to your next meal.",
				Icon:        "🥗",
			}
		},
	},
	{
		matches: func(in CoachingInput) bool {
			return in.Metrics.Systolic > 130 || in.Metrics.Diastolic > 85 || in.Metrics.Pulse > 80
		},
		build: func(in CoachingInput) models.CoachingStep {
			return models.CoachingStep{
				ID:          "stress-management",
				Priority:    4,
				Category:    models.CategoryStress,
				Title:       "Manage Stress Levels",
				Description: "Your cardiovascular metrics indicate elevated stress.",
				Actionable:  "Practice deep breathing, meditation, or a short walk. Aim for 10 minutes of relaxation.",
				Icon:        "🧘",
			}
		},
	},
	{
		matches: func(in CoachingInput) bool {
			return in.Metrics.BodyFatPercent > 25 || in.Metrics.MuscleMassKg < 25
		},
		build: func(in CoachingInput) models.CoachingStep {
			return models.CoachingStep{
				ID:          "body-composition",
				Priority:    5,
				Category:    models.CategoryBody,
				Title:       "Optimize Body Composition",
				Description: "Your body composition metrics can be improved for better longevity.",
				Actionable:  "Focus on resistance training 2-3x per week and maintain a slight caloric deficit if needed.",
				Icon:        "💪",
			}
		},
	},
	{
		matches: func(in CoachingInput) bool {
			return in.Metrics.SleepDurationHours >= 6 && in.Metrics.SleepQuality < 6
		},
		build: func(in CoachingInput) models.CoachingStep {
			return models.CoachingStep{
				ID:          "sleep-quality",
				Priority:    6,
				Category:    models.CategorySleep,
				Title:       "Improve Sleep Quality",
				Description: fmt.Sprintf("Sleep duration is adequate (%sh) but quality is low (%s/10).", fmtNum(in.Metrics.SleepDurationHours), fmtNum(in.Metrics.SleepQuality)),
				Actionable:  "Create a dark, cool sleeping environment. Avoid caffeine after 2 PM and screens before bed.",
				Icon:        "😴",
			}
		},
	},
	{
		matches: func(in CoachingInput) bool { return in.Scores.Autophagy >= 80 },
		build: func(in CoachingInput) models.CoachingStep {
			return models.CoachingStep{
				ID:          "autophagy-excellent",
				Priority:    7,
				Category:    models.CategoryGeneral,
				Title:       "Excellent Autophagy Score!",
				Description: fmt.Sprintf("Your autophagy score of %d is outstanding. Keep up the great work!", in.Scores.Autophagy),
				Actionable:  "Maintain your current routine. You're optimizing cellular renewal effectively.",
				Icon:        "🌟",
			}
		},
	},
	{
		matches: func(in CoachingInput) bool { return in.Scores.Longevity >= 80 },
		build: func(in CoachingInput) models.CoachingStep {
			return models.CoachingStep{
				ID:          "longevity-excellent",
				Priority:    7,
				Category:    models.CategoryGeneral,
				Title:       "Outstanding Longevity Score!",
				Description: fmt.Sprintf("Your longevity score of %d shows excellent health optimization.", in.Scores.Longevity),
				Actionable:  "You're on the right track for long-term health. Stay consistent!",
				Icon:        "🎯",
			}
		},
	},
}

// fallbackStep is the sole entry when no catalogue rule fires.
var fallbackStep = models.CoachingStep{
	ID:          "general-wellness",
	Priority:    8,
	Category:    models.CategoryGeneral,
	Title:       "Maintain Your Routine",
	Description: "Your health metrics are balanced. Focus on consistency.",
	Actionable:  "Continue your current routine and track your progress daily for optimal results.",
	Icon:        "✨",
}

// GenerateCoachingSteps evaluates the full coaching catalogue against the
// snapshot and returns at most 5 steps, sorted ascending by priority with
// ties keeping catalogue order. If no rule fires, the single priority-8
// fallback step is returned.
func GenerateCoachingSteps(in CoachingInput) []models.CoachingStep {
	steps := make([]models.CoachingStep, 0, len(coachingCatalogue))
	for _, rule := range coachingCatalogue {
		if rule.matches(in) {
			steps = append(steps, rule.build(in))
		}
	}

	if len(steps) == 0 {
		return []models.CoachingStep{fallbackStep}
	}

	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Priority < steps[j].Priority
	})

	if len(steps) > maxCoachingSteps {
		steps = steps[:maxCoachingSteps]
	}
	return steps
}

// fmtNum renders a metric value the way the dashboard does: no trailing
// zeros, no forced decimals (7 -> "7", 7.5 -> "7.5").
func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
