package models

// Sub-score category maxima. Well-formed weights already sum to 100 per score,
// but totals are clamped to [0,100] regardless as a safety cap.
const (
	MaxFastingScore  = 40
	MaxTrainingScore = 30
	MaxSleepScore    = 20
	MaxStressScore   = 10

	MaxBodyCompositionScore   = 50
	MaxNutritionScore         = 30
	MaxAutophagyCouplingScore = 20

	MaxTotalScore = 100
)

// AutophagyScore is the immutable breakdown produced by the autophagy scorer.
type AutophagyScore struct {
	FastingScore  int `json:"fastingScore"`
	TrainingScore int `json:"trainingScore"`
	SleepScore    int `json:"sleepScore"`
	StressScore   int `json:"stressScore"`
	TotalScore    int `json:"totalScore"`
}

// LongevityScore is the immutable breakdown produced by the longevity scorer.
type LongevityScore struct {
	BodyCompositionScore   int `json:"bodyCompositionScore"`
	NutritionScore         int `json:"nutritionScore"`
	AutophagyCouplingScore int `json:"autophagyCouplingScore"`
	TotalScore             int `json:"totalScore"`
}

// CoachingCategory tags a coaching step with the routine area it targets.
type CoachingCategory string

const (
	CategoryFasting   CoachingCategory = "fasting"
	CategoryTraining  CoachingCategory = "training"
	CategorySleep     CoachingCategory = "sleep"
	CategoryStress    CoachingCategory = "stress"
	CategoryNutrition CoachingCategory = "nutrition"
	CategoryBody      CoachingCategory = "body"
	CategoryGeneral   CoachingCategory = "general"
)

// CoachingStep is a single prioritized recommendation. The ID is stable per
// rule, so a given rule appears at most once per invocation; lower priority
// numbers are more urgent.
type CoachingStep struct {
	ID          string           `json:"id"`
	Priority    int              `json:"priority"`
	Category    CoachingCategory `json:"category"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Actionable  string           `json:"actionable"`
	Icon        string           `json:"icon"`
}

// InsightType classifies the tone of a coaching insight.
type InsightType string

const (
	InsightWarning InsightType = "warning"
	InsightTip     InsightType = "tip"
	InsightPraise  InsightType = "praise"
	InsightTrend   InsightType = "trend"
)

// CoachingInsight is a short contextual message shown alongside the scores.
type CoachingInsight struct {
	ID      string      `json:"id"`
	Type    InsightType `json:"type"`
	Message string      `json:"message"`
	Icon    string      `json:"icon"`
}

// FutureProjection is the dashboard's derived outlook for the current day.
type FutureProjection struct {
	BiologicalAge int `json:"biologicalAge"`
	BodyForm      int `json:"bodyForm"`    // percent
	EnergyFocus   int `json:"energyFocus"` // percent
}
