package models

// Gender identifies the user's gender for score reference values
// (ideal body fat, protein target). It must always be supplied explicitly;
// scoring never assumes a default.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid reports whether g is one of the known gender values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// TrainingIntensity defines the effort level of a training session.
type TrainingIntensity string

const (
	IntensityLow    TrainingIntensity = "low"
	IntensityMedium TrainingIntensity = "medium"
	IntensityHigh   TrainingIntensity = "high"
)

// Weight returns the scoring multiplier for the intensity.
// Unknown values fall back to the low multiplier rather than panicking,
// since metric inputs are treated as already validated upstream.
func (i TrainingIntensity) Weight() int {
	switch i {
	case IntensityHigh:
		return 3
	case IntensityMedium:
		return 2
	default:
		return 1
	}
}

// TrainingSession is a single logged workout.
type TrainingSession struct {
	DurationMinutes int               `json:"durationMinutes"`
	Intensity       TrainingIntensity `json:"intensity"`
}

// DailyMetrics is the normalized snapshot of one day's raw health inputs.
// It is assembled fresh from the client's current state whenever a score is
// requested and is never persisted as-is; the scoring functions consume it
// read-only.
type DailyMetrics struct {
	FastingHours       float64           `json:"fastingHours"`
	TrainingSessions   []TrainingSession `json:"trainingSessions"`
	SleepDurationHours float64           `json:"sleepDurationHours"`
	SleepQuality       float64           `json:"sleepQuality"` // 0-10
	Systolic           int               `json:"systolic"`     // mmHg
	Diastolic          int               `json:"diastolic"`    // mmHg
	Pulse              int               `json:"pulse"`        // bpm
	ProteinIntakeGrams float64           `json:"proteinIntakeGrams"`
	ProteinTargetGrams float64           `json:"proteinTargetGrams"`
	VeggieIntakeGrams  float64           `json:"veggieIntakeGrams"`
	WaterIntakeLiters  float64           `json:"waterIntakeLiters"`
	BodyFatPercent     float64           `json:"bodyFatPercent"`
	MuscleMassKg       float64           `json:"muscleMassKg"`
	Gender             Gender            `json:"gender"`
}

// TrendDirection classifies how a score series is moving.
type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendFlat TrendDirection = "flat"
)

// ColorIndicator is the traffic-light classification used for the stress card.
type ColorIndicator string

const (
	IndicatorGreen  ColorIndicator = "green"
	IndicatorYellow ColorIndicator = "yellow"
	IndicatorRed    ColorIndicator = "red"
)
