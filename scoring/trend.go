package scoring

import (
	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
)

// trendDeadband is the fixed band around the rolling average inside which a
// score movement is treated as noise rather than a trend.
const trendDeadband = 5.0

// ClassifyTrend compares the current value against the mean of the supplied
// history (oldest to newest). Fewer than two history points always classify
// as flat; a direction is never inferred from 0-1 points.
func ClassifyTrend(current float64, history []float64) models.TrendDirection {
	if len(history) < 2 {
		return models.TrendFlat
	}

	sum := 0.0
	for _, v := range history {
		sum += v
	}
	avg := sum / float64(len(history))

	switch {
	case current > avg+trendDeadband:
		return models.TrendUp
	case current < avg-trendDeadband:
		return models.TrendDown
	default:
		return models.TrendFlat
	}
}
