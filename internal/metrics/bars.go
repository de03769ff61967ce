package metrics

// DayStatus classifies one day's bar in the weekly progress chart.
type DayStatus string

const (
	StatusNeutral  DayStatus = "neutral"
	StatusOnTarget DayStatus = "on-target"
	StatusUnder    DayStatus = "under"
	StatusOver     DayStatus = "over"
)

// targetBand is the ± fraction of target that still counts as on-target.
const targetBand = 0.15

// DayBarStatus implements the weekly bar coloring policy: no intake or no
// usable target is neutral, within ±15% of target is on-target, otherwise
// under or over.
func DayBarStatus(consumed int, targetCalories float64) DayStatus {
	if consumed == 0 || targetCalories <= 0 {
		return StatusNeutral
	}
	lower := targetCalories * (1 - targetBand)
	upper := targetCalories * (1 + targetBand)
	c := float64(consumed)
	switch {
	case c >= lower && c <= upper:
		return StatusOnTarget
	case c < lower:
		return StatusUnder
	default:
		return StatusOver
	}
}
