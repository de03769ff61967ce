package fitguide

import (
	"fmt"
	"math"
	"strings"
)

func horizontalBar(value, maxValue, width int) string {
	if width <= 0 || maxValue <= 0 || value <= 0 {
		return ""
	}
	bars := int(math.Round((float64(value) / float64(maxValue)) * float64(width)))
	if bars == 0 {
		bars = 1
	}
	if bars > width {
		bars = width
	}
	return strings.Repeat("#", bars)
}

// progressLine renders "####------ 62%" style meters for goals.
func progressLine(current, goal, width int) string {
	if goal <= 0 {
		return strings.Repeat("-", width)
	}
	ratio := float64(current) / float64(goal)
	if ratio > 1 {
		ratio = 1
	}
	filled := int(math.Round(ratio * float64(width)))
	if filled > width {
		filled = width
	}
	return strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
}

func sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	chars := []rune("._-~=*#@")
	minV := values[0]
	maxV := values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if maxV == minV {
		return strings.Repeat(string(chars[0]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		ratio := (v - minV) / (maxV - minV)
		idx := int(math.Round(ratio * float64(len(chars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		b.WriteRune(chars[idx])
	}
	return b.String()
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
