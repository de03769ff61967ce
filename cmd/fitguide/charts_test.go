package fitguide

import (
	"strings"
	"testing"
)

func TestHorizontalBarScalesAndClamps(t *testing.T) {
	if got := horizontalBar(50, 100, 20); got != strings.Repeat("#", 10) {
		t.Fatalf("half bar: %q", got)
	}
	if got := horizontalBar(500, 100, 20); got != strings.Repeat("#", 20) {
		t.Fatalf("overflow must clamp to width: %q", got)
	}
	if got := horizontalBar(1, 10000, 20); got != "#" {
		t.Fatalf("tiny nonzero value keeps one bar: %q", got)
	}
	if got := horizontalBar(0, 100, 20); got != "" {
		t.Fatalf("zero value renders empty: %q", got)
	}
}

func TestProgressLine(t *testing.T) {
	got := progressLine(250, 1000, 8)
	if got != "##------" {
		t.Fatalf("quarter progress: %q", got)
	}
	if got := progressLine(2000, 1000, 8); got != "########" {
		t.Fatalf("overshoot fills the meter: %q", got)
	}
	if got := progressLine(100, 0, 8); got != "--------" {
		t.Fatalf("zero goal renders empty meter: %q", got)
	}
}

func TestSparkline(t *testing.T) {
	got := sparkline([]float64{1, 1, 1})
	if got != "..." {
		t.Fatalf("flat series: %q", got)
	}
	got = sparkline([]float64{0, 100})
	if got != ".@" {
		t.Fatalf("extremes map to first and last glyphs: %q", got)
	}
	if got := sparkline(nil); got != "" {
		t.Fatalf("empty series: %q", got)
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := formatMinutes(450); got != "7h 30m" {
		t.Fatalf("format 450: %q", got)
	}
	if got := formatMinutes(5); got != "0h 05m" {
		t.Fatalf("format 5: %q", got)
	}
}
