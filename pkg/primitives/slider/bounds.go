package slider

import (
	"math"
	"strconv"
	"strings"
)

// pageMultiplier is how many steps PageUp and PageDown move.
const pageMultiplier = 10

// Bounds describes the value space of a slider.
type Bounds struct {
	Min, Max float64
	Step     float64
	Dir      Direction
	Inverted bool
}

func (b Bounds) normalize() Bounds {
	if b.Min == 0 && b.Max == 0 {
		b.Max = 100
	}
	if b.Max < b.Min {
		b.Min, b.Max = b.Max, b.Min
	}
	if b.Step <= 0 {
		b.Step = 1
	}
	if b.Dir != RTL {
		b.Dir = LTR
	}
	return b
}

// Clamp limits v to [Min, Max].
func (b Bounds) Clamp(v float64) float64 {
	return math.Min(b.Max, math.Max(b.Min, v))
}

// Snap rounds v to the nearest step from Min and clamps it.
func (b Bounds) Snap(v float64) float64 {
	steps := math.Round((v - b.Min) / b.Step)
	snapped := b.Min + steps*b.Step
	return b.Clamp(roundTo(snapped, decimals(b.Step)))
}

// Percent is v's position along the track, 0 to 100.
func (b Bounds) Percent(v float64) float64 {
	if b.Max == b.Min {
		return 0
	}
	return roundTo((b.Clamp(v)-b.Min)/(b.Max-b.Min)*100, 4)
}

// Key returns the value after pressing key, and whether the key is
// handled. Horizontal arrows follow the reading direction; Inverted flips
// every direction.
func (b Bounds) Key(v float64, key string) (float64, bool) {
	var delta float64
	switch key {
	case "ArrowUp":
		delta = b.Step
	case "ArrowDown":
		delta = -b.Step
	case "ArrowRight":
		delta = b.Step
		if b.Dir == RTL {
			delta = -delta
		}
	case "ArrowLeft":
		delta = -b.Step
		if b.Dir == RTL {
			delta = -delta
		}
	case "PageUp":
		delta = b.Step * pageMultiplier
	case "PageDown":
		delta = -b.Step * pageMultiplier
	case "Home":
		return b.Min, true
	case "End":
		return b.Max, true
	default:
		return v, false
	}
	if b.Inverted {
		delta = -delta
	}
	return b.Snap(v + delta), true
}

// Action applies a native accessibility action ("increment" or
// "decrement").
func (b Bounds) Action(v float64, action string) (float64, bool) {
	switch action {
	case "increment":
		return b.Snap(v + b.Step), true
	case "decrement":
		return b.Snap(v - b.Step), true
	}
	return v, false
}

// edges returns the CSS properties the range starts and ends at.
func (b Bounds) edges() (start, end string) {
	start, end = "left", "right"
	if (b.Dir == RTL) != b.Inverted {
		start, end = end, start
	}
	return start, end
}

func decimals(step float64) int {
	s := strconv.FormatFloat(step, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
