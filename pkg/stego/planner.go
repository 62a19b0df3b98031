// planner.go - Capacity planning for carrier images.
package stego

import "math"

// Overhead is the estimated byte cost of the engine's framing and integrity
// metadata, added to the raw payload size before every capacity comparison.
// The engine's true framing cost is below this; the constant is deliberately
// conservative and is a fixed contract with the engine's frame format.
const Overhead = 1024

// Verdict classifies a capacity check.
type Verdict int

const (
	// Sufficient means the payload fits at the current dimensions.
	Sufficient Verdict = iota
	// RequiresResize means the payload fits only after growing the
	// carrier to the target dimensions.
	RequiresResize
	// Infeasible means the payload cannot fit and resizing is not
	// permitted (or the image has zero area).
	Infeasible
)

// CapacityDecision is the planner's answer for one carrier and payload.
// TargetWidth and TargetHeight are set only when Verdict is RequiresResize.
type CapacityDecision struct {
	Verdict      Verdict
	TargetWidth  int
	TargetHeight int
	Capacity     int
	Required     int
}

// Capacity returns how many payload bytes a width x height carrier holds:
// one bit in each of the three color channels per pixel, alpha untouched.
// The density is a fixed contract with the engine's embedding scheme.
func Capacity(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return width * height * 3 / 8
}

// PlanCapacity decides whether a payload of payloadLen bytes fits a
// width x height carrier. When it does not and allowResize is true, the
// target dimensions scale both axes by sqrt(requiredPixels/currentPixels)
// plus a 2% margin, then round up, so the grown carrier always satisfies
// the requirement. Zero-area images are always Infeasible.
func PlanCapacity(width, height, payloadLen int, allowResize bool) CapacityDecision {
	required := payloadLen + Overhead
	capacity := Capacity(width, height)

	d := CapacityDecision{Capacity: capacity, Required: required}
	if required <= capacity {
		d.Verdict = Sufficient
		return d
	}
	if !allowResize || width <= 0 || height <= 0 {
		d.Verdict = Infeasible
		return d
	}

	requiredPixels := float64(required) * 8 / 3
	scale := math.Sqrt(requiredPixels/float64(width*height)) * 1.02
	d.Verdict = RequiresResize
	d.TargetWidth = int(math.Ceil(float64(width) * scale))
	d.TargetHeight = int(math.Ceil(float64(height) * scale))
	return d
}
