package curve

import "math"

// maxTicks bounds the number of values Ticks returns.
const maxTicks = 100

// Ticks returns plane values for grid lines covering [min, max], spaced by
// 1, 2, or 5 times a power of ten so that there are about five intervals.
// The values start at or below min and end past max, rounded to ten decimal
// places when the spacing allows. The result is nil for an empty or
// non-finite range, or one too narrow to divide in float64.
func Ticks(min, max float64) []float64 {
	if min > max {
		min, max = max, min
	}
	if !(max > min) || math.IsInf(max-min, 0) {
		return nil
	}
	want := (max - min) / 5
	p := math.Pow(10, math.Floor(math.Log10(want)))
	step := p
	for _, s := range [...]float64{2 * p, 5 * p} {
		if math.Abs(want-s) < math.Abs(want-step) {
			step = s
		}
	}
	if !(step > 0) || math.IsInf(step, 0) {
		return nil
	}
	first := math.Floor(min / step)
	fn := math.Floor(max/step) + 2 - first
	// Beyond 2^52 steps from zero, consecutive values are no longer distinct.
	if !(fn > 0) || fn > maxTicks || math.Abs(first) > 1<<52 {
		return nil
	}
	n := int(fn)
	r := make([]float64, n)
	for i := range r {
		v := (first + float64(i)) * step
		if step >= 1e-9 && math.Abs(v) < 1e290 {
			v = math.Round(v*1e10) / 1e10
		}
		r[i] = v
	}
	return r
}
