package spline

import (
	"iter"
	"math"
)

// Walk returns an iterator over points spaced step length units apart along
// the path, paired with their distance from the start. The first point is at
// distance 0. The end of the path is always yielded last, even if the
// remainder is shorter than step.
//
// A non-positive or non-finite step yields only the two end points.
func (p *Path[V]) Walk(step float64) iter.Seq2[float64, V] {
	total := p.Length()
	return func(yield func(float64, V) bool) {
		if !yield(0, p.ConstantSpeedPoint(0, total)) {
			return
		}
		if step > 0 && !math.IsInf(step, 0) && !math.IsNaN(step) {
			// d is i*step, not a running sum, so rounding errors don't
			// accumulate.
			for i := 1; ; i++ {
				d := float64(i) * step
				if d >= total {
					break
				}
				if !yield(d, p.ConstantSpeedPoint(d, total)) {
					return
				}
			}
		}
		if total > 0 {
			yield(total, p.ConstantSpeedPoint(total, total))
		}
	}
}

// SplitN returns n+1 points dividing the path into n pieces of identical arc
// length. n less than 1 is treated as 1.
func (p *Path[V]) SplitN(n int) []V {
	n = max(n, 1)
	total := p.Length()
	out := make([]V, n+1)
	for i := range n {
		out[i] = p.ConstantSpeedPoint(total*float64(i)/float64(n), total)
	}
	// due to rounding, total*n/n might fall short of total
	out[n] = p.ConstantSpeedPoint(total, total)
	return out
}
