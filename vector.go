package spline

// Vector describes the vector type a [Path] is built from. Paths are generic
// over it so that they can operate directly on a host application's own vector
// type. [Vec3] is the implementation provided by this package.
//
// All methods must treat their receiver and arguments as values and return new
// vectors; none of them may modify the receiver.
type Vector[V any] interface {
	// Add returns the sum of the receiver and o.
	Add(o V) V
	// Sub returns the receiver minus o.
	Sub(o V) V
	// Mul scales the receiver by f.
	Mul(f float64) V
	// Hypot returns the euclidean length of the receiver.
	Hypot() float64
	// Normalize returns a vector of length 1 pointing in the receiver's
	// direction.
	Normalize() V
	// Clone returns an independent copy of the receiver.
	Clone() V
	// UnitX returns the unit vector along the first coordinate axis,
	// regardless of the receiver's value. It is only used to lay out the
	// default path installed by [Path.Reset].
	UnitX() V
}
