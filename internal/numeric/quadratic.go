package numeric

// Roots holds the two real solutions of a quadratic equation.
// X1 uses the positive branch of the discriminant root, X2 the negative one.
type Roots struct {
	X1 float64
	X2 float64
}

// Quadratic solves a*x^2 + b*x + c = 0. It returns false when the
// discriminant is negative and the equation has no real roots.
// a must be non-zero; that is left to the caller.
func Quadratic(a, b, c float64) (Roots, bool) {
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Roots{}, false
	}

	root := ComputeSqrt(discriminant)
	return Roots{
		X1: (-b + root) / (2 * a),
		X2: (-b - root) / (2 * a),
	}, true
}

// QuadraticInto is Quadratic with output slots: on success it stores the
// roots through x1 and x2 and returns true. The slots are left untouched
// when there is no real solution.
func QuadraticInto(a, b, c float64, x1, x2 *float64) bool {
	roots, ok := Quadratic(a, b, c)
	if !ok {
		return false
	}
	*x1 = roots.X1
	*x2 = roots.X2
	return true
}
