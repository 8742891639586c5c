// Package polyroot provides polynomial root finding and root expansion
// utilities shared by the filter representation packages.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (all zero, or an eigenvalue factorization failure).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// Roots finds all roots of a real polynomial given in descending power
// order: coeff[0]*x^n + coeff[1]*x^(n-1) + ... + coeff[n]. Degree 1 and 2
// use closed forms; higher degrees use the eigenvalues of the companion
// matrix. A constant polynomial has no roots.
func Roots(coeff []float64) ([]complex128, error) {
	lo := 0
	for lo < len(coeff) && coeff[lo] == 0 {
		lo++
	}

	coeff = coeff[lo:]
	if len(coeff) == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1
	switch n {
	case 0:
		return nil, nil
	case 1:
		return []complex128{complex(-coeff[1]/coeff[0], 0)}, nil
	case 2:
		r := quadraticRoots(coeff[0], coeff[1], coeff[2])
		return r[:], nil
	}

	// Companion matrix of the monic polynomial: ones on the subdiagonal,
	// negated normalized coefficients in the first row.
	lead := coeff[0]

	c := mat.NewDense(n, n, nil)
	for i := 1; i < n; i++ {
		c.Set(i, i-1, 1)
	}

	for j := range n {
		c.Set(0, j, -coeff[j+1]/lead)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(c, mat.EigenNone); !ok {
		return nil, ErrDegeneratePolynomial
	}

	return eig.Values(nil), nil
}

// FromRoots expands the monic polynomial with the given roots into
// descending coefficients: prod (x - r_i). An empty root set yields the
// constant polynomial 1.
func FromRoots(roots []complex128) []complex128 {
	coeff := make([]complex128, 1, len(roots)+1)
	coeff[0] = 1

	for _, r := range roots {
		coeff = append(coeff, 0)
		for i := len(coeff) - 1; i > 0; i-- {
			coeff[i] -= r * coeff[i-1]
		}
	}

	return coeff
}

// quadraticRoots solves a*x^2 + b*x + c = 0 over the complex numbers.
func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}

		return [2]complex128{complex(-c/b, 0), 0}
	}

	discriminant := complex(b*b-4*a*c, 0)
	sqrtDiscriminant := cmplx.Sqrt(discriminant)
	den := complex(2*a, 0)

	return [2]complex128{
		(-complex(b, 0) + sqrtDiscriminant) / den,
		(-complex(b, 0) - sqrtDiscriminant) / den,
	}
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}
