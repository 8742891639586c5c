package form

import (
	"math"
	"math/cmplx"
	"sort"
)

// SecondOrderSections decomposes the filter into a cascade of ceil(n/2)
// biquads plus the original gain, where n is the pole count. Zeros and
// poles are partitioned into real entries and adjacent conjugate pairs,
// poles are ordered by proximity of their magnitude to the unit circle
// (near-resonant poles first, which improves the conditioning of the
// cascade), and each pole is then greedily matched to its closest
// remaining zero in four passes: complex/complex, real poles against
// remaining complex zeros, remaining complex poles against real zeros,
// real/real. Poles in excess of zeros stay unmatched and are grouped
// last. Sections are built from consecutive pole pairs in reverse order;
// an odd pole count leaves one real pole that becomes a first-order
// section with its unused coefficient slots zeroed.
func (f ZeroPoleGain) SecondOrderSections() (SecondOrderSections, error) {
	nz := len(f.zeros)
	n := len(f.poles)

	if nz > n {
		return SecondOrderSections{}, ErrTooManyZeros
	}

	complexz, realz, err := splitRealComplex(f.zeros, lexLess)
	if err != nil {
		return SecondOrderSections{}, err
	}

	complexp, realp, err := splitRealComplex(f.poles, unitCircleLess)
	if err != nil {
		return SecondOrderSections{}, err
	}

	// Four matching passes; each consumes matched entries.
	gz1, gp1, complexz, complexp := groupZP(complexz, complexp)
	gz2, gp2, _, realp := groupZP(complexz, realp)
	gz3, gp3, realz, complexp := groupZP(realz, complexp)
	gz4, gp4, _, realp := groupZP(realz, realp)

	groupedz := concat(gz1, gz2, gz3, gz4)
	groupedp := concat(gp1, gp2, gp3, gp4, complexp, realp)

	npairs := n / 2
	odd := n % 2
	sections := make([]Biquad, npairs+odd)

	for i := range npairs {
		lo := 2 * (npairs - 1 - i)

		var zs []complex128
		if lo < nz {
			zs = groupedz[lo:min(lo+2, nz)]
		}

		s, err := sectionFromRoots(f.domain, zs, groupedp[lo:lo+2])
		if err != nil {
			return SecondOrderSections{}, err
		}

		sections[odd+i] = s
	}

	if odd == 1 {
		// The leftover pole is real by construction; it may carry one
		// zero when every pole has one.
		var zs []complex128
		if nz == n {
			zs = groupedz[n-1:]
		}

		s, err := sectionFromRoots(f.domain, zs, groupedp[n-1:])
		if err != nil {
			return SecondOrderSections{}, err
		}

		sections[0] = s
	}

	return SecondOrderSections{domain: f.domain, sections: sections, gain: f.gain}, nil
}

// sectionFromRoots builds one unit-gain biquad from up to two poles and
// their matched zeros.
func sectionFromRoots(d Domain, zeros, poles []complex128) (Biquad, error) {
	zpk := ZeroPoleGain{domain: d, zeros: zeros, poles: poles, gain: 1}

	return zpk.Biquad()
}

// splitRealComplex partitions values into complex entries, emitted as
// adjacent conjugate pairs (representative with positive imaginary part
// first) sorted by less, and real entries sorted the same way. Signed
// zeros are normalized before counting multiplicities. A non-real value
// whose conjugate is missing or has a different multiplicity yields
// ErrConjugateMismatch.
func splitRealComplex(values []complex128, less func(a, b complex128) bool) (complexOut, realOut []complex128, err error) {
	counts := make(map[complex128]int, len(values))
	for _, v := range values {
		counts[complex(real(v)+0, imag(v)+0)]++
	}

	reps := make([]complex128, 0, len(counts))

	for v, c := range counts {
		switch {
		case imag(v) == 0:
			continue
		case imag(v) > 0:
			if counts[cmplx.Conj(v)] != c {
				return nil, nil, ErrConjugateMismatch
			}

			reps = append(reps, v)
		default:
			if counts[cmplx.Conj(v)] != c {
				return nil, nil, ErrConjugateMismatch
			}
		}
	}

	sort.SliceStable(reps, func(i, j int) bool { return less(reps[i], reps[j]) })

	for _, v := range reps {
		for range counts[v] {
			complexOut = append(complexOut, v, cmplx.Conj(v))
		}
	}

	reals := make([]complex128, 0, len(values))

	for v, c := range counts {
		if imag(v) == 0 {
			for range c {
				reals = append(reals, v)
			}
		}
	}

	sort.SliceStable(reals, func(i, j int) bool { return less(reals[i], reals[j]) })

	return complexOut, reals, nil
}

// groupZP walks poles in order and pairs each with the closest remaining
// zero by Euclidean distance in the complex plane; the first minimum wins
// on ties. A matched non-real zero consumes its adjacent conjugate in the
// same step. The pass stops when either side runs out. It returns the
// matched zeros in pairing order, the poles that received zeros, and the
// remaining zeros and poles.
func groupZP(zeros, poles []complex128) (gz, gp, restz, restp []complex128) {
	used := make([]bool, len(zeros))
	remaining := len(zeros)

	next := 0
	for ; next < len(poles) && remaining > 0; next++ {
		p := poles[next]
		best := -1
		bestDist := math.Inf(1)

		for j, z := range zeros {
			// Conjugate entries are consumed with their representative,
			// so only representatives and reals are candidates. The
			// distance is taken to the nearer of the candidate and its
			// mirror image, which keeps the metric symmetric for poles
			// in the lower half-plane.
			if used[j] || imag(z) < 0 {
				continue
			}

			d := cmplx.Abs(z - p)
			if m := cmplx.Abs(cmplx.Conj(z) - p); m < d {
				d = m
			}

			if d < bestDist {
				best = j
				bestDist = d
			}
		}

		used[best] = true
		gz = append(gz, zeros[best])
		remaining--

		if imag(zeros[best]) > 0 {
			used[best+1] = true
			gz = append(gz, zeros[best+1])
			remaining--
		}

		gp = append(gp, p)
	}

	for j, z := range zeros {
		if !used[j] {
			restz = append(restz, z)
		}
	}

	return gz, gp, restz, poles[next:]
}

func concat(chunks ...[]complex128) []complex128 {
	total := 0
	for _, c := range chunks {
		total += len(c)
	}

	out := make([]complex128, 0, total)
	for _, c := range chunks {
		out = append(out, c...)
	}

	return out
}

// lexLess orders complex values by real part, then imaginary part.
func lexLess(a, b complex128) bool {
	if real(a) != real(b) {
		return real(a) < real(b)
	}

	return imag(a) < imag(b)
}

// unitCircleLess orders values by the distance of their magnitude from 1,
// closest first, with a lexicographic tiebreak for determinism.
func unitCircleLess(a, b complex128) bool {
	da := math.Abs(cmplx.Abs(a) - 1)
	db := math.Abs(cmplx.Abs(b) - 1)

	if da != db {
		return da < db
	}

	return lexLess(a, b)
}
