package fxnum

import (
	"github.com/beatoz/swoupon-go/types/xerrors"
	"github.com/holiman/uint256"
)

const (
	// guardBits extra fractional bits are carried through series evaluation
	// and dropped only when the result is converted back to Q64.64.
	guardBits = 32
	wideBits  = fracBits + guardBits

	// With r in [0, ln2) the Taylor remainder after 24 terms is below 2^-96.
	expTerms = 24
	// With t in [0, 1/3) the atanh remainder after 32 terms is below 2^-96.
	lnTerms = 32
)

var (
	wideOne = uint256.Int{0, 1 << (wideBits - 64), 0, 0}

	// ln(2) in Q32.96
	ln2Wide = uint256.Int{0xd1cf79abc9e3b398, 0xb17217f7, 0, 0}

	// e^x is below one ulp under expMinArg and beyond MaxValue over expMaxArg.
	expMinArg = FromInt(-46)
	expMaxArg = FromInt(44)

	// Precompute denominators for exp Horner method: 1, 2, ..., expTerms
	expDenoms = func() []uint256.Int {
		d := make([]uint256.Int, expTerms+1)
		for n := 1; n <= expTerms; n++ {
			d[n].SetUint64(uint64(n))
		}
		return d
	}()

	// Precompute denominators for ln series: 1, 3, 5, ...
	lnDenoms = func() []uint256.Int {
		d := make([]uint256.Int, lnTerms)
		for k := 0; k < lnTerms; k++ {
			d[k].SetUint64(uint64(2*k + 1))
		}
		return d
	}()
)

// Exp returns e^x.
// x is reduced to x = n*ln2 + r with 0 <= r < ln2, e^r is evaluated by Horner's method
// in Q32.96 and the result is scaled by 2^n:
// exp(r) ≈ 1 + r/1*(1 + r/2*(1 + ... (1 + r/N))).
// Exp(0) is exactly ONE. Results too small to represent are ZERO.
func Exp(x FxNum) (FxNum, xerrors.XError) {
	if x.LessThan(expMinArg) {
		return ZERO, nil
	}
	if x.GreaterThan(expMaxArg) {
		return ZERO, xerrors.ErrOverflow.Wrapf("exp(%v)", x)
	}

	mag, neg := x.abs()
	mag.Lsh(&mag, guardBits)

	var q, r uint256.Int
	q.Div(&mag, &ln2Wide)
	r.Mod(&mag, &ln2Wide)

	// |x| < 64*ln2, so q is small
	n := int(q.Uint64())
	if neg {
		// -(q*ln2 + r) == -(q+1)*ln2 + (ln2 - r)
		if !r.IsZero() {
			n++
			r.Sub(&ln2Wide, &r)
		}
		n = -n
	}

	s := expWide(&r)

	shift := n - guardBits
	if shift >= 0 {
		s.Lsh(&s, uint(shift))
	} else {
		s.Rsh(&s, uint(-shift))
	}

	ret, xerr := fromMag(&s, false)
	if xerr != nil {
		return ZERO, xerr.Wrapf("exp(%v)", x)
	}
	return ret, nil
}

// expWide returns e^r for 0 <= r < ln2, both in Q32.96.
func expWide(r *uint256.Int) uint256.Int {
	var s, t uint256.Int
	s.Set(&wideOne)
	for n := expTerms; n > 0; n-- {
		t.Mul(r, &s)
		t.Rsh(&t, wideBits)
		t.Div(&t, &expDenoms[n])
		s.Add(&wideOne, &t)
	}
	return s
}

// Ln returns ln(x) for x > 0.
// x is normalized to x = m*2^k with m in [1, 2), and ln(m) is computed by the identity
// ln(m) = 2 * ( t + t^3/3 + t^5/5 + ... ), where t = (m-1)/(m+1).
func Ln(x FxNum) (FxNum, xerrors.XError) {
	if x.Sign() <= 0 {
		return ZERO, xerrors.ErrInvalidArgument.Wrapf("ln: input must be > 0, got %v", x)
	}

	// x.raw has at most 127 significant bits; ONE has 65.
	k := x.raw.BitLen() - (fracBits + 1)

	var m uint256.Int
	m.Lsh(&x.raw, guardBits)
	if k >= 0 {
		m.Rsh(&m, uint(k))
	} else {
		m.Lsh(&m, uint(-k))
	}

	lnm := lnWide(&m)

	var kln2 uint256.Int
	kln2.Mul(uint256.NewInt(uint64(abs(k))), &ln2Wide)

	var res uint256.Int
	neg := false
	switch {
	case k >= 0:
		res.Add(&kln2, &lnm)
	case kln2.Gt(&lnm):
		res.Sub(&kln2, &lnm)
		neg = true
	default:
		res.Sub(&lnm, &kln2)
	}
	res.Rsh(&res, guardBits)

	ret, xerr := fromMag(&res, neg)
	if xerr != nil {
		return ZERO, xerr.Wrapf("ln(%v)", x)
	}
	return ret, nil
}

// lnWide returns ln(m) for 1 <= m < 2, both in Q32.96.
func lnWide(m *uint256.Int) uint256.Int {
	var num, den, t, t2 uint256.Int
	num.Sub(m, &wideOne)
	num.Lsh(&num, wideBits)
	den.Add(m, &wideOne)
	t.Div(&num, &den)

	t2.Mul(&t, &t)
	t2.Rsh(&t2, wideBits)

	var sum, term, q uint256.Int
	sum.Set(&t)
	term.Set(&t)
	for k := 1; k < lnTerms; k++ {
		term.Mul(&term, &t2)
		term.Rsh(&term, wideBits)
		q.Div(&term, &lnDenoms[k])
		sum.Add(&sum, &q)
	}
	return *sum.Lsh(&sum, 1)
}

// Pow computes base^exponent = exp(exponent * ln(base)) deterministically. base must be > 0.
func Pow(base, exponent FxNum) (FxNum, xerrors.XError) {
	lnVal, xerr := Ln(base)
	if xerr != nil {
		return ZERO, xerr
	}
	arg, xerr := lnVal.Mul(exponent)
	if xerr != nil {
		return ZERO, xerr.Wrapf("pow: %v ^ %v", base, exponent)
	}
	return Exp(arg)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
