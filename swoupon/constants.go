package swoupon

import (
	"github.com/beatoz/swoupon-go/libs/fxnum"
	"github.com/shopspring/decimal"
)

// Formula constants, pre-scaled to Q64.64 (round-half-even of value*2^64).
var (
	fxBaseRate  = fxnum.Frac(0x028f5c28f5c28f5c) // c1 = 0.01
	fxDecayRate = fxnum.Frac(0x051eb851eb851eb8) // c2 = 0.02
	fxDecayK    = fxnum.Frac(0x000346dc5d638866) // k  = 0.00005
	fxDivisor   = fxnum.Frac(0x199999999999999a) // d  = 0.1
	fxCapRatio  = fxnum.Frac(0x5555555555555555) // 1/3
	fxPowExp    = fxnum.Frac(0x4ccccccccccccccd) // 0.3
)

// The same constants, exact, for the decimal reference model.
var (
	decBaseRate  = decimal.New(1, -2)
	decDecayRate = decimal.New(2, -2)
	decDecayK    = decimal.New(5, -5)
	decDivisor   = decimal.New(1, -1)
	decCapRatio  = decimal.NewFromInt(3) // divisor of TR
	decPowExp    = decimal.New(3, -1)
	decSqrtExp   = decimal.New(5, -1)
)
