package rng

import (
	"github.com/joomcode/errorx"
)

// Errors is the namespace for everything this module returns.
var Errors = errorx.NewNamespace("dprng")

var (
	// ErrInvalidArgument - a range, count or seed argument is out of
	// contract. The only recoverable error class in the hot path: the
	// algorithm itself is pure arithmetic and cannot fail.
	ErrInvalidArgument = Errors.NewType("invalid_argument")
	// ErrEntropy - seedless construction could not obtain seed bits from
	// the entropy source. Surfaced instead of silently falling back to a
	// weak seed.
	ErrEntropy = Errors.NewType("entropy_unavailable")
)

var (
	// EKMin, EKMax - bounds of a rejected range.
	EKMin = errorx.RegisterProperty("min")
	EKMax = errorx.RegisterProperty("max")
	// EKCount - rejected byte count.
	EKCount = errorx.RegisterProperty("count")
)
