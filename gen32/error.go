package gen32

import (
	"github.com/joomcode/errorx"
)

var (
	// Errors is the namespace for all gen32 errors.
	Errors = errorx.NewNamespace("gen32")
	// ErrZeroBound - a bounded draw was requested over an empty range. Raised
	// as a panic: there is no value to return and the request is a defect in
	// the calling code.
	ErrZeroBound = Errors.NewType("zero_bound")

	// EKOp - name of the operation that raised the error.
	EKOp = errorx.RegisterProperty("op")
)

func zeroBound(op string) error {
	return ErrZeroBound.New("zero bound in %s", op).WithProperty(EKOp, op)
}
