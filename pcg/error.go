package pcg

import (
	"github.com/joomcode/errorx"
)

var (
	// Errors is the namespace for all pcg errors.
	Errors = errorx.NewNamespace("pcg")
	// ErrBadState - serialized state blob has the wrong size.
	ErrBadState = Errors.NewType("bad_state")
)
