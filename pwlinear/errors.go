package pwlinear

import "errors"

var (
	ErrTooFewPoints    = errors.New("too few points")
	ErrUnorderedPoints = errors.New("unordered points")
	ErrBadDomain       = errors.New("bad domain")
	ErrDomainMismatch  = errors.New("domain mismatch")
	ErrNotSubDomain    = errors.New("not a sub domain")
	ErrNoFunctions     = errors.New("no functions")
)
