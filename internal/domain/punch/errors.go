package punch

import "errors"

// Punch domain errors
var (
	ErrPunchNotFound   = errors.New("punch record not found")
	ErrNothingToImport = errors.New("import batch contained no usable records")
)
