package encoding

import (
	"fmt"

	"github.com/zeusync/voxkit/pkg/errs"
)

// DataError reports a read the buffer could not satisfy. It matches errs.ErrBinaryData.
type DataError struct {
	// Need is the number of bytes the read required.
	Need int
	// Have is the number of bytes that were left.
	Have int
	// Reason replaces the default message for malformed (rather than short) data.
	Reason string
}

func (e *DataError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("not enough bytes left in buffer: need %d, have %d", e.Need, e.Have)
}

func (e *DataError) Unwrap() error {
	return errs.ErrBinaryData
}

func shortData(need, have int) *DataError {
	if have < 0 {
		have = 0
	}
	return &DataError{Need: need, Have: have}
}
