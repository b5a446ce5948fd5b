package imgpng

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidHeaderError reports that the leading 8-byte PNG signature did not
// match. It is produced only by the top-level driver.
type InvalidHeaderError struct{}

func (InvalidHeaderError) Error() string {
	return "imgpng: invalid png header"
}

// InvalidFormatError carries a human-readable message naming the offending
// field or chunk. Produced by the header parser, the chunk walker, the
// filter reversal engine and the pixel decoder.
type InvalidFormatError struct {
	Msg string
}

func (e InvalidFormatError) Error() string {
	return "imgpng: invalid format: " + e.Msg
}

func newFormatError(format string, args ...interface{}) error {
	return errors.WithStack(InvalidFormatError{Msg: fmt.Sprintf(format, args...)})
}

// IOError wraps an operating-system error surfaced by the file-loading
// collaborator. The underlying cause is always retrievable with errors.As
// or errors.Unwrap.
type IOError struct {
	Err error
}

func (e IOError) Error() string {
	return "imgpng: io error: " + e.Err.Error()
}

func (e IOError) Unwrap() error {
	return e.Err
}

func newIOError(err error) error {
	return errors.WithStack(IOError{Err: err})
}

// IsInvalidFormat reports whether err (or any error it wraps) is an
// InvalidFormatError.
func IsInvalidFormat(err error) bool {
	var target InvalidFormatError
	return errors.As(err, &target)
}

// IsInvalidHeader reports whether err (or any error it wraps) is an
// InvalidHeaderError.
func IsInvalidHeader(err error) bool {
	var target InvalidHeaderError
	return errors.As(err, &target)
}
