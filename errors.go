package discordstyle

import (
	"github.com/samber/oops"
)

// ValidationDomain is the oops domain shared by all construction errors.
const ValidationDomain = "validation"

// Error codes carried by validation errors.
const (
	CodeInvalidURL       = "INVALID_URL"
	CodeInvalidID        = "INVALID_ID"
	CodeInvalidTime      = "INVALID_TIME"
	CodeInvalidTimeStyle = "INVALID_TIME_STYLE"
)

func validationError(code string) oops.OopsErrorBuilder {
	return oops.In(ValidationDomain).Code(code)
}

// IsValidationError reports whether err was raised while constructing a
// link, mention or timestamp from invalid input.
func IsValidationError(err error) bool {
	oopsErr, ok := oops.AsOops(err)
	return ok && oopsErr.Domain() == ValidationDomain
}
