package securitydescriptor

import (
	"github.com/pkg/errors"
)

// ErrMalformedDescriptor is wrapped by every decode failure in this package.
// A malformed descriptor is fatal to that one descriptor only; batch callers
// test with errors.Is and keep processing their remaining entries.
var ErrMalformedDescriptor = errors.New("malformed security descriptor")

func malformed(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedDescriptor, format, args...)
}
