package util

import (
	"github.com/gofrs/uuid"
)

// SwapUUIDEndianess converts a GUID between the mixed-endian layout used
// on the wire (first three groups little-endian) and the canonical big-endian
// form. The conversion is its own inverse.
func SwapUUIDEndianess(u uuid.UUID) uuid.UUID {
	var r uuid.UUID
	r[0], r[1], r[2], r[3] = u[3], u[2], u[1], u[0]
	r[4], r[5] = u[5], u[4]
	r[6], r[7] = u[7], u[6]
	copy(r[8:], u[8:])
	return r
}
