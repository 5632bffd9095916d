package securitydescriptor

import (
	"encoding/binary"
)

// reader walks a byte buffer sequentially. Self-relative descriptors store
// absolute offsets to their sub-structures, so it also seeks. All integers
// are little-endian.
type reader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

func (r *reader) remaining() int {
	return len(r.data) - r.pos
}

func (r *reader) rest() []byte {
	return r.data[r.pos:]
}

func (r *reader) seek(offset uint32) error {
	if int(offset) > len(r.data) {
		return malformed("offset %v beyond %v byte buffer", offset, len(r.data))
	}
	r.pos = int(offset)
	return nil
}

func (r *reader) bytes(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, malformed("need %v bytes, %v available", n, r.remaining())
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// sub consumes the next n bytes and returns them as a bounded reader, so a
// record body can never read past its own declared size.
func (r *reader) sub(n int) (*reader, error) {
	b, err := r.bytes(n)
	if err != nil {
		return nil, err
	}
	return &reader{data: b}, nil
}

func (r *reader) uint8() (byte, error) {
	b, err := r.bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) uint16() (uint16, error) {
	b, err := r.bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *reader) uint32() (uint32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}
