package securitydescriptor

import (
	"encoding/binary"

	"github.com/gofrs/uuid"
	"github.com/lkarlslund/aclhound/modules/util"
	"github.com/lkarlslund/aclhound/modules/windowssecurity"
)

// Test-local encoders producing self-relative descriptor bytes.

func sidBytes(s string) []byte {
	sid := windowssecurity.MustParseStringSID(s)
	out := []byte{0x01, byte((len(sid) - 6) / 4)}
	return append(out, sid...)
}

func guidBytes(g uuid.UUID) []byte {
	return util.SwapUUIDEndianess(g).Bytes()
}

func u32(v uint32) []byte {
	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, v)
	return out
}

func aceBytes(acetype, aceflags byte, body []byte) []byte {
	size := 4 + len(body)
	out := []byte{acetype, aceflags, byte(size), byte(size >> 8)}
	return append(out, body...)
}

func plainACEBytes(acetype, aceflags byte, mask Mask, sid string) []byte {
	body := append(u32(uint32(mask)), sidBytes(sid)...)
	return aceBytes(acetype, aceflags, body)
}

func objectACEBytes(acetype, aceflags byte, mask Mask, objecttype, inheritedtype *uuid.UUID, sid string) []byte {
	var flags uint32
	if objecttype != nil {
		flags |= OBJECT_TYPE_PRESENT
	}
	if inheritedtype != nil {
		flags |= INHERITED_OBJECT_TYPE_PRESENT
	}
	body := append(u32(uint32(mask)), u32(flags)...)
	if objecttype != nil {
		body = append(body, guidBytes(*objecttype)...)
	}
	if inheritedtype != nil {
		body = append(body, guidBytes(*inheritedtype)...)
	}
	body = append(body, sidBytes(sid)...)
	return aceBytes(acetype, aceflags, body)
}

func aclBytes(acecount int, aces ...[]byte) []byte {
	var tail []byte
	for _, ace := range aces {
		tail = append(tail, ace...)
	}
	size := 8 + len(tail)
	out := []byte{
		0x02, 0x00,
		byte(size), byte(size >> 8),
		byte(acecount), byte(acecount >> 8),
		0x00, 0x00,
	}
	return append(out, tail...)
}

func descriptorBytes(owner string, dacl []byte) []byte {
	out := make([]byte, 20)
	out[0] = 0x01
	binary.LittleEndian.PutUint16(out[2:], uint16(CONTROLFLAG_SELF_RELATIVE|CONTROLFLAG_DACL_PRESENT))
	if owner != "" {
		binary.LittleEndian.PutUint32(out[4:], uint32(len(out)))
		out = append(out, sidBytes(owner)...)
	}
	if dacl != nil {
		binary.LittleEndian.PutUint32(out[16:], uint32(len(out)))
		out = append(out, dacl...)
	}
	return out
}
