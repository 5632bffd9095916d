package aclanalyze

import (
	"encoding/binary"

	"github.com/gofrs/uuid"
	sd "github.com/lkarlslund/aclhound/modules/securitydescriptor"
	"github.com/lkarlslund/aclhound/modules/util"
	"github.com/lkarlslund/aclhound/modules/windowssecurity"
)

// Synthetic descriptor encoders for the evaluator tests.

func sidBytes(s string) []byte {
	sid := windowssecurity.MustParseStringSID(s)
	out := []byte{0x01, byte((len(sid) - 6) / 4)}
	return append(out, sid...)
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

func allowACE(mask sd.Mask, sid string) []byte {
	return aceBytes(sd.ACETYPE_ACCESS_ALLOWED, 0, append(u32(uint32(mask)), sidBytes(sid)...))
}

func denyACE(mask sd.Mask, sid string) []byte {
	return aceBytes(sd.ACETYPE_ACCESS_DENIED, 0, append(u32(uint32(mask)), sidBytes(sid)...))
}

func allowObjectACE(aceflags byte, mask sd.Mask, objecttype, inheritedtype *uuid.UUID, sid string) []byte {
	var flags uint32
	if objecttype != nil {
		flags |= sd.OBJECT_TYPE_PRESENT
	}
	if inheritedtype != nil {
		flags |= sd.INHERITED_OBJECT_TYPE_PRESENT
	}
	body := append(u32(uint32(mask)), u32(flags)...)
	if objecttype != nil {
		body = append(body, util.SwapUUIDEndianess(*objecttype).Bytes()...)
	}
	if inheritedtype != nil {
		body = append(body, util.SwapUUIDEndianess(*inheritedtype).Bytes()...)
	}
	body = append(body, sidBytes(sid)...)
	return aceBytes(sd.ACETYPE_ACCESS_ALLOWED_OBJECT, aceflags, body)
}

func descriptor(owner string, aces ...[]byte) []byte {
	var dacl []byte
	if aces != nil {
		var tail []byte
		for _, ace := range aces {
			tail = append(tail, ace...)
		}
		size := 8 + len(tail)
		dacl = []byte{
			0x02, 0x00,
			byte(size), byte(size >> 8),
			byte(len(aces)), byte(len(aces) >> 8),
			0x00, 0x00,
		}
		dacl = append(dacl, tail...)
	}

	out := make([]byte, 20)
	out[0] = 0x01
	binary.LittleEndian.PutUint16(out[2:], uint16(sd.CONTROLFLAG_SELF_RELATIVE|sd.CONTROLFLAG_DACL_PRESENT))
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
