package securitydescriptor

import (
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/lkarlslund/aclhound/modules/util"
	"github.com/lkarlslund/aclhound/modules/windowssecurity"
	"github.com/pkg/errors"
)

const (
	// ACE.Type
	ACETYPE_ACCESS_ALLOWED        = 0x00
	ACETYPE_ACCESS_DENIED         = 0x01
	ACETYPE_ACCESS_ALLOWED_OBJECT = 0x05
	ACETYPE_ACCESS_DENIED_OBJECT  = 0x06

	// ACE.ACEFlags
	ACEFLAG_OBJECT_INHERIT_ACE       = 0x01
	ACEFLAG_CONTAINER_INHERIT_ACE    = 0x02
	ACEFLAG_NO_PROPAGATE_INHERIT_ACE = 0x04
	ACEFLAG_INHERIT_ONLY_ACE         = 0x08 // Template for children, not effective on this object
	ACEFLAG_INHERITED_ACE            = 0x10 // This ACE was inherited from the parent object

	// ACE.Flags - present if this is an ACETYPE_ACCESS_*_OBJECT type
	OBJECT_TYPE_PRESENT           = 0x01
	INHERITED_OBJECT_TYPE_PRESENT = 0x02
)

var NullGUID = uuid.UUID{}

// Kind is the closed set of ACE shapes the decoder understands.
type Kind byte

const (
	KindAccessAllowed Kind = iota
	KindAccessDenied
	KindAccessAllowedObject
	KindAccessDeniedObject
	KindOther // structurally skipped, no decoded body
)

type ACL struct {
	Entries  []ACE
	Revision byte
	Size     uint16
}

type ACE struct {
	SID                 windowssecurity.SID
	Mask                Mask
	Flags               uint32 // object ACE GUID presence flags
	ObjectType          uuid.UUID
	InheritedObjectType uuid.UUID
	Size                uint16
	ACEFlags            byte
	Type                byte
}

func (a ACE) Kind() Kind {
	switch a.Type {
	case ACETYPE_ACCESS_ALLOWED:
		return KindAccessAllowed
	case ACETYPE_ACCESS_DENIED:
		return KindAccessDenied
	case ACETYPE_ACCESS_ALLOWED_OBJECT:
		return KindAccessAllowedObject
	case ACETYPE_ACCESS_DENIED_OBJECT:
		return KindAccessDeniedObject
	}
	return KindOther
}

func (a ACE) HasFlag(flag byte) bool {
	return a.ACEFlags&flag == flag
}

func (a ACE) ObjectTypePresent() bool {
	return a.Flags&OBJECT_TYPE_PRESENT != 0
}

func (a ACE) InheritedObjectTypePresent() bool {
	return a.Flags&INHERITED_OBJECT_TYPE_PRESENT != 0
}

func parseACL(r *reader) (*ACL, error) {
	var acl ACL
	var err error
	if acl.Revision, err = r.uint8(); err != nil {
		return nil, err
	}
	if _, err = r.uint8(); err != nil { // Sbz1
		return nil, err
	}
	if acl.Size, err = r.uint16(); err != nil {
		return nil, err
	}
	acecount, err := r.uint16()
	if err != nil {
		return nil, err
	}
	if _, err = r.uint16(); err != nil { // Sbz2
		return nil, err
	}
	if acl.Size < 8 {
		return nil, malformed("ACL size %v does not cover its own header", acl.Size)
	}

	// AclSize only bounds the tail, AceCount decides how many entries to take
	tail, err := r.sub(int(acl.Size) - 8)
	if err != nil {
		return nil, err
	}
	acl.Entries = make([]ACE, acecount)
	for i := range acl.Entries {
		ace, err := parseACE(tail)
		if err != nil {
			return nil, errors.Wrapf(err, "ACE %v of %v", i, acecount)
		}
		acl.Entries[i] = ace
	}
	return &acl, nil
}

func parseACE(r *reader) (ACE, error) {
	var ace ACE
	var err error
	if ace.Type, err = r.uint8(); err != nil {
		return ace, err
	}
	if ace.ACEFlags, err = r.uint8(); err != nil {
		return ace, err
	}
	if ace.Size, err = r.uint16(); err != nil {
		return ace, err
	}
	if ace.Size < 4 {
		return ace, malformed("ACE size %v does not cover its own header", ace.Size)
	}
	body, err := r.sub(int(ace.Size) - 4)
	if err != nil {
		return ace, err
	}

	kind := ace.Kind()
	if kind == KindOther {
		// Known-but-uninterpreted: header retained, body skipped
		return ace, nil
	}

	mask, err := body.uint32()
	if err != nil {
		return ace, err
	}
	ace.Mask = Mask(mask)

	if kind == KindAccessAllowedObject || kind == KindAccessDeniedObject {
		if ace.Flags, err = body.uint32(); err != nil {
			return ace, err
		}
		if ace.ObjectTypePresent() {
			if ace.ObjectType, err = parseGUID(body); err != nil {
				return ace, err
			}
		}
		if ace.InheritedObjectTypePresent() {
			if ace.InheritedObjectType, err = parseGUID(body); err != nil {
				return ace, err
			}
		}
	}

	sid, _, err := windowssecurity.ParseSID(body.rest())
	if err != nil {
		return ace, malformed("ACE subject SID: %v", err)
	}
	ace.SID = sid
	return ace, nil
}

func parseGUID(r *reader) (uuid.UUID, error) {
	b, err := r.bytes(16)
	if err != nil {
		return NullGUID, err
	}
	g, err := uuid.FromBytes(b)
	if err != nil {
		return NullGUID, malformed("GUID: %v", err)
	}
	return util.SwapUUIDEndianess(g), nil
}

func (a ACE) String() string {
	var result string
	switch a.Type {
	case ACETYPE_ACCESS_ALLOWED:
		result = "Allow"
	case ACETYPE_ACCESS_DENIED:
		result = "Deny"
	case ACETYPE_ACCESS_ALLOWED_OBJECT:
		result = "Allow object"
	case ACETYPE_ACCESS_DENIED_OBJECT:
		result = "Deny object"
	default:
		result = fmt.Sprintf("Unsupported type %02x", a.Type)
		return result
	}
	result += " " + a.SID.String()
	if a.ObjectTypePresent() {
		result += " type " + a.ObjectType.String()
	}
	if a.InheritedObjectTypePresent() {
		result += " inherited type " + a.InheritedObjectType.String()
	}
	return result + " mask " + a.Mask.String()
}

func (a ACL) String() string {
	lines := make([]string, 0, len(a.Entries)+1)
	lines = append(lines, fmt.Sprintf("ACL revision %v:", a.Revision))
	for _, ace := range a.Entries {
		lines = append(lines, "ACE: "+ace.String())
	}
	return strings.Join(lines, "\n")
}
