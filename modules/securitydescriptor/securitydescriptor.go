package securitydescriptor

import (
	"strings"

	"github.com/lkarlslund/aclhound/modules/windowssecurity"
	"github.com/pkg/errors"
)

type ControlFlag uint16

// http://www.selfadsi.org/deep-inside/ad-security-descriptors.htm
const (
	CONTROLFLAG_OWNER_DEFAULTED     ControlFlag = 0x0001
	CONTROLFLAG_GROUP_DEFAULTED     ControlFlag = 0x0002
	CONTROLFLAG_DACL_PRESENT        ControlFlag = 0x0004
	CONTROLFLAG_DACL_DEFAULTED      ControlFlag = 0x0008
	CONTROLFLAG_SACL_PRESENT        ControlFlag = 0x0010
	CONTROLFLAG_SACL_DEFAULTED      ControlFlag = 0x0020
	CONTROLFLAG_DACL_AUTO_INHERITED ControlFlag = 0x0400
	CONTROLFLAG_SACL_AUTO_INHERITED ControlFlag = 0x0800
	CONTROLFLAG_DACL_PROTECTED      ControlFlag = 0x1000
	CONTROLFLAG_SACL_PROTECTED      ControlFlag = 0x2000
	CONTROLFLAG_SELF_RELATIVE       ControlFlag = 0x8000
)

// SecurityDescriptor is one decoded self-relative security descriptor.
// A zero offset in the header leaves the corresponding field absent:
// a null SID for owner/group, a nil ACL for SACL/DACL.
type SecurityDescriptor struct {
	Owner    windowssecurity.SID
	Group    windowssecurity.SID
	SACL     *ACL
	DACL     *ACL
	Control  ControlFlag
	Revision byte
}

// Parse decodes the fixed 20 byte header and follows the absolute offsets
// into the same buffer for owner, group, SACL and DACL.
func Parse(data []byte) (*SecurityDescriptor, error) {
	r := newReader(data)
	var sd SecurityDescriptor
	var err error
	if sd.Revision, err = r.uint8(); err != nil {
		return nil, err
	}
	if _, err = r.uint8(); err != nil { // Sbz1
		return nil, err
	}
	control, err := r.uint16()
	if err != nil {
		return nil, err
	}
	sd.Control = ControlFlag(control)
	offsetOwner, err := r.uint32()
	if err != nil {
		return nil, err
	}
	offsetGroup, err := r.uint32()
	if err != nil {
		return nil, err
	}
	offsetSacl, err := r.uint32()
	if err != nil {
		return nil, err
	}
	offsetDacl, err := r.uint32()
	if err != nil {
		return nil, err
	}

	if offsetOwner != 0 {
		if err = r.seek(offsetOwner); err != nil {
			return nil, errors.Wrap(err, "owner")
		}
		if sd.Owner, _, err = windowssecurity.ParseSID(r.rest()); err != nil {
			return nil, malformed("owner SID: %v", err)
		}
	}
	if offsetGroup != 0 {
		if err = r.seek(offsetGroup); err != nil {
			return nil, errors.Wrap(err, "group")
		}
		if sd.Group, _, err = windowssecurity.ParseSID(r.rest()); err != nil {
			return nil, malformed("group SID: %v", err)
		}
	}
	if offsetSacl != 0 {
		if err = r.seek(offsetSacl); err != nil {
			return nil, errors.Wrap(err, "SACL")
		}
		if sd.SACL, err = parseACL(r); err != nil {
			return nil, errors.Wrap(err, "SACL")
		}
	}
	if offsetDacl != 0 {
		if err = r.seek(offsetDacl); err != nil {
			return nil, errors.Wrap(err, "DACL")
		}
		if sd.DACL, err = parseACL(r); err != nil {
			return nil, errors.Wrap(err, "DACL")
		}
	}
	return &sd, nil
}

var controlFlagNames = []struct {
	flag ControlFlag
	name string
}{
	{CONTROLFLAG_OWNER_DEFAULTED, "OWNER_DEFAULTED"},
	{CONTROLFLAG_GROUP_DEFAULTED, "GROUP_DEFAULTED"},
	{CONTROLFLAG_DACL_PRESENT, "DACL_PRESENT"},
	{CONTROLFLAG_DACL_DEFAULTED, "DACL_DEFAULTED"},
	{CONTROLFLAG_SACL_PRESENT, "SACL_PRESENT"},
	{CONTROLFLAG_SACL_DEFAULTED, "SACL_DEFAULTED"},
	{CONTROLFLAG_DACL_AUTO_INHERITED, "DACL_AUTO_INHERITED"},
	{CONTROLFLAG_SACL_AUTO_INHERITED, "SACL_AUTO_INHERITED"},
	{CONTROLFLAG_DACL_PROTECTED, "DACL_PROTECTED"},
	{CONTROLFLAG_SACL_PROTECTED, "SACL_PROTECTED"},
	{CONTROLFLAG_SELF_RELATIVE, "SELF_RELATIVE"},
}

func (c ControlFlag) String() string {
	var names []string
	for _, cn := range controlFlagNames {
		if c&cn.flag != 0 {
			names = append(names, cn.name)
		}
	}
	return strings.Join(names, " | ")
}

func (sd SecurityDescriptor) String() string {
	result := "SecurityDescriptor: " + sd.Control.String() + "\n"
	if !sd.Owner.IsNull() {
		result += "Owner: " + sd.Owner.String() + "\n"
	}
	if !sd.Group.IsNull() {
		result += "Group: " + sd.Group.String() + "\n"
	}
	if sd.DACL != nil {
		result += "DACL:\n" + sd.DACL.String() + "\n"
	}
	if sd.SACL != nil {
		result += "SACL:\n" + sd.SACL.String() + "\n"
	}
	return result
}
