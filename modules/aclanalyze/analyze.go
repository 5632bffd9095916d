package aclanalyze

import (
	"github.com/gofrs/uuid"
	"github.com/lkarlslund/aclhound/modules/securitydescriptor"
	"github.com/lkarlslund/aclhound/modules/windowssecurity"
)

// Principals whose grants carry no attack-path information.
var ignoredSIDs = map[windowssecurity.SID]struct{}{
	windowssecurity.CreatorOwnerSID: {}, // S-1-3-0
	windowssecurity.LocalSystemSID:  {}, // S-1-5-18
}

func ignored(sid windowssecurity.SID) bool {
	_, found := ignoredSIDs[sid]
	return found
}

// Evaluate decodes one self-relative security descriptor and derives the
// abusable control relationships it grants over an entry of the given class.
// Empty descriptor bytes yield no relations and no error. The function is
// pure; a malformed descriptor fails only this entry.
func Evaluate(class ObjectClass, descriptor []byte) ([]Relation, error) {
	if len(descriptor) == 0 {
		return nil, nil
	}
	sd, err := securitydescriptor.Parse(descriptor)
	if err != nil {
		return nil, err
	}

	var relations []Relation
	if !sd.Owner.IsNull() && !ignored(sd.Owner) {
		relations = append(relations, relation(sd.Owner, Owner))
	}
	if sd.DACL == nil {
		return relations, nil
	}

	for _, ace := range sd.DACL.Entries {
		kind := ace.Kind()
		// Deny ACEs are decoded but deliberately never evaluated: only
		// grants are attack-path relevant. Unsupported types carry no body.
		if kind != securitydescriptor.KindAccessAllowed && kind != securitydescriptor.KindAccessAllowedObject {
			continue
		}
		if ignored(ace.SID) {
			continue
		}
		if kind == securitydescriptor.KindAccessAllowedObject {
			relations = evaluateObjectACE(relations, ace, class)
		} else {
			relations = evaluatePlainACE(relations, ace, class)
		}
	}
	return relations, nil
}

func evaluateObjectACE(relations []Relation, ace securitydescriptor.ACE, class ObjectClass) []Relation {
	if !ace.HasFlag(securitydescriptor.ACEFLAG_INHERITED_ACE) && ace.HasFlag(securitydescriptor.ACEFLAG_INHERIT_ONLY_ACE) {
		// Template for descendants, not an effective right here
		return relations
	}
	if ace.HasFlag(securitydescriptor.ACEFLAG_INHERITED_ACE) && ace.InheritedObjectTypePresent() {
		if !aceApplies(ace.InheritedObjectType, class) {
			return relations
		}
	}

	mask := ace.Mask
	sid := ace.SID

	// Coarse rights first, highest to lowest. An ObjectType restriction that
	// does not match this entry's class skips the whole coarse block: the
	// grant targets a different sub-object.
	if mask.Has(securitydescriptor.GENERIC_ALL) || mask.Has(securitydescriptor.WRITE_DACL) ||
		mask.Has(securitydescriptor.WRITE_OWNER) || mask.Has(securitydescriptor.GENERIC_WRITE) {
		if !ace.ObjectTypePresent() || aceApplies(ace.ObjectType, class) {
			if mask.Has(securitydescriptor.GENERIC_ALL) {
				// Subsumes everything else this ACE could grant
				return append(relations, relation(sid, GenericAll))
			}
			if mask.Has(securitydescriptor.GENERIC_WRITE) {
				relations = append(relations, relation(sid, GenericWrite))
				// Domain objects keep reporting the specific rights below,
				// downstream consumers expect the duplicates
				if class != ClassDomain {
					return relations
				}
			}
			if mask.Has(securitydescriptor.WRITE_DACL) {
				relations = append(relations, relation(sid, WriteDacl))
			}
			if mask.Has(securitydescriptor.WRITE_OWNER) {
				relations = append(relations, relation(sid, WriteOwner))
			}
		}
	}

	if mask.Has(securitydescriptor.ADS_RIGHT_DS_WRITE_PROP) {
		// An untyped write-property grant is unrestricted write access
		if (class == ClassUser || class == ClassGroup) && !ace.ObjectTypePresent() {
			relations = append(relations, relation(sid, GenericWrite))
		}
		if class == ClassGroup && canWriteProperty(ace, WriteMemberGUID) {
			relations = append(relations, qualified(sid, WriteProperty, "AddMember"))
		}
	}

	if mask.Has(securitydescriptor.ADS_RIGHT_DS_CONTROL_ACCESS) {
		if (class == ClassUser || class == ClassDomain) && !ace.ObjectTypePresent() {
			relations = append(relations, qualified(sid, ExtendedRight, "All"))
		}
		if class == ClassDomain && hasExtendedRight(ace, GetChangesGUID) {
			relations = append(relations, qualified(sid, ExtendedRight, "GetChanges"))
		}
		if class == ClassDomain && hasExtendedRight(ace, GetChangesAllGUID) {
			relations = append(relations, qualified(sid, ExtendedRight, "GetChangesAll"))
		}
		if class == ClassUser && hasExtendedRight(ace, UserForceChangePasswordGUID) {
			relations = append(relations, qualified(sid, ExtendedRight, "User-Force-Change-Password"))
		}
	}

	return relations
}

func evaluatePlainACE(relations []Relation, ace securitydescriptor.ACE, class ObjectClass) []Relation {
	mask := ace.Mask
	sid := ace.SID
	if mask.Has(securitydescriptor.GENERIC_ALL) {
		return append(relations, relation(sid, GenericAll))
	}
	if mask.Has(securitydescriptor.GENERIC_WRITE) {
		relations = append(relations, relation(sid, GenericWrite))
	}
	if mask.Has(securitydescriptor.WRITE_OWNER) {
		relations = append(relations, relation(sid, WriteOwner))
	}
	if (class == ClassUser || class == ClassDomain) && mask.Has(securitydescriptor.ADS_RIGHT_DS_CONTROL_ACCESS) {
		relations = append(relations, qualified(sid, ExtendedRight, "All"))
	}
	if mask.Has(securitydescriptor.WRITE_DACL) {
		relations = append(relations, relation(sid, WriteDacl))
	}
	return relations
}

// canWriteProperty reports whether the ACE grants writing the property
// identified by guid, either through an exact ObjectType match or through an
// untyped grant covering all properties. [MS-ADTS] 5.1.3.2.
func canWriteProperty(ace securitydescriptor.ACE, guid uuid.UUID) bool {
	if !ace.Mask.Has(securitydescriptor.ADS_RIGHT_DS_WRITE_PROP) {
		return false
	}
	if !ace.ObjectTypePresent() {
		return true
	}
	return ace.ObjectType == guid
}

// hasExtendedRight reports whether the ACE grants the control-access right
// identified by guid, exactly or through an untyped grant covering all
// extended rights. [MS-ADTS] 5.1.3.2.
func hasExtendedRight(ace securitydescriptor.ACE, guid uuid.UUID) bool {
	if !ace.Mask.Has(securitydescriptor.ADS_RIGHT_DS_CONTROL_ACCESS) {
		return false
	}
	if !ace.ObjectTypePresent() {
		return true
	}
	return ace.ObjectType == guid
}

// aceApplies reports whether an object-type restriction GUID matches the
// schema class of the entry under evaluation. Unknown classes never match.
func aceApplies(guid uuid.UUID, class ObjectClass) bool {
	classguid, found := objectClassGUIDs[class]
	return found && guid == classguid
}
