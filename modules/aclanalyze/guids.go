package aclanalyze

import (
	"github.com/gofrs/uuid"
)

// ObjectClass is the ldapDisplayName of the schema class owning an entry.
// Values outside the known set are legal and simply fail every
// class-restricted rule.
type ObjectClass string

const (
	ClassGroup                ObjectClass = "group"
	ClassDomain               ObjectClass = "domain"
	ClassOrganizationalUnit   ObjectClass = "organizationalUnit"
	ClassUser                 ObjectClass = "user"
	ClassGroupPolicyContainer ObjectClass = "groupPolicyContainer"
)

// Schema GUIDs for the object classes we evaluate, used to test whether an
// object-type restricted ACE applies to an entry of that class.
// https://msdn.microsoft.com/en-us/library/ms680938(v=vs.85).aspx
var objectClassGUIDs = map[ObjectClass]uuid.UUID{
	ClassGroup:                uuid.Must(uuid.FromString("bf967a9c-0de6-11d0-a285-00aa003049e2")),
	ClassDomain:               uuid.Must(uuid.FromString("19195a5a-6da0-11d0-afd3-00c04fd930c9")),
	ClassOrganizationalUnit:   uuid.Must(uuid.FromString("bf967aa5-0de6-11d0-a285-00aa003049e2")),
	ClassUser:                 uuid.Must(uuid.FromString("bf967aba-0de6-11d0-a285-00aa003049e2")),
	ClassGroupPolicyContainer: uuid.Must(uuid.FromString("f30e3bc2-9ff0-11d1-b603-0000f80367c1")),
}

// Extended right and property GUIDs the evaluator cares about.
// https://msdn.microsoft.com/en-us/library/cc223512.aspx
var (
	GetChangesGUID              = uuid.Must(uuid.FromString("1131f6aa-9c07-11d1-f79f-00c04fc2dcd2"))
	GetChangesAllGUID           = uuid.Must(uuid.FromString("1131f6ad-9c07-11d1-f79f-00c04fc2dcd2"))
	WriteMemberGUID             = uuid.Must(uuid.FromString("bf9679c0-0de6-11d0-a285-00aa003049e2"))
	UserForceChangePasswordGUID = uuid.Must(uuid.FromString("00299570-246d-11d0-a768-00aa006e0529"))
)
