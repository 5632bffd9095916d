package aclanalyze

import (
	"github.com/lkarlslund/aclhound/modules/windowssecurity"
)

// Right names a control relationship a principal holds over an entry.
type Right string

const (
	Owner         Right = "Owner"
	GenericAll    Right = "GenericAll"
	GenericWrite  Right = "GenericWrite"
	WriteDacl     Right = "WriteDacl"
	WriteOwner    Right = "WriteOwner"
	WriteProperty Right = "WriteProperty"
	ExtendedRight Right = "ExtendedRight"
)

// Relation is one emitted attack-path edge: the principal identified by SID
// holds RightName over the evaluated entry. AceType qualifies rights that
// target a specific property or control-access right ("AddMember",
// "GetChanges", ...); it is empty otherwise. Consumers must treat the set as
// unordered.
type Relation struct {
	SID       windowssecurity.SID `json:"sid"`
	RightName Right               `json:"rightname"`
	AceType   string              `json:"acetype"`
}

func relation(sid windowssecurity.SID, right Right) Relation {
	return Relation{SID: sid, RightName: right}
}

func qualified(sid windowssecurity.SID, right Right, acetype string) Relation {
	return Relation{SID: sid, RightName: right, AceType: acetype}
}
