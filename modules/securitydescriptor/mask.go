package securitydescriptor

import (
	"fmt"
	"strings"
)

// Mask is the 32-bit access mask of an ACE.
// https://msdn.microsoft.com/en-us/library/cc230294.aspx
type Mask uint32

const (
	// Generic rights as Active Directory stores them once translated to
	// specific bits. The raw GENERIC_* request bits (0x80000000 etc) never
	// appear on directory objects.
	GENERIC_READ    Mask = 0x00020094
	GENERIC_WRITE   Mask = 0x00020028
	GENERIC_EXECUTE Mask = 0x00020004
	GENERIC_ALL     Mask = 0x000F01FF

	// Standard rights, valid for all ACE types
	MAXIMUM_ALLOWED        Mask = 0x02000000
	ACCESS_SYSTEM_SECURITY Mask = 0x01000000
	SYNCHRONIZE            Mask = 0x00100000
	WRITE_OWNER            Mask = 0x00080000
	WRITE_DACL             Mask = 0x00040000
	READ_CONTROL           Mask = 0x00020000
	DELETE                 Mask = 0x00010000

	// Directory-service specific rights
	ADS_RIGHT_DS_CONTROL_ACCESS Mask = 0x00000100
	ADS_RIGHT_DS_LIST_OBJECT    Mask = 0x00000080
	ADS_RIGHT_DS_DELETE_TREE    Mask = 0x00000040
	ADS_RIGHT_DS_WRITE_PROP     Mask = 0x00000020
	ADS_RIGHT_DS_READ_PROP      Mask = 0x00000010
	ADS_RIGHT_DS_SELF           Mask = 0x00000008
	ADS_RIGHT_DS_DELETE_CHILD   Mask = 0x00000002
	ADS_RIGHT_DS_CREATE_CHILD   Mask = 0x00000001
)

// Has reports whether every bit of priv is set. Exact match, not overlap:
// a right made of several bits only counts when all of them are present.
func (m Mask) Has(priv Mask) bool {
	return m&priv == priv
}

func (m Mask) Set(priv Mask) Mask {
	return m | priv
}

func (m Mask) Clear(priv Mask) Mask {
	return m &^ priv
}

var maskNames = []struct {
	priv Mask
	name string
}{
	{GENERIC_ALL, "GENERIC_ALL"},
	{GENERIC_READ, "GENERIC_READ"},
	{GENERIC_WRITE, "GENERIC_WRITE"},
	{GENERIC_EXECUTE, "GENERIC_EXECUTE"},
	{MAXIMUM_ALLOWED, "MAXIMUM_ALLOWED"},
	{ACCESS_SYSTEM_SECURITY, "ACCESS_SYSTEM_SECURITY"},
	{SYNCHRONIZE, "SYNCHRONIZE"},
	{WRITE_OWNER, "WRITE_OWNER"},
	{WRITE_DACL, "WRITE_DACL"},
	{READ_CONTROL, "READ_CONTROL"},
	{DELETE, "DELETE"},
	{ADS_RIGHT_DS_CONTROL_ACCESS, "ADS_RIGHT_DS_CONTROL_ACCESS"},
	{ADS_RIGHT_DS_LIST_OBJECT, "ADS_RIGHT_DS_LIST_OBJECT"},
	{ADS_RIGHT_DS_DELETE_TREE, "ADS_RIGHT_DS_DELETE_TREE"},
	{ADS_RIGHT_DS_WRITE_PROP, "ADS_RIGHT_DS_WRITE_PROP"},
	{ADS_RIGHT_DS_READ_PROP, "ADS_RIGHT_DS_READ_PROP"},
	{ADS_RIGHT_DS_SELF, "ADS_RIGHT_DS_SELF"},
	{ADS_RIGHT_DS_DELETE_CHILD, "ADS_RIGHT_DS_DELETE_CHILD"},
	{ADS_RIGHT_DS_CREATE_CHILD, "ADS_RIGHT_DS_CREATE_CHILD"},
}

func (m Mask) String() string {
	var names []string
	for _, mn := range maskNames {
		if m.Has(mn.priv) {
			names = append(names, mn.name)
		}
	}
	return fmt.Sprintf("%08x (%s)", uint32(m), strings.Join(names, " | "))
}
