package windowssecurity

var (
	// KnownSIDs maps well-known SIDs to their friendly names.
	KnownSIDs = map[string]string{
		"S-1-0":        "Null Authority",
		"S-1-0-0":      "Nobody",
		"S-1-1":        "World Authority",
		"S-1-1-0":      "Everyone",
		"S-1-2":        "Local Authority",
		"S-1-2-0":      "Local",
		"S-1-3":        "Creator Authority",
		"S-1-3-0":      "Creator Owner",
		"S-1-3-1":      "Creator Group",
		"S-1-3-2":      "Creator Owner Server",
		"S-1-3-3":      "Creator Group Server",
		"S-1-3-4":      "Owner Rights",
		"S-1-4":        "Non-unique Authority",
		"S-1-5":        "NT Authority",
		"S-1-5-1":      "Dialup",
		"S-1-5-2":      "Network",
		"S-1-5-3":      "Batch",
		"S-1-5-4":      "Interactive",
		"S-1-5-6":      "Service",
		"S-1-5-7":      "Anonymous",
		"S-1-5-8":      "Proxy",
		"S-1-5-9":      "Enterprise Domain Controllers",
		"S-1-5-10":     "Principal Self",
		"S-1-5-11":     "Authenticated Users",
		"S-1-5-12":     "Restricted Code",
		"S-1-5-13":     "Terminal Server Users",
		"S-1-5-14":     "Remote Interactive Logon",
		"S-1-5-15":     "This Organization",
		"S-1-5-17":     "IUSR",
		"S-1-5-18":     "Local System",
		"S-1-5-19":     "Local Service",
		"S-1-5-20":     "Network Service",
		"S-1-5-32-544": "Administrators",
		"S-1-5-32-545": "Users",
		"S-1-5-32-546": "Guests",
		"S-1-5-32-547": "Power Users",
		"S-1-5-32-548": "Account Operators",
		"S-1-5-32-549": "Server Operators",
		"S-1-5-32-550": "Print Operators",
		"S-1-5-32-551": "Backup Operators",
		"S-1-5-32-552": "Replicators",
		"S-1-5-32-554": "Builtin - Pre-Windows 2000 Compatible Access",
		"S-1-5-32-555": "Builtin - Remote Desktop Users",
		"S-1-5-32-556": "Builtin - Network Configuration Operators",
		"S-1-5-32-557": "Builtin - Incoming Forest Trust Builders",
		"S-1-5-32-558": "Builtin - Performance Monitor Users",
		"S-1-5-32-559": "Builtin - Performance Log Users",
		"S-1-5-32-560": "Builtin - Windows Authorization Access Group",
		"S-1-5-32-561": "Builtin - Terminal Server License Servers",
		"S-1-5-32-562": "Builtin - Distributed COM Users",
	}

	CreatorOwnerSID = MustParseStringSID("S-1-3-0")
	LocalSystemSID  = MustParseStringSID("S-1-5-18")
)

// Name returns the friendly name of a well-known SID or the empty string.
func (sid SID) Name() string {
	return KnownSIDs[sid.String()]
}
