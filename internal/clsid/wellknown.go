package clsid

// Well-known shell namespace roots. These are process-wide constants and are
// never mutated after initialization.
var (
	Desktop        = MustParse("{00021400-0000-0000-C000-000000000046}")
	MyComputer     = MustParse("{20D04FE0-3AEA-1069-A2D8-08002B30309D}")
	ControlPanel   = MustParse("{21EC2020-3AEA-1069-A2DD-08002B30309D}")
	ControlPanel2  = MustParse("{26EE0668-A00A-44D7-9371-BEB064C98683}")
	Network        = MustParse("{F02C1A0D-BE21-4350-88B0-7367FC96EF3C}")
	UsersLibraries = MustParse("{031E4825-7B94-4DC3-B131-E946B44C8DD5}")
	UsersFiles     = MustParse("{59031A47-3F72-44A7-89C5-5595FE6B30EE}")
	MyDocuments    = MustParse("{450D8FBA-AD25-11D0-98A8-0800361B1103}")
	RecycleBin     = MustParse("{645FF040-5081-101B-9F08-00AA002F954E}")
)

// displayNames maps well-known roots to the labels the shell shows for them.
var displayNames = map[CLSID]string{
	Desktop:        "Desktop",
	MyComputer:     "My Computer",
	ControlPanel:   "Control Panel",
	ControlPanel2:  "Control Panel",
	Network:        "Network",
	UsersLibraries: "Libraries",
	UsersFiles:     "User Files",
	MyDocuments:    "My Documents",
	RecycleBin:     "Recycle Bin",
}

// WellKnownName returns the registered display name for c, if any.
func WellKnownName(c CLSID) (string, bool) {
	name, ok := displayNames[c]
	return name, ok
}

// DisplayName returns the registered display name for c, falling back to the
// shell's ::{GUID} notation for unregistered identifiers.
func DisplayName(c CLSID) string {
	if name, ok := displayNames[c]; ok {
		return name
	}

	return "::" + c.String()
}
