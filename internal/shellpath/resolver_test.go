package shellpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/ocsview/internal/clsid"
	"github.com/Norgate-AV/ocsview/internal/layout"
	"github.com/Norgate-AV/ocsview/internal/logger"
	"github.com/Norgate-AV/ocsview/internal/shellitem"
	"github.com/Norgate-AV/ocsview/internal/testutil"
)

func resolve(t *testing.T, records ...[]byte) string {
	t.Helper()

	items, err := shellitem.Decode(testutil.Chain(records...))
	require.NoError(t, err)

	path, err := NewResolver(logger.NewNoOpLogger()).Resolve(items)
	require.NoError(t, err)

	return path
}

func TestResolve_EmptyChainIsDesktop(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Desktop", resolve(t))
}

func TestResolve_SingleGUIDRecord(t *testing.T) {
	t.Parallel()

	// A sole GUID record renders as its registered display name
	path := resolve(t, testutil.GUIDRecord(layout.TagRootGUID, clsid.MyComputer))
	assert.Equal(t, "My Computer", path)
}

func TestResolve_MyComputerDrive(t *testing.T) {
	t.Parallel()

	path := resolve(t,
		testutil.GUIDRecord(layout.TagRootGUID, clsid.MyComputer),
		testutil.DriveRecord(layout.TagDriveWithName, `C:\`),
	)

	assert.Equal(t, "C:", path, "Drive segments join with the trailing backslash trimmed")
}

func TestResolve_MyComputerFilePath(t *testing.T) {
	t.Parallel()

	path := resolve(t,
		testutil.GUIDRecord(layout.TagRootGUID, clsid.MyComputer),
		testutil.DriveRecord(layout.TagDriveWithName, `C:\`),
		testutil.FileRecord(0x31, "Windows"),
		testutil.FileRecord(0x32, "notepad.exe"),
	)

	assert.Equal(t, `C:\Windows\notepad.exe`, path)
}

func TestResolve_ControlPanel(t *testing.T) {
	t.Parallel()

	applet := clsid.MustParse("{7007ACC7-3202-11D1-AAD2-00805FC1270E}")

	path := resolve(t,
		testutil.GUIDRecord(layout.TagRootGUID, clsid.ControlPanel),
		testutil.ExtendedGUIDRecord(layout.TagExtendedGUID, applet),
	)

	assert.Equal(t, `Control Panel\::`+applet.String(), path,
		"Applets outside the registered set render in ::{GUID} notation")
}

func TestResolve_ControlPanelRootOnly(t *testing.T) {
	t.Parallel()

	path := resolve(t, testutil.GUIDRecord(layout.TagRootGUID, clsid.ControlPanel))
	assert.Equal(t, "Control Panel", path)
}

func TestResolve_ControlPanel2SkipsIdentifyingRecord(t *testing.T) {
	t.Parallel()

	path := resolve(t,
		testutil.GUIDRecord(layout.TagRootGUID, clsid.ControlPanel2),
		testutil.ExtendedGUIDRecord(layout.TagExtendedGUID, clsid.MyComputer),
		testutil.FileRecord(0x31, "Mouse"),
	)

	assert.Equal(t, `Control Panel\Mouse`, path,
		"The identifying record after the root is never rendered")
}

func TestResolve_NetworkShare(t *testing.T) {
	t.Parallel()

	path := resolve(t,
		testutil.GUIDRecord(layout.TagRootGUID, clsid.Network),
		testutil.ShareRecord(`\\server\share`),
		testutil.FileRecord(0x31, "docs"),
	)

	assert.Equal(t, `\\server\share\docs`, path)
}

func TestResolve_NetworkRootOnly(t *testing.T) {
	t.Parallel()

	path := resolve(t, testutil.GUIDRecord(layout.TagRootGUID, clsid.Network))
	assert.Equal(t, "Network", path)
}

func TestResolve_UsersLibraries(t *testing.T) {
	t.Parallel()

	path := resolve(t,
		testutil.GUIDRecord(layout.TagRootGUID, clsid.UsersLibraries),
		testutil.ExtendedGUIDRecord(layout.TagSubIdentifier, documentsLibrary),
		testutil.FileRecord(0x31, "reports"),
	)

	assert.Equal(t, `Libraries\Documents\reports`, path)
}

func TestResolve_UsersFilesKnownFolder(t *testing.T) {
	t.Parallel()

	path := resolve(t,
		testutil.GUIDRecord(layout.TagRootGUID, clsid.UsersFiles),
		testutil.ExtendedGUIDRecord(layout.TagSubIdentifier, downloadsFolder),
	)

	assert.Equal(t, `User Files\Downloads`, path)
}

func TestResolve_SubIdentifierFallback(t *testing.T) {
	t.Parallel()

	other := clsid.MustParse("{11111111-2222-3333-4444-555555555555}")

	path := resolve(t,
		testutil.GUIDRecord(layout.TagRootGUID, clsid.UsersLibraries),
		testutil.ExtendedGUIDRecord(layout.TagSubIdentifier, other),
	)

	assert.Equal(t, `Libraries\::`+other.String(), path)
}

func TestResolve_SubIdentifierMissingGUID(t *testing.T) {
	t.Parallel()

	// Sub-identifier record too short to hold its GUID
	short := []byte{0x06, 0x00, layout.TagSubIdentifier, 0x00, 0x00, 0x00}

	items, err := shellitem.Decode(testutil.Chain(
		testutil.GUIDRecord(layout.TagRootGUID, clsid.UsersLibraries),
		short,
	))
	require.NoError(t, err)

	_, err = NewResolver(logger.NewNoOpLogger()).Resolve(items)
	require.Error(t, err)

	var chainErr *shellitem.ChainError
	assert.ErrorAs(t, err, &chainErr)
}

func TestResolve_UnregisteredRootFallsThrough(t *testing.T) {
	t.Parallel()

	path := resolve(t,
		testutil.GUIDRecord(layout.TagRootGUID, clsid.RecycleBin),
		testutil.FileRecord(0x31, "old.txt"),
	)

	assert.Equal(t, `Recycle Bin\old.txt`, path,
		"Roots without a strategy render their display name then generic segments")
}

func TestResolve_UndecodableRecordsDegrade(t *testing.T) {
	t.Parallel()

	// A record with an unrecognized tag and no valid name block contributes
	// nothing rather than failing the resolution
	junk := []byte{0x08, 0x00, 0x99, 0x01, 0x02, 0x03, 0x04, 0x05}

	path := resolve(t,
		testutil.GUIDRecord(layout.TagRootGUID, clsid.MyComputer),
		testutil.DriveRecord(layout.TagDriveWithName, `C:\`),
		junk,
		testutil.FileRecord(0x31, "Windows"),
	)

	assert.Equal(t, `C:\Windows`, path)
}
