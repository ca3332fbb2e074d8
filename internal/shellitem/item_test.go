package shellitem

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/ocsview/internal/clsid"
	"github.com/Norgate-AV/ocsview/internal/layout"
	"github.com/Norgate-AV/ocsview/internal/testutil"
)

func decodeOne(t *testing.T, rec []byte) Item {
	t.Helper()

	items, err := Decode(testutil.Chain(rec))
	require.NoError(t, err)
	require.Len(t, items, 1)

	return items[0]
}

func TestItem_CLSID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  []byte
	}{
		{name: "root GUID tag", rec: testutil.GUIDRecord(layout.TagRootGUID, clsid.MyComputer)},
		{name: "extension GUID tag", rec: testutil.GUIDRecord(layout.TagExtensionGUID, clsid.MyComputer)},
		{name: "extended GUID tag", rec: testutil.ExtendedGUIDRecord(layout.TagExtendedGUID, clsid.MyComputer)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			it := decodeOne(t, tt.rec)

			c, ok := it.CLSID()
			require.True(t, ok, "GUID-tagged record should decode a CLSID")
			assert.Equal(t, clsid.MyComputer, c)
		})
	}
}

func TestItem_CLSID_NonGUIDTags(t *testing.T) {
	t.Parallel()

	it := decodeOne(t, testutil.DriveRecord(layout.TagDrive, `C:\`))

	_, ok := it.CLSID()
	assert.False(t, ok, "Drive records carry no CLSID")
}

func TestItem_CLSID_TruncatedRecord(t *testing.T) {
	t.Parallel()

	// GUID tag but the record ends before the 16 CLSID bytes
	rec := []byte{0x08, 0x00, layout.TagRootGUID, 0x00, 0x01, 0x02, 0x03, 0x04}

	it := decodeOne(t, rec)

	_, ok := it.CLSID()
	assert.False(t, ok, "Record too short for its layout should not decode")
	assert.Equal(t, "", it.Text())
}

func TestItem_SubCLSID(t *testing.T) {
	t.Parallel()

	it := decodeOne(t, testutil.ExtendedGUIDRecord(layout.TagSubIdentifier, clsid.UsersLibraries))

	c, ok := it.SubCLSID()
	require.True(t, ok)
	assert.Equal(t, clsid.UsersLibraries, c)

	_, ok = it.CLSID()
	assert.False(t, ok, "Sub-identifier records are not GUID records")
}

func TestItem_Text_Drive(t *testing.T) {
	t.Parallel()

	tags := []byte{layout.TagDrive, layout.TagDriveMapped, layout.TagDriveFixed, layout.TagDriveWithName}

	for _, tag := range tags {
		it := decodeOne(t, testutil.DriveRecord(tag, `C:\`))
		assert.Equal(t, `C:\`, it.Text(), "Drive name should stop at the first NUL")
	}
}

func TestItem_Text_NetworkShare(t *testing.T) {
	t.Parallel()

	it := decodeOne(t, testutil.ShareRecord(`\\server\share`))
	assert.Equal(t, `\\server\share`, it.Text())
}

func TestItem_Text_GUIDDisplayName(t *testing.T) {
	t.Parallel()

	it := decodeOne(t, testutil.GUIDRecord(layout.TagRootGUID, clsid.MyComputer))
	assert.Equal(t, "My Computer", it.Text())

	unregistered := clsid.MustParse("{DEADBEEF-0000-0000-0000-000000000000}")
	it = decodeOne(t, testutil.GUIDRecord(layout.TagRootGUID, unregistered))
	assert.Equal(t, "::{DEADBEEF-0000-0000-0000-000000000000}", it.Text())
}

func TestItem_Text_FileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{name: "ascii", text: "notepad.exe"},
		{name: "spaces", text: "Program Files"},
		{name: "non-ascii", text: "Résumé"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			it := decodeOne(t, testutil.FileRecord(0x31, tt.text))
			assert.Equal(t, tt.text, it.Text())
		})
	}
}

func TestItem_Text_FileNameRejection(t *testing.T) {
	t.Parallel()

	base := testutil.FileRecord(0x31, "Windows")

	patchTrailer := func(v uint16) []byte {
		rec := append([]byte(nil), base...)
		binary.LittleEndian.PutUint16(rec[len(rec)-2:], v)
		return rec
	}

	tests := []struct {
		name string
		rec  []byte
	}{
		{name: "odd block offset", rec: patchTrailer(17)},
		{name: "block offset below minimum", rec: patchTrailer(14)},
		{name: "block offset too close to record end", rec: patchTrailer(uint16(len(base) - 20))},
		{
			name: "block totals do not reconcile",
			rec: func() []byte {
				rec := append([]byte(nil), base...)
				// Shrink the block length header; the extra field (zero)
				// no longer accounts for the remainder.
				binary.LittleEndian.PutUint16(rec[16:], 10)
				return rec
			}(),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			it := decodeOne(t, tt.rec)
			assert.Equal(t, "", it.Text(), "A rejected name block yields no text, not an error")
		})
	}
}
