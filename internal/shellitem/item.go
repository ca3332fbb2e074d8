package shellitem

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"

	"github.com/Norgate-AV/ocsview/internal/clsid"
	"github.com/Norgate-AV/ocsview/internal/layout"
)

// Item is one record of an identifier list, including its length prefix.
// The zero value is not a valid item; items come from Decode.
type Item struct {
	raw []byte
}

// Len returns the record's total length in bytes.
func (it Item) Len() int {
	return len(it.raw)
}

// Tag returns the record's type tag, or 0 if the record is too short to
// carry one.
func (it Item) Tag() byte {
	if len(it.raw) <= layout.TagOffset {
		return 0
	}

	return it.raw[layout.TagOffset]
}

// CLSID returns the identifier embedded in GUID-tagged records (0x1F, 0x2E
// at offset 4; 0x71 at offset 14). Any other tag, or a record too short for
// its layout, yields false.
func (it Item) CLSID() (clsid.CLSID, bool) {
	switch it.Tag() {
	case layout.TagRootGUID, layout.TagExtensionGUID:
		return it.guidAt(layout.GUIDOffset)
	case layout.TagExtendedGUID:
		return it.guidAt(layout.ExtendedGUIDOffset)
	}

	return clsid.CLSID{}, false
}

// SubCLSID returns the identifier embedded in a sub-identifier record
// (tag 0x00, used beneath libraries and user-files roots). These reuse the
// extended GUID layout.
func (it Item) SubCLSID() (clsid.CLSID, bool) {
	if it.Tag() != layout.TagSubIdentifier {
		return clsid.CLSID{}, false
	}

	return it.guidAt(layout.ExtendedGUIDOffset)
}

func (it Item) guidAt(off int) (clsid.CLSID, bool) {
	if len(it.raw) < off+clsid.Size {
		return clsid.CLSID{}, false
	}

	c, err := clsid.FromBytes(it.raw[off : off+clsid.Size])
	if err != nil {
		return clsid.CLSID{}, false
	}

	return c, true
}

// Text returns the record's best displayable text: the embedded file/folder
// name, the drive string, the network share name, or a GUID record's display
// name. Records whose layout cannot be decoded yield the empty string; the
// caller falls back to a generic label.
func (it Item) Text() string {
	switch it.Tag() {
	case layout.TagDrive, layout.TagDriveMapped, layout.TagDriveFixed, layout.TagDriveWithName:
		return it.driveName()

	case layout.TagNetworkShare:
		return it.shareName()

	case layout.TagRootGUID, layout.TagExtensionGUID, layout.TagExtendedGUID:
		c, ok := it.CLSID()
		if !ok {
			return ""
		}
		return clsid.DisplayName(c)
	}

	return it.fileName()
}

// driveName reads the NUL-padded ASCII drive string of drive records.
func (it Item) driveName() string {
	start := layout.DriveNameOffset
	end := start + layout.DriveNameSize

	if len(it.raw) < end {
		return ""
	}

	return asciiToNUL(it.raw[start:end])
}

// shareName reads the NUL-terminated ASCII share name of 0xC3 records,
// running from offset 5 to the record end.
func (it Item) shareName() string {
	if len(it.raw) <= layout.ShareNameOffset {
		return ""
	}

	return asciiToNUL(it.raw[layout.ShareNameOffset:])
}

// fileName decodes the length-delimited name block of file/folder records.
// The layout is inferred from sample data; every validation failure means
// "no name available here", never an error.
func (it Item) fileName() string {
	rec := it.raw
	n := len(rec)

	if n < layout.NameBlockOffsetFieldSize {
		return ""
	}

	// The last two bytes of the record point at the name block.
	off := int(binary.LittleEndian.Uint16(rec[n-layout.NameBlockOffsetFieldSize:]))
	if off%2 != 0 || off < layout.MinNameBlockOffset || off > n-layout.NameBlockTailRoom {
		return ""
	}

	// The block opens with its own length header. When the record extends
	// past the block, a second length field must account for the remainder.
	blockLen := int(binary.LittleEndian.Uint16(rec[off:]))
	if n > off+blockLen {
		if off+4 > n {
			return ""
		}

		extra := int(binary.LittleEndian.Uint16(rec[off+2:]))
		if off+blockLen+extra != n {
			return ""
		}
	}

	// Byte 16 of the block holds the offset at which the name starts.
	if off+layout.NameStartFieldOffset+2 > n {
		return ""
	}

	nameStart := off + int(binary.LittleEndian.Uint16(rec[off+layout.NameStartFieldOffset:]))
	if nameStart > n-2 {
		return ""
	}

	// UTF-16LE, terminated by a zero code unit or the record end.
	units := make([]uint16, 0, (n-nameStart)/2)
	for pos := nameStart; pos+2 <= n; pos += 2 {
		u := binary.LittleEndian.Uint16(rec[pos:])
		if u == 0 {
			break
		}
		units = append(units, u)
	}

	return string(utf16.Decode(units))
}

// asciiToNUL returns b as a string, stopping at the first NUL.
func asciiToNUL(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	return string(b)
}
