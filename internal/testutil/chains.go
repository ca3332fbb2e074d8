package testutil

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/Norgate-AV/ocsview/internal/clsid"
)

// Chain concatenates records and appends the zero-length terminator.
func Chain(records ...[]byte) []byte {
	var out []byte
	for _, r := range records {
		out = append(out, r...)
	}

	return append(out, 0, 0)
}

// GUIDRecord builds a 20-byte GUID record: length, tag, one filler byte,
// then the CLSID at offset 4.
func GUIDRecord(tag byte, c clsid.CLSID) []byte {
	rec := make([]byte, 20)
	binary.LittleEndian.PutUint16(rec[0:2], 20)
	rec[2] = tag
	copy(rec[4:20], c.Bytes())

	return rec
}

// ExtendedGUIDRecord builds a 30-byte record with the CLSID at offset 14,
// as used by 0x71 and sub-identifier (tag 0x00) records.
func ExtendedGUIDRecord(tag byte, c clsid.CLSID) []byte {
	rec := make([]byte, 30)
	binary.LittleEndian.PutUint16(rec[0:2], 30)
	rec[2] = tag
	copy(rec[14:30], c.Bytes())

	return rec
}

// DriveRecord builds a 23-byte drive record: length, tag, then the drive
// string NUL-padded to 20 bytes at offset 3.
func DriveRecord(tag byte, name string) []byte {
	rec := make([]byte, 23)
	binary.LittleEndian.PutUint16(rec[0:2], 23)
	rec[2] = tag
	copy(rec[3:23], name)

	return rec
}

// ShareRecord builds a network share record (tag 0xC3) with the NUL-terminated
// ASCII share name from offset 5 to the record end.
func ShareRecord(name string) []byte {
	length := 5 + len(name) + 1
	rec := make([]byte, length)
	binary.LittleEndian.PutUint16(rec[0:2], uint16(length))
	rec[2] = 0xC3
	copy(rec[5:], name)

	return rec
}

// FileRecord builds a file/folder record whose UTF-16 name sits in a
// trailing name block: the last two bytes of the record point at the block,
// byte 16 of the block points at the name, and the name is zero-terminated.
func FileRecord(tag byte, name string) []byte {
	const (
		blockOff  = 16 // where the name block starts
		nameStart = 18 // block-relative offset of the name
	)

	units := utf16.Encode([]rune(name))
	nameBytes := len(units) * 2

	// block offset + name start + name + terminator + trailing offset field
	length := blockOff + nameStart + nameBytes + 2 + 2
	rec := make([]byte, length)

	binary.LittleEndian.PutUint16(rec[0:2], uint16(length))
	rec[2] = tag

	// Name block: its length runs to the record end, so no extra field is
	// needed for the totals to reconcile.
	binary.LittleEndian.PutUint16(rec[blockOff:], uint16(length-blockOff))
	binary.LittleEndian.PutUint16(rec[blockOff+16:], nameStart)

	pos := blockOff + nameStart
	for _, u := range units {
		binary.LittleEndian.PutUint16(rec[pos:], u)
		pos += 2
	}

	// Zero terminator is already in place; the final two bytes locate the block.
	binary.LittleEndian.PutUint16(rec[length-2:], blockOff)

	return rec
}
