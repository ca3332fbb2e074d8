// Package clsid implements the 128-bit class identifier value type used by
// shell namespace roots, with its two external representations: the canonical
// braced-hex text form and the 16-byte little-endian binary form.
package clsid

import (
	"encoding/binary"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Size is the length of the binary representation in bytes.
const Size = 16

// ErrFormat is returned when text or bytes do not form a valid CLSID.
var ErrFormat = errors.New("malformed CLSID")

// bracedPattern matches the canonical text form, e.g.
// {20D04FE0-3AEA-1069-A2D8-08002B30309D}. Case-insensitive on input.
var bracedPattern = regexp.MustCompile(
	`^\{([0-9A-Fa-f]{8})-([0-9A-Fa-f]{4})-([0-9A-Fa-f]{4})-([0-9A-Fa-f]{4})-([0-9A-Fa-f]{12})\}$`,
)

// CLSID is an immutable 128-bit class identifier. The first three fields are
// numeric (little-endian when sourced from binary); the tail is kept verbatim.
// CLSID is comparable: two values are equal exactly when all fields match.
type CLSID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// Parse decodes the canonical braced-hyphenated-hex text form.
// Input case is insignificant; String always renders uppercase.
func Parse(text string) (CLSID, error) {
	m := bracedPattern.FindStringSubmatch(text)
	if m == nil {
		return CLSID{}, fmt.Errorf("%w: %q is not a braced GUID", ErrFormat, text)
	}

	d1, err := strconv.ParseUint(m[1], 16, 32)
	if err != nil {
		return CLSID{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	d2, err := strconv.ParseUint(m[2], 16, 16)
	if err != nil {
		return CLSID{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	d3, err := strconv.ParseUint(m[3], 16, 16)
	if err != nil {
		return CLSID{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	c := CLSID{
		Data1: uint32(d1),
		Data2: uint16(d2),
		Data3: uint16(d3),
	}

	// The last two text groups are a byte-for-byte copy of the tail.
	tail := m[4] + m[5]
	for i := 0; i < 8; i++ {
		b, err := strconv.ParseUint(tail[i*2:i*2+2], 16, 8)
		if err != nil {
			return CLSID{}, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		c.Data4[i] = byte(b)
	}

	return c, nil
}

// MustParse is like Parse but panics on error. It is intended for the
// package-level well-known constant tables only.
func MustParse(text string) CLSID {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return c
}

// FromBytes decodes the 16-byte binary representation: the first three fields
// little-endian, the remaining 8 bytes verbatim.
func FromBytes(b []byte) (CLSID, error) {
	if len(b) != Size {
		return CLSID{}, fmt.Errorf("%w: need %d bytes, got %d", ErrFormat, Size, len(b))
	}

	c := CLSID{
		Data1: binary.LittleEndian.Uint32(b[0:4]),
		Data2: binary.LittleEndian.Uint16(b[4:6]),
		Data3: binary.LittleEndian.Uint16(b[6:8]),
	}
	copy(c.Data4[:], b[8:16])

	return c, nil
}

// Bytes returns the 16-byte binary representation. FromBytes(c.Bytes()) == c.
func (c CLSID) Bytes() []byte {
	b := make([]byte, Size)
	binary.LittleEndian.PutUint32(b[0:4], c.Data1)
	binary.LittleEndian.PutUint16(b[4:6], c.Data2)
	binary.LittleEndian.PutUint16(b[6:8], c.Data3)
	copy(b[8:16], c.Data4[:])

	return b
}

// String renders the canonical braced text form, always uppercase.
func (c CLSID) String() string {
	return fmt.Sprintf("{%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X}",
		c.Data1, c.Data2, c.Data3,
		c.Data4[0], c.Data4[1],
		c.Data4[2], c.Data4[3], c.Data4[4], c.Data4[5], c.Data4[6], c.Data4[7],
	)
}
