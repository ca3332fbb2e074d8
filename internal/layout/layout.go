// Package layout defines binary layout constants for shell item identifier
// list records. The format is reverse-engineered from captured sample data;
// the bounds below are the observed contract, not formal documentation.
package layout

const (
	// Record framing

	// LengthSize is the size of the little-endian length prefix that starts
	// every record. The length includes these two bytes; a length of zero
	// terminates the chain.
	LengthSize = 2

	// TagOffset is the position of the one-byte type tag within a record.
	// A record shorter than TagOffset+1 bytes carries no tag.
	TagOffset = 2

	// Type tags

	// TagRootGUID and TagExtensionGUID mark records holding a CLSID at
	// GUIDOffset.
	TagRootGUID      = 0x1F
	TagExtensionGUID = 0x2E

	// TagExtendedGUID marks a non-standard record holding a CLSID at
	// ExtendedGUIDOffset. Observed empirically; not part of any published
	// layout.
	TagExtendedGUID = 0x71

	// TagSubIdentifier marks the sub-identifier records that follow a
	// libraries or user-files root. They reuse the extended GUID layout.
	TagSubIdentifier = 0x00

	// TagNetworkShare marks a record holding a NUL-terminated ASCII share
	// name starting at ShareNameOffset.
	TagNetworkShare = 0xC3

	// Drive tag variants. All hold a NUL-padded ASCII drive string of
	// DriveNameSize bytes at DriveNameOffset.
	TagDrive         = 0x23
	TagDriveMapped   = 0x25
	TagDriveFixed    = 0x29
	TagDriveWithName = 0x2F

	// Field positions

	// GUIDOffset is where the 16-byte CLSID sits in 0x1F/0x2E records.
	GUIDOffset = 4

	// ExtendedGUIDOffset is where the 16-byte CLSID sits in 0x71 and
	// sub-identifier records.
	ExtendedGUIDOffset = 14

	// DriveNameOffset and DriveNameSize bound the ASCII drive string in
	// drive records; decoding stops at the first NUL.
	DriveNameOffset = 3
	DriveNameSize   = 20

	// ShareNameOffset is where the ASCII share name starts in 0xC3 records;
	// it runs to the first NUL or the record end.
	ShareNameOffset = 5

	// File/folder name block

	// NameBlockOffsetFieldSize is the size of the trailing field at the very
	// end of a file/folder record that points at the name block.
	NameBlockOffsetFieldSize = 2

	// MinNameBlockOffset is the smallest valid name block offset. The offset
	// must also be even and leave at least NameBlockTailRoom bytes of record
	// behind it.
	MinNameBlockOffset = 15

	// NameBlockTailRoom is the minimum number of bytes that must remain in
	// the record at and after the name block offset.
	NameBlockTailRoom = 24

	// NameStartFieldOffset is the position within the name block of the
	// 16-bit offset at which the UTF-16 name itself begins.
	NameStartFieldOffset = 16
)
