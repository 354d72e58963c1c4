// Package compactsize implements the CompactSize variable-length unsigned
// integer encoding used for counts and length prefixes in the transaction
// and block wire formats.
//
//	0x00..0xfc                 value itself, 1 byte
//	0xfd..0xffff               0xfd + u16le, 3 bytes
//	0x10000..0xffffffff        0xfe + u32le, 5 bytes
//	0x100000000..2^64-1        0xff + u64le, 9 bytes
package compactsize

import (
	"encoding/binary"
	"fmt"
	"math"
)

// MaxSize is the length of the longest encoding.
const MaxSize = 9

// CompactSize is a magnitude carried in CompactSize form on the wire.
type CompactSize uint64

// sizeClass is one row of the encoding table. Bounds are inclusive.
type sizeClass struct {
	name  string
	tag   byte
	width int // payload bytes after the tag
	min   uint64
	max   uint64
}

func (c sizeClass) size() int { return 1 + c.width }

var (
	classU8  = sizeClass{name: "u8", tag: 0x00, width: 0, min: 0, max: 0xfc}
	classU16 = sizeClass{name: "u16", tag: 0xfd, width: 2, min: 0xfd, max: math.MaxUint16}
	classU32 = sizeClass{name: "u32", tag: 0xfe, width: 4, min: math.MaxUint16 + 1, max: math.MaxUint32}
	classU64 = sizeClass{name: "u64", tag: 0xff, width: 8, min: math.MaxUint32 + 1, max: math.MaxUint64}
)

// classify is total over [0, 2^64-1].
func classify(v uint64) sizeClass {
	switch {
	case v <= classU8.max:
		return classU8
	case v <= classU16.max:
		return classU16
	case v <= classU32.max:
		return classU32
	default:
		return classU64
	}
}

func classForTag(tag byte) sizeClass {
	switch tag {
	case classU16.tag:
		return classU16
	case classU32.tag:
		return classU32
	case classU64.tag:
		return classU64
	default:
		return classU8
	}
}

// SizeOf returns the canonical encoded length of v: 1, 3, 5 or 9.
func SizeOf(v uint64) int {
	return classify(v).size()
}

func (c CompactSize) Size() int {
	return SizeOf(uint64(c))
}

func (c CompactSize) Encode() []byte {
	return Encode(uint64(c))
}

// Encode returns the canonical encoding of v.
func Encode(v uint64) []byte {
	return Append(make([]byte, 0, SizeOf(v)), v)
}

// Append appends the canonical encoding of v to dst.
func Append(dst []byte, v uint64) []byte {
	c := classify(v)
	switch c.width {
	case 0:
		return append(dst, byte(v))
	case 2:
		dst = append(dst, c.tag)
		return appendU16le(dst, uint16(v))
	case 4:
		dst = append(dst, c.tag)
		return appendU32le(dst, uint32(v))
	default:
		dst = append(dst, c.tag)
		return appendU64le(dst, v)
	}
}

// Decode reads one CompactSize from the front of b and returns the value and
// the number of bytes consumed. Bytes past the encoding are ignored.
// Non-minimal encodings are accepted; see DecodeCanonical.
func Decode(b []byte) (CompactSize, int, error) {
	return decode(b, false)
}

// DecodeCanonical is Decode, but rejects any encoding longer than the
// minimal one for its value with CS_ERR_NON_MINIMAL.
func DecodeCanonical(b []byte) (CompactSize, int, error) {
	return decode(b, true)
}

func decode(b []byte, canonical bool) (CompactSize, int, error) {
	if len(b) < 1 {
		return 0, 0, cserr(CS_ERR_TRUNCATED, "empty input")
	}
	c := classForTag(b[0])
	if c.width == 0 {
		return CompactSize(b[0]), 1, nil
	}
	if len(b) < c.size() {
		return 0, 0, cserr(CS_ERR_TRUNCATED, fmt.Sprintf("%s needs %d bytes, have %d", c.name, c.size(), len(b)))
	}
	var n uint64
	switch c.width {
	case 2:
		n = uint64(binary.LittleEndian.Uint16(b[1:3]))
	case 4:
		n = uint64(binary.LittleEndian.Uint32(b[1:5]))
	default:
		n = binary.LittleEndian.Uint64(b[1:9])
	}
	if canonical && classify(n) != c {
		return 0, 0, cserr(CS_ERR_NON_MINIMAL, fmt.Sprintf("%s encoding of %d", c.name, n))
	}
	return CompactSize(n), c.size(), nil
}
