package conformance

import (
	"fmt"
	"math"

	"github.com/cyber-coop/varint/compactsize"
)

// knownEncodings pins the wire form of every class boundary.
var knownEncodings = []struct {
	value uint64
	hex   string
}{
	{0, "00"},
	{1, "01"},
	{252, "fc"},
	{253, "fdfd00"},
	{515, "fd0302"},
	{0xffff, "fdffff"},
	{0x1_0000, "fe00000100"},
	{0x1234_5678, "fe78563412"},
	{0xffff_ffff, "feffffffff"},
	{0x1_0000_0000, "ff0000000001000000"},
	{0x0123_4567_89ab_cdef, "ffefcdab8967452301"},
	{math.MaxUint64, "ffffffffffffffffff"},
}

var malformedDecodes = []struct {
	op      string
	hex     string
	wantErr compactsize.ErrorCode
}{
	{OpDecode, "", compactsize.CS_ERR_TRUNCATED},
	{OpDecode, "fd", compactsize.CS_ERR_TRUNCATED},
	{OpDecode, "fd01", compactsize.CS_ERR_TRUNCATED},
	{OpDecode, "fe000000", compactsize.CS_ERR_TRUNCATED},
	{OpDecode, "ff00000000000000", compactsize.CS_ERR_TRUNCATED},
	{OpDecodeCanonical, "fdfc00", compactsize.CS_ERR_NON_MINIMAL},
	{OpDecodeCanonical, "feffff0000", compactsize.CS_ERR_NON_MINIMAL},
	{OpDecodeCanonical, "ffffffffff00000000", compactsize.CS_ERR_NON_MINIMAL},
}

func u64ptr(v uint64) *uint64 { return &v }

// CompactSizeVectors returns the CV-COMPACTSIZE vector set in a stable order.
func CompactSizeVectors() []Vector {
	out := make([]Vector, 0, 4*len(knownEncodings)+len(malformedDecodes)+2)
	next := func(v Vector) {
		v.ID = fmt.Sprintf("CV-CS-%02d", len(out)+1)
		out = append(out, v)
	}

	for _, k := range knownEncodings {
		size := len(k.hex) / 2
		next(Vector{Op: OpEncode, Value: u64ptr(k.value), ExpectOk: true, ExpectHex: k.hex, ExpectSize: size})
		next(Vector{Op: OpSizeOf, Value: u64ptr(k.value), ExpectOk: true, ExpectSize: size})
		next(Vector{Op: OpDecode, Hex: k.hex, ExpectOk: true, ExpectValue: u64ptr(k.value), ExpectConsumed: size})
		next(Vector{Op: OpDecodeCanonical, Hex: k.hex, ExpectOk: true, ExpectValue: u64ptr(k.value), ExpectConsumed: size})
	}

	// Trailing bytes are left for the caller.
	next(Vector{Op: OpDecode, Hex: "fd0302aabb", ExpectOk: true, ExpectValue: u64ptr(515), ExpectConsumed: 3})
	// Non-minimal input is still readable by the lenient decoder.
	next(Vector{Op: OpDecode, Hex: "fdfc00", ExpectOk: true, ExpectValue: u64ptr(252), ExpectConsumed: 3})

	for _, m := range malformedDecodes {
		next(Vector{Op: m.op, Hex: m.hex, ExpectOk: false, ExpectErr: string(m.wantErr)})
	}
	return out
}

func CompactSizeFixture() *Fixture {
	return &Fixture{Gate: GateCompactSize, Vectors: CompactSizeVectors()}
}
