package conformance

import (
	"encoding/hex"
	"fmt"

	"github.com/cyber-coop/varint/compactsize"
)

const (
	OpEncode          = "encode"
	OpDecode          = "decode"
	OpDecodeCanonical = "decode_canonical"
	OpSizeOf          = "size_of"
)

type Result struct {
	Ok       bool
	Err      string
	Hex      string
	Value    uint64
	Consumed int
	Size     int
}

// ErrString maps codec errors to their code, anything else to its text.
func ErrString(err error) string {
	if err == nil {
		return ""
	}
	if code, ok := compactsize.ErrorCodeOf(err); ok {
		return string(code)
	}
	return err.Error()
}

func RunVector(v Vector) Result {
	switch v.Op {
	case OpEncode:
		if v.Value == nil {
			return Result{Err: "bad value"}
		}
		enc := compactsize.Encode(*v.Value)
		return Result{Ok: true, Hex: hex.EncodeToString(enc), Size: len(enc)}

	case OpSizeOf:
		if v.Value == nil {
			return Result{Err: "bad value"}
		}
		return Result{Ok: true, Size: compactsize.SizeOf(*v.Value)}

	case OpDecode, OpDecodeCanonical:
		b, err := hex.DecodeString(v.Hex)
		if err != nil {
			return Result{Err: "bad hex"}
		}
		decode := compactsize.Decode
		if v.Op == OpDecodeCanonical {
			decode = compactsize.DecodeCanonical
		}
		got, n, err := decode(b)
		if err != nil {
			return Result{Err: ErrString(err)}
		}
		return Result{Ok: true, Value: uint64(got), Consumed: n}

	default:
		return Result{Err: "unknown op"}
	}
}

// Check compares r against the expectations carried by v.
func Check(v Vector, r Result) error {
	if r.Ok != v.ExpectOk {
		return fmt.Errorf("%s: ok=%v want %v (err=%q)", v.ID, r.Ok, v.ExpectOk, r.Err)
	}
	if !r.Ok {
		if v.ExpectErr != "" && r.Err != v.ExpectErr {
			return fmt.Errorf("%s: err=%q want %q", v.ID, r.Err, v.ExpectErr)
		}
		return nil
	}
	if v.ExpectHex != "" && r.Hex != v.ExpectHex {
		return fmt.Errorf("%s: hex=%s want %s", v.ID, r.Hex, v.ExpectHex)
	}
	if v.ExpectValue != nil && r.Value != *v.ExpectValue {
		return fmt.Errorf("%s: value=%d want %d", v.ID, r.Value, *v.ExpectValue)
	}
	if v.ExpectConsumed != 0 && r.Consumed != v.ExpectConsumed {
		return fmt.Errorf("%s: consumed=%d want %d", v.ID, r.Consumed, v.ExpectConsumed)
	}
	if v.ExpectSize != 0 && r.Size != v.ExpectSize {
		return fmt.Errorf("%s: size=%d want %d", v.ID, r.Size, v.ExpectSize)
	}
	return nil
}
