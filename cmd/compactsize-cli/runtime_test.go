package main

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"os"
	"strings"
	"testing"
	"time"
)

func runRawJSON(t *testing.T, raw []byte, entry func()) Response {
	t.Helper()

	oldIn, oldOut := os.Stdin, os.Stdout
	rIn, wIn, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stdin: %v", err)
	}
	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stdout: %v", err)
	}
	os.Stdin, os.Stdout = rIn, wOut
	defer func() {
		os.Stdin, os.Stdout = oldIn, oldOut
		_ = rIn.Close()
		_ = rOut.Close()
	}()

	if _, err := wIn.Write(raw); err != nil {
		t.Fatalf("write stdin: %v", err)
	}
	_ = wIn.Close()

	outCh := make(chan []byte, 1)
	go func() {
		b, _ := io.ReadAll(rOut)
		outCh <- b
	}()

	entry()
	_ = wOut.Close()

	var outBytes []byte
	select {
	case outBytes = <-outCh:
	case <-time.After(5 * time.Second):
		t.Fatalf("timeout waiting for CLI output")
	}

	var resp Response
	if err := json.Unmarshal(bytes.TrimSpace(outBytes), &resp); err != nil {
		t.Fatalf("unmarshal resp: %v; raw=%q", err, string(outBytes))
	}
	return resp
}

func runRequest(t *testing.T, req Request) Response {
	t.Helper()

	raw, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return runRawJSON(t, raw, runFromStdin)
}

func u64(v uint64) *uint64 { return &v }

func TestCompactSizeCLI_RunFromStdin_CoversOps(t *testing.T) {
	t.Run("encode", func(t *testing.T) {
		resp := runRequest(t, Request{Op: "encode", Value: u64(515)})
		if !resp.Ok || resp.Hex != "fd0302" || resp.Size != 3 {
			t.Fatalf("unexpected resp: %+v", resp)
		}
	})
	t.Run("encode_max", func(t *testing.T) {
		resp := runRequest(t, Request{Op: "encode", Value: u64(math.MaxUint64)})
		if !resp.Ok || resp.Hex != "ffffffffffffffffff" || resp.Size != 9 {
			t.Fatalf("unexpected resp: %+v", resp)
		}
	})
	t.Run("size_of", func(t *testing.T) {
		resp := runRequest(t, Request{Op: "size_of", Value: u64(0xffff_ffff)})
		if !resp.Ok || resp.Size != 5 || resp.Hex != "" {
			t.Fatalf("unexpected resp: %+v", resp)
		}
	})
	t.Run("decode", func(t *testing.T) {
		resp := runRequest(t, Request{Op: "decode", Hex: "fd0302"})
		if !resp.Ok || resp.Value == nil || *resp.Value != 515 || resp.Consumed != 3 {
			t.Fatalf("unexpected resp: %+v", resp)
		}
	})
	t.Run("decode_zero", func(t *testing.T) {
		resp := runRequest(t, Request{Op: "decode", Hex: "00"})
		if !resp.Ok || resp.Value == nil || *resp.Value != 0 || resp.Consumed != 1 {
			t.Fatalf("unexpected resp: %+v", resp)
		}
	})
	t.Run("decode_canonical", func(t *testing.T) {
		resp := runRequest(t, Request{Op: "decode_canonical", Hex: "fe00000100"})
		if !resp.Ok || resp.Value == nil || *resp.Value != 0x1_0000 || resp.Consumed != 5 {
			t.Fatalf("unexpected resp: %+v", resp)
		}
	})
}

func TestCompactSizeCLI_RunFromStdin_CoversErrorPaths(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		want string
	}{
		{"truncated", Request{Op: "decode", Hex: "fd01"}, "CS_ERR_TRUNCATED"},
		{"non_minimal", Request{Op: "decode_canonical", Hex: "fdfc00"}, "CS_ERR_NON_MINIMAL"},
		{"bad_hex", Request{Op: "decode", Hex: "xyz"}, "bad hex"},
		{"missing_value", Request{Op: "encode"}, "bad value"},
		{"unknown_op", Request{Op: "parse_tx"}, "unknown op"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := runRequest(t, tc.req)
			if resp.Ok || resp.Err != tc.want {
				t.Fatalf("expected err=%q, got: %+v", tc.want, resp)
			}
		})
	}
}

func TestCompactSizeCLI_BadRequest(t *testing.T) {
	resp := runRawJSON(t, []byte("{"), runFromStdin)
	if resp.Ok || !strings.HasPrefix(resp.Err, "bad request") {
		t.Fatalf("unexpected resp: %+v", resp)
	}
}

func TestMainCallsRunFromStdin(t *testing.T) {
	raw, err := json.Marshal(Request{Op: "size_of", Value: u64(253)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	resp := runRawJSON(t, raw, main)
	if !resp.Ok || resp.Size != 3 {
		t.Fatalf("unexpected resp: %+v", resp)
	}
}
