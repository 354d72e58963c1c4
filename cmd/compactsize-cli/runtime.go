package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cyber-coop/varint/conformance"
)

// Request is one codec operation: op is encode, decode, decode_canonical or
// size_of. encode and size_of read value; the decoders read hex.
type Request struct {
	Op    string  `json:"op"`
	Value *uint64 `json:"value,omitempty"`
	Hex   string  `json:"hex,omitempty"`
}

type Response struct {
	Ok       bool    `json:"ok"`
	Err      string  `json:"err,omitempty"`
	Hex      string  `json:"hex,omitempty"`
	Value    *uint64 `json:"value,omitempty"`
	Consumed int     `json:"consumed,omitempty"`
	Size     int     `json:"size,omitempty"`
}

func writeResp(w io.Writer, resp Response) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}

func handle(req Request) Response {
	r := conformance.RunVector(conformance.Vector{Op: req.Op, Value: req.Value, Hex: req.Hex})
	if !r.Ok {
		return Response{Ok: false, Err: r.Err}
	}
	resp := Response{Ok: true, Hex: r.Hex, Size: r.Size}
	switch req.Op {
	case conformance.OpDecode, conformance.OpDecodeCanonical:
		v := r.Value
		resp.Value = &v
		resp.Consumed = r.Consumed
	}
	return resp
}

func runFromStdin() {
	var req Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeResp(os.Stdout, Response{Ok: false, Err: fmt.Sprintf("bad request: %v", err)})
		return
	}
	writeResp(os.Stdout, handle(req))
}
