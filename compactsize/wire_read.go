package compactsize

import "fmt"

// Read decodes a CompactSize at b[*off:] and advances *off past it.
// On error *off is left unchanged.
func Read(b []byte, off *int) (uint64, int, error) {
	return read(b, off, false)
}

// ReadCanonical is Read with DecodeCanonical semantics.
func ReadCanonical(b []byte, off *int) (uint64, int, error) {
	return read(b, off, true)
}

func read(b []byte, off *int, canonical bool) (uint64, int, error) {
	if off == nil {
		return 0, 0, cserr(CS_ERR_INVALID_RANGE, "nil offset")
	}
	if *off < 0 {
		return 0, 0, cserr(CS_ERR_INVALID_RANGE, fmt.Sprintf("negative offset %d", *off))
	}
	if *off > len(b) {
		return 0, 0, cserr(CS_ERR_TRUNCATED, fmt.Sprintf("offset %d past end %d", *off, len(b)))
	}
	v, n, err := decode(b[*off:], canonical)
	if err != nil {
		return 0, 0, err
	}
	*off += n
	return uint64(v), n, nil
}
