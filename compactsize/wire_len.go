package compactsize

import "fmt"

// AppendLen appends n as a CompactSize length prefix. Lengths held in an
// int can be negative; those are rejected instead of wrapping.
func AppendLen(dst []byte, n int) ([]byte, error) {
	if n < 0 {
		return dst, cserr(CS_ERR_INVALID_RANGE, fmt.Sprintf("negative length %d", n))
	}
	return Append(dst, uint64(n)), nil
}

func EncodeLen(n int) ([]byte, error) {
	return AppendLen(nil, n)
}
