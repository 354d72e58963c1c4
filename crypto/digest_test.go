package crypto

import "testing"

func TestSHA3_256KnownAnswer(t *testing.T) {
	// FIPS 202 SHA3-256 of the empty string.
	const want = "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"
	if got := SHA3_256Hex(nil); got != want {
		t.Fatalf("got=%s want=%s", got, want)
	}
}

func TestSHA3_256StreamingMatchesOneShot(t *testing.T) {
	h := NewSHA3_256()
	_, _ = h.Write([]byte("CV-"))
	_, _ = h.Write([]byte("COMPACTSIZE"))
	var got [32]byte
	copy(got[:], h.Sum(nil))
	if got != SHA3_256([]byte("CV-COMPACTSIZE")) {
		t.Fatalf("streaming digest mismatch")
	}
}
