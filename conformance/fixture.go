package conformance

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cyber-coop/varint/crypto"
)

const GateCompactSize = "CV-COMPACTSIZE"

const FixtureFileCompactSize = GateCompactSize + ".json"

type Fixture struct {
	Gate    string   `json:"gate"`
	Vectors []Vector `json:"vectors"`
}

// Vector is one conformance case. Value feeds encode/size_of; Hex feeds
// decode/decode_canonical. Zero-valued expectations are not checked, except
// ExpectOk.
type Vector struct {
	ID             string  `json:"id"`
	Op             string  `json:"op"`
	Value          *uint64 `json:"value,omitempty"`
	Hex            string  `json:"hex,omitempty"`
	ExpectOk       bool    `json:"expect_ok"`
	ExpectErr      string  `json:"expect_err,omitempty"`
	ExpectHex      string  `json:"expect_hex,omitempty"`
	ExpectValue    *uint64 `json:"expect_value,omitempty"`
	ExpectConsumed int     `json:"expect_consumed,omitempty"`
	ExpectSize     int     `json:"expect_size,omitempty"`
}

// ListFixtureNames returns the CV-*.json files in dir, sorted.
func ListFixtureNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := filepath.Match("CV-*.json", entry.Name())
		if err != nil {
			return nil, err
		}
		if matched {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func ReadFixtureFile(dir, name string) ([]byte, error) {
	return readFileFromDir(dir, name)
}

func LoadFixture(dir, name string) (*Fixture, error) {
	b, err := ReadFixtureFile(dir, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	var f Fixture
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return &f, nil
}

// WriteFixture writes f as indented JSON with a trailing newline, owner-only.
func WriteFixture(path string, f *Fixture) error {
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// DigestFixtures hashes every fixture in dir as name\0content\0, in
// ListFixtureNames order, and returns the SHA3-256 hex digest.
func DigestFixtures(dir string) (string, error) {
	names, err := ListFixtureNames(dir)
	if err != nil {
		return "", err
	}
	sum := crypto.NewSHA3_256()
	for _, name := range names {
		b, err := ReadFixtureFile(dir, name)
		if err != nil {
			return "", err
		}
		_, _ = sum.Write([]byte(name))
		_, _ = sum.Write([]byte{0})
		_, _ = sum.Write(b)
		_, _ = sum.Write([]byte{0})
	}
	return hex.EncodeToString(sum.Sum(nil)), nil
}
