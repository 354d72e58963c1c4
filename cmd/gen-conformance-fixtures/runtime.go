package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cyber-coop/varint/conformance"
)

// generate writes the CV-COMPACTSIZE fixture into cfg.FixturesDir. Every
// vector is executed against the codec first so a stale expectation never
// reaches disk.
func generate(cfg conformance.Config, logger *slog.Logger) error {
	f := conformance.CompactSizeFixture()
	for _, v := range f.Vectors {
		if err := conformance.Check(v, conformance.RunVector(v)); err != nil {
			return fmt.Errorf("self-check: %w", err)
		}
		logger.Debug("vector ok", "id", v.ID, "op", v.Op)
	}

	if err := os.MkdirAll(cfg.FixturesDir, 0o750); err != nil {
		return fmt.Errorf("mkdir %s: %w", cfg.FixturesDir, err)
	}
	path := filepath.Join(cfg.FixturesDir, conformance.FixtureFileCompactSize)
	if err := conformance.WriteFixture(path, f); err != nil {
		return err
	}

	digest, err := conformance.DigestFixtures(cfg.FixturesDir)
	if err != nil {
		return fmt.Errorf("fixtures digest: %w", err)
	}
	logger.Info("wrote fixture",
		"path", path,
		"gate", f.Gate,
		"vectors", len(f.Vectors),
		"fixtures_digest_sha3_256", digest,
	)
	return nil
}
