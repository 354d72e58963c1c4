package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/cyber-coop/varint/conformance"
)

type traceHeader struct {
	Type                  string `json:"type"`
	SchemaVersion         int    `json:"schema_version"`
	GeneratedAtUTC        string `json:"generated_at_utc"`
	RepoCommit            string `json:"repo_commit"`
	GoVersion             string `json:"go_version"`
	FixturesDigestSHA3256 string `json:"fixtures_digest_sha3_256"`
}

type traceEntry struct {
	Type     string         `json:"type"`
	Gate     string         `json:"gate"`
	VectorID string         `json:"vector_id"`
	Op       string         `json:"op"`
	Ok       bool           `json:"ok"`
	Err      string         `json:"err"`
	Match    bool           `json:"match"`
	Inputs   map[string]any `json:"inputs"`
	Outputs  map[string]any `json:"outputs"`
}

func mustGitCommit() string {
	out, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		return "UNKNOWN"
	}
	return strings.TrimSpace(string(out))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func vectorInputs(v conformance.Vector) map[string]any {
	in := map[string]any{}
	if v.Value != nil {
		in["value"] = *v.Value
	}
	if v.Op == conformance.OpDecode || v.Op == conformance.OpDecodeCanonical {
		in["hex"] = v.Hex
	}
	return in
}

func resultOutputs(r conformance.Result) map[string]any {
	return map[string]any{
		"hex":      r.Hex,
		"value":    r.Value,
		"consumed": r.Consumed,
		"size":     r.Size,
	}
}

// writeTrace runs every fixture under fixturesDir and writes the JSONL trace
// to w. It returns how many vectors disagreed with their expectations.
func writeTrace(w io.Writer, fixturesDir string, hdr traceHeader, logger *slog.Logger) (int, error) {
	digest, err := conformance.DigestFixtures(fixturesDir)
	if err != nil {
		return 0, fmt.Errorf("fixtures digest: %w", err)
	}
	hdr.Type = "header"
	hdr.SchemaVersion = 1
	hdr.FixturesDigestSHA3256 = digest
	if err := writeJSON(w, hdr); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	names, err := conformance.ListFixtureNames(fixturesDir)
	if err != nil {
		return 0, fmt.Errorf("list fixtures: %w", err)
	}

	mismatches := 0
	for _, name := range names {
		fx, err := conformance.LoadFixture(fixturesDir, name)
		if err != nil {
			return mismatches, err
		}
		if fx.Gate != conformance.GateCompactSize {
			logger.Warn("skipping fixture with unknown gate", "file", name, "gate", fx.Gate)
			continue
		}
		for _, v := range fx.Vectors {
			r := conformance.RunVector(v)
			checkErr := conformance.Check(v, r)
			if checkErr != nil {
				mismatches++
				logger.Error("vector mismatch", "file", name, "err", checkErr)
			}
			e := traceEntry{
				Type:     "entry",
				Gate:     fx.Gate,
				VectorID: v.ID,
				Op:       v.Op,
				Ok:       r.Ok,
				Err:      r.Err,
				Match:    checkErr == nil,
				Inputs:   vectorInputs(v),
				Outputs:  resultOutputs(r),
			}
			if err := writeJSON(w, e); err != nil {
				return mismatches, fmt.Errorf("write entry: %w", err)
			}
		}
		logger.Debug("fixture traced", "file", name, "vectors", len(fx.Vectors))
	}
	return mismatches, nil
}

func main() {
	defaults := conformance.DefaultConfig()
	cfg := defaults
	var outPath string
	flag.StringVar(&cfg.FixturesDir, "fixtures-dir", defaults.FixturesDir, "path to conformance fixtures dir")
	flag.StringVar(&cfg.LogLevel, "log-level", defaults.LogLevel, "log level: debug|info|warn|error")
	flag.StringVar(&outPath, "out", "formal/traces/go_trace_v1.jsonl", "output JSONL path")
	flag.Parse()

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := conformance.ValidateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(2)
	}
	logger := conformance.NewLogger(cfg, os.Stderr)

	if err := os.MkdirAll(filepath.Dir(outPath), 0o750); err != nil {
		logger.Error("mkdir", "err", err)
		os.Exit(2)
	}

	var traceBuf bytes.Buffer
	hdr := traceHeader{
		GeneratedAtUTC: time.Now().UTC().Format(time.RFC3339Nano),
		RepoCommit:     mustGitCommit(),
		GoVersion:      runtime.Version(),
	}
	mismatches, err := writeTrace(&traceBuf, cfg.FixturesDir, hdr, logger)
	if err != nil {
		logger.Error("trace", "err", err)
		os.Exit(2)
	}
	if err := os.WriteFile(outPath, traceBuf.Bytes(), 0o600); err != nil {
		logger.Error("write trace", "path", outPath, "err", err)
		os.Exit(2)
	}
	logger.Info("wrote trace", "path", outPath, "mismatches", mismatches)
	if mismatches > 0 {
		os.Exit(1)
	}
}
