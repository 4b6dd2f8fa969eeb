// Package persistence writes run artifacts under the configured results
// directory.  Writes are all-or-nothing: content is staged to a temp file and
// renamed into place, so a failed run leaves no partial CSV behind.
package persistence

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/SynthScreen/internal/infrastructure/monitoring/logging"
	apperrors "github.com/turtacn/SynthScreen/pkg/errors"
	"github.com/turtacn/SynthScreen/pkg/types/screening"
)

// timestampLayout is the artifact timestamp format: YYYYMMDDHHMMSS.
const timestampLayout = "20060102150405"

// maxCollisionRetries bounds the run-ID-suffix fallback when the canonical
// artifact name is taken.
const maxCollisionRetries = 3

// CSVSink persists result tables as CSV files named
// <label>_<YYYYMMDDHHMMSS>_<filter>.csv.  Two runs started within the same
// second race for the same canonical name; the loser retries with a short
// run-ID suffix so concurrent invocations never overwrite each other.
type CSVSink struct {
	dir    string
	now    func() time.Time
	logger logging.Logger
}

// NewCSVSink returns a sink writing under dir, creating it on first use.
func NewCSVSink(dir string, logger logging.Logger) *CSVSink {
	if logger == nil {
		logger = logging.Default()
	}
	return &CSVSink{dir: dir, now: time.Now, logger: logger.Named("persistence")}
}

// WithClock overrides the timestamp source.  Test hook.
func (s *CSVSink) WithClock(now func() time.Time) *CSVSink {
	s.now = now
	return s
}

// Write persists the table and returns the artifact path.
func (s *CSVSink) Write(_ context.Context, req screening.Artifact) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeResultsDir,
			"results directory cannot be created").WithDetailf("dir %q", s.dir)
	}

	final, err := s.reserveName(req.Label, req.Filter)
	if err != nil {
		return "", err
	}

	if err := s.stageAndRename(final, req); err != nil {
		// Leave no trace of the failed run.
		_ = os.Remove(final)
		return "", err
	}

	s.logger.Info("result artifact written",
		logging.String("path", final),
		logging.Int("rows", len(req.Rows)))
	return final, nil
}

// reserveName claims an artifact file name with O_EXCL.  The canonical
// timestamped name is tried first; collisions fall back to an 8-hex-char
// run-ID suffix.
func (s *CSVSink) reserveName(label, filter string) (string, error) {
	timestamp := s.now().Format(timestampLayout)
	candidates := make([]string, 0, maxCollisionRetries+1)
	candidates = append(candidates,
		fmt.Sprintf("%s_%s_%s.csv", label, timestamp, filter))
	for i := 0; i < maxCollisionRetries; i++ {
		suffix := uuid.NewString()[:8]
		candidates = append(candidates,
			fmt.Sprintf("%s_%s_%s_%s.csv", label, timestamp, filter, suffix))
	}

	for _, name := range candidates {
		path := filepath.Join(s.dir, name)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			f.Close()
			return path, nil
		}
		if !os.IsExist(err) {
			return "", apperrors.Wrap(err, apperrors.ErrCodeArtifactWrite,
				"result artifact cannot be created").WithDetailf("path %q", path)
		}
		s.logger.Debug("artifact name collision, retrying with suffix",
			logging.String("path", path))
	}
	return "", apperrors.New(apperrors.ErrCodeArtifactCollision,
		"result artifact name collision could not be resolved").
		WithDetailf("label=%s filter=%s timestamp=%s", label, filter, timestamp)
}

// stageAndRename writes the CSV to a temp file in the same directory and
// renames it over the reserved path.
func (s *CSVSink) stageAndRename(final string, req screening.Artifact) error {
	tmp, err := os.CreateTemp(s.dir, ".staging-*.csv")
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeArtifactWrite,
			"staging file cannot be created").WithDetailf("dir %q", s.dir)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	w := csv.NewWriter(tmp)
	if err := w.Write(req.Header); err != nil {
		tmp.Close()
		return apperrors.Wrap(err, apperrors.ErrCodeArtifactWrite, "failed to write header")
	}
	if err := w.WriteAll(req.Rows); err != nil {
		tmp.Close()
		return apperrors.Wrap(err, apperrors.ErrCodeArtifactWrite, "failed to write rows")
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return apperrors.Wrap(err, apperrors.ErrCodeArtifactWrite, "failed to flush artifact")
	}
	if err := tmp.Close(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeArtifactWrite, "failed to close staging file")
	}

	if err := os.Rename(tmpPath, final); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeArtifactWrite,
			"failed to move artifact into place").WithDetailf("path %q", final)
	}
	return nil
}
