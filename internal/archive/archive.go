// Package archive writes scored run output to cold storage as
// zstd-compressed JSON lines, one file per run. Archives exist for offline
// model re-fitting: the tuning file's curve constants are validated against
// archived scores and catch outcomes.
package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"reelcaster/internal/types"
)

// Writer appends score results to a single archive file. Not safe for
// concurrent use; the poller serializes writes per run.
type Writer struct {
	file    *os.File
	encoder *zstd.Encoder
	path    string
	count   int
}

// NewWriter opens an archive file for one run under dir, named by the run's
// start time. level maps to zstd's speed levels (1 fastest, 4 best).
func NewWriter(dir string, startedAt time.Time, level int) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalArchive, "failed to create archive directory", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("scores-%s.jsonl.zst", startedAt.UTC().Format("20060102T150405Z")))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalArchive, "failed to create archive file", err)
	}

	encoder, err := zstd.NewWriter(file, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	if err != nil {
		file.Close()
		return nil, types.NewAppError(types.ErrCodeInternalArchive, "failed to initialize zstd encoder", err)
	}

	return &Writer{file: file, encoder: encoder, path: path}, nil
}

// Path returns the archive file path.
func (w *Writer) Path() string { return w.path }

// Count returns the number of records written so far.
func (w *Writer) Count() int { return w.count }

// Append writes one score result as a JSON line.
func (w *Writer) Append(res *types.ScoreResult) error {
	line, err := json.Marshal(res)
	if err != nil {
		return types.NewAppError(types.ErrCodeInternalArchive, "failed to encode score for archive", err)
	}
	line = append(line, '\n')

	if _, err := w.encoder.Write(line); err != nil {
		return types.NewAppError(types.ErrCodeInternalArchive, "failed to write archive record", err)
	}
	w.count++
	return nil
}

// Close flushes the compressor and closes the file. Always call Close, even
// after a write error; a truncated archive is recoverable, an unflushed one
// is not.
func (w *Writer) Close() error {
	encErr := w.encoder.Close()
	fileErr := w.file.Close()
	if encErr != nil {
		return types.NewAppError(types.ErrCodeInternalArchive, "failed to flush archive", encErr)
	}
	if fileErr != nil {
		return types.NewAppError(types.ErrCodeInternalArchive, "failed to close archive file", fileErr)
	}
	return nil
}

// ReadAll decodes every record from an archive file, for tooling and tests.
func ReadAll(path string) ([]*types.ScoreResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalArchive, "failed to open archive file", err)
	}
	defer file.Close()

	decoder, err := zstd.NewReader(file)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalArchive, "failed to initialize zstd decoder", err)
	}
	defer decoder.Close()

	var results []*types.ScoreResult
	dec := json.NewDecoder(decoder)
	for dec.More() {
		var res types.ScoreResult
		if err := dec.Decode(&res); err != nil {
			return nil, types.NewAppError(types.ErrCodeInternalArchive, "failed to decode archive record", err)
		}
		results = append(results, &res)
	}

	return results, nil
}
