package publisher

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kamilkobak/kkdash/pkg/defaults"
	apperrors "github.com/kamilkobak/kkdash/pkg/errors"
	"github.com/kamilkobak/kkdash/pkg/snapshot"
)

// createTemp is swapped in tests to inject publish failures.
var createTemp = os.CreateTemp

// AtomicFile publishes snapshots to a single file using a temp file
// and rename. The rename is atomic on POSIX filesystems, so a reader
// polling Path never observes a partially written document.
type AtomicFile struct {
	// Path is the destination file.
	Path string

	// Mode is the permission mode applied before the rename. If zero,
	// defaults.OutputFileMode is used.
	Mode os.FileMode
}

// NewAtomicFile creates an AtomicFile publisher for the given path.
func NewAtomicFile(path string) *AtomicFile {
	return &AtomicFile{
		Path: path,
		Mode: defaults.OutputFileMode,
	}
}

// Publish serializes the snapshot as indented JSON and atomically
// replaces the destination file. On any failure the temp file is
// removed, the previous destination file is left untouched, and a
// PUBLISH_FAILED error is returned.
//
// Context is accepted for interface consistency; local file writes are
// fast and are always allowed to finish so an in-flight cycle can
// complete during shutdown.
func (f *AtomicFile) Publish(_ context.Context, snap *snapshot.Snapshot) error {
	if f.Path == "" {
		return apperrors.New(apperrors.ErrCodePublish, "output path is empty")
	}
	mode := f.Mode
	if mode == 0 {
		mode = defaults.OutputFileMode
	}

	data, err := Encode(snap)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodePublish, "failed to encode snapshot", err)
	}

	// The temp file must live in the destination directory so the
	// rename cannot cross filesystems.
	dir := filepath.Dir(f.Path)
	tmp, err := createTemp(dir, filepath.Base(f.Path)+".tmp-*")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodePublish, "failed to create temp file", err)
	}
	tmpPath := tmp.Name()

	if err := writeAndClose(tmp, data, mode); err != nil {
		os.Remove(tmpPath)
		return apperrors.Wrap(apperrors.ErrCodePublish, "failed to write temp file", err)
	}

	if err := os.Rename(tmpPath, f.Path); err != nil {
		os.Remove(tmpPath)
		return apperrors.Wrap(apperrors.ErrCodePublish, "failed to replace output file", err)
	}

	return nil
}

// writeAndClose writes data to the temp file, flushes it to disk, and
// applies the destination mode. CreateTemp opens files as 0600, which
// is too strict for a document served to dashboard readers.
func writeAndClose(tmp *os.File, data []byte, mode os.FileMode) error {
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Chmod(tmp.Name(), mode)
}

// Encode serializes a snapshot to the published document form:
// two-space indented JSON with a trailing newline.
func Encode(snap *snapshot.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
