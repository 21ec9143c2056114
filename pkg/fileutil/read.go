package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/mcphub/internal/errors"
)

// MaxFileSize caps how much ReadFileWithLimit reads.
const MaxFileSize = 1 << 20

// ErrFileTooLarge indicates a file exceeded MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ReadFileWithLimit reads the whole file at path, failing with
// ErrFileTooLarge if it is larger than MaxFileSize. Errors from opening the
// file keep their cause, so errors.Is(err, fs.ErrNotExist) still works.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
