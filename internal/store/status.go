package store

import (
	"encoding/json"
	"io/fs"

	"github.com/thoreinstein/mcphub/internal/errors"
	"github.com/thoreinstein/mcphub/pkg/fileutil"
)

// loadStatus reads the availability cache. A missing file is an empty cache.
func loadStatus(path string) (map[string]serverStatus, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]serverStatus), nil
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	status := make(map[string]serverStatus)
	if len(data) == 0 {
		return status, nil
	}
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return status, nil
}
