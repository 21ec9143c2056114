package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName names the per-application subdirectory under each XDG base directory.
const AppName = "mcphub"

// SettingsFileName is the name of the persisted MCP settings document.
const SettingsFileName = "settings.json"

// StatusFileName is the name of the cached availability results.
const StatusFileName = "status.json"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
// On Linux: ~/.local/share
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func DataHome() string {
	return xdg.DataHome
}

// ConfigDir returns the directory holding config.yaml: <ConfigHome>/mcphub.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// DataDir returns the directory holding persisted state: <DataHome>/mcphub.
func DataDir() string {
	return filepath.Join(DataHome(), AppName)
}

// SettingsPath returns the default location of the settings document.
func SettingsPath() string {
	return filepath.Join(DataDir(), SettingsFileName)
}

// StatusPath returns the default location of the cached availability results.
func StatusPath() string {
	return filepath.Join(DataDir(), StatusFileName)
}
