// Package paths resolves the directories mcphub reads and writes.
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance. On Linux and macOS, paths follow XDG conventions
// (~/.config, ~/.local/share).
//
//	paths.ConfigDir()    // ~/.config/mcphub
//	paths.SettingsPath() // ~/.local/share/mcphub/settings.json
package paths
