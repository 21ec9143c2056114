// Package config loads mcphub's own configuration.
//
// This is distinct from the settings document that holds configured MCP
// servers (see package store); config only says where that document lives
// and how the update check and availability refresh behave.
//
// # Configuration File
//
// config.yaml is searched in the current directory, then $MCPHUB_CONFIG_DIR,
// then <XDG config home>/mcphub. Every key may also be set from the
// environment with the MCPHUB_ prefix, dots replaced by underscores
// (MCPHUB_SERVE_ADDR, MCPHUB_PROBE_TIMEOUT).
//
//	version: 1
//	settings_file: ~/.local/share/mcphub/settings.json
//	status_file: ~/.local/share/mcphub/status.json
//	release:
//	  owner: thoreinstein
//	  repo: mcphub
//	probe:
//	  timeout: 5s
//	  concurrency: 4
//	serve:
//	  addr: 127.0.0.1:8787
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load("")
//
// Load validates the result; [Validate] can also be called directly and
// returns every problem found.
package config
