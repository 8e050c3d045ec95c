// Package config loads churnform settings.
//
// Settings live in a YAML file stored in the platform configuration
// directory:
//   - Linux: $XDG_CONFIG_HOME/churnform/config.yaml or $HOME/.config/churnform/config.yaml
//   - macOS: $HOME/.config/churnform/config.yaml
//   - Windows: %LOCALAPPDATA%\churnform\config.yaml
//
// The file is optional and never written by the application. Example:
//
//	version: 1
//	endpoint: http://churn-api.internal:8000
//	timeout: 10s
//	log_level: debug
//	log_file: /tmp/churnform.log
//
// # Precedence
//
// Resolve merges the sources for each setting, highest first: command line
// flag, environment (CHURNFORM_API_URL, CHURNFORM_LOG_LEVEL), file, built-in
// default. The default endpoint is http://localhost:8000.
package config
