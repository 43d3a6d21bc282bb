// Package config provides user configuration for the mainviews tools.
//
// The configuration is a YAML file holding the locations of the model and
// general records, the log level and the preferences of the simulator and
// the preview server. It follows OS-specific conventions for its location:
//   - Linux: $XDG_CONFIG_HOME/mainviews/config.yaml or $HOME/.config/mainviews/config.yaml
//   - macOS: $HOME/.config/mainviews/config.yaml
//   - Windows: %LOCALAPPDATA%\mainviews\config.yaml
//
// Relative record paths are resolved against the configuration directory.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg.Preview.Port = 9090
//	if err := cfg.Save(); err != nil {
//	    log.Fatal(err)
//	}
package config
