// Package config provides configuration management for the file manager.
//
// Values are layered: built-in defaults, then an optional YAML or TOML file
// (--config or FM_CONFIG), then environment variables. Command-line flags
// are applied by the caller on top of the loaded value.
//
// Configuration Sections:
//   - Shell: default display name, start directory, prompt
//   - Files: hash algorithm, compression codec, ls concurrency, buffer size
//   - Logging: log level, development mode, output path
//   - Metrics: optional Prometheus listen address
//   - Output: table styling
//
// Example Usage:
//
//	cfg, err := config.Load(configPath)
//	if err != nil {
//		return err
//	}
//	fmt.Println(cfg.Files.HashAlgorithm)
package config
