// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file (path via CONFIG_PATH) with FRIDAI_-prefixed
// environment variable overrides, validated on load, and handed to the rest of
// the application as typed structs.
package config
