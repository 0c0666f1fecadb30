// Package config manages user-level settings stored at ~/.droidgen/config.yaml.
// Values can be overridden per project through DROIDGEN_* environment
// variables, which may also come from a .env file in the project directory.
package config
