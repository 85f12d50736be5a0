// Package config manages user-level settings stored at ~/.contextguard/config.yaml.
// It provides functions to load, read, and write the keys that override where
// templates and the activation script are looked up. Every key can also be
// supplied through a CONTEXTGUARD_-prefixed environment variable.
package config
