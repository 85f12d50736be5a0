// Package cli defines the Cobra command tree for the contextguard CLI. Each
// file in this package registers one top-level command (detect, generate,
// activate, etc.) with the root command. Command implementations delegate to
// internal packages for the actual work and only handle argument parsing,
// path resolution, and output formatting.
package cli
