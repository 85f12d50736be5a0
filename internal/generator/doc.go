// Package generator produces a project configuration file from a type-named
// YAML template. The template mapping is copied as-is, with key order and
// comments preserved, and a generated_at field is stamped before the result is
// written to the requested output path. The package also validates templates
// against an embedded JSON schema.
package generator
