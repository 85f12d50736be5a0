// Package detect classifies a directory into a coarse project type by looking
// for well-known marker entries in its immediate listing. Categories are tested
// in a fixed priority order and the first one with a matching marker wins.
package detect
