// Package activate runs the external activation script that sets up a
// project's environment. Arguments are forwarded verbatim and the standard
// streams are passed through untouched; the script's outcome is reduced to
// success or failure.
package activate
