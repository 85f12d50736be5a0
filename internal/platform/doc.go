// Package platform resolves locations relative to the running executable and
// wraps the few filesystem checks whose behavior differs between Unix and
// Windows. Templates and the activation script ship next to the binary, so
// their default paths are derived from the executable rather than the caller's
// working directory.
package platform
