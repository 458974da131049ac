//go:build debugchecks

package debug

// Enabled reports whether debug checks are compiled into this
// build.
const Enabled = true
