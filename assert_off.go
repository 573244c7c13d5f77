//go:build !vecdebug

package vector

// debugChecks reports whether precondition assertions are compiled in.
const debugChecks = false

// assert compiles to nothing without the vecdebug build tag:
// precondition violations are undefined behavior in optimized builds.
func assert(bool, string) {}
