//go:build vecdebug

package vector

// debugChecks reports whether precondition assertions are compiled in.
const debugChecks = true

// assert panics with msg when cond is false. Enabled by the vecdebug
// build tag; precondition violations are programmer errors, not
// recoverable runtime conditions.
func assert(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}
