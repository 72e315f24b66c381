package art

import "github.com/cockroachdb/errors"

// unreachableTag panics with an assertion error describing the
// impossible tag. Spec §7: "Reaching an unknown tag terminates the
// process; this represents memory corruption and is not recoverable."
func unreachableTag(t nodeType) {
	panic(errors.AssertionFailedf("art: reached unreachable node tag %d (%s)", uint8(t), t))
}

// assertf panics with an assertion error if cond is false. Used for
// the precondition assertions spec §7 describes (e.g. removing a key
// known to be present, adding a key known to be absent).
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(errors.AssertionFailedf(format, args...))
	}
}
