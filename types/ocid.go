package types

import "strings"

// OCIDPrefix is the literal prefix every Oracle Cloud identifier starts with.
const OCIDPrefix = "ocid1."

// IsOCID reports whether s is an opaque platform identifier.
// Anything carrying the prefix is treated as already resolved and passed
// through verbatim; existence is checked by whatever operation consumes it.
func IsOCID(s string) bool {
	return strings.HasPrefix(s, OCIDPrefix)
}
