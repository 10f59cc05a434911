// Export of selected internals for white-box assertions from the _test
// package. Test-only surface; not part of the public API.

package coloring

// SetDebugChecks toggles the after-every-mutation invariant re-check.
// Tests enable it so that any structural corruption panics at the mutation
// that caused it rather than surfacing later.
func SetDebugChecks(on bool) { debugChecks = on }

// ExportCheck runs the internal invariant check on r.
func ExportCheck(r *Reversible) bool { return r.check() }

// ExportBounds returns a copy-free view of the bound list of c.
func ExportBounds(c *Coloring) []Bound { return c.bounds }

// ExportElements returns a copy-free view of the element layout of c.
func ExportElements(c *Coloring) []int { return c.elements }
