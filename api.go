// api.go — thin public entry-points for the mcda package (spec.md §6).
//
// Design contract (matches the teacher's builder/api.go discipline):
//   - NewModel is the single constructor: validates, normalizes, returns a
//     ready Model or an *InvalidModelError.
//   - ParetoFront / TOrdering / Normalized are the only external interfaces
//     to query a constructed Model; all three are total functions once
//     construction succeeds (spec.md §7).
package mcda

// ParetoFront is a package-level convenience wrapping (*Model).ParetoFront,
// for callers that prefer a function over a method reference.
func ParetoFront(m *Model) []string { return m.ParetoFront() }

// TOrdering is a package-level convenience wrapping (*Model).TOrdering.
func TOrdering(m *Model) []string { return m.TOrdering() }

// Normalized is a package-level convenience wrapping (*Model).Normalized.
func Normalized(m *Model) NormalizedMatrix { return m.Normalized() }
