// Package mcda reduces a set of candidate alternatives to a short list using
// two successive filters: Pareto dominance over normalized criterion values,
// followed by a stricter filter called t-ordering that exploits a
// user-supplied partial importance order over criteria.
//
// 🚀 What is mcda?
//
//	A small decision-support core that brings together:
//
//	  • Criteria & preferences: declarative descriptors, validated eagerly
//	  • Normalization: two polarity conventions into a common [0,1] scale
//	  • Pareto filtering: classic componentwise dominance
//	  • t-ordering: a mass-transfer dominance test over importance groups
//
// ✨ Design
//
//   - Eager validation    — a Model is either fully valid or never exists
//   - Lazy results        — Pareto front and t-ordering are memoized on first use
//   - Total functions     — once constructed, no recoverable errors remain
//
// An alternative survives t-ordering only if no admissible weighting
// consistent with the stated preferences could discard it. See SPEC_FULL.md
// for the full component breakdown.
//
//	go get github.com/katalvlaran/mcda
package mcda
