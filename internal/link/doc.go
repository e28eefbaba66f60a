// Package link is pono's link-state reconciliation engine.
//
// Given declared [Entry] values it classifies each target path into a
// [State] ([Inspector]), and creates or removes symbolic links with a strict
// two-pass protocol ([Reconciler]): every selected entry is validated before
// any entry is mutated. Once mutation starts, the first failure stops the
// run and earlier mutations are kept.
//
// # States
//
//	Absent            nothing at the target path
//	LinkedCorrectly   symlink whose destination matches the source
//	LinkedMismatched  symlink whose destination differs from the source
//	BrokenLink        symlink whose destination does not exist
//	OccupiedByOther   a regular file or directory sits at the target
//
// "Matches" is a size-only comparison of the followed destination and the
// source. Two different files of the same length are considered linked
// correctly; this is deliberate and covered by tests.
//
// # Errors
//
// Failures are returned as [*Error] values carrying a [Kind] and structured
// fields. Presentation code formats them; use [KindOf] to branch on the kind.
//
// # Ordering
//
// Every batch operation processes entries sorted by name, independent of
// the order they were passed in.
package link
