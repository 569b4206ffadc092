// Package cache keeps intermediate images of an edit history so undo does
// not have to replay every operation from the original.
//
// A snapshot is keyed by depth: the number of history entries applied to
// the original to produce it. Depth 0 is never stored; the original is
// always available to the caller.
//
//	snaps := cache.NewSnapshots(8)
//	snaps.Put(3, buf)
//	depth, buf := snaps.Nearest(5) // deepest snapshot at or below 5
//
// Snapshots is safe for concurrent use and must not be copied after
// creation.
package cache
