// Package reactive provides the observable store and the dependency
// registry behind vmini instances.
//
// A Store wraps a plain data mapping. Reads of data keys made inside a
// tracking pass (Track) are recorded; the pass returns the distinct keys it
// read. Writes to data keys store the value and notify every callback the
// Registry holds for that key, synchronously and in registration order.
//
// The Registry has two kinds of entries. Watch appends a callback with no
// de-duplication, so the same function registered twice runs twice.
// Subscribe registers an observer by id and ignores repeats, which is what
// render dependencies use: an observer re-subscribing after every render
// pass never accumulates duplicate entries.
//
// Neither type is safe for concurrent use. Everything runs on the caller's
// goroutine, and a write made from inside a callback recurses.
package reactive
