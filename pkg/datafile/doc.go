// Package datafile loads instance data from YAML or JSON files and keeps a
// store in sync with a file as it changes on disk.
//
// Load and Decode turn a file into a key/value mapping. Apply writes the
// mapping into a store: only declared data keys are written, and only when
// the value differs, so each real change triggers the usual notification
// and re-render. Watcher emits the decoded file every time it is written.
//
// Lifecycle events are emitted through capitan:
//
//	datafile.loaded, datafile.decode.failed, datafile.applied
package datafile
