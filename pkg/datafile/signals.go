package datafile

import "github.com/zoobzio/capitan"

// Data file lifecycle signals.
var (
	// DataLoaded is emitted when a file was read and decoded.
	DataLoaded = capitan.NewSignal(
		"datafile.loaded",
		"Data file read and decoded",
	)

	// DataDecodeFailed is emitted when a changed file could not be decoded.
	DataDecodeFailed = capitan.NewSignal(
		"datafile.decode.failed",
		"Data file decode failed",
	)

	// DataApplied is emitted after values were written into a store.
	DataApplied = capitan.NewSignal(
		"datafile.applied",
		"Data file values applied to store",
	)
)

// Field keys for data file events.
var (
	// KeyPath is the watched file path.
	KeyPath = capitan.NewStringKey("path")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyChanged is the number of keys whose value changed.
	KeyChanged = capitan.NewIntKey("changed")

	// KeyIgnored is the number of keys that are not declared data keys.
	KeyIgnored = capitan.NewIntKey("ignored")
)
