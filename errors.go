package vmini

import "github.com/vango-dev/vmini/internal/errors"

// Sentinel errors. Errors returned by this module match these with
// errors.Is even when they carry extra detail.
var (
	// ErrNoRender is returned by Mount when Options.Render is nil.
	ErrNoRender = errors.New("E001")

	// ErrAlreadyMounted is returned by a second Mount on one instance.
	ErrAlreadyMounted = errors.New("E002")

	// ErrNotMounted is returned by Update before Mount succeeded.
	ErrNotMounted = errors.New("E003")

	// ErrNilNode is returned when a render function returns nil.
	ErrNilNode = errors.New("E004")

	// ErrUnknownMethod is returned by Store.Call for undeclared methods.
	ErrUnknownMethod = errors.New("E005")

	// ErrInvalidTag is returned by the in-memory surface for bad tag names.
	ErrInvalidTag = errors.New("E010")
)
