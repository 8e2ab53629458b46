// Package errors provides coded, structured errors for vmini.
//
// Every failure the framework itself reports carries a short code
// (e.g. "E002") that maps to a registered template with a message, a
// category and a longer explanation. Errors compare by code, so a freshly
// built error matches the exported sentinel of the same code:
//
//	err := errors.New("E002").WithDetail("instance already has a live tree")
//	stderrors.Is(err, errors.New("E002")) // true
//
// # Categories
//
//   - render: mount/update protocol misuse (missing render, double mount)
//   - surface: rendering-surface failures (invalid tag, foreign element)
//   - data: data file read and decode failures
//   - publish: snapshot publishing failures
//   - config: CLI configuration problems
//
// Format renders the error as a block suitable for terminal output; the CLI
// uses it for every error it prints.
package errors
