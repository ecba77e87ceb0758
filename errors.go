package whtreport

import "errors"

// Sentinel errors for library operations.
//
// The two validation errors carry the exact wire messages the response
// envelope exposes to clients, so handlers can return err.Error() verbatim.
var (
	ErrMissingAssessmentID = errors.New("assessment_id is required")
	ErrMissingVerdict      = errors.New("Verdict data missing. Cannot generate report.")

	// ErrRender wraps any failure while composing, paginating, or
	// serializing the document. No partial output is ever produced
	// alongside it.
	ErrRender = errors.New("rendering failed")
)
