// Package validation holds the failure taxonomy and the pipeline runner shared
// by the dish and order request rules.
//
// A Rule is a pure function over a request payload. It returns nil or a single
// *Failure. A Pipeline runs its rules in order and returns the first failure,
// so a request is always answered with exactly one reason.
//
// Failures are classified by Kind and carry the status code and message the
// HTTP adapter renders:
//
//	Kind                     Status  Class
//	MissingField             400     validation (errs.ErrValueIsRequired)
//	InvalidPrice             400     validation (errs.ErrValueIsInvalid)
//	InvalidQuantity          400     validation (errs.ErrValueIsInvalid)
//	IDMismatch               400     validation (errs.ErrValueIsInvalid)
//	InvalidStatus            400     validation (errs.ErrValueIsInvalid)
//	NotFound                 404     errs.ErrObjectNotFound
//	TerminalStateViolation   400     ErrStateViolation
//	DeleteNotAllowed         400     ErrStateViolation
package validation
