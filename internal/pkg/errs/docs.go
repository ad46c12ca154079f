// Package errs provides the error classes shared by the grubdash service.
//
// Every class follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ErrValueIsOutOfRange, ErrValueIsRequired)
//   - a struct carrying the parameter name and an optional cause
//   - constructors with and without cause
//   - Error() for the message and Unwrap() returning the sentinel
//
// Callers classify errors with errors.Is against the sentinels, so the HTTP
// adapter can map a failure to a status code without knowing which package
// produced it.
package errs
