package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Thin seam over cockroachdb/errors so the rest of the code never imports it
// directly.

func New(msg string) error {
	return cr.New(msg)
}

// Wrap annotates err with msg, keeping the original cause and stack.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark makes err match markErr under errors.Is without losing the cause.
// Usecases mark infra errors with domain sentinels this way.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
