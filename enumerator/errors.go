package enumerator

import (
	"errors"
	"fmt"

	"github.com/dnastrand/geoenum/species"
)

// ErrInvalidSettings indicates a Settings value failed validation (spec.md
// §7's "Settings invalid" fatal error kind): a required field is missing
// its zero value's valid form, an enum field holds an unrecognized value,
// or a rate is not positive.
var ErrInvalidSettings = errors.New("enumerator: invalid settings")

// ErrModeNotSupported indicates threeWayMode or unbindingMode named a mode
// this enumerator accepts syntactically but does not implement: the
// geometric enumerator only runs the "adjacent" rule for both (spec.md
// §4.5); the other enumerator_original.py modes parse but are rejected
// here (SPEC_FULL.md §C.1).
var ErrModeNotSupported = errors.New("enumerator: mode not supported by the geometric enumerator")

// settingsError wraps ErrInvalidSettings/ErrModeNotSupported as fatal,
// per spec.md §7.
type settingsError struct{ inner error }

func (e *settingsError) Error() string { return e.inner.Error() }
func (e *settingsError) Unwrap() error { return e.inner }
func (e *settingsError) Fatal() bool   { return true }

func invalidSettingsf(format string, args ...any) error {
	return &settingsError{inner: fmt.Errorf(format+": %w", append(args, ErrInvalidSettings)...)}
}

func modeNotSupportedf(format string, args ...any) error {
	return &settingsError{inner: fmt.Errorf(format+": %w", append(args, ErrModeNotSupported)...)}
}

// ErrComplexSizeExceeded indicates enumeration discovered a species whose
// vertex count exceeds Settings.MaxComplexSize (spec.md §7's
// "Complex-size exceeded" fatal error kind, guarding against runaway
// polymerization).
var ErrComplexSizeExceeded = errors.New("enumerator: maxComplexSize exceeded")

// complexSizeError carries the offending species alongside
// ErrComplexSizeExceeded, per spec.md §7's "offending species reported".
type complexSizeError struct {
	species *species.Species
	size    int
	max     int
}

func (e *complexSizeError) Error() string {
	return fmt.Sprintf("species with %d vertices exceeds maxComplexSize %d: %v", e.size, e.max, ErrComplexSizeExceeded)
}
func (e *complexSizeError) Unwrap() error { return ErrComplexSizeExceeded }
func (e *complexSizeError) Fatal() bool   { return true }

// Species returns the species that exceeded the configured bound.
func (e *complexSizeError) Species() *species.Species { return e.species }
