/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies why an input was rejected.
type ErrorKind int

const (
	UnknownScheme ErrorKind = iota + 1
	InvalidGrammar
	LengthViolation
	OutOfRange
	InvalidChecksum
	DisallowedLeadingZero
	InvalidEscape
	InvalidHeader
	PayloadTooShort
	NotConvertible
	UnsupportedProjection
	AmbiguousInput
)

var kindNames = [...]string{
	UnknownScheme:         "unknown scheme",
	InvalidGrammar:        "invalid grammar",
	LengthViolation:       "length violation",
	OutOfRange:            "out of range",
	InvalidChecksum:       "invalid checksum",
	DisallowedLeadingZero: "disallowed leading zero",
	InvalidEscape:         "invalid escape",
	InvalidHeader:         "invalid header",
	PayloadTooShort:       "payload too short",
	NotConvertible:        "not convertible",
	UnsupportedProjection: "unsupported projection",
	AmbiguousInput:        "ambiguous input",
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the only error type this package returns. Every validation and
// codec failure carries the scheme being processed (zero if it wasn't known
// yet), a Kind, and a human readable message.
//
// Errors are returned with a stack attached; use AsError, KindOf, or
// errors.Cause to get at the *Error.
type Error struct {
	Scheme Scheme
	Kind   ErrorKind
	Msg    string
	cause  error
}

func (e *Error) Error() string {
	msg := e.Kind.String() + ": " + e.Msg
	if e.Scheme != 0 {
		msg = e.Scheme.String() + ": " + msg
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the lower level error that led to this one, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

func newError(s Scheme, k ErrorKind, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Scheme: s, Kind: k, Msg: fmt.Sprintf(format, args...)})
}

func wrapError(cause error, s Scheme, k ErrorKind, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Scheme: s, Kind: k, Msg: fmt.Sprintf(format, args...), cause: cause})
}

// AsError returns the *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the ErrorKind of err, or 0 if err didn't come from this
// package.
func KindOf(err error) ErrorKind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return 0
}

// IsKind returns true if err is an *Error of the given kind.
func IsKind(err error, k ErrorKind) bool {
	return KindOf(err) == k
}

// IgnoreErrors discards err, returning ok=false in its place, so that bulk
// callers can filter inputs that don't convert:
//     key, ok := epc.IgnoreErrors(epc.GS1Key(s))
func IgnoreErrors[T any](v T, err error) (T, bool) {
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}
