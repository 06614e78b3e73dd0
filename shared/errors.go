// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindValidation       ErrorKind = "validation_error"
	KindInvalidDate      ErrorKind = "invalid_date"
	KindInvalidTimeZone  ErrorKind = "invalid_timezone"
	KindCapacityExceeded ErrorKind = "capacity_exceeded"
	KindAlreadyBooked    ErrorKind = "already_booked"
	KindNotFound         ErrorKind = "not_found"
	KindForbidden        ErrorKind = "forbidden"
	KindUnauthenticated  ErrorKind = "unauthenticated"
	KindStoreError       ErrorKind = "store_error"
)

// LaunchError is returned by every booking, review and profile operation.
// Message is safe to show to the member who triggered the operation.
type LaunchError struct {
	Kind    ErrorKind
	Message string
	// Cap is only set for KindCapacityExceeded
	Cap int
	Err error
}

func (e *LaunchError) Error() string {
	return e.Message
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Is matches sentinel errors of the same kind, so errors.Is(err, ErrForbidden)
// works for every forbidden error regardless of its message.
func (e *LaunchError) Is(target error) bool {
	t, ok := target.(*LaunchError)
	if !ok {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

var (
	ErrValidation       = &LaunchError{Kind: KindValidation}
	ErrInvalidDate      = &LaunchError{Kind: KindInvalidDate}
	ErrInvalidTimeZone  = &LaunchError{Kind: KindInvalidTimeZone}
	ErrCapacityExceeded = &LaunchError{Kind: KindCapacityExceeded}
	ErrAlreadyBooked    = &LaunchError{Kind: KindAlreadyBooked}
	ErrNotFound         = &LaunchError{Kind: KindNotFound}
	ErrForbidden        = &LaunchError{Kind: KindForbidden}
	ErrUnauthenticated  = &LaunchError{Kind: KindUnauthenticated}
	ErrStore            = &LaunchError{Kind: KindStoreError}
)

func NewLaunchError(kind ErrorKind, message string) *LaunchError {
	return &LaunchError{Kind: kind, Message: message}
}

func ValidationError(message string) *LaunchError {
	return NewLaunchError(KindValidation, message)
}

func NotFoundError(message string, err error) *LaunchError {
	return &LaunchError{Kind: KindNotFound, Message: message, Err: err}
}

func ForbiddenError(message string) *LaunchError {
	return NewLaunchError(KindForbidden, message)
}

func CapacityExceededError(message string, dailyCap int) *LaunchError {
	return &LaunchError{Kind: KindCapacityExceeded, Message: message, Cap: dailyCap}
}

// StoreError wraps a persistence failure. The message of the underlying error
// is passed through.
func StoreError(err error) *LaunchError {
	return &LaunchError{Kind: KindStoreError, Message: err.Error(), Err: err}
}

func StoreErrorf(err error, format string, args ...any) *LaunchError {
	return &LaunchError{Kind: KindStoreError, Message: fmt.Sprintf(format, args...) + err.Error(), Err: err}
}

var UnauthenticatedError = NewLaunchError(KindUnauthenticated, "You must be signed in.")

// KindOf returns the kind of err or KindStoreError for foreign errors.
func KindOf(err error) ErrorKind {
	var le *LaunchError
	if errors.As(err, &le) {
		return le.Kind
	}
	return KindStoreError
}
