package errors

import (
	"context"
	"fmt"
	"net"

	"vesselwatch/internal/domain/entity"
	"vesselwatch/internal/errors"
)

// DeliveryError classifies why a push delivery attempt did not succeed.
type DeliveryError struct {
	reason entity.FailureReason
	err    error
}

// NewDeliveryError creates a delivery error for the given reason
func NewDeliveryError(reason entity.FailureReason, err error) *DeliveryError {
	return &DeliveryError{reason: reason, err: err}
}

// Error implements the error interface
func (e *DeliveryError) Error() string {
	if e.err == nil {
		return string(e.reason)
	}

	return fmt.Sprintf("%s: %v", e.reason, e.err)
}

// Unwrap returns the underlying cause
func (e *DeliveryError) Unwrap() error {
	return e.err
}

// Reason returns the failure reason recorded on the notification
func (e *DeliveryError) Reason() entity.FailureReason {
	return e.reason
}

// Permanent reports whether retrying cannot help
func (e *DeliveryError) Permanent() bool {
	return e.reason.IsPermanent()
}

// Delivery failure taxonomy
var (
	ErrUserNotFound  = NewDeliveryError(entity.FailureReasonUserNotFound, nil)
	ErrNoDeviceFound = NewDeliveryError(entity.FailureReasonNoDeviceFound, nil)
	ErrProvider      = NewDeliveryError(entity.FailureReasonFirebaseError, nil)
	ErrNetwork       = NewDeliveryError(entity.FailureReasonNetworkError, nil)
	ErrUnknown       = NewDeliveryError(entity.FailureReasonUnknownError, nil)
)

// Is matches delivery errors by reason so sentinel comparisons work on wrapped instances
func (e *DeliveryError) Is(target error) bool {
	var other *DeliveryError
	if !errors.As(target, &other) {
		return false
	}

	return other.reason == e.reason
}

// ClassifyDeliveryError maps an arbitrary error from a delivery attempt to a DeliveryError.
// Timeouts and network failures become NETWORK_ERROR, anything unrecognised UNKNOWN_ERROR.
func ClassifyDeliveryError(err error) *DeliveryError {
	if err == nil {
		return nil
	}

	var deliveryErr *DeliveryError
	if errors.As(err, &deliveryErr) {
		return deliveryErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NewDeliveryError(entity.FailureReasonNetworkError, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return NewDeliveryError(entity.FailureReasonNetworkError, err)
	}

	return NewDeliveryError(entity.FailureReasonUnknownError, err)
}
