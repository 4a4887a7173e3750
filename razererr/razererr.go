// Package razererr defines the single structured error type used across the
// protocol engine, per the error taxonomy of SPEC_FULL.md §7.
package razererr

import "fmt"

// Kind identifies which member of the closed error taxonomy an Error represents.
type Kind int

const (
	Unknown Kind = iota
	NoDevicesFound
	ModelDetectionFailed
	InvalidModel
	UnsupportedPlatform
	UnsupportedModel
	DeviceOpenFailed
	DeviceNotFound
	PermissionDenied
	FeatureNotSupported
	PreconditionFailed
	ResponseMismatch
	CommandNotSupported
	DeviceBusy
	CommandFailed
	CommandTimeout
	UnknownStatus
	InvalidValue
	InvalidDataSize
	Hid
)

func (k Kind) String() string {
	switch k {
	case NoDevicesFound:
		return "NoDevicesFound"
	case ModelDetectionFailed:
		return "ModelDetectionFailed"
	case InvalidModel:
		return "InvalidModel"
	case UnsupportedPlatform:
		return "UnsupportedPlatform"
	case UnsupportedModel:
		return "UnsupportedModel"
	case DeviceOpenFailed:
		return "DeviceOpenFailed"
	case DeviceNotFound:
		return "DeviceNotFound"
	case PermissionDenied:
		return "PermissionDenied"
	case FeatureNotSupported:
		return "FeatureNotSupported"
	case PreconditionFailed:
		return "PreconditionFailed"
	case ResponseMismatch:
		return "ResponseMismatch"
	case CommandNotSupported:
		return "CommandNotSupported"
	case DeviceBusy:
		return "DeviceBusy"
	case CommandFailed:
		return "CommandFailed"
	case CommandTimeout:
		return "CommandTimeout"
	case UnknownStatus:
		return "UnknownStatus"
	case InvalidValue:
		return "InvalidValue"
	case InvalidDataSize:
		return "InvalidDataSize"
	case Hid:
		return "Hid"
	default:
		return "Unknown"
	}
}

// Error is the single error type produced by every layer of the protocol
// engine. Only the fields relevant to Kind are populated; the rest are zero.
type Error struct {
	Kind Kind

	// Reason carries a freeform explanation for ModelDetectionFailed,
	// PreconditionFailed and similar kinds.
	Reason string

	// Raw carries the unrecognized model string (InvalidModel).
	Raw string

	// Model and PIDs populate UnsupportedModel.
	Model string
	PIDs  []uint16

	// Name and Reason populate DeviceOpenFailed.
	Name string

	// Feature populates FeatureNotSupported.
	Feature string

	// Value and TypeName populate InvalidValue.
	Value    uint8
	TypeName string

	// Expected and Actual populate InvalidDataSize.
	Expected int
	Actual   int

	// StatusByte populates UnknownStatus.
	StatusByte uint8

	// Err is the wrapped underlying cause, if any (e.g. a Hid error).
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case NoDevicesFound:
		return "no Razer devices found"
	case ModelDetectionFailed:
		return fmt.Sprintf("failed to detect model: %s", e.Reason)
	case InvalidModel:
		return fmt.Sprintf("detected model but it's not a Razer laptop: %s", e.Raw)
	case UnsupportedPlatform:
		return "automatic model detection is not implemented for this platform"
	case UnsupportedModel:
		return fmt.Sprintf("model %s with PIDs %04x is not supported", e.Model, e.PIDs)
	case DeviceOpenFailed:
		return fmt.Sprintf("failed to open device %q: %s", e.Name, e.Reason)
	case DeviceNotFound:
		return "device not found"
	case PermissionDenied:
		return "permission denied opening device"
	case FeatureNotSupported:
		return fmt.Sprintf("feature not supported by this device: %s", e.Feature)
	case PreconditionFailed:
		return e.Reason
	case ResponseMismatch:
		return "response does not match the request"
	case CommandNotSupported:
		return "command not supported by device"
	case DeviceBusy:
		return "device busy, try again"
	case CommandFailed:
		return "command failed"
	case CommandTimeout:
		return "command timed out"
	case UnknownStatus:
		return fmt.Sprintf("command failed with unknown status: 0x%02x", e.StatusByte)
	case InvalidValue:
		return fmt.Sprintf("failed to convert 0x%02x to %s", e.Value, e.TypeName)
	case InvalidDataSize:
		return fmt.Sprintf("invalid data size: expected %d, got %d", e.Expected, e.Actual)
	case Hid:
		return fmt.Sprintf("hid error: %v", e.Err)
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "unknown error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !asError(err, &e) {
		return false
	}
	return e.Kind == kind
}

// asError is a small local substitute for errors.As, kept dependency-free so
// this package never has to import the command/device layers that wrap it.
func asError(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

func NoDevices() *Error {
	return &Error{Kind: NoDevicesFound}
}

func Precondition(format string, args ...any) *Error {
	return &Error{Kind: PreconditionFailed, Reason: fmt.Sprintf(format, args...)}
}

func ModelDetection(reason string) *Error {
	return &Error{Kind: ModelDetectionFailed, Reason: reason}
}

func InvalidModelRaw(raw string) *Error {
	return &Error{Kind: InvalidModel, Raw: raw}
}

func Unsupported(model string, pids []uint16) *Error {
	return &Error{Kind: UnsupportedModel, Model: model, PIDs: pids}
}

func OpenFailed(name, reason string) *Error {
	return &Error{Kind: DeviceOpenFailed, Name: name, Reason: reason}
}

func NotSupported(feature string) *Error {
	return &Error{Kind: FeatureNotSupported, Feature: feature}
}

func BadValue(value uint8, typeName string) *Error {
	return &Error{Kind: InvalidValue, Value: value, TypeName: typeName}
}

func BadSize(expected, actual int) *Error {
	return &Error{Kind: InvalidDataSize, Expected: expected, Actual: actual}
}

func UnknownStatusByte(raw uint8) *Error {
	return &Error{Kind: UnknownStatus, StatusByte: raw}
}

func WrapHid(err error) *Error {
	return &Error{Kind: Hid, Err: err}
}
