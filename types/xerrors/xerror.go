package xerrors

import (
	"errors"
	"fmt"
)

const (
	ErrCodeSuccess uint32 = iota
	ErrCodeOrdinary
	ErrCodeOverflow
	ErrCodeUnderflow
	ErrCodeDivisionByZero
	ErrCodeInvalidArgument
)

const (
	ErrCodeInvalidConfig uint32 = 1000 + iota
	ErrCodeToleranceExceeded
	ErrLast
)

var (
	ErrCommon = New(ErrCodeOrdinary, "swoupon error")

	// arithmetic
	ErrOverflow        = New(ErrCodeOverflow, "overflow")
	ErrUnderflow       = New(ErrCodeUnderflow, "underflow")
	ErrDivisionByZero  = New(ErrCodeDivisionByZero, "division by zero")
	ErrInvalidArgument = New(ErrCodeInvalidArgument, "invalid argument")

	// harness
	ErrInvalidConfig     = New(ErrCodeInvalidConfig, "invalid config")
	ErrToleranceExceeded = New(ErrCodeToleranceExceeded, "tolerance exceeded")
)

type XError interface {
	Code() uint32
	Cause() error
	Error() string
	Msg() string
	Wrap(error) XError
	Wrapf(string, ...any) XError
	Contains(XError) bool
	Equal(XError) bool
}

type xerror struct {
	code  uint32
	msg   string
	cause error
}

func New(code uint32, msg string) XError {
	return &xerror{
		code: code,
		msg:  msg,
	}
}

func NewOrdinary(msg string) XError {
	return &xerror{
		code: ErrCodeOrdinary,
		msg:  msg,
	}
}

func From(err error) XError {
	if err == nil {
		return nil
	}
	var xerr XError
	if errors.As(err, &xerr) {
		return xerr
	}
	return NewOrdinary(err.Error())
}

func Wrap(err error, msg string) XError {
	return &xerror{
		code:  ErrCodeOrdinary,
		msg:   msg,
		cause: err,
	}
}

func (xerr *xerror) Code() uint32 {
	return xerr.code
}

func (xerr *xerror) Error() string {
	msg := xerr.msg

	if xerr.cause != nil {
		msg += "\n\t" + xerr.cause.Error()
	}

	return msg
}

func (xerr *xerror) Msg() string {
	return xerr.msg
}

func (xerr *xerror) Cause() error {
	return xerr.cause
}

func (xerr *xerror) Unwrap() error {
	return xerr.cause
}

func (xerr *xerror) Wrap(err error) XError {
	if xerr.cause != nil {
		if cerr, ok := xerr.cause.(*xerror); ok {
			return &xerror{
				code:  xerr.code,
				msg:   xerr.msg,
				cause: cerr.Wrap(err),
			}
		}
	}
	return &xerror{
		code:  xerr.code,
		msg:   xerr.msg,
		cause: err,
	}
}

func (xerr *xerror) Wrapf(format string, args ...any) XError {
	return xerr.Wrap(New(ErrCodeOrdinary, fmt.Sprintf(format, args...)))
}

func (xerr *xerror) Contains(other XError) bool {
	if xerr.code == other.Code() && xerr.msg == other.Msg() {
		return true
	} else if xerr.cause != nil {
		if _xerr, ok := xerr.cause.(*xerror); ok {
			return _xerr.Contains(other)
		} else {
			return errors.Is(xerr.cause, other)
		}
	}
	return false
}

func (xerr *xerror) Equal(other XError) bool {
	return xerr.code == other.Code()
}

// Is makes a wrapped sentinel (e.g. ErrOverflow.Wrapf(...)) match the sentinel itself
// when compared with errors.Is.
func (xerr *xerror) Is(target error) bool {
	other, ok := target.(XError)
	if !ok {
		return false
	}
	return xerr.code == other.Code() && xerr.msg == other.Msg()
}
