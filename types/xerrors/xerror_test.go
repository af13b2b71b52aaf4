package xerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Wrap(t *testing.T) {
	err := errors.New("base error")
	xerr0 := NewOrdinary("first xerror").Wrap(err)
	xerr1 := NewOrdinary("second xerror").Wrap(xerr0)

	//second xerror
	//	first xerror
	//	base error
	require.Equal(t, "second xerror\n\tfirst xerror\n\tbase error", xerr1.Error())

	xerr0 = NewOrdinary("first xerror").Wrapf("initial error: %s", err.Error())
	xerr1 = NewOrdinary("second xerror").Wrap(xerr0)
	require.Equal(t, "second xerror\n\tfirst xerror\n\tinitial error: base error", xerr1.Error())
}

func Test_Contains(t *testing.T) {
	err := errors.New("base error")
	xerr0 := NewOrdinary("first xerror").Wrap(err)
	xerr1 := NewOrdinary("second xerror").Wrap(xerr0)
	xerrNotContained := NewOrdinary("third xerror").Wrap(err)

	require.True(t, xerr1.Contains(xerr0))
	require.False(t, xerr1.Contains(xerrNotContained))
}

func Test_ArithmeticSentinels(t *testing.T) {
	xerr := ErrOverflow.Wrapf("mul: %v * %v", "a", "b")

	require.True(t, xerr.Equal(ErrOverflow))
	require.True(t, xerr.Contains(ErrOverflow))
	require.False(t, xerr.Contains(ErrUnderflow))
	require.True(t, errors.Is(xerr, ErrOverflow))
	require.False(t, errors.Is(xerr, ErrDivisionByZero))

	// wrapped by fmt
	err := fmt.Errorf("calc failed: %w", ErrDivisionByZero.Wrapf("div by %v", 0))
	require.True(t, errors.Is(err, ErrDivisionByZero))
	require.Equal(t, ErrCodeDivisionByZero, From(err).Code())
}

func Test_From(t *testing.T) {
	require.Nil(t, From(nil))
	require.Equal(t, ErrCodeOrdinary, From(errors.New("plain")).Code())
	require.Equal(t, ErrCodeInvalidArgument, From(ErrInvalidArgument).Code())
}
