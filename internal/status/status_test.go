package status

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOk(t *testing.T) {
	var zero Status
	assert.True(t, zero.IsOK())
	assert.True(t, Ok().IsOK())
	assert.Equal(t, "OK", Ok().String())
	assert.NoError(t, Ok().Err())
	assert.True(t, New(Core, OK, "ignored").IsOK())
}

func TestNew(t *testing.T) {
	st := New(Core, InvalidArgument, "Unsupported provider.")
	assert.False(t, st.IsOK())
	assert.Equal(t, Core, st.Category())
	assert.Equal(t, InvalidArgument, st.Code())
	assert.Equal(t, "Unsupported provider.", st.Message())
	assert.Equal(t, "numnet INVALID_ARGUMENT: Unsupported provider.", st.String())

	st = New(Kernel, DivideByZero, "element %d", 3)
	assert.Equal(t, "kernel DIVIDE_BY_ZERO: element 3", st.String())
}

func TestWithCategory(t *testing.T) {
	st := New(None, Fail, "boom").WithCategory(Kernel)
	assert.Equal(t, Kernel, st.Category())
	assert.Equal(t, Fail, st.Code())
	assert.True(t, Ok().WithCategory(Kernel).IsOK())
}

func TestErr(t *testing.T) {
	err := New(Kernel, MismatchedDType, "int32 vs float32").Err()
	require.Error(t, err)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, Kernel, e.Category())
	assert.Equal(t, MismatchedDType, e.Code())
	assert.Equal(t, "int32 vs float32", e.Message())
	assert.Equal(t, MismatchedDType, e.Status().Code())
	assert.Equal(t, "kernel MISMATCHED_DTYPE: int32 vs float32", e.Error())
}

func TestErrorIs(t *testing.T) {
	err := New(Core, InvalidArgument, "bad").Err()
	wrapped := fmt.Errorf("calling matmul: %w", err)

	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, wrapped, ErrInvalidArgument)
	assert.NotErrorIs(t, err, ErrInvalidParam)

	assert.ErrorIs(t, err, New(Core, InvalidArgument, "other message").Err())
	assert.NotErrorIs(t, err, New(Kernel, InvalidArgument, "bad").Err())
}

func TestFromError(t *testing.T) {
	assert.True(t, FromError(nil).IsOK())

	st := FromError(fmt.Errorf("wrapped: %w", New(Kernel, NotImplemented, "bool matmul").Err()))
	assert.Equal(t, Kernel, st.Category())
	assert.Equal(t, NotImplemented, st.Code())

	st = FromError(errors.New("plain"))
	assert.Equal(t, Core, st.Category())
	assert.Equal(t, Fail, st.Code())
	assert.Equal(t, "plain", st.Message())
}

func TestNames(t *testing.T) {
	assert.Equal(t, "numnet", Core.String())
	assert.Equal(t, "kernel", Kernel.String())
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "MISMATCHED_SHAPE", MismatchedShape.String())
	assert.Equal(t, "CODE(99)", Code(99).String())
}
