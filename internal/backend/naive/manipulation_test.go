package naive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/numnet/internal/opr"
	"github.com/born-ml/numnet/internal/status"
)

func TestRepeat(t *testing.T) {
	nb := New()
	src := []int32{1, 2, 3, 4, 5, 6}

	tests := []struct {
		name  string
		param opr.RepeatParam
		dims  []int
		want  []int32
	}{
		{"axis0", opr.RepeatParam{Repeats: 2, Axis: 0}, []int{4, 3}, []int32{1, 2, 3, 1, 2, 3, 4, 5, 6, 4, 5, 6}},
		{"axis1", opr.RepeatParam{Repeats: 2, Axis: 1}, []int{2, 6}, []int32{1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6}},
		{"once", opr.RepeatParam{Repeats: 1, Axis: 1}, []int{2, 3}, []int32{1, 2, 3, 4, 5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]int32, len(tt.want))
			st := nb.Repeat(input(t, src, 2, 3), output(t, got, tt.dims...), tt.param)
			require.True(t, st.IsOK(), st.String())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepeatStridedSource(t *testing.T) {
	nb := New()
	// Transposed view of [[1,2,3],[4,5,6]]: [[1,4],[2,5],[3,6]].
	src := strided(t, []float32{1, 2, 3, 4, 5, 6}, []int{3, 2}, []int{1, 3})
	got := make([]float32, 12)

	st := nb.Repeat(src, output(t, got, 3, 4), opr.RepeatParam{Repeats: 2, Axis: 1})
	require.True(t, st.IsOK(), st.String())
	assert.Equal(t, []float32{1, 1, 4, 4, 2, 2, 5, 5, 3, 3, 6, 6}, got)
}

func TestRepeatInvalidParam(t *testing.T) {
	nb := New()
	src := input(t, []int32{1, 2}, 2)

	st := nb.Repeat(src, output(t, make([]int32, 2), 2), opr.RepeatParam{Repeats: 0, Axis: 0})
	assert.Equal(t, status.InvalidParam, st.Code())

	st = nb.Repeat(src, output(t, make([]int32, 2), 2), opr.RepeatParam{Repeats: 1, Axis: 1})
	assert.Equal(t, status.InvalidParam, st.Code())

	st = nb.Repeat(src, output(t, make([]int32, 3), 3), opr.RepeatParam{Repeats: 2, Axis: 0})
	assert.Equal(t, status.MismatchedShape, st.Code())

	st = nb.Repeat(src, output(t, make([]int64, 4), 4), opr.RepeatParam{Repeats: 2, Axis: 0})
	assert.Equal(t, status.MismatchedDType, st.Code())
}

func TestCopyToContiguous(t *testing.T) {
	nb := New()
	src := strided(t, []int64{1, 2, 3, 4, 5, 6}, []int{3, 2}, []int{1, 3})
	got := make([]int64, 6)

	st := nb.Copy(src, output(t, got, 3, 2))
	require.True(t, st.IsOK(), st.String())
	assert.Equal(t, []int64{1, 4, 2, 5, 3, 6}, got)
}

func TestCopyReshapes(t *testing.T) {
	nb := New()
	got := make([]bool, 4)
	st := nb.Copy(input(t, []bool{true, false, false, true}, 2, 2), output(t, got, 4))
	require.True(t, st.IsOK(), st.String())
	assert.Equal(t, []bool{true, false, false, true}, got)
}

func TestCopyErrors(t *testing.T) {
	nb := New()

	st := nb.Copy(input(t, []float32{1, 2, 3}, 3), output(t, make([]float32, 4), 4))
	assert.Equal(t, status.MismatchedShape, st.Code())

	st = nb.Copy(input(t, []float32{1, 2}, 2), output(t, make([]int32, 2), 2))
	assert.Equal(t, status.MismatchedDType, st.Code())

	st = nb.Copy(input(t, []float32{}, 0), output(t, []float32{}, 0))
	assert.Equal(t, status.InvalidArgument, st.Code())
}
