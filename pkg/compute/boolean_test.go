package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviszhen/compute/pkg/column"
)

func boolsMask(rows int, set ...int) *OpResult {
	mask := column.NewMask(rows)
	for _, row := range set {
		mask.Set(row)
	}
	return MaskResult(mask)
}

// The sentinel algebra folds without touching any bitmap and stays
// commutative.
func Test_booleanSentinels(t *testing.T) {
	tests := []struct {
		name string
		l, r *OpResult
		op   OpType
		want ResultKind
	}{
		{"empty and empty", EmptyResult(), EmptyResult(), OP_AND, RK_EMPTY},
		{"empty or empty", EmptyResult(), EmptyResult(), OP_OR, RK_EMPTY},
		{"empty xor empty", EmptyResult(), EmptyResult(), OP_XOR, RK_EMPTY},
		{"empty and full", EmptyResult(), FullResult(), OP_AND, RK_EMPTY},
		{"empty or full", EmptyResult(), FullResult(), OP_OR, RK_FULL},
		{"empty xor full", EmptyResult(), FullResult(), OP_XOR, RK_FULL},
		{"full and full", FullResult(), FullResult(), OP_AND, RK_FULL},
		{"full or full", FullResult(), FullResult(), OP_OR, RK_FULL},
		{"full xor full", FullResult(), FullResult(), OP_XOR, RK_EMPTY},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := DispatchBinary(tt.l, tt.r, tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Kind())

			// mirrored operands fold identically
			mirror, err := DispatchBinary(tt.r, tt.l, tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.want, mirror.Kind())
		})
	}

	// sentinel results are the shared singletons, nothing is allocated
	res, err := DispatchBinary(EmptyResult(), FullResult(), OP_AND)
	require.NoError(t, err)
	assert.Same(t, EmptyResult(), res)
}

func Test_booleanMaskWithSentinel(t *testing.T) {
	m := boolsMask(4, 0, 2)

	res, err := DispatchBinary(m, EmptyResult(), OP_AND)
	require.NoError(t, err)
	assert.Same(t, EmptyResult(), res)

	or := asMask(t, DispatchBinary(m, EmptyResult(), OP_OR))
	assert.Equal(t, []bool{true, false, true, false}, or.Bools())

	xorEmpty := asMask(t, DispatchBinary(EmptyResult(), m, OP_XOR))
	assert.Equal(t, []bool{true, false, true, false}, xorEmpty.Bools())

	and := asMask(t, DispatchBinary(m, FullResult(), OP_AND))
	assert.Equal(t, []bool{true, false, true, false}, and.Bools())

	res, err = DispatchBinary(m, FullResult(), OP_OR)
	require.NoError(t, err)
	assert.Same(t, FullResult(), res)

	// xor against full complements over the mask's own row count
	not := asMask(t, DispatchBinary(m, FullResult(), OP_XOR))
	assert.Equal(t, []bool{false, true, false, true}, not.Bools())

	// the operand mask stays untouched
	assert.Equal(t, []bool{true, false, true, false}, m.Mask().Bools())
}

func Test_booleanMasks(t *testing.T) {
	l := boolsMask(4, 0, 1)
	r := boolsMask(4, 1, 3)

	and := asMask(t, DispatchBinary(l, r, OP_AND))
	assert.Equal(t, []bool{false, true, false, false}, and.Bools())

	or := asMask(t, DispatchBinary(l, r, OP_OR))
	assert.Equal(t, []bool{true, true, false, true}, or.Bools())

	xor := asMask(t, DispatchBinary(l, r, OP_XOR))
	assert.Equal(t, []bool{true, false, false, true}, xor.Bools())
}

func Test_booleanMaskShapeMismatch(t *testing.T) {
	l := boolsMask(3, 0)
	r := boolsMask(4, 0)
	_, err := DispatchBinary(l, r, OP_AND)
	assert.Equal(t, ErrShapeMismatch, opErrKind(t, err))
}
