package compute

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviszhen/compute/pkg/column"
	"github.com/daviszhen/compute/pkg/common"
)

func Test_addColumnScalar(t *testing.T) {
	col := ColumnResult(column.FromSlice(common.Int32Type(), []int32{1, 2, 3}))
	ten := ValueResult(column.NewIntValue(common.Int32Type(), 10))

	res := asColumn(t, DispatchBinary(col, ten, OP_ADD))
	assert.Equal(t, common.LTID_INT64, res.Typ().Id)
	assert.Equal(t, []int64{11, 12, 13}, column.TypedSlice[int64](res))
}

func Test_divColumns(t *testing.T) {
	l := ColumnResult(column.FromSlice(common.Int32Type(), []int32{4, 5, 6}))
	r := ColumnResult(column.FromSlice(common.Int32Type(), []int32{2, 2, 2}))

	res := asColumn(t, DispatchBinary(l, r, OP_DIV))
	assert.Equal(t, common.LTID_DOUBLE, res.Typ().Id)
	assert.Equal(t, []float64{2.0, 2.5, 3.0}, column.TypedSlice[float64](res))

	// integer division by zero lands on IEEE infinity, not a fault
	z := ColumnResult(column.FromSlice(common.Int32Type(), []int32{0, 0, 0}))
	res = asColumn(t, DispatchBinary(l, z, OP_DIV))
	assert.True(t, math.IsInf(column.TypedSlice[float64](res)[0], 1))
}

// Integral results take one widening step past the wider operand,
// capped at 64 bits.
func Test_promotionWidths(t *testing.T) {
	i8 := ColumnResult(column.FromSlice(common.Int8Type(), []int8{100, 27}))
	sum := asColumn(t, DispatchBinary(i8, i8, OP_ADD))
	assert.Equal(t, common.LTID_INT16, sum.Typ().Id)
	assert.Equal(t, []int16{200, 54}, column.TypedSlice[int16](sum))

	u8 := ColumnResult(column.FromSlice(common.Uint8Type(), []uint8{200, 3}))
	prod := asColumn(t, DispatchBinary(u8, u8, OP_MUL))
	assert.Equal(t, common.LTID_UINT16, prod.Typ().Id)
	assert.Equal(t, []uint16{40000, 9}, column.TypedSlice[uint16](prod))

	f32 := ColumnResult(column.FromSlice(common.FloatType(), []float32{1.5, 2}))
	fsum := asColumn(t, DispatchBinary(f32, f32, OP_ADD))
	assert.Equal(t, common.LTID_FLOAT, fsum.Typ().Id)
	assert.Equal(t, []float32{3, 4}, column.TypedSlice[float32](fsum))

	i32 := ColumnResult(column.FromSlice(common.Int32Type(), []int32{1, 2}))
	mixed := asColumn(t, DispatchBinary(f32, i32, OP_ADD))
	assert.Equal(t, common.LTID_DOUBLE, mixed.Typ().Id)
}

// uint64 mixed with signed caps at int64 and wraps two's-complement.
func Test_promotionU64Signed(t *testing.T) {
	u := ColumnResult(column.FromSlice(common.Uint64Type(), []uint64{math.MaxUint64}))
	five := ValueResult(column.NewIntValue(common.Int64Type(), 5))

	res := asColumn(t, DispatchBinary(u, five, OP_ADD))
	assert.Equal(t, common.LTID_INT64, res.Typ().Id)
	assert.Equal(t, []int64{4}, column.TypedSlice[int64](res))
}

// The constant side of sub and div keeps its position.
func Test_arithReversed(t *testing.T) {
	col := ColumnResult(column.FromSlice(common.Int32Type(), []int32{1, 2, 3}))
	ten := ValueResult(column.NewIntValue(common.Int32Type(), 10))

	res := asColumn(t, DispatchBinary(ten, col, OP_SUB))
	assert.Equal(t, []int64{9, 8, 7}, column.TypedSlice[int64](res))

	res = asColumn(t, DispatchBinary(col, ten, OP_SUB))
	assert.Equal(t, []int64{-9, -8, -7}, column.TypedSlice[int64](res))

	twelve := ValueResult(column.NewIntValue(common.Int32Type(), 12))
	div := asColumn(t, DispatchBinary(twelve,
		ColumnResult(column.FromSlice(common.Int32Type(), []int32{4, 6})), OP_DIV))
	assert.Equal(t, []float64{3.0, 2.0}, column.TypedSlice[float64](div))
}

// Two scalars fold into one scalar of the promoted type.
func Test_arithValues(t *testing.T) {
	three := ValueResult(column.NewIntValue(common.Int32Type(), 3))
	four := ValueResult(column.NewIntValue(common.Int32Type(), 4))

	sum := asValue(t, DispatchBinary(three, four, OP_ADD))
	assert.Equal(t, common.LTID_INT64, sum.Typ.Id)
	assert.Equal(t, int64(7), sum.I64)

	one := ValueResult(column.NewIntValue(common.Int64Type(), 1))
	two := ValueResult(column.NewIntValue(common.Int64Type(), 2))
	half := asValue(t, DispatchBinary(one, two, OP_DIV))
	assert.Equal(t, common.LTID_DOUBLE, half.Typ.Id)
	assert.Equal(t, 0.5, half.F64)

	u := ValueResult(column.NewUintValue(common.Uint8Type(), 200))
	uprod := asValue(t, DispatchBinary(u, u, OP_MUL))
	assert.Equal(t, common.LTID_UINT16, uprod.Typ.Id)
	assert.Equal(t, uint64(40000), uprod.U64)
}

func Test_arithErrors(t *testing.T) {
	col := ColumnResult(column.FromSlice(common.Int32Type(), []int32{1, 2}))
	val := ValueResult(column.NewIntValue(common.Int32Type(), 1))

	empty := ColumnResult(column.NewColumn(common.EmptyType(), 2))
	_, err := DispatchBinary(empty, val, OP_ADD)
	assert.Equal(t, ErrTypeMismatch, opErrKind(t, err))
	assert.Contains(t, err.Error(), "empty column")
	_, err = DispatchBinary(col, empty, OP_MUL)
	assert.Equal(t, ErrTypeMismatch, opErrKind(t, err))

	pool := column.NewStringPool()
	sc, err := column.StringColumnFromValues(pool, common.StringType(), []string{"a", "b"})
	require.NoError(t, err)
	_, err = DispatchBinary(ColumnResult(sc), val, OP_ADD)
	assert.Equal(t, ErrTypeMismatch, opErrKind(t, err))

	b := ColumnResult(column.FromSlice(common.BooleanType(), []bool{true, false}))
	_, err = DispatchBinary(b, col, OP_ADD)
	assert.Equal(t, ErrTypeMismatch, opErrKind(t, err))

	long := ColumnResult(column.FromSlice(common.Int32Type(), []int32{1, 2, 3}))
	_, err = DispatchBinary(col, long, OP_SUB)
	assert.Equal(t, ErrShapeMismatch, opErrKind(t, err))
}

// Column/scalar keeps the column's presence, column/column keeps the
// intersection of presences.
func Test_arithSparse(t *testing.T) {
	sp := ColumnResult(column.SparseFromSlice(common.Int32Type(), 4,
		[]uint32{0, 2}, []int32{1, 2}))
	ten := ValueResult(column.NewIntValue(common.Int32Type(), 10))

	res := asColumn(t, DispatchBinary(sp, ten, OP_ADD))
	assert.True(t, res.IsSparse())
	assert.Equal(t, 4, res.RowCount())
	assert.True(t, res.Presence().Contains(0))
	assert.True(t, res.Presence().Contains(2))
	assert.Equal(t, []int64{11, 12}, column.TypedSlice[int64](res))

	other := ColumnResult(column.SparseFromSlice(common.Int32Type(), 4,
		[]uint32{2, 3}, []int32{5, 7}))
	res = asColumn(t, DispatchBinary(sp, other, OP_ADD))
	assert.True(t, res.IsSparse())
	assert.Equal(t, 1, res.StoredCount())
	assert.True(t, res.Presence().Contains(2))
	assert.Equal(t, []int64{7}, column.TypedSlice[int64](res))

	dense := ColumnResult(column.FromSlice(common.Int32Type(), []int32{1, 1, 1, 1}))
	res = asColumn(t, DispatchBinary(sp, dense, OP_MUL))
	assert.True(t, res.IsSparse())
	assert.Equal(t, []int64{1, 2}, column.TypedSlice[int64](res))
}
