package compute

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviszhen/compute/pkg/column"
	"github.com/daviszhen/compute/pkg/common"
)

// is-in and is-not-in are complements over stored rows.
func Test_membershipComplement(t *testing.T) {
	col := ColumnResult(column.FromSlice(common.Int32Type(), []int32{1, 2, 3, 4}))
	set := SetResult(intSet(t, common.Int32Type(), 2, 4))

	isin := asMask(t, DispatchBinary(col, set, OP_ISIN))
	assert.Equal(t, []bool{false, true, false, true}, isin.Bools())

	notin := asMask(t, DispatchBinary(col, set, OP_ISNOTIN))
	assert.Equal(t, []bool{true, false, true, false}, notin.Bools())
}

func Test_membershipEmptySet(t *testing.T) {
	col := ColumnResult(column.FromSlice(common.Int32Type(), []int32{1, 2, 3}))
	set, err := column.NewValueSet(common.Int32Type(), nil)
	require.NoError(t, err)
	sr := SetResult(set)

	isin := asMask(t, DispatchBinary(col, sr, OP_ISIN))
	assert.Equal(t, 0, isin.CountSet())

	notin := asMask(t, DispatchBinary(col, sr, OP_ISNOTIN))
	assert.Equal(t, []bool{true, true, true}, notin.Bools())
}

func Test_membershipEmptyTypedColumn(t *testing.T) {
	col := ColumnResult(column.NewColumn(common.EmptyType(), 4))
	set := SetResult(intSet(t, common.Int32Type(), 1))

	res, err := DispatchBinary(col, set, OP_ISIN)
	require.NoError(t, err)
	assert.Same(t, EmptyResult(), res)

	res, err = DispatchBinary(col, set, OP_ISNOTIN)
	require.NoError(t, err)
	assert.Same(t, FullResult(), res)
}

func Test_membershipBoolRejected(t *testing.T) {
	bc := ColumnResult(column.FromSlice(common.BooleanType(), []bool{true, false}))
	is := SetResult(intSet(t, common.Int32Type(), 1))
	_, err := DispatchBinary(bc, is, OP_ISIN)
	assert.Equal(t, ErrUnsupportedCombination, opErrKind(t, err))

	bs, err := column.NewValueSet(common.BooleanType(),
		[]*column.Value{column.NewBoolValue(true)})
	require.NoError(t, err)
	ic := ColumnResult(column.FromSlice(common.Int32Type(), []int32{1}))
	_, err = DispatchBinary(ic, SetResult(bs), OP_ISNOTIN)
	assert.Equal(t, ErrUnsupportedCombination, opErrKind(t, err))
}

// A negative member can never match a uint64 column and a member past
// MaxInt64 can never match a signed column.
func Test_membershipMixedSign(t *testing.T) {
	ucol := ColumnResult(column.FromSlice(common.Uint64Type(),
		[]uint64{5, math.MaxUint64}))
	sset := SetResult(intSet(t, common.Int64Type(), -3, 5))

	isin := asMask(t, DispatchBinary(ucol, sset, OP_ISIN))
	assert.Equal(t, []bool{true, false}, isin.Bools())

	scol := ColumnResult(column.FromSlice(common.Int64Type(), []int64{-3, 7}))
	uset := SetResult(uintSet(t, common.Uint64Type(), math.MaxUint64, 7))

	isin = asMask(t, DispatchBinary(scol, uset, OP_ISIN))
	assert.Equal(t, []bool{false, true}, isin.Bools())

	notin := asMask(t, DispatchBinary(scol, uset, OP_ISNOTIN))
	assert.Equal(t, []bool{true, false}, notin.Bools())
}

// Mixed numeric types meet in the float domain when either side floats.
func Test_membershipFloatDomain(t *testing.T) {
	col := ColumnResult(column.FromSlice(common.DoubleType(), []float64{1.5, 2.0}))
	set := SetResult(intSet(t, common.Int32Type(), 2))

	isin := asMask(t, DispatchBinary(col, set, OP_ISIN))
	assert.Equal(t, []bool{false, true}, isin.Bools())

	fcol := ColumnResult(column.FromSlice(common.Int32Type(), []int32{1, 2}))
	members := []*column.Value{
		column.NewFloatValue(common.DoubleType(), 2.0),
		column.NewFloatValue(common.DoubleType(), 2.5),
	}
	fset, err := column.NewValueSet(common.DoubleType(), members)
	require.NoError(t, err)
	isin = asMask(t, DispatchBinary(fcol, SetResult(fset), OP_ISIN))
	assert.Equal(t, []bool{false, true}, isin.Bools())
}

func Test_membershipStrings(t *testing.T) {
	pool := column.NewStringPool()
	col, err := column.StringColumnFromValues(pool, common.StringType(),
		[]string{"a", "b", "c"})
	require.NoError(t, err)
	cr := ColumnResult(col)

	// "zzz" was never interned and resolves to nothing
	set := SetResult(strSet(t, "b", "zzz"))
	isin := asMask(t, DispatchBinary(cr, set, OP_ISIN))
	assert.Equal(t, []bool{false, true, false}, isin.Bools())

	notin := asMask(t, DispatchBinary(cr, set, OP_ISNOTIN))
	assert.Equal(t, []bool{true, false, true}, notin.Bools())
}

// Fixed-width members resolve through their padded form, members that
// cannot fit the declared width match nothing.
func Test_membershipFixedStrings(t *testing.T) {
	pool := column.NewStringPool()
	col, err := column.StringColumnFromValues(pool, common.StringFixedType(4),
		[]string{"ab", "cd"})
	require.NoError(t, err)

	set := SetResult(strSet(t, "cd", "toolong"))
	isin := asMask(t, DispatchBinary(ColumnResult(col), set, OP_ISIN))
	assert.Equal(t, []bool{false, true}, isin.Bools())
}

// Absence is not a value: absent rows satisfy neither operator.
func Test_membershipSparse(t *testing.T) {
	col := ColumnResult(column.SparseFromSlice(common.Int64Type(), 5,
		[]uint32{1, 3}, []int64{7, 9}))
	set := SetResult(intSet(t, common.Int64Type(), 9))

	isin := asMask(t, DispatchBinary(col, set, OP_ISIN))
	assert.Equal(t, []bool{false, false, false, true, false}, isin.Bools())

	notin := asMask(t, DispatchBinary(col, set, OP_ISNOTIN))
	assert.Equal(t, []bool{false, true, false, false, false}, notin.Bools())

	empty, err := column.NewValueSet(common.Int64Type(), nil)
	require.NoError(t, err)
	notin = asMask(t, DispatchBinary(col, SetResult(empty), OP_ISNOTIN))
	assert.Equal(t, []bool{false, true, false, true, false}, notin.Bools())
}

func Test_membershipTypeMismatch(t *testing.T) {
	col := ColumnResult(column.FromSlice(common.Int32Type(), []int32{1}))
	set := SetResult(strSet(t, "a"))
	_, err := DispatchBinary(col, set, OP_ISIN)
	assert.Equal(t, ErrTypeMismatch, opErrKind(t, err))
}
