package column

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daviszhen/compute/pkg/common"
)

func Test_fromSlice(t *testing.T) {
	col := FromSlice(common.Int32Type(), []int32{1, 2, 3})
	assert.Equal(t, 3, col.RowCount())
	assert.Equal(t, 3, col.StoredCount())
	assert.False(t, col.IsSparse())
	assert.Equal(t, []int32{1, 2, 3}, TypedSlice[int32](col))
}

func Test_sparseColumn(t *testing.T) {
	col := SparseFromSlice(common.Int64Type(), 6, []uint32{1, 3, 5}, []int64{10, 20, 30})
	assert.Equal(t, 6, col.RowCount())
	assert.Equal(t, 3, col.StoredCount())
	assert.True(t, col.IsSparse())
	assert.Equal(t, []int64{10, 20, 30}, TypedSlice[int64](col))
	assert.True(t, col.Presence().Contains(3))
	assert.False(t, col.Presence().Contains(0))
}

func Test_emptyTypedColumn(t *testing.T) {
	col := NewColumn(common.EmptyType(), 4)
	assert.Equal(t, 4, col.RowCount())
	assert.Nil(t, TypedSlice[uint64](col))
}

func Test_stringColumn(t *testing.T) {
	pool := NewStringPool()
	col, err := StringColumnFromValues(pool, common.StringType(), []string{"a", "b", "a"})
	assert.NoError(t, err)
	offs := TypedSlice[uint64](col)
	assert.Equal(t, offs[0], offs[2])
	assert.NotEqual(t, offs[0], offs[1])
	assert.Equal(t, "b", pool.LogicalAt(offs[1], col.Typ()))
}

func Test_fixedStringColumn(t *testing.T) {
	pool := NewStringPool()
	typ := common.StringFixedType(3)
	col, err := StringColumnFromValues(pool, typ, []string{"ab", "abc"})
	assert.NoError(t, err)
	offs := TypedSlice[uint64](col)
	assert.Equal(t, "ab", pool.LogicalAt(offs[0], typ))
	assert.Equal(t, "abc", pool.LogicalAt(offs[1], typ))

	_, err = StringColumnFromValues(pool, typ, []string{"abcd"})
	assert.Error(t, err)
}
