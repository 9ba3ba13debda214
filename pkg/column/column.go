// Copyright 2023-2024 daviszhen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package column

import (
	"fmt"
	"unsafe"

	"github.com/RoaringBitmap/roaring"

	"github.com/daviszhen/compute/pkg/common"
	"github.com/daviszhen/compute/pkg/util"
)

// Column is a typed vector of values. Dense columns store one value
// per logical row. Sparse columns store only the present rows, packed
// in ascending row order, with the presence bitmap mapping stored
// slots back to logical row positions.
//
// String columns of either flavor store pool offsets, never inline
// text.
type Column struct {
	typ      common.LType
	data     []byte
	rowCount int
	presence *roaring.Bitmap
	pool     *StringPool
}

// NewColumn allocates a dense column with rowCount zeroed slots.
func NewColumn(typ common.LType, rowCount int) *Column {
	util.AssertFunc(rowCount >= 0)
	col := &Column{
		typ:      typ,
		rowCount: rowCount,
	}
	ptyp := typ.GetInternalType()
	if ptyp != common.NA {
		col.data = util.GAlloc.Alloc(rowCount * ptyp.Size())
	}
	return col
}

// NewSparseColumn allocates a sparse column over rowCount logical rows
// with storage for exactly the rows present in presence.
func NewSparseColumn(typ common.LType, rowCount int, presence *roaring.Bitmap) *Column {
	util.AssertFunc(rowCount >= 0)
	util.AssertFunc(presence != nil)
	if !presence.IsEmpty() {
		util.AssertFunc(int(presence.Maximum()) < rowCount)
	}
	col := &Column{
		typ:      typ,
		rowCount: rowCount,
		presence: presence,
	}
	ptyp := typ.GetInternalType()
	if ptyp != common.NA {
		col.data = util.GAlloc.Alloc(int(presence.GetCardinality()) * ptyp.Size())
	}
	return col
}

func (col *Column) Typ() common.LType {
	return col.typ
}

// RowCount is the logical row count, not the stored slot count.
func (col *Column) RowCount() int {
	return col.rowCount
}

// StoredCount is the number of physically stored slots. Equal to
// RowCount for dense columns.
func (col *Column) StoredCount() int {
	if col.presence != nil {
		return int(col.presence.GetCardinality())
	}
	return col.rowCount
}

func (col *Column) IsSparse() bool {
	return col.presence != nil
}

// Presence returns the presence bitmap, nil for dense columns.
func (col *Column) Presence() *roaring.Bitmap {
	return col.presence
}

func (col *Column) Pool() *StringPool {
	return col.pool
}

func (col *Column) SetPool(pool *StringPool) {
	col.pool = pool
}

func (col *Column) String() string {
	shape := "dense"
	if col.IsSparse() {
		shape = fmt.Sprintf("sparse %d/%d", col.StoredCount(), col.rowCount)
	}
	return fmt.Sprintf("Column{%s %s rows=%d}", col.typ, shape, col.rowCount)
}

// TypedSlice reinterprets the stored slots as a []T. T must match the
// column's physical slot size.
func TypedSlice[T any](col *Column) []T {
	if len(col.data) == 0 {
		return nil
	}
	var zero T
	ptyp := col.typ.GetInternalType()
	util.AssertFunc(int(unsafe.Sizeof(zero)) == ptyp.Size())
	return util.ToSlice[T](col.data, ptyp.Size())
}

// FromSlice builds a dense column holding vals. T must match the
// physical slot size of typ.
func FromSlice[T any](typ common.LType, vals []T) *Column {
	col := NewColumn(typ, len(vals))
	copy(TypedSlice[T](col), vals)
	return col
}

// SparseFromSlice builds a sparse column over rowCount logical rows.
// positions lists the present rows in ascending order and vals holds
// their stored values, one per position.
func SparseFromSlice[T any](typ common.LType, rowCount int, positions []uint32, vals []T) *Column {
	util.AssertFunc(len(positions) == len(vals))
	presence := roaring.BitmapOf(positions...)
	util.AssertFunc(int(presence.GetCardinality()) == len(positions))
	col := NewSparseColumn(typ, rowCount, presence)
	copy(TypedSlice[T](col), vals)
	return col
}

// StringColumnFromValues interns vals into pool and builds a dense
// string column of their offsets. Fixed-width types transcode each
// value to padded UTF-32 first and reject values that do not fit.
func StringColumnFromValues(pool *StringPool, typ common.LType, vals []string) (*Column, error) {
	util.AssertFunc(typ.IsString())
	col := NewColumn(typ, len(vals))
	col.pool = pool
	offs := TypedSlice[uint64](col)
	for i, val := range vals {
		if typ.IsFixedString() {
			off, ok := pool.InternPadded(val, typ.Width)
			if !ok {
				return nil, fmt.Errorf("string %q does not fit fixed width %d", val, typ.Width)
			}
			offs[i] = off
		} else {
			offs[i] = pool.Intern(val)
		}
	}
	return col, nil
}
