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

package compute

import (
	"github.com/daviszhen/compute/pkg/column"
	"github.com/daviszhen/compute/pkg/common"
)

func arithmeticKernel(op OpType, left, right *OpResult) (*OpResult, error) {
	switch {
	case left._kind == RK_COLUMN && right._kind == RK_COLUMN:
		return arithColCol(op, left._col, right._col)
	case left._kind == RK_COLUMN && right._kind == RK_VALUE:
		return arithColVal(op, left._col, right._val, false)
	case left._kind == RK_VALUE && right._kind == RK_COLUMN:
		return arithColVal(op, right._col, left._val, true)
	default:
		return arithValVal(op, left._val, right._val)
	}
}

// resolveArithTyp decides the element type the result is computed and
// stored in. Divide always computes in float64. An EMPTY element type
// is a usage error here, not a vacuous result.
func resolveArithTyp(op OpType, l, r common.LType) (common.LType, error) {
	if l.IsEmpty() || r.IsEmpty() {
		return common.InvalidType(), emptyOperandErr()
	}
	if op == OP_DIV {
		if !l.IsNumeric() || !r.IsNumeric() {
			return common.InvalidType(), typeMismatchErr(op, l, r)
		}
		return common.DivideResultType(), nil
	}
	resTyp, ok := common.PromoteArithmetic(l, r)
	if !ok {
		return common.InvalidType(), typeMismatchErr(op, l, r)
	}
	return resTyp, nil
}

func arithColCol(op OpType, l, r *column.Column) (*OpResult, error) {
	resTyp, err := resolveArithTyp(op, l.Typ(), r.Typ())
	if err != nil {
		return nil, err
	}
	if l.RowCount() != r.RowCount() {
		return nil, shapeMismatchErr(op, l.RowCount(), r.RowCount())
	}
	var resCol *column.Column
	switch resTyp.GetInternalType() {
	case common.INT16:
		resCol = arithColColTyped[int16](op, l, r, resTyp)
	case common.INT32:
		resCol = arithColColTyped[int32](op, l, r, resTyp)
	case common.INT64:
		resCol = arithColColTyped[int64](op, l, r, resTyp)
	case common.UINT16:
		resCol = arithColColTyped[uint16](op, l, r, resTyp)
	case common.UINT32:
		resCol = arithColColTyped[uint32](op, l, r, resTyp)
	case common.UINT64:
		resCol = arithColColTyped[uint64](op, l, r, resTyp)
	case common.FLOAT:
		resCol = arithColColTyped[float32](op, l, r, resTyp)
	case common.DOUBLE:
		resCol = arithColColTyped[float64](op, l, r, resTyp)
	default:
		panic("usp")
	}
	return ColumnResult(resCol), nil
}

// arithColColTyped widens both sides into the promoted type W and
// computes elementwise. A dense pair yields a dense column. Sparse
// pairs intersect their presences, only rows both sides store exist in
// the result.
func arithColColTyped[W Numeric](op OpType, l, r *column.Column, resTyp common.LType) *column.Column {
	lv, rv, positions := alignNumeric[W](l, r)
	var resCol *column.Column
	if positions == nil {
		resCol = column.NewColumn(resTyp, l.RowCount())
	} else {
		resCol = column.NewSparseColumn(resTyp, l.RowCount(), positions)
	}
	arithLoop(op, lv, rv, column.TypedSlice[W](resCol))
	return resCol
}

func arithColVal(op OpType, col *column.Column, val *column.Value, reversed bool) (*OpResult, error) {
	lt, rt := col.Typ(), val.Typ
	if reversed {
		lt, rt = val.Typ, col.Typ()
	}
	resTyp, err := resolveArithTyp(op, lt, rt)
	if err != nil {
		return nil, err
	}
	var resCol *column.Column
	switch resTyp.GetInternalType() {
	case common.INT16:
		resCol = arithColValTyped[int16](op, col, val, reversed, resTyp)
	case common.INT32:
		resCol = arithColValTyped[int32](op, col, val, reversed, resTyp)
	case common.INT64:
		resCol = arithColValTyped[int64](op, col, val, reversed, resTyp)
	case common.UINT16:
		resCol = arithColValTyped[uint16](op, col, val, reversed, resTyp)
	case common.UINT32:
		resCol = arithColValTyped[uint32](op, col, val, reversed, resTyp)
	case common.UINT64:
		resCol = arithColValTyped[uint64](op, col, val, reversed, resTyp)
	case common.FLOAT:
		resCol = arithColValTyped[float32](op, col, val, reversed, resTyp)
	case common.DOUBLE:
		resCol = arithColValTyped[float64](op, col, val, reversed, resTyp)
	default:
		panic("usp")
	}
	return ColumnResult(resCol), nil
}

// arithColValTyped keeps the column's shape: a sparse column yields a
// sparse result with the same presence.
func arithColValTyped[W Numeric](op OpType, col *column.Column, val *column.Value, reversed bool, resTyp common.LType) *column.Column {
	lv := widenSlice[W](col)
	v := widenValue[W](val)
	var resCol *column.Column
	if col.IsSparse() {
		resCol = column.NewSparseColumn(resTyp, col.RowCount(), col.Presence().Clone())
	} else {
		resCol = column.NewColumn(resTyp, col.RowCount())
	}
	arithLoopVal(op, lv, v, reversed, column.TypedSlice[W](resCol))
	return resCol
}

// arithValVal folds two scalars into one scalar of the promoted type.
// The fold runs at the promoted width, the same width the column loops
// store at, so wraparound behaves identically on both paths.
func arithValVal(op OpType, l, r *column.Value) (*OpResult, error) {
	resTyp, err := resolveArithTyp(op, l.Typ, r.Typ)
	if err != nil {
		return nil, err
	}
	var res *column.Value
	switch resTyp.GetInternalType() {
	case common.INT16:
		res = column.NewIntValue(resTyp,
			int64(arithScalar(op, widenValue[int16](l), widenValue[int16](r))))
	case common.INT32:
		res = column.NewIntValue(resTyp,
			int64(arithScalar(op, widenValue[int32](l), widenValue[int32](r))))
	case common.INT64:
		res = column.NewIntValue(resTyp,
			arithScalar(op, widenValue[int64](l), widenValue[int64](r)))
	case common.UINT16:
		res = column.NewUintValue(resTyp,
			uint64(arithScalar(op, widenValue[uint16](l), widenValue[uint16](r))))
	case common.UINT32:
		res = column.NewUintValue(resTyp,
			uint64(arithScalar(op, widenValue[uint32](l), widenValue[uint32](r))))
	case common.UINT64:
		res = column.NewUintValue(resTyp,
			arithScalar(op, widenValue[uint64](l), widenValue[uint64](r)))
	case common.FLOAT:
		res = column.NewFloatValue(resTyp,
			float64(arithScalar(op, widenValue[float32](l), widenValue[float32](r))))
	case common.DOUBLE:
		res = column.NewFloatValue(resTyp,
			arithScalar(op, widenValue[float64](l), widenValue[float64](r)))
	default:
		panic("usp")
	}
	return ValueResult(res), nil
}
