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
	"github.com/RoaringBitmap/roaring"
	"go.uber.org/zap"

	"github.com/daviszhen/compute/pkg/column"
	"github.com/daviszhen/compute/pkg/common"
	"github.com/daviszhen/compute/pkg/util"
)

// compareKernel routes a comparison over the operand kinds that carry
// element data. Two scalars are rejected, folding constants belongs
// upstream of dispatch.
func compareKernel(op OpType, left, right *OpResult) (*OpResult, error) {
	switch {
	case left._kind == RK_COLUMN && right._kind == RK_COLUMN:
		return compareColCol(op, left._col, right._col)
	case left._kind == RK_COLUMN && right._kind == RK_VALUE:
		return compareColVal(op, left._col, right._val)
	case left._kind == RK_VALUE && right._kind == RK_COLUMN:
		return compareColVal(FlipCompare(op), right._col, left._val)
	default:
		return nil, twoValuesErr(op)
	}
}

// logicalStrings decodes each stored offset through the column's pool
// into logical text.
func logicalStrings(col *column.Column) []string {
	pool := col.Pool()
	util.AssertFunc(pool != nil)
	offs := column.TypedSlice[uint64](col)
	out := make([]string, len(offs))
	typ := col.Typ()
	for i, off := range offs {
		out[i] = pool.LogicalAt(off, typ)
	}
	return out
}

func compareColCol(op OpType, l, r *column.Column) (*OpResult, error) {
	if l.Typ().IsEmpty() || r.Typ().IsEmpty() {
		return EmptyResult(), nil
	}
	if l.RowCount() != r.RowCount() {
		return nil, shapeMismatchErr(op, l.RowCount(), r.RowCount())
	}
	class := common.ClassifyComparison(l.Typ(), r.Typ())
	if class == common.CMP_INVALID {
		return nil, typeMismatchErr(op, l.Typ(), r.Typ())
	}

	stage := &util.Bitmap{}
	var positions *roaring.Bitmap
	switch class {
	case common.CMP_I64:
		lv, rv, pos := alignNumeric[int64](l, r)
		positions = pos
		stage.Init(len(lv))
		cmpLoop(op, lv, rv, stage)
	case common.CMP_U64:
		lv, rv, pos := alignNumeric[uint64](l, r)
		positions = pos
		stage.Init(len(lv))
		cmpLoop(op, lv, rv, stage)
	case common.CMP_F64:
		lv, rv, pos := alignNumeric[float64](l, r)
		positions = pos
		stage.Init(len(lv))
		cmpLoop(op, lv, rv, stage)
	case common.CMP_BOOL:
		lv, rv, pos := alignNumeric[uint8](l, r)
		positions = pos
		stage.Init(len(lv))
		cmpLoop(op, lv, rv, stage)
	case common.CMP_U64_SIGNED:
		// align the uint64 side on the left of the sign-check loop
		ucol, scol, o := l, r, op
		if !l.Typ().IsUnsigned() {
			ucol, scol, o = r, l, FlipCompare(op)
		}
		uv := widenSlice[uint64](ucol)
		sv := widenSlice[int64](scol)
		positions = pairPositions(l, r)
		if positions != nil {
			uv = gather(uv, ucol, positions)
			sv = gather(sv, scol, positions)
		}
		stage.Init(len(uv))
		cmpLoopU64Signed(o, uv, sv, stage)
	case common.CMP_STRING:
		// each side decodes through its own pool, the pools need not
		// be shared and offsets never compare across columns
		ls := logicalStrings(l)
		rs := logicalStrings(r)
		positions = pairPositions(l, r)
		if positions != nil {
			ls = gather(ls, l, positions)
			rs = gather(rs, r, positions)
		}
		stage.Init(len(ls))
		cmpLoop(op, ls, rs, stage)
	default:
		panic("usp")
	}

	mask := maskFromStage(stage, positions, l.RowCount())
	util.Debug("compare columns",
		zap.String("op", op.String()),
		zap.Int("rows", l.RowCount()),
		zap.Int("hits", mask.CountSet()))
	return MaskResult(mask), nil
}

func compareColVal(op OpType, col *column.Column, val *column.Value) (*OpResult, error) {
	if col.Typ().IsEmpty() {
		return EmptyResult(), nil
	}
	class := common.ClassifyComparison(col.Typ(), val.Typ)
	if class == common.CMP_INVALID {
		return nil, typeMismatchErr(op, col.Typ(), val.Typ)
	}

	stage := &util.Bitmap{}
	stage.Init(col.StoredCount())
	switch class {
	case common.CMP_I64:
		cmpLoopVal(op, widenSlice[int64](col), widenValue[int64](val), stage)
	case common.CMP_U64:
		cmpLoopVal(op, widenSlice[uint64](col), widenValue[uint64](val), stage)
	case common.CMP_F64:
		cmpLoopVal(op, widenSlice[float64](col), widenValue[float64](val), stage)
	case common.CMP_BOOL:
		cmpLoopVal(op, widenSlice[uint8](col), widenValue[uint8](val), stage)
	case common.CMP_U64_SIGNED:
		if col.Typ().IsUnsigned() {
			cmpLoopValU64Signed(op, widenSlice[uint64](col), val.I64, stage)
		} else {
			cmpLoopValSignedU64(op, widenSlice[int64](col), val.U64, stage)
		}
	case common.CMP_STRING:
		compareColValString(op, col, val, stage)
	default:
		panic("usp")
	}

	mask := maskFromStage(stage, col.Presence(), col.RowCount())
	util.Debug("compare column with scalar",
		zap.String("op", op.String()),
		zap.Int("rows", col.RowCount()),
		zap.Int("hits", mask.CountSet()))
	return MaskResult(mask), nil
}

// compareColValString compares a string column against one scalar. The
// equality family resolves the scalar to a pool offset without
// interning and compares offsets, a scalar the pool has never seen can
// equal no stored row. The ordering family compares decoded logical
// content, pool offsets carry insertion order and are meaningless to
// order by.
func compareColValString(op OpType, col *column.Column, val *column.Value, stage *util.Bitmap) {
	if op == OP_EQ || op == OP_NE {
		pool := col.Pool()
		util.AssertFunc(pool != nil)
		content := val.Str
		if col.Typ().IsFixedString() {
			padded, ok := common.AsciiToPaddedUtf32(content, col.Typ().Width)
			if !ok {
				if op == OP_NE {
					stage.SetAll(col.StoredCount())
				}
				util.Debug("scalar does not fit fixed width",
					zap.String("value", val.Str),
					zap.Int("width", col.Typ().Width))
				return
			}
			content = padded
		}
		off, has := pool.OffsetOf(content)
		if !has {
			if op == OP_NE {
				stage.SetAll(col.StoredCount())
			}
			util.Debug("scalar not pooled", zap.String("value", val.Str))
			return
		}
		cmpLoopVal(op, column.TypedSlice[uint64](col), off, stage)
		return
	}
	cmpLoopVal(op, logicalStrings(col), val.Str, stage)
}
