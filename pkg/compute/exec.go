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
	"cmp"
	"math"

	"github.com/RoaringBitmap/roaring"
	"github.com/RoaringBitmap/roaring/roaring64"

	"github.com/daviszhen/compute/pkg/column"
	"github.com/daviszhen/compute/pkg/common"
	"github.com/daviszhen/compute/pkg/util"
)

// Numeric covers every physical element type a numeric column can
// store. The kernels are generic over one widened type W instead of a
// cross product of left and right element types: each operand is
// widened into W through a single runtime switch, then one loop runs.
type Numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func widenInto[W Numeric, S Numeric](out []W, src []S) {
	for i, v := range src {
		out[i] = W(v)
	}
}

// widenSlice reads the stored slots of col widened into W. Boolean
// slots widen to 0/1 so false orders below true.
func widenSlice[W Numeric](col *column.Column) []W {
	out := make([]W, col.StoredCount())
	switch col.Typ().GetInternalType() {
	case common.BOOL:
		for i, v := range column.TypedSlice[bool](col) {
			if v {
				out[i] = 1
			}
		}
	case common.INT8:
		widenInto(out, column.TypedSlice[int8](col))
	case common.INT16:
		widenInto(out, column.TypedSlice[int16](col))
	case common.INT32:
		widenInto(out, column.TypedSlice[int32](col))
	case common.INT64:
		widenInto(out, column.TypedSlice[int64](col))
	case common.UINT8:
		widenInto(out, column.TypedSlice[uint8](col))
	case common.UINT16:
		widenInto(out, column.TypedSlice[uint16](col))
	case common.UINT32:
		widenInto(out, column.TypedSlice[uint32](col))
	case common.UINT64:
		widenInto(out, column.TypedSlice[uint64](col))
	case common.FLOAT:
		widenInto(out, column.TypedSlice[float32](col))
	case common.DOUBLE:
		widenInto(out, column.TypedSlice[float64](col))
	default:
		panic("usp")
	}
	return out
}

// widenValue reads a numeric or boolean scalar widened into W.
func widenValue[W Numeric](val *column.Value) W {
	switch {
	case val.Typ.IsBool():
		if val.Bool {
			return 1
		}
		return 0
	case val.Typ.IsFloat():
		return W(val.F64)
	case val.Typ.IsUnsigned():
		return W(val.U64)
	case val.Typ.IsIntegral():
		return W(val.I64)
	default:
		panic("usp")
	}
}

// pairPositions returns the rows both columns store, nil when both are
// dense and every row is already aligned. The returned bitmap is fresh,
// callers may keep it as a result's presence.
func pairPositions(l, r *column.Column) *roaring.Bitmap {
	switch {
	case !l.IsSparse() && !r.IsSparse():
		return nil
	case l.IsSparse() && r.IsSparse():
		return roaring.And(l.Presence(), r.Presence())
	case l.IsSparse():
		return l.Presence().Clone()
	default:
		return r.Presence().Clone()
	}
}

// storedIndex maps a logical row to the column's stored slot for it.
func storedIndex(col *column.Column, pos uint32) int {
	if !col.IsSparse() {
		return int(pos)
	}
	return int(col.Presence().Rank(pos)) - 1
}

// gather picks out vals (stored order) at the given logical positions.
func gather[W any](vals []W, col *column.Column, positions *roaring.Bitmap) []W {
	out := make([]W, 0, positions.GetCardinality())
	iter := positions.Iterator()
	for iter.HasNext() {
		pos := iter.Next()
		out = append(out, vals[storedIndex(col, pos)])
	}
	return out
}

// alignNumeric widens both columns into W, aligned on the rows both
// store. positions is nil when both columns are dense.
func alignNumeric[W Numeric](l, r *column.Column) ([]W, []W, *roaring.Bitmap) {
	lv := widenSlice[W](l)
	rv := widenSlice[W](r)
	positions := pairPositions(l, r)
	if positions != nil {
		lv = gather(lv, l, positions)
		rv = gather(rv, r, positions)
	}
	return lv, rv, positions
}

// maskFromStage compresses staged verdicts into a full-length mask.
// With nil positions the stage is already indexed by logical row,
// otherwise stage bit k belongs to the k-th position.
func maskFromStage(stage *util.Bitmap, positions *roaring.Bitmap, rowCount int) *column.Mask {
	var mask *column.Mask
	if positions == nil {
		mask = column.FromStaging(stage, rowCount)
	} else {
		mask = column.ScatterStaging(stage, positions, rowCount)
	}
	mask.Optimize()
	return mask
}

func cmpLoop[W cmp.Ordered](op OpType, l, r []W, stage *util.Bitmap) {
	switch op {
	case OP_EQ:
		for i := range l {
			stage.Set(uint64(i), l[i] == r[i])
		}
	case OP_NE:
		for i := range l {
			stage.Set(uint64(i), l[i] != r[i])
		}
	case OP_LT:
		for i := range l {
			stage.Set(uint64(i), l[i] < r[i])
		}
	case OP_LE:
		for i := range l {
			stage.Set(uint64(i), l[i] <= r[i])
		}
	case OP_GT:
		for i := range l {
			stage.Set(uint64(i), l[i] > r[i])
		}
	case OP_GE:
		for i := range l {
			stage.Set(uint64(i), l[i] >= r[i])
		}
	default:
		panic("usp")
	}
}

func cmpLoopVal[W cmp.Ordered](op OpType, l []W, v W, stage *util.Bitmap) {
	switch op {
	case OP_EQ:
		for i := range l {
			stage.Set(uint64(i), l[i] == v)
		}
	case OP_NE:
		for i := range l {
			stage.Set(uint64(i), l[i] != v)
		}
	case OP_LT:
		for i := range l {
			stage.Set(uint64(i), l[i] < v)
		}
	case OP_LE:
		for i := range l {
			stage.Set(uint64(i), l[i] <= v)
		}
	case OP_GT:
		for i := range l {
			stage.Set(uint64(i), l[i] > v)
		}
	case OP_GE:
		for i := range l {
			stage.Set(uint64(i), l[i] >= v)
		}
	default:
		panic("usp")
	}
}

// cmpLoopU64Signed compares uint64 values against signed ones through
// an explicit sign check. A negative value sits below every uint64, a
// blind cast would flip that.
func cmpLoopU64Signed(op OpType, l []uint64, r []int64, stage *util.Bitmap) {
	switch op {
	case OP_EQ:
		for i := range l {
			stage.Set(uint64(i), r[i] >= 0 && l[i] == uint64(r[i]))
		}
	case OP_NE:
		for i := range l {
			stage.Set(uint64(i), r[i] < 0 || l[i] != uint64(r[i]))
		}
	case OP_LT:
		for i := range l {
			stage.Set(uint64(i), r[i] >= 0 && l[i] < uint64(r[i]))
		}
	case OP_LE:
		for i := range l {
			stage.Set(uint64(i), r[i] >= 0 && l[i] <= uint64(r[i]))
		}
	case OP_GT:
		for i := range l {
			stage.Set(uint64(i), r[i] < 0 || l[i] > uint64(r[i]))
		}
	case OP_GE:
		for i := range l {
			stage.Set(uint64(i), r[i] < 0 || l[i] >= uint64(r[i]))
		}
	default:
		panic("usp")
	}
}

// cmpLoopValU64Signed compares a uint64 column against one signed
// scalar. A negative scalar resolves every row at once.
func cmpLoopValU64Signed(op OpType, l []uint64, v int64, stage *util.Bitmap) {
	if v < 0 {
		switch op {
		case OP_NE, OP_GT, OP_GE:
			stage.SetAll(len(l))
		case OP_EQ, OP_LT, OP_LE:
		default:
			panic("usp")
		}
		return
	}
	cmpLoopVal(op, l, uint64(v), stage)
}

// cmpLoopValSignedU64 compares a signed column against one uint64
// scalar. A scalar past MaxInt64 sits above every signed value.
func cmpLoopValSignedU64(op OpType, l []int64, v uint64, stage *util.Bitmap) {
	if v > math.MaxInt64 {
		switch op {
		case OP_NE, OP_LT, OP_LE:
			stage.SetAll(len(l))
		case OP_EQ, OP_GT, OP_GE:
		default:
			panic("usp")
		}
		return
	}
	cmpLoopVal(op, l, int64(v), stage)
}

// isinLoop stages per-row set membership, inverted for is-not-in via
// want=false.
func isinLoop[W comparable](l []W, set map[W]struct{}, want bool, stage *util.Bitmap) {
	for i := range l {
		_, has := set[l[i]]
		stage.Set(uint64(i), has == want)
	}
}

func isinLoopOffsets(l []uint64, offs *roaring64.Bitmap, want bool, stage *util.Bitmap) {
	for i := range l {
		stage.Set(uint64(i), offs.Contains(l[i]) == want)
	}
}

// arithLoop computes l[i] op r[i] into out. Divide only ever runs with
// W = float64, the promoted divide type.
func arithLoop[W Numeric](op OpType, l, r, out []W) {
	switch op {
	case OP_ADD:
		for i := range l {
			out[i] = l[i] + r[i]
		}
	case OP_SUB:
		for i := range l {
			out[i] = l[i] - r[i]
		}
	case OP_MUL:
		for i := range l {
			out[i] = l[i] * r[i]
		}
	case OP_DIV:
		for i := range l {
			out[i] = l[i] / r[i]
		}
	default:
		panic("usp")
	}
}

// arithLoopVal computes against a constant side. reversed means the
// constant is the left operand, which matters for sub and div.
func arithLoopVal[W Numeric](op OpType, l []W, v W, reversed bool, out []W) {
	switch op {
	case OP_ADD:
		for i := range l {
			out[i] = l[i] + v
		}
	case OP_SUB:
		if reversed {
			for i := range l {
				out[i] = v - l[i]
			}
		} else {
			for i := range l {
				out[i] = l[i] - v
			}
		}
	case OP_MUL:
		for i := range l {
			out[i] = l[i] * v
		}
	case OP_DIV:
		if reversed {
			for i := range l {
				out[i] = v / l[i]
			}
		} else {
			for i := range l {
				out[i] = l[i] / v
			}
		}
	default:
		panic("usp")
	}
}

func arithScalar[W Numeric](op OpType, a, b W) W {
	switch op {
	case OP_ADD:
		return a + b
	case OP_SUB:
		return a - b
	case OP_MUL:
		return a * b
	case OP_DIV:
		return a / b
	default:
		panic("usp")
	}
}
