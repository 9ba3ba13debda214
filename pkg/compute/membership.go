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
	"go.uber.org/zap"

	"github.com/daviszhen/compute/pkg/column"
	"github.com/daviszhen/compute/pkg/common"
	"github.com/daviszhen/compute/pkg/util"
)

// membershipKernel tests each stored row of col against set. Absent
// rows of a sparse column satisfy neither is-in nor is-not-in, absence
// is not a value.
func membershipKernel(op OpType, col *column.Column, set *column.ValueSet) (*OpResult, error) {
	want := op == OP_ISIN
	if col.Typ().IsEmpty() {
		if want {
			return EmptyResult(), nil
		}
		return FullResult(), nil
	}
	if col.Typ().IsBool() || set.BaseTyp().IsBool() {
		return nil, boolMembershipErr()
	}

	stage := &util.Bitmap{}
	stage.Init(col.StoredCount())
	if set.Empty() {
		// nothing to hit: is-in misses everywhere, is-not-in holds at
		// every stored row
		if !want {
			stage.SetAll(col.StoredCount())
		}
		return MaskResult(maskFromStage(stage, col.Presence(), col.RowCount())), nil
	}

	class := common.ClassifyComparison(col.Typ(), set.BaseTyp())
	if class == common.CMP_INVALID {
		return nil, typeMismatchErr(op, col.Typ(), set.BaseTyp())
	}
	switch class {
	case common.CMP_I64:
		isinLoop(widenSlice[int64](col), set.I64Set(), want, stage)
	case common.CMP_U64:
		isinLoop(widenSlice[uint64](col), set.U64Set(), want, stage)
	case common.CMP_F64:
		isinLoop(widenSlice[float64](col), set.F64Set(), want, stage)
	case common.CMP_U64_SIGNED:
		// the typed views already drop members the column's domain can
		// never hold, the probe itself stays exact
		if col.Typ().IsUnsigned() {
			isinLoop(widenSlice[uint64](col), set.U64Set(), want, stage)
		} else {
			isinLoop(widenSlice[int64](col), set.I64Set(), want, stage)
		}
	case common.CMP_STRING:
		pool := col.Pool()
		util.AssertFunc(pool != nil)
		members := set.StrSet()
		if col.Typ().IsFixedString() {
			members = set.FixedStrSet(col.Typ().Width)
		}
		offs := pool.OffsetsOf(members)
		isinLoopOffsets(column.TypedSlice[uint64](col), offs, want, stage)
	default:
		panic("usp")
	}

	mask := maskFromStage(stage, col.Presence(), col.RowCount())
	util.Debug("membership",
		zap.String("op", op.String()),
		zap.Int("rows", col.RowCount()),
		zap.Int("members", set.Len()),
		zap.Int("hits", mask.CountSet()))
	return MaskResult(mask), nil
}
