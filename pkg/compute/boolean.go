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
)

func booleanOperandKind(kind ResultKind) bool {
	return kind == RK_MASK || kind == RK_EMPTY || kind == RK_FULL
}

// booleanKernel combines two selection results. The sentinels fold
// without touching any bitmap: Empty absorbs and, Full absorbs or, xor
// against Full complements. The table is commutative, only the upper
// triangle is written and mirrored pairs swap first.
func booleanKernel(op OpType, left, right *OpResult) (*OpResult, error) {
	if !booleanOperandKind(left._kind) || !booleanOperandKind(right._kind) {
		return nil, invalidOperandErr(op, left._kind, right._kind)
	}
	if left._kind > right._kind {
		left, right = right, left
	}
	switch {
	case left._kind == RK_MASK && right._kind == RK_MASK:
		lm, rm := left._mask, right._mask
		if lm.RowCount() != rm.RowCount() {
			return nil, shapeMismatchErr(op, lm.RowCount(), rm.RowCount())
		}
		var mask *column.Mask
		switch op {
		case OP_AND:
			mask = column.MaskAnd(lm, rm)
		case OP_OR:
			mask = column.MaskOr(lm, rm)
		case OP_XOR:
			mask = column.MaskXor(lm, rm)
		default:
			panic("usp")
		}
		mask.Optimize()
		return MaskResult(mask), nil
	case left._kind == RK_MASK && right._kind == RK_EMPTY:
		switch op {
		case OP_AND:
			return EmptyResult(), nil
		case OP_OR, OP_XOR:
			return MaskResult(left._mask.Clone()), nil
		default:
			panic("usp")
		}
	case left._kind == RK_MASK && right._kind == RK_FULL:
		switch op {
		case OP_AND:
			return MaskResult(left._mask.Clone()), nil
		case OP_OR:
			return FullResult(), nil
		case OP_XOR:
			mask := column.MaskNot(left._mask)
			mask.Optimize()
			return MaskResult(mask), nil
		default:
			panic("usp")
		}
	case left._kind == RK_EMPTY && right._kind == RK_EMPTY:
		return EmptyResult(), nil
	case left._kind == RK_EMPTY && right._kind == RK_FULL:
		switch op {
		case OP_AND:
			return EmptyResult(), nil
		case OP_OR, OP_XOR:
			return FullResult(), nil
		default:
			panic("usp")
		}
	case left._kind == RK_FULL && right._kind == RK_FULL:
		switch op {
		case OP_AND, OP_OR:
			return FullResult(), nil
		case OP_XOR:
			return EmptyResult(), nil
		default:
			panic("usp")
		}
	default:
		panic("usp")
	}
}
