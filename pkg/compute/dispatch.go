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
	"fmt"

	"github.com/daviszhen/compute/pkg/util"
)

func dataKind(kind ResultKind) bool {
	return kind == RK_COLUMN || kind == RK_VALUE
}

// DispatchBinary applies op to two operand variants. Every combination
// of operand kinds and op family lands on a kernel or on a structured
// *OpError, never on silence. Inputs are only borrowed, results are
// freshly owned by the caller.
func DispatchBinary(left, right *OpResult, op OpType) (*OpResult, error) {
	util.AssertFunc(left != nil && right != nil)
	switch op.Family() {
	case OF_COMPARISON:
		if !dataKind(left._kind) || !dataKind(right._kind) {
			return nil, invalidOperandErr(op, left._kind, right._kind)
		}
		return compareKernel(op, left, right)
	case OF_MEMBERSHIP:
		if left._kind != RK_COLUMN || right._kind != RK_SET {
			return nil, invalidOperandErr(op, left._kind, right._kind)
		}
		return membershipKernel(op, left._col, right._set)
	case OF_ARITHMETIC:
		if !dataKind(left._kind) || !dataKind(right._kind) {
			return nil, invalidOperandErr(op, left._kind, right._kind)
		}
		return arithmeticKernel(op, left, right)
	case OF_BOOLEAN:
		return booleanKernel(op, left, right)
	default:
		panic(fmt.Sprintf("usp %d", op))
	}
}
