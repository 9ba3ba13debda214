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

import "fmt"

type OpType int

const (
	OP_INVALID OpType = 0

	OP_EQ OpType = 1
	OP_NE OpType = 2
	OP_LT OpType = 3
	OP_LE OpType = 4
	OP_GT OpType = 5
	OP_GE OpType = 6

	OP_ISIN    OpType = 10
	OP_ISNOTIN OpType = 11

	OP_ADD OpType = 20
	OP_SUB OpType = 21
	OP_MUL OpType = 22
	OP_DIV OpType = 23

	OP_AND OpType = 30
	OP_OR  OpType = 31
	OP_XOR OpType = 32
)

var opTypeToStr = map[OpType]string{
	OP_EQ:      "=",
	OP_NE:      "<>",
	OP_LT:      "<",
	OP_LE:      "<=",
	OP_GT:      ">",
	OP_GE:      ">=",
	OP_ISIN:    "in",
	OP_ISNOTIN: "not in",
	OP_ADD:     "+",
	OP_SUB:     "-",
	OP_MUL:     "*",
	OP_DIV:     "/",
	OP_AND:     "and",
	OP_OR:      "or",
	OP_XOR:     "xor",
}

func (op OpType) String() string {
	if s, has := opTypeToStr[op]; has {
		return s
	}
	panic(fmt.Sprintf("usp %d", op))
}

type OpFamily int

const (
	OF_INVALID    OpFamily = 0
	OF_COMPARISON OpFamily = 1
	OF_MEMBERSHIP OpFamily = 2
	OF_ARITHMETIC OpFamily = 3
	OF_BOOLEAN    OpFamily = 4
)

var opFamilyToStr = map[OpFamily]string{
	OF_COMPARISON: "comparison",
	OF_MEMBERSHIP: "membership",
	OF_ARITHMETIC: "arithmetic",
	OF_BOOLEAN:    "boolean",
}

func (of OpFamily) String() string {
	if s, has := opFamilyToStr[of]; has {
		return s
	}
	panic(fmt.Sprintf("usp %d", of))
}

func (op OpType) Family() OpFamily {
	switch op {
	case OP_EQ, OP_NE, OP_LT, OP_LE, OP_GT, OP_GE:
		return OF_COMPARISON
	case OP_ISIN, OP_ISNOTIN:
		return OF_MEMBERSHIP
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV:
		return OF_ARITHMETIC
	case OP_AND, OP_OR, OP_XOR:
		return OF_BOOLEAN
	default:
		return OF_INVALID
	}
}

// FlipCompare mirrors a comparison across its operands, so that
// v op col can run as col FlipCompare(op) v.
func FlipCompare(op OpType) OpType {
	switch op {
	case OP_EQ, OP_NE:
		return op
	case OP_LT:
		return OP_GT
	case OP_LE:
		return OP_GE
	case OP_GT:
		return OP_LT
	case OP_GE:
		return OP_LE
	default:
		panic(fmt.Sprintf("usp %d", op))
	}
}
