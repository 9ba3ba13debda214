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

package common

// CmpClass is the domain both operands are widened into before a
// comparison or membership test is applied.
type CmpClass int

const (
	CMP_INVALID CmpClass = iota
	// CMP_I64: both sides widen losslessly into int64.
	CMP_I64
	// CMP_U64: both sides widen losslessly into uint64.
	CMP_U64
	// CMP_U64_SIGNED: one side is uint64 and the other is signed. A blind
	// cast would turn a negative value into a huge unsigned one, so the
	// kernel must compare through an explicit sign check instead.
	CMP_U64_SIGNED
	// CMP_F64: at least one side is floating, compare as float64.
	CMP_F64
	CMP_BOOL
	// CMP_STRING: compare decoded pool content.
	CMP_STRING
)

var cmpClassToStr = map[CmpClass]string{
	CMP_INVALID:    "CMP_INVALID",
	CMP_I64:        "CMP_I64",
	CMP_U64:        "CMP_U64",
	CMP_U64_SIGNED: "CMP_U64_SIGNED",
	CMP_F64:        "CMP_F64",
	CMP_BOOL:       "CMP_BOOL",
	CMP_STRING:     "CMP_STRING",
}

func (c CmpClass) String() string {
	if s, has := cmpClassToStr[c]; has {
		return s
	}
	panic("usp")
}

// ClassifyComparison decides the comparison domain for two element types.
// CMP_INVALID means the pair cannot be compared at all.
func ClassifyComparison(l, r LType) CmpClass {
	switch {
	case l.IsString() && r.IsString():
		return CMP_STRING
	case l.IsBool() && r.IsBool():
		return CMP_BOOL
	case l.IsNumeric() && r.IsNumeric():
		if l.IsFloat() || r.IsFloat() {
			return CMP_F64
		}
		if l.IsSigned() && r.IsSigned() {
			return CMP_I64
		}
		if l.IsUnsigned() && r.IsUnsigned() {
			return CMP_U64
		}
		// mixed signedness. uint64 cannot widen into int64.
		if l.Id == LTID_UINT64 || r.Id == LTID_UINT64 {
			return CMP_U64_SIGNED
		}
		return CMP_I64
	default:
		return CMP_INVALID
	}
}

var signedLadder = []LTypeId{LTID_INT8, LTID_INT16, LTID_INT32, LTID_INT64}
var unsignedLadder = []LTypeId{LTID_UINT8, LTID_UINT16, LTID_UINT32, LTID_UINT64}

var intRank = map[LTypeId]int{
	LTID_INT8:   0,
	LTID_UINT8:  0,
	LTID_INT16:  1,
	LTID_UINT16: 1,
	LTID_INT32:  2,
	LTID_UINT32: 2,
	LTID_INT64:  3,
	LTID_UINT64: 3,
}

// PromoteArithmetic yields the element type used to compute and store the
// result of add/sub/mul over two numeric operands. Integral results take
// one widening step past the wider operand so that small-type sums do not
// wrap, capped at 64 bits. Mixed signedness resolves onto the signed
// ladder; uint64 mixed with a signed type also caps at int64, which keeps
// the inherited two's-complement wraparound. Divide does not use this
// rule, it always computes in float64 (DivideResultType).
// The second return is false when either side is non-numeric.
func PromoteArithmetic(l, r LType) (LType, bool) {
	if !l.IsNumeric() || !r.IsNumeric() {
		return InvalidType(), false
	}
	if l.IsFloat() || r.IsFloat() {
		if l.Id == LTID_FLOAT && r.Id == LTID_FLOAT {
			return FloatType(), true
		}
		return DoubleType(), true
	}
	rank := max(intRank[l.Id], intRank[r.Id])
	widened := min(rank+1, len(signedLadder)-1)
	if l.IsSigned() == r.IsSigned() {
		if l.IsSigned() {
			return MakeLType(signedLadder[widened]), true
		}
		return MakeLType(unsignedLadder[widened]), true
	}
	return MakeLType(signedLadder[widened]), true
}

func DivideResultType() LType {
	return DoubleType()
}
