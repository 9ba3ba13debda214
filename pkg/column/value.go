package column

import (
	"fmt"

	"github.com/daviszhen/compute/pkg/common"
	"github.com/daviszhen/compute/pkg/util"
)

// Value is a single scalar operand. Exactly one of the payload fields
// is meaningful, chosen by Typ: signed integrals use I64, unsigned use
// U64, floats use F64, booleans Bool and strings Str. String payloads
// hold logical text, transcoding to the padded form happens inside the
// kernels that need it.
type Value struct {
	Typ  common.LType
	Bool bool
	I64  int64
	U64  uint64
	F64  float64
	Str  string
}

func NewIntValue(typ common.LType, v int64) *Value {
	util.AssertFunc(typ.IsSigned())
	return &Value{Typ: typ, I64: v}
}

func NewUintValue(typ common.LType, v uint64) *Value {
	util.AssertFunc(typ.IsUnsigned())
	return &Value{Typ: typ, U64: v}
}

func NewFloatValue(typ common.LType, v float64) *Value {
	util.AssertFunc(typ.IsFloat())
	return &Value{Typ: typ, F64: v}
}

func NewBoolValue(v bool) *Value {
	return &Value{Typ: common.BooleanType(), Bool: v}
}

func NewStringValue(v string) *Value {
	return &Value{Typ: common.StringType(), Str: v}
}

func (val *Value) String() string {
	switch {
	case val.Typ.IsBool():
		return fmt.Sprintf("%t", val.Bool)
	case val.Typ.IsFloat():
		return fmt.Sprintf("%g", val.F64)
	case val.Typ.IsUnsigned():
		return fmt.Sprintf("%d", val.U64)
	case val.Typ.IsIntegral():
		return fmt.Sprintf("%d", val.I64)
	case val.Typ.IsString():
		return fmt.Sprintf("%q", val.Str)
	}
	panic("usp")
}

// ValueLess orders two values of the same base type. It backs the
// ordered set storage, so it must be a strict weak ordering per type.
func ValueLess(a, b *Value) bool {
	util.AssertFunc(a.Typ.Id == b.Typ.Id)
	switch {
	case a.Typ.IsBool():
		return !a.Bool && b.Bool
	case a.Typ.IsFloat():
		return a.F64 < b.F64
	case a.Typ.IsUnsigned():
		return a.U64 < b.U64
	case a.Typ.IsIntegral():
		return a.I64 < b.I64
	case a.Typ.IsString():
		return a.Str < b.Str
	}
	panic("usp")
}
