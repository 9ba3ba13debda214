package common

import (
	"fmt"
)

// LType is the declared element type of a column, scalar or scalar set.
// Width is only meaningful for LTID_STRING_FIXED, where it is the fixed
// character count of every stored value.
type LType struct {
	Id    LTypeId
	PTyp  PhyType
	Width int
}

func MakeLType(id LTypeId) LType {
	ret := LType{Id: id}
	ret.PTyp = ret.GetInternalType()
	return ret
}

func InvalidType() LType {
	return MakeLType(LTID_INVALID)
}

func EmptyType() LType {
	return MakeLType(LTID_EMPTY)
}

func BooleanType() LType {
	return MakeLType(LTID_BOOLEAN)
}

func Int8Type() LType {
	return MakeLType(LTID_INT8)
}

func Int16Type() LType {
	return MakeLType(LTID_INT16)
}

func Int32Type() LType {
	return MakeLType(LTID_INT32)
}

func Int64Type() LType {
	return MakeLType(LTID_INT64)
}

func Uint8Type() LType {
	return MakeLType(LTID_UINT8)
}

func Uint16Type() LType {
	return MakeLType(LTID_UINT16)
}

func Uint32Type() LType {
	return MakeLType(LTID_UINT32)
}

func Uint64Type() LType {
	return MakeLType(LTID_UINT64)
}

func FloatType() LType {
	return MakeLType(LTID_FLOAT)
}

func DoubleType() LType {
	return MakeLType(LTID_DOUBLE)
}

func StringType() LType {
	return MakeLType(LTID_STRING)
}

func StringFixedType(width int) LType {
	ret := MakeLType(LTID_STRING_FIXED)
	ret.Width = width
	return ret
}

var Numerics = map[LTypeId]int{
	LTID_INT8:   0,
	LTID_INT16:  0,
	LTID_INT32:  0,
	LTID_INT64:  0,
	LTID_UINT8:  0,
	LTID_UINT16: 0,
	LTID_UINT32: 0,
	LTID_UINT64: 0,
	LTID_FLOAT:  0,
	LTID_DOUBLE: 0,
}

func (lt LType) IsNumeric() bool {
	_, has := Numerics[lt.Id]
	return has
}

var Integrals = map[LTypeId]int{
	LTID_INT8:   0,
	LTID_INT16:  0,
	LTID_INT32:  0,
	LTID_INT64:  0,
	LTID_UINT8:  0,
	LTID_UINT16: 0,
	LTID_UINT32: 0,
	LTID_UINT64: 0,
}

func (lt LType) IsIntegral() bool {
	_, has := Integrals[lt.Id]
	return has
}

var Signeds = map[LTypeId]int{
	LTID_INT8:  0,
	LTID_INT16: 0,
	LTID_INT32: 0,
	LTID_INT64: 0,
}

func (lt LType) IsSigned() bool {
	_, has := Signeds[lt.Id]
	return has
}

func (lt LType) IsUnsigned() bool {
	return lt.IsIntegral() && !lt.IsSigned()
}

func (lt LType) IsFloat() bool {
	return lt.Id == LTID_FLOAT || lt.Id == LTID_DOUBLE
}

func (lt LType) IsString() bool {
	return lt.Id == LTID_STRING || lt.Id == LTID_STRING_FIXED
}

func (lt LType) IsFixedString() bool {
	return lt.Id == LTID_STRING_FIXED
}

func (lt LType) IsBool() bool {
	return lt.Id == LTID_BOOLEAN
}

func (lt LType) IsEmpty() bool {
	return lt.Id == LTID_EMPTY
}

func (lt LType) IsValid() bool {
	return lt.Id != LTID_INVALID
}

func (lt LType) Equal(o LType) bool {
	if lt.Id != o.Id {
		return false
	}
	if lt.Id == LTID_STRING_FIXED {
		return lt.Width == o.Width
	}
	return true
}

func (lt LType) GetInternalType() PhyType {
	switch lt.Id {
	case LTID_BOOLEAN:
		return BOOL
	case LTID_INT8:
		return INT8
	case LTID_INT16:
		return INT16
	case LTID_INT32:
		return INT32
	case LTID_INT64:
		return INT64
	case LTID_UINT8:
		return UINT8
	case LTID_UINT16:
		return UINT16
	case LTID_UINT32:
		return UINT32
	case LTID_UINT64:
		return UINT64
	case LTID_FLOAT:
		return FLOAT
	case LTID_DOUBLE:
		return DOUBLE
	case LTID_STRING, LTID_STRING_FIXED:
		return OFFSET
	case LTID_EMPTY:
		return NA
	case LTID_INVALID:
		return INVALID
	default:
		panic(fmt.Sprintf("usp %d", lt.Id))
	}
}

func (lt LType) String() string {
	if lt.Id == LTID_STRING_FIXED {
		return fmt.Sprintf("%s(%d)", lt.Id, lt.Width)
	}
	return lt.Id.String()
}

func Numeric() []LType {
	typs := []LTypeId{
		LTID_INT8, LTID_INT16, LTID_INT32, LTID_INT64,
		LTID_UINT8, LTID_UINT16, LTID_UINT32, LTID_UINT64,
		LTID_FLOAT, LTID_DOUBLE,
	}
	ret := make([]LType, len(typs))
	for i, typ := range typs {
		ret[i].Id = typ
		ret[i].PTyp = ret[i].GetInternalType()
	}
	return ret
}
