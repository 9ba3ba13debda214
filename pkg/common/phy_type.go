package common

import "fmt"

type PhyType int

const (
	NA     PhyType = 0
	BOOL   PhyType = 1
	UINT8  PhyType = 2
	INT8   PhyType = 3
	UINT16 PhyType = 4
	INT16  PhyType = 5
	UINT32 PhyType = 6
	INT32  PhyType = 7
	UINT64 PhyType = 8
	INT64  PhyType = 9
	FLOAT  PhyType = 11
	DOUBLE PhyType = 12
	// OFFSET is a uint64 index into a string pool. Both dynamic and
	// fixed-width string columns store offsets, never inline text.
	OFFSET PhyType = 200

	INVALID PhyType = 255
)

const (
	BoolSize    = 1
	Int8Size    = 1
	Int16Size   = 2
	Int32Size   = 4
	Int64Size   = 8
	Float32Size = 4
	OffsetSize  = 8
)

var pTypeToStr = map[PhyType]string{
	NA:      "NA",
	BOOL:    "BOOL",
	UINT8:   "UINT8",
	INT8:    "INT8",
	UINT16:  "UINT16",
	INT16:   "INT16",
	UINT32:  "UINT32",
	INT32:   "INT32",
	UINT64:  "UINT64",
	INT64:   "INT64",
	FLOAT:   "FLOAT",
	DOUBLE:  "DOUBLE",
	OFFSET:  "OFFSET",
	INVALID: "INVALID",
}

func (pt PhyType) String() string {
	if s, has := pTypeToStr[pt]; has {
		return s
	}
	panic(fmt.Sprintf("usp %d", pt))
}

func (pt PhyType) Size() int {
	switch pt {
	case BOOL:
		return BoolSize
	case INT8, UINT8:
		return Int8Size
	case INT16, UINT16:
		return Int16Size
	case INT32, UINT32:
		return Int32Size
	case INT64, UINT64:
		return Int64Size
	case FLOAT:
		return Float32Size
	case DOUBLE:
		return Int64Size
	case OFFSET:
		return OffsetSize
	case NA:
		return 0
	default:
		panic("usp")
	}
}

func (pt PhyType) IsOffset() bool {
	return pt == OFFSET
}
