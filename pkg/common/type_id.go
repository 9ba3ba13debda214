package common

import "fmt"

type LTypeId int

const (
	LTID_INVALID      LTypeId = 0
	LTID_EMPTY        LTypeId = 1
	LTID_BOOLEAN      LTypeId = 10
	LTID_INT8         LTypeId = 11
	LTID_INT16        LTypeId = 12
	LTID_INT32        LTypeId = 13
	LTID_INT64        LTypeId = 14
	LTID_UINT8        LTypeId = 15
	LTID_UINT16       LTypeId = 16
	LTID_UINT32       LTypeId = 17
	LTID_UINT64       LTypeId = 18
	LTID_FLOAT        LTypeId = 22
	LTID_DOUBLE       LTypeId = 23
	LTID_STRING       LTypeId = 25
	LTID_STRING_FIXED LTypeId = 26
)

var lTypeIdToStr = map[LTypeId]string{
	LTID_INVALID:      "LTID_INVALID",
	LTID_EMPTY:        "LTID_EMPTY",
	LTID_BOOLEAN:      "LTID_BOOLEAN",
	LTID_INT8:         "LTID_INT8",
	LTID_INT16:        "LTID_INT16",
	LTID_INT32:        "LTID_INT32",
	LTID_INT64:        "LTID_INT64",
	LTID_UINT8:        "LTID_UINT8",
	LTID_UINT16:       "LTID_UINT16",
	LTID_UINT32:       "LTID_UINT32",
	LTID_UINT64:       "LTID_UINT64",
	LTID_FLOAT:        "LTID_FLOAT",
	LTID_DOUBLE:       "LTID_DOUBLE",
	LTID_STRING:       "LTID_STRING",
	LTID_STRING_FIXED: "LTID_STRING_FIXED",
}

func (id LTypeId) String() string {
	if s, has := lTypeIdToStr[id]; has {
		return s
	}
	panic(fmt.Sprintf("usp %d", id))
}
