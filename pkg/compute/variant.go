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

	"github.com/daviszhen/compute/pkg/column"
	"github.com/daviszhen/compute/pkg/util"
)

type ResultKind int

const (
	RK_INVALID ResultKind = 0
	RK_COLUMN  ResultKind = 1
	RK_VALUE   ResultKind = 2
	RK_SET     ResultKind = 3
	RK_MASK    ResultKind = 4
	RK_EMPTY   ResultKind = 5
	RK_FULL    ResultKind = 6
)

var resultKindToStr = map[ResultKind]string{
	RK_COLUMN: "COLUMN",
	RK_VALUE:  "VALUE",
	RK_SET:    "SET",
	RK_MASK:   "MASK",
	RK_EMPTY:  "EMPTY",
	RK_FULL:   "FULL",
}

func (kind ResultKind) String() string {
	if s, has := resultKindToStr[kind]; has {
		return s
	}
	panic(fmt.Sprintf("usp %d", kind))
}

// OpResult is an operand of DispatchBinary and also its result, so
// results chain straight into the next operation. Exactly one payload
// field matches the kind. The two sentinels carry no payload: Empty
// means no row can match, Full means every row matches.
type OpResult struct {
	_kind ResultKind
	_col  *column.Column
	_val  *column.Value
	_set  *column.ValueSet
	_mask *column.Mask
}

var emptyResult = &OpResult{_kind: RK_EMPTY}
var fullResult = &OpResult{_kind: RK_FULL}

func ColumnResult(col *column.Column) *OpResult {
	util.AssertFunc(col != nil)
	return &OpResult{_kind: RK_COLUMN, _col: col}
}

func ValueResult(val *column.Value) *OpResult {
	util.AssertFunc(val != nil)
	return &OpResult{_kind: RK_VALUE, _val: val}
}

func SetResult(set *column.ValueSet) *OpResult {
	util.AssertFunc(set != nil)
	return &OpResult{_kind: RK_SET, _set: set}
}

func MaskResult(mask *column.Mask) *OpResult {
	util.AssertFunc(mask != nil)
	return &OpResult{_kind: RK_MASK, _mask: mask}
}

func EmptyResult() *OpResult {
	return emptyResult
}

func FullResult() *OpResult {
	return fullResult
}

func (res *OpResult) Kind() ResultKind {
	return res._kind
}

func (res *OpResult) Column() *column.Column {
	util.AssertFunc(res._kind == RK_COLUMN)
	return res._col
}

func (res *OpResult) Value() *column.Value {
	util.AssertFunc(res._kind == RK_VALUE)
	return res._val
}

func (res *OpResult) Set() *column.ValueSet {
	util.AssertFunc(res._kind == RK_SET)
	return res._set
}

func (res *OpResult) Mask() *column.Mask {
	util.AssertFunc(res._kind == RK_MASK)
	return res._mask
}

func (res *OpResult) String() string {
	switch res._kind {
	case RK_COLUMN:
		return res._col.String()
	case RK_VALUE:
		return res._val.String()
	case RK_SET:
		return res._set.String()
	case RK_MASK:
		return res._mask.String()
	case RK_EMPTY, RK_FULL:
		return res._kind.String()
	default:
		panic(fmt.Sprintf("usp %d", res._kind))
	}
}
