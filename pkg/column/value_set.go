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

package column

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/huandu/go-clone"
	"github.com/tidwall/btree"

	"github.com/daviszhen/compute/pkg/common"
	"github.com/daviszhen/compute/pkg/util"
)

// ValueSet is a deduplicated, ordered set of scalar members sharing one
// declared base type. Construction deep-copies the members, so later
// mutation of the caller's values cannot change the set.
//
// Membership kernels do not probe the ordered storage directly. They
// ask for a typed view of the whole set, built once on first use and
// cached: an int64 view, a uint64 view, a float64 view, a logical
// string view, or a padded fixed-width view per width. Members that
// cannot be represented in the requested view are left out of it,
// since no column value in that domain could ever equal them.
type ValueSet struct {
	typ  common.LType
	vals *btree.BTreeG[*Value]

	mu        sync.Mutex
	i64Set    map[int64]struct{}
	u64Set    map[uint64]struct{}
	f64Set    map[float64]struct{}
	strSet    map[string]struct{}
	fixedSets map[int]map[string]struct{}
}

// NewValueSet builds a set of base type typ from vals. Every member
// must carry exactly the base type. Duplicates collapse.
func NewValueSet(typ common.LType, vals []*Value) (*ValueSet, error) {
	if !typ.IsValid() || typ.IsEmpty() {
		return nil, fmt.Errorf("value set over %s not supported", typ)
	}
	set := &ValueSet{
		typ:  typ,
		vals: btree.NewBTreeG[*Value](ValueLess),
	}
	for i, val := range vals {
		if val.Typ.Id != typ.Id {
			return nil, fmt.Errorf("set member %d has type %s, want %s", i, val.Typ, typ)
		}
		set.vals.Set(clone.Clone(val).(*Value))
	}
	return set, nil
}

func (set *ValueSet) BaseTyp() common.LType {
	return set.typ
}

func (set *ValueSet) Len() int {
	return set.vals.Len()
}

func (set *ValueSet) Empty() bool {
	return set.vals.Len() == 0
}

// ForEach visits the members in ascending order until fn returns false.
func (set *ValueSet) ForEach(fn func(val *Value) bool) {
	set.vals.Scan(fn)
}

func (set *ValueSet) String() string {
	buf := strings.Builder{}
	buf.WriteByte('{')
	first := true
	set.vals.Scan(func(val *Value) bool {
		if !first {
			buf.WriteString(", ")
		}
		first = false
		buf.WriteString(val.String())
		return true
	})
	buf.WriteByte('}')
	return buf.String()
}

// I64Set is the signed 64-bit view. Unsigned members above MaxInt64
// are dropped, no int64 column value can equal them.
func (set *ValueSet) I64Set() map[int64]struct{} {
	set.mu.Lock()
	defer set.mu.Unlock()
	if set.i64Set != nil {
		return set.i64Set
	}
	util.AssertFunc(set.typ.IsIntegral())
	ret := make(map[int64]struct{}, set.vals.Len())
	set.vals.Scan(func(val *Value) bool {
		if set.typ.IsUnsigned() {
			if val.U64 <= math.MaxInt64 {
				ret[int64(val.U64)] = struct{}{}
			}
		} else {
			ret[val.I64] = struct{}{}
		}
		return true
	})
	set.i64Set = ret
	return ret
}

// U64Set is the unsigned 64-bit view. Negative members are dropped.
func (set *ValueSet) U64Set() map[uint64]struct{} {
	set.mu.Lock()
	defer set.mu.Unlock()
	if set.u64Set != nil {
		return set.u64Set
	}
	util.AssertFunc(set.typ.IsIntegral())
	ret := make(map[uint64]struct{}, set.vals.Len())
	set.vals.Scan(func(val *Value) bool {
		if set.typ.IsUnsigned() {
			ret[val.U64] = struct{}{}
		} else if val.I64 >= 0 {
			ret[uint64(val.I64)] = struct{}{}
		}
		return true
	})
	set.u64Set = ret
	return ret
}

// F64Set is the float64 view of a numeric set.
func (set *ValueSet) F64Set() map[float64]struct{} {
	set.mu.Lock()
	defer set.mu.Unlock()
	if set.f64Set != nil {
		return set.f64Set
	}
	util.AssertFunc(set.typ.IsNumeric())
	ret := make(map[float64]struct{}, set.vals.Len())
	set.vals.Scan(func(val *Value) bool {
		switch {
		case set.typ.IsFloat():
			ret[val.F64] = struct{}{}
		case set.typ.IsUnsigned():
			ret[float64(val.U64)] = struct{}{}
		default:
			ret[float64(val.I64)] = struct{}{}
		}
		return true
	})
	set.f64Set = ret
	return ret
}

// StrSet is the logical string view.
func (set *ValueSet) StrSet() map[string]struct{} {
	set.mu.Lock()
	defer set.mu.Unlock()
	if set.strSet != nil {
		return set.strSet
	}
	util.AssertFunc(set.typ.IsString())
	ret := make(map[string]struct{}, set.vals.Len())
	set.vals.Scan(func(val *Value) bool {
		ret[val.Str] = struct{}{}
		return true
	})
	set.strSet = ret
	return ret
}

// FixedStrSet is the padded UTF-32 view at the given width. Members
// that do not fit the width are dropped.
func (set *ValueSet) FixedStrSet(width int) map[string]struct{} {
	set.mu.Lock()
	defer set.mu.Unlock()
	if cached, has := set.fixedSets[width]; has {
		return cached
	}
	util.AssertFunc(set.typ.IsString())
	ret := make(map[string]struct{}, set.vals.Len())
	set.vals.Scan(func(val *Value) bool {
		if padded, ok := common.AsciiToPaddedUtf32(val.Str, width); ok {
			ret[padded] = struct{}{}
		}
		return true
	})
	if set.fixedSets == nil {
		set.fixedSets = make(map[int]map[string]struct{})
	}
	set.fixedSets[width] = ret
	return ret
}
