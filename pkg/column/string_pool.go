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
	"strings"

	"github.com/RoaringBitmap/roaring/roaring64"
	treemap "github.com/liyue201/gostl/ds/map"

	"github.com/daviszhen/compute/pkg/common"
	"github.com/daviszhen/compute/pkg/util"
)

// StringPool interns string content and hands back stable uint64
// offsets. Columns store offsets, the pool owns the text. For
// fixed-width columns the interned content is the padded UTF-32 form,
// for dynamic columns the raw text.
//
// Interning happens while a dataset is built and is serialized by a
// reentrant lock. Dispatch only ever reads a quiescent pool, so the
// read paths take no lock and are safe for any number of concurrent
// readers.
type StringPool struct {
	lock  *util.ReentryLock
	strs  []string
	index *treemap.Map[string, uint64]
}

func NewStringPool() *StringPool {
	return &StringPool{
		lock: util.NewReentryLock(),
		index: treemap.New[string, uint64](func(a, b string) int {
			return strings.Compare(a, b)
		}),
	}
}

// Intern returns the offset of content, adding it on first sight.
func (pool *StringPool) Intern(content string) uint64 {
	pool.lock.Lock()
	defer pool.lock.Unlock()
	if off, err := pool.index.Get(content); err == nil {
		return off
	}
	off := uint64(len(pool.strs))
	pool.strs = append(pool.strs, content)
	pool.index.Insert(content, off)
	return off
}

// InternPadded interns the fixed-width form of an ASCII value. The
// second return is false when the value cannot be represented at the
// given width. The nested Intern call relocks the pool, which is why
// the lock is reentrant.
func (pool *StringPool) InternPadded(content string, width int) (uint64, bool) {
	padded, ok := common.AsciiToPaddedUtf32(content, width)
	if !ok {
		return 0, false
	}
	pool.lock.Lock()
	defer pool.lock.Unlock()
	util.AssertFunc(pool.lock.Held())
	return pool.Intern(padded), true
}

func (pool *StringPool) Count() int {
	return len(pool.strs)
}

// StringAt returns the stored content at off, padded form included.
func (pool *StringPool) StringAt(off uint64) string {
	util.AssertFunc(off < uint64(len(pool.strs)))
	return pool.strs[off]
}

// LogicalAt returns the logical text at off: fixed-width content is
// UTF-32 decoded with its padding stripped, dynamic content is returned
// as stored.
func (pool *StringPool) LogicalAt(off uint64, typ common.LType) string {
	content := pool.StringAt(off)
	if typ.IsFixedString() {
		return common.Utf32ToLogical(content)
	}
	return content
}

// OffsetOf looks content up without interning it. Missing content means
// no stored row can hold this value.
func (pool *StringPool) OffsetOf(content string) (uint64, bool) {
	off, err := pool.index.Get(content)
	if err != nil {
		return 0, false
	}
	return off, true
}

// OffsetsOf resolves every member of contents that the pool already
// holds into an offset set. Members never interned are skipped, they
// cannot match any stored row.
func (pool *StringPool) OffsetsOf(contents map[string]struct{}) *roaring64.Bitmap {
	set := roaring64.New()
	for content := range contents {
		if off, has := pool.OffsetOf(content); has {
			set.Add(off)
		}
	}
	return set
}

// Dump lists the interned content in lexicographic order.
func (pool *StringPool) Dump() []util.Pair[string, uint64] {
	ret := make([]util.Pair[string, uint64], 0, len(pool.strs))
	for iter := pool.index.Begin(); iter.IsValid(); iter.Next() {
		ret = append(ret, util.Pair[string, uint64]{
			First:  iter.Key(),
			Second: iter.Value(),
		})
	}
	return ret
}
