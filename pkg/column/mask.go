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

	"github.com/RoaringBitmap/roaring"

	"github.com/daviszhen/compute/pkg/util"
)

// Mask is a row-selection result: a compressed bitmap over a fixed
// logical row count. Set bit = row satisfies the predicate. Combining
// masks always builds a new one, operands are never mutated.
type Mask struct {
	bits     *roaring.Bitmap
	rowCount int
}

func NewMask(rowCount int) *Mask {
	util.AssertFunc(rowCount >= 0)
	return &Mask{
		bits:     roaring.New(),
		rowCount: rowCount,
	}
}

// FromStaging compresses a staging buffer into a mask. Bits at or past
// rowCount are ignored.
func FromStaging(stage *util.Bitmap, rowCount int) *Mask {
	mask := NewMask(rowCount)
	buf := make([]uint32, 0, 64)
	for row := 0; row < rowCount; row++ {
		if stage.IsSet(uint64(row)) {
			buf = append(buf, uint32(row))
			if len(buf) == cap(buf) {
				mask.bits.AddMany(buf)
				buf = buf[:0]
			}
		}
	}
	mask.bits.AddMany(buf)
	return mask
}

// ScatterStaging maps a densely indexed staging buffer back onto
// logical row positions: bit k of stage corresponds to the k-th set
// position of presence. Rows outside presence stay unset.
func ScatterStaging(stage *util.Bitmap, presence *roaring.Bitmap, rowCount int) *Mask {
	mask := NewMask(rowCount)
	iter := presence.Iterator()
	k := uint64(0)
	for iter.HasNext() {
		pos := iter.Next()
		if stage.IsSet(k) {
			mask.bits.Add(pos)
		}
		k++
	}
	return mask
}

func (mask *Mask) RowCount() int {
	return mask.rowCount
}

func (mask *Mask) Test(row int) bool {
	util.AssertFunc(row >= 0 && row < mask.rowCount)
	return mask.bits.Contains(uint32(row))
}

func (mask *Mask) Set(row int) {
	util.AssertFunc(row >= 0 && row < mask.rowCount)
	mask.bits.Add(uint32(row))
}

func (mask *Mask) CountSet() int {
	return int(mask.bits.GetCardinality())
}

// Optimize compacts the run-length representation. Call once after the
// mask is fully built.
func (mask *Mask) Optimize() {
	mask.bits.RunOptimize()
}

func (mask *Mask) Clone() *Mask {
	return &Mask{
		bits:     mask.bits.Clone(),
		rowCount: mask.rowCount,
	}
}

// Bools expands the mask into one bool per logical row.
func (mask *Mask) Bools() []bool {
	ret := make([]bool, mask.rowCount)
	iter := mask.bits.Iterator()
	for iter.HasNext() {
		ret[iter.Next()] = true
	}
	return ret
}

func (mask *Mask) String() string {
	return fmt.Sprintf("Mask{%d/%d rows}", mask.CountSet(), mask.rowCount)
}

func MaskAnd(l, r *Mask) *Mask {
	util.AssertFunc(l.rowCount == r.rowCount)
	return &Mask{
		bits:     roaring.And(l.bits, r.bits),
		rowCount: l.rowCount,
	}
}

func MaskOr(l, r *Mask) *Mask {
	util.AssertFunc(l.rowCount == r.rowCount)
	return &Mask{
		bits:     roaring.Or(l.bits, r.bits),
		rowCount: l.rowCount,
	}
}

func MaskXor(l, r *Mask) *Mask {
	util.AssertFunc(l.rowCount == r.rowCount)
	return &Mask{
		bits:     roaring.Xor(l.bits, r.bits),
		rowCount: l.rowCount,
	}
}

// MaskNot complements the mask over its own row count.
func MaskNot(mask *Mask) *Mask {
	return &Mask{
		bits:     roaring.Flip(mask.bits, 0, uint64(mask.rowCount)),
		rowCount: mask.rowCount,
	}
}
