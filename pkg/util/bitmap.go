package util

import "math/bits"

// Bitmap is a fixed-capacity bit buffer. Kernels stage per-row results
// here before the bits are compressed into a result mask. A nil Bits
// slice reads as all-unset.
type Bitmap struct {
	Bits []uint8
}

func EntryCount(cnt int) int {
	return (cnt + 7) / 8
}

func GetEntryIndex(idx uint64) (uint64, uint64) {
	return idx / 8, idx % 8
}

func EntryIsSet(e uint8, pos uint64) bool {
	return e&(1<<pos) != 0
}

func NoneSetInEntry(entry uint8) bool {
	return entry == 0
}

func AllSetInEntry(entry uint8) bool {
	return entry == 0xFF
}

func (bm *Bitmap) Init(count int) {
	bm.Bits = GAlloc.Alloc(EntryCount(count))
}

func (bm *Bitmap) Invalid() bool {
	return len(bm.Bits) == 0
}

func (bm *Bitmap) GetEntry(eIdx uint64) uint8 {
	if bm.Invalid() {
		return 0
	}
	return bm.Bits[eIdx]
}

func (bm *Bitmap) IsSet(idx uint64) bool {
	if bm.Invalid() {
		return false
	}
	eIdx, pos := GetEntryIndex(idx)
	return EntryIsSet(bm.Bits[eIdx], pos)
}

func (bm *Bitmap) SetUnsafe(idx uint64) {
	eIdx, pos := GetEntryIndex(idx)
	bm.Bits[eIdx] |= 1 << pos
}

func (bm *Bitmap) ClearUnsafe(idx uint64) {
	eIdx, pos := GetEntryIndex(idx)
	bm.Bits[eIdx] &= ^(1 << pos)
}

func (bm *Bitmap) Set(idx uint64, v bool) {
	if v {
		bm.SetUnsafe(idx)
	} else {
		bm.ClearUnsafe(idx)
	}
}

// SetAll sets the first cnt bits, masking the spare bits of the last
// entry so CountSet stays exact.
func (bm *Bitmap) SetAll(cnt int) {
	if bm.Invalid() {
		bm.Init(cnt)
	}
	if cnt == 0 {
		return
	}
	lastEidx := EntryCount(cnt) - 1
	for i := 0; i < lastEidx; i++ {
		bm.Bits[i] = 0xFF
	}
	lastBits := cnt % 8
	if lastBits == 0 {
		bm.Bits[lastEidx] = 0xFF
	} else {
		bm.Bits[lastEidx] = ^(uint8(0xFF) << lastBits)
	}
}

func (bm *Bitmap) ClearAll(cnt int) {
	if bm.Invalid() {
		bm.Init(cnt)
		return
	}
	for i := range bm.Bits {
		bm.Bits[i] = 0
	}
}

func (bm *Bitmap) CountSet(cnt int) int {
	if bm.Invalid() {
		return 0
	}
	total := 0
	for i := 0; i < EntryCount(cnt); i++ {
		total += bits.OnesCount8(bm.Bits[i])
	}
	return total
}

func (bm *Bitmap) Reset() {
	bm.Bits = nil
}
