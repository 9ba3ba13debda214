package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_bitmapSetAndCount(t *testing.T) {
	bm := &Bitmap{}
	bm.Init(19)
	assert.Equal(t, 0, bm.CountSet(19))
	for _, idx := range []uint64{0, 7, 8, 18} {
		bm.SetUnsafe(idx)
	}
	assert.Equal(t, 4, bm.CountSet(19))
	assert.True(t, bm.IsSet(7))
	assert.True(t, bm.IsSet(8))
	assert.False(t, bm.IsSet(9))
	bm.Set(7, false)
	assert.False(t, bm.IsSet(7))
	assert.Equal(t, 3, bm.CountSet(19))
}

func Test_bitmapSetAll(t *testing.T) {
	bm := &Bitmap{}
	bm.Init(10)
	bm.SetAll(10)
	assert.Equal(t, 10, bm.CountSet(10))
	// spare bits of the last entry stay clear
	assert.Equal(t, uint8(0x03), bm.GetEntry(1))
	bm.ClearAll(10)
	assert.Equal(t, 0, bm.CountSet(10))

	// multiple of 8 fills the last entry fully
	bm2 := &Bitmap{}
	bm2.Init(16)
	bm2.SetAll(16)
	assert.Equal(t, uint8(0xFF), bm2.GetEntry(1))
	assert.Equal(t, 16, bm2.CountSet(16))
}

func Test_bitmapNilReads(t *testing.T) {
	bm := &Bitmap{}
	assert.True(t, bm.Invalid())
	assert.False(t, bm.IsSet(3))
	assert.Equal(t, 0, bm.CountSet(100))
	assert.Equal(t, uint8(0), bm.GetEntry(0))
}

func Test_entryHelpers(t *testing.T) {
	assert.Equal(t, 0, EntryCount(0))
	assert.Equal(t, 1, EntryCount(1))
	assert.Equal(t, 1, EntryCount(8))
	assert.Equal(t, 2, EntryCount(9))
	eIdx, pos := GetEntryIndex(13)
	assert.Equal(t, uint64(1), eIdx)
	assert.Equal(t, uint64(5), pos)
	assert.True(t, AllSetInEntry(0xFF))
	assert.True(t, NoneSetInEntry(0))
	assert.True(t, EntryIsSet(0b100, 2))
	assert.False(t, EntryIsSet(0b100, 1))
}
