/*
 * GorgonGo - a bitboard chess engine in GO
 *
 * MIT License
 *
 * Copyright (c) 2020-2021 The GorgonGo Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package transpositiontable implements a transposition table (cache)
// data structure and functionality for a chess engine search.
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. This is especially relevant
// for Resize and Clear which should not be called while searching.
package transpositiontable

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/gorgonchess/GorgonGo/internal/logging"
	"github.com/gorgonchess/GorgonGo/internal/position"
	. "github.com/gorgonchess/GorgonGo/internal/types"
)

var out = message.NewPrinter(language.English)

// ValueType is the type of a transposition table score: an exact
// score, an upper bound (alpha) or a lower bound (beta).
type ValueType uint8

// ValueType constants
const (
	EXACT ValueType = 0
	ALPHA ValueType = 1
	BETA  ValueType = 2
)

// TtEntry is the data structure for each entry in the transposition
// table. Entries are kept at 16 bytes.
type TtEntry struct {
	Key   position.Key // 64-bit Zobrist key of the stored position
	Value Value        // 16-bit score of the stored search
	Depth int8         // remaining search depth of the stored search
	Type  ValueType    // EXACT, ALPHA or BETA
}

const (
	// TtEntrySize is the size in bytes of a TtEntry
	TtEntrySize = 16

	// MaxSizeInMB maximal memory usage of the tt
	MaxSizeInMB = 65_536
)

// TtTable is the transposition table object holding the data and state.
// Create with NewTtTable().
// Slot lookup is a bitmask AND - the number of entries is always a
// power of two.
type TtTable struct {
	log                *logging.Logger
	data               []TtEntry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              TtStats
}

// TtStats holds statistical data on tt usage
type TtStats struct {
	Puts       uint64
	Overwrites uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// NewTtTable creates a new TtTable with the given number of MB
// as a maximum of memory usage. The actual size is determined by
// the number of entries fitting into this size rounded down to a
// power of 2 for efficient addressing via bit mask.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{
		log: myLogging.GetLog(),
	}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize resizes the tt table. All entries will be cleared.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	if sizeInMByte < 0 {
		sizeInMByte = 0
	}

	// calculate the maximum power of 2 of entries fitting into the given size in MB
	tt.sizeInByte = uint64(sizeInMByte) * MB
	if tt.sizeInByte == 0 {
		// resized to 0 - no entries at all
		tt.maxNumberOfEntries = 0
	} else {
		tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/TtEntrySize))))
	}
	tt.hashKeyMask = tt.maxNumberOfEntries - 1 // --> 0x0001111....111

	// calculate the real memory usage
	tt.sizeInByte = tt.maxNumberOfEntries * TtEntrySize

	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}

	tt.log.Info(out.Sprintf("TT Size %d MByte, Capacity %d entries (size=%dByte) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtEntry{}), sizeInMByte))
}

// Probe returns a pointer to the tt entry for the given key or nil
// if the slot holds no entry for this key. The "no entry" state is
// deliberately out-of-band - a sentinel score could collide with
// real mate scores near the root.
func (tt *TtTable) Probe(key position.Key) *TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	tt.Stats.Probes++
	e := &tt.data[tt.hash(key)]
	if e.Key == key {
		tt.Stats.Hits++
		return e
	}
	tt.Stats.Misses++
	return nil
}

// Put stores a search result for the given key in the tt.
// Replacement policy is always-replace: each record overwrites its
// slot unconditionally.
func (tt *TtTable) Put(key position.Key, depth int8, value Value, valueType ValueType) {
	if tt.maxNumberOfEntries == 0 {
		return
	}
	e := &tt.data[tt.hash(key)]
	tt.Stats.Puts++
	if e.Key == 0 {
		tt.numberOfEntries++
	} else if e.Key != key {
		tt.Stats.Overwrites++
	}
	e.Key = key
	e.Value = value
	e.Depth = depth
	e.Type = valueType
}

// Clear clears all entries of the tt. The backing array is zeroed in
// parallel stripes as it can be several hundred MB.
func (tt *TtTable) Clear() {
	if tt.maxNumberOfEntries > 0 {
		numStripes := uint64(8)
		stripe := tt.maxNumberOfEntries / numStripes
		var g errgroup.Group
		for i := uint64(0); i < numStripes; i++ {
			start := i * stripe
			end := start + stripe
			if i == numStripes-1 {
				end = tt.maxNumberOfEntries
			}
			g.Go(func() error {
				for n := start; n < end; n++ {
					tt.data[n] = TtEntry{}
				}
				return nil
			})
		}
		_ = g.Wait()
	}
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull returns how full the transposition table is in permill
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxNumberOfEntries)
}

// Len returns the number of non empty entries in the tt
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

// String returns a string representation of this TtTable instance
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB max entries %d of size %d Bytes entries %d (%d%%) puts %d "+
		"overwrites %d probes %d hits %d misses %d",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtEntry{}), tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.Puts, tt.Stats.Overwrites, tt.Stats.Probes, tt.Stats.Hits, tt.Stats.Misses)
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

// hash generates the index into the data array for the given key
func (tt *TtTable) hash(key position.Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}
