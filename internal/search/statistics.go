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

package search

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var statsOut = message.NewPrinter(language.English)

// Statistics holds all counters the search maintains while running.
// They are reset at the start of each SearchPosition call.
type Statistics struct {
	CurrentIterationDepth int

	Evaluations          uint64
	BetaCuts             uint64
	PvsResearches        uint64
	LmrReductions        uint64
	AspirationResearches uint64

	TTCuts   uint64
	TTNoCuts uint64
	TTStores uint64

	NullMoveAttempts       uint64
	NullMoveCuts           uint64
	NullMoveSkippedInCheck uint64

	Checkmates uint64
	Stalemates uint64
}

func (s *Statistics) String() string {
	return statsOut.Sprintf("Statistics: { depth %d evals %d betaCuts %d pvsResearches %d lmrReductions %d "+
		"aspResearches %d ttCuts %d ttNoCuts %d ttStores %d nullAttempts %d nullCuts %d nullSkippedInCheck %d "+
		"checkmates %d stalemates %d }",
		s.CurrentIterationDepth, s.Evaluations, s.BetaCuts, s.PvsResearches, s.LmrReductions,
		s.AspirationResearches, s.TTCuts, s.TTNoCuts, s.TTStores, s.NullMoveAttempts, s.NullMoveCuts,
		s.NullMoveSkippedInCheck, s.Checkmates, s.Stalemates)
}
