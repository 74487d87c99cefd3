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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorgonchess/GorgonGo/internal/position"
	. "github.com/gorgonchess/GorgonGo/internal/types"
)

// the side to move can deliver mate in one - the search must find the
// mating move and return a mate score
func TestMateInOne(t *testing.T) {
	s := NewSearch()
	p, err := position.NewPositionFen("r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR w KQkq - 0 4")
	require.NoError(t, err)

	move := s.SearchPosition(p, 3)
	require.True(t, move.IsValid())
	assert.Equal(t, SqF3, move.From)
	assert.Equal(t, SqF7, move.To)
	assert.True(t, s.LastSearchValue().IsCheckMateValue())
	assert.True(t, s.LastSearchValue() > ValueZero)
}

// the side to move is already mated - the search returns a mate score
// and no move
func TestMatedPosition(t *testing.T) {
	s := NewSearch()
	p, err := position.NewPositionFen("r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4")
	require.NoError(t, err)

	move := s.SearchPosition(p, 2)
	assert.False(t, move.IsValid())
	assert.True(t, s.LastSearchValue().IsCheckMateValue())
	assert.True(t, s.LastSearchValue() < ValueZero)
}

// black to move has no legal moves and is not in check - stalemate
// is a draw score
func TestStalemate(t *testing.T) {
	s := NewSearch()
	p, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	move := s.SearchPosition(p, 4)
	assert.False(t, move.IsValid())
	assert.Equal(t, ValueDraw, s.LastSearchValue())
}

// a quiet endgame search completes and reports a finite score
func TestSimpleEndgame(t *testing.T) {
	depth := 10
	if testing.Short() {
		depth = 6
	}
	s := NewSearch()
	p, err := position.NewPositionFen("8/k7/p7/P1p5/2P5/8/1K6/8 w - - 0 1")
	require.NoError(t, err)

	move := s.SearchPosition(p, depth)
	assert.True(t, move.IsValid())
	assert.False(t, s.LastSearchValue().IsCheckMateValue())
	assert.True(t, s.LastSearchValue().IsValid())
}

// searching the same position twice on the same instance must be
// deterministic - the second search probes the transposition table
func TestTTDeterminism(t *testing.T) {
	s := NewSearch()

	p1, _ := position.NewPositionFen(position.StartFen)
	move1 := s.SearchPosition(p1, 4)
	value1 := s.LastSearchValue()
	require.True(t, s.TtLen() > 0)

	p2, _ := position.NewPositionFen(position.StartFen)
	move2 := s.SearchPosition(p2, 4)
	value2 := s.LastSearchValue()

	assert.Equal(t, move1, move2)
	assert.Equal(t, value1, value2)
	// the second search must have used the table
	assert.True(t, s.statistics.TTCuts > 0)
}

// the null move branch must never be taken when the side to move is
// in check
func TestNullMoveNotTakenInCheck(t *testing.T) {
	s := NewSearch()
	// white is in check from the queen on h4
	p, err := position.NewPositionFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 3")
	require.NoError(t, err)
	require.True(t, p.HasCheck())

	// calling the inner search directly on the in-check node: the
	// null move must be skipped, not attempted
	s.negamax(p, 1, -ValueInf, ValueInf, false)
	assert.Equal(t, uint64(0), s.statistics.NullMoveAttempts)
	assert.True(t, s.statistics.NullMoveSkippedInCheck > 0)
}

// in quiet middlegame positions the null move pruning is exercised
func TestNullMoveAttempted(t *testing.T) {
	s := NewSearch()
	p, _ := position.NewPositionFen(position.StartFen)
	s.SearchPosition(p, 4)
	assert.True(t, s.statistics.NullMoveAttempts > 0)
}

// the classic back rank mate must be found and scored as mate
func TestBackRankMate(t *testing.T) {
	s := NewSearch()
	p, err := position.NewPositionFen("6k1/5ppp/8/8/8/8/R7/R5K1 w - - 0 1")
	require.NoError(t, err)

	move := s.SearchPosition(p, 4)
	require.True(t, move.IsValid())
	assert.True(t, s.LastSearchValue().IsCheckMateValue())
	assert.True(t, s.LastSearchValue() > ValueZero)
}
