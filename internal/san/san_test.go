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

package san

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorgonchess/GorgonGo/internal/position"
	. "github.com/gorgonchess/GorgonGo/internal/types"
)

func pos(t *testing.T, fen string) *position.Position {
	t.Helper()
	p, err := position.NewPositionFen(fen)
	require.NoError(t, err)
	return p
}

func TestPawnMoves(t *testing.T) {
	p := pos(t, position.StartFen)
	m := Move{From: SqE2, To: SqE4, Piece: WhitePawn, Promotion: PieceNone}
	assert.Equal(t, "e4", FormatMove(p, m))
}

func TestPawnCapture(t *testing.T) {
	p := pos(t, "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	m := Move{From: SqE4, To: SqD5, Piece: WhitePawn, Promotion: PieceNone, IsCapture: true}
	assert.Equal(t, "exd5", FormatMove(p, m))
}

func TestPieceMoveAndCapture(t *testing.T) {
	p := pos(t, position.StartFen)
	m := Move{From: SqG1, To: SqF3, Piece: WhiteKnight, Promotion: PieceNone}
	assert.Equal(t, "Nf3", FormatMove(p, m))

	p = pos(t, "4k3/8/8/3p4/8/4N3/8/4K3 w - - 0 1")
	m = Move{From: SqE3, To: SqD5, Piece: WhiteKnight, Promotion: PieceNone, IsCapture: true}
	assert.Equal(t, "Nxd5", FormatMove(p, m))
}

func TestCastling(t *testing.T) {
	p := pos(t, "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	oo := Move{From: SqE1, To: SqG1, Piece: WhiteKing, Promotion: PieceNone, IsCastle: true}
	ooo := Move{From: SqE1, To: SqC1, Piece: WhiteKing, Promotion: PieceNone, IsCastle: true}
	assert.Equal(t, "O-O", FormatMove(p, oo))
	assert.Equal(t, "O-O-O", FormatMove(p, ooo))
}

func TestPromotion(t *testing.T) {
	p := pos(t, "8/P6k/8/8/8/8/6K1/8 w - - 0 1")
	m := Move{From: SqA7, To: SqA8, Piece: WhitePawn, Promotion: WhiteQueen}
	assert.Equal(t, "a8=Q", FormatMove(p, m))

	p = pos(t, "1r5k/P7/8/8/8/8/6K1/8 w - - 0 1")
	m = Move{From: SqA7, To: SqB8, Piece: WhitePawn, Promotion: WhiteKnight, IsCapture: true}
	assert.Equal(t, "axb8=N", FormatMove(p, m))
}

func TestFileDisambiguation(t *testing.T) {
	// two knights on b1 and f3 can both reach d2
	p := pos(t, "4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1")
	m := Move{From: SqF3, To: SqD2, Piece: WhiteKnight, Promotion: PieceNone}
	assert.Equal(t, "Nfd2", FormatMove(p, m))
	m = Move{From: SqB1, To: SqD2, Piece: WhiteKnight, Promotion: PieceNone}
	assert.Equal(t, "Nbd2", FormatMove(p, m))
}

func TestRankDisambiguation(t *testing.T) {
	// two rooks on the a-file can both reach a4
	p := pos(t, "k7/8/r7/8/8/r7/8/4K3 b - - 0 1")
	m := Move{From: SqA6, To: SqA4, Piece: BlackRook, Promotion: PieceNone}
	assert.Equal(t, "R6a4", FormatMove(p, m))
	m = Move{From: SqA3, To: SqA4, Piece: BlackRook, Promotion: PieceNone}
	assert.Equal(t, "R3a4", FormatMove(p, m))
}

func TestCheckSuffix(t *testing.T) {
	// rook to a4 gives check to the king on a1
	p := pos(t, "4k3/8/8/8/4r3/8/8/K7 b - - 0 1")
	m := Move{From: SqE4, To: SqA4, Piece: BlackRook, Promotion: PieceNone}
	assert.Equal(t, "Ra4+", FormatMove(p, m))
}

func TestMateSuffix(t *testing.T) {
	// the scholar's mate
	p := pos(t, "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR w KQkq - 0 4")
	m := Move{From: SqF3, To: SqF7, Piece: WhiteQueen, Promotion: PieceNone, IsCapture: true}
	assert.Equal(t, "Qxf7#", FormatMove(p, m))
}
