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

package position

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/gorgonchess/GorgonGo/internal/types"
)

func TestSetupFromFen(t *testing.T) {
	p, err := NewPositionFen(StartFen)
	require.NoError(t, err)

	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.GetEnPassantSquare())
	assert.Equal(t, 0, p.Ply())
	assert.Equal(t, 8, p.PiecesBb(WhitePawn).PopCount())
	assert.Equal(t, 8, p.PiecesBb(BlackPawn).PopCount())
	assert.Equal(t, 1, p.PiecesBb(WhiteKing).PopCount())
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
	assert.Equal(t, 32, p.OccupiedAll().PopCount())
	assert.Equal(t, GamePhaseMax, p.GamePhase())
}

func TestInvalidFen(t *testing.T) {
	var err error
	_, err = NewPositionFen("")
	assert.Error(t, err)
	_, err = NewPositionFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq -")
	assert.Error(t, err)
	_, err = NewPositionFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -")
	assert.Error(t, err)
	_, err = NewPositionFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KXkq -")
	assert.Error(t, err)
}

// FEN -> position -> FEN must be the identity on the first four fields
func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
		"rnbqkbnr/ppppppp1/8/7p/4P3/8/PPPP1PPP/RNBQKBNR w KQkq h6 0 2",
		"4k3/8/8/8/8/8/4P3/4K3 b - - 0 1",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		require.NoError(t, err, fen)
		want := strings.Join(strings.Split(fen, " ")[:4], " ")
		got := strings.Join(strings.Split(p.StringFen(), " ")[:4], " ")
		assert.Equal(t, want, got)
	}
}


// assertPositionEqual compares all state fields of two positions.
// The history slots above the stack top are scratch space and are
// deliberately not part of the comparison.
func assertPositionEqual(t *testing.T, want *Position, got *Position) {
	t.Helper()
	assert.Equal(t, want.piecesBb, got.piecesBb)
	assert.Equal(t, want.occupancies, got.occupancies)
	assert.Equal(t, want.sideToMove, got.sideToMove)
	assert.Equal(t, want.enPassantSquare, got.enPassantSquare)
	assert.Equal(t, want.castlingRights, got.castlingRights)
	assert.Equal(t, want.ply, got.ply)
	assert.Equal(t, want.zobristKey, got.zobristKey)
}

// the occupancy bitboards must be consistent with the piece bitboards
func assertOccupancies(t *testing.T, p *Position) {
	t.Helper()
	white := BbZero
	black := BbZero
	for pc := WhitePawn; pc <= WhiteKing; pc++ {
		white |= p.PiecesBb(pc)
	}
	for pc := BlackPawn; pc <= BlackKing; pc++ {
		black |= p.PiecesBb(pc)
	}
	assert.Equal(t, white, p.OccupiedBb(White))
	assert.Equal(t, black, p.OccupiedBb(Black))
	assert.Equal(t, BbZero, p.OccupiedBb(White)&p.OccupiedBb(Black))
	assert.Equal(t, white|black, p.OccupiedAll())
}

func TestDoUndoMoveNormal(t *testing.T) {
	p, _ := NewPositionFen(StartFen)
	before := *p

	m := Move{From: SqE2, To: SqE4, Piece: WhitePawn, Promotion: PieceNone}
	p.DoMove(m)

	assert.Equal(t, Black, p.SideToMove())
	assert.Equal(t, SqE3, p.GetEnPassantSquare())
	assert.Equal(t, 1, p.Ply())
	assert.True(t, p.PiecesBb(WhitePawn).Has(SqE4))
	assert.False(t, p.PiecesBb(WhitePawn).Has(SqE2))
	assert.Equal(t, p.GenerateHashKey(), p.ZobristKey())
	assertOccupancies(t, p)

	p.UndoMove(m)
	assertPositionEqual(t, &before, p)
}

func TestDoUndoMoveCapture(t *testing.T) {
	// 1.e4 d5 - white captures exd5
	p, _ := NewPositionFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	before := *p

	m := Move{From: SqE4, To: SqD5, Piece: WhitePawn, Promotion: PieceNone, IsCapture: true}
	p.DoMove(m)
	assert.True(t, p.PiecesBb(WhitePawn).Has(SqD5))
	assert.False(t, p.PiecesBb(BlackPawn).Has(SqD5))
	assert.Equal(t, SqNone, p.GetEnPassantSquare())
	assert.Equal(t, p.GenerateHashKey(), p.ZobristKey())
	assertOccupancies(t, p)

	p.UndoMove(m)
	assertPositionEqual(t, &before, p)
}

func TestDoUndoMoveEnPassant(t *testing.T) {
	p, _ := NewPositionFen("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3")
	before := *p

	m := Move{From: SqD4, To: SqE3, Piece: BlackPawn, Promotion: PieceNone,
		IsCapture: true, IsEnPassant: true}
	p.DoMove(m)
	assert.True(t, p.PiecesBb(BlackPawn).Has(SqE3))
	assert.False(t, p.PiecesBb(WhitePawn).Has(SqE4))
	assert.Equal(t, p.GenerateHashKey(), p.ZobristKey())
	assertOccupancies(t, p)

	p.UndoMove(m)
	assertPositionEqual(t, &before, p)
}

func TestDoUndoMoveCastling(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	before := *p

	// white king side
	m := Move{From: SqE1, To: SqG1, Piece: WhiteKing, Promotion: PieceNone, IsCastle: true}
	p.DoMove(m)
	assert.True(t, p.PiecesBb(WhiteKing).Has(SqG1))
	assert.True(t, p.PiecesBb(WhiteRook).Has(SqF1))
	assert.False(t, p.PiecesBb(WhiteRook).Has(SqH1))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOO))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOOO))
	assert.True(t, p.CastlingRights().Has(CastlingBlackOO))
	assert.Equal(t, p.GenerateHashKey(), p.ZobristKey())
	assertOccupancies(t, p)

	// black queen side on top
	m2 := Move{From: SqE8, To: SqC8, Piece: BlackKing, Promotion: PieceNone, IsCastle: true}
	p.DoMove(m2)
	assert.True(t, p.PiecesBb(BlackKing).Has(SqC8))
	assert.True(t, p.PiecesBb(BlackRook).Has(SqD8))
	assert.Equal(t, CastlingNone, p.CastlingRights())
	assert.Equal(t, p.GenerateHashKey(), p.ZobristKey())

	p.UndoMove(m2)
	p.UndoMove(m)
	assertPositionEqual(t, &before, p)
}

func TestDoUndoMovePromotion(t *testing.T) {
	p, _ := NewPositionFen("8/P6k/8/8/8/8/6K1/1r6 w - - 0 1")
	before := *p

	m := Move{From: SqA7, To: SqA8, Piece: WhitePawn, Promotion: WhiteQueen}
	p.DoMove(m)
	assert.True(t, p.PiecesBb(WhiteQueen).Has(SqA8))
	assert.Equal(t, BbZero, p.PiecesBb(WhitePawn))
	assert.Equal(t, p.GenerateHashKey(), p.ZobristKey())
	assertOccupancies(t, p)

	p.UndoMove(m)
	assertPositionEqual(t, &before, p)
}

func TestDoUndoMovePromotionCapture(t *testing.T) {
	p, _ := NewPositionFen("1r6/P6k/8/8/8/8/6K1/8 w - - 0 1")
	before := *p

	m := Move{From: SqA7, To: SqB8, Piece: WhitePawn, Promotion: WhiteQueen, IsCapture: true}
	p.DoMove(m)
	assert.True(t, p.PiecesBb(WhiteQueen).Has(SqB8))
	assert.Equal(t, BbZero, p.PiecesBb(BlackRook))
	assert.Equal(t, p.GenerateHashKey(), p.ZobristKey())
	assertOccupancies(t, p)

	p.UndoMove(m)
	assertPositionEqual(t, &before, p)
}

// castling rights must fall when a rook is captured on its home square
func TestRookCaptureClearsCastlingRight(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/8/8/8/8/8/6B1/R3K2R w KQkq - 0 1")
	m := Move{From: SqG2, To: SqA8, Piece: WhiteBishop, Promotion: PieceNone, IsCapture: true}
	p.DoMove(m)
	assert.False(t, p.CastlingRights().Has(CastlingBlackOOO))
	assert.True(t, p.CastlingRights().Has(CastlingBlackOO))
	assert.Equal(t, p.GenerateHashKey(), p.ZobristKey())
}

// the hash must come back to its start value after a make/unmake chain
func TestZobristSequence(t *testing.T) {
	p, _ := NewPositionFen(StartFen)
	startKey := p.ZobristKey()

	moves := []Move{
		{From: SqE2, To: SqE4, Piece: WhitePawn, Promotion: PieceNone},
		{From: SqE7, To: SqE5, Piece: BlackPawn, Promotion: PieceNone},
		{From: SqG1, To: SqF3, Piece: WhiteKnight, Promotion: PieceNone},
		{From: SqB8, To: SqC6, Piece: BlackKnight, Promotion: PieceNone},
		{From: SqF1, To: SqC4, Piece: WhiteBishop, Promotion: PieceNone},
	}
	for _, m := range moves {
		p.DoMove(m)
		assert.Equal(t, p.GenerateHashKey(), p.ZobristKey())
	}
	for i := len(moves) - 1; i >= 0; i-- {
		p.UndoMove(moves[i])
	}
	assert.Equal(t, startKey, p.ZobristKey())
	assert.Equal(t, 0, p.Ply())
}

// two transpositions of the same position must hash equal
func TestZobristTransposition(t *testing.T) {
	p1, _ := NewPositionFen(StartFen)
	p1.DoMove(Move{From: SqG1, To: SqF3, Piece: WhiteKnight, Promotion: PieceNone})
	p1.DoMove(Move{From: SqG8, To: SqF6, Piece: BlackKnight, Promotion: PieceNone})
	p1.DoMove(Move{From: SqB1, To: SqC3, Piece: WhiteKnight, Promotion: PieceNone})

	p2, _ := NewPositionFen(StartFen)
	p2.DoMove(Move{From: SqB1, To: SqC3, Piece: WhiteKnight, Promotion: PieceNone})
	p2.DoMove(Move{From: SqG8, To: SqF6, Piece: BlackKnight, Promotion: PieceNone})
	p2.DoMove(Move{From: SqG1, To: SqF3, Piece: WhiteKnight, Promotion: PieceNone})

	assert.Equal(t, p1.ZobristKey(), p2.ZobristKey())
}

// a different side to move must differ by exactly the side key
func TestZobristSideToMove(t *testing.T) {
	pw, _ := NewPositionFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	pb, _ := NewPositionFen("4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	assert.NotEqual(t, pw.ZobristKey(), pb.ZobristKey())
	assert.Equal(t, uint64(pw.ZobristKey())^uint64(zobristBase.sideToMove), uint64(pb.ZobristKey()))
}

func TestDoUndoNullMove(t *testing.T) {
	p, _ := NewPositionFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	before := *p

	p.DoNullMove()
	assert.Equal(t, Black, p.SideToMove())
	assert.Equal(t, SqNone, p.GetEnPassantSquare())
	assert.Equal(t, p.GenerateHashKey(), p.ZobristKey())

	p.UndoNullMove()
	assertPositionEqual(t, &before, p)
}

func TestIsAttacked(t *testing.T) {
	p, _ := NewPositionFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	// pawns on rank 2 attack rank 3
	assert.True(t, p.IsAttacked(SqE3, White))
	assert.True(t, p.IsAttacked(SqE6, Black))
	// knight on g1 attacks f3 and h3
	assert.True(t, p.IsAttacked(SqF3, White))
	assert.True(t, p.IsAttacked(SqH3, White))
	// e4 is attacked by nobody
	assert.False(t, p.IsAttacked(SqE4, White))
	assert.False(t, p.IsAttacked(SqE4, Black))

	// sliders
	p, _ = NewPositionFen("4k3/8/8/8/4r3/8/8/4K3 w - - 0 1")
	assert.True(t, p.IsAttacked(SqE2, Black))
	assert.True(t, p.IsAttacked(SqA4, Black))
	assert.False(t, p.IsAttacked(SqD3, Black))
	assert.True(t, p.HasCheck())
}

func TestHistoryOverflowPanics(t *testing.T) {
	p, _ := NewPositionFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	wk := Move{From: SqE1, To: SqD1, Piece: WhiteKing, Promotion: PieceNone}
	wkBack := Move{From: SqD1, To: SqE1, Piece: WhiteKing, Promotion: PieceNone}
	bk := Move{From: SqE8, To: SqD8, Piece: BlackKing, Promotion: PieceNone}
	bkBack := Move{From: SqD8, To: SqE8, Piece: BlackKing, Promotion: PieceNone}
	assert.Panics(t, func() {
		for i := 0; i < 100; i++ {
			p.DoMove(wk)
			p.DoMove(bk)
			p.DoMove(wkBack)
			p.DoMove(bkBack)
		}
	})
}
