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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPushPop(t *testing.T) {
	b := BbZero
	b.PushSquare(SqE4)
	b.PushSquare(SqA1)
	b.PushSquare(SqH8)
	assert.Equal(t, 3, b.PopCount())
	assert.True(t, b.Has(SqE4))
	assert.False(t, b.Has(SqE5))
	b.PopSquare(SqE4)
	assert.Equal(t, 2, b.PopCount())
	assert.False(t, b.Has(SqE4))
}

func TestBitboardLsb(t *testing.T) {
	b := SqE4.Bb() | SqH8.Bb()
	assert.Equal(t, SqE4, b.Lsb())
	assert.Equal(t, SqE4, b.PopLsb())
	assert.Equal(t, SqH8, b.PopLsb())
	assert.Equal(t, SqNone, b.PopLsb())
	assert.Equal(t, BbZero, b)
}

func TestBitboardShift(t *testing.T) {
	assert.Equal(t, SqE5.Bb(), ShiftBitboard(SqE4.Bb(), North))
	assert.Equal(t, SqE3.Bb(), ShiftBitboard(SqE4.Bb(), South))
	assert.Equal(t, SqF4.Bb(), ShiftBitboard(SqE4.Bb(), East))
	assert.Equal(t, SqD4.Bb(), ShiftBitboard(SqE4.Bb(), West))
	// shifts over the edge erase the bits
	assert.Equal(t, BbZero, ShiftBitboard(SqH4.Bb(), East))
	assert.Equal(t, BbZero, ShiftBitboard(SqA4.Bb(), West))
	assert.Equal(t, BbZero, ShiftBitboard(SqE8.Bb(), North))
	assert.Equal(t, BbZero, ShiftBitboard(SqE1.Bb(), South))
}

func TestSquareBasics(t *testing.T) {
	assert.Equal(t, Square(0), SqA1)
	assert.Equal(t, Square(63), SqH8)
	assert.Equal(t, FileE, SqE4.FileOf())
	assert.Equal(t, Rank4, SqE4.RankOf())
	assert.Equal(t, SqE4, MakeSquare("e4"))
	assert.Equal(t, SqNone, MakeSquare("j9"))
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, SqA8, SqA1.FlipVertical())
	assert.Equal(t, SqE4, SqE5.FlipVertical())
}

func TestSquareTo(t *testing.T) {
	assert.Equal(t, SqE5, SqE4.To(North))
	assert.Equal(t, SqD3, SqE4.To(Southwest))
	// edge wraps are detected
	assert.Equal(t, SqNone, SqH4.To(East))
	assert.Equal(t, SqNone, SqA4.To(West))
	assert.Equal(t, SqNone, SqH8.To(Northeast))
}

func TestSquareDistance(t *testing.T) {
	assert.Equal(t, 1, SquareDistance(SqE4, SqE5))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 4, SquareDistance(SqD4, SqH8))
	assert.Equal(t, 0, SquareDistance(SqE4, SqE4))
}

func TestPieceEncoding(t *testing.T) {
	assert.Equal(t, WhiteQueen, MakePiece(White, Queen))
	assert.Equal(t, BlackKnight, MakePiece(Black, Knight))
	assert.Equal(t, White, WhiteKing.ColorOf())
	assert.Equal(t, Black, BlackPawn.ColorOf())
	assert.Equal(t, Queen, BlackQueen.TypeOf())
	assert.Equal(t, "q", BlackQueen.String())
	assert.Equal(t, WhiteRook, PieceFromChar("R"))
	assert.Equal(t, BlackKing, PieceFromChar("k"))
	assert.Equal(t, PieceNone, PieceFromChar("x"))
}
