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

func TestMoveStringUci(t *testing.T) {
	m := Move{From: SqE2, To: SqE4, Piece: WhitePawn, Promotion: PieceNone}
	assert.Equal(t, "e2e4", m.StringUci())

	m = Move{From: SqE7, To: SqE8, Piece: WhitePawn, Promotion: WhiteQueen}
	assert.Equal(t, "e7e8q", m.StringUci())

	assert.Equal(t, "NoMove", MoveNone.StringUci())
	assert.False(t, MoveNone.IsValid())
}

func TestMoveListPushBack(t *testing.T) {
	var ml MoveList
	assert.Equal(t, 0, ml.Len())
	ml.PushBack(Move{From: SqE2, To: SqE4, Piece: WhitePawn, Promotion: PieceNone})
	ml.PushBack(Move{From: SqD2, To: SqD4, Piece: WhitePawn, Promotion: PieceNone})
	assert.Equal(t, 2, ml.Len())
	assert.Equal(t, SqE2, ml.At(0).From)
	ml.Clear()
	assert.Equal(t, 0, ml.Len())
}

func TestMoveListSortStable(t *testing.T) {
	var ml MoveList
	a := Move{From: SqE2, To: SqE4, Piece: WhitePawn, Promotion: PieceNone, Score: 0}
	b := Move{From: SqD2, To: SqD4, Piece: WhitePawn, Promotion: PieceNone, Score: 100}
	c := Move{From: SqC2, To: SqC4, Piece: WhitePawn, Promotion: PieceNone, Score: 0}
	d := Move{From: SqB2, To: SqB4, Piece: WhitePawn, Promotion: PieceNone, Score: 200}
	ml.PushBack(a)
	ml.PushBack(b)
	ml.PushBack(c)
	ml.PushBack(d)
	ml.Sort()

	// descending by score, ties keep generation order
	assert.Equal(t, SqB2, ml.At(0).From)
	assert.Equal(t, SqD2, ml.At(1).From)
	assert.Equal(t, SqE2, ml.At(2).From)
	assert.Equal(t, SqC2, ml.At(3).From)
}
