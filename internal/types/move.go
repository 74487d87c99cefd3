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
	"fmt"
	"strings"
)

// Move represents a single chess move. Promotion holds the piece
// identity of the promoted piece or PieceNone for non promotions.
// Score is a transient ordering key which is only meaningful while
// a move list is being sorted.
type Move struct {
	From        Square
	To          Square
	Piece       Piece
	Promotion   Piece
	IsCapture   bool
	IsEnPassant bool
	IsCastle    bool
	Score       Value
}

// MoveNone is the empty non valid move
var MoveNone = Move{From: SqNone, To: SqNone, Piece: PieceNone, Promotion: PieceNone}

// IsValid checks if the move has valid squares and a valid piece.
// MoveNone is not a valid move in this sense.
func (m Move) IsValid() bool {
	return m.From.IsValid() && m.To.IsValid() && m.Piece.IsValid()
}

// String returns a string representation of a move with its flags
func (m Move) String() string {
	if !m.IsValid() {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s piece:%s capture:%v ep:%v castle:%v score:%d }",
		m.StringUci(), m.Piece.String(), m.IsCapture, m.IsEnPassant, m.IsCastle, m.Score)
}

// StringUci returns a string representation of a move which is
// UCI compatible (e.g. e2e4, e7e8q)
func (m Move) StringUci() string {
	if !m.IsValid() {
		return "NoMove"
	}
	var os strings.Builder
	os.WriteString(m.From.String())
	os.WriteString(m.To.String())
	if m.Promotion != PieceNone {
		os.WriteString(strings.ToLower(m.Promotion.TypeOf().Char()))
	}
	return os.String()
}

// MoveList is a bounded list of moves for a single position. It is
// stack allocated per search node and must not be shared between
// recursive calls. No legal chess position generates more than
// MaxMoves moves.
type MoveList struct {
	moves [MaxMoves]Move
	count int
}

// PushBack appends a move to the list.
// Panics when the list is full - this would be a generator bug.
func (ml *MoveList) PushBack(m Move) {
	if ml.count >= MaxMoves {
		panic("MoveList overflow")
	}
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list
func (ml *MoveList) Len() int {
	return ml.count
}

// At returns a pointer to the move at index i
func (ml *MoveList) At(i int) *Move {
	return &ml.moves[i]
}

// Clear resets the list to empty
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Sort sorts the moves by their Score in descending order. The sort
// is stable so ties keep their original generation order.
func (ml *MoveList) Sort() {
	for i := 1; i < ml.count; i++ {
		m := ml.moves[i]
		j := i - 1
		for j >= 0 && ml.moves[j].Score < m.Score {
			ml.moves[j+1] = ml.moves[j]
			j--
		}
		ml.moves[j+1] = m
	}
}

// StringUci returns a string with all moves of the list in UCI protocol format
func (ml *MoveList) StringUci() string {
	var os strings.Builder
	for i := 0; i < ml.count; i++ {
		if i > 0 {
			os.WriteString(" ")
		}
		os.WriteString(ml.moves[i].StringUci())
	}
	return os.String()
}
