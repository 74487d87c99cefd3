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

// PieceType is a set of constants for the piece types in chess.
// The order pawn..king matches the piece identity encoding where
// a Piece is side*6 + type.
type PieceType uint8

// PieceType is a set of constants for piece types in chess
const (
	Pawn     PieceType = 0
	Knight   PieceType = 1
	Bishop   PieceType = 2
	Rook     PieceType = 3
	Queen    PieceType = 4
	King     PieceType = 5
	PtNone   PieceType = 6
	PtLength int       = 6
)

// IsValid checks if pt is a valid piece type
func (pt PieceType) IsValid() bool {
	return pt < PtNone
}

// array of values for each piece type when calculating game phase
var gamePhaseValue = [PtLength]int{0, 1, 1, 2, 4, 0}

// GamePhaseValue returns a value for calculating game phase
// by adding the number of a certain piece type times this value
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

// array of string labels for piece types
var pieceTypeToString = [PtLength]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns a string representation of a piece type
func (pt PieceType) String() string {
	if !pt.IsValid() {
		return "NOPIECE"
	}
	return pieceTypeToString[pt]
}

// array of char labels for piece types
var pieceTypeToChar = "PNBRQK"

// Char returns a single char string representation of a piece type
// or "-" for an invalid piece type
func (pt PieceType) Char() string {
	if !pt.IsValid() {
		return "-"
	}
	return string(pieceTypeToChar[pt])
}
