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
	"strings"
)

// Piece is a piece identity: the white pieces pawn..king are 0-5,
// the black pieces pawn..king are 6-11. This identity indexes the
// piece bitboards of a position and the Zobrist piece keys.
//  side of piece x: White if x < 6 else Black
//  type of piece x: x mod 6
type Piece int8

// Pieces are a set of constants to represent the different pieces
// of a chess game.
const (
	WhitePawn   Piece = 0
	WhiteKnight Piece = 1
	WhiteBishop Piece = 2
	WhiteRook   Piece = 3
	WhiteQueen  Piece = 4
	WhiteKing   Piece = 5
	BlackPawn   Piece = 6
	BlackKnight Piece = 7
	BlackBishop Piece = 8
	BlackRook   Piece = 9
	BlackQueen  Piece = 10
	BlackKing   Piece = 11
	PieceNone   Piece = 12
	PieceLength int   = 12
)

// MakePiece creates the piece given by color and piece type
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)*6 + int(pt))
}

// ColorOf returns the color of the given piece
func (p Piece) ColorOf() Color {
	if p < BlackPawn {
		return White
	}
	return Black
}

// TypeOf returns the piece type of the given piece
func (p Piece) TypeOf() PieceType {
	return PieceType(p % 6)
}

// IsValid checks if p is a valid piece identity
func (p Piece) IsValid() bool {
	return p >= WhitePawn && p < PieceNone
}

// array of fen letters for pieces - indexed by piece identity
const pieceToString = "PNBRQKpnbrqk"

// PieceFromChar returns the Piece corresponding to the given fen character.
// If s contains not exactly one character or if the character is invalid this
// will return PieceNone
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	index := strings.Index(pieceToString, s)
	if index == -1 {
		return PieceNone
	}
	return Piece(index)
}

// String returns the fen letter of the piece (e.g. "P" or "q")
// or "-" for no piece
func (p Piece) String() string {
	if !p.IsValid() {
		return "-"
	}
	return string(pieceToString[p])
}
