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

// Package san formats moves in Standard Algebraic Notation. The
// formatter consumes the position the move is about to be played on
// and uses the move generator to compute disambiguation and the
// check / mate suffix.
package san

import (
	"strings"

	"github.com/gorgonchess/GorgonGo/internal/movegen"
	"github.com/gorgonchess/GorgonGo/internal/position"
	. "github.com/gorgonchess/GorgonGo/internal/types"
)

// FormatMove returns the SAN string of the given move on the given
// position. The move must be legal on the position.
func FormatMove(p *position.Position, m Move) string {
	mg := movegen.NewMoveGen()
	var os strings.Builder

	switch {
	case m.IsCastle:
		if m.To > m.From {
			os.WriteString("O-O")
		} else {
			os.WriteString("O-O-O")
		}
	default:
		pt := m.Piece.TypeOf()
		if pt == Pawn {
			if m.IsCapture {
				os.WriteString(m.From.FileOf().String())
			}
		} else {
			os.WriteString(pt.Char())
			os.WriteString(disambiguation(p, mg, m))
		}
		if m.IsCapture {
			os.WriteString("x")
		}
		os.WriteString(m.To.String())
		if m.Promotion != PieceNone {
			os.WriteString("=")
			os.WriteString(m.Promotion.TypeOf().Char())
		}
	}

	os.WriteString(checkSuffix(p, mg, m))
	return os.String()
}

// disambiguation returns the minimal from-square qualifier needed to
// make the move unique: nothing, the file, the rank, or both.
func disambiguation(p *position.Position, mg *movegen.Movegen, m Move) string {
	var ml MoveList
	mg.GenerateLegalMoves(p, &ml)

	ambiguous := false
	sameFile := false
	sameRank := false
	for i := 0; i < ml.Len(); i++ {
		other := ml.At(i)
		if other.From != m.From && other.To == m.To && other.Piece == m.Piece {
			ambiguous = true
			if other.From.FileOf() == m.From.FileOf() {
				sameFile = true
			}
			if other.From.RankOf() == m.From.RankOf() {
				sameRank = true
			}
		}
	}

	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return m.From.FileOf().String()
	case !sameRank:
		return m.From.RankOf().String()
	default:
		return m.From.String()
	}
}

// checkSuffix plays the move on the position and returns "+" when the
// opponent is in check, "#" when the opponent has no legal reply, or
// an empty string.
func checkSuffix(p *position.Position, mg *movegen.Movegen, m Move) string {
	suffix := ""
	p.DoMove(m)
	if p.HasCheck() {
		var replies MoveList
		mg.GenerateLegalMoves(p, &replies)
		if replies.Len() == 0 {
			suffix = "#"
		} else {
			suffix = "+"
		}
	}
	p.UndoMove(m)
	return suffix
}
