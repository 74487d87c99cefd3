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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gorgonchess/GorgonGo/internal/position"
	. "github.com/gorgonchess/GorgonGo/internal/types"
	"github.com/gorgonchess/GorgonGo/internal/util"
)

var out = message.NewPrinter(language.English)

// Perft counts the leaf nodes of the legal move generation tree to a
// given depth. It is the primary gauntlet for move generation and
// make/unmake correctness.
type Perft struct {
	Nodes uint64
	mg    *Movegen
}

// NewPerft creates a new empty Perft instance
func NewPerft() *Perft {
	return &Perft{mg: NewMoveGen()}
}

// StartPerft runs a perft of the given depth on the given fen and
// prints node count and timing.
func (perft *Perft) StartPerft(fen string, depth int) {
	if depth <= 0 {
		depth = 1
	}
	perft.Nodes = 0

	p, err := position.NewPositionFen(fen)
	if err != nil {
		out.Printf("Perft aborted. Invalid fen: %s\n", fen)
		return
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)

	start := time.Now()
	perft.Nodes = perft.perft(p, depth)
	elapsed := time.Since(start)

	out.Printf("Nodes: %d (%d nps)\n", perft.Nodes, util.Nps(perft.Nodes, elapsed))
	out.Printf("Finished PERFT Test for Depth %d in %s\n\n", depth, elapsed)
}

// Divide runs a perft of the given depth and prints the node count
// for each root move. Useful when tracking down generation bugs.
func (perft *Perft) Divide(fen string, depth int) {
	p, err := position.NewPositionFen(fen)
	if err != nil {
		out.Printf("Divide aborted. Invalid fen: %s\n", fen)
		return
	}
	var ml MoveList
	perft.mg.GenerateLegalMoves(p, &ml)
	total := uint64(0)
	for i := 0; i < ml.Len(); i++ {
		m := *ml.At(i)
		p.DoMove(m)
		nodes := uint64(1)
		if depth > 1 {
			nodes = perft.perft(p, depth-1)
		}
		p.UndoMove(m)
		total += nodes
		out.Printf("%s: %d\n", m.StringUci(), nodes)
	}
	out.Printf("Total: %d\n", total)
}

// perft recursively counts the legal leaf nodes. Pseudo legal moves
// are filtered with make / is-attacked / unmake.
func (perft *Perft) perft(p *position.Position, depth int) uint64 {
	var ml MoveList
	perft.mg.GeneratePseudoLegalMoves(p, &ml)
	us := p.SideToMove()
	nodes := uint64(0)
	for i := 0; i < ml.Len(); i++ {
		m := *ml.At(i)
		p.DoMove(m)
		if !p.IsAttacked(p.KingSquare(us), us.Flip()) {
			if depth <= 1 {
				nodes++
			} else {
				nodes += perft.perft(p, depth-1)
			}
		}
		p.UndoMove(m)
	}
	return nodes
}
