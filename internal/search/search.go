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

// Package search implements the search for the best move of a chess
// position: iterative deepening negamax with alpha-beta pruning,
// quiescence search, null move pruning, late move reduction,
// aspiration windows and a Zobrist keyed transposition table.
//
// The search is strictly single-threaded - one call to SearchPosition
// runs to completion on one goroutine and no state is shared between
// concurrent searches.
package search

import (
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gorgonchess/GorgonGo/internal/config"
	"github.com/gorgonchess/GorgonGo/internal/evaluator"
	myLogging "github.com/gorgonchess/GorgonGo/internal/logging"
	"github.com/gorgonchess/GorgonGo/internal/movegen"
	"github.com/gorgonchess/GorgonGo/internal/position"
	"github.com/gorgonchess/GorgonGo/internal/san"
	"github.com/gorgonchess/GorgonGo/internal/transpositiontable"
	. "github.com/gorgonchess/GorgonGo/internal/types"
	"github.com/gorgonchess/GorgonGo/internal/util"
)

var out = message.NewPrinter(language.English)

// Search represents the data structures and functionality of a chess
// engine search. The transposition table is shared across iterative
// deepening iterations and across successive SearchPosition calls on
// the same instance - it is never shared between concurrent searches.
//  Create a new instance with NewSearch()
type Search struct {
	log *logging.Logger

	mg   *movegen.Movegen
	eval *evaluator.Evaluator
	tt   *transpositiontable.TtTable

	nodesVisited    uint64
	statistics      Statistics
	lastSearchValue Value
}

// NewSearch creates a new Search instance. The transposition table is
// allocated from the configured size.
func NewSearch() *Search {
	s := &Search{
		log:  myLogging.GetLog(),
		mg:   movegen.NewMoveGen(),
		eval: evaluator.NewEvaluator(),
	}
	if config.Settings.Search.UseTT {
		sizeInMByte := config.Settings.Search.TTSize
		if sizeInMByte == 0 {
			sizeInMByte = 16
		}
		s.tt = transpositiontable.NewTtTable(sizeInMByte)
	} else {
		s.log.Info("Transposition Table is disabled in configuration")
	}
	return s
}

// NewGame resets the search state for a different game. The
// transposition table is cleared.
func (s *Search) NewGame() {
	if s.tt != nil {
		s.tt.Clear()
	}
}

// SearchPosition searches the given position with iterative deepening
// up to the given depth and returns the best move found.
//
// Each iteration uses an aspiration window around the previous
// iteration's score. On a fail-high or fail-low the same depth is
// re-searched with the full window.
//
// Protocol output on stdout:
//  info string searching depth D   at the start of each iteration
//  info score cp S move M          for each new best root move
//  bestmove M                      exactly once at the end
func (s *Search) SearchPosition(p *position.Position, maxDepth int) Move {
	if maxDepth <= 0 {
		maxDepth = 1
	}
	if maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	s.nodesVisited = 0
	s.statistics = Statistics{}
	startTime := time.Now()
	s.log.Infof("Searching: %s", p.StringFen())

	bestMove := MoveNone
	bestValue := ValueNA
	alpha := -ValueInf
	beta := ValueInf
	delta := Value(config.Settings.Search.AspirationDelta)

	// ///////////////////////////////////////////////////////
	// Iterative Deepening
	for depth := 1; depth <= maxDepth; depth++ {
		s.statistics.CurrentIterationDepth = depth
		out.Printf("info string searching depth %d\n", depth)

		value, move := s.rootSearch(p, depth, alpha, beta)

		// the score fell out of the aspiration window - re-search the
		// same depth with the full window
		if config.Settings.Search.UseAspiration && (value <= alpha || value >= beta) {
			s.statistics.AspirationResearches++
			value, move = s.rootSearch(p, depth, -ValueInf, ValueInf)
		}

		bestValue = value
		if move.IsValid() {
			bestMove = move
		}

		// center the window around the last score for the next iteration
		if config.Settings.Search.UseAspiration {
			alpha = value - delta
			beta = value + delta
		}
	}
	// ///////////////////////////////////////////////////////

	s.lastSearchValue = bestValue

	elapsed := time.Since(startTime)
	s.log.Info(out.Sprintf("Search finished after %s: value %s nodes %d nps %d",
		elapsed, bestValue.String(), s.nodesVisited, util.Nps(s.nodesVisited, elapsed)))
	s.log.Debugf("Search stats: %s", s.statistics.String())
	if s.tt != nil {
		s.log.Debugf("TT: %s", s.tt.String())
	}

	if bestMove.IsValid() {
		out.Printf("bestmove %s\n", san.FormatMove(p, bestMove))
	} else {
		// mate or stalemate at the root - there is no move to emit
		out.Printf("bestmove (none)\n")
	}
	return bestMove
}

// rootSearch searches all root moves of the position and returns the
// best value and best move. Root moves are treated a little different
// than inner nodes (no pruning, output of new best moves) which keeps
// the recursive search free of "if ply == 0" special cases.
func (s *Search) rootSearch(p *position.Position, depth int, alpha Value, beta Value) (Value, Move) {
	us := p.SideToMove()
	var ml MoveList
	s.mg.GenerateMoves(p, &ml)

	bestValue := -ValueInf
	bestMove := MoveNone
	legalMoves := 0

	for i := 0; i < ml.Len(); i++ {
		m := *ml.At(i)

		p.DoMove(m)
		// filter out moves which leave the own king in check
		if p.IsAttacked(p.KingSquare(us), us.Flip()) {
			p.UndoMove(m)
			continue
		}
		legalMoves++
		s.nodesVisited++

		value := -s.negamax(p, depth-1, -beta, -alpha, false)

		p.UndoMove(m)

		if value > bestValue {
			bestValue = value
			bestMove = m
			out.Printf("info score cp %d move %s\n", int(value), san.FormatMove(p, m))
		}
		if value > alpha {
			alpha = value
			if alpha >= beta {
				break
			}
		}
	}

	// no legal move - mate or stalemate
	if legalMoves == 0 {
		if p.HasCheck() {
			s.statistics.Checkmates++
			return -(ValueCheckMate - Value(p.Ply())), MoveNone
		}
		s.statistics.Stalemates++
		return ValueDraw, MoveNone
	}

	return bestValue, bestMove
}

// LastSearchValue returns the value of the last SearchPosition call
func (s *Search) LastSearchValue() Value {
	return s.lastSearchValue
}

// NodesVisited returns the number of visited nodes of the last search
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// Statistics returns a pointer to the search statistics of the last search
func (s *Search) Statistics() *Statistics {
	return &s.statistics
}

// TtLen returns the number of entries in the transposition table
// or 0 if no transposition table is used
func (s *Search) TtLen() uint64 {
	if s.tt == nil {
		return 0
	}
	return s.tt.Len()
}
