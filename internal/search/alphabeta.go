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

package search

import (
	"github.com/gorgonchess/GorgonGo/internal/config"
	"github.com/gorgonchess/GorgonGo/internal/position"
	"github.com/gorgonchess/GorgonGo/internal/transpositiontable"
	. "github.com/gorgonchess/GorgonGo/internal/types"
)

// negamax is the recursive alpha beta search below the root. It is
// called until the remaining depth is 0 where it drops into the
// quiescence search.
//
// Every DoMove is paired with exactly one UndoMove on every exit path
// of the move loop - violating this corrupts the transposition table
// as subsequent stores would be keyed off a wrong hash key.
func (s *Search) negamax(p *position.Position, depth int, alpha Value, beta Value, isNull bool) Value {

	// TT lookup - results of previous searches of this position are
	// usable when they were searched at least as deep as the remaining
	// depth. Inside a null move search the stored values are not
	// trusted for a cutoff.
	ttType := transpositiontable.ALPHA
	if s.tt != nil && !isNull {
		if e := s.tt.Probe(p.ZobristKey()); e != nil && int(e.Depth) >= depth {
			switch {
			case e.Type == transpositiontable.EXACT:
				s.statistics.TTCuts++
				return e.Value
			case e.Type == transpositiontable.ALPHA && e.Value <= alpha:
				s.statistics.TTCuts++
				return alpha
			case e.Type == transpositiontable.BETA && e.Value >= beta:
				s.statistics.TTCuts++
				return beta
			default:
				s.statistics.TTNoCuts++
			}
		}
	}

	// leaf - drop into quiescence
	if depth == 0 {
		return s.qsearch(p, alpha, beta)
	}

	inCheck := p.HasCheck()

	// Null move pruning.
	// Under the assumption that in most chess positions making a move
	// is better than not moving, a reduced search after passing the
	// move which still fails high proves this node is not worth
	// searching. Not allowed when in check (passing would be illegal)
	// and never recursively.
	if config.Settings.Search.UseNullMove && !isNull {
		if inCheck {
			s.statistics.NullMoveSkippedInCheck++
		} else {
			s.statistics.NullMoveAttempts++
			newDepth := depth - 1 - config.Settings.Search.NmpReduction
			if newDepth < 0 {
				newDepth = 0
			}
			p.DoNullMove()
			value := -s.negamax(p, newDepth, -beta, -beta+1, true)
			p.UndoNullMove()
			if value >= beta {
				s.statistics.NullMoveCuts++
				return beta
			}
		}
	}

	var ml MoveList
	s.mg.GenerateMoves(p, &ml)

	us := p.SideToMove()
	movesSearched := 0
	bestValue := -ValueInf

	// ///////////////////////////////////////////////////////
	// MOVE LOOP
	for i := 0; i < ml.Len(); i++ {
		m := *ml.At(i)

		p.DoMove(m)
		// skip moves which leave the own king in check
		if p.IsAttacked(p.KingSquare(us), us.Flip()) {
			p.UndoMove(m)
			continue
		}
		movesSearched++
		s.nodesVisited++

		var value Value
		if movesSearched == 1 {
			// The first move of a node is assumed to be the principal
			// variation and searched with the full window.
			value = -s.negamax(p, depth-1, -beta, -alpha, false)
		} else {
			// Late move reduction - quiet moves late in a well ordered
			// list rarely raise alpha, so they are searched one ply
			// shallower first.
			newDepth := depth - 1
			if config.Settings.Search.UseLmr &&
				movesSearched > config.Settings.Search.LmrMovesSearched &&
				depth > config.Settings.Search.LmrDepth &&
				!m.IsCapture {
				newDepth = depth - 2
				s.statistics.LmrReductions++
			}
			// All non-first moves are searched with a null window to
			// prove they are worse than the current best. If the score
			// lands inside the window the move is re-searched with the
			// full window and full depth.
			value = -s.negamax(p, newDepth, -alpha-1, -alpha, false)
			if value > alpha && value < beta {
				s.statistics.PvsResearches++
				value = -s.negamax(p, depth-1, -beta, -alpha, false)
			}
		}

		p.UndoMove(m)

		if value > bestValue {
			bestValue = value
			if value > alpha {
				if value >= beta {
					s.statistics.BetaCuts++
					if s.tt != nil {
						s.statistics.TTStores++
						s.tt.Put(p.ZobristKey(), int8(depth), beta, transpositiontable.BETA)
					}
					return beta
				}
				alpha = value
				ttType = transpositiontable.EXACT
			}
		}
	}
	// MOVE LOOP
	// ///////////////////////////////////////////////////////

	// no legal move - mate or stalemate. Shorter mates score higher
	// through the ply term.
	if movesSearched == 0 {
		if inCheck {
			s.statistics.Checkmates++
			return -(ValueCheckMate - Value(p.Ply()))
		}
		s.statistics.Stalemates++
		return ValueDraw
	}

	// store the result for this node after all children have completed
	if s.tt != nil {
		s.statistics.TTStores++
		s.tt.Put(p.ZobristKey(), int8(depth), bestValue, ttType)
	}

	return bestValue
}

// qsearch is a simplified search which counters the horizon effect of
// the depth limited search by only exploring captures until the
// position is quiet. The static evaluation serves as a standing pat
// lower bound.
func (s *Search) qsearch(p *position.Position, alpha Value, beta Value) Value {

	s.statistics.Evaluations++
	standPat := s.eval.Evaluate(p)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	if !config.Settings.Search.UseQuiescence {
		return alpha
	}

	var ml MoveList
	s.mg.GenerateMoves(p, &ml)

	us := p.SideToMove()

	for i := 0; i < ml.Len(); i++ {
		m := *ml.At(i)
		if !m.IsCapture {
			continue
		}

		p.DoMove(m)
		if p.IsAttacked(p.KingSquare(us), us.Flip()) {
			p.UndoMove(m)
			continue
		}
		s.nodesVisited++

		value := -s.qsearch(p, -beta, -alpha)

		p.UndoMove(m)

		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}

	return alpha
}
