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

// Package evaluator contains the structures and functions to calculate
// the static value of a chess position to be used in a chess engine
// search. The score is tapered between a middle game and an end game
// part by the game phase and is always relative to the side to move.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/gorgonchess/GorgonGo/internal/config"
	myLogging "github.com/gorgonchess/GorgonGo/internal/logging"
	"github.com/gorgonchess/GorgonGo/internal/position"
	. "github.com/gorgonchess/GorgonGo/internal/types"
)

// Evaluator represents the functionality to evaluate chess positions
// by material, piece-square tables, mobility and pawn structure.
//  Create a new instance with NewEvaluator()
type Evaluator struct {
	log *logging.Logger
}

// pre computed masks for the pawn structure terms
var (
	fileMasks         [8]Bitboard
	adjacentFileMasks [8]Bitboard
	passedPawnMasks   [2][SqLength]Bitboard
)

func init() {
	initEvaluationMasks()
}

// NewEvaluator creates a new instance of an Evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{
		log: myLogging.GetLog(),
	}
}

// Evaluate calculates a centipawn value for the given chess position.
// Two scores are accumulated over all pieces - one for the middle game
// and one for the end game - and blended by the game phase:
//  (mg*phase + eg*(24-phase)) / 24
// The result is returned from the view of the side to move.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	mg := 0
	eg := 0
	gamePhase := 0

	// material and piece-square terms - white adds, black subtracts.
	// Black mirrors the square vertically for the table lookup.
	for pc := WhitePawn; pc < PieceNone; pc++ {
		pt := pc.TypeOf()
		bb := p.PiecesBb(pc)
		gamePhase += bb.PopCount() * pt.GamePhaseValue()
		for bb != BbZero {
			sq := bb.PopLsb()
			if pc.ColorOf() == White {
				mg += int(materialScore[pt].Mid) + int(psts[pt][sq].Mid)
				eg += int(materialScore[pt].End) + int(psts[pt][sq].End)
			} else {
				mg -= int(materialScore[pt].Mid) + int(psts[pt][sq.FlipVertical()].Mid)
				eg -= int(materialScore[pt].End) + int(psts[pt][sq.FlipVertical()].End)
			}
		}
	}

	// mobility of knights, bishops, rooks and queens
	if config.Settings.Eval.UseMobility {
		ms := e.mobility(p, White)
		mg += int(ms.Mid)
		eg += int(ms.End)
		ms = e.mobility(p, Black)
		mg -= int(ms.Mid)
		eg -= int(ms.End)
	}

	// pawn structure
	if config.Settings.Eval.UsePawnEval {
		ps := e.pawnStructure(p, White)
		mg += int(ps.Mid)
		eg += int(ps.End)
		ps = e.pawnStructure(p, Black)
		mg -= int(ps.Mid)
		eg -= int(ps.End)
	}

	// tapered blend of the two scores by game phase
	if gamePhase > GamePhaseMax {
		gamePhase = GamePhaseMax
	}
	finalScore := (mg*gamePhase + eg*(GamePhaseMax-gamePhase)) / GamePhaseMax

	// the score is always relative to the side to move
	if p.SideToMove() == Black {
		finalScore = -finalScore
	}
	return Value(finalScore)
}

// mobility sums the mobility bonus of all knights, bishops, rooks and
// queens of the given color. The mobility of a piece is the number of
// attacked squares not occupied by own pieces. Bishop, rook and queen
// attacks use the magic lookups against the union occupancy.
func (e *Evaluator) mobility(p *position.Position, c Color) Score {
	var s Score
	occAll := p.OccupiedAll()
	ownOcc := p.OccupiedBb(c)

	bb := p.PiecesBb(MakePiece(c, Knight))
	for bb != BbZero {
		moves := (GetAttacksBb(Knight, bb.PopLsb(), occAll) &^ ownOcc).PopCount()
		s.Mid += knightMobility[moves].Mid
		s.End += knightMobility[moves].End
	}
	bb = p.PiecesBb(MakePiece(c, Bishop))
	for bb != BbZero {
		moves := (GetAttacksBb(Bishop, bb.PopLsb(), occAll) &^ ownOcc).PopCount()
		s.Mid += bishopMobility[moves].Mid
		s.End += bishopMobility[moves].End
	}
	bb = p.PiecesBb(MakePiece(c, Rook))
	for bb != BbZero {
		moves := (GetAttacksBb(Rook, bb.PopLsb(), occAll) &^ ownOcc).PopCount()
		s.Mid += rookMobility[moves].Mid
		s.End += rookMobility[moves].End
	}
	bb = p.PiecesBb(MakePiece(c, Queen))
	for bb != BbZero {
		moves := (GetAttacksBb(Queen, bb.PopLsb(), occAll) &^ ownOcc).PopCount()
		s.Mid += queenMobility[moves].Mid
		s.End += queenMobility[moves].End
	}
	return s
}

// pawnStructure scores the pawns of the given color:
//  - passed pawns: no opposing pawn on the same or adjacent files
//    ahead of the pawn
//  - doubled pawns: another friendly pawn on the same file
//  - isolated pawns: no friendly pawn on an adjacent file
func (e *Evaluator) pawnStructure(p *position.Position, c Color) Score {
	var s Score
	ownPawns := p.PiecesBb(MakePiece(c, Pawn))
	oppPawns := p.PiecesBb(MakePiece(c.Flip(), Pawn))

	bb := ownPawns
	for bb != BbZero {
		sq := bb.PopLsb()
		f := sq.FileOf()

		if passedPawnMasks[c][sq]&oppPawns == BbZero {
			s.Mid += config.Settings.Eval.PawnPassedMidBonus
			s.End += config.Settings.Eval.PawnPassedEndBonus
		}
		if (ownPawns & fileMasks[f]).PopCount() > 1 {
			s.Mid -= config.Settings.Eval.PawnDoubledMalus
			s.End -= config.Settings.Eval.PawnDoubledMalus
		}
		if adjacentFileMasks[f]&ownPawns == BbZero {
			s.Mid -= config.Settings.Eval.PawnIsolatedMalus
			s.End -= config.Settings.Eval.PawnIsolatedMalus
		}
	}
	return s
}

// initEvaluationMasks pre computes the file, adjacent file and passed
// pawn masks. The passed pawn mask of a square covers the same and the
// adjacent files on all ranks ahead of the square.
func initEvaluationMasks() {
	for f := 0; f < 8; f++ {
		fileMasks[f] = FileA_Bb << f
		adjacentFileMasks[f] = BbZero
		if f > 0 {
			adjacentFileMasks[f] |= FileA_Bb << (f - 1)
		}
		if f < 7 {
			adjacentFileMasks[f] |= FileA_Bb << (f + 1)
		}
	}

	for sq := SqA1; sq <= SqH8; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RankOf())
		span := fileMasks[f] | adjacentFileMasks[f]

		aheadWhite := BbZero
		for i := r + 1; i < 8; i++ {
			aheadWhite |= Rank1_Bb << (8 * i)
		}
		aheadBlack := BbZero
		for i := r - 1; i >= 0; i-- {
			aheadBlack |= Rank1_Bb << (8 * i)
		}

		passedPawnMasks[White][sq] = span & aheadWhite
		passedPawnMasks[Black][sq] = span & aheadBlack
	}
}
