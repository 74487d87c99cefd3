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

// Package movegen contains the functionality to create moves on a chess
// position. It generates pseudo legal moves - the king safety of the
// mover is checked by the caller with make / is-attacked / unmake as
// pins and discovered checks are rare enough that one real make/unmake
// per move is faster than computing pin rays explicitly.
package movegen

import (
	"github.com/op/go-logging"

	myLogging "github.com/gorgonchess/GorgonGo/internal/logging"
	"github.com/gorgonchess/GorgonGo/internal/position"
	. "github.com/gorgonchess/GorgonGo/internal/types"
)

var log *logging.Logger

// Movegen is the data structure for move generation.
// Create a new instance via movegen.NewMoveGen()
type Movegen struct{}

// NewMoveGen creates a new instance of a move generator
func NewMoveGen() *Movegen {
	if log == nil {
		log = myLogging.GetLog()
	}
	return &Movegen{}
}

// GeneratePseudoLegalMoves generates all pseudo legal moves for the next
// player into the given move list. Does not check if the king is left in
// check. Castling moves do verify that the king is not in check and does
// not pass an attacked square as this is part of the castling rules and
// not of king safety in general.
func (mg *Movegen) GeneratePseudoLegalMoves(p *position.Position, ml *MoveList) {
	ml.Clear()
	mg.generatePawnMoves(p, ml)
	mg.generatePieceMoves(p, ml)
	mg.generateKingMoves(p, ml)
}

// GenerateLegalMoves generates all legal moves for the next player into
// the given move list. Uses GeneratePseudoLegalMoves and filters out
// moves which leave the own king in check.
// This is convenient for perft, SAN and the root of the search but too
// slow for the inner search nodes which filter inline.
func (mg *Movegen) GenerateLegalMoves(p *position.Position, ml *MoveList) {
	var pseudo MoveList
	mg.GeneratePseudoLegalMoves(p, &pseudo)
	ml.Clear()
	us := p.SideToMove()
	for i := 0; i < pseudo.Len(); i++ {
		m := *pseudo.At(i)
		p.DoMove(m)
		if !p.IsAttacked(p.KingSquare(us), us.Flip()) {
			ml.PushBack(m)
		}
		p.UndoMove(m)
	}
}

// MVV-LVA (Most Valuable Victim - Least Valuable Attacker) tables.
// Bigger victims and smaller attackers score higher.
var (
	mvvVictimScore   = [PtLength]Value{100, 200, 300, 400, 500, 600}
	lvaAttackerScore = [PtLength]Value{1, 2, 3, 4, 5, 6}
)

// ScoreMoves assigns each capture a MVV-LVA based ordering score of
//  10000 + victim score - attacker score
// Non captures score 0 - the slots are reserved for killer/history
// heuristics. The scores are only meaningful for the following Sort.
func (mg *Movegen) ScoreMoves(p *position.Position, ml *MoveList) {
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		m.Score = 0
		if m.IsCapture {
			victim := Pawn // en passant captures a pawn
			if !m.IsEnPassant {
				victim = p.GetPiece(m.To).TypeOf()
			}
			m.Score = 10_000 + mvvVictimScore[victim] - lvaAttackerScore[m.Piece.TypeOf()]
		}
	}
}

// GenerateMoves generates all pseudo legal moves for the next player,
// scores them with MVV-LVA and sorts them in descending order.
func (mg *Movegen) GenerateMoves(p *position.Position, ml *MoveList) {
	mg.GeneratePseudoLegalMoves(p, ml)
	mg.ScoreMoves(p, ml)
	ml.Sort()
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

// promotion piece types in generation order - queen first as it is
// almost always the best promotion
var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// generatePawnMoves generates all pawn moves for the next player:
// quiet single and double pushes, promotion pushes, captures,
// promotion captures and en passant captures.
func (mg *Movegen) generatePawnMoves(p *position.Position, ml *MoveList) {
	us := p.SideToMove()
	them := us.Flip()
	up := us.MoveDirection()
	piece := MakePiece(us, Pawn)
	myPawns := p.PiecesBb(piece)
	oppPieces := p.OccupiedBb(them)
	occAll := p.OccupiedAll()

	// The pawn bitboard is shifted one rank forward and masked with the
	// unoccupied squares. The from square is recovered by stepping back.
	singlePushes := ShiftBitboard(myPawns, up) &^ occAll

	// promotion pushes - each expands into four moves
	promoPushes := singlePushes & us.PromotionRankBb()
	for promoPushes != BbZero {
		to := promoPushes.PopLsb()
		from := to.To(-up)
		for _, pt := range promotionTypes {
			ml.PushBack(Move{From: from, To: to, Piece: piece, Promotion: MakePiece(us, pt)})
		}
	}

	// quiet single pushes
	quietPushes := singlePushes &^ us.PromotionRankBb()
	for quietPushes != BbZero {
		to := quietPushes.PopLsb()
		ml.PushBack(Move{From: to.To(-up), To: to, Piece: piece, Promotion: PieceNone})
	}

	// double pushes - only from the pawn home rank with both the square
	// ahead and two ahead empty
	doublePushes := ShiftBitboard(ShiftBitboard(myPawns&us.PawnHomeRankBb(), up)&^occAll, up) &^ occAll
	for doublePushes != BbZero {
		to := doublePushes.PopLsb()
		ml.PushBack(Move{From: to.To(-up).To(-up), To: to, Piece: piece, Promotion: PieceNone})
	}

	// captures - for each own pawn the pre computed attack squares
	// intersected with the opponent's occupancy
	pawns := myPawns
	for pawns != BbZero {
		from := pawns.PopLsb()
		attacks := GetPawnAttacks(us, from) & oppPieces
		for attacks != BbZero {
			to := attacks.PopLsb()
			if to.Bb()&us.PromotionRankBb() != BbZero {
				for _, pt := range promotionTypes {
					ml.PushBack(Move{From: from, To: to, Piece: piece,
						Promotion: MakePiece(us, pt), IsCapture: true})
				}
			} else {
				ml.PushBack(Move{From: from, To: to, Piece: piece,
					Promotion: PieceNone, IsCapture: true})
			}
		}
	}

	// en passant - any own pawn whose attack set includes the en
	// passant square. The attacker set is found through the inverse
	// pawn attack from the target square.
	epSq := p.GetEnPassantSquare()
	if epSq != SqNone {
		attackers := GetPawnAttacks(them, epSq) & myPawns
		for attackers != BbZero {
			from := attackers.PopLsb()
			ml.PushBack(Move{From: from, To: epSq, Piece: piece,
				Promotion: PieceNone, IsCapture: true, IsEnPassant: true})
		}
	}
}

// generatePieceMoves generates all knight, bishop, rook and queen moves
// using the pre computed attack tables and magic bitboard lookups.
func (mg *Movegen) generatePieceMoves(p *position.Position, ml *MoveList) {
	us := p.SideToMove()
	occAll := p.OccupiedAll()
	oppPieces := p.OccupiedBb(us.Flip())

	for pt := Knight; pt <= Queen; pt++ {
		piece := MakePiece(us, pt)
		pieces := p.PiecesBb(piece)
		for pieces != BbZero {
			from := pieces.PopLsb()
			moves := GetAttacksBb(pt, from, occAll) &^ p.OccupiedBb(us)
			for moves != BbZero {
				to := moves.PopLsb()
				ml.PushBack(Move{From: from, To: to, Piece: piece,
					Promotion: PieceNone, IsCapture: oppPieces.Has(to)})
			}
		}
	}
}

// generateKingMoves generates all king moves including castling.
// Castling is generated only when the king is not in check, the
// corresponding right is set, the squares between king and rook are
// empty and the king's path (start, transit, destination) is not
// attacked by the opponent.
func (mg *Movegen) generateKingMoves(p *position.Position, ml *MoveList) {
	us := p.SideToMove()
	them := us.Flip()
	piece := MakePiece(us, King)
	oppPieces := p.OccupiedBb(them)
	occAll := p.OccupiedAll()

	from := p.KingSquare(us)
	moves := GetAttacksBb(King, from, occAll) &^ p.OccupiedBb(us)
	for moves != BbZero {
		to := moves.PopLsb()
		ml.PushBack(Move{From: from, To: to, Piece: piece,
			Promotion: PieceNone, IsCapture: oppPieces.Has(to)})
	}

	// castling
	cr := p.CastlingRights()
	if cr == CastlingNone || p.IsAttacked(from, them) {
		return
	}
	if us == White {
		if cr.Has(CastlingWhiteOO) &&
			occAll&(SqF1.Bb()|SqG1.Bb()) == BbZero &&
			!p.IsAttacked(SqF1, them) && !p.IsAttacked(SqG1, them) {
			ml.PushBack(Move{From: SqE1, To: SqG1, Piece: piece, Promotion: PieceNone, IsCastle: true})
		}
		if cr.Has(CastlingWhiteOOO) &&
			occAll&(SqB1.Bb()|SqC1.Bb()|SqD1.Bb()) == BbZero &&
			!p.IsAttacked(SqD1, them) && !p.IsAttacked(SqC1, them) {
			ml.PushBack(Move{From: SqE1, To: SqC1, Piece: piece, Promotion: PieceNone, IsCastle: true})
		}
	} else {
		if cr.Has(CastlingBlackOO) &&
			occAll&(SqF8.Bb()|SqG8.Bb()) == BbZero &&
			!p.IsAttacked(SqF8, them) && !p.IsAttacked(SqG8, them) {
			ml.PushBack(Move{From: SqE8, To: SqG8, Piece: piece, Promotion: PieceNone, IsCastle: true})
		}
		if cr.Has(CastlingBlackOOO) &&
			occAll&(SqB8.Bb()|SqC8.Bb()|SqD8.Bb()) == BbZero &&
			!p.IsAttacked(SqD8, them) && !p.IsAttacked(SqC8, them) {
			ml.PushBack(Move{From: SqE8, To: SqC8, Piece: piece, Promotion: PieceNone, IsCastle: true})
		}
	}
}
