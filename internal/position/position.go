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

// Package position represents the data structures and functions for a chess
// board and its position. It uses twelve piece bitboards, three occupancy
// bitboards, an inline stack for undoing moves and Zobrist keys for
// transposition tables.
//
// Create a new instance with NewPosition() (start position) or
// NewPositionFen(fen).
package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	myLogging "github.com/gorgonchess/GorgonGo/internal/logging"
	. "github.com/gorgonchess/GorgonGo/internal/types"
	"github.com/gorgonchess/GorgonGo/internal/util"
)

var log *logging.Logger

var initialized = false

// initialize package
func init() {
	if !initialized {
		initZobrist()
		initialized = true
	}
}

// StartFen is a string with the fen position for a standard chess game
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Key is used for zobrist keys in chess positions.
// Zobrist keys need all 64 bits for distribution
type Key uint64

// maxHistory bounds the inline undo stack. The search never goes
// deeper than MaxDepth so this can never overflow from legal use.
const maxHistory int = 256

// Position represents the chess board and its state. All mutating
// operations (DoMove/UndoMove/DoNullMove/UndoNullMove) keep the piece
// bitboards, the occupancy bitboards and the Zobrist key coherent
// incrementally.
//
// Needs to be created with NewPosition() or NewPositionFen(fen)
type Position struct {

	// The zobrist key to use as a hash key in transposition tables.
	// The zobrist key is updated incrementally every time one of the
	// state variables changes.
	zobristKey Key

	// bitboards for each piece identity (WhitePawn..BlackKing)
	piecesBb [PieceLength]Bitboard

	// occupancy bitboards for White, Black and Both
	occupancies [OccLength]Bitboard

	sideToMove      Color
	enPassantSquare Square
	castlingRights  CastlingRights

	// number of half moves played from the root of the current
	// make/unmake chain - also the top of the history stack
	ply int

	// inline history stack for undoing moves - deliberately not
	// allocated to keep DoMove/UndoMove free of allocations
	history [maxHistory]undoState
}

type undoState struct {
	zobristKey      Key
	castlingRights  CastlingRights
	enpassantSquare Square
	capturedPiece   Piece
}

// This table is used to efficiently update the castling rights during
// DoMove. The rights are AND-ed with the mask of the from and the to
// square which handles king moves, rook moves, rook captures and
// castling itself in one operation.
var castlingRightsUpdate = [SqLength]CastlingRights{
	13, 15, 15, 15, 12, 15, 15, 14,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	7, 15, 15, 15, 3, 15, 15, 11,
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// NewPosition creates a new position with the standard chess
// start position.
func NewPosition() *Position {
	p, _ := NewPositionFen(StartFen)
	return p
}

// NewPositionFen creates a new position with the given fen string
// as board position.
// It returns nil and an error if the fen was invalid.
func NewPositionFen(fen string) (*Position, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	p := &Position{}
	if e := p.setupBoard(fen); e != nil {
		log.Errorf("fen for position setup not valid and position can't be created: %s", e)
		return nil, e
	}
	return p, nil
}

// DoMove commits a move to the board. Due to performance there is no check
// if this move is legal on the current position. Legality needs to be
// checked after the move with IsAttacked on the mover's king square as the
// move generator produces pseudo legal moves.
func (p *Position) DoMove(m Move) {
	if p.ply >= maxHistory {
		panic("Position DoMove: history overflow")
	}

	us := p.sideToMove
	them := us.Flip()

	// save state of board for undo
	p.history[p.ply].zobristKey = p.zobristKey
	p.history[p.ply].castlingRights = p.castlingRights
	p.history[p.ply].enpassantSquare = p.enPassantSquare
	p.history[p.ply].capturedPiece = PieceNone

	// captures are handled before moving the piece to avoid
	// overwriting the target square
	if m.IsCapture {
		if m.IsEnPassant {
			// the captured pawn is one rank behind the target square
			capSq := m.To.To(them.MoveDirection())
			capPc := MakePiece(them, Pawn)
			p.removePiece(capPc, capSq)
			p.history[p.ply].capturedPiece = capPc
		} else {
			// find the opposing piece on the target square and remove it
			for pc := MakePiece(them, Pawn); pc <= MakePiece(them, King); pc++ {
				if p.piecesBb[pc].Has(m.To) {
					p.removePiece(pc, m.To)
					p.history[p.ply].capturedPiece = pc
					break
				}
			}
		}
	}

	// move the piece
	p.movePiece(m.Piece, m.From, m.To)

	// update castling rights through the square indexed mask table
	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // out
	p.castlingRights &= castlingRightsUpdate[m.From]
	p.castlingRights &= castlingRightsUpdate[m.To]
	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights] // in

	// clear en passant and set it again on a pawn double push
	p.clearEnPassant()
	if m.Piece.TypeOf() == Pawn && util.Abs(int(m.To)-int(m.From)) == 16 {
		p.enPassantSquare = Square((int(m.From) + int(m.To)) / 2)
		p.zobristKey ^= zobristBase.enPassant[p.enPassantSquare] // in
	}

	// promotions replace the pawn on the target square
	if m.Promotion != PieceNone {
		p.removePiece(m.Piece, m.To)
		p.putPiece(m.Promotion, m.To)
	}

	// castling also moves the rook
	if m.IsCastle {
		switch m.To {
		case SqG1:
			p.movePiece(WhiteRook, SqH1, SqF1)
		case SqC1:
			p.movePiece(WhiteRook, SqA1, SqD1)
		case SqG8:
			p.movePiece(BlackRook, SqH8, SqF8)
		case SqC8:
			p.movePiece(BlackRook, SqA8, SqD8)
		default:
			panic("Invalid castle move!")
		}
	}

	p.sideToMove = them
	p.zobristKey ^= zobristBase.sideToMove
	p.ply++
}

// UndoMove resets the position to the state before the given move
// was made. The move must be the last move made with DoMove. After
// DoMove and UndoMove every field of the position is bit-identical
// to the pre-move state.
func (p *Position) UndoMove(m Move) {
	p.ply--
	undo := &p.history[p.ply]

	p.sideToMove = p.sideToMove.Flip()
	us := p.sideToMove
	them := us.Flip()

	// undo the rook move of a castling
	if m.IsCastle {
		switch m.To {
		case SqG1:
			p.movePiece(WhiteRook, SqF1, SqH1)
		case SqC1:
			p.movePiece(WhiteRook, SqD1, SqA1)
		case SqG8:
			p.movePiece(BlackRook, SqF8, SqH8)
		case SqC8:
			p.movePiece(BlackRook, SqD8, SqA8)
		default:
			panic("Invalid castle move!")
		}
	}

	// move the piece back - for promotions the promoted piece is
	// taken off the board and the pawn is restored
	if m.Promotion != PieceNone {
		p.removePiece(m.Promotion, m.To)
		p.putPiece(m.Piece, m.From)
	} else {
		p.movePiece(m.Piece, m.To, m.From)
	}

	// re-add any captured piece on its original square
	if undo.capturedPiece != PieceNone {
		capSq := m.To
		if m.IsEnPassant {
			capSq = m.To.To(them.MoveDirection())
		}
		p.putPiece(undo.capturedPiece, capSq)
	}

	// restore the remaining state - the zobrist key is restored from
	// the history wholesale which also undoes castling/en passant keys
	p.castlingRights = undo.castlingRights
	p.enPassantSquare = undo.enpassantSquare
	p.zobristKey = undo.zobristKey
}

// DoNullMove is used in null move pruning. The position is unchanged
// except that the side to move flips and the en passant square is
// cleared. The state before the null move is stored in the history.
func (p *Position) DoNullMove() {
	if p.ply >= maxHistory {
		panic("Position DoNullMove: history overflow")
	}
	p.history[p.ply].zobristKey = p.zobristKey
	p.history[p.ply].castlingRights = p.castlingRights
	p.history[p.ply].enpassantSquare = p.enPassantSquare
	p.history[p.ply].capturedPiece = PieceNone

	p.clearEnPassant()
	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey ^= zobristBase.sideToMove
	p.ply++
}

// UndoNullMove restores the state of the position to before the
// DoNullMove() call.
func (p *Position) UndoNullMove() {
	p.ply--
	undo := &p.history[p.ply]
	p.sideToMove = p.sideToMove.Flip()
	p.castlingRights = undo.castlingRights
	p.enPassantSquare = undo.enpassantSquare
	p.zobristKey = undo.zobristKey
}

// IsAttacked checks if the given square is attacked by a piece
// of the given color.
// To test if a square is attacked we do a reverse attack from the
// target square and check if we hit a piece of the same type:
// the pawn capture relation is symmetric so the pawn attack mask of
// the opposite color (not the given color) from the target square is
// intersected with the pawns of the given color.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	occAll := p.occupancies[Both]

	// non sliding
	if GetPawnAttacks(by.Flip(), sq)&p.piecesBb[MakePiece(by, Pawn)] != 0 ||
		GetAttacksBb(Knight, sq, occAll)&p.piecesBb[MakePiece(by, Knight)] != 0 ||
		GetAttacksBb(King, sq, occAll)&p.piecesBb[MakePiece(by, King)] != 0 {
		return true
	}

	// sliding - a queen attacks like bishop and rook combined
	if GetAttacksBb(Bishop, sq, occAll)&(p.piecesBb[MakePiece(by, Bishop)]|p.piecesBb[MakePiece(by, Queen)]) != 0 ||
		GetAttacksBb(Rook, sq, occAll)&(p.piecesBb[MakePiece(by, Rook)]|p.piecesBb[MakePiece(by, Queen)]) != 0 {
		return true
	}

	return false
}

// HasCheck returns true if the side to move's king is attacked
func (p *Position) HasCheck() bool {
	return p.IsAttacked(p.KingSquare(p.sideToMove), p.sideToMove.Flip())
}

// KingSquare returns the current square of the king of color c
func (p *Position) KingSquare(c Color) Square {
	return p.piecesBb[MakePiece(c, King)].Lsb()
}

// GetPiece returns the piece identity on the given square or
// PieceNone for an empty square
func (p *Position) GetPiece(sq Square) Piece {
	for pc := WhitePawn; pc < PieceNone; pc++ {
		if p.piecesBb[pc].Has(sq) {
			return pc
		}
	}
	return PieceNone
}

// GenerateHashKey computes the zobrist key of the position from
// scratch. The incrementally maintained key must always be equal to
// this - used by tests and debug assertions, never in search.
func (p *Position) GenerateHashKey() Key {
	var key Key
	for pc := WhitePawn; pc < PieceNone; pc++ {
		bb := p.piecesBb[pc]
		for bb != BbZero {
			key ^= zobristBase.pieces[pc][bb.PopLsb()]
		}
	}
	if p.enPassantSquare != SqNone {
		key ^= zobristBase.enPassant[p.enPassantSquare]
	}
	key ^= zobristBase.castlingRights[p.castlingRights]
	if p.sideToMove == Black {
		key ^= zobristBase.sideToMove
	}
	return key
}

// String returns a string representing the position instance.
// This includes the fen and a board matrix.
func (p *Position) String() string {
	var os strings.Builder
	os.WriteString(p.StringFen())
	os.WriteString("\n")
	os.WriteString(p.StringBoard())
	return os.String()
}

// StringFen returns a string with the FEN of the current position.
// The half move clock and full move number are not tracked by the
// position and emitted as "0 1".
func (p *Position) StringFen() string {
	var fen strings.Builder
	for r := Rank1; r <= Rank8; r++ {
		emptySquares := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.GetPiece(SquareOf(f, Rank8-r))
			if pc == PieceNone {
				emptySquares++
			} else {
				if emptySquares > 0 {
					fen.WriteString(strconv.Itoa(emptySquares))
					emptySquares = 0
				}
				fen.WriteString(pc.String())
			}
		}
		if emptySquares > 0 {
			fen.WriteString(strconv.Itoa(emptySquares))
		}
		if r < Rank8 {
			fen.WriteString("/")
		}
	}
	fen.WriteString(" ")
	fen.WriteString(p.sideToMove.String())
	fen.WriteString(" ")
	fen.WriteString(p.castlingRights.String())
	fen.WriteString(" ")
	fen.WriteString(p.enPassantSquare.String())
	fen.WriteString(" 0 1")
	return fen.String()
}

// StringBoard returns a visual matrix of the board and pieces
func (p *Position) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			os.WriteString("| ")
			pc := p.GetPiece(SquareOf(f, Rank8-r))
			if pc == PieceNone {
				os.WriteString(" ")
			} else {
				os.WriteString(pc.String())
			}
			os.WriteString(" ")
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// //////////////////////////////////////////////////////
// // Getter functions
// //////////////////////////////////////////////////////

// ZobristKey returns the current zobrist key for this position
func (p *Position) ZobristKey() Key {
	return p.zobristKey
}

// SideToMove returns the color of the next player
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// PiecesBb returns the bitboard for the given piece identity
func (p *Position) PiecesBb(pc Piece) Bitboard {
	return p.piecesBb[pc]
}

// OccupiedAll returns a bitboard of all pieces currently on the board
func (p *Position) OccupiedAll() Bitboard {
	return p.occupancies[Both]
}

// OccupiedBb returns a bitboard of all pieces of color c
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.occupancies[c]
}

// GetEnPassantSquare returns the en passant square or SqNone if not set
func (p *Position) GetEnPassantSquare() Square {
	return p.enPassantSquare
}

// CastlingRights returns the castling rights of the position
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// Ply returns the number of half moves played from the root of the
// current make/unmake chain
func (p *Position) Ply() int {
	return p.ply
}

// GamePhase returns the current game phase value of the position.
// Each non-pawn, non-king piece contributes its phase weight
// (knight/bishop 1, rook 2, queen 4); the value is capped at
// GamePhaseMax which equals the start position.
func (p *Position) GamePhase() int {
	phase := 0
	for pc := WhitePawn; pc < PieceNone; pc++ {
		phase += p.piecesBb[pc].PopCount() * pc.TypeOf().GamePhaseValue()
	}
	if phase > GamePhaseMax {
		phase = GamePhaseMax
	}
	return phase
}

// //////////////////////////////////////////////////////////
// Private
// //////////////////////////////////////////////////////////

// movePiece toggles both squares on the piece bitboard, on the side's
// occupancy and on the union occupancy and updates the zobrist key
func (p *Position) movePiece(pc Piece, from Square, to Square) {
	fromToBb := from.Bb() | to.Bb()
	side := pc.ColorOf()
	p.piecesBb[pc] ^= fromToBb
	p.occupancies[side] ^= fromToBb
	p.occupancies[Both] ^= fromToBb
	p.zobristKey ^= zobristBase.pieces[pc][from]
	p.zobristKey ^= zobristBase.pieces[pc][to]
}

func (p *Position) putPiece(pc Piece, sq Square) {
	sqBb := sq.Bb()
	side := pc.ColorOf()
	p.piecesBb[pc] |= sqBb
	p.occupancies[side] |= sqBb
	p.occupancies[Both] |= sqBb
	p.zobristKey ^= zobristBase.pieces[pc][sq]
}

func (p *Position) removePiece(pc Piece, sq Square) {
	sqBb := sq.Bb()
	side := pc.ColorOf()
	p.piecesBb[pc] &^= sqBb
	p.occupancies[side] &^= sqBb
	p.occupancies[Both] &^= sqBb
	p.zobristKey ^= zobristBase.pieces[pc][sq]
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobristBase.enPassant[p.enPassantSquare] // out
		p.enPassantSquare = SqNone
	}
}

// regex for first part of fen (position of pieces)
var regexFenPos = regexp.MustCompile("^[0-8pPnNbBrRqQkK/]+$")

// regex for next player color in fen
var regexWorB = regexp.MustCompile("^[w|b]$")

// regex for castling rights in fen
var regexCastlingRights = regexp.MustCompile("^(K?Q?k?q?|-)$")

// regex for en passant square in fen
var regexEnPassant = regexp.MustCompile("^([a-h][36]|-)$")

// setupBoard sets up a board based on a fen. This is basically
// the only way to get a valid Position instance. Only the first
// four fen fields are consumed; half move clock and full move
// number are ignored. Ply is always zeroed.
func (p *Position) setupBoard(fen string) error {

	fen = strings.TrimSpace(fen)
	fenParts := strings.Split(fen, " ")

	if len(fenParts) < 4 {
		return errors.New("fen must have at least 4 fields")
	}

	// make sure only valid chars are used
	if !regexFenPos.MatchString(fenParts[0]) {
		return errors.New("fen position contains invalid characters")
	}

	p.enPassantSquare = SqNone
	p.ply = 0

	// fen string starts at a8 and runs to h1
	// with / jumping to file A of the next lower rank
	currentSquare := SqA8

	for _, c := range fenParts[0] {
		if number, e := strconv.Atoi(string(c)); e == nil { // is number
			currentSquare = Square(int(currentSquare) + number)
		} else if string(c) == "/" { // rank separator
			currentSquare -= 16
		} else { // find piece type
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return errors.New(fmt.Sprintf("invalid piece character: %s", string(c)))
			}
			p.putPiece(piece, currentSquare)
			currentSquare++
		}
	}
	if currentSquare != SqA2 { // after h1++ we reach a2 - a2 needs to be the last current square
		return errors.New("not reached last square (h1) after reading fen")
	}

	// next player
	if !regexWorB.MatchString(fenParts[1]) {
		return errors.New("fen next player contains invalid characters")
	}
	switch fenParts[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	}

	// castling rights
	if !regexCastlingRights.MatchString(fenParts[2]) {
		return errors.New("fen castling rights contains invalid characters")
	}
	if fenParts[2] != "-" {
		for _, c := range fenParts[2] {
			switch string(c) {
			case "K":
				p.castlingRights.Add(CastlingWhiteOO)
			case "Q":
				p.castlingRights.Add(CastlingWhiteOOO)
			case "k":
				p.castlingRights.Add(CastlingBlackOO)
			case "q":
				p.castlingRights.Add(CastlingBlackOOO)
			}
		}
	}

	// en passant
	if !regexEnPassant.MatchString(fenParts[3]) {
		return errors.New("fen en passant square contains invalid characters")
	}
	if fenParts[3] != "-" {
		p.enPassantSquare = MakeSquare(fenParts[3])
	}

	// fields 5 and 6 (half move clock, full move number) are ignored

	// with all fields read the hash key is computed from scratch -
	// from here on it is only updated incrementally
	p.zobristKey = p.GenerateHashKey()

	return nil
}
