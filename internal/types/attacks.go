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

import "fmt"

// Pre computed attack bitboards for the non sliding pieces.
// Initialized once via initAttacks() before any use.
var (
	// pawn attack bitboards for each color and each square
	pawnAttacks [2][SqLength]Bitboard

	// knight attack bitboards for each square
	knightAttacks [SqLength]Bitboard

	// king attack bitboards for each square
	kingAttacks [SqLength]Bitboard
)

// GetPawnAttacks returns a Bitboard of the squares attacked by a pawn
// of the given color on the given square
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// GetAttacksBb returns a bitboard representing all the squares attacked by a
// piece of the given type pt (not pawn) placed on 'sq'.
// For sliding pieces this uses the pre-computed magic bitboard attack arrays.
// For Knight and King the occupied Bitboard is ignored (can be BbZero)
// as for these non sliders the pre-computed attacks are used.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return knightAttacks[sq]
	case Bishop:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)]
	case Rook:
		return rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Queen:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)] |
			rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case King:
		return kingAttacks[sq]
	default:
		panic(fmt.Sprintf("GetAttacksBb called with invalid piece type %d", pt))
	}
}

// ///////////////////////////////////////
// Initialization
// ///////////////////////////////////////

// Pre computes the attack bitboards of the non sliding pieces
// (pawn, knight, king) for each square. The shifts erase bits
// which would wrap around the A or H file.
func initAttacks() {
	for sq := SqA1; sq <= SqH8; sq++ {
		b := sq.Bb()

		pawnAttacks[White][sq] = ShiftBitboard(b, Northwest) | ShiftBitboard(b, Northeast)
		pawnAttacks[Black][sq] = ShiftBitboard(b, Southwest) | ShiftBitboard(b, Southeast)

		knightAttacks[sq] = (b << 17 &^ FileA_Bb) |
			(b << 15 &^ FileH_Bb) |
			(b << 10 &^ (FileA_Bb | FileB_Bb)) |
			(b << 6 &^ (FileG_Bb | FileH_Bb)) |
			(b >> 17 &^ FileH_Bb) |
			(b >> 15 &^ FileA_Bb) |
			(b >> 10 &^ (FileG_Bb | FileH_Bb)) |
			(b >> 6 &^ (FileA_Bb | FileB_Bb))

		kingAttacks[sq] = ShiftBitboard(b, North) | ShiftBitboard(b, Northeast) |
			ShiftBitboard(b, East) | ShiftBitboard(b, Southeast) |
			ShiftBitboard(b, South) | ShiftBitboard(b, Southwest) |
			ShiftBitboard(b, West) | ShiftBitboard(b, Northwest)
	}
}
