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

package evaluator

import (
	. "github.com/gorgonchess/GorgonGo/internal/types"
)

// The material and positional values below are a well known tuned set
// (Stockfish 11 era). Each term carries a middle game and an end game
// part which are blended by the game phase.

// materialScore indexed by piece type. The king has no material value
// but is important for the positional tables.
var materialScore = [PtLength]Score{
	{Mid: 128, End: 213},   // pawn
	{Mid: 781, End: 854},   // knight
	{Mid: 825, End: 915},   // bishop
	{Mid: 1276, End: 1380}, // rook
	{Mid: 2538, End: 2682}, // queen
	{Mid: 0, End: 0},       // king
}

// Mobility bonus tables indexed by the number of attacked squares
// which are not occupied by own pieces.
var knightMobility = [9]Score{
	{Mid: -62, End: -79}, {Mid: -53, End: -53}, {Mid: -12, End: -31}, {Mid: -4, End: -12}, {Mid: 3, End: 8}, {Mid: 12, End: 23}, {Mid: 21, End: 34}, {Mid: 28, End: 45}, {Mid: 39, End: 55},
}

var bishopMobility = [14]Score{
	{Mid: -48, End: -59}, {Mid: -20, End: -24}, {Mid: 16, End: -11}, {Mid: 40, End: 1}, {Mid: 62, End: 17}, {Mid: 78, End: 33}, {Mid: 91, End: 45},
	{Mid: 100, End: 56}, {Mid: 110, End: 66}, {Mid: 122, End: 76}, {Mid: 126, End: 84}, {Mid: 133, End: 90}, {Mid: 144, End: 96}, {Mid: 150, End: 100},
}

var rookMobility = [15]Score{
	{Mid: -58, End: -76}, {Mid: -27, End: -18}, {Mid: 1, End: 20}, {Mid: 22, End: 53}, {Mid: 41, End: 80}, {Mid: 54, End: 103}, {Mid: 63, End: 119}, {Mid: 72, End: 133},
	{Mid: 82, End: 148}, {Mid: 88, End: 159}, {Mid: 98, End: 168}, {Mid: 108, End: 177}, {Mid: 113, End: 184}, {Mid: 122, End: 191}, {Mid: 128, End: 196},
}

var queenMobility = [28]Score{
	{Mid: -39, End: -53}, {Mid: -21, End: -27}, {Mid: 3, End: -1}, {Mid: 19, End: 20}, {Mid: 40, End: 43}, {Mid: 55, End: 64}, {Mid: 68, End: 80}, {Mid: 82, End: 96},
	{Mid: 93, End: 109}, {Mid: 104, End: 121}, {Mid: 116, End: 133}, {Mid: 125, End: 145}, {Mid: 133, End: 156}, {Mid: 140, End: 166}, {Mid: 150, End: 175},
	{Mid: 159, End: 185}, {Mid: 168, End: 194}, {Mid: 176, End: 203}, {Mid: 185, End: 211}, {Mid: 194, End: 219}, {Mid: 202, End: 226}, {Mid: 210, End: 233},
	{Mid: 218, End: 240}, {Mid: 225, End: 246}, {Mid: 232, End: 252}, {Mid: 239, End: 258}, {Mid: 246, End: 264}, {Mid: 252, End: 269},
}

// Piece-square tables. The entries are from white's perspective with
// square a1 = index 0. Black uses the vertically mirrored square
// (sq ^ 56).

var pawnPst = [SqLength]Score{
	{Mid: 0, End: 0}, {Mid: 0, End: 0}, {Mid: 0, End: 0}, {Mid: 0, End: 0}, {Mid: 0, End: 0}, {Mid: 0, End: 0}, {Mid: 0, End: 0}, {Mid: 0, End: 0},
	{Mid: 9, End: 15}, {Mid: 13, End: 15}, {Mid: 13, End: 15}, {Mid: 13, End: 15}, {Mid: 13, End: 15}, {Mid: 13, End: 15}, {Mid: 13, End: 15}, {Mid: 9, End: 15},
	{Mid: -2, End: 5}, {Mid: -5, End: 5}, {Mid: -5, End: 5}, {Mid: -5, End: 5}, {Mid: -5, End: 5}, {Mid: -5, End: 5}, {Mid: -5, End: 5}, {Mid: -2, End: 5},
	{Mid: -7, End: -5}, {Mid: -9, End: -5}, {Mid: -9, End: -5}, {Mid: -9, End: -5}, {Mid: -9, End: -5}, {Mid: -9, End: -5}, {Mid: -9, End: -5}, {Mid: -7, End: -5},
	{Mid: -7, End: -10}, {Mid: -9, End: -10}, {Mid: -9, End: -10}, {Mid: -9, End: -10}, {Mid: -9, End: -10}, {Mid: -9, End: -10}, {Mid: -9, End: -10}, {Mid: -7, End: -10},
	{Mid: 13, End: -14}, {Mid: 10, End: -14}, {Mid: 10, End: -14}, {Mid: 10, End: -14}, {Mid: 10, End: -14}, {Mid: 10, End: -14}, {Mid: 10, End: -14}, {Mid: 13, End: -14},
	{Mid: 29, End: 25}, {Mid: 34, End: 25}, {Mid: 34, End: 25}, {Mid: 34, End: 25}, {Mid: 34, End: 25}, {Mid: 34, End: 25}, {Mid: 34, End: 25}, {Mid: 29, End: 25},
	{Mid: 0, End: 0}, {Mid: 0, End: 0}, {Mid: 0, End: 0}, {Mid: 0, End: 0}, {Mid: 0, End: 0}, {Mid: 0, End: 0}, {Mid: 0, End: 0}, {Mid: 0, End: 0},
}

var knightPst = [SqLength]Score{
	{Mid: -204, End: -100}, {Mid: -111, End: -80}, {Mid: -88, End: -60}, {Mid: -77, End: -50}, {Mid: -77, End: -50}, {Mid: -88, End: -60}, {Mid: -111, End: -80}, {Mid: -204, End: -100},
	{Mid: -98, End: -80}, {Mid: -48, End: -60}, {Mid: -34, End: -40}, {Mid: -15, End: -30}, {Mid: -15, End: -30}, {Mid: -34, End: -40}, {Mid: -48, End: -60}, {Mid: -98, End: -80},
	{Mid: -72, End: -60}, {Mid: -17, End: -40}, {Mid: -4, End: -20}, {Mid: 10, End: -10}, {Mid: 10, End: -10}, {Mid: -4, End: -20}, {Mid: -17, End: -40}, {Mid: -72, End: -60},
	{Mid: -55, End: -50}, {Mid: -1, End: -30}, {Mid: 22, End: -10}, {Mid: 38, End: 0}, {Mid: 38, End: 0}, {Mid: 22, End: -10}, {Mid: -1, End: -30}, {Mid: -55, End: -50},
	{Mid: -55, End: -50}, {Mid: 11, End: -30}, {Mid: 38, End: -10}, {Mid: 55, End: 0}, {Mid: 55, End: 0}, {Mid: 38, End: -10}, {Mid: 11, End: -30}, {Mid: -55, End: -50},
	{Mid: -72, End: -60}, {Mid: 1, End: -40}, {Mid: 18, End: -20}, {Mid: 30, End: -10}, {Mid: 30, End: -10}, {Mid: 18, End: -20}, {Mid: 1, End: -40}, {Mid: -72, End: -60},
	{Mid: -98, End: -80}, {Mid: -40, End: -60}, {Mid: -27, End: -40}, {Mid: -15, End: -30}, {Mid: -15, End: -30}, {Mid: -27, End: -40}, {Mid: -40, End: -60}, {Mid: -98, End: -80},
	{Mid: -204, End: -100}, {Mid: -111, End: -80}, {Mid: -88, End: -60}, {Mid: -77, End: -50}, {Mid: -77, End: -50}, {Mid: -88, End: -60}, {Mid: -111, End: -80}, {Mid: -204, End: -100},
}

var bishopPst = [SqLength]Score{
	{Mid: -52, End: -50}, {Mid: -15, End: -40}, {Mid: -20, End: -30}, {Mid: -13, End: -20}, {Mid: -13, End: -20}, {Mid: -20, End: -30}, {Mid: -15, End: -40}, {Mid: -52, End: -50},
	{Mid: -15, End: -40}, {Mid: 1, End: -20}, {Mid: 8, End: -10}, {Mid: 10, End: 0}, {Mid: 10, End: 0}, {Mid: 8, End: -10}, {Mid: 1, End: -20}, {Mid: -15, End: -40},
	{Mid: -20, End: -30}, {Mid: 8, End: -10}, {Mid: 18, End: 0}, {Mid: 24, End: 10}, {Mid: 24, End: 10}, {Mid: 18, End: 0}, {Mid: 8, End: -10}, {Mid: -20, End: -30},
	{Mid: -13, End: -20}, {Mid: 10, End: 0}, {Mid: 24, End: 10}, {Mid: 33, End: 20}, {Mid: 33, End: 20}, {Mid: 24, End: 10}, {Mid: 10, End: 0}, {Mid: -13, End: -20},
	{Mid: -13, End: -20}, {Mid: 10, End: 0}, {Mid: 24, End: 10}, {Mid: 33, End: 20}, {Mid: 33, End: 20}, {Mid: 24, End: 10}, {Mid: 10, End: 0}, {Mid: -13, End: -20},
	{Mid: -20, End: -30}, {Mid: 8, End: -10}, {Mid: 18, End: 0}, {Mid: 24, End: 10}, {Mid: 24, End: 10}, {Mid: 18, End: 0}, {Mid: 8, End: -10}, {Mid: -20, End: -30},
	{Mid: -15, End: -40}, {Mid: 1, End: -20}, {Mid: 8, End: -10}, {Mid: 10, End: 0}, {Mid: 10, End: 0}, {Mid: 8, End: -10}, {Mid: 1, End: -20}, {Mid: -15, End: -40},
	{Mid: -52, End: -50}, {Mid: -15, End: -40}, {Mid: -20, End: -30}, {Mid: -13, End: -20}, {Mid: -13, End: -20}, {Mid: -20, End: -30}, {Mid: -15, End: -40}, {Mid: -52, End: -50},
}

var rookPst = [SqLength]Score{
	{Mid: -31, End: -10}, {Mid: -21, End: 0}, {Mid: -18, End: 5}, {Mid: -12, End: 10}, {Mid: -12, End: 10}, {Mid: -18, End: 5}, {Mid: -21, End: 0}, {Mid: -31, End: -10},
	{Mid: -21, End: -10}, {Mid: -13, End: 0}, {Mid: -10, End: 5}, {Mid: -1, End: 10}, {Mid: -1, End: 10}, {Mid: -10, End: 5}, {Mid: -13, End: 0}, {Mid: -21, End: -10},
	{Mid: -21, End: -10}, {Mid: -13, End: 0}, {Mid: -10, End: 5}, {Mid: -1, End: 10}, {Mid: -1, End: 10}, {Mid: -10, End: 5}, {Mid: -13, End: 0}, {Mid: -21, End: -10},
	{Mid: -21, End: -10}, {Mid: -13, End: 0}, {Mid: -10, End: 5}, {Mid: -1, End: 10}, {Mid: -1, End: 10}, {Mid: -10, End: 5}, {Mid: -13, End: 0}, {Mid: -21, End: -10},
	{Mid: -21, End: -10}, {Mid: -13, End: 0}, {Mid: -10, End: 5}, {Mid: -1, End: 10}, {Mid: -1, End: 10}, {Mid: -10, End: 5}, {Mid: -13, End: 0}, {Mid: -21, End: -10},
	{Mid: -21, End: -10}, {Mid: -13, End: 0}, {Mid: -10, End: 5}, {Mid: -1, End: 10}, {Mid: -1, End: 10}, {Mid: -10, End: 5}, {Mid: -13, End: 0}, {Mid: -21, End: -10},
	{Mid: 1, End: -10}, {Mid: 10, End: 0}, {Mid: 13, End: 5}, {Mid: 18, End: 10}, {Mid: 18, End: 10}, {Mid: 13, End: 5}, {Mid: 10, End: 0}, {Mid: 1, End: -10},
	{Mid: -2, End: -10}, {Mid: -2, End: 0}, {Mid: -2, End: 5}, {Mid: 5, End: 10}, {Mid: 5, End: 10}, {Mid: -2, End: 5}, {Mid: -2, End: 0}, {Mid: -2, End: -10},
}

var queenPst = [SqLength]Score{
	{Mid: 3, End: -50}, {Mid: -2, End: -40}, {Mid: -1, End: -30}, {Mid: 0, End: -20}, {Mid: 0, End: -20}, {Mid: -1, End: -30}, {Mid: -2, End: -40}, {Mid: 3, End: -50},
	{Mid: -2, End: -40}, {Mid: 4, End: -20}, {Mid: 5, End: -10}, {Mid: 6, End: 0}, {Mid: 6, End: 0}, {Mid: 5, End: -10}, {Mid: 4, End: -20}, {Mid: -2, End: -40},
	{Mid: -1, End: -30}, {Mid: 5, End: -10}, {Mid: 7, End: 0}, {Mid: 8, End: 10}, {Mid: 8, End: 10}, {Mid: 7, End: 0}, {Mid: 5, End: -10}, {Mid: -1, End: -30},
	{Mid: 0, End: -20}, {Mid: 6, End: 0}, {Mid: 8, End: 10}, {Mid: 10, End: 20}, {Mid: 10, End: 20}, {Mid: 8, End: 10}, {Mid: 6, End: 0}, {Mid: 0, End: -20},
	{Mid: 0, End: -20}, {Mid: 6, End: 0}, {Mid: 8, End: 10}, {Mid: 10, End: 20}, {Mid: 10, End: 20}, {Mid: 8, End: 10}, {Mid: 6, End: 0}, {Mid: 0, End: -20},
	{Mid: -1, End: -30}, {Mid: 5, End: -10}, {Mid: 7, End: 0}, {Mid: 8, End: 10}, {Mid: 8, End: 10}, {Mid: 7, End: 0}, {Mid: 5, End: -10}, {Mid: -1, End: -30},
	{Mid: -2, End: -40}, {Mid: 4, End: -20}, {Mid: 5, End: -10}, {Mid: 6, End: 0}, {Mid: 6, End: 0}, {Mid: 5, End: -10}, {Mid: 4, End: -20}, {Mid: -2, End: -40},
	{Mid: 3, End: -50}, {Mid: -2, End: -40}, {Mid: -1, End: -30}, {Mid: 0, End: -20}, {Mid: 0, End: -20}, {Mid: -1, End: -30}, {Mid: -2, End: -40}, {Mid: 3, End: -50},
}

var kingPst = [SqLength]Score{
	{Mid: 271, End: 0}, {Mid: 327, End: 50}, {Mid: 271, End: 80}, {Mid: 198, End: 100}, {Mid: 198, End: 100}, {Mid: 271, End: 80}, {Mid: 327, End: 50}, {Mid: 271, End: 0},
	{Mid: 278, End: 50}, {Mid: 303, End: 100}, {Mid: 256, End: 130}, {Mid: 195, End: 150}, {Mid: 195, End: 150}, {Mid: 256, End: 130}, {Mid: 303, End: 100}, {Mid: 278, End: 50},
	{Mid: 195, End: 80}, {Mid: 252, End: 130}, {Mid: 169, End: 160}, {Mid: 120, End: 180}, {Mid: 120, End: 180}, {Mid: 169, End: 160}, {Mid: 252, End: 130}, {Mid: 195, End: 80},
	{Mid: 169, End: 100}, {Mid: 190, End: 150}, {Mid: 131, End: 180}, {Mid: 78, End: 200}, {Mid: 78, End: 200}, {Mid: 131, End: 180}, {Mid: 190, End: 150}, {Mid: 169, End: 100},
	{Mid: 169, End: 100}, {Mid: 190, End: 150}, {Mid: 131, End: 180}, {Mid: 78, End: 200}, {Mid: 78, End: 200}, {Mid: 131, End: 180}, {Mid: 190, End: 150}, {Mid: 169, End: 100},
	{Mid: 195, End: 80}, {Mid: 252, End: 130}, {Mid: 169, End: 160}, {Mid: 120, End: 180}, {Mid: 120, End: 180}, {Mid: 169, End: 160}, {Mid: 252, End: 130}, {Mid: 195, End: 80},
	{Mid: 278, End: 50}, {Mid: 303, End: 100}, {Mid: 256, End: 130}, {Mid: 195, End: 150}, {Mid: 195, End: 150}, {Mid: 256, End: 130}, {Mid: 303, End: 100}, {Mid: 278, End: 50},
	{Mid: 271, End: 0}, {Mid: 327, End: 50}, {Mid: 271, End: 80}, {Mid: 198, End: 100}, {Mid: 198, End: 100}, {Mid: 271, End: 80}, {Mid: 327, End: 50}, {Mid: 271, End: 0},
}

// psts indexed by piece type
var psts = [PtLength]*[SqLength]Score{
	&pawnPst, &knightPst, &bishopPst, &rookPst, &queenPst, &kingPst,
}
