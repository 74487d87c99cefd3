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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gorgonchess/GorgonGo/internal/position"
)

// ///////////////////////////////////////////////////////////////
// Perft tests from https://www.chessprogramming.org/Perft_Results
// ///////////////////////////////////////////////////////////////

func TestStandardPerft(t *testing.T) {
	maxDepth := 5
	if testing.Short() {
		maxDepth = 4
	}

	var results = [6]uint64{1, 20, 400, 8_902, 197_281, 4_865_609}

	perft := NewPerft()
	for depth := 1; depth <= maxDepth; depth++ {
		perft.StartPerft(position.StartFen, depth)
		assert.Equal(t, results[depth], perft.Nodes, "depth %d", depth)
	}
}

func TestKiwipetePerft(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	maxDepth := 4
	if testing.Short() {
		maxDepth = 3
	}

	var results = [5]uint64{1, 48, 2_039, 97_862, 4_085_603}

	perft := NewPerft()
	for depth := 1; depth <= maxDepth; depth++ {
		perft.StartPerft(fen, depth)
		assert.Equal(t, results[depth], perft.Nodes, "depth %d", depth)
	}
}

func TestPosition3Perft(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	maxDepth := 5
	if testing.Short() {
		maxDepth = 4
	}

	var results = [6]uint64{1, 14, 191, 2_812, 43_238, 674_624}

	perft := NewPerft()
	for depth := 1; depth <= maxDepth; depth++ {
		perft.StartPerft(fen, depth)
		assert.Equal(t, results[depth], perft.Nodes, "depth %d", depth)
	}
}
