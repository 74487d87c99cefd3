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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPawnAttacks(t *testing.T) {
	assert.Equal(t, SqD5.Bb()|SqF5.Bb(), GetPawnAttacks(White, SqE4))
	assert.Equal(t, SqD3.Bb()|SqF3.Bb(), GetPawnAttacks(Black, SqE4))
	// no wrap around the board edge
	assert.Equal(t, SqB3.Bb(), GetPawnAttacks(White, SqA2))
	assert.Equal(t, SqG6.Bb(), GetPawnAttacks(Black, SqH7))
}

func TestKnightAttacks(t *testing.T) {
	assert.Equal(t, 8, GetAttacksBb(Knight, SqE4, BbZero).PopCount())
	assert.Equal(t, 2, GetAttacksBb(Knight, SqA1, BbZero).PopCount())
	assert.Equal(t, 2, GetAttacksBb(Knight, SqH8, BbZero).PopCount())
	assert.Equal(t, 3, GetAttacksBb(Knight, SqB1, BbZero).PopCount())
	assert.True(t, GetAttacksBb(Knight, SqB1, BbZero).Has(SqA3))
	assert.True(t, GetAttacksBb(Knight, SqB1, BbZero).Has(SqC3))
	assert.True(t, GetAttacksBb(Knight, SqB1, BbZero).Has(SqD2))
}

func TestKingAttacks(t *testing.T) {
	assert.Equal(t, 8, GetAttacksBb(King, SqE4, BbZero).PopCount())
	assert.Equal(t, 3, GetAttacksBb(King, SqA1, BbZero).PopCount())
	assert.Equal(t, 5, GetAttacksBb(King, SqE1, BbZero).PopCount())
}

// The magic bitboard lookups must return the same attack sets as the
// slow ray walking reference for every square and a spread of blocker
// configurations.
func TestMagicAttacksAgainstReference(t *testing.T) {
	rookDirections := [4]Direction{North, East, South, West}
	bishopDirections := [4]Direction{Northeast, Southeast, Southwest, Northwest}

	rng := newPrnG(19937)
	for sq := SqA1; sq <= SqH8; sq++ {
		for i := 0; i < 100; i++ {
			occ := Bitboard(rng.rand64() & rng.rand64())
			assert.Equal(t, slidingAttack(&rookDirections, sq, occ),
				GetAttacksBb(Rook, sq, occ), "rook attacks differ on %s", sq.String())
			assert.Equal(t, slidingAttack(&bishopDirections, sq, occ),
				GetAttacksBb(Bishop, sq, occ), "bishop attacks differ on %s", sq.String())
			assert.Equal(t,
				slidingAttack(&rookDirections, sq, occ)|slidingAttack(&bishopDirections, sq, occ),
				GetAttacksBb(Queen, sq, occ), "queen attacks differ on %s", sq.String())
		}
	}
}

func TestSliderAttacksWithBlockers(t *testing.T) {
	// rook on e4 with a blocker on e6 must see e5 and e6 but not e7
	occ := SqE6.Bb()
	attacks := GetAttacksBb(Rook, SqE4, occ)
	assert.True(t, attacks.Has(SqE5))
	assert.True(t, attacks.Has(SqE6))
	assert.False(t, attacks.Has(SqE7))

	// bishop on c1 with a blocker on e3
	occ = SqE3.Bb()
	attacks = GetAttacksBb(Bishop, SqC1, occ)
	assert.True(t, attacks.Has(SqD2))
	assert.True(t, attacks.Has(SqE3))
	assert.False(t, attacks.Has(SqF4))
}
