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

package config

// evalConfiguration is a data structure to hold the configuration of the
// static evaluation.
type evalConfiguration struct {
	UseMobility bool

	UsePawnEval        bool
	PawnPassedMidBonus int16
	PawnPassedEndBonus int16
	PawnDoubledMalus   int16
	PawnIsolatedMalus  int16
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.UseMobility = true

	Settings.Eval.UsePawnEval = true
	Settings.Eval.PawnPassedMidBonus = 10
	Settings.Eval.PawnPassedEndBonus = 20
	Settings.Eval.PawnDoubledMalus = 10
	Settings.Eval.PawnIsolatedMalus = 10
}
