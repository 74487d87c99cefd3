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

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	// defaults are set by the package init functions
	assert.True(t, Settings.Search.UseQuiescence)
	assert.True(t, Settings.Search.UseTT)
	assert.Equal(t, 2, Settings.Search.NmpReduction)
	assert.Equal(t, 25, Settings.Search.AspirationDelta)
	assert.Equal(t, 4, Settings.Search.LmrMovesSearched)
	assert.True(t, Settings.Eval.UsePawnEval)
}

func TestSetup(t *testing.T) {
	Setup()
	// Setup must be idempotent
	Setup()
	assert.True(t, Settings.Search.UseTT)
}

func TestSettingsString(t *testing.T) {
	s := Settings.String()
	assert.True(t, strings.Contains(s, "UseNullMove"))
	assert.True(t, strings.Contains(s, "PawnPassedMidBonus"))
}

func TestLogLevels(t *testing.T) {
	assert.Equal(t, 5, LogLevels["debug"])
	assert.Equal(t, 0, LogLevels["critical"])
	_, found := LogLevels["nonsense"]
	assert.False(t, found)
}
