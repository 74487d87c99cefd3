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

// GorgonGo is a bitboard chess engine: given a legal position it
// produces the move it believes is best. This command line entry point
// is a thin shell over the engine core - it parses the flags, sets up
// the configuration and runs either a fixed depth search or a perft.
package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gorgonchess/GorgonGo/internal/config"
	"github.com/gorgonchess/GorgonGo/internal/logging"
	"github.com/gorgonchess/GorgonGo/internal/movegen"
	"github.com/gorgonchess/GorgonGo/internal/position"
	"github.com/gorgonchess/GorgonGo/internal/search"
	"github.com/gorgonchess/GorgonGo/internal/version"
)

var out = message.NewPrinter(language.English)

func main() {
	// command line args
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFen, "fen of the position to search or to run perft on")
	depth := flag.Int("depth", 6, "search depth in plies")
	perft := flag.Int("perft", 0, "runs perft with the given depth on the position given with -fen")
	divide := flag.Bool("divide", false, "prints per root move node counts when running perft")
	prof := flag.Bool("profile", false, "writes a cpu profile to the working directory")
	flag.Parse()

	// print version info and exit
	if *versionInfo {
		printVersionInfo()
		return
	}

	// set config file
	// this needs to be set before config.Setup() is called, otherwise the default will be used
	config.ConfFile = *configFile

	// read config file
	config.Setup()

	// set log level from cmd line options overwriting config file or defaults
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}

	// resetting the log level of the standard log - required as most packages
	// include the standard logger as a global var and therefore even before
	// main() is called. These loggers start with the default log level and
	// must be reset to the actual level required.
	logging.GetLog()

	if *prof {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	// perft mode
	if *perft > 0 {
		p := movegen.NewPerft()
		if *divide {
			p.Divide(*fen, *perft)
		} else {
			p.StartPerft(*fen, *perft)
		}
		return
	}

	// search mode
	p, err := position.NewPositionFen(*fen)
	if err != nil {
		out.Printf("Invalid fen: %s\n", *fen)
		os.Exit(1)
	}
	s := search.NewSearch()
	s.SearchPosition(p, *depth)
}

func printVersionInfo() {
	out.Printf("GorgonGo %s\n", version.Version)
	out.Printf("Environment:\n")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
}
