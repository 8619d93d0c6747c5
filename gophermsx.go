// This file is part of GopherMSX.
//
// GopherMSX is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherMSX is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherMSX.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gophermsx/debugger"
	"github.com/jetsetilly/gophermsx/debugger/terminal"
	"github.com/jetsetilly/gophermsx/debugger/terminal/colorterm"
	"github.com/jetsetilly/gophermsx/debugger/terminal/plainterm"
	"github.com/jetsetilly/gophermsx/hardware/firmware"
	"github.com/jetsetilly/gophermsx/hardware/z80/decoder"
	"github.com/jetsetilly/gophermsx/logger"
	"github.com/jetsetilly/gophermsx/modalflag"
	"github.com/jetsetilly/gophermsx/performance"
	"github.com/jetsetilly/gophermsx/statsview"
	"github.com/jetsetilly/gophermsx/symbols"
	"github.com/jetsetilly/gophermsx/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("DEBUG", "RUN", "DISASM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "DEBUG":
		err = debug(md)
	case "RUN":
		err = run(md)
	case "DISASM":
		err = disasm(md)
	case "VERSION":
		v, rev, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, v)
		if !release {
			fmt.Printf("revision: %s\n", rev)
		}
	}

	if err != nil {
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}
}

// loadSession builds a debugging session from the command line arguments
// common to the debug and run modes.
func loadSession(md *modalflag.Modes, romFile string, stepThrough bool) (*debugger.Session, error) {
	if len(md.RemainingArgs()) != 1 {
		return nil, fmt.Errorf("one assembly source file required for %s mode", md)
	}

	src, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return nil, err
	}

	var img *firmware.Image
	if romFile != "" {
		img, err = firmware.LoadImage(romFile)
		if err != nil {
			return nil, err
		}
	}

	mode := firmware.BlackBox
	if stepThrough {
		mode = firmware.StepThrough
	}

	lines := strings.Split(strings.ReplaceAll(string(src), "\r\n", "\n"), "\n")
	return debugger.NewSession(lines, symbols.DataMap{}, img, mode), nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	romFile := md.AddString("firmware", "", "firmware ROM image for step-through mode")
	stepThrough := md.AddBool("stepthrough", false, "step through firmware calls instruction by instruction")
	useStats := md.AddBool("statsview", false, "run stats server")
	log := md.AddBool("log", false, "echo log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if *useStats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* statsview not available in this build")
		}
	}

	session, err := loadSession(md, *romFile, *stepThrough)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	return session.Loop(term)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	romFile := md.AddString("firmware", "", "firmware ROM image for step-through mode")
	profile := md.AddBool("profile", false, "run through cpu profiler")
	log := md.AddBool("log", false, "echo log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	session, err := loadSession(md, *romFile, false)
	if err != nil {
		return err
	}

	runner := func() error {
		n := session.Run()
		st := session.State()
		fmt.Printf("%d steps\n%s\nt-states=%d\n", n, st.String(), st.TStates)
		return nil
	}

	if *profile {
		return performance.ProfileCPU("run.cpu.profile", runner)
	}
	return runner()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one ROM image required for %s mode", md)
	}

	img, err := firmware.LoadImage(md.GetArg(0))
	if err != nil {
		return err
	}

	addr := uint16(0)
	for int(addr) < img.Size() {
		d := decoder.Decode(img.Read, addr)
		fmt.Println(d.String())
		addr += uint16(d.Size)
	}

	return nil
}
