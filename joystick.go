// This file is part of Joy-Stick.
//
// Joy-Stick is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Joy-Stick is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Joy-Stick.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/XYfactor1/joy-stick/config"
	"github.com/XYfactor1/joy-stick/govern"
	"github.com/XYfactor1/joy-stick/joystick"
	"github.com/XYfactor1/joy-stick/logger"
	"github.com/XYfactor1/joy-stick/monitor"
	"github.com/XYfactor1/joy-stick/operator"
)

func main() {
	if err := launch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(1)
	}
}

// launch wires the program together and runs the reporting loop on the
// calling goroutine. Any error returned from here is from initialisation;
// once the loops have started the only way out is the operator's quit
// command or an interrupt signal.
func launch(args []string) error {
	flgs := flag.NewFlagSet("joy-stick", flag.ContinueOnError)
	confFile := flgs.String("config", "", "path to YAML configuration file")
	dumpLog := flgs.Bool("log", false, "write the complete log to stderr on exit")
	if err := flgs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	cfg, err := config.Load(*confFile)
	if err != nil {
		return err
	}

	src, err := joystick.NewSource()
	if err != nil {
		return err
	}
	defer src.Quit()

	trm, err := operator.NewTerminal(os.Stdin)
	if err != nil {
		return err
	}
	defer trm.Restore()

	// device connection notices appear as they happen
	logger.SetEcho(os.Stdout)

	runflags := govern.NewFlags()
	state := joystick.NewState(cfg.Deadzone)

	pol := joystick.NewPoller(src, state, runflags, cfg.Intervals.Poll())
	lst := operator.NewListener(trm, runflags, os.Stdout, cfg.Intervals.Command())
	mon := monitor.NewMonitor(state, runflags, os.Stdout, cfg)

	// ctrl-c is treated like the quit command
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		runflags.Quit()
	}()

	go pol.Run()
	go lst.Run()
	mon.Run()

	// the loops only end together. join both background tasks before
	// touching shared resources
	lst.Wait()
	pol.Wait()

	if *dumpLog {
		logger.Write(os.Stderr)
	}

	fmt.Println("\nprogram exited cleanly")
	return nil
}
