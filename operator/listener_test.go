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

package operator_test

import (
	"strings"
	"testing"
	"time"

	"github.com/XYfactor1/joy-stick/govern"
	"github.com/XYfactor1/joy-stick/operator"
	"github.com/XYfactor1/joy-stick/test"
)

// scriptedKeys plays back a fixed sequence of keypresses.
type scriptedKeys struct {
	keys []byte
}

func (sk *scriptedKeys) ReadKey() (byte, bool) {
	if len(sk.keys) == 0 {
		return 0, false
	}
	k := sk.keys[0]
	sk.keys = sk.keys[1:]
	return k, true
}

// run the listener to completion. the script must end with a 'q' or the
// listener will not finish.
func runListener(keys string, flags *govern.Flags) string {
	w := &strings.Builder{}
	lst := operator.NewListener(&scriptedKeys{keys: []byte(keys)}, flags, w, time.Millisecond)
	lst.Run()
	return w.String()
}

func TestQuitCommand(t *testing.T) {
	flags := govern.NewFlags()
	out := runListener("q", flags)

	test.Equate(t, flags.Alive.Load(), false)
	test.Equate(t, flags.Polling.Load(), false)

	if !strings.Contains(out, "quitting") {
		t.Errorf("expected quit notice, got %q", out)
	}
}

func TestPauseResume(t *testing.T) {
	flags := govern.NewFlags()
	out := runListener("ssq", flags)

	// two toggles leave polling enabled
	test.Equate(t, flags.Polling.Load(), true)

	paused := strings.Index(out, "capture paused")
	resumed := strings.Index(out, "capture resumed")
	if paused == -1 || resumed == -1 || paused > resumed {
		t.Errorf("expected pause then resume, got %q", out)
	}
}

func TestPauseLeavesProgramAlive(t *testing.T) {
	flags := govern.NewFlags()

	w := &strings.Builder{}
	lst := operator.NewListener(&scriptedKeys{keys: []byte("s")}, flags, w, time.Millisecond)

	go lst.Run()

	// pausing does not end the program; end it ourselves
	time.Sleep(20 * time.Millisecond)
	test.Equate(t, flags.Alive.Load(), true)
	test.Equate(t, flags.Polling.Load(), false)

	flags.Quit()
	lst.Wait()
}

func TestReconnectIsAPlaceholder(t *testing.T) {
	flags := govern.NewFlags()
	out := runListener("rq", flags)

	if !strings.Contains(out, "picked up automatically") {
		t.Errorf("expected reconnect placeholder notice, got %q", out)
	}

	// when paused the placeholder reports the paused state instead
	flags = govern.NewFlags()
	out = runListener("srq", flags)

	if !strings.Contains(out, "press 's' to resume") {
		t.Errorf("expected paused notice, got %q", out)
	}
}

func TestUnknownCommand(t *testing.T) {
	flags := govern.NewFlags()
	out := runListener("xq", flags)

	if !strings.Contains(out, "unknown command: x") {
		t.Errorf("expected unknown command notice, got %q", out)
	}
	if !strings.Contains(out, "valid commands") {
		t.Errorf("expected list of valid commands, got %q", out)
	}
}

func TestNewlinesIgnored(t *testing.T) {
	flags := govern.NewFlags()
	out := runListener("\n\rq", flags)

	if strings.Contains(out, "unknown command") {
		t.Errorf("newline characters should be ignored, got %q", out)
	}
}

func TestShutdownLatency(t *testing.T) {
	flags := govern.NewFlags()

	w := &strings.Builder{}
	lst := operator.NewListener(&scriptedKeys{}, flags, w, 10*time.Millisecond)

	go lst.Run()

	// clearing the alive flag ends the listener within one poll interval
	flags.Quit()

	finished := make(chan struct{})
	go func() {
		lst.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("listener did not notice the cleared alive flag")
	}
}
