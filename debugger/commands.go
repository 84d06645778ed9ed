// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/debugger/terminal"
	"github.com/jetsetilly/dspcore/hardware/dsp/dispatcher"
	"github.com/jetsetilly/dspcore/hardware/dsp/opcodes"
	"github.com/jetsetilly/dspcore/logger"
)

// Sentinel error patterns.
const (
	UnknownCommand = "debugger: unknown command (%s)"
	BadArguments   = "debugger: %s: usage: %s"
	BadNumber      = "debugger: not a number (%s)"
	NoStore        = "debugger: save states are not available"
)

// debugger keywords
const (
	cmdStep   = "STEP"
	cmdRun    = "RUN"
	cmdRegs   = "REGS"
	cmdPC     = "PC"
	cmdMem    = "MEM"
	cmdIMem   = "IMEM"
	cmdPoke   = "POKE"
	cmdPatch  = "PATCH"
	cmdMail   = "MAIL"
	cmdInt    = "INT"
	cmdFlags  = "FLAGS"
	cmdBlocks = "BLOCKS"
	cmdStats  = "STATS"
	cmdSave   = "SAVE"
	cmdLoad   = "LOAD"
	cmdSlots  = "SLOTS"
	cmdReset   = "RESET"
	cmdRewind  = "REWIND"
	cmdForward = "FORWARD"
	cmdHistory = "HISTORY"
	cmdCompare = "COMPARE"
	cmdLog     = "LOG"
	cmdHelp    = "HELP"
	cmdQuit    = "QUIT"
)

// commands that change the DSP. a rewind entry is recorded after they
// succeed
var recorded = map[string]bool{
	cmdStep:  true,
	cmdRun:   true,
	cmdPC:    true,
	cmdPoke:  true,
	cmdPatch: true,
	cmdMail:  true,
	cmdInt:   true,
	cmdLoad:  true,
	cmdReset: true,
}

type command struct {
	keyword string
	usage   string
	help    string
	minArgs int
	maxArgs int
	fn      func(dbg *Debugger, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{cmdStep, "STEP [n]", "interpret n instructions", 0, 1, (*Debugger).step},
		{cmdRun, "RUN [cycles] [slices]", "run slices with the dispatcher", 0, 2, (*Debugger).run},
		{cmdRegs, "REGS", "show the registers and stacks", 0, 0, (*Debugger).regs},
		{cmdPC, "PC addr", "set the program counter", 1, 1, (*Debugger).pc},
		{cmdMem, "MEM addr [n]", "show data memory", 1, 2, (*Debugger).mem},
		{cmdIMem, "IMEM addr [n]", "disassemble instruction memory", 1, 2, (*Debugger).imem},
		{cmdPoke, "POKE addr value", "write to data memory", 2, 2, (*Debugger).poke},
		{cmdPatch, "PATCH addr value", "write to instruction memory", 2, 2, (*Debugger).patch},
		{cmdMail, "MAIL [value]", "send a mail to the DSP or read a mail from the DSP", 0, 1, (*Debugger).mail},
		{cmdInt, "INT", "request an external interrupt", 0, 0, (*Debugger).interrupt},
		{cmdFlags, "FLAGS addr [n]", "show the analysis flags", 1, 2, (*Debugger).flags},
		{cmdBlocks, "BLOCKS [addr]", "list compiled blocks or disassemble one block", 0, 1, (*Debugger).blocks},
		{cmdStats, "STATS", "show dispatcher and cache counters", 0, 0, (*Debugger).stats},
		{cmdSave, "SAVE slot", "save the DSP to a save state slot", 1, 1, (*Debugger).save},
		{cmdLoad, "LOAD slot", "restore the DSP from a save state slot", 1, 1, (*Debugger).load},
		{cmdSlots, "SLOTS", "list save state slots", 0, 0, (*Debugger).slots},
		{cmdReset, "RESET", "reset the DSP", 0, 0, (*Debugger).reset},
		{cmdRewind, "REWIND [n]", "move back through the rewind history", 0, 1, (*Debugger).back},
		{cmdForward, "FORWARD [n]", "move forward through the rewind history", 0, 1, (*Debugger).forward},
		{cmdHistory, "HISTORY", "list the rewind history", 0, 0, (*Debugger).history},
		{cmdLog, "LOG [n|CLEAR]", "show the most recent log entries or clear the log", 0, 1, (*Debugger).log},
		{cmdCompare, "COMPARE [SET]", "show changes since the comparison point or set it to the current entry", 0, 1, (*Debugger).compare},
		{cmdHelp, "HELP", "list commands", 0, 0, (*Debugger).help},
		{cmdQuit, "QUIT", "leave the monitor", 0, 0, (*Debugger).exit},
	}
}

func keywords() []string {
	k := make([]string, len(commands))
	for i := range commands {
		k[i] = commands[i].keyword
	}
	return k
}

func lookup(keyword string) (*command, bool) {
	keyword = strings.ToUpper(keyword)
	i := slices.IndexFunc(commands, func(c command) bool {
		return c.keyword == keyword
	})
	if i == -1 {
		return nil, false
	}
	return &commands[i], true
}

func number(s string, bits int) (uint64, error) {
	n, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, curated.Errorf(BadNumber, s)
	}
	return n, nil
}

// optional count argument
func count(args []string, idx int, def int) (int, error) {
	if len(args) <= idx {
		return def, nil
	}
	n, err := number(args[idx], 16)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (dbg *Debugger) step(args []string) error {
	n, err := count(args, 0, 1)
	if err != nil {
		return err
	}
	it := dbg.dsp.Dispatcher.Interpreter()
	for range n {
		if dbg.dsp.State.Halted() {
			dbg.printLine(terminal.StyleFeedback, "halted")
			break
		}
		dbg.dsp.Step()
		r := it.LastResult
		dbg.trace.Add(r.Address, r.Word)
		s := r.String()
		if r.Looped {
			s += " (loop)"
		}
		if r.Vectored {
			s += fmt.Sprintf(" (vectored to %04x)", dbg.dsp.State.PC)
		}
		dbg.printLine(terminal.StyleTrace, s)
	}
	return nil
}

func (dbg *Debugger) run(args []string) error {
	budget, err := count(args, 0, DefaultBudget)
	if err != nil {
		return err
	}
	n, err := count(args, 1, 1)
	if err != nil {
		return err
	}
	var cycles int
	for i := range n {
		r := dbg.dsp.RunSlice(budget)
		cycles += r.Cycles
		if i == n-1 || r.Reason != dispatcher.Budget {
			dbg.printLine(terminal.StyleFeedback, "%s", r)
		}
		if dbg.dsp.State.Halted() {
			break
		}
	}
	dbg.printLine(terminal.StyleFeedback, "%d cycles, PC=%04x", cycles, dbg.dsp.State.PC)
	return nil
}

func (dbg *Debugger) regs(_ []string) error {
	for _, l := range strings.Split(dbg.dsp.State.String(), "\n") {
		dbg.printLine(terminal.StyleInstrument, "%s", l)
	}
	return nil
}

func (dbg *Debugger) pc(args []string) error {
	a, err := number(args[0], 16)
	if err != nil {
		return err
	}
	dbg.dsp.State.PC = uint16(a)
	return nil
}

func (dbg *Debugger) mem(args []string) error {
	a, err := number(args[0], 16)
	if err != nil {
		return err
	}
	n, err := count(args, 1, 8)
	if err != nil {
		return err
	}
	addr := uint16(a)
	for n > 0 {
		s := strings.Builder{}
		fmt.Fprintf(&s, "%04x:", addr)
		for i := 0; i < 8 && n > 0; i++ {
			fmt.Fprintf(&s, " %04x", dbg.dsp.ReadDataMemory(addr))
			addr++
			n--
		}
		dbg.printLine(terminal.StyleInstrument, "%s", s.String())
	}
	return nil
}

func (dbg *Debugger) imem(args []string) error {
	a, err := number(args[0], 16)
	if err != nil {
		return err
	}
	n, err := count(args, 1, 8)
	if err != nil {
		return err
	}
	addr := uint16(a)
	for range n {
		w := dbg.dsp.ReadInstructionMemory(addr)
		next := dbg.dsp.ReadInstructionMemory(addr + 1)
		dbg.printLine(terminal.StyleInstrument, "%04x: %04x  %s", addr, w, opcodes.Disasm(w, next))
		if op, ok := opcodes.Lookup(w); ok && op.Size == 2 {
			addr++
		}
		addr++
	}
	return nil
}

func (dbg *Debugger) poke(args []string) error {
	a, err := number(args[0], 16)
	if err != nil {
		return err
	}
	v, err := number(args[1], 16)
	if err != nil {
		return err
	}
	dbg.dsp.WriteDataMemory(uint16(a), uint16(v))
	return nil
}

func (dbg *Debugger) patch(args []string) error {
	a, err := number(args[0], 16)
	if err != nil {
		return err
	}
	v, err := number(args[1], 16)
	if err != nil {
		return err
	}
	dbg.dsp.WriteInstructionMemory(uint16(a), uint16(v))
	return nil
}

func (dbg *Debugger) mail(args []string) error {
	if len(args) == 1 {
		v, err := number(args[0], 32)
		if err != nil {
			return err
		}
		dbg.dsp.PushMail(uint32(v))
		return nil
	}
	m, ok := dbg.dsp.ReadMail()
	if !ok {
		dbg.printLine(terminal.StyleFeedback, "no mail")
		return nil
	}
	dbg.printLine(terminal.StyleInstrument, "mail: %08x", m)
	return nil
}

func (dbg *Debugger) interrupt(_ []string) error {
	dbg.dsp.RequestInterrupt()
	return nil
}

func (dbg *Debugger) flags(args []string) error {
	a, err := number(args[0], 16)
	if err != nil {
		return err
	}
	n, err := count(args, 1, 1)
	if err != nil {
		return err
	}
	addr := uint16(a)
	for range n {
		f := dbg.dsp.Analyzer.Flags(addr)
		s := fmt.Sprintf("%04x: %s", addr, f)
		if sig, ok := dbg.dsp.Analyzer.Signature(addr); ok {
			s = fmt.Sprintf("%s (%s)", s, sig.Name)
		}
		dbg.printLine(terminal.StyleInstrument, "%s", s)
		addr++
	}
	return nil
}

func (dbg *Debugger) blocks(args []string) error {
	if len(args) == 1 {
		a, err := number(args[0], 16)
		if err != nil {
			return err
		}
		b, ok := dbg.dsp.Cache.Lookup(uint16(a))
		if !ok {
			dbg.printLine(terminal.StyleFeedback, "no block at %04x (%s)", a, dbg.dsp.Cache.State(uint16(a)))
			return nil
		}
		for _, l := range strings.Split(b.Disasm(), "\n") {
			dbg.printLine(terminal.StyleInstrument, "%s", l)
		}
		return nil
	}

	entries := dbg.dsp.Cache.Entries()
	if len(entries) == 0 {
		dbg.printLine(terminal.StyleFeedback, "no compiled blocks")
		return nil
	}
	for _, e := range entries {
		b, _ := dbg.dsp.Cache.Lookup(e)
		dbg.printLine(terminal.StyleInstrument, "%s [%s]", b, dbg.dsp.Cache.State(e))
	}
	return nil
}

func (dbg *Debugger) stats(_ []string) error {
	dbg.printLine(terminal.StyleInstrument, "%s", dbg.dsp.Stats())
	dbg.printLine(terminal.StyleInstrument, "trace: %s", dbg.trace.Hash())
	return nil
}

func (dbg *Debugger) save(args []string) error {
	if dbg.Store == nil {
		return curated.Errorf(NoStore)
	}
	b, err := dbg.dsp.MarshalBinary()
	if err != nil {
		return err
	}
	return dbg.Store.Save(args[0], b)
}

func (dbg *Debugger) load(args []string) error {
	if dbg.Store == nil {
		return curated.Errorf(NoStore)
	}
	b, err := dbg.Store.Load(args[0])
	if err != nil {
		return err
	}
	return dbg.dsp.UnmarshalBinary(b)
}

func (dbg *Debugger) slots(_ []string) error {
	if dbg.Store == nil {
		return curated.Errorf(NoStore)
	}
	l, err := dbg.Store.List()
	if err != nil {
		return err
	}
	if len(l) == 0 {
		dbg.printLine(terminal.StyleFeedback, "no save states")
	}
	for _, e := range l {
		dbg.printLine(terminal.StyleInstrument, "%s", e)
	}
	return nil
}

func (dbg *Debugger) reset(_ []string) error {
	dbg.dsp.Reset()
	dbg.trace.ResetDigest()
	return nil
}

func (dbg *Debugger) help(_ []string) error {
	for _, c := range commands {
		dbg.printLine(terminal.StyleHelp, "%-24s %s", c.usage, c.help)
	}
	return nil
}

func (dbg *Debugger) exit(_ []string) error {
	dbg.quit = true
	return nil
}

func (dbg *Debugger) back(args []string) error {
	n, err := count(args, 0, 1)
	if err != nil {
		return err
	}
	e, err := dbg.rewind.Back(n)
	if err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "%s", e)
	return nil
}

func (dbg *Debugger) forward(args []string) error {
	n, err := count(args, 0, 1)
	if err != nil {
		return err
	}
	e, err := dbg.rewind.Forward(n)
	if err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "%s", e)
	return nil
}

func (dbg *Debugger) history(_ []string) error {
	curr := dbg.rewind.Current()
	cmp := dbg.rewind.GetComparison()
	for _, e := range dbg.rewind.Entries() {
		s := e.String()
		if e == curr {
			s = "> " + s
		} else {
			s = "  " + s
		}
		if e == cmp {
			s += " (comparison)"
		}
		dbg.printLine(terminal.StyleInstrument, "%s", s)
	}
	dbg.printLine(terminal.StyleFeedback, "%s", dbg.rewind.GetTimeline())
	return nil
}

func (dbg *Debugger) compare(args []string) error {
	if len(args) == 1 {
		if strings.ToUpper(args[0]) != "SET" {
			c, _ := lookup(cmdCompare)
			return curated.Errorf(BadArguments, c.keyword, c.usage)
		}
		return dbg.rewind.SetComparison()
	}

	diff, err := dbg.rewind.Compare()
	if err != nil {
		return err
	}
	if diff == "" {
		dbg.printLine(terminal.StyleFeedback, "no changes since %s", dbg.rewind.GetComparison())
		return nil
	}
	for _, l := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		dbg.printLine(terminal.StyleInstrument, "%s", l)
	}
	return nil
}

func (dbg *Debugger) log(args []string) error {
	if len(args) == 1 && strings.ToUpper(args[0]) == "CLEAR" {
		logger.Clear()
		return nil
	}

	n, err := count(args, 0, 10)
	if err != nil {
		return err
	}

	var s strings.Builder
	logger.Tail(&s, n)
	if s.Len() == 0 {
		dbg.printLine(terminal.StyleFeedback, "log is empty")
		return nil
	}
	for _, l := range strings.Split(strings.TrimSuffix(s.String(), "\n"), "\n") {
		dbg.printLine(terminal.StyleInstrument, "%s", l)
	}
	return nil
}
