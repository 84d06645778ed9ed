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

package memory

const (
	dspMailbox = 0
	cpuMailbox = 1

	mailValid = 0x80000000
)

func (mem *Memory) mailboxHigh(mbx int) uint16 {
	return uint16(mem.Mailbox[mbx] >> 16)
}

func (mem *Memory) mailboxLow(mbx int) uint16 {
	return uint16(mem.Mailbox[mbx])
}

// writing the high half clears the valid bit. the mail becomes valid when
// the low half is written
func (mem *Memory) writeMailboxHigh(mbx int, value uint16) {
	mem.Mailbox[mbx] = (mem.Mailbox[mbx]&0x0000ffff | uint32(value)<<16) &^ mailValid
}

func (mem *Memory) writeMailboxLow(mbx int, value uint16) {
	mem.Mailbox[mbx] = mem.Mailbox[mbx]&0xffff0000 | uint32(value) | mailValid
}

// PushMail writes a mail to the DSP from the CPU side. The top bit of the mail
// is the valid bit and is always set.
func (mem *Memory) PushMail(mail uint32) {
	mem.Mailbox[cpuMailbox] = mail | mailValid
}

// MailPending returns true if the DSP has not yet read the last mail pushed
// with PushMail().
func (mem *Memory) MailPending() bool {
	return mem.Mailbox[cpuMailbox]&mailValid == mailValid
}

// ReadMail reads a mail sent by the DSP. Returns false if there is no mail
// waiting. The valid bit is not included in the returned value.
func (mem *Memory) ReadMail() (uint32, bool) {
	m := mem.Mailbox[dspMailbox]
	if m&mailValid == 0 {
		return 0, false
	}
	mem.Mailbox[dspMailbox] &^= mailValid
	return m &^ mailValid, true
}

// TakeCPUInterrupt returns true if the DSP has requested an interrupt of the
// CPU since the last call.
func (mem *Memory) TakeCPUInterrupt() bool {
	i := mem.CPUInterrupt
	mem.CPUInterrupt = false
	return i
}
