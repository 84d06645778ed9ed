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

package opcodes

// Class identifies the semantic routine of an opcode. All conditional variants
// of a branch share the same class. The condition is held in the low four
// bits of the instruction word.
type Class int

// List of opcode classes.
const (
	Nop Class = iota
	Dar
	Iar
	Subarn
	Addarn
	Halt
	Ret
	Rti
	Call
	If
	Jmp
	Jmpr
	Callr
	Sbclr
	Sbset
	Lsl
	Lsr
	Asl
	Asr
	Lsrn
	Asrn
	Lri
	Lr
	Sr
	Mrr
	Si
	Addis
	Cmpis
	Lris
	Addi
	Xori
	Andi
	Ori
	Cmpi
	Andf
	Andcf
	Ilrr
	Ilrrd
	Ilrri
	Ilrrn
	Loop
	Bloop
	Loopi
	Bloopi
	Lrr
	Lrrd
	Lrri
	Lrrn
	Srr
	Srrd
	Srri
	Srrn
	Lrs
	Srsh
	Srs
	Xorr
	Andr
	Orr
	Andc
	Orc
	Xorc
	Not
	Lsrnrx
	Asrnrx
	Lsrnr
	Asrnr
	Addr
	Addax
	Add
	Addp
	Subr
	Subax
	Sub
	Subp
	Movr
	Movax
	Mov
	Movp
	Addaxl
	Incm
	Inc
	Decm
	Dec
	Neg
	Movnp
	Nx
	Clr
	Cmp
	Mulaxh
	Clrp
	Tstprod
	Tstaxh
	M2
	M0
	Clr15
	Set15
	Set16
	Set40
	Mul
	Asr16
	Mulmvz
	Mulac
	Mulmv
	Mulx
	Abs
	Mulxmvz
	Mulxac
	Mulxmv
	Tst
	Mulc
	Cmpaxh
	Mulcmvz
	Mulcac
	Mulcmv
	Maddx
	Msubx
	Maddc
	Msubc
	Lsl16
	Madd
	Lsr16
	Msub
	Addpaxz
	Clrl
	Movpz

	NumClasses
)

var classNames = [NumClasses]string{
	"NOP",
	"DAR",
	"IAR",
	"SUBARN",
	"ADDARN",
	"HALT",
	"RET",
	"RTI",
	"CALL",
	"IF",
	"JMP",
	"JMPR",
	"CALLR",
	"SBCLR",
	"SBSET",
	"LSL",
	"LSR",
	"ASL",
	"ASR",
	"LSRN",
	"ASRN",
	"LRI",
	"LR",
	"SR",
	"MRR",
	"SI",
	"ADDIS",
	"CMPIS",
	"LRIS",
	"ADDI",
	"XORI",
	"ANDI",
	"ORI",
	"CMPI",
	"ANDF",
	"ANDCF",
	"ILRR",
	"ILRRD",
	"ILRRI",
	"ILRRN",
	"LOOP",
	"BLOOP",
	"LOOPI",
	"BLOOPI",
	"LRR",
	"LRRD",
	"LRRI",
	"LRRN",
	"SRR",
	"SRRD",
	"SRRI",
	"SRRN",
	"LRS",
	"SRSH",
	"SRS",
	"XORR",
	"ANDR",
	"ORR",
	"ANDC",
	"ORC",
	"XORC",
	"NOT",
	"LSRNRX",
	"ASRNRX",
	"LSRNR",
	"ASRNR",
	"ADDR",
	"ADDAX",
	"ADD",
	"ADDP",
	"SUBR",
	"SUBAX",
	"SUB",
	"SUBP",
	"MOVR",
	"MOVAX",
	"MOV",
	"MOVP",
	"ADDAXL",
	"INCM",
	"INC",
	"DECM",
	"DEC",
	"NEG",
	"MOVNP",
	"NX",
	"CLR",
	"CMP",
	"MULAXH",
	"CLRP",
	"TSTPROD",
	"TSTAXH",
	"M2",
	"M0",
	"CLR15",
	"SET15",
	"SET16",
	"SET40",
	"MUL",
	"ASR16",
	"MULMVZ",
	"MULAC",
	"MULMV",
	"MULX",
	"ABS",
	"MULXMVZ",
	"MULXAC",
	"MULXMV",
	"TST",
	"MULC",
	"CMPAXH",
	"MULCMVZ",
	"MULCAC",
	"MULCMV",
	"MADDX",
	"MSUBX",
	"MADDC",
	"MSUBC",
	"LSL16",
	"MADD",
	"LSR16",
	"MSUB",
	"ADDPAXZ",
	"CLRL",
	"MOVPZ",
}

func (c Class) String() string {
	if c < 0 || c >= NumClasses {
		return "unknown class"
	}
	return classNames[c]
}

// ExtClass identifies the semantic routine of an extended opcode.
type ExtClass int

// List of extended opcode classes.
const (
	ExtXxx ExtClass = iota
	ExtDr
	ExtIr
	ExtNr
	ExtMv
	ExtS
	ExtSn
	ExtL
	ExtLn
	ExtLs
	ExtSl
	ExtLsn
	ExtSln
	ExtLsm
	ExtSlm
	ExtLsnm
	ExtSlnm
	ExtLdax
	ExtLdaxn
	ExtLdaxm
	ExtLdaxnm
	ExtLd
	ExtLdn
	ExtLdm
	ExtLdnm

	NumExtClasses
)

var extClassNames = [NumExtClasses]string{
	"XXX",
	"DR",
	"IR",
	"NR",
	"MV",
	"S",
	"SN",
	"L",
	"LN",
	"LS",
	"SL",
	"LSN",
	"SLN",
	"LSM",
	"SLM",
	"LSNM",
	"SLNM",
	"LDAX",
	"LDAXN",
	"LDAXM",
	"LDAXNM",
	"LD",
	"LDN",
	"LDM",
	"LDNM",
}

func (c ExtClass) String() string {
	if c < 0 || c >= NumExtClasses {
		return "unknown class"
	}
	return extClassNames[c]
}
