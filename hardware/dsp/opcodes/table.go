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

// the main opcode table. the order of the table is significant. a word is
// decoded as the first entry for which word&Mask == Opcode.
var table = []Opcode{
	{"NOP", 0x0000, 0xfffc, 1, Nop, 0},
	{"DAR", 0x0004, 0xfffc, 1, Dar, 0},
	{"IAR", 0x0008, 0xfffc, 1, Iar, 0},
	{"SUBARN", 0x000c, 0xfffc, 1, Subarn, 0},
	{"ADDARN", 0x0010, 0xfff0, 1, Addarn, 0},
	{"HALT", 0x0021, 0xffff, 1, Halt, Branch|Unconditional},
	{"RETGE", 0x02d0, 0xffff, 1, Ret, Branch|ReadsPC},
	{"RETL", 0x02d1, 0xffff, 1, Ret, Branch|ReadsPC},
	{"RETG", 0x02d2, 0xffff, 1, Ret, Branch|ReadsPC},
	{"RETLE", 0x02d3, 0xffff, 1, Ret, Branch|ReadsPC},
	{"RETNZ", 0x02d4, 0xffff, 1, Ret, Branch|ReadsPC},
	{"RETZ", 0x02d5, 0xffff, 1, Ret, Branch|ReadsPC},
	{"RETNC", 0x02d6, 0xffff, 1, Ret, Branch|ReadsPC},
	{"RETC", 0x02d7, 0xffff, 1, Ret, Branch|ReadsPC},
	{"RETX8", 0x02d8, 0xffff, 1, Ret, Branch|ReadsPC},
	{"RETX9", 0x02d9, 0xffff, 1, Ret, Branch|ReadsPC},
	{"RETXA", 0x02da, 0xffff, 1, Ret, Branch|ReadsPC},
	{"RETXB", 0x02db, 0xffff, 1, Ret, Branch|ReadsPC},
	{"RETLNZ", 0x02dc, 0xffff, 1, Ret, Branch|ReadsPC},
	{"RETLZ", 0x02dd, 0xffff, 1, Ret, Branch|ReadsPC},
	{"RETO", 0x02de, 0xffff, 1, Ret, Branch|ReadsPC},
	{"RET", 0x02df, 0xffff, 1, Ret, Branch|Unconditional},
	{"RTIGE", 0x02f0, 0xffff, 1, Rti, Branch|ReadsPC},
	{"RTIL", 0x02f1, 0xffff, 1, Rti, Branch|ReadsPC},
	{"RTIG", 0x02f2, 0xffff, 1, Rti, Branch|ReadsPC},
	{"RTILE", 0x02f3, 0xffff, 1, Rti, Branch|ReadsPC},
	{"RTINZ", 0x02f4, 0xffff, 1, Rti, Branch|ReadsPC},
	{"RTIZ", 0x02f5, 0xffff, 1, Rti, Branch|ReadsPC},
	{"RTINC", 0x02f6, 0xffff, 1, Rti, Branch|ReadsPC},
	{"RTIC", 0x02f7, 0xffff, 1, Rti, Branch|ReadsPC},
	{"RTIX8", 0x02f8, 0xffff, 1, Rti, Branch|ReadsPC},
	{"RTIX9", 0x02f9, 0xffff, 1, Rti, Branch|ReadsPC},
	{"RTIXA", 0x02fa, 0xffff, 1, Rti, Branch|ReadsPC},
	{"RTIXB", 0x02fb, 0xffff, 1, Rti, Branch|ReadsPC},
	{"RTILNZ", 0x02fc, 0xffff, 1, Rti, Branch|ReadsPC},
	{"RTILZ", 0x02fd, 0xffff, 1, Rti, Branch|ReadsPC},
	{"RTIO", 0x02fe, 0xffff, 1, Rti, Branch|ReadsPC},
	{"RTI", 0x02ff, 0xffff, 1, Rti, Branch|Unconditional},
	{"CALLGE", 0x02b0, 0xffff, 2, Call, Branch|ReadsPC},
	{"CALLL", 0x02b1, 0xffff, 2, Call, Branch|ReadsPC},
	{"CALLG", 0x02b2, 0xffff, 2, Call, Branch|ReadsPC},
	{"CALLLE", 0x02b3, 0xffff, 2, Call, Branch|ReadsPC},
	{"CALLNZ", 0x02b4, 0xffff, 2, Call, Branch|ReadsPC},
	{"CALLZ", 0x02b5, 0xffff, 2, Call, Branch|ReadsPC},
	{"CALLNC", 0x02b6, 0xffff, 2, Call, Branch|ReadsPC},
	{"CALLC", 0x02b7, 0xffff, 2, Call, Branch|ReadsPC},
	{"CALLX8", 0x02b8, 0xffff, 2, Call, Branch|ReadsPC},
	{"CALLX9", 0x02b9, 0xffff, 2, Call, Branch|ReadsPC},
	{"CALLXA", 0x02ba, 0xffff, 2, Call, Branch|ReadsPC},
	{"CALLXB", 0x02bb, 0xffff, 2, Call, Branch|ReadsPC},
	{"CALLLNZ", 0x02bc, 0xffff, 2, Call, Branch|ReadsPC},
	{"CALLLZ", 0x02bd, 0xffff, 2, Call, Branch|ReadsPC},
	{"CALLO", 0x02be, 0xffff, 2, Call, Branch|ReadsPC},
	{"CALL", 0x02bf, 0xffff, 2, Call, Branch|Unconditional|ReadsPC},
	{"IFGE", 0x0270, 0xffff, 1, If, Branch|ReadsPC},
	{"IFL", 0x0271, 0xffff, 1, If, Branch|ReadsPC},
	{"IFG", 0x0272, 0xffff, 1, If, Branch|ReadsPC},
	{"IFLE", 0x0273, 0xffff, 1, If, Branch|ReadsPC},
	{"IFNZ", 0x0274, 0xffff, 1, If, Branch|ReadsPC},
	{"IFZ", 0x0275, 0xffff, 1, If, Branch|ReadsPC},
	{"IFNC", 0x0276, 0xffff, 1, If, Branch|ReadsPC},
	{"IFC", 0x0277, 0xffff, 1, If, Branch|ReadsPC},
	{"IFX8", 0x0278, 0xffff, 1, If, Branch|ReadsPC},
	{"IFX9", 0x0279, 0xffff, 1, If, Branch|ReadsPC},
	{"IFXA", 0x027a, 0xffff, 1, If, Branch|ReadsPC},
	{"IFXB", 0x027b, 0xffff, 1, If, Branch|ReadsPC},
	{"IFLNZ", 0x027c, 0xffff, 1, If, Branch|ReadsPC},
	{"IFLZ", 0x027d, 0xffff, 1, If, Branch|ReadsPC},
	{"IFO", 0x027e, 0xffff, 1, If, Branch|ReadsPC},
	{"IF", 0x027f, 0xffff, 1, If, Branch|Unconditional|ReadsPC},
	{"JGE", 0x0290, 0xffff, 2, Jmp, Branch|ReadsPC},
	{"JL", 0x0291, 0xffff, 2, Jmp, Branch|ReadsPC},
	{"JG", 0x0292, 0xffff, 2, Jmp, Branch|ReadsPC},
	{"JLE", 0x0293, 0xffff, 2, Jmp, Branch|ReadsPC},
	{"JNZ", 0x0294, 0xffff, 2, Jmp, Branch|ReadsPC},
	{"JZ", 0x0295, 0xffff, 2, Jmp, Branch|ReadsPC},
	{"JNC", 0x0296, 0xffff, 2, Jmp, Branch|ReadsPC},
	{"JC", 0x0297, 0xffff, 2, Jmp, Branch|ReadsPC},
	{"JMPX8", 0x0298, 0xffff, 2, Jmp, Branch|ReadsPC},
	{"JMPX9", 0x0299, 0xffff, 2, Jmp, Branch|ReadsPC},
	{"JMPXA", 0x029a, 0xffff, 2, Jmp, Branch|ReadsPC},
	{"JMPXB", 0x029b, 0xffff, 2, Jmp, Branch|ReadsPC},
	{"JLNZ", 0x029c, 0xffff, 2, Jmp, Branch|ReadsPC},
	{"JLZ", 0x029d, 0xffff, 2, Jmp, Branch|ReadsPC},
	{"JO", 0x029e, 0xffff, 2, Jmp, Branch|ReadsPC},
	{"JMP", 0x029f, 0xffff, 2, Jmp, Branch|Unconditional|ReadsPC},
	{"JRGE", 0x1700, 0xff1f, 1, Jmpr, Branch},
	{"JRL", 0x1701, 0xff1f, 1, Jmpr, Branch},
	{"JRG", 0x1702, 0xff1f, 1, Jmpr, Branch},
	{"JRLE", 0x1703, 0xff1f, 1, Jmpr, Branch},
	{"JRNZ", 0x1704, 0xff1f, 1, Jmpr, Branch},
	{"JRZ", 0x1705, 0xff1f, 1, Jmpr, Branch},
	{"JRNC", 0x1706, 0xff1f, 1, Jmpr, Branch},
	{"JRC", 0x1707, 0xff1f, 1, Jmpr, Branch},
	{"JMPRX8", 0x1708, 0xff1f, 1, Jmpr, Branch},
	{"JMPRX9", 0x1709, 0xff1f, 1, Jmpr, Branch},
	{"JMPRXA", 0x170a, 0xff1f, 1, Jmpr, Branch},
	{"JMPRXB", 0x170b, 0xff1f, 1, Jmpr, Branch},
	{"JRLNZ", 0x170c, 0xff1f, 1, Jmpr, Branch},
	{"JRLZ", 0x170d, 0xff1f, 1, Jmpr, Branch},
	{"JRO", 0x170e, 0xff1f, 1, Jmpr, Branch},
	{"JMPR", 0x170f, 0xff1f, 1, Jmpr, Branch|Unconditional},
	{"CALLRGE", 0x1710, 0xff1f, 1, Callr, Branch|ReadsPC},
	{"CALLRL", 0x1711, 0xff1f, 1, Callr, Branch|ReadsPC},
	{"CALLRG", 0x1712, 0xff1f, 1, Callr, Branch|ReadsPC},
	{"CALLRLE", 0x1713, 0xff1f, 1, Callr, Branch|ReadsPC},
	{"CALLRNZ", 0x1714, 0xff1f, 1, Callr, Branch|ReadsPC},
	{"CALLRZ", 0x1715, 0xff1f, 1, Callr, Branch|ReadsPC},
	{"CALLRNC", 0x1716, 0xff1f, 1, Callr, Branch|ReadsPC},
	{"CALLRC", 0x1717, 0xff1f, 1, Callr, Branch|ReadsPC},
	{"CALLRX8", 0x1718, 0xff1f, 1, Callr, Branch|ReadsPC},
	{"CALLRX9", 0x1719, 0xff1f, 1, Callr, Branch|ReadsPC},
	{"CALLRXA", 0x171a, 0xff1f, 1, Callr, Branch|ReadsPC},
	{"CALLRXB", 0x171b, 0xff1f, 1, Callr, Branch|ReadsPC},
	{"CALLRLNZ", 0x171c, 0xff1f, 1, Callr, Branch|ReadsPC},
	{"CALLRLZ", 0x171d, 0xff1f, 1, Callr, Branch|ReadsPC},
	{"CALLRO", 0x171e, 0xff1f, 1, Callr, Branch|ReadsPC},
	{"CALLR", 0x171f, 0xff1f, 1, Callr, Branch|Unconditional|ReadsPC},
	{"SBCLR", 0x1200, 0xff00, 1, Sbclr, 0},
	{"SBSET", 0x1300, 0xff00, 1, Sbset, 0},
	{"LSL", 0x1400, 0xfec0, 1, Lsl, UpdatesSR},
	{"LSR", 0x1440, 0xfec0, 1, Lsr, UpdatesSR},
	{"ASL", 0x1480, 0xfec0, 1, Asl, UpdatesSR},
	{"ASR", 0x14c0, 0xfec0, 1, Asr, UpdatesSR},
	{"LSRN", 0x02ca, 0xffff, 1, Lsrn, UpdatesSR},
	{"ASRN", 0x02cb, 0xffff, 1, Asrn, UpdatesSR},
	{"LRI", 0x0080, 0xffe0, 2, Lri, ReadsPC},
	{"LR", 0x00c0, 0xffe0, 2, Lr, ReadsPC},
	{"SR", 0x00e0, 0xffe0, 2, Sr, ReadsPC},
	{"MRR", 0x1c00, 0xfc00, 1, Mrr, 0},
	{"SI", 0x1600, 0xff00, 2, Si, ReadsPC},
	{"ADDIS", 0x0400, 0xfe00, 1, Addis, UpdatesSR},
	{"CMPIS", 0x0600, 0xfe00, 1, Cmpis, UpdatesSR},
	{"LRIS", 0x0800, 0xf800, 1, Lris, UpdatesSR},
	{"ADDI", 0x0200, 0xfeff, 2, Addi, ReadsPC|UpdatesSR},
	{"XORI", 0x0220, 0xfeff, 2, Xori, ReadsPC|UpdatesSR},
	{"ANDI", 0x0240, 0xfeff, 2, Andi, ReadsPC|UpdatesSR},
	{"ORI", 0x0260, 0xfeff, 2, Ori, ReadsPC|UpdatesSR},
	{"CMPI", 0x0280, 0xfeff, 2, Cmpi, ReadsPC|UpdatesSR},
	{"ANDF", 0x02a0, 0xfeff, 2, Andf, ReadsPC|UpdatesSR},
	{"ANDCF", 0x02c0, 0xfeff, 2, Andcf, ReadsPC|UpdatesSR},
	{"ILRR", 0x0210, 0xfefc, 1, Ilrr, 0},
	{"ILRRD", 0x0214, 0xfefc, 1, Ilrrd, 0},
	{"ILRRI", 0x0218, 0xfefc, 1, Ilrri, 0},
	{"ILRRN", 0x021c, 0xfefc, 1, Ilrrn, 0},
	{"LOOP", 0x0040, 0xffe0, 1, Loop, Branch|Unconditional|ReadsPC},
	{"BLOOP", 0x0060, 0xffe0, 2, Bloop, Branch|Unconditional|ReadsPC},
	{"LOOPI", 0x1000, 0xff00, 1, Loopi, Branch|Unconditional|ReadsPC},
	{"BLOOPI", 0x1100, 0xff00, 2, Bloopi, Branch|Unconditional|ReadsPC},
	{"LRR", 0x1800, 0xff80, 1, Lrr, 0},
	{"LRRD", 0x1880, 0xff80, 1, Lrrd, 0},
	{"LRRI", 0x1900, 0xff80, 1, Lrri, 0},
	{"LRRN", 0x1980, 0xff80, 1, Lrrn, 0},
	{"SRR", 0x1a00, 0xff80, 1, Srr, 0},
	{"SRRD", 0x1a80, 0xff80, 1, Srrd, 0},
	{"SRRI", 0x1b00, 0xff80, 1, Srri, 0},
	{"SRRN", 0x1b80, 0xff80, 1, Srrn, 0},
	{"LRS", 0x2000, 0xf800, 1, Lrs, 0},
	{"SRSH", 0x2800, 0xfe00, 1, Srsh, 0},
	{"SRS", 0x2c00, 0xfc00, 1, Srs, 0},
	{"XORR", 0x3000, 0xfc80, 1, Xorr, Extendable|UpdatesSR},
	{"ANDR", 0x3400, 0xfc80, 1, Andr, Extendable|UpdatesSR},
	{"ORR", 0x3800, 0xfc80, 1, Orr, Extendable|UpdatesSR},
	{"ANDC", 0x3c00, 0xfe80, 1, Andc, Extendable|UpdatesSR},
	{"ORC", 0x3e00, 0xfe80, 1, Orc, Extendable|UpdatesSR},
	{"XORC", 0x3080, 0xfe80, 1, Xorc, Extendable|UpdatesSR},
	{"NOT", 0x3280, 0xfe80, 1, Not, Extendable|UpdatesSR},
	{"LSRNRX", 0x3480, 0xfc80, 1, Lsrnrx, Extendable|UpdatesSR},
	{"ASRNRX", 0x3880, 0xfc80, 1, Asrnrx, Extendable|UpdatesSR},
	{"LSRNR", 0x3c80, 0xfe80, 1, Lsrnr, Extendable|UpdatesSR},
	{"ASRNR", 0x3e80, 0xfe80, 1, Asrnr, Extendable|UpdatesSR},
	{"ADDR", 0x4000, 0xf800, 1, Addr, Extendable|UpdatesSR},
	{"ADDAX", 0x4800, 0xfc00, 1, Addax, Extendable|UpdatesSR},
	{"ADD", 0x4c00, 0xfe00, 1, Add, Extendable|UpdatesSR},
	{"ADDP", 0x4e00, 0xfe00, 1, Addp, Extendable|UpdatesSR},
	{"SUBR", 0x5000, 0xf800, 1, Subr, Extendable|UpdatesSR},
	{"SUBAX", 0x5800, 0xfc00, 1, Subax, Extendable|UpdatesSR},
	{"SUB", 0x5c00, 0xfe00, 1, Sub, Extendable|UpdatesSR},
	{"SUBP", 0x5e00, 0xfe00, 1, Subp, Extendable|UpdatesSR},
	{"MOVR", 0x6000, 0xf800, 1, Movr, Extendable|UpdatesSR},
	{"MOVAX", 0x6800, 0xfc00, 1, Movax, Extendable|UpdatesSR},
	{"MOV", 0x6c00, 0xfe00, 1, Mov, Extendable|UpdatesSR},
	{"MOVP", 0x6e00, 0xfe00, 1, Movp, Extendable|UpdatesSR},
	{"ADDAXL", 0x7000, 0xfc00, 1, Addaxl, Extendable|UpdatesSR},
	{"INCM", 0x7400, 0xfe00, 1, Incm, Extendable|UpdatesSR},
	{"INC", 0x7600, 0xfe00, 1, Inc, Extendable|UpdatesSR},
	{"DECM", 0x7800, 0xfe00, 1, Decm, Extendable|UpdatesSR},
	{"DEC", 0x7a00, 0xfe00, 1, Dec, Extendable|UpdatesSR},
	{"NEG", 0x7c00, 0xfe00, 1, Neg, Extendable|UpdatesSR},
	{"MOVNP", 0x7e00, 0xfe00, 1, Movnp, Extendable|UpdatesSR},
	{"NX", 0x8000, 0xf700, 1, Nx, Extendable},
	{"CLR", 0x8100, 0xf700, 1, Clr, Extendable|UpdatesSR},
	{"CMP", 0x8200, 0xff00, 1, Cmp, Extendable|UpdatesSR},
	{"MULAXH", 0x8300, 0xff00, 1, Mulaxh, Extendable|UpdatesSR},
	{"CLRP", 0x8400, 0xff00, 1, Clrp, Extendable|UpdatesSR},
	{"TSTPROD", 0x8500, 0xff00, 1, Tstprod, Extendable|UpdatesSR},
	{"TSTAXH", 0x8600, 0xfe00, 1, Tstaxh, Extendable|UpdatesSR},
	{"M2", 0x8a00, 0xff00, 1, M2, Extendable},
	{"M0", 0x8b00, 0xff00, 1, M0, Extendable},
	{"CLR15", 0x8c00, 0xff00, 1, Clr15, Extendable},
	{"SET15", 0x8d00, 0xff00, 1, Set15, Extendable},
	{"SET16", 0x8e00, 0xff00, 1, Set16, Extendable},
	{"SET40", 0x8f00, 0xff00, 1, Set40, Extendable},
	{"MUL", 0x9000, 0xf700, 1, Mul, Extendable|UpdatesSR},
	{"ASR16", 0x9100, 0xf700, 1, Asr16, Extendable|UpdatesSR},
	{"MULMVZ", 0x9200, 0xf600, 1, Mulmvz, Extendable|UpdatesSR},
	{"MULAC", 0x9400, 0xf600, 1, Mulac, Extendable|UpdatesSR},
	{"MULMV", 0x9600, 0xf600, 1, Mulmv, Extendable|UpdatesSR},
	{"MULX", 0xa000, 0xe700, 1, Mulx, Extendable|UpdatesSR},
	{"ABS", 0xa100, 0xf700, 1, Abs, Extendable|UpdatesSR},
	{"MULXMVZ", 0xa200, 0xe600, 1, Mulxmvz, Extendable|UpdatesSR},
	{"MULXAC", 0xa400, 0xe600, 1, Mulxac, Extendable|UpdatesSR},
	{"MULXMV", 0xa600, 0xe600, 1, Mulxmv, Extendable|UpdatesSR},
	{"TST", 0xb100, 0xf700, 1, Tst, Extendable|UpdatesSR},
	{"MULC", 0xc000, 0xe700, 1, Mulc, Extendable|UpdatesSR},
	{"CMPAXH", 0xc100, 0xe700, 1, Cmpaxh, Extendable|UpdatesSR},
	{"MULCMVZ", 0xc200, 0xe600, 1, Mulcmvz, Extendable|UpdatesSR},
	{"MULCAC", 0xc400, 0xe600, 1, Mulcac, Extendable|UpdatesSR},
	{"MULCMV", 0xc600, 0xe600, 1, Mulcmv, Extendable|UpdatesSR},
	{"MADDX", 0xe000, 0xfc00, 1, Maddx, Extendable|UpdatesSR},
	{"MSUBX", 0xe400, 0xfc00, 1, Msubx, Extendable|UpdatesSR},
	{"MADDC", 0xe800, 0xfc00, 1, Maddc, Extendable|UpdatesSR},
	{"MSUBC", 0xec00, 0xfc00, 1, Msubc, Extendable|UpdatesSR},
	{"LSL16", 0xf000, 0xfe00, 1, Lsl16, Extendable|UpdatesSR},
	{"MADD", 0xf200, 0xfe00, 1, Madd, Extendable|UpdatesSR},
	{"LSR16", 0xf400, 0xfe00, 1, Lsr16, Extendable|UpdatesSR},
	{"MSUB", 0xf600, 0xfe00, 1, Msub, Extendable|UpdatesSR},
	{"ADDPAXZ", 0xf800, 0xfc00, 1, Addpaxz, Extendable|UpdatesSR},
	{"CLRL", 0xfc00, 0xfe00, 1, Clrl, Extendable|UpdatesSR},
	{"MOVPZ", 0xfe00, 0xfe00, 1, Movpz, Extendable|UpdatesSR},
}

// the extended opcode table. as with the main table, the first match wins.
// the LDAX entries must precede the LD entries because the LD mask is a
// subset of the LDAX mask.
var extTable = []ExtOpcode{
	{"XXX", 0x0000, 0x00fc, ExtXxx},
	{"DR", 0x0004, 0x00fc, ExtDr},
	{"IR", 0x0008, 0x00fc, ExtIr},
	{"NR", 0x000c, 0x00fc, ExtNr},
	{"MV", 0x0010, 0x00f0, ExtMv},
	{"S", 0x0020, 0x00e4, ExtS},
	{"SN", 0x0024, 0x00e4, ExtSn},
	{"L", 0x0040, 0x00c4, ExtL},
	{"LN", 0x0044, 0x00c4, ExtLn},
	{"LS", 0x0080, 0x00ce, ExtLs},
	{"SL", 0x0082, 0x00ce, ExtSl},
	{"LSN", 0x0084, 0x00ce, ExtLsn},
	{"SLN", 0x0086, 0x00ce, ExtSln},
	{"LSM", 0x0088, 0x00ce, ExtLsm},
	{"SLM", 0x008a, 0x00ce, ExtSlm},
	{"LSNM", 0x008c, 0x00ce, ExtLsnm},
	{"SLNM", 0x008e, 0x00ce, ExtSlnm},
	{"LDAX", 0x00c3, 0x00cf, ExtLdax},
	{"LDAXN", 0x00c7, 0x00cf, ExtLdaxn},
	{"LDAXM", 0x00cb, 0x00cf, ExtLdaxm},
	{"LDAXNM", 0x00cf, 0x00cf, ExtLdaxnm},
	{"LD", 0x00c0, 0x00cc, ExtLd},
	{"LDN", 0x00c4, 0x00cc, ExtLdn},
	{"LDM", 0x00c8, 0x00cc, ExtLdm},
	{"LDNM", 0x00cc, 0x00cc, ExtLdnm},
}
