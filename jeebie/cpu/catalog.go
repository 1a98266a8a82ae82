package cpu

// catalog lists every legal instruction encoding, plain ones first, each
// group sorted by encoding. Cycles are machine cycles, ExtraCycles is charged
// only when a conditional branch is taken.
var catalog = [...]Opcode{
	// plain 0x0_
	{Plain, Nop, 0x00, "NOP", 1, 1, 0},
	{Plain, LdR16SPN16, 0x01, "LD BC,n16", 3, 3, 0},
	{Plain, LdBCRA, 0x02, "LD (BC),A", 1, 2, 0},
	{Plain, IncR16SP, 0x03, "INC BC", 1, 2, 0},
	{Plain, IncR8, 0x04, "INC B", 1, 1, 0},
	{Plain, DecR8, 0x05, "DEC B", 1, 1, 0},
	{Plain, LdR8N8, 0x06, "LD B,n8", 2, 2, 0},
	{Plain, RotCA, 0x07, "RLCA", 1, 1, 0},
	{Plain, LdN16RSP, 0x08, "LD (n16),SP", 3, 5, 0},
	{Plain, AddHLR16SP, 0x09, "ADD HL,BC", 1, 2, 0},
	{Plain, LdABCR, 0x0A, "LD A,(BC)", 1, 2, 0},
	{Plain, DecR16SP, 0x0B, "DEC BC", 1, 2, 0},
	{Plain, IncR8, 0x0C, "INC C", 1, 1, 0},
	{Plain, DecR8, 0x0D, "DEC C", 1, 1, 0},
	{Plain, LdR8N8, 0x0E, "LD C,n8", 2, 2, 0},
	{Plain, RotCA, 0x0F, "RRCA", 1, 1, 0},

	// plain 0x1_
	{Plain, Stop, 0x10, "STOP", 2, 1, 0},
	{Plain, LdR16SPN16, 0x11, "LD DE,n16", 3, 3, 0},
	{Plain, LdDERA, 0x12, "LD (DE),A", 1, 2, 0},
	{Plain, IncR16SP, 0x13, "INC DE", 1, 2, 0},
	{Plain, IncR8, 0x14, "INC D", 1, 1, 0},
	{Plain, DecR8, 0x15, "DEC D", 1, 1, 0},
	{Plain, LdR8N8, 0x16, "LD D,n8", 2, 2, 0},
	{Plain, RotA, 0x17, "RLA", 1, 1, 0},
	{Plain, JrE8, 0x18, "JR e8", 2, 3, 0},
	{Plain, AddHLR16SP, 0x19, "ADD HL,DE", 1, 2, 0},
	{Plain, LdADER, 0x1A, "LD A,(DE)", 1, 2, 0},
	{Plain, DecR16SP, 0x1B, "DEC DE", 1, 2, 0},
	{Plain, IncR8, 0x1C, "INC E", 1, 1, 0},
	{Plain, DecR8, 0x1D, "DEC E", 1, 1, 0},
	{Plain, LdR8N8, 0x1E, "LD E,n8", 2, 2, 0},
	{Plain, RotA, 0x1F, "RRA", 1, 1, 0},

	// plain 0x2_
	{Plain, JrCCE8, 0x20, "JR NZ,e8", 2, 2, 1},
	{Plain, LdR16SPN16, 0x21, "LD HL,n16", 3, 3, 0},
	{Plain, LdHLRUA, 0x22, "LD (HL+),A", 1, 2, 0},
	{Plain, IncR16SP, 0x23, "INC HL", 1, 2, 0},
	{Plain, IncR8, 0x24, "INC H", 1, 1, 0},
	{Plain, DecR8, 0x25, "DEC H", 1, 1, 0},
	{Plain, LdR8N8, 0x26, "LD H,n8", 2, 2, 0},
	{Plain, Daa, 0x27, "DAA", 1, 1, 0},
	{Plain, JrCCE8, 0x28, "JR Z,e8", 2, 2, 1},
	{Plain, AddHLR16SP, 0x29, "ADD HL,HL", 1, 2, 0},
	{Plain, LdAHLRU, 0x2A, "LD A,(HL+)", 1, 2, 0},
	{Plain, DecR16SP, 0x2B, "DEC HL", 1, 2, 0},
	{Plain, IncR8, 0x2C, "INC L", 1, 1, 0},
	{Plain, DecR8, 0x2D, "DEC L", 1, 1, 0},
	{Plain, LdR8N8, 0x2E, "LD L,n8", 2, 2, 0},
	{Plain, Cpl, 0x2F, "CPL", 1, 1, 0},

	// plain 0x3_
	{Plain, JrCCE8, 0x30, "JR NC,e8", 2, 2, 1},
	{Plain, LdR16SPN16, 0x31, "LD SP,n16", 3, 3, 0},
	{Plain, LdHLRUA, 0x32, "LD (HL-),A", 1, 2, 0},
	{Plain, IncR16SP, 0x33, "INC SP", 1, 2, 0},
	{Plain, IncHLR, 0x34, "INC (HL)", 1, 3, 0},
	{Plain, DecHLR, 0x35, "DEC (HL)", 1, 3, 0},
	{Plain, LdHLRN8, 0x36, "LD (HL),n8", 2, 3, 0},
	{Plain, Sccf, 0x37, "SCF", 1, 1, 0},
	{Plain, JrCCE8, 0x38, "JR C,e8", 2, 2, 1},
	{Plain, AddHLR16SP, 0x39, "ADD HL,SP", 1, 2, 0},
	{Plain, LdAHLRU, 0x3A, "LD A,(HL-)", 1, 2, 0},
	{Plain, DecR16SP, 0x3B, "DEC SP", 1, 2, 0},
	{Plain, IncR8, 0x3C, "INC A", 1, 1, 0},
	{Plain, DecR8, 0x3D, "DEC A", 1, 1, 0},
	{Plain, LdR8N8, 0x3E, "LD A,n8", 2, 2, 0},
	{Plain, Sccf, 0x3F, "CCF", 1, 1, 0},

	// plain 0x4_
	{Plain, LdR8R8, 0x40, "LD B,B", 1, 1, 0},
	{Plain, LdR8R8, 0x41, "LD B,C", 1, 1, 0},
	{Plain, LdR8R8, 0x42, "LD B,D", 1, 1, 0},
	{Plain, LdR8R8, 0x43, "LD B,E", 1, 1, 0},
	{Plain, LdR8R8, 0x44, "LD B,H", 1, 1, 0},
	{Plain, LdR8R8, 0x45, "LD B,L", 1, 1, 0},
	{Plain, LdR8HLR, 0x46, "LD B,(HL)", 1, 2, 0},
	{Plain, LdR8R8, 0x47, "LD B,A", 1, 1, 0},
	{Plain, LdR8R8, 0x48, "LD C,B", 1, 1, 0},
	{Plain, LdR8R8, 0x49, "LD C,C", 1, 1, 0},
	{Plain, LdR8R8, 0x4A, "LD C,D", 1, 1, 0},
	{Plain, LdR8R8, 0x4B, "LD C,E", 1, 1, 0},
	{Plain, LdR8R8, 0x4C, "LD C,H", 1, 1, 0},
	{Plain, LdR8R8, 0x4D, "LD C,L", 1, 1, 0},
	{Plain, LdR8HLR, 0x4E, "LD C,(HL)", 1, 2, 0},
	{Plain, LdR8R8, 0x4F, "LD C,A", 1, 1, 0},

	// plain 0x5_
	{Plain, LdR8R8, 0x50, "LD D,B", 1, 1, 0},
	{Plain, LdR8R8, 0x51, "LD D,C", 1, 1, 0},
	{Plain, LdR8R8, 0x52, "LD D,D", 1, 1, 0},
	{Plain, LdR8R8, 0x53, "LD D,E", 1, 1, 0},
	{Plain, LdR8R8, 0x54, "LD D,H", 1, 1, 0},
	{Plain, LdR8R8, 0x55, "LD D,L", 1, 1, 0},
	{Plain, LdR8HLR, 0x56, "LD D,(HL)", 1, 2, 0},
	{Plain, LdR8R8, 0x57, "LD D,A", 1, 1, 0},
	{Plain, LdR8R8, 0x58, "LD E,B", 1, 1, 0},
	{Plain, LdR8R8, 0x59, "LD E,C", 1, 1, 0},
	{Plain, LdR8R8, 0x5A, "LD E,D", 1, 1, 0},
	{Plain, LdR8R8, 0x5B, "LD E,E", 1, 1, 0},
	{Plain, LdR8R8, 0x5C, "LD E,H", 1, 1, 0},
	{Plain, LdR8R8, 0x5D, "LD E,L", 1, 1, 0},
	{Plain, LdR8HLR, 0x5E, "LD E,(HL)", 1, 2, 0},
	{Plain, LdR8R8, 0x5F, "LD E,A", 1, 1, 0},

	// plain 0x6_
	{Plain, LdR8R8, 0x60, "LD H,B", 1, 1, 0},
	{Plain, LdR8R8, 0x61, "LD H,C", 1, 1, 0},
	{Plain, LdR8R8, 0x62, "LD H,D", 1, 1, 0},
	{Plain, LdR8R8, 0x63, "LD H,E", 1, 1, 0},
	{Plain, LdR8R8, 0x64, "LD H,H", 1, 1, 0},
	{Plain, LdR8R8, 0x65, "LD H,L", 1, 1, 0},
	{Plain, LdR8HLR, 0x66, "LD H,(HL)", 1, 2, 0},
	{Plain, LdR8R8, 0x67, "LD H,A", 1, 1, 0},
	{Plain, LdR8R8, 0x68, "LD L,B", 1, 1, 0},
	{Plain, LdR8R8, 0x69, "LD L,C", 1, 1, 0},
	{Plain, LdR8R8, 0x6A, "LD L,D", 1, 1, 0},
	{Plain, LdR8R8, 0x6B, "LD L,E", 1, 1, 0},
	{Plain, LdR8R8, 0x6C, "LD L,H", 1, 1, 0},
	{Plain, LdR8R8, 0x6D, "LD L,L", 1, 1, 0},
	{Plain, LdR8HLR, 0x6E, "LD L,(HL)", 1, 2, 0},
	{Plain, LdR8R8, 0x6F, "LD L,A", 1, 1, 0},

	// plain 0x7_
	{Plain, LdHLRR8, 0x70, "LD (HL),B", 1, 2, 0},
	{Plain, LdHLRR8, 0x71, "LD (HL),C", 1, 2, 0},
	{Plain, LdHLRR8, 0x72, "LD (HL),D", 1, 2, 0},
	{Plain, LdHLRR8, 0x73, "LD (HL),E", 1, 2, 0},
	{Plain, LdHLRR8, 0x74, "LD (HL),H", 1, 2, 0},
	{Plain, LdHLRR8, 0x75, "LD (HL),L", 1, 2, 0},
	{Plain, Halt, 0x76, "HALT", 1, 1, 0},
	{Plain, LdHLRR8, 0x77, "LD (HL),A", 1, 2, 0},
	{Plain, LdR8R8, 0x78, "LD A,B", 1, 1, 0},
	{Plain, LdR8R8, 0x79, "LD A,C", 1, 1, 0},
	{Plain, LdR8R8, 0x7A, "LD A,D", 1, 1, 0},
	{Plain, LdR8R8, 0x7B, "LD A,E", 1, 1, 0},
	{Plain, LdR8R8, 0x7C, "LD A,H", 1, 1, 0},
	{Plain, LdR8R8, 0x7D, "LD A,L", 1, 1, 0},
	{Plain, LdR8HLR, 0x7E, "LD A,(HL)", 1, 2, 0},
	{Plain, LdR8R8, 0x7F, "LD A,A", 1, 1, 0},

	// plain 0x8_
	{Plain, AddAR8, 0x80, "ADD A,B", 1, 1, 0},
	{Plain, AddAR8, 0x81, "ADD A,C", 1, 1, 0},
	{Plain, AddAR8, 0x82, "ADD A,D", 1, 1, 0},
	{Plain, AddAR8, 0x83, "ADD A,E", 1, 1, 0},
	{Plain, AddAR8, 0x84, "ADD A,H", 1, 1, 0},
	{Plain, AddAR8, 0x85, "ADD A,L", 1, 1, 0},
	{Plain, AddAHLR, 0x86, "ADD A,(HL)", 1, 2, 0},
	{Plain, AddAR8, 0x87, "ADD A,A", 1, 1, 0},
	{Plain, AddAR8, 0x88, "ADC A,B", 1, 1, 0},
	{Plain, AddAR8, 0x89, "ADC A,C", 1, 1, 0},
	{Plain, AddAR8, 0x8A, "ADC A,D", 1, 1, 0},
	{Plain, AddAR8, 0x8B, "ADC A,E", 1, 1, 0},
	{Plain, AddAR8, 0x8C, "ADC A,H", 1, 1, 0},
	{Plain, AddAR8, 0x8D, "ADC A,L", 1, 1, 0},
	{Plain, AddAHLR, 0x8E, "ADC A,(HL)", 1, 2, 0},
	{Plain, AddAR8, 0x8F, "ADC A,A", 1, 1, 0},

	// plain 0x9_
	{Plain, SubAR8, 0x90, "SUB A,B", 1, 1, 0},
	{Plain, SubAR8, 0x91, "SUB A,C", 1, 1, 0},
	{Plain, SubAR8, 0x92, "SUB A,D", 1, 1, 0},
	{Plain, SubAR8, 0x93, "SUB A,E", 1, 1, 0},
	{Plain, SubAR8, 0x94, "SUB A,H", 1, 1, 0},
	{Plain, SubAR8, 0x95, "SUB A,L", 1, 1, 0},
	{Plain, SubAHLR, 0x96, "SUB A,(HL)", 1, 2, 0},
	{Plain, SubAR8, 0x97, "SUB A,A", 1, 1, 0},
	{Plain, SubAR8, 0x98, "SBC A,B", 1, 1, 0},
	{Plain, SubAR8, 0x99, "SBC A,C", 1, 1, 0},
	{Plain, SubAR8, 0x9A, "SBC A,D", 1, 1, 0},
	{Plain, SubAR8, 0x9B, "SBC A,E", 1, 1, 0},
	{Plain, SubAR8, 0x9C, "SBC A,H", 1, 1, 0},
	{Plain, SubAR8, 0x9D, "SBC A,L", 1, 1, 0},
	{Plain, SubAHLR, 0x9E, "SBC A,(HL)", 1, 2, 0},
	{Plain, SubAR8, 0x9F, "SBC A,A", 1, 1, 0},

	// plain 0xA_
	{Plain, AndAR8, 0xA0, "AND A,B", 1, 1, 0},
	{Plain, AndAR8, 0xA1, "AND A,C", 1, 1, 0},
	{Plain, AndAR8, 0xA2, "AND A,D", 1, 1, 0},
	{Plain, AndAR8, 0xA3, "AND A,E", 1, 1, 0},
	{Plain, AndAR8, 0xA4, "AND A,H", 1, 1, 0},
	{Plain, AndAR8, 0xA5, "AND A,L", 1, 1, 0},
	{Plain, AndAHLR, 0xA6, "AND A,(HL)", 1, 2, 0},
	{Plain, AndAR8, 0xA7, "AND A,A", 1, 1, 0},
	{Plain, XorAR8, 0xA8, "XOR A,B", 1, 1, 0},
	{Plain, XorAR8, 0xA9, "XOR A,C", 1, 1, 0},
	{Plain, XorAR8, 0xAA, "XOR A,D", 1, 1, 0},
	{Plain, XorAR8, 0xAB, "XOR A,E", 1, 1, 0},
	{Plain, XorAR8, 0xAC, "XOR A,H", 1, 1, 0},
	{Plain, XorAR8, 0xAD, "XOR A,L", 1, 1, 0},
	{Plain, XorAHLR, 0xAE, "XOR A,(HL)", 1, 2, 0},
	{Plain, XorAR8, 0xAF, "XOR A,A", 1, 1, 0},

	// plain 0xB_
	{Plain, OrAR8, 0xB0, "OR A,B", 1, 1, 0},
	{Plain, OrAR8, 0xB1, "OR A,C", 1, 1, 0},
	{Plain, OrAR8, 0xB2, "OR A,D", 1, 1, 0},
	{Plain, OrAR8, 0xB3, "OR A,E", 1, 1, 0},
	{Plain, OrAR8, 0xB4, "OR A,H", 1, 1, 0},
	{Plain, OrAR8, 0xB5, "OR A,L", 1, 1, 0},
	{Plain, OrAHLR, 0xB6, "OR A,(HL)", 1, 2, 0},
	{Plain, OrAR8, 0xB7, "OR A,A", 1, 1, 0},
	{Plain, CpAR8, 0xB8, "CP A,B", 1, 1, 0},
	{Plain, CpAR8, 0xB9, "CP A,C", 1, 1, 0},
	{Plain, CpAR8, 0xBA, "CP A,D", 1, 1, 0},
	{Plain, CpAR8, 0xBB, "CP A,E", 1, 1, 0},
	{Plain, CpAR8, 0xBC, "CP A,H", 1, 1, 0},
	{Plain, CpAR8, 0xBD, "CP A,L", 1, 1, 0},
	{Plain, CpAHLR, 0xBE, "CP A,(HL)", 1, 2, 0},
	{Plain, CpAR8, 0xBF, "CP A,A", 1, 1, 0},

	// plain 0xC_
	{Plain, RetCC, 0xC0, "RET NZ", 1, 2, 3},
	{Plain, PopR16, 0xC1, "POP BC", 1, 3, 0},
	{Plain, JpCCN16, 0xC2, "JP NZ,n16", 3, 3, 1},
	{Plain, JpN16, 0xC3, "JP n16", 3, 4, 0},
	{Plain, CallCCN16, 0xC4, "CALL NZ,n16", 3, 3, 3},
	{Plain, PushR16, 0xC5, "PUSH BC", 1, 4, 0},
	{Plain, AddAN8, 0xC6, "ADD A,n8", 2, 2, 0},
	{Plain, RstU3, 0xC7, "RST $00", 1, 4, 0},
	{Plain, RetCC, 0xC8, "RET Z", 1, 2, 3},
	{Plain, Ret, 0xC9, "RET", 1, 4, 0},
	{Plain, JpCCN16, 0xCA, "JP Z,n16", 3, 3, 1},
	{Plain, CallCCN16, 0xCC, "CALL Z,n16", 3, 3, 3},
	{Plain, CallN16, 0xCD, "CALL n16", 3, 6, 0},
	{Plain, AddAN8, 0xCE, "ADC A,n8", 2, 2, 0},
	{Plain, RstU3, 0xCF, "RST $08", 1, 4, 0},

	// plain 0xD_
	{Plain, RetCC, 0xD0, "RET NC", 1, 2, 3},
	{Plain, PopR16, 0xD1, "POP DE", 1, 3, 0},
	{Plain, JpCCN16, 0xD2, "JP NC,n16", 3, 3, 1},
	{Plain, CallCCN16, 0xD4, "CALL NC,n16", 3, 3, 3},
	{Plain, PushR16, 0xD5, "PUSH DE", 1, 4, 0},
	{Plain, SubAN8, 0xD6, "SUB A,n8", 2, 2, 0},
	{Plain, RstU3, 0xD7, "RST $10", 1, 4, 0},
	{Plain, RetCC, 0xD8, "RET C", 1, 2, 3},
	{Plain, Reti, 0xD9, "RETI", 1, 4, 0},
	{Plain, JpCCN16, 0xDA, "JP C,n16", 3, 3, 1},
	{Plain, CallCCN16, 0xDC, "CALL C,n16", 3, 3, 3},
	{Plain, SubAN8, 0xDE, "SBC A,n8", 2, 2, 0},
	{Plain, RstU3, 0xDF, "RST $18", 1, 4, 0},

	// plain 0xE_
	{Plain, LdN8RA, 0xE0, "LDH (n8),A", 2, 3, 0},
	{Plain, PopR16, 0xE1, "POP HL", 1, 3, 0},
	{Plain, LdCRA, 0xE2, "LDH (C),A", 1, 2, 0},
	{Plain, PushR16, 0xE5, "PUSH HL", 1, 4, 0},
	{Plain, AndAN8, 0xE6, "AND A,n8", 2, 2, 0},
	{Plain, RstU3, 0xE7, "RST $20", 1, 4, 0},
	{Plain, LdHLSPS8, 0xE8, "ADD SP,e8", 2, 4, 0},
	{Plain, JpHL, 0xE9, "JP HL", 1, 1, 0},
	{Plain, LdN16RA, 0xEA, "LD (n16),A", 3, 4, 0},
	{Plain, XorAN8, 0xEE, "XOR A,n8", 2, 2, 0},
	{Plain, RstU3, 0xEF, "RST $28", 1, 4, 0},

	// plain 0xF_
	{Plain, LdAN8R, 0xF0, "LDH A,(n8)", 2, 3, 0},
	{Plain, PopR16, 0xF1, "POP AF", 1, 3, 0},
	{Plain, LdACR, 0xF2, "LDH A,(C)", 1, 2, 0},
	{Plain, Edi, 0xF3, "DI", 1, 1, 0},
	{Plain, PushR16, 0xF5, "PUSH AF", 1, 4, 0},
	{Plain, OrAN8, 0xF6, "OR A,n8", 2, 2, 0},
	{Plain, RstU3, 0xF7, "RST $30", 1, 4, 0},
	{Plain, LdHLSPS8, 0xF8, "LD HL,SP+e8", 2, 3, 0},
	{Plain, LdSPHL, 0xF9, "LD SP,HL", 1, 2, 0},
	{Plain, LdAN16R, 0xFA, "LD A,(n16)", 3, 4, 0},
	{Plain, Edi, 0xFB, "EI", 1, 1, 0},
	{Plain, CpAN8, 0xFE, "CP A,n8", 2, 2, 0},
	{Plain, RstU3, 0xFF, "RST $38", 1, 4, 0},

	// prefixed 0x0_
	{Prefixed, RotCR8, 0x00, "RLC B", 2, 2, 0},
	{Prefixed, RotCR8, 0x01, "RLC C", 2, 2, 0},
	{Prefixed, RotCR8, 0x02, "RLC D", 2, 2, 0},
	{Prefixed, RotCR8, 0x03, "RLC E", 2, 2, 0},
	{Prefixed, RotCR8, 0x04, "RLC H", 2, 2, 0},
	{Prefixed, RotCR8, 0x05, "RLC L", 2, 2, 0},
	{Prefixed, RotCHLR, 0x06, "RLC (HL)", 2, 4, 0},
	{Prefixed, RotCR8, 0x07, "RLC A", 2, 2, 0},
	{Prefixed, RotCR8, 0x08, "RRC B", 2, 2, 0},
	{Prefixed, RotCR8, 0x09, "RRC C", 2, 2, 0},
	{Prefixed, RotCR8, 0x0A, "RRC D", 2, 2, 0},
	{Prefixed, RotCR8, 0x0B, "RRC E", 2, 2, 0},
	{Prefixed, RotCR8, 0x0C, "RRC H", 2, 2, 0},
	{Prefixed, RotCR8, 0x0D, "RRC L", 2, 2, 0},
	{Prefixed, RotCHLR, 0x0E, "RRC (HL)", 2, 4, 0},
	{Prefixed, RotCR8, 0x0F, "RRC A", 2, 2, 0},

	// prefixed 0x1_
	{Prefixed, RotR8, 0x10, "RL B", 2, 2, 0},
	{Prefixed, RotR8, 0x11, "RL C", 2, 2, 0},
	{Prefixed, RotR8, 0x12, "RL D", 2, 2, 0},
	{Prefixed, RotR8, 0x13, "RL E", 2, 2, 0},
	{Prefixed, RotR8, 0x14, "RL H", 2, 2, 0},
	{Prefixed, RotR8, 0x15, "RL L", 2, 2, 0},
	{Prefixed, RotHLR, 0x16, "RL (HL)", 2, 4, 0},
	{Prefixed, RotR8, 0x17, "RL A", 2, 2, 0},
	{Prefixed, RotR8, 0x18, "RR B", 2, 2, 0},
	{Prefixed, RotR8, 0x19, "RR C", 2, 2, 0},
	{Prefixed, RotR8, 0x1A, "RR D", 2, 2, 0},
	{Prefixed, RotR8, 0x1B, "RR E", 2, 2, 0},
	{Prefixed, RotR8, 0x1C, "RR H", 2, 2, 0},
	{Prefixed, RotR8, 0x1D, "RR L", 2, 2, 0},
	{Prefixed, RotHLR, 0x1E, "RR (HL)", 2, 4, 0},
	{Prefixed, RotR8, 0x1F, "RR A", 2, 2, 0},

	// prefixed 0x2_
	{Prefixed, SlaR8, 0x20, "SLA B", 2, 2, 0},
	{Prefixed, SlaR8, 0x21, "SLA C", 2, 2, 0},
	{Prefixed, SlaR8, 0x22, "SLA D", 2, 2, 0},
	{Prefixed, SlaR8, 0x23, "SLA E", 2, 2, 0},
	{Prefixed, SlaR8, 0x24, "SLA H", 2, 2, 0},
	{Prefixed, SlaR8, 0x25, "SLA L", 2, 2, 0},
	{Prefixed, SlaHLR, 0x26, "SLA (HL)", 2, 4, 0},
	{Prefixed, SlaR8, 0x27, "SLA A", 2, 2, 0},
	{Prefixed, SraR8, 0x28, "SRA B", 2, 2, 0},
	{Prefixed, SraR8, 0x29, "SRA C", 2, 2, 0},
	{Prefixed, SraR8, 0x2A, "SRA D", 2, 2, 0},
	{Prefixed, SraR8, 0x2B, "SRA E", 2, 2, 0},
	{Prefixed, SraR8, 0x2C, "SRA H", 2, 2, 0},
	{Prefixed, SraR8, 0x2D, "SRA L", 2, 2, 0},
	{Prefixed, SraHLR, 0x2E, "SRA (HL)", 2, 4, 0},
	{Prefixed, SraR8, 0x2F, "SRA A", 2, 2, 0},

	// prefixed 0x3_
	{Prefixed, SwapR8, 0x30, "SWAP B", 2, 2, 0},
	{Prefixed, SwapR8, 0x31, "SWAP C", 2, 2, 0},
	{Prefixed, SwapR8, 0x32, "SWAP D", 2, 2, 0},
	{Prefixed, SwapR8, 0x33, "SWAP E", 2, 2, 0},
	{Prefixed, SwapR8, 0x34, "SWAP H", 2, 2, 0},
	{Prefixed, SwapR8, 0x35, "SWAP L", 2, 2, 0},
	{Prefixed, SwapHLR, 0x36, "SWAP (HL)", 2, 4, 0},
	{Prefixed, SwapR8, 0x37, "SWAP A", 2, 2, 0},
	{Prefixed, SrlR8, 0x38, "SRL B", 2, 2, 0},
	{Prefixed, SrlR8, 0x39, "SRL C", 2, 2, 0},
	{Prefixed, SrlR8, 0x3A, "SRL D", 2, 2, 0},
	{Prefixed, SrlR8, 0x3B, "SRL E", 2, 2, 0},
	{Prefixed, SrlR8, 0x3C, "SRL H", 2, 2, 0},
	{Prefixed, SrlR8, 0x3D, "SRL L", 2, 2, 0},
	{Prefixed, SrlHLR, 0x3E, "SRL (HL)", 2, 4, 0},
	{Prefixed, SrlR8, 0x3F, "SRL A", 2, 2, 0},

	// prefixed 0x4_
	{Prefixed, BitU3R8, 0x40, "BIT 0,B", 2, 2, 0},
	{Prefixed, BitU3R8, 0x41, "BIT 0,C", 2, 2, 0},
	{Prefixed, BitU3R8, 0x42, "BIT 0,D", 2, 2, 0},
	{Prefixed, BitU3R8, 0x43, "BIT 0,E", 2, 2, 0},
	{Prefixed, BitU3R8, 0x44, "BIT 0,H", 2, 2, 0},
	{Prefixed, BitU3R8, 0x45, "BIT 0,L", 2, 2, 0},
	{Prefixed, BitU3HLR, 0x46, "BIT 0,(HL)", 2, 3, 0},
	{Prefixed, BitU3R8, 0x47, "BIT 0,A", 2, 2, 0},
	{Prefixed, BitU3R8, 0x48, "BIT 1,B", 2, 2, 0},
	{Prefixed, BitU3R8, 0x49, "BIT 1,C", 2, 2, 0},
	{Prefixed, BitU3R8, 0x4A, "BIT 1,D", 2, 2, 0},
	{Prefixed, BitU3R8, 0x4B, "BIT 1,E", 2, 2, 0},
	{Prefixed, BitU3R8, 0x4C, "BIT 1,H", 2, 2, 0},
	{Prefixed, BitU3R8, 0x4D, "BIT 1,L", 2, 2, 0},
	{Prefixed, BitU3HLR, 0x4E, "BIT 1,(HL)", 2, 3, 0},
	{Prefixed, BitU3R8, 0x4F, "BIT 1,A", 2, 2, 0},

	// prefixed 0x5_
	{Prefixed, BitU3R8, 0x50, "BIT 2,B", 2, 2, 0},
	{Prefixed, BitU3R8, 0x51, "BIT 2,C", 2, 2, 0},
	{Prefixed, BitU3R8, 0x52, "BIT 2,D", 2, 2, 0},
	{Prefixed, BitU3R8, 0x53, "BIT 2,E", 2, 2, 0},
	{Prefixed, BitU3R8, 0x54, "BIT 2,H", 2, 2, 0},
	{Prefixed, BitU3R8, 0x55, "BIT 2,L", 2, 2, 0},
	{Prefixed, BitU3HLR, 0x56, "BIT 2,(HL)", 2, 3, 0},
	{Prefixed, BitU3R8, 0x57, "BIT 2,A", 2, 2, 0},
	{Prefixed, BitU3R8, 0x58, "BIT 3,B", 2, 2, 0},
	{Prefixed, BitU3R8, 0x59, "BIT 3,C", 2, 2, 0},
	{Prefixed, BitU3R8, 0x5A, "BIT 3,D", 2, 2, 0},
	{Prefixed, BitU3R8, 0x5B, "BIT 3,E", 2, 2, 0},
	{Prefixed, BitU3R8, 0x5C, "BIT 3,H", 2, 2, 0},
	{Prefixed, BitU3R8, 0x5D, "BIT 3,L", 2, 2, 0},
	{Prefixed, BitU3HLR, 0x5E, "BIT 3,(HL)", 2, 3, 0},
	{Prefixed, BitU3R8, 0x5F, "BIT 3,A", 2, 2, 0},

	// prefixed 0x6_
	{Prefixed, BitU3R8, 0x60, "BIT 4,B", 2, 2, 0},
	{Prefixed, BitU3R8, 0x61, "BIT 4,C", 2, 2, 0},
	{Prefixed, BitU3R8, 0x62, "BIT 4,D", 2, 2, 0},
	{Prefixed, BitU3R8, 0x63, "BIT 4,E", 2, 2, 0},
	{Prefixed, BitU3R8, 0x64, "BIT 4,H", 2, 2, 0},
	{Prefixed, BitU3R8, 0x65, "BIT 4,L", 2, 2, 0},
	{Prefixed, BitU3HLR, 0x66, "BIT 4,(HL)", 2, 3, 0},
	{Prefixed, BitU3R8, 0x67, "BIT 4,A", 2, 2, 0},
	{Prefixed, BitU3R8, 0x68, "BIT 5,B", 2, 2, 0},
	{Prefixed, BitU3R8, 0x69, "BIT 5,C", 2, 2, 0},
	{Prefixed, BitU3R8, 0x6A, "BIT 5,D", 2, 2, 0},
	{Prefixed, BitU3R8, 0x6B, "BIT 5,E", 2, 2, 0},
	{Prefixed, BitU3R8, 0x6C, "BIT 5,H", 2, 2, 0},
	{Prefixed, BitU3R8, 0x6D, "BIT 5,L", 2, 2, 0},
	{Prefixed, BitU3HLR, 0x6E, "BIT 5,(HL)", 2, 3, 0},
	{Prefixed, BitU3R8, 0x6F, "BIT 5,A", 2, 2, 0},

	// prefixed 0x7_
	{Prefixed, BitU3R8, 0x70, "BIT 6,B", 2, 2, 0},
	{Prefixed, BitU3R8, 0x71, "BIT 6,C", 2, 2, 0},
	{Prefixed, BitU3R8, 0x72, "BIT 6,D", 2, 2, 0},
	{Prefixed, BitU3R8, 0x73, "BIT 6,E", 2, 2, 0},
	{Prefixed, BitU3R8, 0x74, "BIT 6,H", 2, 2, 0},
	{Prefixed, BitU3R8, 0x75, "BIT 6,L", 2, 2, 0},
	{Prefixed, BitU3HLR, 0x76, "BIT 6,(HL)", 2, 3, 0},
	{Prefixed, BitU3R8, 0x77, "BIT 6,A", 2, 2, 0},
	{Prefixed, BitU3R8, 0x78, "BIT 7,B", 2, 2, 0},
	{Prefixed, BitU3R8, 0x79, "BIT 7,C", 2, 2, 0},
	{Prefixed, BitU3R8, 0x7A, "BIT 7,D", 2, 2, 0},
	{Prefixed, BitU3R8, 0x7B, "BIT 7,E", 2, 2, 0},
	{Prefixed, BitU3R8, 0x7C, "BIT 7,H", 2, 2, 0},
	{Prefixed, BitU3R8, 0x7D, "BIT 7,L", 2, 2, 0},
	{Prefixed, BitU3HLR, 0x7E, "BIT 7,(HL)", 2, 3, 0},
	{Prefixed, BitU3R8, 0x7F, "BIT 7,A", 2, 2, 0},

	// prefixed 0x8_
	{Prefixed, ChgU3R8, 0x80, "RES 0,B", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x81, "RES 0,C", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x82, "RES 0,D", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x83, "RES 0,E", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x84, "RES 0,H", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x85, "RES 0,L", 2, 2, 0},
	{Prefixed, ChgU3HLR, 0x86, "RES 0,(HL)", 2, 4, 0},
	{Prefixed, ChgU3R8, 0x87, "RES 0,A", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x88, "RES 1,B", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x89, "RES 1,C", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x8A, "RES 1,D", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x8B, "RES 1,E", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x8C, "RES 1,H", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x8D, "RES 1,L", 2, 2, 0},
	{Prefixed, ChgU3HLR, 0x8E, "RES 1,(HL)", 2, 4, 0},
	{Prefixed, ChgU3R8, 0x8F, "RES 1,A", 2, 2, 0},

	// prefixed 0x9_
	{Prefixed, ChgU3R8, 0x90, "RES 2,B", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x91, "RES 2,C", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x92, "RES 2,D", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x93, "RES 2,E", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x94, "RES 2,H", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x95, "RES 2,L", 2, 2, 0},
	{Prefixed, ChgU3HLR, 0x96, "RES 2,(HL)", 2, 4, 0},
	{Prefixed, ChgU3R8, 0x97, "RES 2,A", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x98, "RES 3,B", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x99, "RES 3,C", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x9A, "RES 3,D", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x9B, "RES 3,E", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x9C, "RES 3,H", 2, 2, 0},
	{Prefixed, ChgU3R8, 0x9D, "RES 3,L", 2, 2, 0},
	{Prefixed, ChgU3HLR, 0x9E, "RES 3,(HL)", 2, 4, 0},
	{Prefixed, ChgU3R8, 0x9F, "RES 3,A", 2, 2, 0},

	// prefixed 0xA_
	{Prefixed, ChgU3R8, 0xA0, "RES 4,B", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xA1, "RES 4,C", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xA2, "RES 4,D", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xA3, "RES 4,E", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xA4, "RES 4,H", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xA5, "RES 4,L", 2, 2, 0},
	{Prefixed, ChgU3HLR, 0xA6, "RES 4,(HL)", 2, 4, 0},
	{Prefixed, ChgU3R8, 0xA7, "RES 4,A", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xA8, "RES 5,B", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xA9, "RES 5,C", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xAA, "RES 5,D", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xAB, "RES 5,E", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xAC, "RES 5,H", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xAD, "RES 5,L", 2, 2, 0},
	{Prefixed, ChgU3HLR, 0xAE, "RES 5,(HL)", 2, 4, 0},
	{Prefixed, ChgU3R8, 0xAF, "RES 5,A", 2, 2, 0},

	// prefixed 0xB_
	{Prefixed, ChgU3R8, 0xB0, "RES 6,B", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xB1, "RES 6,C", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xB2, "RES 6,D", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xB3, "RES 6,E", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xB4, "RES 6,H", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xB5, "RES 6,L", 2, 2, 0},
	{Prefixed, ChgU3HLR, 0xB6, "RES 6,(HL)", 2, 4, 0},
	{Prefixed, ChgU3R8, 0xB7, "RES 6,A", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xB8, "RES 7,B", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xB9, "RES 7,C", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xBA, "RES 7,D", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xBB, "RES 7,E", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xBC, "RES 7,H", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xBD, "RES 7,L", 2, 2, 0},
	{Prefixed, ChgU3HLR, 0xBE, "RES 7,(HL)", 2, 4, 0},
	{Prefixed, ChgU3R8, 0xBF, "RES 7,A", 2, 2, 0},

	// prefixed 0xC_
	{Prefixed, ChgU3R8, 0xC0, "SET 0,B", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xC1, "SET 0,C", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xC2, "SET 0,D", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xC3, "SET 0,E", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xC4, "SET 0,H", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xC5, "SET 0,L", 2, 2, 0},
	{Prefixed, ChgU3HLR, 0xC6, "SET 0,(HL)", 2, 4, 0},
	{Prefixed, ChgU3R8, 0xC7, "SET 0,A", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xC8, "SET 1,B", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xC9, "SET 1,C", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xCA, "SET 1,D", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xCB, "SET 1,E", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xCC, "SET 1,H", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xCD, "SET 1,L", 2, 2, 0},
	{Prefixed, ChgU3HLR, 0xCE, "SET 1,(HL)", 2, 4, 0},
	{Prefixed, ChgU3R8, 0xCF, "SET 1,A", 2, 2, 0},

	// prefixed 0xD_
	{Prefixed, ChgU3R8, 0xD0, "SET 2,B", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xD1, "SET 2,C", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xD2, "SET 2,D", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xD3, "SET 2,E", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xD4, "SET 2,H", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xD5, "SET 2,L", 2, 2, 0},
	{Prefixed, ChgU3HLR, 0xD6, "SET 2,(HL)", 2, 4, 0},
	{Prefixed, ChgU3R8, 0xD7, "SET 2,A", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xD8, "SET 3,B", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xD9, "SET 3,C", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xDA, "SET 3,D", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xDB, "SET 3,E", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xDC, "SET 3,H", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xDD, "SET 3,L", 2, 2, 0},
	{Prefixed, ChgU3HLR, 0xDE, "SET 3,(HL)", 2, 4, 0},
	{Prefixed, ChgU3R8, 0xDF, "SET 3,A", 2, 2, 0},

	// prefixed 0xE_
	{Prefixed, ChgU3R8, 0xE0, "SET 4,B", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xE1, "SET 4,C", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xE2, "SET 4,D", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xE3, "SET 4,E", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xE4, "SET 4,H", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xE5, "SET 4,L", 2, 2, 0},
	{Prefixed, ChgU3HLR, 0xE6, "SET 4,(HL)", 2, 4, 0},
	{Prefixed, ChgU3R8, 0xE7, "SET 4,A", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xE8, "SET 5,B", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xE9, "SET 5,C", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xEA, "SET 5,D", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xEB, "SET 5,E", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xEC, "SET 5,H", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xED, "SET 5,L", 2, 2, 0},
	{Prefixed, ChgU3HLR, 0xEE, "SET 5,(HL)", 2, 4, 0},
	{Prefixed, ChgU3R8, 0xEF, "SET 5,A", 2, 2, 0},

	// prefixed 0xF_
	{Prefixed, ChgU3R8, 0xF0, "SET 6,B", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xF1, "SET 6,C", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xF2, "SET 6,D", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xF3, "SET 6,E", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xF4, "SET 6,H", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xF5, "SET 6,L", 2, 2, 0},
	{Prefixed, ChgU3HLR, 0xF6, "SET 6,(HL)", 2, 4, 0},
	{Prefixed, ChgU3R8, 0xF7, "SET 6,A", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xF8, "SET 7,B", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xF9, "SET 7,C", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xFA, "SET 7,D", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xFB, "SET 7,E", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xFC, "SET 7,H", 2, 2, 0},
	{Prefixed, ChgU3R8, 0xFD, "SET 7,L", 2, 2, 0},
	{Prefixed, ChgU3HLR, 0xFE, "SET 7,(HL)", 2, 4, 0},
	{Prefixed, ChgU3R8, 0xFF, "SET 7,A", 2, 2, 0},
}
