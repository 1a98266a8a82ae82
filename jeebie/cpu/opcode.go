package cpu

import "fmt"

// Kind separates the two instruction spaces: plain opcodes and the ones
// that follow the 0xCB prefix byte.
type Kind uint8

const (
	Plain Kind = iota
	Prefixed
)

// PrefixByte introduces a prefixed opcode.
const PrefixByte uint8 = 0xCB

func (k Kind) String() string {
	if k == Prefixed {
		return "prefixed"
	}
	return "plain"
}

// Family groups opcodes that share the same semantics and only differ in
// the operands selected by bit fields of their encoding.
type Family uint8

const (
	Nop Family = iota

	// loads
	LdR8HLR
	LdAHLRU
	LdAN8R
	LdACR
	LdAN16R
	LdABCR
	LdADER
	LdR8N8
	LdR16SPN16
	PopR16
	LdHLRR8
	LdHLRUA
	LdN8RA
	LdCRA
	LdN16RA
	LdBCRA
	LdDERA
	LdHLRN8
	LdN16RSP
	LdR8R8
	LdSPHL
	PushR16

	// add, inc
	AddAR8
	AddAN8
	AddAHLR
	IncR8
	IncHLR
	IncR16SP
	AddHLR16SP
	LdHLSPS8

	// sub, dec, compare
	SubAR8
	SubAN8
	SubAHLR
	DecR8
	DecHLR
	CpAR8
	CpAN8
	CpAHLR
	DecR16SP

	// logic
	AndAR8
	AndAN8
	AndAHLR
	OrAR8
	OrAN8
	OrAHLR
	XorAR8
	XorAN8
	XorAHLR
	Cpl

	// rotations and shifts
	RotCA
	RotA
	RotCR8
	RotR8
	RotCHLR
	RotHLR
	SwapR8
	SwapHLR
	SlaR8
	SraR8
	SrlR8
	SlaHLR
	SraHLR
	SrlHLR

	// bit tests and changes
	BitU3R8
	BitU3HLR
	ChgU3R8
	ChgU3HLR

	// flags
	Daa
	Sccf

	// jumps, calls, returns
	JpHL
	JpN16
	JpCCN16
	JrE8
	JrCCE8
	CallN16
	CallCCN16
	RstU3
	Ret
	RetCC
	Reti

	// control
	Edi
	Halt
	Stop

	familyCount
)

var familyNames = [familyCount]string{
	"NOP", "LD_R8_HLR", "LD_A_HLRU", "LD_A_N8R", "LD_A_CR", "LD_A_N16R", "LD_A_BCR", "LD_A_DER",
	"LD_R8_N8", "LD_R16SP_N16", "POP_R16", "LD_HLR_R8", "LD_HLRU_A", "LD_N8R_A", "LD_CR_A",
	"LD_N16R_A", "LD_BCR_A", "LD_DER_A", "LD_HLR_N8", "LD_N16R_SP", "LD_R8_R8", "LD_SP_HL", "PUSH_R16",
	"ADD_A_R8", "ADD_A_N8", "ADD_A_HLR", "INC_R8", "INC_HLR", "INC_R16SP", "ADD_HL_R16SP", "LD_HLSP_S8",
	"SUB_A_R8", "SUB_A_N8", "SUB_A_HLR", "DEC_R8", "DEC_HLR", "CP_A_R8", "CP_A_N8", "CP_A_HLR", "DEC_R16SP",
	"AND_A_R8", "AND_A_N8", "AND_A_HLR", "OR_A_R8", "OR_A_N8", "OR_A_HLR", "XOR_A_R8", "XOR_A_N8", "XOR_A_HLR", "CPL",
	"ROTCA", "ROTA", "ROTC_R8", "ROT_R8", "ROTC_HLR", "ROT_HLR", "SWAP_R8", "SWAP_HLR",
	"SLA_R8", "SRA_R8", "SRL_R8", "SLA_HLR", "SRA_HLR", "SRL_HLR",
	"BIT_U3_R8", "BIT_U3_HLR", "CHG_U3_R8", "CHG_U3_HLR",
	"DAA", "SCCF",
	"JP_HL", "JP_N16", "JP_CC_N16", "JR_E8", "JR_CC_E8", "CALL_N16", "CALL_CC_N16", "RST_U3", "RET", "RET_CC", "RETI",
	"EDI", "HALT", "STOP",
}

func (f Family) String() string {
	if f >= familyCount {
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
	return familyNames[f]
}

// Opcode describes one instruction encoding. Mnemonic uses n8, n16 and e8
// as placeholders for the immediate operand.
type Opcode struct {
	Kind        Kind
	Family      Family
	Encoding    uint8
	Mnemonic    string
	Length      uint8
	Cycles      uint8
	ExtraCycles uint8
}

// Valid reports whether the descriptor names a real instruction. The zero
// value fills the table slots of illegal encodings.
func (o Opcode) Valid() bool {
	return o.Length != 0
}

func (o Opcode) String() string {
	if o.Kind == Prefixed {
		return fmt.Sprintf("0xCB%02X %s", o.Encoding, o.Mnemonic)
	}
	return fmt.Sprintf("0x%02X %s", o.Encoding, o.Mnemonic)
}

// PlainOpcodes and PrefixedOpcodes index the catalog by encoding.
// They are filled once at init and must be treated as read only.
var (
	PlainOpcodes    [256]Opcode
	PrefixedOpcodes [256]Opcode
)

func init() {
	for _, op := range catalog {
		table := &PlainOpcodes
		if op.Kind == Prefixed {
			table = &PrefixedOpcodes
		}
		if table[op.Encoding].Valid() {
			panic(fmt.Sprintf("duplicate %s opcode 0x%02X", op.Kind, op.Encoding))
		}
		table[op.Encoding] = op
	}
}

// Lookup returns the descriptor of the given encoding, false when the
// encoding is illegal.
func Lookup(kind Kind, encoding uint8) (Opcode, bool) {
	op := PlainOpcodes[encoding]
	if kind == Prefixed {
		op = PrefixedOpcodes[encoding]
	}
	return op, op.Valid()
}
