package cpu

// Opcodes for various instructions. Base values are combined with a
// register number, a ModRM byte or a group extension by the encoder.
const (
	// Arithmetic and logical groups: base plus 0..5 selects the form.
	OPADD = 0x00 // ADD
	OPOR  = 0x08 // OR
	OPADC = 0x10 // ADC
	OPSBB = 0x18 // SBB
	OPAND = 0x20 // AND
	OPSUB = 0x28 // SUB
	OPXOR = 0x30 // XOR
	OPCMP = 0x38 // CMP

	OPGroup1Byte = 0x80 // ALU r/m8, imm8 (/0../7)
	OPGroup1Word = 0x81 // ALU r/m16, imm16
	OPGroup3Byte = 0xF6 // TEST/NOT/NEG/MUL/IMUL/DIV/IDIV r/m8
	OPGroup3Word = 0xF7 // same, r/m16
	OPGroup4     = 0xFE // INC/DEC r/m8
	OPGroup5     = 0xFF // INC/DEC/CALL/JMP/PUSH r/m16

	OPINCReg = 0x40 // INC r16
	OPDECReg = 0x48 // DEC r16
	OPCBW    = 0x98 // CBW
	OPCWD    = 0x99 // CWD

	OPTESTRM8  = 0x84 // TEST r/m8, r8
	OPTESTRM16 = 0x85 // TEST r/m16, r16
	OPTESTAL   = 0xA8 // TEST AL, imm8
	OPTESTAX   = 0xA9 // TEST AX, imm16

	// Shifts and rotates.
	OPShift1Byte  = 0xD0 // r/m8, 1
	OPShift1Word  = 0xD1 // r/m16, 1
	OPShiftCLByte = 0xD2 // r/m8, CL
	OPShiftCLWord = 0xD3 // r/m16, CL
	OPShiftIByte  = 0xC0 // r/m8, imm8
	OPShiftIWord  = 0xC1 // r/m16, imm8

	// Move instructions.
	OPMOVRM8    = 0x88 // MOV r/m8, r8
	OPMOVRM16   = 0x89 // MOV r/m16, r16
	OPMOVReg8   = 0x8A // MOV r8, r/m8
	OPMOVReg16  = 0x8B // MOV r16, r/m16
	OPMOVFromSR = 0x8C // MOV r/m16, sreg
	OPMOVToSR   = 0x8E // MOV sreg, r/m16
	OPMOVImm8   = 0xB0 // MOV r8, imm8 (+r)
	OPMOVImm16  = 0xB8 // MOV r16, imm16 (+r)
	OPMOVRMImm8 = 0xC6 // MOV r/m8, imm8
	OPMOVRMImm  = 0xC7 // MOV r/m16, imm16
	OPXCHGAX    = 0x90 // XCHG AX, r16 (+r)
	OPXCHG8     = 0x86 // XCHG r/m8, r8
	OPXCHG16    = 0x87 // XCHG r/m16, r16
	OPLEA       = 0x8D // LEA
	OPLDS       = 0xC5 // LDS
	OPLES       = 0xC4 // LES
	OPXLATB     = 0xD7 // XLATB

	// Stack instructions.
	OPPUSHReg = 0x50 // PUSH r16 (+r)
	OPPOPReg  = 0x58 // POP r16 (+r)
	OPPUSHSeg = 0x06 // PUSH sreg (+sreg<<3)
	OPPOPSeg  = 0x07 // POP sreg (+sreg<<3)
	OPPOPRM   = 0x8F // POP r/m16
	OPPUSHImm = 0x68 // PUSH imm16
	OPPUSHA   = 0x60 // PUSHA
	OPPOPA    = 0x61 // POPA
	OPBOUND   = 0x62 // BOUND
	OPPUSHF   = 0x9C // PUSHF
	OPPOPF    = 0x9D // POPF
	OPENTER   = 0xC8 // ENTER
	OPLEAVE   = 0xC9 // LEAVE

	// Control transfer.
	OPJcc    = 0x70 // Jcc rel8 (+condition)
	OPLOOPNE = 0xE0 // LOOPNE rel8
	OPLOOPE  = 0xE1 // LOOPE rel8
	OPLOOP   = 0xE2 // LOOP rel8
	OPJCXZ   = 0xE3 // JCXZ rel8
	OPCALL   = 0xE8 // CALL rel16
	OPJMP    = 0xE9 // JMP rel16
	OPJMPS   = 0xEB // JMP rel8
	OPRETImm = 0xC2 // RET imm16
	OPRET    = 0xC3 // RET
	OPRETFI  = 0xCA // RETF imm16
	OPRETF   = 0xCB // RETF
	OPINT3   = 0xCC // INT3
	OPINT    = 0xCD // INT imm8
	OPINTO   = 0xCE // INTO
	OPIRET   = 0xCF // IRET

	// Port I/O.
	OPINALImm  = 0xE4
	OPINAXImm  = 0xE5
	OPOUTImmAL = 0xE6
	OPOUTImmAX = 0xE7
	OPINALDX   = 0xEC
	OPINAXDX   = 0xED
	OPOUTDXAL  = 0xEE
	OPOUTDXAX  = 0xEF

	// String instructions.
	OPINSB  = 0x6C
	OPINSW  = 0x6D
	OPOUTSB = 0x6E
	OPOUTSW = 0x6F
	OPMOVSB = 0xA4
	OPMOVSW = 0xA5
	OPCMPSB = 0xA6
	OPCMPSW = 0xA7
	OPSTOSB = 0xAA
	OPSTOSW = 0xAB
	OPLODSB = 0xAC
	OPLODSW = 0xAD
	OPSCASB = 0xAE
	OPSCASW = 0xAF

	// BCD adjustment.
	OPDAA = 0x27
	OPDAS = 0x2F
	OPAAA = 0x37
	OPAAS = 0x3F
	OPAAM = 0xD4
	OPAAD = 0xD5

	// Flags and processor control.
	OPNOP   = 0x90
	OPWAIT  = 0x9B
	OPSAHF  = 0x9E
	OPLAHF  = 0x9F
	OPSALC  = 0xD6
	OPHLT   = 0xF4
	OPCMC   = 0xF5
	OPCLC   = 0xF8
	OPSTC   = 0xF9
	OPCLI   = 0xFA
	OPSTI   = 0xFB
	OPCLD   = 0xFC
	OPSTD   = 0xFD
	OPTwo   = 0x0F // two-byte opcode escape
	OPCLTS2 = 0x06 // second byte of CLTS
)

// Group extensions placed in the ModRM reg field.
const (
	ExtADD = 0
	ExtOR  = 1
	ExtADC = 2
	ExtSBB = 3
	ExtAND = 4
	ExtSUB = 5
	ExtXOR = 6
	ExtCMP = 7

	ExtTEST = 0
	ExtNOT  = 2
	ExtNEG  = 3
	ExtMUL  = 4
	ExtIMUL = 5
	ExtDIV  = 6
	ExtIDIV = 7

	ExtINC     = 0
	ExtDEC     = 1
	ExtCALL    = 2
	ExtCALLFar = 3
	ExtJMP     = 4
	ExtJMPFar  = 5
	ExtPUSH    = 6

	ExtROL = 0
	ExtROR = 1
	ExtRCL = 2
	ExtRCR = 3
	ExtSHL = 4
	ExtSHR = 5
	ExtSAR = 7
)

// Far immediate forms take an offset word followed by a segment word.
const (
	OPCALLFar = 0x9A // CALL ptr16:16
	OPJMPFar  = 0xEA // JMP ptr16:16
)

// ConditionCodes maps condition suffixes to the low nibble of Jcc.
var ConditionCodes = map[string]uint8{
	"O":  0x0, // overflow
	"NO": 0x1, // not overflow
	"B":  0x2, // below (carry)
	"AE": 0x3, // above or equal (no carry)
	"E":  0x4, // equal (zero)
	"NE": 0x5, // not equal
	"BE": 0x6, // below or equal
	"A":  0x7, // above
	"S":  0x8, // sign
	"NS": 0x9, // not sign
	"P":  0xA, // parity even
	"NP": 0xB, // parity odd
	"L":  0xC, // less
	"GE": 0xD, // greater or equal
	"LE": 0xE, // less or equal
	"G":  0xF, // greater
}
