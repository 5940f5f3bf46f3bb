package assembler_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/Urethramancer/msa86/assembler"
)

// Assembles source at 0x100 and checks against an expected byte sequence (in hex).
// Fails on any error diagnostic.
func assembleAndMatchHex(t *testing.T, name, src, expectedHex string) {
	t.Helper()

	expectedHex = strings.ToLower(strings.Join(strings.Fields(expectedHex), ""))
	expected, err := hex.DecodeString(expectedHex)
	if err != nil {
		t.Fatalf("[%s] invalid expected hex string: %v", name, err)
	}

	code, res, err := assembler.Assemble(src, assembler.DefaultConfig())
	if err != nil {
		t.Fatalf("[%s] failed to assemble:\n%s\nerror: %v", name, src, err)
	}
	if res.Errors > 0 {
		t.Fatalf("[%s] %d errors assembling:\n%s\ndiagnostics: %v", name, res.Errors, src, res.Diagnostics)
	}
	if len(code) != len(expected) {
		t.Fatalf("[%s] expected %d bytes, got %d\nexpected: % X\ngot:      % X",
			name, len(expected), len(code), expected, code)
	}
	for i := range code {
		if code[i] != expected[i] {
			t.Errorf("[%s] mismatch at byte %d\nexpected: % X\ngot:      % X",
				name, i, expected, code)
			break
		}
	}
}

// Register to register and immediate forms
func TestBasicEncodings(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		{"MOV_AX_BX", "mov ax,bx", "89 D8"},
		{"MOV_AL_Imm", "mov al,5", "B0 05"},
		{"MOV_CX_Imm", "mov cx,0x1234", "B9 34 12"},
		{"MOV_DS_AX", "mov ds,ax", "8E D8"},
		{"MOV_AX_ES", "mov ax,es", "8C C0"},
		{"ADD_AL_Imm", "add al,1", "04 01"},
		{"ADD_AX_Imm", "add ax,1", "05 01 00"},
		{"ADD_BX_Imm", "add bx,1", "81 C3 01 00"},
		{"SUB_CX_DX", "sub cx,dx", "29 D1"},
		{"CMP_AL_BL", "cmp al,bl", "38 D8"},
		{"CMP_AX_Imm", "cmp ax,1000", "3D E8 03"},
		{"XOR_AX_AX", "xor ax,ax", "31 C0"},
		{"AND_AL_Imm", "and al,0x0F", "24 0F"},
		{"OR_DX_Imm", "or dx,0x8000", "81 CA 00 80"},
		{"ADC_SBB", "adc ax,bx\nsbb al,cl", "11 D8 18 C8"},
		{"INC_AX", "inc ax", "40"},
		{"DEC_SI", "dec si", "4E"},
		{"INC_AL", "inc al", "FE C0"},
		{"NEG_AX", "neg ax", "F7 D8"},
		{"NOT_AX", "not ax", "F7 D0"},
		{"MUL_BL", "mul bl", "F6 E3"},
		{"DIV_CX", "div cx", "F7 F1"},
		{"TEST_AL_Imm", "test al,1", "A8 01"},
		{"TEST_BX_CX", "test bx,cx", "85 CB"},
		{"XCHG_AX_BX", "xchg ax,bx", "93"},
		{"XCHG_BX_AX", "xchg bx,ax", "93"},
		{"XCHG_AL_BL", "xchg al,bl", "86 D8"},
		{"SHL_AX_CL", "shl ax,cl", "D3 E0"},
		{"SAL_Alias", "sal ax,cl", "D3 E0"},
		{"SHL1_AX", "shl1 ax", "D1 E0"},
		{"SAR_BX_Imm", "sar bx,4", "C1 FB 04"},
		{"CBW_CWD", "cbw\ncwd", "98 99"},
		{"CLTS", "clts", "0F 06"},
		{"HALT_Alias", "halt", "F4"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

// Each of the eight base/index forms plus direct and displacement variants
func TestAddressingModes_Encodings(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		{"BX_SI", "mov al,[bx+si]", "8A 00"},
		{"BX_DI", "mov al,[bx+di]", "8A 01"},
		{"BP_SI", "mov al,[bp+si]", "8A 02"},
		{"BP_DI", "mov al,[bp+di]", "8A 03"},
		{"SI", "mov al,[si]", "8A 04"},
		{"DI", "mov al,[di]", "8A 05"},
		{"BP_Disp", "mov al,[bp+2]", "8A 46 02"},
		{"BX", "mov al,[bx]", "8A 07"},
		{"Direct", "mov ax,[100]", "8B 06 64 00"},
		{"BX_NoDisp", "mov ax,[bx]", "8B 07"},
		{"BP_Forced", "mov ax,[bp]", "8B 46 00"},
		{"Disp16", "mov al,[si+0x1234]", "8A 84 34 12"},
		{"Disp8_Negative", "mov al,[di-2]", "8A 45 FE"},
		{"Store_Disp8", "mov [bx+si+4],al", "88 40 04"},
		{"Byte_Imm", "mov byte [bx],5", "C6 07 05"},
		{"Word_Ptr_Imm", "mov word ptr [bx],5", "C7 07 05 00"},
		{"ADD_Mem_Imm", "add byte[bx],5", "80 07 05"},
		{"ADD_Mem_Reg", "add [bx],ax", "01 07"},
		{"ADD_Reg_Mem", "add ax,[bx]", "03 07"},
		{"INC_Byte_Mem", "inc byte[bx]", "FE 07"},
		{"DEC_Word_Mem", "dec word[bx]", "FF 0F"},
		{"LEA", "lea si,[bx+4]", "8D 77 04"},
		{"ROR1_Mem", "ror1 byte[bx]", "D0 0F"},
		{"Base_Then_Symbol", "size equ 3\nmov al,[bx+size]", "8A 47 03"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestSegmentOverride(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		{"Inside_Brackets", "mov ax,[cs:bx]", "2E 8B 07"},
		{"Outside_Brackets", "mov ax,es:[bx]", "26 8B 07"},
		{"Line_Prefix", "cs: mov ax,[bx]", "2E 8B 07"},
		{"Line_Prefix_Joined", "ss:mov ax,[bp]", "36 8B 46 00"},
		{"With_Displacement", "mov [ds:si+8],cl", "3E 88 4C 08"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestPrefixes(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		{"REP_MOVSB", "rep movsb", "F3 A4"},
		{"REPE_CMPSW", "repe cmpsw", "F3 A7"},
		{"REPNE_SCASB", "repne scasb", "F2 AE"},
		{"LOCK_INC", "lock inc word[bx]", "F0 FF 07"},
		{"Label_And_Prefix", "copy: rep stosw", "F3 AB"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestStackEncodings(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		{"PUSH_AX", "push ax", "50"},
		{"PUSH_DS", "push ds", "1E"},
		{"PUSH_CS", "push cs", "0E"},
		{"POP_ES", "pop es", "07"},
		{"POP_DI", "pop di", "5F"},
		{"PUSH_Mem", "push word[bx]", "FF 37"},
		{"PUSH_Imm", "push 0x1234", "68 34 12"},
		{"POP_Mem", "pop [bx]", "8F 07"},
		{"PUSHA_POPA", "pusha\npopa", "60 61"},
		{"PUSHF_POPF", "pushf\npopf", "9C 9D"},
		{"ENTER_LEAVE", "enter 16,0\nleave", "C8 10 00 00 C9"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

// Control flow: origin is 0x100 in every case
func TestFlowControl_Encodings(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		{"JMP_Self", "jmp $", "E9 FD FF"},
		{"JMP_Short_Self", "jmp short $", "EB FE"},
		{"JMP_Near", "jmp near $", "E9 FD FF"},
		{"JE_Self", "je $", "74 FE"},
		{"JZ_Alias", "jz $", "74 FE"},
		{"JC_Alias", "jc $", "72 FE"},
		{"JG", "jg $", "7F FE"},
		{"LOOP_Self", "loop $", "E2 FE"},
		{"LOOPNZ_Alias", "loopnz $", "E0 FE"},
		{"JCXZ_Self", "jcxz $", "E3 FE"},
		{"CALL_Self", "call $", "E8 FD FF"},
		{"JMP_Reg", "jmp ax", "FF E0"},
		{"JMP_Mem", "jmp [bx]", "FF 27"},
		{"CALL_Mem", "call [bx]", "FF 17"},
		{"JMP_Far", "jmp far [bx]", "FF 2F"},
		{"CALL_Far", "call far [bx]", "FF 1F"},
		{"JMP_Far_Immediate", "jmp far 0xf000:0xfff0", "EA F0 FF 00 F0"},
		{"CALL_Far_Immediate", "call far 0:0x7c00", "9A 00 7C 00 00"},
		{"RET", "ret", "C3"},
		{"RET_Imm", "ret 4", "C2 04 00"},
		{"RETF", "retf", "CB"},
		{"IRET", "iret", "CF"},
		{"INT", "int 0x21", "CD 21"},
		{"INT3", "int3", "CC"},
		{"Forward_JMP", "jmp l\nnop\nl: ret", "E9 01 00 90 C3"},
		{"Forward_Short", "jmp short l\nnop\nl: ret", "EB 01 90 C3"},
		{"Short_Limit_Ahead", "jmp short $+129", "EB 7F"},
		{"Short_Limit_Behind", "jmp short $-126", "EB 80"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestMiscEncodings(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		{"IN_AL_DX", "in al,dx", "EC"},
		{"IN_AX_Imm", "in ax,0x40", "E5 40"},
		{"OUT_Imm_AL", "out 0x60,al", "E6 60"},
		{"OUT_DX_AX", "out dx,ax", "EF"},
		{"AAM", "aam", "D4 0A"},
		{"AAD_Base", "aad 16", "D5 10"},
		{"DAA_DAS", "daa\ndas", "27 2F"},
		{"Flags", "clc\nstc\ncli\nsti\ncld\nstd\ncmc", "F8 F9 FA FB FC FD F5"},
		{"XLAT", "xlat", "D7"},
		{"NOP_WAIT_HLT", "nop\nwait\nhlt", "90 9B F4"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestDirectives_Encodings(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		{"DB_Mixed", `db 1,2,"AB",3`, "01 02 41 42 03"},
		{"DW", "dw 0x10,0x20", "10 00 20 00"},
		{"DB_Trailing_Comma", "db 1,2,", "01 02"},
		{"DD", "dd 0x12345678", "78 56 34 12"},
		{"DW_Char", "dw 'A'", "41 00"},
		{"DB_Keeps_Case", "db 'a,b'", "61 2C 62"},
		{"DB_Char_Expr", "db 'a'+1", "62"},
		{"DB_Binary", "db 0b1010", "0A"},
		{"EQU", "foo equ 5\nmov ax,foo", "B8 05 00"},
		{"CONST", "const bar 0x10\ndb bar", "10"},
		{"CONST_Comma", "const bar,0x20\ndb bar", "20"},
		{"Dollar", "dw $", "00 01"},
		{"Dollar_Advances", "nop\ndw $", "90 01 01"},
		{"Double_Dollar", "nop\ndw $$", "90 00 01"},
		{"ORG", "org 0x200\ndw $", "00 02"},
		{"ORG_Keeps_Offset", "nop\norg 0x200\ndw $", "90 01 02"},
		{"END_Stops", "nop\nend\nnop", "90"},
		{"Comment", "nop ; db 1", "90"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

// Forward and backward label references
func TestLabelResolution(t *testing.T) {
	src := `
start:
    mov cx,10
again: dec cx
    jnz again
    jmp done
    nop
done:
    ret
`
	assembleAndMatchHex(t, "LabelResolution", src,
		"B9 0A 00 49 75 FD E9 01 00 90 C3")
}

// TestCombinedCodeAndData checks a realistic DOS program.
func TestCombinedCodeAndData(t *testing.T) {
	src := `
start:
    mov dx,msg      ; DS:DX -> string
    mov ah,9
    int 0x21
    mov ax,0x4C00
    int 0x21
msg: db 'Hi$'
`
	expected := `
BA 0C 01 B4 09 CD 21 B8 00 4C CD 21 48 69 24
`

	assembleAndMatchHex(t, "CombinedCodeAndData", src, expected)
}
