package assembler

// Token identifies a keyword: a directive, prefix, qualifier or mnemonic.
type Token int

const (
	TokNone Token = iota

	// Directives
	TokDB
	TokDW
	TokDD
	TokORG
	TokEND
	TokCONST
	TokEXPORT
	TokEQU

	// Prefixes
	TokLOCK
	TokREP
	TokREPNZ
	TokCS
	TokDS
	TokES
	TokSS

	// Qualifiers
	TokSHORT
	TokNEAR
	TokFAR

	// Instructions
	TokAAA
	TokAAD
	TokAAM
	TokAAS
	TokADC
	TokADD
	TokAND
	TokBOUND
	TokCALL
	TokCBW
	TokCLC
	TokCLD
	TokCLI
	TokCLTS
	TokCMC
	TokCMP
	TokCMPSB
	TokCMPSW
	TokCWD
	TokDAA
	TokDAS
	TokDEC
	TokDIV
	TokENTER
	TokHLT
	TokIDIV
	TokIMUL
	TokIN
	TokINC
	TokINSB
	TokINSW
	TokINT
	TokINT3
	TokINTO
	TokIRET
	TokJA
	TokJAE
	TokJB
	TokJBE
	TokJCXZ
	TokJE
	TokJG
	TokJGE
	TokJL
	TokJLE
	TokJMP
	TokJNE
	TokJNO
	TokJNP
	TokJNS
	TokJO
	TokJP
	TokJS
	TokLAHF
	TokLDS
	TokLEA
	TokLEAVE
	TokLES
	TokLODSB
	TokLODSW
	TokLOOP
	TokLOOPE
	TokLOOPNE
	TokMOV
	TokMOVSB
	TokMOVSW
	TokMUL
	TokNEG
	TokNOP
	TokNOT
	TokOR
	TokOUT
	TokOUTSB
	TokOUTSW
	TokPOP
	TokPOPA
	TokPOPF
	TokPUSH
	TokPUSHA
	TokPUSHF
	TokRCL
	TokRCL1
	TokRCR
	TokRCR1
	TokRET
	TokRETF
	TokROL
	TokROL1
	TokROR
	TokROR1
	TokSAHF
	TokSALC
	TokSAR
	TokSAR1
	TokSBB
	TokSCASB
	TokSCASW
	TokSHL
	TokSHL1
	TokSHR
	TokSHR1
	TokSTC
	TokSTD
	TokSTI
	TokSTOSB
	TokSTOSW
	TokSUB
	TokTEST
	TokWAIT
	TokXCHG
	TokXLATB
	TokXOR
)

// keywordNames lists every spelling the lexer knows. Aliases share a token;
// the first spelling of a token is its canonical name.
var keywordNames = []struct {
	name string
	tok  Token
}{
	{"DB", TokDB}, {"DW", TokDW}, {"DD", TokDD},
	{"ORG", TokORG}, {"END", TokEND}, {"CONST", TokCONST}, {"EXPORT", TokEXPORT}, {"EQU", TokEQU},

	{"LOCK", TokLOCK},
	{"REP", TokREP}, {"REPE", TokREP}, {"REPZ", TokREP},
	{"REPNZ", TokREPNZ}, {"REPNE", TokREPNZ},
	{"CS:", TokCS}, {"DS:", TokDS}, {"ES:", TokES}, {"SS:", TokSS},

	{"SHORT", TokSHORT}, {"NEAR", TokNEAR}, {"FAR", TokFAR},

	{"AAA", TokAAA}, {"AAD", TokAAD}, {"AAM", TokAAM}, {"AAS", TokAAS},
	{"ADC", TokADC}, {"ADD", TokADD}, {"AND", TokAND}, {"BOUND", TokBOUND},
	{"CALL", TokCALL}, {"CBW", TokCBW}, {"CLC", TokCLC}, {"CLD", TokCLD},
	{"CLI", TokCLI}, {"CLTS", TokCLTS}, {"CMC", TokCMC}, {"CMP", TokCMP},
	{"CMPSB", TokCMPSB}, {"CMPSW", TokCMPSW}, {"CWD", TokCWD},
	{"DAA", TokDAA}, {"DAS", TokDAS}, {"DEC", TokDEC}, {"DIV", TokDIV},
	{"ENTER", TokENTER}, {"HLT", TokHLT}, {"HALT", TokHLT},
	{"IDIV", TokIDIV}, {"IMUL", TokIMUL}, {"IN", TokIN}, {"INC", TokINC},
	{"INSB", TokINSB}, {"INSW", TokINSW}, {"INT", TokINT}, {"INT3", TokINT3},
	{"INTO", TokINTO}, {"IRET", TokIRET},

	{"JA", TokJA}, {"JNBE", TokJA},
	{"JAE", TokJAE}, {"JNB", TokJAE}, {"JNC", TokJAE},
	{"JB", TokJB}, {"JC", TokJB}, {"JNAE", TokJB},
	{"JBE", TokJBE}, {"JNA", TokJBE},
	{"JCXZ", TokJCXZ},
	{"JE", TokJE}, {"JZ", TokJE},
	{"JG", TokJG}, {"JNLE", TokJG},
	{"JGE", TokJGE}, {"JNL", TokJGE},
	{"JL", TokJL}, {"JNGE", TokJL},
	{"JLE", TokJLE}, {"JNG", TokJLE},
	{"JMP", TokJMP},
	{"JNE", TokJNE}, {"JNZ", TokJNE},
	{"JNO", TokJNO},
	{"JNP", TokJNP}, {"JPO", TokJNP},
	{"JNS", TokJNS},
	{"JO", TokJO},
	{"JP", TokJP}, {"JPE", TokJP},
	{"JS", TokJS},

	{"LAHF", TokLAHF}, {"LDS", TokLDS}, {"LEA", TokLEA}, {"LEAVE", TokLEAVE},
	{"LES", TokLES}, {"LODSB", TokLODSB}, {"LODSW", TokLODSW},
	{"LOOP", TokLOOP}, {"LOOPE", TokLOOPE}, {"LOOPZ", TokLOOPE},
	{"LOOPNE", TokLOOPNE}, {"LOOPNZ", TokLOOPNE},
	{"MOV", TokMOV}, {"MOVSB", TokMOVSB}, {"MOVSW", TokMOVSW}, {"MUL", TokMUL},
	{"NEG", TokNEG}, {"NOP", TokNOP}, {"NOT", TokNOT}, {"OR", TokOR},
	{"OUT", TokOUT}, {"OUTSB", TokOUTSB}, {"OUTSW", TokOUTSW},
	{"POP", TokPOP}, {"POPA", TokPOPA}, {"POPF", TokPOPF},
	{"PUSH", TokPUSH}, {"PUSHA", TokPUSHA}, {"PUSHF", TokPUSHF},
	{"RCL", TokRCL}, {"RCL1", TokRCL1}, {"RCR", TokRCR}, {"RCR1", TokRCR1},
	{"RET", TokRET}, {"RETF", TokRETF},
	{"ROL", TokROL}, {"ROL1", TokROL1}, {"ROR", TokROR}, {"ROR1", TokROR1},
	{"SAHF", TokSAHF}, {"SALC", TokSALC},
	{"SAR", TokSAR}, {"SAR1", TokSAR1}, {"SBB", TokSBB},
	{"SCASB", TokSCASB}, {"SCASW", TokSCASW},
	{"SHL", TokSHL}, {"SAL", TokSHL}, {"SHL1", TokSHL1}, {"SAL1", TokSHL1},
	{"SHR", TokSHR}, {"SHR1", TokSHR1},
	{"STC", TokSTC}, {"STD", TokSTD}, {"STI", TokSTI},
	{"STOSB", TokSTOSB}, {"STOSW", TokSTOSW}, {"SUB", TokSUB},
	{"TEST", TokTEST}, {"WAIT", TokWAIT}, {"XCHG", TokXCHG},
	{"XLATB", TokXLATB}, {"XLAT", TokXLATB}, {"XOR", TokXOR},
}

type keyword struct {
	name string
	hash int32
	tok  Token
}

var (
	keywords  []keyword
	canonical = map[Token]string{}
)

func init() {
	keywords = make([]keyword, 0, len(keywordNames))
	for _, k := range keywordNames {
		keywords = append(keywords, keyword{name: k.name, hash: Hash(k.name), tok: k.tok})
		if _, ok := canonical[k.tok]; !ok {
			canonical[k.tok] = k.name
		}
	}
}

// Hash folds a word to a 32-bit value: h = h*31 + upper(c), wrapping.
func Hash(s string) int32 {
	var h int32
	for i := 0; i < len(s); i++ {
		h = h*31 + int32(toUpper(s[i]))
	}
	return h
}

// Lookup returns the token for a word, ignoring case, or TokNone.
func Lookup(word string) Token {
	h := Hash(word)
	for _, k := range keywords {
		if k.hash == h && equalFold(k.name, word) {
			return k.tok
		}
	}
	return TokNone
}

func (t Token) String() string {
	if name, ok := canonical[t]; ok {
		return name
	}
	return "none"
}

// IsQualifier reports whether the token is SHORT, NEAR or FAR.
func (t Token) IsQualifier() bool {
	return t == TokSHORT || t == TokNEAR || t == TokFAR
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if toUpper(a[i]) != toUpper(b[i]) {
			return false
		}
	}
	return true
}
