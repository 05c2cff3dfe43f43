package accountprops

import "encoding/binary"

const (
	opJumpdest = 0x5b
	opPush1    = 0x60
	opPush32   = 0x7f

	bitsPerWord = 64
	wordSize    = 8

	// BytecodeAlignment is the alignment of the code section that precedes the artifacts
	BytecodeAlignment = 8
)

// Artifacts returns the jump destination bitmap of an EVM bytecode: one bit per code
// byte, set for every JUMPDEST that is not part of a PUSH immediate, packed into
// 64 bit words serialized little-endian.
func Artifacts(code []byte) []byte {
	words := make([]uint64, (len(code)+bitsPerWord-1)/bitsPerWord)
	for i := 0; i < len(code); {
		op := code[i]
		switch {
		case op == opJumpdest:
			words[i/bitsPerWord] |= 1 << (uint(i) % bitsPerWord)
			i++
		case op >= opPush1 && op <= opPush32:
			i += 1 + int(op-opPush1+1)
		default:
			i++
		}
	}

	out := make([]byte, len(words)*wordSize)
	for w, word := range words {
		binary.LittleEndian.PutUint64(out[w*wordSize:], word)
	}
	return out
}

// PaddingLen is the number of zero bytes appended to the code so the artifacts start aligned
func PaddingLen(codeLen int) int {
	rem := codeLen % BytecodeAlignment
	if rem == 0 {
		return 0
	}
	return BytecodeAlignment - rem
}

// FullBytecode lays out code || zero padding || artifacts, the preimage of the bytecode hash.
func FullBytecode(code []byte) (full []byte, artifactsLen int) {
	artifacts := Artifacts(code)
	padding := PaddingLen(len(code))
	full = make([]byte, len(code)+padding+len(artifacts))
	copy(full, code)
	copy(full[len(code)+padding:], artifacts)
	return full, len(artifacts)
}
