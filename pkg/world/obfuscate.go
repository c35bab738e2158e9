package world

import (
	"encoding/json"
	"strings"
)

// The game reads most slot data through a light substitution cipher so
// nothing sensitive is readable by just opening the JSON file. Both
// tables cover every character the game's small font can display;
// quotes and backslashes only appear in the input table, so ciphertext
// stays JSON-string safe.
const (
	obfuscateInput  = ` ABCDEFGHIJKLMNOPQRSTUVWXYZ!?.,;:'"abcdefghijklmnopqrstuvwxyz#$%*(){}[]1234567890/|\-+=`
	obfuscateOutput = "0GTi29}#{K+d O1VYr]en:zP~yAI5(,ZL/)|?.sb4l<MFU3tD6$>wp[f*q%C=o8Emgj;xuXakhW!SNHc-Q7RBJv"
)

// obfuscate ciphers one string. Each character maps through a table
// offset that advances by the character's own low bits, so repeated
// characters cipher differently. Characters outside the table encode
// as "?".
func obfuscate(input string) string {
	offset := 54
	var out strings.Builder
	out.Grow(len(input))
	for _, r := range input {
		idx := strings.IndexRune(obfuscateInput, r)
		if idx < 0 {
			r = '?'
			idx = strings.IndexRune(obfuscateInput, '?')
		}
		idx += offset
		offset += int(r&0xF) + 1
		if idx >= 87 {
			idx -= 87
		}
		if offset >= 87 {
			offset -= 87
		}
		out.WriteByte(obfuscateOutput[idx])
	}
	return out.String()
}

// obfuscateObject ciphers the compact JSON encoding of v.
func obfuscateObject(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return obfuscate(string(b)), nil
}

// Deobfuscate undoes the slot data cipher. Tools that inspect stored
// worlds use it to read the obfuscated sections back.
func Deobfuscate(input string) string {
	offset := 54
	var out strings.Builder
	out.Grow(len(input))
	for _, r := range input {
		idx := strings.IndexRune(obfuscateOutput, r)
		if idx < 0 {
			continue
		}
		idx -= offset
		if idx < 0 {
			idx += 87
		}
		ch := obfuscateInput[idx]
		offset += int(ch&0xF) + 1
		if offset >= 87 {
			offset -= 87
		}
		out.WriteByte(ch)
	}
	return out.String()
}
