// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package program

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/zvm/cpu"
	"github.com/ezrec/zvm/internal"
	"github.com/ezrec/zvm/memory"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// mnemonicMap is the reverse of the opcode mnemonics.
var mnemonicMap = map[string]cpu.Opcode{}

func init() {
	for _, op := range cpu.Opcodes() {
		mnemonicMap[op.String()] = op
	}
}

// registerWords are the operands that are encoded in the opcode itself.
var registerWords = map[string]bool{
	"a": true, "b": true, "c": true, "d": true, "e": true, "h": true, "l": true,
	"af": true, "af'": true, "bc": true, "de": true, "hl": true, "sp": true,
	"(bc)": true, "(de)": true, "(hl)": true, "(sp)": true,
	"nz": true, "z": true, "nc": true, "po": true, "pe": true, "p": true, "m": true,
}

var (
	reLabel      = regexp.MustCompile(`^([A-Za-z_.][A-Za-z0-9_.]*):`)
	reIdentifier = regexp.MustCompile(`^[A-Za-z_.][A-Za-z0-9_.]*$`)
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
)

// link is an operand waiting for a label definition.
type link struct {
	lineNo int
	line   string
	label  string
	offset int    // Offset of the operand in the assembled bytes.
	kind   string // Operand placeholder: n, nn, (nn) or e.
	next   uint16 // Address of the following instruction.
}

// stripComment removes a ';' comment, ignoring ';' inside character literals.
func stripComment(text string) string {
	literals := reCharacter.FindAllStringIndex(text, -1)
	for n := 0; n < len(text); n++ {
		if len(literals) > 0 && n == literals[0][0] {
			n = literals[0][1] - 1
			literals = literals[1:]
			continue
		}
		if text[n] == ';' {
			return text[:n]
		}
	}
	return text
}

// Assembler converts mnemonic text into a Program.
//
// Forward references to labels are resolved once all of the text
// has been read.
//
// A ';' starts a comment that runs to the end of the line, unless it is
// quoted as the character literal ';'.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Origin  uint16 // Load address of the program.

	predefine map[string]string
	Label     map[string]uint16 // Map of labels to addresses.
	Equate    map[string]string // Map of equates.

	data  []byte
	links []link
	start uint16 // Address of the current line, for '$'.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// here is the address of the next assembled byte.
func (asm *Assembler) here() uint16 {
	return asm.Origin + uint16(len(asm.data))
}

// valueOf returns the value of a word, or the label it refers to if the
// label is not defined yet.
func (asm *Assembler) valueOf(word string) (value int, label string, err error) {
	equate, ok := asm.Equate[word]
	if ok {
		word = equate
	}

	if word == "$" {
		value = int(asm.start)
		return
	}

	address, ok := asm.Label[word]
	if ok {
		value = int(address)
		return
	}

	v64, perr := strconv.ParseInt(word, 0, 32)
	if perr == nil {
		value = int(v64)
		return
	}

	if reIdentifier.MatchString(word) {
		label = word
		return
	}

	err = ErrParseValue(word)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key := range asm.Equate {
		v, label, _err := asm.valueOf(key)
		if _err != nil || len(label) != 0 {
			// Ignore equates that are not integers.
			continue
		}
		pred[key] = starlark.MakeInt(v)
	}
	for key, address := range asm.Label {
		pred[key] = starlark.MakeInt(int(address))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// put stores a resolved operand value.
func (asm *Assembler) put(offset int, kind string, value int, next uint16) (err error) {
	switch kind {
	case "n":
		if value < -128 || value > 0xff {
			err = ErrValueRange
			return
		}
		asm.data[offset] = byte(value)
	case "nn", "(nn)":
		if value < -32768 || value > 0xffff {
			err = ErrValueRange
			return
		}
		asm.data[offset] = byte(value)
		asm.data[offset+1] = byte(value >> 8)
	case "e":
		delta := value - int(next)
		if delta < -128 || delta > 127 {
			err = ErrRelativeRange
			return
		}
		asm.data[offset] = byte(int8(delta))
	}
	return
}

// operand appends an operand, or a link to a label.
func (asm *Assembler) operand(word string, kind string, next uint16, lineno int, line string) (err error) {
	value, label, err := asm.valueOf(word)
	if err != nil {
		return
	}

	offset := len(asm.data)
	size := 1
	if kind == "nn" || kind == "(nn)" {
		size = 2
	}
	asm.data = append(asm.data, make([]byte, size)...)

	if len(label) != 0 {
		asm.links = append(asm.links, link{
			lineNo: lineno,
			line:   line,
			label:  label,
			offset: offset,
			kind:   kind,
			next:   next,
		})
		return
	}

	err = asm.put(offset, kind, value, next)
	return
}

// parseLine parses a single line of text.
func (asm *Assembler) parseLine(line string, lineno int) (err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	line = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	line = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	line = strings.TrimSpace(line)
	for {
		match := reLabel.FindStringSubmatch(line)
		if match == nil {
			break
		}
		label := match[1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = asm.here()
		line = strings.TrimSpace(line[len(match[0]):])
	}

	asm.start = asm.here()

	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		return
	}

	mnemonic := strings.ToLower(words[0])
	var operands []string
	if len(words) > 1 {
		operands = strings.Split(strings.Join(words[1:], ""), ",")
	}

	switch mnemonic {
	case ".db", ".dw":
		if len(operands) == 0 {
			err = ErrDataMissing
			return
		}
		kind := "n"
		if mnemonic == ".dw" {
			kind = "nn"
		}
		for _, word := range operands {
			err = asm.operand(word, kind, 0, lineno, line)
			if err != nil {
				return
			}
		}
		return
	case "rst":
		if len(operands) != 1 {
			err = ErrInstructionInvalid
			return
		}
		var value int
		var label string
		value, label, err = asm.valueOf(operands[0])
		if err != nil {
			return
		}
		op, ok := mnemonicMap[fmt.Sprintf("rst 0x%02x", value)]
		if len(label) != 0 || !ok {
			err = ErrInstructionInvalid
			return
		}
		asm.data = append(asm.data, byte(op))
		return
	}

	err = asm.instruction(mnemonic, operands, lineno, line)
	return
}

// instruction assembles an opcode and its operand.
func (asm *Assembler) instruction(mnemonic string, operands []string, lineno int, line string) (err error) {
	literal := make([]string, len(operands))
	valueIndex := -1
	for n, operand := range operands {
		lower := strings.ToLower(operand)
		if registerWords[lower] {
			literal[n] = lower
			continue
		}
		if valueIndex >= 0 {
			err = ErrInstructionInvalid
			return
		}
		valueIndex = n
	}

	lookup := func() (op cpu.Opcode, ok bool) {
		text := mnemonic
		if len(literal) > 0 {
			text += " " + strings.Join(literal, ",")
		}
		op, ok = mnemonicMap[text]
		return
	}

	if valueIndex < 0 {
		op, ok := lookup()
		if !ok {
			err = ErrInstructionInvalid
			return
		}
		asm.data = append(asm.data, byte(op))
		return
	}

	word := operands[valueIndex]
	kinds := []string{"n", "e", "nn"}
	if strings.HasPrefix(word, "(") && strings.HasSuffix(word, ")") {
		word = word[1 : len(word)-1]
		kinds = []string{"(nn)"}
	}

	for _, kind := range kinds {
		literal[valueIndex] = kind
		op, ok := lookup()
		if !ok || (kind == "e") != op.Relative() {
			continue
		}
		next := asm.here() + uint16(op.Size())
		asm.data = append(asm.data, byte(op))
		err = asm.operand(word, kind, next, lineno, line)
		return
	}

	err = ErrInstructionInvalid
	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = make(map[string]uint16, 16)
	asm.data = asm.data[:0]
	asm.links = asm.links[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range internal.IterSeq2Concat(cpu.Defines(), memory.Defines()) {
		asm.Equate[attr] = val
	}
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("asm: %v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(stripComment(text))

		err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if !memory.Fits(asm.Origin, len(asm.data)) {
		err = ErrProgramSize
		return
	}

	// Final linking of labels.
	for _, ln := range asm.links {
		address, ok := asm.Label[ln.label]
		if !ok {
			lineno, line = ln.lineNo, ln.line
			err = ErrLabelMissing(ln.label)
			return
		}
		err = asm.put(ln.offset, ln.kind, int(address), ln.next)
		if err != nil {
			lineno, line = ln.lineNo, ln.line
			return
		}
	}

	if asm.Verbose {
		log.Printf("asm: %v bytes at %04x", len(asm.data), asm.Origin)
	}

	prog = &Program{
		data: slices.Clone(asm.data),
	}

	return
}
