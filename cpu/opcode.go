// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"strings"
)

// Opcode is the first byte of an instruction.
//
// Placeholders in the mnemonics are 'n' (8-bit immediate), 'nn' (16-bit
// immediate, little-endian) and 'e' (signed 8-bit offset from the address
// of the next instruction).
type Opcode uint8

const (
	NOP        = Opcode(0x00) // nop
	LD_BC_NN   = Opcode(0x01) // ld bc,nn
	LD_IBC_A   = Opcode(0x02) // ld (bc),a
	INC_BC     = Opcode(0x03) // inc bc
	INC_B      = Opcode(0x04) // inc b
	DEC_B      = Opcode(0x05) // dec b
	LD_B_N     = Opcode(0x06) // ld b,n
	RLCA       = Opcode(0x07) // rlca
	EX_AF_AF   = Opcode(0x08) // ex af,af'
	ADD_HL_BC  = Opcode(0x09) // add hl,bc
	LD_A_IBC   = Opcode(0x0A) // ld a,(bc)
	DEC_BC     = Opcode(0x0B) // dec bc
	INC_C      = Opcode(0x0C) // inc c
	DEC_C      = Opcode(0x0D) // dec c
	LD_C_N     = Opcode(0x0E) // ld c,n
	RRCA       = Opcode(0x0F) // rrca
	DJNZ       = Opcode(0x10) // djnz e
	LD_DE_NN   = Opcode(0x11) // ld de,nn
	LD_IDE_A   = Opcode(0x12) // ld (de),a
	INC_DE     = Opcode(0x13) // inc de
	INC_D      = Opcode(0x14) // inc d
	DEC_D      = Opcode(0x15) // dec d
	LD_D_N     = Opcode(0x16) // ld d,n
	RLA        = Opcode(0x17) // rla
	JR         = Opcode(0x18) // jr e
	ADD_HL_DE  = Opcode(0x19) // add hl,de
	LD_A_IDE   = Opcode(0x1A) // ld a,(de)
	DEC_DE     = Opcode(0x1B) // dec de
	INC_E      = Opcode(0x1C) // inc e
	DEC_E      = Opcode(0x1D) // dec e
	LD_E_N     = Opcode(0x1E) // ld e,n
	RRA        = Opcode(0x1F) // rra
	JR_NZ      = Opcode(0x20) // jr nz,e
	LD_HL_NN   = Opcode(0x21) // ld hl,nn
	LD_INN_HL  = Opcode(0x22) // ld (nn),hl
	INC_HL     = Opcode(0x23) // inc hl
	INC_H      = Opcode(0x24) // inc h
	DEC_H      = Opcode(0x25) // dec h
	LD_H_N     = Opcode(0x26) // ld h,n
	JR_Z       = Opcode(0x28) // jr z,e
	ADD_HL_HL  = Opcode(0x29) // add hl,hl
	LD_HL_INN  = Opcode(0x2A) // ld hl,(nn)
	DEC_HL     = Opcode(0x2B) // dec hl
	INC_L      = Opcode(0x2C) // inc l
	DEC_L      = Opcode(0x2D) // dec l
	LD_L_N     = Opcode(0x2E) // ld l,n
	CPL        = Opcode(0x2F) // cpl
	JR_NC      = Opcode(0x30) // jr nc,e
	LD_SP_NN   = Opcode(0x31) // ld sp,nn
	LD_INN_A   = Opcode(0x32) // ld (nn),a
	INC_SP     = Opcode(0x33) // inc sp
	INC_IHL    = Opcode(0x34) // inc (hl)
	DEC_IHL    = Opcode(0x35) // dec (hl)
	LD_IHL_N   = Opcode(0x36) // ld (hl),n
	SCF        = Opcode(0x37) // scf
	JR_C       = Opcode(0x38) // jr c,e
	ADD_HL_SP  = Opcode(0x39) // add hl,sp
	LD_A_INN   = Opcode(0x3A) // ld a,(nn)
	DEC_SP     = Opcode(0x3B) // dec sp
	INC_A      = Opcode(0x3C) // inc a
	DEC_A      = Opcode(0x3D) // dec a
	LD_A_N     = Opcode(0x3E) // ld a,n
	CCF        = Opcode(0x3F) // ccf
	LD_B_B     = Opcode(0x40) // ld b,b
	LD_B_C     = Opcode(0x41) // ld b,c
	LD_B_D     = Opcode(0x42) // ld b,d
	LD_B_E     = Opcode(0x43) // ld b,e
	LD_B_H     = Opcode(0x44) // ld b,h
	LD_B_L     = Opcode(0x45) // ld b,l
	LD_B_IHL   = Opcode(0x46) // ld b,(hl)
	LD_B_A     = Opcode(0x47) // ld b,a
	LD_C_B     = Opcode(0x48) // ld c,b
	LD_C_C     = Opcode(0x49) // ld c,c
	LD_C_D     = Opcode(0x4A) // ld c,d
	LD_C_E     = Opcode(0x4B) // ld c,e
	LD_C_H     = Opcode(0x4C) // ld c,h
	LD_C_L     = Opcode(0x4D) // ld c,l
	LD_C_IHL   = Opcode(0x4E) // ld c,(hl)
	LD_C_A     = Opcode(0x4F) // ld c,a
	LD_D_B     = Opcode(0x50) // ld d,b
	LD_D_C     = Opcode(0x51) // ld d,c
	LD_D_D     = Opcode(0x52) // ld d,d
	LD_D_E     = Opcode(0x53) // ld d,e
	LD_D_H     = Opcode(0x54) // ld d,h
	LD_D_L     = Opcode(0x55) // ld d,l
	LD_D_IHL   = Opcode(0x56) // ld d,(hl)
	LD_D_A     = Opcode(0x57) // ld d,a
	LD_E_B     = Opcode(0x58) // ld e,b
	LD_E_C     = Opcode(0x59) // ld e,c
	LD_E_D     = Opcode(0x5A) // ld e,d
	LD_E_E     = Opcode(0x5B) // ld e,e
	LD_E_H     = Opcode(0x5C) // ld e,h
	LD_E_L     = Opcode(0x5D) // ld e,l
	LD_E_IHL   = Opcode(0x5E) // ld e,(hl)
	LD_E_A     = Opcode(0x5F) // ld e,a
	LD_H_B     = Opcode(0x60) // ld h,b
	LD_H_C     = Opcode(0x61) // ld h,c
	LD_H_D     = Opcode(0x62) // ld h,d
	LD_H_E     = Opcode(0x63) // ld h,e
	LD_H_H     = Opcode(0x64) // ld h,h
	LD_H_L     = Opcode(0x65) // ld h,l
	LD_H_IHL   = Opcode(0x66) // ld h,(hl)
	LD_H_A     = Opcode(0x67) // ld h,a
	LD_L_B     = Opcode(0x68) // ld l,b
	LD_L_C     = Opcode(0x69) // ld l,c
	LD_L_D     = Opcode(0x6A) // ld l,d
	LD_L_E     = Opcode(0x6B) // ld l,e
	LD_L_H     = Opcode(0x6C) // ld l,h
	LD_L_L     = Opcode(0x6D) // ld l,l
	LD_L_IHL   = Opcode(0x6E) // ld l,(hl)
	LD_L_A     = Opcode(0x6F) // ld l,a
	LD_IHL_B   = Opcode(0x70) // ld (hl),b
	LD_IHL_C   = Opcode(0x71) // ld (hl),c
	LD_IHL_D   = Opcode(0x72) // ld (hl),d
	LD_IHL_E   = Opcode(0x73) // ld (hl),e
	LD_IHL_H   = Opcode(0x74) // ld (hl),h
	LD_IHL_L   = Opcode(0x75) // ld (hl),l
	HALT       = Opcode(0x76) // halt
	LD_IHL_A   = Opcode(0x77) // ld (hl),a
	LD_A_B     = Opcode(0x78) // ld a,b
	LD_A_C     = Opcode(0x79) // ld a,c
	LD_A_D     = Opcode(0x7A) // ld a,d
	LD_A_E     = Opcode(0x7B) // ld a,e
	LD_A_H     = Opcode(0x7C) // ld a,h
	LD_A_L     = Opcode(0x7D) // ld a,l
	LD_A_IHL   = Opcode(0x7E) // ld a,(hl)
	LD_A_A     = Opcode(0x7F) // ld a,a
	ADD_A_B    = Opcode(0x80) // add a,b
	ADD_A_C    = Opcode(0x81) // add a,c
	ADD_A_D    = Opcode(0x82) // add a,d
	ADD_A_E    = Opcode(0x83) // add a,e
	ADD_A_H    = Opcode(0x84) // add a,h
	ADD_A_L    = Opcode(0x85) // add a,l
	ADD_A_IHL  = Opcode(0x86) // add a,(hl)
	ADD_A_A    = Opcode(0x87) // add a,a
	ADC_A_B    = Opcode(0x88) // adc a,b
	ADC_A_C    = Opcode(0x89) // adc a,c
	ADC_A_D    = Opcode(0x8A) // adc a,d
	ADC_A_E    = Opcode(0x8B) // adc a,e
	ADC_A_H    = Opcode(0x8C) // adc a,h
	ADC_A_L    = Opcode(0x8D) // adc a,l
	ADC_A_IHL  = Opcode(0x8E) // adc a,(hl)
	ADC_A_A    = Opcode(0x8F) // adc a,a
	SUB_B      = Opcode(0x90) // sub b
	SUB_C      = Opcode(0x91) // sub c
	SUB_D      = Opcode(0x92) // sub d
	SUB_E      = Opcode(0x93) // sub e
	SUB_H      = Opcode(0x94) // sub h
	SUB_L      = Opcode(0x95) // sub l
	SUB_IHL    = Opcode(0x96) // sub (hl)
	SUB_A      = Opcode(0x97) // sub a
	SBC_A_B    = Opcode(0x98) // sbc a,b
	SBC_A_C    = Opcode(0x99) // sbc a,c
	SBC_A_D    = Opcode(0x9A) // sbc a,d
	SBC_A_E    = Opcode(0x9B) // sbc a,e
	SBC_A_H    = Opcode(0x9C) // sbc a,h
	SBC_A_L    = Opcode(0x9D) // sbc a,l
	SBC_A_IHL  = Opcode(0x9E) // sbc a,(hl)
	SBC_A_A    = Opcode(0x9F) // sbc a,a
	AND_B      = Opcode(0xA0) // and b
	AND_C      = Opcode(0xA1) // and c
	AND_D      = Opcode(0xA2) // and d
	AND_E      = Opcode(0xA3) // and e
	AND_H      = Opcode(0xA4) // and h
	AND_L      = Opcode(0xA5) // and l
	AND_IHL    = Opcode(0xA6) // and (hl)
	AND_A      = Opcode(0xA7) // and a
	XOR_B      = Opcode(0xA8) // xor b
	XOR_C      = Opcode(0xA9) // xor c
	XOR_D      = Opcode(0xAA) // xor d
	XOR_E      = Opcode(0xAB) // xor e
	XOR_H      = Opcode(0xAC) // xor h
	XOR_L      = Opcode(0xAD) // xor l
	XOR_IHL    = Opcode(0xAE) // xor (hl)
	XOR_A      = Opcode(0xAF) // xor a
	OR_B       = Opcode(0xB0) // or b
	OR_C       = Opcode(0xB1) // or c
	OR_D       = Opcode(0xB2) // or d
	OR_E       = Opcode(0xB3) // or e
	OR_H       = Opcode(0xB4) // or h
	OR_L       = Opcode(0xB5) // or l
	OR_IHL     = Opcode(0xB6) // or (hl)
	OR_A       = Opcode(0xB7) // or a
	CP_B       = Opcode(0xB8) // cp b
	CP_C       = Opcode(0xB9) // cp c
	CP_D       = Opcode(0xBA) // cp d
	CP_E       = Opcode(0xBB) // cp e
	CP_H       = Opcode(0xBC) // cp h
	CP_L       = Opcode(0xBD) // cp l
	CP_IHL     = Opcode(0xBE) // cp (hl)
	CP_A       = Opcode(0xBF) // cp a
	RET_NZ     = Opcode(0xC0) // ret nz
	POP_BC     = Opcode(0xC1) // pop bc
	JP_NZ_NN   = Opcode(0xC2) // jp nz,nn
	JP_NN      = Opcode(0xC3) // jp nn
	CALL_NZ_NN = Opcode(0xC4) // call nz,nn
	PUSH_BC    = Opcode(0xC5) // push bc
	ADD_A_N    = Opcode(0xC6) // add a,n
	RST_00     = Opcode(0xC7) // rst 0x00
	RET_Z      = Opcode(0xC8) // ret z
	RET        = Opcode(0xC9) // ret
	JP_Z_NN    = Opcode(0xCA) // jp z,nn
	CALL_Z_NN  = Opcode(0xCC) // call z,nn
	CALL_NN    = Opcode(0xCD) // call nn
	ADC_A_N    = Opcode(0xCE) // adc a,n
	RST_08     = Opcode(0xCF) // rst 0x08
	RET_NC     = Opcode(0xD0) // ret nc
	POP_DE     = Opcode(0xD1) // pop de
	JP_NC_NN   = Opcode(0xD2) // jp nc,nn
	CALL_NC_NN = Opcode(0xD4) // call nc,nn
	PUSH_DE    = Opcode(0xD5) // push de
	SUB_N      = Opcode(0xD6) // sub n
	RST_10     = Opcode(0xD7) // rst 0x10
	RET_C      = Opcode(0xD8) // ret c
	EXX        = Opcode(0xD9) // exx
	JP_C_NN    = Opcode(0xDA) // jp c,nn
	CALL_C_NN  = Opcode(0xDC) // call c,nn
	SBC_A_N    = Opcode(0xDE) // sbc a,n
	RST_18     = Opcode(0xDF) // rst 0x18
	RET_PO     = Opcode(0xE0) // ret po
	POP_HL     = Opcode(0xE1) // pop hl
	JP_PO_NN   = Opcode(0xE2) // jp po,nn
	EX_ISP_HL  = Opcode(0xE3) // ex (sp),hl
	CALL_PO_NN = Opcode(0xE4) // call po,nn
	PUSH_HL    = Opcode(0xE5) // push hl
	AND_N      = Opcode(0xE6) // and n
	RST_20     = Opcode(0xE7) // rst 0x20
	RET_PE     = Opcode(0xE8) // ret pe
	JP_IHL     = Opcode(0xE9) // jp (hl)
	JP_PE_NN   = Opcode(0xEA) // jp pe,nn
	EX_DE_HL   = Opcode(0xEB) // ex de,hl
	CALL_PE_NN = Opcode(0xEC) // call pe,nn
	XOR_N      = Opcode(0xEE) // xor n
	RST_28     = Opcode(0xEF) // rst 0x28
	RET_P      = Opcode(0xF0) // ret p
	POP_AF     = Opcode(0xF1) // pop af
	JP_P_NN    = Opcode(0xF2) // jp p,nn
	CALL_P_NN  = Opcode(0xF4) // call p,nn
	PUSH_AF    = Opcode(0xF5) // push af
	OR_N       = Opcode(0xF6) // or n
	RST_30     = Opcode(0xF7) // rst 0x30
	RET_M      = Opcode(0xF8) // ret m
	LD_SP_HL   = Opcode(0xF9) // ld sp,hl
	JP_M_NN    = Opcode(0xFA) // jp m,nn
	CALL_M_NN  = Opcode(0xFC) // call m,nn
	CP_N       = Opcode(0xFE) // cp n
	RST_38     = Opcode(0xFF) // rst 0x38
)

var opcodeMnemonic = [256]string{
	NOP:        "nop",
	LD_BC_NN:   "ld bc,nn",
	LD_IBC_A:   "ld (bc),a",
	INC_BC:     "inc bc",
	INC_B:      "inc b",
	DEC_B:      "dec b",
	LD_B_N:     "ld b,n",
	RLCA:       "rlca",
	EX_AF_AF:   "ex af,af'",
	ADD_HL_BC:  "add hl,bc",
	LD_A_IBC:   "ld a,(bc)",
	DEC_BC:     "dec bc",
	INC_C:      "inc c",
	DEC_C:      "dec c",
	LD_C_N:     "ld c,n",
	RRCA:       "rrca",
	DJNZ:       "djnz e",
	LD_DE_NN:   "ld de,nn",
	LD_IDE_A:   "ld (de),a",
	INC_DE:     "inc de",
	INC_D:      "inc d",
	DEC_D:      "dec d",
	LD_D_N:     "ld d,n",
	RLA:        "rla",
	JR:         "jr e",
	ADD_HL_DE:  "add hl,de",
	LD_A_IDE:   "ld a,(de)",
	DEC_DE:     "dec de",
	INC_E:      "inc e",
	DEC_E:      "dec e",
	LD_E_N:     "ld e,n",
	RRA:        "rra",
	JR_NZ:      "jr nz,e",
	LD_HL_NN:   "ld hl,nn",
	LD_INN_HL:  "ld (nn),hl",
	INC_HL:     "inc hl",
	INC_H:      "inc h",
	DEC_H:      "dec h",
	LD_H_N:     "ld h,n",
	JR_Z:       "jr z,e",
	ADD_HL_HL:  "add hl,hl",
	LD_HL_INN:  "ld hl,(nn)",
	DEC_HL:     "dec hl",
	INC_L:      "inc l",
	DEC_L:      "dec l",
	LD_L_N:     "ld l,n",
	CPL:        "cpl",
	JR_NC:      "jr nc,e",
	LD_SP_NN:   "ld sp,nn",
	LD_INN_A:   "ld (nn),a",
	INC_SP:     "inc sp",
	INC_IHL:    "inc (hl)",
	DEC_IHL:    "dec (hl)",
	LD_IHL_N:   "ld (hl),n",
	SCF:        "scf",
	JR_C:       "jr c,e",
	ADD_HL_SP:  "add hl,sp",
	LD_A_INN:   "ld a,(nn)",
	DEC_SP:     "dec sp",
	INC_A:      "inc a",
	DEC_A:      "dec a",
	LD_A_N:     "ld a,n",
	CCF:        "ccf",
	LD_B_B:     "ld b,b",
	LD_B_C:     "ld b,c",
	LD_B_D:     "ld b,d",
	LD_B_E:     "ld b,e",
	LD_B_H:     "ld b,h",
	LD_B_L:     "ld b,l",
	LD_B_IHL:   "ld b,(hl)",
	LD_B_A:     "ld b,a",
	LD_C_B:     "ld c,b",
	LD_C_C:     "ld c,c",
	LD_C_D:     "ld c,d",
	LD_C_E:     "ld c,e",
	LD_C_H:     "ld c,h",
	LD_C_L:     "ld c,l",
	LD_C_IHL:   "ld c,(hl)",
	LD_C_A:     "ld c,a",
	LD_D_B:     "ld d,b",
	LD_D_C:     "ld d,c",
	LD_D_D:     "ld d,d",
	LD_D_E:     "ld d,e",
	LD_D_H:     "ld d,h",
	LD_D_L:     "ld d,l",
	LD_D_IHL:   "ld d,(hl)",
	LD_D_A:     "ld d,a",
	LD_E_B:     "ld e,b",
	LD_E_C:     "ld e,c",
	LD_E_D:     "ld e,d",
	LD_E_E:     "ld e,e",
	LD_E_H:     "ld e,h",
	LD_E_L:     "ld e,l",
	LD_E_IHL:   "ld e,(hl)",
	LD_E_A:     "ld e,a",
	LD_H_B:     "ld h,b",
	LD_H_C:     "ld h,c",
	LD_H_D:     "ld h,d",
	LD_H_E:     "ld h,e",
	LD_H_H:     "ld h,h",
	LD_H_L:     "ld h,l",
	LD_H_IHL:   "ld h,(hl)",
	LD_H_A:     "ld h,a",
	LD_L_B:     "ld l,b",
	LD_L_C:     "ld l,c",
	LD_L_D:     "ld l,d",
	LD_L_E:     "ld l,e",
	LD_L_H:     "ld l,h",
	LD_L_L:     "ld l,l",
	LD_L_IHL:   "ld l,(hl)",
	LD_L_A:     "ld l,a",
	LD_IHL_B:   "ld (hl),b",
	LD_IHL_C:   "ld (hl),c",
	LD_IHL_D:   "ld (hl),d",
	LD_IHL_E:   "ld (hl),e",
	LD_IHL_H:   "ld (hl),h",
	LD_IHL_L:   "ld (hl),l",
	HALT:       "halt",
	LD_IHL_A:   "ld (hl),a",
	LD_A_B:     "ld a,b",
	LD_A_C:     "ld a,c",
	LD_A_D:     "ld a,d",
	LD_A_E:     "ld a,e",
	LD_A_H:     "ld a,h",
	LD_A_L:     "ld a,l",
	LD_A_IHL:   "ld a,(hl)",
	LD_A_A:     "ld a,a",
	ADD_A_B:    "add a,b",
	ADD_A_C:    "add a,c",
	ADD_A_D:    "add a,d",
	ADD_A_E:    "add a,e",
	ADD_A_H:    "add a,h",
	ADD_A_L:    "add a,l",
	ADD_A_IHL:  "add a,(hl)",
	ADD_A_A:    "add a,a",
	ADC_A_B:    "adc a,b",
	ADC_A_C:    "adc a,c",
	ADC_A_D:    "adc a,d",
	ADC_A_E:    "adc a,e",
	ADC_A_H:    "adc a,h",
	ADC_A_L:    "adc a,l",
	ADC_A_IHL:  "adc a,(hl)",
	ADC_A_A:    "adc a,a",
	SUB_B:      "sub b",
	SUB_C:      "sub c",
	SUB_D:      "sub d",
	SUB_E:      "sub e",
	SUB_H:      "sub h",
	SUB_L:      "sub l",
	SUB_IHL:    "sub (hl)",
	SUB_A:      "sub a",
	SBC_A_B:    "sbc a,b",
	SBC_A_C:    "sbc a,c",
	SBC_A_D:    "sbc a,d",
	SBC_A_E:    "sbc a,e",
	SBC_A_H:    "sbc a,h",
	SBC_A_L:    "sbc a,l",
	SBC_A_IHL:  "sbc a,(hl)",
	SBC_A_A:    "sbc a,a",
	AND_B:      "and b",
	AND_C:      "and c",
	AND_D:      "and d",
	AND_E:      "and e",
	AND_H:      "and h",
	AND_L:      "and l",
	AND_IHL:    "and (hl)",
	AND_A:      "and a",
	XOR_B:      "xor b",
	XOR_C:      "xor c",
	XOR_D:      "xor d",
	XOR_E:      "xor e",
	XOR_H:      "xor h",
	XOR_L:      "xor l",
	XOR_IHL:    "xor (hl)",
	XOR_A:      "xor a",
	OR_B:       "or b",
	OR_C:       "or c",
	OR_D:       "or d",
	OR_E:       "or e",
	OR_H:       "or h",
	OR_L:       "or l",
	OR_IHL:     "or (hl)",
	OR_A:       "or a",
	CP_B:       "cp b",
	CP_C:       "cp c",
	CP_D:       "cp d",
	CP_E:       "cp e",
	CP_H:       "cp h",
	CP_L:       "cp l",
	CP_IHL:     "cp (hl)",
	CP_A:       "cp a",
	RET_NZ:     "ret nz",
	POP_BC:     "pop bc",
	JP_NZ_NN:   "jp nz,nn",
	JP_NN:      "jp nn",
	CALL_NZ_NN: "call nz,nn",
	PUSH_BC:    "push bc",
	ADD_A_N:    "add a,n",
	RST_00:     "rst 0x00",
	RET_Z:      "ret z",
	RET:        "ret",
	JP_Z_NN:    "jp z,nn",
	CALL_Z_NN:  "call z,nn",
	CALL_NN:    "call nn",
	ADC_A_N:    "adc a,n",
	RST_08:     "rst 0x08",
	RET_NC:     "ret nc",
	POP_DE:     "pop de",
	JP_NC_NN:   "jp nc,nn",
	CALL_NC_NN: "call nc,nn",
	PUSH_DE:    "push de",
	SUB_N:      "sub n",
	RST_10:     "rst 0x10",
	RET_C:      "ret c",
	EXX:        "exx",
	JP_C_NN:    "jp c,nn",
	CALL_C_NN:  "call c,nn",
	SBC_A_N:    "sbc a,n",
	RST_18:     "rst 0x18",
	RET_PO:     "ret po",
	POP_HL:     "pop hl",
	JP_PO_NN:   "jp po,nn",
	EX_ISP_HL:  "ex (sp),hl",
	CALL_PO_NN: "call po,nn",
	PUSH_HL:    "push hl",
	AND_N:      "and n",
	RST_20:     "rst 0x20",
	RET_PE:     "ret pe",
	JP_IHL:     "jp (hl)",
	JP_PE_NN:   "jp pe,nn",
	EX_DE_HL:   "ex de,hl",
	CALL_PE_NN: "call pe,nn",
	XOR_N:      "xor n",
	RST_28:     "rst 0x28",
	RET_P:      "ret p",
	POP_AF:     "pop af",
	JP_P_NN:    "jp p,nn",
	CALL_P_NN:  "call p,nn",
	PUSH_AF:    "push af",
	OR_N:       "or n",
	RST_30:     "rst 0x30",
	RET_M:      "ret m",
	LD_SP_HL:   "ld sp,hl",
	JP_M_NN:    "jp m,nn",
	CALL_M_NN:  "call m,nn",
	CP_N:       "cp n",
	RST_38:     "rst 0x38",
}

// Decode a byte into an Opcode.
// Bytes without an implementation are returned as an ErrOpcode.
func Decode(b byte) (op Opcode, err error) {
	op = Opcode(b)
	if !op.Valid() {
		err = ErrOpcode(b)
	}
	return
}

// Opcodes returns all implemented opcodes in encoding order.
func Opcodes() (ops []Opcode) {
	for b := range 256 {
		op := Opcode(b)
		if op.Valid() {
			ops = append(ops, op)
		}
	}
	return
}

// Valid returns true if the opcode is implemented.
func (op Opcode) Valid() bool {
	return len(opcodeMnemonic[op]) != 0
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	mnemonic := opcodeMnemonic[op]
	if len(mnemonic) == 0 {
		return fmt.Sprintf("db 0x%02x", uint8(op))
	}
	return mnemonic
}

// Relative returns true if the operand is a signed offset.
func (op Opcode) Relative() bool {
	switch op {
	case DJNZ, JR, JR_NZ, JR_Z, JR_NC, JR_C:
		return true
	}
	return false
}

// Operands returns the operand words of the mnemonic.
func (op Opcode) Operands() (operands []string) {
	_, args, ok := strings.Cut(opcodeMnemonic[op], " ")
	if !ok {
		return
	}
	operands = strings.Split(args, ",")
	return
}

// Size returns the number of bytes of the instruction, including the opcode.
func (op Opcode) Size() (size int) {
	if !op.Valid() {
		return 1
	}

	size = 1
	for _, operand := range op.Operands() {
		switch operand {
		case "n":
			size += 1
		case "nn", "(nn)":
			size += 2
		case "e":
			if op.Relative() {
				size += 1
			}
		}
	}
	return
}
