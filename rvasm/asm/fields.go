package asm

// Field accessors read fixed field boundaries back out of an encoded word.
// Immediate accessors sign-extend, so they return the value that was encoded.

func (w Word) Opcode() uint32 { return uint32(w) & 0x7F }

func (w Word) Rd() Register { return Register(uint32(w) >> 7 & 0x1F) }

func (w Word) Funct3() uint32 { return uint32(w) >> 12 & 0x7 }

func (w Word) Rs1() Register { return Register(uint32(w) >> 15 & 0x1F) }

func (w Word) Rs2() Register { return Register(uint32(w) >> 20 & 0x1F) }

func (w Word) Funct7() uint32 { return uint32(w) >> 25 }

func (w Word) ImmI() int32 {
	return int32(w) >> 20
}

func (w Word) ImmS() int32 {
	return int32(w)>>25<<5 | int32(uint32(w) >> 7 & 0x1F)
}

func (w Word) ImmB() int32 {
	v := uint32(w)
	return int32(v)>>31<<12 |
		int32(v>>7&0x1)<<11 |
		int32(v>>25&0x3F)<<5 |
		int32(v>>8&0xF)<<1
}

func (w Word) ImmU() uint32 {
	return uint32(w) >> 12
}

func (w Word) ImmJ() int32 {
	v := uint32(w)
	return int32(v)>>31<<20 |
		int32(v>>12&0xFF)<<12 |
		int32(v>>20&0x1)<<11 |
		int32(v>>21&0x3FF)<<1
}
