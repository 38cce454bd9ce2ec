package token

// Incremental decoding state. Tokens are composed in place
// with shift-and-mask operations as the bytes arrive.
type decoder struct {
	value   uint32
	mask    uint32
	shift   int  // bit position for the next continuation byte
	pending bool // a sequence has been started and not emitted
}

// Feeds the next byte. nextIsCont must report whether the byte
// that follows is a continuation byte, which is the only lookahead
// needed to know when a multi-byte token is complete.
func (self *decoder) feed(b byte, nextIsCont bool) (Token, bool) {
	switch {
	case IsSequenceStart(b):
		n := sequenceLen(b)
		self.shift = (n - 2) * 8
		// the sign extension of the lead byte is intentional, the
		// completion mask clears it once the sequence is done
		self.value = uint32(int32(int8(b))) << uint(self.shift+8)
		self.mask = completionMasks[n]
		self.pending = true
		return 0, false
	case IsContinuation(b):
		if !self.pending { // stray continuation
			self.value, self.mask, self.shift = 0, 0, 0
			self.pending = true
		}
		if self.shift >= 0 {
			self.value |= uint32(b) << uint(self.shift)
			self.shift -= 8
		} else { // more continuation bytes than announced
			self.value = (self.value << 8) | uint32(b)
		}
		if nextIsCont { return 0, false }
		self.pending = false
		return Token(self.value ^ self.mask), true
	default:
		self.pending = false
		return Token(b), true
	}
}

func sequenceLen(lead byte) int {
	switch {
	case (lead & 0xE0) == 0xC0:
		return 2
	case (lead & 0xF0) == 0xE0:
		return 3
	default:
		return 4
	}
}
