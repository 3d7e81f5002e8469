package charstats

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// maxBitsPerCode bounds the depth of any tree over the 27-symbol alphabet.
const maxBitsPerCode = 32

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size valid bits is the first bit.
	Bits uint32
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint32) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one bit, which must be 0 or 1.
func (hc Code) Append(bit uint32) Code {
	assert.Assertf(hc.Size < maxBitsPerCode, "code %s is already %d bits long", hc, hc.Size)
	assert.Assertf(bit <= 1, "bit %d is not 0 or 1", bit)
	return MakeCode(hc.Size+1, (hc.Bits<<1)|bit)
}

// Bitstring returns the bits of this Code as '0' and '1' characters, first
// bit first.
func (hc Code) Bitstring() string {
	if hc.Size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return fmt.Sprintf(format, hc.Bits)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Bitstring())
}

var _ fmt.Stringer = Code{}
