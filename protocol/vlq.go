package protocol

import "errors"

var (
	// ErrTruncated is returned when a decode runs out of bytes.
	ErrTruncated = errors.New("truncated command data")
	// ErrOverflow is returned when a varint does not fit in 32 bits.
	ErrOverflow = errors.New("varint exceeds 32 bits")
)

// Command arguments are encoded as base-128 varints, most significant
// group first, high bit marking continuation. Values up to 127 cost a
// single byte, which covers almost all effect parameters.

// AppendUint appends the varint encoding of v to dst and returns the
// extended slice.
func AppendUint(dst []byte, v uint32) []byte {
	switch {
	case v < 1<<7:
		return append(dst, byte(v))
	case v < 1<<14:
		return append(dst, byte(v>>7)|0x80, byte(v&0x7F))
	case v < 1<<21:
		return append(dst, byte(v>>14)|0x80, byte(v>>7)|0x80, byte(v&0x7F))
	case v < 1<<28:
		return append(dst, byte(v>>21)|0x80, byte(v>>14)|0x80, byte(v>>7)|0x80, byte(v&0x7F))
	default:
		return append(dst, byte(v>>28)|0x80, byte(v>>21)|0x80, byte(v>>14)|0x80, byte(v>>7)|0x80, byte(v&0x7F))
	}
}

// DecodeUint decodes one varint from *data, advancing the slice past
// the consumed bytes.
func DecodeUint(data *[]byte) (uint32, error) {
	var v uint32
	for i := 0; ; i++ {
		if len(*data) == 0 {
			return 0, ErrTruncated
		}
		if i == 5 {
			return 0, ErrOverflow
		}
		c := (*data)[0]
		*data = (*data)[1:]
		v = v<<7 | uint32(c&0x7F)
		if c&0x80 == 0 {
			return v, nil
		}
	}
}
