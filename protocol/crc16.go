// Serial framing for the effect control link.
//
// The link is a one-way command stream from the host to the firmware:
// small framed messages carrying an effect command and its arguments.
// There is no sequencing or acknowledgement; a corrupt frame is
// dropped and the decoder resynchronizes on the next sync byte.
package protocol

// CRC16 computes CRC-16/CCITT-FALSE over data. It protects each frame
// against line noise on the serial link.
func CRC16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
