package protocol

// Wire layout of one frame:
//
//	sync(0x7E) | len | cmd | args... | crc16 hi | crc16 lo
//
// len counts cmd plus args. The CRC covers len, cmd and args.
const (
	SyncByte   = 0x7E
	MaxPayload = 16 // cmd byte plus worst-case argument encoding
)

// AppendFrame appends a complete frame carrying cmd and its encoded
// arguments to dst and returns the extended slice. Args longer than
// MaxPayload-1 bytes produce a frame the receiver's length check will
// reject, so callers keep argument lists small.
func AppendFrame(dst []byte, cmd uint8, args []byte) []byte {
	payload := 1 + len(args)
	dst = append(dst, SyncByte, byte(payload), cmd)
	dst = append(dst, args...)
	crc := CRC16(dst[len(dst)-payload-1:])
	return append(dst, byte(crc>>8), byte(crc))
}

// FrameHandler receives each decoded frame. args is only valid for
// the duration of the call.
type FrameHandler func(cmd uint8, args []byte) error

// Decoder reassembles frames from an arbitrary-sized byte stream. A
// frame with a bad length or CRC is dropped and the decoder scans
// forward to the next sync byte.
type Decoder struct {
	handler FrameHandler
	buf     [MaxPayload + 3]byte // len + payload + crc
	n       int
	synced  bool
}

// NewDecoder returns a decoder delivering frames to handler.
func NewDecoder(handler FrameHandler) *Decoder {
	return &Decoder{handler: handler}
}

// Feed consumes a chunk of the serial stream, invoking the handler
// once per complete valid frame. It returns the last handler error,
// after processing the whole chunk.
func (d *Decoder) Feed(p []byte) error {
	var lastErr error
	for _, c := range p {
		if !d.synced {
			if c == SyncByte {
				d.synced = true
				d.n = 0
			}
			continue
		}

		d.buf[d.n] = c
		d.n++

		payload := int(d.buf[0])
		if payload < 1 || payload > MaxPayload {
			d.resync()
			continue
		}
		if d.n < 1+payload+2 {
			continue
		}

		// Full frame collected; verify and deliver.
		body := d.buf[:1+payload]
		crc := uint16(d.buf[1+payload])<<8 | uint16(d.buf[1+payload+1])
		if CRC16(body) != crc {
			d.resync()
			continue
		}
		if err := d.handler(body[1], body[2:]); err != nil {
			lastErr = err
		}
		d.synced = false
		d.n = 0
	}
	return lastErr
}

// resync drops the partial frame and waits for the next sync byte.
func (d *Decoder) resync() {
	d.synced = false
	d.n = 0
}
