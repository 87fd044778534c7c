package protocol

import "errors"

var (
	ErrInvalidVLQ     = errors.New("invalid VLQ encoding")
	ErrBufferTooSmall = errors.New("buffer too small for VLQ")
)

// maxVLQLen is the longest encoding of a uint64: ceil(64/7) groups.
const maxVLQLen = 10

// AppendVLQ appends v to dst as big-endian 7-bit groups, every group but
// the last flagged with 0x80.
func AppendVLQ(dst []byte, v uint64) []byte {
	var buf [maxVLQLen]byte
	pos := len(buf) - 1
	buf[pos] = byte(v & 0x7F)
	for v >>= 7; v != 0; v >>= 7 {
		pos--
		buf[pos] = byte(v&0x7F) | 0x80
	}
	return append(dst, buf[pos:]...)
}

// DecodeVLQ decodes one value from the front of *data and advances it.
func DecodeVLQ(data *[]byte) (uint64, error) {
	var v uint64
	for i := 0; ; i++ {
		if len(*data) == 0 {
			return 0, ErrBufferTooSmall
		}
		if i == maxVLQLen {
			return 0, ErrInvalidVLQ
		}
		c := (*data)[0]
		*data = (*data)[1:]

		if v > (^uint64(0))>>7 {
			return 0, ErrInvalidVLQ
		}
		v = v<<7 | uint64(c&0x7F)
		if c&0x80 == 0 {
			return v, nil
		}
	}
}
