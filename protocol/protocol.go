// Package protocol frames timer telemetry for a serial link.
//
// A frame is
//
//	[len][seq][payload...][crc16 hi][crc16 lo][0x7E]
//
// where len counts the whole frame, seq carries 0x10 in its high nibble,
// and the payload is a message ID followed by its fields, all VLQ encoded.
package protocol

import "errors"

// Frame layout.
const (
	FrameHeader  = 2
	FrameTrailer = 3
	FrameMin     = FrameHeader + FrameTrailer
	FrameMax     = 96

	PositionLen = 0
	PositionSeq = 1

	SyncByte = 0x7E
	SeqDest  = 0x10
	SeqMask  = 0x0F
)

// Message IDs.
const (
	MsgStats uint64 = 1
	MsgWake  uint64 = 2
)

var (
	ErrBadLength      = errors.New("frame length out of range")
	ErrBadSequence    = errors.New("frame sequence byte malformed")
	ErrBadSync        = errors.New("frame missing trailing sync byte")
	ErrBadCRC         = errors.New("frame CRC mismatch")
	ErrUnknownMessage = errors.New("unknown message ID")
	ErrTrailingData   = errors.New("trailing bytes after message")
)

// Stats mirrors the timer's stats snapshot on the wire.
type Stats struct {
	Ticks          uint64
	LoopsPerTick   uint64
	LoopsPerSecond uint64
	Sleepers       uint64
	Wakes          uint64
	Dropped        uint64
}

// Wake reports one woken sleeper.
type Wake struct {
	Tick     uint64
	WakeTick uint64
}

// Message is one decoded frame.
type Message struct {
	Seq   uint8
	ID    uint64
	Stats Stats
	Wake  Wake
}
