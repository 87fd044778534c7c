package protocol

import "bytes"

// Encoder builds frames with a rolling sequence number.
type Encoder struct {
	seq uint8
}

// AppendStats appends a stats frame to dst.
func (e *Encoder) AppendStats(dst []byte, s Stats) []byte {
	return e.appendFrame(dst, MsgStats,
		s.Ticks, s.LoopsPerTick, s.LoopsPerSecond, s.Sleepers, s.Wakes, s.Dropped)
}

// AppendWake appends a wake frame to dst.
func (e *Encoder) AppendWake(dst []byte, w Wake) []byte {
	return e.appendFrame(dst, MsgWake, w.Tick, w.WakeTick)
}

func (e *Encoder) appendFrame(dst []byte, id uint64, fields ...uint64) []byte {
	start := len(dst)
	dst = append(dst, 0, SeqDest|e.seq&SeqMask)
	e.seq = (e.seq + 1) & SeqMask

	dst = AppendVLQ(dst, id)
	for _, f := range fields {
		dst = AppendVLQ(dst, f)
	}

	dst[start+PositionLen] = uint8(len(dst) - start + FrameTrailer)
	crc := CRC16(dst[start:])
	return append(dst, uint8(crc>>8), uint8(crc), SyncByte)
}

// DecodeFrame validates one complete frame and decodes its message.
func DecodeFrame(frame []byte) (Message, error) {
	n := len(frame)
	if n < FrameMin || n > FrameMax || int(frame[PositionLen]) != n {
		return Message{}, ErrBadLength
	}
	seq := frame[PositionSeq]
	if seq&^SeqMask != SeqDest {
		return Message{}, ErrBadSequence
	}
	if frame[n-1] != SyncByte {
		return Message{}, ErrBadSync
	}
	want := uint16(frame[n-FrameTrailer])<<8 | uint16(frame[n-FrameTrailer+1])
	if CRC16(frame[:n-FrameTrailer]) != want {
		return Message{}, ErrBadCRC
	}

	payload := frame[FrameHeader : n-FrameTrailer]
	msg := Message{Seq: seq & SeqMask}
	var err error
	if msg.ID, err = DecodeVLQ(&payload); err != nil {
		return Message{}, err
	}

	var fields []*uint64
	switch msg.ID {
	case MsgStats:
		s := &msg.Stats
		fields = []*uint64{&s.Ticks, &s.LoopsPerTick, &s.LoopsPerSecond, &s.Sleepers, &s.Wakes, &s.Dropped}
	case MsgWake:
		fields = []*uint64{&msg.Wake.Tick, &msg.Wake.WakeTick}
	default:
		return Message{}, ErrUnknownMessage
	}
	for _, f := range fields {
		if *f, err = DecodeVLQ(&payload); err != nil {
			return Message{}, err
		}
	}
	if len(payload) != 0 {
		return Message{}, ErrTrailingData
	}
	return msg, nil
}

// Decoder splits a byte stream into messages, resynchronizing on the sync
// byte after garbage or a corrupt frame.
type Decoder struct {
	buf      []byte
	unsynced bool
	dropped  int
}

// Feed consumes data and returns every message completed by it.
func (d *Decoder) Feed(data []byte) []Message {
	d.buf = append(d.buf, data...)

	var out []Message
	for len(d.buf) > 0 {
		if d.unsynced {
			i := bytes.IndexByte(d.buf, SyncByte)
			if i < 0 {
				d.buf = d.buf[:0]
				break
			}
			d.buf = d.buf[i+1:]
			d.unsynced = false
			continue
		}

		// Skip idle sync bytes between frames.
		if d.buf[0] == SyncByte {
			d.buf = d.buf[1:]
			continue
		}

		n := int(d.buf[PositionLen])
		if n < FrameMin || n > FrameMax {
			d.desync()
			continue
		}
		if len(d.buf) < n {
			break
		}

		msg, err := DecodeFrame(d.buf[:n])
		if err != nil {
			d.desync()
			continue
		}
		d.buf = d.buf[n:]
		out = append(out, msg)
	}

	return out
}

// Dropped returns how many times the decoder lost sync.
func (d *Decoder) Dropped() int {
	return d.dropped
}

func (d *Decoder) desync() {
	d.unsynced = true
	d.dropped++
}
