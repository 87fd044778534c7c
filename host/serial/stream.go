package serial

import (
	"context"
	"errors"
	"fmt"
	"io"

	"ticktimer/protocol"
)

// ReadMessages decodes telemetry frames from r and hands each message to
// fn until ctx is done, r reaches EOF, or fn returns an error. Zero-byte
// reads (port read timeouts) are retried. It returns the number of times
// the decoder lost sync.
func ReadMessages(ctx context.Context, r io.Reader, fn func(protocol.Message) error) (int, error) {
	var dec protocol.Decoder
	buf := make([]byte, 256)

	for {
		if err := ctx.Err(); err != nil {
			return dec.Dropped(), nil
		}

		n, err := r.Read(buf)
		for _, msg := range dec.Feed(buf[:n]) {
			if ferr := fn(msg); ferr != nil {
				return dec.Dropped(), ferr
			}
		}

		switch {
		case errors.Is(err, io.EOF):
			return dec.Dropped(), nil
		case err != nil:
			return dec.Dropped(), fmt.Errorf("read telemetry: %w", err)
		}
	}
}
