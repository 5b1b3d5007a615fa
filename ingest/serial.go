// Package ingest adapts a live RDS hardware source into a stream of
// rds.RawBlock values, the way go1090's rtl_adsb package turns a running
// rtl_adsb process into a stream of ADSBMsg values. It never reaches into
// decoder internals; it only ever calls rds.NewRawBlock and hands the
// result to a caller-supplied handler.
package ingest

import (
	"bufio"
	"context"
	"fmt"
	"time"

	"go.bug.st/serial"

	"github.com/kradlow-go/rds"
)

// BlockHandler receives one decoded raw block at a time.
type BlockHandler func(rds.RawBlock)

// blockFrameSize is the wire framing used by this adapter: one status byte
// followed by the 16-bit block, msb first.
const blockFrameSize = 3

// SerialSource reads framed RDS blocks from a USB-serial-attached
// tuner/demodulator. It owns the serial port and produces no output of its
// own; callers get blocks through the handler passed to Run.
type SerialSource struct {
	portName string
	mode     *serial.Mode
}

// NewSerialSource configures a source for the named serial port at the
// given baud rate. The port is not opened until Run is called.
func NewSerialSource(portName string, baud int) *SerialSource {
	return &SerialSource{
		portName: portName,
		mode:     &serial.Mode{BaudRate: baud},
	}
}

// Run opens the serial port and reads framed blocks until ctx is canceled
// or a read error occurs. Each frame is {status, msb, lsb}; status's low 3
// bits are the block id (A=0 B=1 C=2 D=3 C'=4), bit 3 marks a corrected
// block, bit 4 marks an uncorrectable one -- matching rds.NewRawBlock's
// parameter shape.
func (s *SerialSource) Run(ctx context.Context, handler BlockHandler) error {
	port, err := serial.Open(s.portName, s.mode)
	if err != nil {
		return fmt.Errorf("ingest: open %s: %w", s.portName, err)
	}
	defer port.Close()

	if err := port.SetReadTimeout(500 * time.Millisecond); err != nil {
		return fmt.Errorf("ingest: set read timeout: %w", err)
	}

	reader := bufio.NewReaderSize(port, blockFrameSize*64)
	frame := make([]byte, blockFrameSize)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := readFull(ctx, reader, frame); err != nil {
			return fmt.Errorf("ingest: read frame: %w", err)
		}

		status, msb, lsb := frame[0], frame[1], frame[2]
		blockID := int(status & 0x07)
		corrected := status&0x08 != 0
		uncorrectable := status&0x10 != 0

		handler(rds.NewRawBlock(msb, lsb, blockID, corrected, uncorrectable))
	}
}

// readFull fills buf completely, retrying on the serial read timeout so a
// slow trickle of bytes doesn't surface as a spurious error; ctx is
// checked after every timeout, so cancellation still ends the wait.
func readFull(ctx context.Context, r *bufio.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
		if m == 0 {
			if err := ctx.Err(); err != nil {
				return n, err
			}
		}
	}
	return n, nil
}
