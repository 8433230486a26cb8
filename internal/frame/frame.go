// Package frame implements the chunked framing used on the local client
// socket: "\n#<decimal-length>\n<payload-bytes>...\n##\n", possibly spread
// across multiple "\n#N\n<N bytes>" chunks. This mirrors the RFC 6242
// chunked-framing shape used for the device-facing NETCONF/SSH byte stream
// (see github.com/damianoneill/net/v2/netconf/rfc6242), but is a much
// smaller, read-one-message-at-a-time codec: the local protocol carries
// whole JSON documents, not an XML token stream, so there is no
// decoder/xml.Decoder composition and no EOM-framing fallback to support.
package frame

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

const maxLengthDigits = 10

// ReadFrame reads one complete chunked-framed message from r and returns its
// payload. It fails on a missing leading "\n#", a non-digit length, a length
// field wider than 10 digits, or a short read — any of which the caller
// should treat as connection-fatal, per the dispatch loop's framing contract.
func ReadFrame(r *bufio.Reader) ([]byte, error) {
	var payload []byte

	for {
		size, end, err := readChunkHeader(r)
		if err != nil {
			return nil, err
		}
		if end {
			return payload, nil
		}

		chunk := make([]byte, size)
		if _, err := io.ReadFull(r, chunk); err != nil {
			return nil, errors.Wrap(err, "short read on chunk payload")
		}
		payload = append(payload, chunk...)
	}
}

func readChunkHeader(r *bufio.Reader) (size uint64, end bool, err error) {
	if b, err := r.ReadByte(); err != nil {
		return 0, false, err
	} else if b != '\n' {
		return 0, false, errors.New("invalid chunk header: missing leading newline")
	}

	if b, err := r.ReadByte(); err != nil {
		return 0, false, err
	} else if b != '#' {
		return 0, false, errors.New("invalid chunk header: missing '#'")
	}

	b, err := r.ReadByte()
	if err != nil {
		return 0, false, err
	}
	if b == '#' {
		if b, err := r.ReadByte(); err != nil {
			return 0, false, err
		} else if b != '\n' {
			return 0, false, errors.New("malformed end marker")
		}
		return 0, true, nil
	}

	var digits []byte
	for b >= '0' && b <= '9' {
		digits = append(digits, b)
		if len(digits) > maxLengthDigits {
			return 0, false, errors.New("chunk length field exceeds 10 digits")
		}
		if b, err = r.ReadByte(); err != nil {
			return 0, false, err
		}
	}
	if len(digits) == 0 {
		return 0, false, errors.New("no valid chunk length detected")
	}
	if b != '\n' {
		return 0, false, errors.New("invalid chunk header: missing newline after length")
	}

	size, err = strconv.ParseUint(string(digits), 10, 64)
	if err != nil {
		return 0, false, errors.Wrap(err, "invalid chunk length")
	}
	if size == 0 {
		return 0, false, errors.New("chunk length must be non-zero")
	}
	return size, false, nil
}

// WriteFrame emits payload as a single chunk followed by the end-of-chunks
// terminator.
func WriteFrame(w io.Writer, payload []byte) error {
	if _, err := io.WriteString(w, "\n#"+strconv.Itoa(len(payload))+"\n"); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n##\n")
	return err
}
