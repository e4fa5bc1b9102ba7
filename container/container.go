// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (errors.go style); header layout
// grounded on the retrieval pack's fixed-binary-header convention (see
// ianlewis-go-dictzip's gzip header reader, which reads a fixed binary
// header with encoding/binary ahead of a variable-length payload).

// Package container implements the .lz77 container format: a 20-byte
// little-endian header followed by a token-stream payload (spec §4.5).
package container

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Magic is the container's 4-byte magic number, "LZ77" read little-endian.
const Magic uint32 = 0x4C5A3737

// HeaderSize is the fixed size, in bytes, of the container header.
const HeaderSize = 20

// MaxPayload bounds how large a payload Read will accept, guarding against
// a corrupt or hostile length field (spec §4.5).
const MaxPayload = 512 * 1024 * 1024

// ErrCorruptContainer is returned for a bad magic number or an impossible
// payload size (zero or larger than MaxPayload).
var ErrCorruptContainer = errors.New("container: corrupt container")

// Header is the container's 20-byte preamble.
type Header struct {
	Width   uint32
	Height  uint32
	Payload uint64 // byte length of the token stream that follows
}

// Write serialises header and payload to w. Payload's length must equal
// header.Payload and be a multiple of codec.TokenSize (the caller, not
// this package, knows the token size; Write only requires a multiple of
// 12 so it does not need to import codec).
func Write(w io.Writer, header Header, payload []byte) error {
	if uint64(len(payload)) != header.Payload {
		return fmt.Errorf("container: payload length %d does not match header %d", len(payload), header.Payload)
	}
	if len(payload)%12 != 0 {
		return fmt.Errorf("container: payload length %d is not a multiple of 12", len(payload))
	}

	var buf [HeaderSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], Magic)
	binary.LittleEndian.PutUint32(buf[4:8], header.Width)
	binary.LittleEndian.PutUint32(buf[8:12], header.Height)
	binary.LittleEndian.PutUint64(buf[12:20], header.Payload)

	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("container: write header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("container: write payload: %w", err)
	}
	return nil
}

// Read reads and validates a container header, then reads exactly
// header.Payload bytes. Bad magic, a zero payload, or a payload larger
// than MaxPayload all return ErrCorruptContainer.
func Read(r io.Reader) (Header, []byte, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, nil, fmt.Errorf("container: read header: %w", err)
	}

	magic := binary.LittleEndian.Uint32(buf[0:4])
	if magic != Magic {
		return Header{}, nil, ErrCorruptContainer
	}

	header := Header{
		Width:   binary.LittleEndian.Uint32(buf[4:8]),
		Height:  binary.LittleEndian.Uint32(buf[8:12]),
		Payload: binary.LittleEndian.Uint64(buf[12:20]),
	}

	if header.Payload == 0 || header.Payload > MaxPayload {
		return Header{}, nil, ErrCorruptContainer
	}

	payload := make([]byte, header.Payload)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Header{}, nil, fmt.Errorf("container: read payload: %w", err)
	}

	return header, payload, nil
}
