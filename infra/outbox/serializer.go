package outbox

import (
	"errors"
	"hash/crc32"

	"mimir/api/pb"
)

// Payloads are protobuf-encoded events behind a small frame:
// [len:4][crc32:4] little-endian, CRC over the body.

var ErrCorruptPayload = errors.New("outbox: corrupted payload")

func EncodeEvent(ev *pb.Event) ([]byte, error) {
	body, err := pb.Marshal(ev)
	if err != nil {
		return nil, err
	}
	header := make([]byte, 8)
	putUint32LE(header[:4], uint32(len(body)))
	putUint32LE(header[4:], crc32.ChecksumIEEE(body))
	return append(header, body...), nil
}

func DecodeEvent(data []byte) (*pb.Event, error) {
	if len(data) < 8 {
		return nil, ErrCorruptPayload
	}
	body := data[8:]
	if readUint32LE(data[:4]) != uint32(len(body)) {
		return nil, ErrCorruptPayload
	}
	if readUint32LE(data[4:8]) != crc32.ChecksumIEEE(body) {
		return nil, ErrCorruptPayload
	}
	var ev pb.Event
	if err := pb.Unmarshal(body, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func putUint32LE(buf []byte, v uint32) {
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
	buf[3] = byte(v >> 24)
}

func readUint32LE(buf []byte) uint32 {
	return uint32(buf[0]) |
		uint32(buf[1])<<8 |
		uint32(buf[2])<<16 |
		uint32(buf[3])<<24
}
