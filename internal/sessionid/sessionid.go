package sessionid

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"
)

// Crockford's base32 alphabet, lowercase. Session ids sort
// lexicographically in creation order because the leading bits are a
// big-endian millisecond timestamp.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// New returns a fresh 26-character session id. The id is a UUIDv7
// (48-bit millisecond timestamp plus random tail) encoded as base32.
func New() string {
	return NewAt(time.Now(), rand.Reader)
}

// NewAt builds a session id from an explicit timestamp and entropy
// source, used by tests that need reproducible ids.
func NewAt(t time.Time, entropy io.Reader) string {
	var id [16]byte

	ms := t.UnixMilli()
	id[0] = byte(ms >> 40)
	id[1] = byte(ms >> 32)
	id[2] = byte(ms >> 24)
	id[3] = byte(ms >> 16)
	id[4] = byte(ms >> 8)
	id[5] = byte(ms)

	if _, err := io.ReadFull(entropy, id[6:]); err != nil {
		panic(fmt.Sprintf("sessionid: entropy read failed: %v", err))
	}

	// version 7, variant 10
	id[6] = (id[6] & 0x0f) | 0x70
	id[8] = (id[8] & 0x3f) | 0x80

	return encode(id)
}

// Time extracts the embedded creation timestamp from a session id. It
// returns false when the id is not a valid 26-character encoding.
func Time(id string) (time.Time, bool) {
	raw, ok := decode(id)
	if !ok {
		return time.Time{}, false
	}
	ms := int64(raw[0])<<40 | int64(raw[1])<<32 | int64(raw[2])<<24 |
		int64(raw[3])<<16 | int64(raw[4])<<8 | int64(raw[5])
	return time.UnixMilli(ms), true
}

// encode packs 128 bits into 26 base32 characters, five bits at a time,
// most significant bits first.
func encode(data [16]byte) string {
	out := make([]byte, 26)
	for i := range out {
		bit := i * 5
		byteIndex := bit / 8
		shift := bit % 8

		var v byte
		if shift <= 3 {
			v = (data[byteIndex] >> (3 - shift)) & 0x1f
		} else {
			v = (data[byteIndex] << (shift - 3)) & 0x1f
			if byteIndex+1 < len(data) {
				v |= data[byteIndex+1] >> (11 - shift)
			}
		}
		out[i] = alphabet[v]
	}
	return string(out)
}

func decode(id string) ([16]byte, bool) {
	var out [16]byte
	if len(id) != 26 {
		return out, false
	}
	for i := 0; i < len(id); i++ {
		v := indexOf(id[i])
		if v < 0 {
			return out, false
		}
		bit := i * 5
		byteIndex := bit / 8
		shift := bit % 8
		if shift <= 3 {
			out[byteIndex] |= byte(v) << (3 - shift)
		} else {
			out[byteIndex] |= byte(v) >> (shift - 3)
			if byteIndex+1 < len(out) {
				out[byteIndex+1] |= byte(v) << (11 - shift)
			}
		}
	}
	return out, true
}

func indexOf(c byte) int {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == c {
			return i
		}
	}
	return -1
}
