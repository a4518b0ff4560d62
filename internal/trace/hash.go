package trace

import (
	"crypto/sha256"
	"encoding/hex"
)

// DomainTrace is the hash domain for trace snapshots.
// The version suffix allows the encoding to change without colliding.
const DomainTrace = "tickid/trace/v1"

// Hash computes SHA256(domain + 0x00 + data) as lowercase hex.
// The null byte separator prevents domain/data boundary ambiguity.
func Hash(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
