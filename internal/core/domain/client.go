package domain

import (
	"encoding/hex"
	"strconv"

	"github.com/zeebo/xxh3"
)

// ClientContext identifies the requesting client for dedup purposes.
type ClientContext struct {
	RemoteAddr string
	UserAgent  string
}

// Key derives the client identity key for adID. The key is a one way
// xxh3-128 digest, so collisions are possible and accepted.
func (c ClientContext) Key(adID int64) string {
	buf := make([]byte, 0, len(c.RemoteAddr)+len(c.UserAgent)+24)
	buf = append(buf, c.RemoteAddr...)
	buf = append(buf, 0)
	buf = append(buf, c.UserAgent...)
	buf = append(buf, 0)
	buf = strconv.AppendInt(buf, adID, 10)
	sum := xxh3.Hash128(buf).Bytes()
	return hex.EncodeToString(sum[:])
}
