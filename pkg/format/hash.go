package format

import (
	"crypto/md5"
	"encoding/hex"
)

// MD5 returns the hex encoded md5 digest of s. It is meant for display and
// cache keys, not for anything security related.
func MD5(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
