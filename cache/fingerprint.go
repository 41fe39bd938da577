package cache

import (
	"encoding/binary"
	"encoding/hex"
	"os"

	"github.com/go-crypt/x/blake2b"
	"github.com/poiesic/docload/core"
)

// PathFingerprint derives an opaque fingerprint for a path from its
// last-modified timestamp using BLAKE2b hashing. For a directory the
// directory's own modification time is used, so changes to files inside it
// are only visible at directory granularity.
//
// The returned error wraps core.ErrSourceNotFound or
// core.ErrSourceUnavailable when the path cannot be inspected.
func PathFingerprint(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", core.PathError(path, err)
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(info.ModTime().UnixNano()))

	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write(buf[:])
	return hex.EncodeToString(h.Sum(nil)), nil
}
