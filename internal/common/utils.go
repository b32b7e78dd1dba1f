package common

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/dtnitsch/mr-verify/pkg/storage"
)

// Fingerprint hashes the names and contents of every document in the
// given groups, in order. Identical inputs give identical fingerprints.
func Fingerprint(groups ...[]storage.Document) string {
	h := sha256.New()
	var size [8]byte
	for _, docs := range groups {
		binary.BigEndian.PutUint64(size[:], uint64(len(docs)))
		h.Write(size[:])
		for _, doc := range docs {
			for _, part := range [][]byte{[]byte(doc.Name), doc.Content} {
				binary.BigEndian.PutUint64(size[:], uint64(len(part)))
				h.Write(size[:])
				h.Write(part)
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
