package store

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/hap-protocol/hap-go/pkg/wire"
)

// HashDocument returns the BLAKE2b-256 hash (hex) of the document's
// canonical CBOR encoding. The encoding is deterministic, so equal
// databases hash equally regardless of how they were built.
func HashDocument(doc *wire.Document) (string, error) {
	data, err := wire.Marshal(doc)
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
