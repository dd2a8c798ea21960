package store

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fxamacker/cbor/v2"
)

const SNAPSHOT_KEY = "snapshot-%s"

// Snapshot is a saved level. Level holds the compressed level string.
type Snapshot struct {
	_       struct{} `cbor:",toarray"`
	Name    string
	Level   string
	Objects int
	// Unix seconds
	Saved int64
}

func (s *Snapshot) Encode() ([]byte, error) {
	return cbor.Marshal(s)
}

func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var snapshot Snapshot
	if err := cbor.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("store: invalid snapshot: %w", err)
	}
	return &snapshot, nil
}

// Hash identifies a level by the content of its uncompressed text.
func Hash(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}

func snapshotKey(hash string) string {
	return fmt.Sprintf(SNAPSHOT_KEY, hash)
}
