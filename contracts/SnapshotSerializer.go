package contracts

import "errors"

type Snapshot struct {
	Name  string   `json:"name"`
	Cells [][]Cell `json:"cells"`
}

type SnapshotSerializer interface {
	Marshal(snapshot *Snapshot) ([]byte, error)
	Unmarshal(data []byte) (*Snapshot, error)
}

var SnapshotError = errors.New("invalid snapshot")
