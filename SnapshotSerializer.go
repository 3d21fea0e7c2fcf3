package main

import (
	"fmt"

	json "github.com/bytedance/sonic"
	"github.com/d3vpratap/zeotap/contracts"
)

type SnapshotJsonSerializer struct {
}

// snapshotPayload also accepts the older "data" key for the cell array
type snapshotPayload struct {
	Name  string             `json:"name"`
	Cells [][]contracts.Cell `json:"cells"`
	Data  [][]contracts.Cell `json:"data,omitempty"`
}

func NewSnapshotJsonSerializer() *SnapshotJsonSerializer {
	return &SnapshotJsonSerializer{}
}

func (s *SnapshotJsonSerializer) Marshal(snapshot *contracts.Snapshot) ([]byte, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("%w: nothing to marshal", contracts.SnapshotError)
	}
	return json.Marshal(snapshot)
}

func (s *SnapshotJsonSerializer) Unmarshal(data []byte) (*contracts.Snapshot, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", contracts.SnapshotError)
	}

	payload := snapshotPayload{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %s", contracts.SnapshotError, err.Error())
	}

	cells := payload.Cells
	if cells == nil {
		cells = payload.Data
	}

	return &contracts.Snapshot{
		Name:  payload.Name,
		Cells: cells,
	}, nil
}
