package main

import (
	"fmt"

	"github.com/d3vpratap/zeotap/contracts"
	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

const MaxRowCount = 10000
const MaxColumnCount = 702 // ZZ

var sheetsBucket = []byte("sheets")

// SheetRepository keeps one snapshot per sheet in bbolt. Each mutation loads,
// changes, recalculates and stores the sheet inside a single read-write
// transaction; bbolt allows one writer at a time, so edits never interleave.
type SheetRepository struct {
	db                *bbolt.DB
	serializer        contracts.SnapshotSerializer
	canonicalizer     *Canonicalizer
	factory           *WorkbookFactory
	webhookDispatcher contracts.WebhookDispatcher
}

func NewSheetRepository(
	db *bbolt.DB, serializer contracts.SnapshotSerializer, canonicalizer *Canonicalizer,
	factory *WorkbookFactory, webhookDispatcher contracts.WebhookDispatcher,
) *SheetRepository {
	return &SheetRepository{
		db:                db,
		serializer:        serializer,
		canonicalizer:     canonicalizer,
		factory:           factory,
		webhookDispatcher: webhookDispatcher,
	}
}

func (s *SheetRepository) CreateSheet(name string, rows int, columns int) (*contracts.SheetInfo, error) {
	if rows == 0 {
		rows = DefaultRowCount
	}
	if columns == 0 {
		columns = DefaultColumnCount
	}
	if rows < 1 || rows > MaxRowCount || columns < 1 || columns > MaxColumnCount {
		return nil, fmt.Errorf("%dx%d: %w (max %dx%d)", rows, columns, contracts.InvalidSheetSizeError, MaxRowCount, MaxColumnCount)
	}

	sheetId := uuid.NewString()
	workbook := s.factory.New(name, rows, columns)

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(sheetsBucket)
		if err != nil {
			return err
		}
		return s.store(bucket, sheetId, workbook)
	})
	if err != nil {
		return nil, err
	}

	return s.info(sheetId, workbook), nil
}

func (s *SheetRepository) GetSheet(sheetId string) (snapshot *contracts.Snapshot, err error) {
	err = s.view(sheetId, func(workbook *Workbook) error {
		snapshot = workbook.Serialize()
		return nil
	})
	return
}

// ImportSheet replaces (or creates) a sheet from a serialized snapshot.
// A malformed snapshot leaves the stored sheet unchanged.
func (s *SheetRepository) ImportSheet(sheetId string, data []byte) (*contracts.SheetInfo, error) {
	sheetId = s.canonicalizer.CanonicalizeSheetId(sheetId)

	snapshot, err := s.serializer.Unmarshal(data)
	if err != nil {
		return nil, err
	}

	workbook, err := s.factory.Load(snapshot)
	if err != nil {
		return nil, err
	}

	before := &contracts.Snapshot{}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(sheetsBucket)
		if err != nil {
			return err
		}

		if bucket.Get([]byte(sheetId)) != nil {
			stored, err := s.load(bucket, sheetId)
			if err != nil {
				return err
			}
			before = stored.Serialize()
		}

		return s.store(bucket, sheetId, workbook)
	})
	if err != nil {
		return nil, err
	}

	s.notify(sheetId, before, workbook.Serialize())

	return s.info(sheetId, workbook), nil
}

func (s *SheetRepository) SetCell(sheetId string, cellId string, text string) (cell *contracts.CellView, err error) {
	address, err := s.address(cellId)
	if err != nil {
		return nil, err
	}

	err = s.update(sheetId, func(workbook *Workbook) error {
		if err := workbook.SetCellText(address.Row, address.Col, text); err != nil {
			return err
		}
		cell, err = s.cellView(workbook, address)
		return err
	})
	return
}

func (s *SheetRepository) GetCell(sheetId string, cellId string) (cell *contracts.CellView, err error) {
	address, err := s.address(cellId)
	if err != nil {
		return nil, err
	}

	err = s.view(sheetId, func(workbook *Workbook) error {
		cell, err = s.cellView(workbook, address)
		return err
	})
	return
}

func (s *SheetRepository) FormatCell(sheetId string, cellId string, format string) (cell *contracts.CellView, err error) {
	address, err := s.address(cellId)
	if err != nil {
		return nil, err
	}

	err = s.update(sheetId, func(workbook *Workbook) error {
		if err := workbook.ApplyFormat(address.Row, address.Col, format); err != nil {
			return err
		}
		cell, err = s.cellView(workbook, address)
		return err
	})
	return
}

// ChangeStructure inserts after, or deletes at, a zero-based index.
// Refused deletions (last row or column) succeed without changes.
func (s *SheetRepository) ChangeStructure(sheetId string, action contracts.StructureAction, index int) (info *contracts.SheetInfo, err error) {
	err = s.update(sheetId, func(workbook *Workbook) error {
		switch action {
		case contracts.InsertRowAction:
			err = workbook.InsertRow(index)
		case contracts.InsertColumnAction:
			err = workbook.InsertColumn(index)
		case contracts.DeleteRowAction:
			workbook.DeleteRow(index)
		case contracts.DeleteColumnAction:
			workbook.DeleteColumn(index)
		default:
			err = fmt.Errorf("`%s`: %w", action, contracts.InvalidStructureActionError)
		}

		info = s.info(sheetId, workbook)
		return err
	})

	if err != nil {
		info = nil
	}
	return
}

func (s *SheetRepository) RemoveDuplicates(sheetId string, rangeText string) (removed int, err error) {
	selection, err := ParseRange(rangeText)
	if err != nil {
		return 0, fmt.Errorf("`%s`: %w", rangeText, contracts.InvalidRangeError)
	}

	err = s.update(sheetId, func(workbook *Workbook) error {
		removed = workbook.RemoveDuplicateRows(selection)
		return nil
	})
	return
}

func (s *SheetRepository) FindAndReplace(sheetId string, find string, replace string) (replaced int, err error) {
	err = s.update(sheetId, func(workbook *Workbook) error {
		replaced = workbook.FindAndReplace(find, replace)
		return nil
	})
	return
}

func (s *SheetRepository) view(sheetId string, read func(workbook *Workbook) error) error {
	sheetId = s.canonicalizer.CanonicalizeSheetId(sheetId)

	return s.db.View(func(tx *bbolt.Tx) error {
		workbook, err := s.load(tx.Bucket(sheetsBucket), sheetId)
		if err != nil {
			return err
		}
		return read(workbook)
	})
}

func (s *SheetRepository) update(sheetId string, change func(workbook *Workbook) error) error {
	sheetId = s.canonicalizer.CanonicalizeSheetId(sheetId)

	var before, after *contracts.Snapshot

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(sheetsBucket)
		workbook, err := s.load(bucket, sheetId)
		if err != nil {
			return err
		}

		before = workbook.Serialize()
		if err = change(workbook); err != nil {
			return err
		}
		after = workbook.Serialize()

		return s.store(bucket, sheetId, workbook)
	})

	if err == nil {
		s.notify(sheetId, before, after)
	}

	return err
}

func (s *SheetRepository) notify(sheetId string, before *contracts.Snapshot, after *contracts.Snapshot) {
	if s.webhookDispatcher != nil {
		s.webhookDispatcher.Notify(sheetId, changedCells(before, after))
	}
}

func (s *SheetRepository) load(bucket *bbolt.Bucket, sheetId string) (*Workbook, error) {
	if bucket == nil {
		return nil, fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
	}

	data := bucket.Get([]byte(sheetId))
	if data == nil {
		return nil, fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
	}

	snapshot, err := s.serializer.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", sheetId, err)
	}

	return s.factory.Restore(snapshot)
}

func (s *SheetRepository) store(bucket *bbolt.Bucket, sheetId string, workbook *Workbook) error {
	data, err := s.serializer.Marshal(workbook.Serialize())
	if err != nil {
		return err
	}
	return bucket.Put([]byte(sheetId), data)
}

func (s *SheetRepository) address(cellId string) (contracts.Address, error) {
	canonical, err := s.canonicalizer.CanonicalizeCellId(cellId)
	if err != nil {
		return contracts.Address{}, err
	}
	return DecodeAddress(canonical)
}

func (s *SheetRepository) cellView(workbook *Workbook, address contracts.Address) (*contracts.CellView, error) {
	cell, err := workbook.Cell(address.Row, address.Col)
	if err != nil {
		return nil, err
	}

	return &contracts.CellView{
		Address: EncodeAddress(address.Row, address.Col),
		Cell:    cell,
	}, nil
}

func (s *SheetRepository) info(sheetId string, workbook *Workbook) *contracts.SheetInfo {
	return &contracts.SheetInfo{
		Id:      sheetId,
		Name:    workbook.Name(),
		Rows:    workbook.Rows(),
		Columns: workbook.Columns(),
	}
}

// changedCells lists cells of after whose display value differs from the
// same address in before
func changedCells(before *contracts.Snapshot, after *contracts.Snapshot) []*contracts.CellView {
	cells := make([]*contracts.CellView, 0)
	for row, rowCells := range after.Cells {
		for col, cell := range rowCells {
			previous := contracts.EmptyCell()
			if row < len(before.Cells) && col < len(before.Cells[row]) {
				previous = before.Cells[row][col]
			}

			if previous.Value != cell.Value {
				cells = append(cells, &contracts.CellView{
					Address: EncodeAddress(row, col),
					Cell:    cell,
				})
			}
		}
	}
	return cells
}
