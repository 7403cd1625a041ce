// Package sheet manages named drawings on the server: metadata, versioned
// document snapshots, and JSON import/export in the drawing file shape.
package sheet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/drawdeck/drawdeck/internal/element"
	"github.com/drawdeck/drawdeck/internal/store"
	"github.com/drawdeck/drawdeck/internal/typeid"
)

var (
	ErrNotFound  = errors.New("drawing not found")
	ErrForbidden = errors.New("forbidden")
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

type Sheet struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OwnerID   string `json:"ownerId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (s *Service) Create(ctx context.Context, name, ownerID string) (*Sheet, error) {
	drawingID := typeid.NewDrawingID()

	d, err := s.store.CreateDrawing(ctx, store.Drawing{
		ID:      drawingID,
		Name:    name,
		OwnerID: ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("create drawing: %w", err)
	}

	// Seed an empty first snapshot so loads never miss.
	empty, err := element.ExportDrawing(nil)
	if err != nil {
		return nil, fmt.Errorf("marshal empty drawing: %w", err)
	}
	_, err = s.store.CreateSnapshot(ctx, store.Snapshot{
		ID:        typeid.NewSnapshotID(),
		DrawingID: drawingID,
		Version:   1,
		Document:  empty,
	})
	if err != nil {
		return nil, fmt.Errorf("create initial snapshot: %w", err)
	}

	return toSheet(d), nil
}

func (s *Service) Get(ctx context.Context, drawingID, userID string) (*Sheet, error) {
	d, err := s.owned(ctx, drawingID, userID)
	if err != nil {
		return nil, err
	}
	return toSheet(d), nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Sheet, error) {
	drawings, err := s.store.ListDrawingsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list drawings: %w", err)
	}

	sheets := make([]Sheet, len(drawings))
	for i, d := range drawings {
		sheets[i] = *toSheet(d)
	}
	return sheets, nil
}

func (s *Service) Rename(ctx context.Context, drawingID, userID, name string) error {
	if _, err := s.owned(ctx, drawingID, userID); err != nil {
		return err
	}
	return s.store.RenameDrawing(ctx, drawingID, name)
}

func (s *Service) Delete(ctx context.Context, drawingID, userID string) error {
	if _, err := s.owned(ctx, drawingID, userID); err != nil {
		return err
	}
	return s.store.DeleteDrawing(ctx, drawingID)
}

// LatestDocument returns the newest snapshot's document in the drawing file
// shape.
func (s *Service) LatestDocument(ctx context.Context, drawingID, userID string) (json.RawMessage, error) {
	if _, err := s.owned(ctx, drawingID, userID); err != nil {
		return nil, err
	}

	snap, err := s.store.LatestSnapshot(ctx, drawingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return snap.Document, nil
}

// SaveDocument stores a new snapshot. The payload is decoded through the
// fail-safe importer first: invalid elements are dropped, malformed JSON
// becomes an empty drawing rather than an error, and what is persisted is
// the re-encoded survivor set.
func (s *Service) SaveDocument(ctx context.Context, drawingID, userID string, payload []byte) (int32, error) {
	if _, err := s.owned(ctx, drawingID, userID); err != nil {
		return 0, err
	}

	els := element.ImportDrawing(payload)
	doc, err := element.ExportDrawing(els)
	if err != nil {
		return 0, fmt.Errorf("marshal drawing: %w", err)
	}

	version := int32(1)
	if latest, err := s.store.LatestSnapshot(ctx, drawingID); err == nil {
		version = latest.Version + 1
	}

	_, err = s.store.CreateSnapshot(ctx, store.Snapshot{
		ID:        typeid.NewSnapshotID(),
		DrawingID: drawingID,
		Version:   version,
		Document:  doc,
	})
	if err != nil {
		return 0, fmt.Errorf("create snapshot: %w", err)
	}
	return version, nil
}

func (s *Service) owned(ctx context.Context, drawingID, userID string) (store.Drawing, error) {
	d, err := s.store.GetDrawing(ctx, drawingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Drawing{}, ErrNotFound
		}
		return store.Drawing{}, fmt.Errorf("get drawing: %w", err)
	}
	if d.OwnerID != userID {
		return store.Drawing{}, ErrForbidden
	}
	return d, nil
}

func toSheet(d store.Drawing) *Sheet {
	return &Sheet{
		ID:        d.ID,
		Name:      d.Name,
		OwnerID:   d.OwnerID,
		CreatedAt: d.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt: d.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
