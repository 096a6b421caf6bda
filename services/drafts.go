package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"restaurant-pos/models"
	"restaurant-pos/store"
	"restaurant-pos/utils"
)

// DraftService owns the one-active-draft-per-table invariant. The pre-check
// below catches the common case; concurrent saves that race past it are
// stopped by the store's unique index on tableNumber, which surfaces as the
// same conflict error.
type DraftService struct {
	drafts store.DraftStore
}

func NewDraftService(drafts store.DraftStore) *DraftService {
	return &DraftService{drafts: drafts}
}

// List returns all drafts, most recently created first.
func (s *DraftService) List(ctx context.Context) ([]models.Draft, error) {
	return s.drafts.List(ctx)
}

// Save creates a draft when input.ID is empty, otherwise updates that draft.
// The returned bool is true for a create.
func (s *DraftService) Save(ctx context.Context, input models.DraftInput) (*models.Draft, bool, error) {
	table := strings.TrimSpace(input.TableNumber)
	if table == "" {
		return nil, false, ErrMissingTable
	}

	other, err := s.drafts.FindByTable(ctx, table, input.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, false, err
	}
	if other != nil {
		return nil, false, ErrTableConflict
	}

	now := time.Now()

	if input.ID == "" {
		draft := &models.Draft{
			DraftID:       utils.NewDraftID(),
			TableNumber:   table,
			Text:          input.Text,
			CustomerName:  input.CustomerName,
			CustomerPhone: input.CustomerPhone,
			Lines:         input.Lines,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.drafts.Insert(ctx, draft); err != nil {
			if errors.Is(err, store.ErrDuplicateKey) {
				return nil, false, ErrTableConflict
			}
			return nil, false, err
		}
		return draft, true, nil
	}

	draft, err := s.drafts.FindByID(ctx, input.ID)
	if err != nil {
		return nil, false, err
	}

	draft.TableNumber = table
	draft.Text = input.Text
	draft.CustomerName = input.CustomerName
	draft.CustomerPhone = input.CustomerPhone
	draft.Lines = input.Lines
	draft.UpdatedAt = now

	if err := s.drafts.Update(ctx, draft); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, false, ErrTableConflict
		}
		return nil, false, err
	}
	return draft, false, nil
}

// Delete removes a draft. A second delete of the same ID reports
// store.ErrNotFound.
func (s *DraftService) Delete(ctx context.Context, draftID string) error {
	return s.drafts.Delete(ctx, draftID)
}
