package availability

import (
	"context"
	"time"

	domain "github.com/cisnebranco/grooming-os/internal/domain/availability"
	"github.com/cisnebranco/grooming-os/internal/httperr"
	"github.com/cisnebranco/grooming-os/internal/models"
)

// ManageWindows is the administrator surface: create, list and deactivate
// recurring windows. Deactivation is soft — history is never removed.
type ManageWindows struct {
	repo domain.Repository
}

func NewManageWindows(repo domain.Repository) *ManageWindows {
	return &ManageWindows{repo: repo}
}

type CreateWindowInput struct {
	GroomerID uint
	DayOfWeek int
	StartTime string
	EndTime   string
}

func (uc *ManageWindows) Create(ctx context.Context, in CreateWindowInput) (*models.AvailabilityWindow, error) {
	if _, err := uc.repo.GetGroomer(ctx, in.GroomerID); err != nil {
		return nil, err
	}

	if in.DayOfWeek < 1 || in.DayOfWeek > 7 {
		return nil, httperr.Business("Day of week must be 1 (Monday) to 7 (Sunday)")
	}

	start, err := time.Parse("15:04", in.StartTime)
	if err != nil {
		return nil, httperr.Business("Invalid start time %q, expected HH:MM", in.StartTime)
	}
	end, err := time.Parse("15:04", in.EndTime)
	if err != nil {
		return nil, httperr.Business("Invalid end time %q, expected HH:MM", in.EndTime)
	}
	if !end.After(start) {
		return nil, httperr.Business("End time must be after start time")
	}

	existing, err := uc.repo.ListActiveWindows(ctx, in.GroomerID, in.DayOfWeek)
	if err != nil {
		return nil, err
	}
	for _, w := range existing {
		ws, _ := time.Parse("15:04", w.StartTime)
		we, _ := time.Parse("15:04", w.EndTime)
		if start.Before(we) && end.After(ws) {
			return nil, httperr.Business("New window overlaps with an existing availability window")
		}
	}

	window := &models.AvailabilityWindow{
		GroomerID: in.GroomerID,
		DayOfWeek: in.DayOfWeek,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Active:    true,
	}

	if err := uc.repo.CreateWindow(ctx, window); err != nil {
		return nil, err
	}
	return window, nil
}

func (uc *ManageWindows) List(ctx context.Context, groomerID uint) ([]models.AvailabilityWindow, error) {
	if _, err := uc.repo.GetGroomer(ctx, groomerID); err != nil {
		return nil, err
	}
	return uc.repo.ListWindows(ctx, groomerID)
}

func (uc *ManageWindows) Deactivate(ctx context.Context, windowID uint) error {
	window, err := uc.repo.GetWindow(ctx, windowID)
	if err != nil {
		return err
	}
	window.Active = false
	return uc.repo.SaveWindow(ctx, window)
}
