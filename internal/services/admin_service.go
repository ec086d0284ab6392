package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/you/regsvc/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// csvHeader is the constant first line of every export
var csvHeader = []string{"Name", "Phone", "Email", "City", "Address", "Date"}

// AdminQueryServiceImpl implements domain.AdminQueryService
type AdminQueryServiceImpl struct {
	repo domain.RegistrationRepository
}

// NewAdminQueryService creates a new admin query service
func NewAdminQueryService(repo domain.RegistrationRepository) *AdminQueryServiceImpl {
	return &AdminQueryServiceImpl{repo: repo}
}

// ListRegistrations implements domain.AdminQueryService. Invalid page
// and limit values fall back to defaults; limit carries no upper bound.
func (s *AdminQueryServiceImpl) ListRegistrations(ctx context.Context, page, limit int) (*domain.RegistrationPage, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count registrations: %w", err)
	}

	offset := (page - 1) * limit
	data, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return &domain.RegistrationPage{
		Data:  data,
		Total: total,
		Page:  page,
		Pages: pages,
	}, nil
}

// ExportCSV implements domain.AdminQueryService. Rows are written
// newest first with RFC3339 timestamps; encoding/csv handles quoting of
// embedded commas and quotes.
func (s *AdminQueryServiceImpl) ExportCSV(ctx context.Context, w io.Writer) error {
	regs, err := s.repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch registrations: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, reg := range regs {
		row := []string{
			reg.Name,
			reg.Phone,
			reg.Email,
			reg.City,
			reg.Address,
			reg.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
