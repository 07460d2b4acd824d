package store

import (
	"context"

	"github.com/hoa-portal/api-go/models"
	"gorm.io/gorm"
)

// ReportStore persists complaint rows. Comment mutations are single atomic
// UPDATEs (array_append server-side) so two moderators writing to the same
// report never race a read-modify-write window.
type ReportStore interface {
	Insert(ctx context.Context, report *models.Report) error
	// ListRecent returns reports newest-first, at most limit rows.
	ListRecent(ctx context.Context, limit int) ([]models.Report, error)
	// ListByOwner returns a single user's reports newest-first, at most limit rows.
	ListByOwner(ctx context.Context, userID string, limit int) ([]models.Report, error)
	AppendComment(ctx context.Context, reportID, comment string) error
	// CloseWithComment appends the comment and sets status to closed in one
	// statement; both effects succeed or fail together.
	CloseWithComment(ctx context.Context, reportID, comment string) error
}

type reportStore struct {
	db *gorm.DB
}

func NewReportStore(db *gorm.DB) ReportStore {
	return &reportStore{db: db}
}

func (s *reportStore) Insert(ctx context.Context, report *models.Report) error {
	return s.db.WithContext(ctx).Create(report).Error
}

func (s *reportStore) ListRecent(ctx context.Context, limit int) ([]models.Report, error) {
	var reports []models.Report
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *reportStore) ListByOwner(ctx context.Context, userID string, limit int) ([]models.Report, error) {
	var reports []models.Report
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *reportStore) AppendComment(ctx context.Context, reportID, comment string) error {
	res := s.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("report_id = ?", reportID).
		Update("comments", gorm.Expr("array_append(comments, ?)", comment))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *reportStore) CloseWithComment(ctx context.Context, reportID, comment string) error {
	res := s.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("report_id = ?", reportID).
		Updates(map[string]interface{}{
			"comments": gorm.Expr("array_append(comments, ?)", comment),
			"status":   models.StatusClosed,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
