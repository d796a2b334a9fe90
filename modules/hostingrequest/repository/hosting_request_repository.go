package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"meca-api/core/database"
	"meca-api/core/logger"
	"meca-api/core/params"
	"meca-api/modules/hostingrequest/entity"
	profileEntity "meca-api/modules/profile/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrVersionConflict means the row changed since it was read.
var ErrVersionConflict = errors.New("hosting request was modified concurrently")

type HostingRequestRepositoryInterface interface {
	Create(ctx context.Context, req *entity.HostingRequest) (*entity.HostingRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.HostingRequest, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.HostingRequest, error)
	Update(ctx context.Context, req *entity.HostingRequest) (*entity.HostingRequest, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Search(ctx context.Context, params params.QueryParams) (*entity.PaginatedHostingRequestEntity, error)
	ListByUserID(ctx context.Context, userID profileEntity.ProfileID) ([]entity.HostingRequest, error)
	ListByEventDirector(ctx context.Context, directorID profileEntity.ProfileID, status *entity.RequestStatus) ([]entity.HostingRequest, error)
	CountByStatus(ctx context.Context) ([]entity.StatusCount, error)
	CountForEventDirector(ctx context.Context, directorID profileEntity.ProfileID) (*entity.EventDirectorCounts, error)
}

type HostingRequestRepository struct {
	DB database.Database
}

func NewHostingRequestRepository(db database.Database) *HostingRequestRepository {
	return &HostingRequestRepository{DB: db}
}

// writableColumns excludes id, timestamps and version, which the database owns.
var writableColumns = []string{
	"first_name", "last_name", "email", "phone", "business_name", "host_type", "user_id",
	"event_name", "event_type", "event_type_other", "event_description",
	"event_start_date", "event_start_time", "event_end_date", "event_end_time",
	"is_multi_day", "day_2_date", "day_2_start_time", "day_2_end_time",
	"day_3_date", "day_3_start_time", "day_3_end_time", "competition_formats",
	"venue_name", "venue_type", "indoor_outdoor", "power_available",
	"address_line_1", "address_line_2", "city", "state", "postal_code", "country",
	"expected_participants", "has_hosted_before",
	"additional_services", "other_services_details", "other_requests", "additional_info",
	"has_registration_fee", "member_entry_fee", "non_member_entry_fee",
	"has_gate_fee", "gate_fee", "estimated_budget", "pre_registration_available",
	"status", "ed_status", "final_status", "final_status_reason", "awaiting_requestor_response",
	"assigned_event_director_id", "assigned_at", "assignment_notes", "ed_response_date", "ed_rejection_reason",
	"admin_response", "admin_response_date", "admin_responder_id",
	"created_event_id",
}

var selectColumns = "id, " + strings.Join(writableColumns, ", ") + ", version, created_at, updated_at"

func namedList(cols []string) string {
	named := make([]string, len(cols))
	for i, c := range cols {
		named[i] = ":" + c
	}
	return strings.Join(named, ", ")
}

func setList(cols []string) string {
	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = c + " = :" + c
	}
	return strings.Join(sets, ", ")
}

func (r *HostingRequestRepository) Create(ctx context.Context, req *entity.HostingRequest) (*entity.HostingRequest, error) {
	query := `INSERT INTO event_hosting_requests (` + strings.Join(writableColumns, ", ") + `)
		VALUES (` + namedList(writableColumns) + `)
		RETURNING ` + selectColumns

	bound, args, err := sqlx.Named(query, req)
	if err != nil {
		logger.Error("HostingRequestRepository:Create:Bind", "error", err)
		return nil, err
	}

	var created entity.HostingRequest
	if err := r.DB.GetContext(ctx, &created, r.DB.Conn(ctx).Rebind(bound), args...); err != nil {
		logger.Error("HostingRequestRepository:Create", "email", req.Email, "error", err)
		return nil, err
	}
	return &created, nil
}

func (r *HostingRequestRepository) get(ctx context.Context, id uuid.UUID, lock bool) (*entity.HostingRequest, error) {
	query := `SELECT ` + selectColumns + ` FROM event_hosting_requests WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	var req entity.HostingRequest
	err := r.DB.GetContext(ctx, &req, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("HostingRequestRepository:GetByID", "id", id, "lock", lock, "error", err)
		return nil, err
	}
	return &req, nil
}

func (r *HostingRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.HostingRequest, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate locks the row until the surrounding transaction ends.
func (r *HostingRequestRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.HostingRequest, error) {
	if !database.InTx(ctx) {
		return nil, fmt.Errorf("GetByIDForUpdate requires a transaction")
	}
	return r.get(ctx, id, true)
}

// Update writes every mutable column and bumps version. It returns
// ErrVersionConflict when req.Version no longer matches the stored row.
func (r *HostingRequestRepository) Update(ctx context.Context, req *entity.HostingRequest) (*entity.HostingRequest, error) {
	query := `UPDATE event_hosting_requests
		SET ` + setList(writableColumns) + `, version = version + 1, updated_at = now()
		WHERE id = :id AND version = :version
		RETURNING ` + selectColumns

	bound, args, err := sqlx.Named(query, req)
	if err != nil {
		logger.Error("HostingRequestRepository:Update:Bind", "id", req.ID, "error", err)
		return nil, err
	}

	var updated entity.HostingRequest
	err = r.DB.GetContext(ctx, &updated, r.DB.Conn(ctx).Rebind(bound), args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVersionConflict
		}
		logger.Error("HostingRequestRepository:Update", "id", req.ID, "error", err)
		return nil, err
	}
	return &updated, nil
}

func (r *HostingRequestRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.DB.Conn(ctx).ExecContext(ctx, `DELETE FROM event_hosting_requests WHERE id = $1`, id)
	if err != nil {
		logger.Error("HostingRequestRepository:Delete", "id", id, "error", err)
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		logger.Error("HostingRequestRepository:Delete:RowsAffected", "id", id, "error", err)
		return false, err
	}
	return rows > 0, nil
}

// Search pages over all requests, newest first, optionally filtered by status
// and a case-insensitive substring match on the requestor and event fields.
func (r *HostingRequestRepository) Search(ctx context.Context, params params.QueryParams) (*entity.PaginatedHostingRequestEntity, error) {
	var (
		conditions []string
		args       []any
	)
	argIndex := 1

	if params.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, params.Status)
		argIndex++
	}
	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(first_name ILIKE $%[1]d OR last_name ILIKE $%[1]d OR email ILIKE $%[1]d OR event_name ILIKE $%[1]d OR business_name ILIKE $%[1]d)",
			argIndex))
		args = append(args, "%"+params.Search+"%")
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.DB.GetContext(ctx, &total, `SELECT COUNT(*) FROM event_hosting_requests`+whereClause, args...); err != nil {
		logger.Error("HostingRequestRepository:Search:Count", "error", err)
		return nil, err
	}

	dataQuery := `SELECT ` + selectColumns + ` FROM event_hosting_requests` + whereClause +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, argIndex, argIndex+1)
	args = append(args, params.PageSize, params.Offset())

	items := []entity.HostingRequest{}
	if err := r.DB.SelectContext(ctx, &items, dataQuery, args...); err != nil {
		logger.Error("HostingRequestRepository:Search:Select", "error", err)
		return nil, err
	}

	return &entity.PaginatedHostingRequestEntity{
		Items:      items,
		TotalItems: total,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

func (r *HostingRequestRepository) ListByUserID(ctx context.Context, userID profileEntity.ProfileID) ([]entity.HostingRequest, error) {
	items := []entity.HostingRequest{}
	query := `SELECT ` + selectColumns + ` FROM event_hosting_requests WHERE user_id = $1 ORDER BY created_at DESC`
	if err := r.DB.SelectContext(ctx, &items, query, userID); err != nil {
		logger.Error("HostingRequestRepository:ListByUserID", "user_id", userID, "error", err)
		return nil, err
	}
	return items, nil
}

func (r *HostingRequestRepository) ListByEventDirector(ctx context.Context, directorID profileEntity.ProfileID, status *entity.RequestStatus) ([]entity.HostingRequest, error) {
	items := []entity.HostingRequest{}
	query := `SELECT ` + selectColumns + ` FROM event_hosting_requests WHERE assigned_event_director_id = $1`
	args := []any{directorID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY assigned_at DESC NULLS LAST`

	if err := r.DB.SelectContext(ctx, &items, query, args...); err != nil {
		logger.Error("HostingRequestRepository:ListByEventDirector", "event_director_id", directorID, "error", err)
		return nil, err
	}
	return items, nil
}

func (r *HostingRequestRepository) CountByStatus(ctx context.Context) ([]entity.StatusCount, error) {
	counts := []entity.StatusCount{}
	query := `SELECT status, COUNT(*) AS count FROM event_hosting_requests GROUP BY status`
	if err := r.DB.SelectContext(ctx, &counts, query); err != nil {
		logger.Error("HostingRequestRepository:CountByStatus", "error", err)
		return nil, err
	}
	return counts, nil
}

func (r *HostingRequestRepository) CountForEventDirector(ctx context.Context, directorID profileEntity.ProfileID) (*entity.EventDirectorCounts, error) {
	var counts entity.EventDirectorCounts
	query := `
		SELECT
			COUNT(*) AS assigned,
			COUNT(*) FILTER (WHERE ed_status = $2) AS pending_review,
			COUNT(*) FILTER (WHERE ed_status = $3) AS accepted
		FROM event_hosting_requests
		WHERE assigned_event_director_id = $1
	`
	err := r.DB.GetContext(ctx, &counts, query, directorID, entity.EDStatusPendingReview, entity.EDStatusAccepted)
	if err != nil {
		logger.Error("HostingRequestRepository:CountForEventDirector", "event_director_id", directorID, "error", err)
		return nil, err
	}
	return &counts, nil
}
