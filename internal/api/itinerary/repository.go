package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-travel-assistant/app/observability/metrics"
	"github.com/FACorreiaa/go-travel-assistant/internal/types"
)

var _ Repository = (*PostgresItineraryRepo)(nil)

// Repository is the storage collaborator for itinerary records. The service
// layer only ever works with snapshots it receives from here.
type Repository interface {
	CreateItinerary(ctx context.Context, preferences types.ItineraryPreferences) (*types.Itinerary, error)
	GetItinerary(ctx context.Context, itineraryID uuid.UUID) (*types.Itinerary, error)
	UpdateGeneratedContent(ctx context.Context, itineraryID uuid.UUID, content *types.GeneratedItinerary, status types.ItineraryStatus) (*types.Itinerary, error)
	UpdateStatus(ctx context.Context, itineraryID uuid.UUID, status types.ItineraryStatus) (*types.Itinerary, error)
}

// DB is the subset of pgxpool.Pool the repository needs. Satisfied by
// *pgxpool.Pool and by pgxmock pools in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresItineraryRepo struct {
	logger *slog.Logger
	pgpool DB
}

func NewPostgresItineraryRepo(pgpool DB, logger *slog.Logger) *PostgresItineraryRepo {
	return &PostgresItineraryRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

const itineraryColumns = `id, preferences, generated_content, status, created_at, updated_at`

func (r *PostgresItineraryRepo) CreateItinerary(ctx context.Context, preferences types.ItineraryPreferences) (*types.Itinerary, error) {
	ctx, span := otel.Tracer("ItineraryRepo").Start(ctx, "CreateItinerary")
	defer span.End()

	prefsJSON, err := json.Marshal(preferences)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal preferences: %w", err)
	}

	query := `
        INSERT INTO itineraries (preferences, status)
        VALUES ($1, $2)
        RETURNING ` + itineraryColumns
	row := r.pgpool.QueryRow(ctx, query, prefsJSON, types.ItineraryStatusDraft)

	itinerary, err := scanItinerary(row)
	if err != nil {
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		r.logger.ErrorContext(ctx, "Failed to insert itinerary", slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("failed to insert itinerary: %w", err)
	}

	span.SetAttributes(attribute.String("itinerary.id", itinerary.ID.String()))
	span.SetStatus(codes.Ok, "Itinerary created")
	return itinerary, nil
}

func (r *PostgresItineraryRepo) GetItinerary(ctx context.Context, itineraryID uuid.UUID) (*types.Itinerary, error) {
	ctx, span := otel.Tracer("ItineraryRepo").Start(ctx, "GetItinerary", trace.WithAttributes(
		attribute.String("itinerary.id", itineraryID.String()),
	))
	defer span.End()

	query := `SELECT ` + itineraryColumns + ` FROM itineraries WHERE id = $1`
	row := r.pgpool.QueryRow(ctx, query, itineraryID)

	itinerary, err := scanItinerary(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrItineraryNotFound
		}
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		r.logger.ErrorContext(ctx, "Failed to fetch itinerary", slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("failed to fetch itinerary: %w", err)
	}

	span.SetStatus(codes.Ok, "Itinerary fetched")
	return itinerary, nil
}

// UpdateGeneratedContent replaces the generated payload and status in one
// statement. Last write wins when concurrent generations race on a record.
func (r *PostgresItineraryRepo) UpdateGeneratedContent(ctx context.Context, itineraryID uuid.UUID, content *types.GeneratedItinerary, status types.ItineraryStatus) (*types.Itinerary, error) {
	ctx, span := otel.Tracer("ItineraryRepo").Start(ctx, "UpdateGeneratedContent", trace.WithAttributes(
		attribute.String("itinerary.id", itineraryID.String()),
		attribute.String("itinerary.status", string(status)),
	))
	defer span.End()

	contentJSON, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generated content: %w", err)
	}

	query := `
        UPDATE itineraries
        SET generated_content = $2, status = $3, updated_at = now()
        WHERE id = $1
        RETURNING ` + itineraryColumns
	row := r.pgpool.QueryRow(ctx, query, itineraryID, contentJSON, status)

	itinerary, err := scanItinerary(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrItineraryNotFound
		}
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		r.logger.ErrorContext(ctx, "Failed to update generated content", slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("failed to update generated content: %w", err)
	}

	span.SetStatus(codes.Ok, "Generated content updated")
	return itinerary, nil
}

// UpdateStatus is the pass-through status update used by the unconditional
// save transition.
func (r *PostgresItineraryRepo) UpdateStatus(ctx context.Context, itineraryID uuid.UUID, status types.ItineraryStatus) (*types.Itinerary, error) {
	ctx, span := otel.Tracer("ItineraryRepo").Start(ctx, "UpdateStatus", trace.WithAttributes(
		attribute.String("itinerary.id", itineraryID.String()),
		attribute.String("itinerary.status", string(status)),
	))
	defer span.End()

	query := `
        UPDATE itineraries
        SET status = $2, updated_at = now()
        WHERE id = $1
        RETURNING ` + itineraryColumns
	row := r.pgpool.QueryRow(ctx, query, itineraryID, status)

	itinerary, err := scanItinerary(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrItineraryNotFound
		}
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		r.logger.ErrorContext(ctx, "Failed to update itinerary status", slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("failed to update itinerary status: %w", err)
	}

	span.SetStatus(codes.Ok, "Status updated")
	return itinerary, nil
}

func scanItinerary(row pgx.Row) (*types.Itinerary, error) {
	var itinerary types.Itinerary
	var prefsJSON []byte
	var contentJSON []byte

	err := row.Scan(&itinerary.ID, &prefsJSON, &contentJSON, &itinerary.Status, &itinerary.CreatedAt, &itinerary.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(prefsJSON, &itinerary.Preferences); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	if len(contentJSON) > 0 {
		var content types.GeneratedItinerary
		if err := json.Unmarshal(contentJSON, &content); err != nil {
			return nil, fmt.Errorf("failed to unmarshal generated content: %w", err)
		}
		itinerary.GeneratedContent = &content
	}

	return &itinerary, nil
}
