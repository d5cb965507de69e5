package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/taingy-srun/portfolio/internal/domain/resume"
	"github.com/taingy-srun/portfolio/pkg/apperror"
	"github.com/taingy-srun/portfolio/pkg/logger"
)

var psqlResume = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// rowQuerier is the part of *pgxpool.Pool the repo needs.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// postgresResumeSource reads one résumé document from
// resumes(slug text primary key, document jsonb).
type postgresResumeSource struct {
	db     rowQuerier
	slug   string
	logger logger.Logger
}

func NewPostgresResumeSource(db rowQuerier, slug string, log logger.Logger) resume.Source {
	return &postgresResumeSource{db: db, slug: slug, logger: log}
}

func (r *postgresResumeSource) Load(ctx context.Context) (*resume.Record, error) {
	query, args, err := psqlResume.
		Select("document").
		From("resumes").
		Where(sq.Eq{"slug": r.slug}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build resume query", err)
	}

	var document []byte
	if err := r.db.QueryRow(ctx, query, args...).Scan(&document); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("resume", r.slug)
		}
		return nil, apperror.NewInternal("failed to query resume", err)
	}

	rec := &resume.Record{}
	if err := json.Unmarshal(document, rec); err != nil {
		r.logger.Warn("Failed to unmarshal resume document", zap.String("slug", r.slug), zap.Error(err))
		return nil, apperror.NewInternal("failed to decode resume document", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("stored resume is invalid", err)
	}

	r.logger.Info("Loaded resume from PostgreSQL", zap.String("slug", r.slug), zap.Int("experience", len(rec.Experience)))
	return rec, nil
}
