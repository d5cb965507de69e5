package persistence

import (
	"context"
	"fmt"

	"github.com/taingy-srun/portfolio/internal/config"
	"github.com/taingy-srun/portfolio/internal/domain/resume"
	"github.com/taingy-srun/portfolio/pkg/logger"
)

// LoadResume resolves the configured source and loads the record once.
func LoadResume(ctx context.Context, cfg config.Config, log logger.Logger) (*resume.Record, error) {
	var src resume.Source

	switch cfg.Resume.Source {
	case "", config.ResumeSourceBuiltin:
		src = resume.NewBuiltinSource()
	case config.ResumeSourceFile:
		if cfg.Resume.File == "" {
			return nil, fmt.Errorf("resume source %q needs RESUME_FILE", cfg.Resume.Source)
		}
		src = NewYAMLResumeSource(cfg.Resume.File, log)
	case config.ResumeSourcePostgres:
		pool, err := NewPostgresPool(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		// The record is read once, the pool is not needed afterwards.
		defer pool.Close()
		src = NewPostgresResumeSource(pool, cfg.Resume.Slug, log)
	default:
		return nil, fmt.Errorf("unknown resume source %q", cfg.Resume.Source)
	}

	rec, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load resume: %w", err)
	}
	return rec, nil
}
