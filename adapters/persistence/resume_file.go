package persistence

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/taingy-srun/portfolio/internal/domain/resume"
	"github.com/taingy-srun/portfolio/pkg/apperror"
	"github.com/taingy-srun/portfolio/pkg/logger"
)

type yamlResumeSource struct {
	path   string
	logger logger.Logger
}

// NewYAMLResumeSource reads a résumé document from a YAML file.
func NewYAMLResumeSource(path string, log logger.Logger) resume.Source {
	return &yamlResumeSource{path: path, logger: log}
}

func (s *yamlResumeSource) Load(_ context.Context) (*resume.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperror.NewNotFound("resume file", s.path)
		}
		return nil, apperror.NewInternal("failed to read resume file", err)
	}

	rec := &resume.Record{}
	if err := yaml.Unmarshal(data, rec); err != nil {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("resume file %s is not valid YAML", s.path), err)
	}
	if err := rec.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("resume file %s is invalid", s.path), err)
	}

	s.logger.Info("Loaded resume from file", zap.String("path", s.path), zap.Int("experience", len(rec.Experience)))
	return rec, nil
}
