package profile

import (
	"context"

	"github.com/taingy-srun/portfolio/internal/domain/resume"
)

// ProfileUseCase serves the résumé the chat answers from, so the page and
// the chat never disagree.
type ProfileUseCase struct {
	record *resume.Record
}

func NewProfileUseCase(record *resume.Record) *ProfileUseCase {
	return &ProfileUseCase{record: record.Clone()}
}

type GetProfileOutput struct {
	Resume *resume.Record
}

func (uc *ProfileUseCase) ExecuteGetProfile(_ context.Context) (*GetProfileOutput, error) {
	return &GetProfileOutput{Resume: uc.record.Clone()}, nil
}

type GetExperienceInput struct {
	Slug string
}

type GetExperienceOutput struct {
	Experience resume.Experience
	Found      bool
}

func (uc *ProfileUseCase) ExecuteGetExperience(_ context.Context, input GetExperienceInput) (*GetExperienceOutput, error) {
	e, ok := uc.record.ExperienceBySlug(input.Slug)
	if ok {
		e.Highlights = append([]string(nil), e.Highlights...)
	}
	return &GetExperienceOutput{Experience: e, Found: ok}, nil
}
