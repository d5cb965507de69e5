package resume

import (
	"context"
	"errors"
	"fmt"
)

var ErrInvalidRecord = errors.New("invalid resume record")

type Experience struct {
	Slug       string   `json:"slug" yaml:"slug"`
	Title      string   `json:"title" yaml:"title"`
	Company    string   `json:"company" yaml:"company"`
	Location   string   `json:"location" yaml:"location"`
	Period     string   `json:"period" yaml:"period"`
	Highlights []string `json:"highlights" yaml:"highlights"`
}

type SkillCategory struct {
	Key   string   `json:"key" yaml:"key"`
	Label string   `json:"label" yaml:"label"`
	Items []string `json:"items" yaml:"items"`
}

// Record is the résumé the chat answers from. Treat it as read-only once
// built; consumers that keep it should hold a Clone.
type Record struct {
	Name       string          `json:"name" yaml:"name"`
	Email      string          `json:"email" yaml:"email"`
	Phone      string          `json:"phone" yaml:"phone"`
	Location   string          `json:"location" yaml:"location"`
	LinkedIn   string          `json:"linkedin" yaml:"linkedin"`
	GitHub     string          `json:"github" yaml:"github"`
	Summary    string          `json:"summary" yaml:"summary"`
	Education  []string        `json:"education" yaml:"education"`
	Skills     []SkillCategory `json:"skills" yaml:"skills"`
	Experience []Experience    `json:"experience" yaml:"experience"`
}

// Source loads a Record once at startup.
type Source interface {
	Load(ctx context.Context) (*Record, error)
}

func (r *Record) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRecord)
	}
	seen := make(map[string]struct{}, len(r.Experience))
	for i, e := range r.Experience {
		if e.Slug == "" {
			return fmt.Errorf("%w: experience %d has no slug", ErrInvalidRecord, i)
		}
		if _, ok := seen[e.Slug]; ok {
			return fmt.Errorf("%w: duplicate experience slug %q", ErrInvalidRecord, e.Slug)
		}
		seen[e.Slug] = struct{}{}
	}
	return nil
}

// ExperienceBySlug finds an entry by its stable identifier.
func (r *Record) ExperienceBySlug(slug string) (Experience, bool) {
	for _, e := range r.Experience {
		if e.Slug == slug {
			return e, true
		}
	}
	return Experience{}, false
}

// SkillsIn returns the items of one category, nil if the category is absent.
func (r *Record) SkillsIn(key string) []string {
	for _, c := range r.Skills {
		if c.Key == key {
			return c.Items
		}
	}
	return nil
}

// Clone returns a deep copy sharing no slices with r.
func (r *Record) Clone() *Record {
	out := *r
	out.Education = append([]string(nil), r.Education...)

	out.Skills = make([]SkillCategory, len(r.Skills))
	for i, c := range r.Skills {
		c.Items = append([]string(nil), c.Items...)
		out.Skills[i] = c
	}

	out.Experience = make([]Experience, len(r.Experience))
	for i, e := range r.Experience {
		e.Highlights = append([]string(nil), e.Highlights...)
		out.Experience[i] = e
	}
	return &out
}
