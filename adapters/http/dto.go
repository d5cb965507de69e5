package http

import (
	"github.com/taingy-srun/portfolio/internal/domain/resume"
)

// Resume DTOs

type ExperienceDTO struct {
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Location   string   `json:"location"`
	Period     string   `json:"period"`
	Highlights []string `json:"highlights"`
}

type SkillCategoryDTO struct {
	Key   string   `json:"key"`
	Label string   `json:"label"`
	Items []string `json:"items"`
}

type ResumeDTO struct {
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Phone      string             `json:"phone"`
	Location   string             `json:"location"`
	LinkedIn   string             `json:"linkedin"`
	GitHub     string             `json:"github"`
	Summary    string             `json:"summary"`
	Education  []string           `json:"education"`
	Skills     []SkillCategoryDTO `json:"skills"`
	Experience []ExperienceDTO    `json:"experience"`
}

func ToExperienceDTO(e resume.Experience) ExperienceDTO {
	return ExperienceDTO{
		Slug:       e.Slug,
		Title:      e.Title,
		Company:    e.Company,
		Location:   e.Location,
		Period:     e.Period,
		Highlights: e.Highlights,
	}
}

func ToResumeDTO(r *resume.Record) ResumeDTO {
	dto := ResumeDTO{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Location:  r.Location,
		LinkedIn:  r.LinkedIn,
		GitHub:    r.GitHub,
		Summary:   r.Summary,
		Education: r.Education,
	}
	dto.Skills = make([]SkillCategoryDTO, len(r.Skills))
	for i, c := range r.Skills {
		dto.Skills[i] = SkillCategoryDTO(c)
	}
	dto.Experience = make([]ExperienceDTO, len(r.Experience))
	for i, e := range r.Experience {
		dto.Experience[i] = ToExperienceDTO(e)
	}
	return dto
}

// Chat DTOs

type ChatRequest struct {
	Query     string `json:"query" binding:"required"`
	SessionID string `json:"session_id"`
}

type ChatResponse struct {
	SessionID string `json:"session_id"`
	Topic     string `json:"topic"`
	Response  string `json:"response"`
}

type SuggestionDTO struct {
	Label    string `json:"label"`
	Question string `json:"question"`
}

// Contact DTOs

type ContactForm struct {
	FullName string `form:"fullName"`
	Email    string `form:"email"`
	Message  string `form:"message"`
}
