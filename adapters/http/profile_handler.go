package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/taingy-srun/portfolio/internal/application/usecase/profile"
	"github.com/taingy-srun/portfolio/pkg/apperror"
	"github.com/taingy-srun/portfolio/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		logger:         log,
	}
}

func (h *ProfileHandler) GetResume(c *gin.Context) {
	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToResumeDTO(output.Resume))
}

func (h *ProfileHandler) GetExperience(c *gin.Context) {
	slug := c.Param("slug")
	output, err := h.profileUseCase.ExecuteGetExperience(c.Request.Context(), profileUC.GetExperienceInput{Slug: slug})
	if err != nil {
		c.Error(err)
		return
	}
	if !output.Found {
		c.Error(apperror.NewNotFound("experience", slug))
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTO(output.Experience))
}
