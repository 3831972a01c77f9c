package controllers

import (
	"time"

	"github.com/Techkepper/PoskepperApi/pkg/resp"
	"github.com/Techkepper/PoskepperApi/repository"

	"github.com/gin-gonic/gin"
)

type UtilController struct {
	Repo *repository.UtilRepository
}

func NewUtilController(repo *repository.UtilRepository) *UtilController {
	return &UtilController{Repo: repo}
}

// GET /api/utils/hora
func (ctl *UtilController) Now(c *gin.Context) {
	now, err := ctl.Repo.Now(c.Request.Context())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, now.Format(time.RFC3339))
}
