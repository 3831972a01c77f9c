package controllers

import (
	"net/http"

	"github.com/Techkepper/PoskepperApi/pkg/report"
	"github.com/Techkepper/PoskepperApi/pkg/resp"
	"github.com/Techkepper/PoskepperApi/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const msgInvalidID = "El identificador debe ser un número entero válido"

// pathID reads a positive id path parameter, answering 400 when it is not one.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, ok := utils.ParamID(c, name)
	if !ok {
		resp.BadRequest(c, msgInvalidID)
	}
	return id, ok
}

// bindJSON answers 400 with msg when the body does not bind.
func bindJSON(c *gin.Context, dst any, msg string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.Logger(c).WithError(err).Debug("bind")
		resp.BadRequest(c, msg)
		return false
	}
	return true
}

// sendWorkbook streams an XLSX attachment.
func sendWorkbook(c *gin.Context, filename string, f *excelize.File) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", report.ContentType)
	c.Status(http.StatusOK)
	if err := report.Write(c.Writer, f); err != nil {
		utils.Logger(c).WithError(err).Error("write workbook")
	}
}
