package resp

import (
	"net/http"

	"github.com/Techkepper/PoskepperApi/pkg/apperr"
	"github.com/Techkepper/PoskepperApi/utils"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Error interno del servidor"

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"mensaje": msg})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"error": msg})
}

func ServerError(c *gin.Context, err error) {
	if err != nil {
		utils.Logger(c).WithError(err).Error("request failed")
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": internalMessage})
}

// Fail maps a classified error to its status; unclassified errors are logged
// and answered with a generic 500.
func Fail(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.Internal {
		utils.Logger(c).WithError(err).Error("request failed")
		msg := apperr.MessageOf(err)
		if msg == "" {
			msg = internalMessage
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
		return
	}
	c.JSON(apperr.Status(kind), gin.H{"error": apperr.MessageOf(err)})
}
