package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	CtxUserID   = "idUsuario"
	CtxUsername = "nombreUsuario"
	CtxRole     = "rol"
	CtxLogger   = "logger"
)

func CurrentUserID(c *gin.Context) int64 {
	return c.GetInt64(CtxUserID)
}

func CurrentUsername(c *gin.Context) string {
	return c.GetString(CtxUsername)
}

func CurrentRole(c *gin.Context) string {
	return c.GetString(CtxRole)
}

// Logger returns the request-scoped entry set by the logging middleware,
// falling back to the standard logger outside a request.
func Logger(c *gin.Context) *logrus.Entry {
	if v, ok := c.Get(CtxLogger); ok {
		if e, ok := v.(*logrus.Entry); ok {
			return e
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

// ParamID parses a positive integer path parameter.
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
