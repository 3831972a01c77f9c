package middlewares

import (
	"fmt"
	"io"
	"net/http"

	"github.com/Techkepper/PoskepperApi/utils"

	"github.com/gin-gonic/gin"
)

const (
	CtxPhoto      = "foto"
	photoField    = "foto"
	msgPhotoReq   = "El archivo de la foto es requerido"
	msgPhotoExt   = "La extensión del archivo debe ser una de las siguientes: jpg, jpeg, png"
	msgPhotoSize  = "El tamaño del archivo no debe exceder %d MB"
	msgPhotoWrong = "No se pudo leer el archivo de la foto"
)

// PhotoUpload validates the multipart "foto" file and stores its bytes on the
// context under CtxPhoto. When required is false a missing file is allowed.
func PhotoUpload(maxBytes int64, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile(photoField)
		if err != nil {
			if !required {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgPhotoReq})
			return
		}
		if fh.Size > maxBytes {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf(msgPhotoSize, maxBytes/1024/1024)})
			return
		}
		if !utils.AllowedPhoto(fh.Filename) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgPhotoExt})
			return
		}

		f, err := fh.Open()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgPhotoWrong})
			return
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
		if err != nil || int64(len(data)) > maxBytes {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgPhotoWrong})
			return
		}

		c.Set(CtxPhoto, data)
		c.Next()
	}
}

// Photo returns the uploaded bytes, or nil when no file was sent.
func Photo(c *gin.Context) []byte {
	if v, ok := c.Get(CtxPhoto); ok {
		if b, ok := v.([]byte); ok {
			return b
		}
	}
	return nil
}
