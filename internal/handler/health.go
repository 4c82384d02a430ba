package handler

import (
	"net/http"
	"os"

	"recetario/internal/config"

	"github.com/gin-gonic/gin"
)

// Health reports whether the data and uploads directories are usable.
// It never exposes filesystem paths to clients.
func Health(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		dataStatus := estadoDirectorio(cfg.DataDir)
		uploadsStatus := estadoDirectorio(cfg.UploadsDir)

		status := http.StatusOK
		if dataStatus != "ok" || uploadsStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":      status == http.StatusOK,
			"data":    dataStatus,
			"uploads": uploadsStatus,
		})
	}
}

func estadoDirectorio(dir string) string {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "error"
	}
	return "ok"
}
