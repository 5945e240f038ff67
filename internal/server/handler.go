// seehuhn.de/go/annotate - render annotations onto images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"seehuhn.de/go/annotate"
)

// Exporter renders an image with its annotations.
type Exporter interface {
	Export(ctx context.Context, imageID string, opts annotate.Options) (*annotate.Artifact, error)
}

type Handler struct {
	exporter Exporter
	log      *zap.Logger
}

func NewHandler(exporter Exporter, log *zap.Logger) *Handler {
	return &Handler{
		exporter: exporter,
		log:      log,
	}
}

// Export handles POST /export/:imageId. The request body holds the
// export options as JSON; the response is the exported file.
func (h *Handler) Export(c *gin.Context) {
	imageID := c.Param("imageId")

	var opts annotate.Options
	if err := c.ShouldBindJSON(&opts); err != nil {
		var optErr *annotate.OptionError
		if errors.As(err, &optErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": optErr.Error(), "field": optErr.Field})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	res, err := h.exporter.Export(c.Request.Context(), imageID, opts)
	if err != nil {
		h.writeError(c, imageID, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	c.Header("Content-Length", strconv.Itoa(len(res.Data)))
	c.Data(http.StatusOK, res.ContentType, res.Data)
}

func (h *Handler) writeError(c *gin.Context, imageID string, err error) {
	var optErr *annotate.OptionError
	switch {
	case errors.As(err, &optErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": optErr.Error(), "field": optErr.Field})
	case errors.Is(err, annotate.ErrIO):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export image"})
	case errors.Is(err, annotate.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
	default:
		h.log.Error("Export failed",
			zap.String("imageId", imageID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export image"})
	}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
