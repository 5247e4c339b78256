package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/youruser/wallframe/internal/frame"
	"github.com/youruser/wallframe/internal/util"
)

// Server carries what the handlers need: the typeface bytes and the default
// canvas geometry.
type Server struct {
	Font   []byte
	Config frame.Config
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// frameHandler fetches a photo by URL, frames it and responds with the PNG.
func (s *Server) frameHandler(c *gin.Context) {
	var req struct {
		ImageURL  string `json:"image_url"`
		Caption   string `json:"caption"`
		BadgeText string `json:"badge_text"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_url is required"})
		return
	}

	src, err := util.FetchBytes(req.ImageURL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	cfg := s.Config
	if req.Width > 0 {
		cfg.Width = req.Width
	}
	if req.Height > 0 {
		cfg.Height = req.Height
	}
	cfg.BadgeText = req.BadgeText

	out, err := frame.Compose(src, req.Caption, s.Font, cfg)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, frame.ErrDecode) || errors.Is(err, frame.ErrGeometry) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", out)
}

// qrHandler returns a standalone QR PNG, handy for previewing badge content.
func (s *Server) qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = v
	}
	b, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
