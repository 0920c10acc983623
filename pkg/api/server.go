// Package api provides the REST API server for midi2sc
package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/james-see/midi2sc/pkg/converter"
	"github.com/james-see/midi2sc/pkg/converter/lyrics"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title MIDI2SC API
// @version 1.0
// @description API for converting MIDI melodies to the SC lyric-melody text format
// @host localhost:8080
// @BasePath /api/v1

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.POST("/convert", handleConvert)
		v1.GET("/formats", listFormats)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r.Run(fmt.Sprintf(":%d", port))
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "midi2sc",
	})
}

// listFormats godoc
// @Summary List supported formats
// @Description Returns a list of supported file formats
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/v1/formats [get]
func listFormats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"formats":     []string{"midi", "sc"},
		"conversions": converter.GetSupportedConversions(),
	})
}

// handleConvert godoc
// @Summary Convert MIDI to SC text
// @Description Upload a MIDI file (plus optional newline-separated lyrics) and receive SC text
// @Tags convert
// @Accept multipart/form-data
// @Produce text/plain
// @Param file formData file true "MIDI file to convert"
// @Param lyrics formData string false "Newline-separated lyric lines"
// @Param lyrics_from_midi query bool false "Extract lyric meta events from the MIDI file"
// @Param ticks_per_bar query int false "Ticks per bar (default: 480)"
// @Param absolute_time query bool false "Use cumulative tick positions for bar boundaries"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/convert [post]
func handleConvert(c *gin.Context) {
	// Get uploaded file
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer func() { _ = file.Close() }()

	// Read file content
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	opts := converter.Options{}
	if v := c.Query("ticks_per_bar"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticks_per_bar"})
			return
		}
		opts.TicksPerBar = n
	}
	opts.AbsoluteTime = c.Query("absolute_time") == "true"

	var lyricLines []string
	if raw := c.PostForm("lyrics"); raw != "" {
		for _, line := range strings.Split(raw, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				lyricLines = append(lyricLines, line)
			}
		}
	}

	conv := converter.New(opts)

	var result string
	if c.Query("lyrics_from_midi") == "true" && len(lyricLines) == 0 {
		result, err = convertWithEmbeddedLyrics(conv, data)
	} else {
		result, err = conv.Convert(data, lyricLines)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Generate output filename
	outputName := header.Filename
	if len(outputName) > 4 {
		outputName = outputName[:len(outputName)-4] + ".sc"
	} else {
		outputName = "converted.sc"
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outputName))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(result))
}

func convertWithEmbeddedLyrics(conv *converter.Converter, data []byte) (string, error) {
	s, err := converter.ReadSMF(data)
	if err != nil {
		return "", err
	}
	return conv.ConvertSMF(s, lyrics.ExtractSMF(s))
}
