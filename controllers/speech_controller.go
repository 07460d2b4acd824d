package controllers

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoa-portal/api-go/config"
)

// 10MB is plenty for a dictated complaint.
const maxAudioBytes = 10 << 20

type SpeechController struct {
	Speech *config.SpeechConfig
}

func NewSpeechController(speech *config.SpeechConfig) *SpeechController {
	return &SpeechController{Speech: speech}
}

// Transcribe reads the uploaded recording and forwards it to the speech API.
// Nothing is written to disk.
func (sc *SpeechController) Transcribe(c *gin.Context) {
	if sc.Speech == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Transcription is not configured"})
		return
	}

	fh, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Audio file is required"})
		return
	}
	if fh.Size > maxAudioBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Audio file is too large"})
		return
	}

	file, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read audio"})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read audio"})
		return
	}

	transcription, err := sc.Speech.Recognize(c.Request.Context(), audio)
	if err != nil {
		log.Printf("transcribe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transcribe audio"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transcription": transcription})
}
