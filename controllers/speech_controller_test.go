package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestTranscribeUnconfigured(t *testing.T) {
	sc := NewSpeechController(nil)
	r := gin.New()
	r.POST("/speech/transcribe", sc.Transcribe)

	req := httptest.NewRequest(http.MethodPost, "/speech/transcribe", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
