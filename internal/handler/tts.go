package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/msomdec/dagligsvensk/internal/service"
)

// TTSHandler serves synthesized speech.
type TTSHandler struct {
	audio *service.AudioService
}

func NewTTSHandler(audio *service.AudioService) *TTSHandler {
	return &TTSHandler{audio: audio}
}

// HandleSynthesize returns MP3 audio for a phrase.
// POST /api/tts
// Request:  {"text":"..."}
// Response: {"audio":"<base64 mp3>"}
func (h *TTSHandler) HandleSynthesize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	audio, err := h.audio.Synthesize(r.Context(), req.Text)
	if err != nil {
		writeServiceError(w, "synthesize speech", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"audio": base64.StdEncoding.EncodeToString(audio)})
}
