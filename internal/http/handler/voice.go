package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"momentum/internal/auth"
	"momentum/internal/voice"
)

// Uploads beyond this are rejected before any processing.
const maxUploadBytes = 10 << 20

// CaptureStore persists and lists processed voice captures.
type CaptureStore interface {
	Record(ctx context.Context, userID string, in voice.RecordInput) error
	List(ctx context.Context, userID string, limit int) ([]voice.VoiceCapture, error)
}

type VoiceHandler struct {
	Transcriber voice.Transcriber
	Extractor   *voice.Extractor
	Captures    CaptureStore
}

type processResult struct {
	Transcript string               `json:"transcript"`
	Wins       []voice.ExtractedWin `json:"wins"`
}

func (h *VoiceHandler) Process(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	audio, mimeType, ok := readAudio(w, r)
	if !ok {
		return
	}

	transcript, err := h.Transcriber.Transcribe(r.Context(), audio, mimeType)
	if err != nil {
		slog.Error("transcription failed", "error", err, "user_id", uid)
		if recErr := h.Captures.Record(r.Context(), uid, voice.RecordInput{Status: voice.StatusFailed}); recErr != nil {
			slog.Error("record voice capture failed", "error", recErr, "user_id", uid)
		}
		respondError(w, http.StatusInternalServerError, "voice processing failed")
		return
	}

	if strings.TrimSpace(transcript) == "" {
		respond(w, http.StatusOK, processResult{Transcript: "", Wins: []voice.ExtractedWin{}})
		return
	}

	wins, source := h.Extractor.Extract(r.Context(), transcript)

	if err := h.Captures.Record(r.Context(), uid, voice.RecordInput{
		Transcript: transcript,
		Wins:       wins,
		Source:     source,
		Status:     voice.StatusComplete,
	}); err != nil {
		slog.Error("record voice capture failed", "error", err, "user_id", uid)
	}

	respond(w, http.StatusOK, processResult{Transcript: transcript, Wins: wins})
}

func (h *VoiceHandler) TranscribeOnly(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	audio, mimeType, ok := readAudio(w, r)
	if !ok {
		return
	}

	transcript, err := h.Transcriber.Transcribe(r.Context(), audio, mimeType)
	if err != nil {
		slog.Error("transcription failed", "error", err, "user_id", uid)
		respondError(w, http.StatusInternalServerError, "transcription failed")
		return
	}

	respond(w, http.StatusOK, map[string]string{"transcript": transcript})
}

func (h *VoiceHandler) ListCaptures(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	limit := queryInt(r, "limit", 50, 1, 200)

	captures, err := h.Captures.List(r.Context(), uid, limit)
	if err != nil {
		slog.Error("list voice captures failed", "error", err, "user_id", uid)
		respondError(w, http.StatusInternalServerError, "failed to fetch voice captures")
		return
	}

	respond(w, http.StatusOK, captures)
}

func readAudio(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusRequestEntityTooLarge, "audio upload exceeds 10MB limit")
		} else {
			respondError(w, http.StatusBadRequest, "invalid multipart form")
		}
		return nil, "", false
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No audio file provided")
		return nil, "", false
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read audio")
		return nil, "", false
	}

	return audio, header.Header.Get("Content-Type"), true
}
