package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"momentum/internal/auth"
	"momentum/internal/goalarea"
	"momentum/internal/win"
)

type WinHandler struct {
	Svc *win.Service
}

type createWinReq struct {
	GoalAreaID      string  `json:"goalAreaId" validate:"required"`
	Title           string  `json:"title" validate:"required,max=500"`
	Description     *string `json:"description"`
	Duration        *int    `json:"duration" validate:"omitempty,min=0"`
	EnergyBoost     *int    `json:"energyBoost" validate:"omitempty,min=1,max=5"`
	OccurredAt      string  `json:"occurredAt" validate:"required"`
	CaptureMethod   string  `json:"captureMethod"`
	VoiceTranscript *string `json:"voiceTranscript"`
}

func (h *WinHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req createWinReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidation(w, err)
		return
	}

	areaID := goalarea.ID(req.GoalAreaID)
	if !areaID.Valid() {
		respondError(w, http.StatusBadRequest, []fieldError{{Field: "goalAreaId", Message: "unknown goal area"}})
		return
	}

	occurredAt, err := time.Parse(time.RFC3339, req.OccurredAt)
	if err != nil {
		respondError(w, http.StatusBadRequest, []fieldError{{Field: "occurredAt", Message: "must be an RFC3339 timestamp"}})
		return
	}

	method := win.CaptureMethod(req.CaptureMethod)
	if method == "" {
		method = win.CaptureManual
	}
	if !method.Valid() {
		respondError(w, http.StatusBadRequest, []fieldError{{Field: "captureMethod", Message: "must be voice, tap, manual or import"}})
		return
	}

	created, err := h.Svc.Create(r.Context(), uid, win.CreateInput{
		GoalAreaID:      areaID,
		Title:           req.Title,
		Description:     req.Description,
		Duration:        req.Duration,
		EnergyBoost:     req.EnergyBoost,
		OccurredAt:      occurredAt,
		CaptureMethod:   method,
		VoiceTranscript: req.VoiceTranscript,
	})
	if err != nil {
		slog.Error("create win failed", "error", err, "user_id", uid)
		respondError(w, http.StatusInternalServerError, "failed to create win")
		return
	}

	respond(w, http.StatusCreated, created)
}

func (h *WinHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	wins, err := h.Svc.ListWeekly(r.Context(), uid, win.CurrentWeek(time.Now()))
	if err != nil {
		slog.Error("list weekly wins failed", "error", err, "user_id", uid)
		respondError(w, http.StatusInternalServerError, "failed to fetch weekly wins")
		return
	}

	respond(w, http.StatusOK, wins)
}

func (h *WinHandler) Vault(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	limit := queryInt(r, "limit", 50, 1, 200)
	offset := queryInt(r, "offset", 0, 0, 1<<30)

	wins, err := h.Svc.ListVault(r.Context(), uid, limit, offset)
	if err != nil {
		slog.Error("list vault wins failed", "error", err, "user_id", uid)
		respondError(w, http.StatusInternalServerError, "failed to fetch wins vault")
		return
	}

	respond(w, http.StatusOK, wins)
}

func (h *WinHandler) Log(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var area *goalarea.ID
	if raw := strings.TrimSpace(r.URL.Query().Get("goalAreaId")); raw != "" {
		id := goalarea.ID(raw)
		if !id.Valid() {
			respondError(w, http.StatusBadRequest, []fieldError{{Field: "goalAreaId", Message: "unknown goal area"}})
			return
		}
		area = &id
	}

	wins, err := h.Svc.ListLog(r.Context(), uid, area)
	if err != nil {
		slog.Error("list win log failed", "error", err, "user_id", uid)
		respondError(w, http.StatusInternalServerError, "failed to fetch wins log")
		return
	}

	respond(w, http.StatusOK, wins)
}

func queryInt(r *http.Request, key string, def, min, max int) int {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < min || n > max {
		return def
	}
	return n
}
