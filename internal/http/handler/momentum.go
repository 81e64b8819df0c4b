package handler

import (
	"log/slog"
	"net/http"
	"time"

	"momentum/internal/auth"
	"momentum/internal/goalarea"
	"momentum/internal/momentum"
	"momentum/internal/win"
)

type MomentumHandler struct {
	Areas *goalarea.Service
	Wins  *win.Service
}

func (h *MomentumHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	areas, err := h.Areas.List(r.Context(), uid)
	if err != nil {
		slog.Error("momentum: list goal areas failed", "error", err, "user_id", uid)
		respondError(w, http.StatusInternalServerError, "failed to calculate momentum")
		return
	}

	week := win.CurrentWeek(time.Now())
	counts, err := h.Wins.WeeklyCounts(r.Context(), uid, week)
	if err != nil {
		slog.Error("momentum: weekly counts failed", "error", err, "user_id", uid)
		respondError(w, http.StatusInternalServerError, "failed to calculate momentum")
		return
	}

	respond(w, http.StatusOK, momentum.BuildSnapshot(areas, counts, week))
}
