package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"momentum/internal/auth"
	"momentum/internal/goalarea"
)

type GoalAreaHandler struct {
	Svc *goalarea.Service
}

func (h *GoalAreaHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	areas, err := h.Svc.List(r.Context(), uid)
	if err != nil {
		slog.Error("list goal areas failed", "error", err, "user_id", uid)
		respondError(w, http.StatusInternalServerError, "failed to fetch goal areas")
		return
	}

	respond(w, http.StatusOK, areas)
}

type updateGoalAreaReq struct {
	DisplayName       *string `json:"displayName" validate:"omitempty,min=1,max=100"`
	Emoji             *string `json:"emoji" validate:"omitempty,max=10"`
	WeeklyMinWins     *int    `json:"weeklyMinWins" validate:"omitempty,min=0,max=20"`
	IntentionText     *string `json:"intentionText"`
	FlexibilityBudget *int    `json:"flexibilityBudget" validate:"omitempty,min=0"`
	IsActive          *bool   `json:"isActive"`
	SortOrder         *int    `json:"sortOrder"`
}

func (h *GoalAreaHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	id := goalarea.ID(chi.URLParam(r, "id"))
	if !id.Valid() {
		respondError(w, http.StatusNotFound, "goal area not found")
		return
	}

	var req updateGoalAreaReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidation(w, err)
		return
	}

	area, err := h.Svc.Update(r.Context(), uid, id, goalarea.UpdateInput{
		DisplayName:       req.DisplayName,
		Emoji:             req.Emoji,
		WeeklyMinWins:     req.WeeklyMinWins,
		IntentionText:     req.IntentionText,
		FlexibilityBudget: req.FlexibilityBudget,
		IsActive:          req.IsActive,
		SortOrder:         req.SortOrder,
	})
	if err != nil {
		if errors.Is(err, goalarea.ErrNotFound) {
			respondError(w, http.StatusNotFound, "goal area not found")
			return
		}
		slog.Error("update goal area failed", "error", err, "user_id", uid, "goal_area", id)
		respondError(w, http.StatusInternalServerError, "failed to update goal area")
		return
	}

	respond(w, http.StatusOK, area)
}
