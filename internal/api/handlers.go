package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/true1853/Nykha-bot/internal/app"
	"github.com/true1853/Nykha-bot/internal/models"
)

var errBadRequest = errors.New("bad request")

type Handler struct {
	app *app.App
}

func NewHandler(a *app.App) *Handler {
	return &Handler{app: a}
}

type touchRequest struct {
	DisplayName string `json:"display_name"`
}

type markRequest struct {
	Category string `json:"category"`
}

type diaryRequest struct {
	Text string `json:"text"`
}

type streakResponse struct {
	Streak int `json:"streak"`
}

type touchResponse struct {
	Created bool        `json:"created"`
	User    models.User `json:"user"`
}

type seedResponse struct {
	Inserted int `json:"inserted"`
}

func userID(r *http.Request) (models.UserID, error) {
	id, err := models.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		return 0, fmt.Errorf("%w: invalid user id", errBadRequest)
	}
	return id, nil
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid body: %v", errBadRequest, err)
	}
	return nil
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Store().Ping(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) TouchUser(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req touchRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.app.AddOrTouchUser(r.Context(), id, req.DisplayName)
	if err != nil {
		writeError(w, err)
		return
	}
	u, err := h.app.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, touchResponse{Created: created, User: u})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	u, err := h.app.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var loc models.Location
	if err := decode(r, &loc); err != nil {
		writeError(w, err)
		return
	}
	if err := h.app.UpdateUserLocation(r.Context(), id, loc); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Phase(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := h.app.CurrentPhase(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) MarkDone(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req markRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.app.MarkDone(r.Context(), id, req.Category); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	status, err := h.app.TodayStatus(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) IncrementStreak(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	n, err := h.app.IncrementStreak(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, streakResponse{Streak: n})
}

func (h *Handler) UserWeekly(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	st, err := h.app.UserWeeklyStats(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *Handler) GroupWeekly(w http.ResponseWriter, r *http.Request) {
	st, err := h.app.GroupWeeklyStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *Handler) AddDiaryEntry(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req diaryRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	entry, err := h.app.AppendDiaryEntry(r.Context(), id, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *Handler) ListDiary(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		if limit, err = strconv.Atoi(s); err != nil {
			writeError(w, fmt.Errorf("%w: invalid limit", errBadRequest))
			return
		}
	}
	entries, err := h.app.RecentEntries(r.Context(), id, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []models.DiaryEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) RandomMantra(w http.ResponseWriter, r *http.Request) {
	m, err := h.app.RandomMantraByCategory(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handler) MantraCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.app.MantraCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if cats == nil {
		cats = []string{}
	}
	writeJSON(w, http.StatusOK, cats)
}

func (h *Handler) ListMantras(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		writeError(w, fmt.Errorf("%w: category is required", errBadRequest))
		return
	}
	list, err := h.app.MantrasByCategory(r.Context(), category)
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []models.Mantra{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) SeedMantras(w http.ResponseWriter, r *http.Request) {
	n, err := h.app.SeedMantrasIfEmpty(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, seedResponse{Inserted: n})
}
