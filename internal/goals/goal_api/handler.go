package goal_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"eventbite/internal/goals"
	"eventbite/internal/logger"
	"eventbite/internal/utils"
)

type Handler struct {
	GoalService *goals.GoalService
	Logger      *logger.Logger
}

func NewHandler(service *goals.GoalService, log *logger.Logger) *Handler {
	return &Handler{GoalService: service, Logger: log}
}

// RegisterRoutes wires the goal endpoints. GET and POST take an event id;
// DELETE takes a goal id.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/goals/{id}", func(r chi.Router) {
		r.Get("/", h.ListGoals)
		r.Post("/", h.CreateGoal)
		r.Delete("/", h.DeleteGoal)
	})
}

func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	eventID, ok := h.pathID(w, r)
	if !ok {
		return
	}

	goalList, err := h.GoalService.ListGoals(eventID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListGoals: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, "could not list goals")
		return
	}
	utils.WriteJSON(w, http.StatusOK, goalList)
}

func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	eventID, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Name           string `json:"name"`
		TargetQuantity int    `json:"target_quantity"`
		Unit           string `json:"unit"`
		Category       string `json:"category"`
		Priority       string `json:"priority"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	goal, err := h.GoalService.CreateGoal(eventID, req.Name, req.TargetQuantity, req.Unit, req.Category, req.Priority)
	if err != nil {
		h.writeServiceError(w, "CreateGoal", err)
		return
	}

	h.Logger.LogEvent("GOAL_CREATE", eventID, fmt.Sprintf("Goal %q (x%d) created", goal.Name, goal.TargetQuantity))
	utils.WriteJSON(w, http.StatusCreated, map[string]int64{"id": goal.ID})
}

func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	goalID, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.GoalService.DeleteGoal(goalID); err != nil {
		h.writeServiceError(w, "DeleteGoal", err)
		return
	}

	h.Logger.Info("GOAL", fmt.Sprintf("Goal %d deleted with its contributions", goalID))
	utils.WriteMsg(w, http.StatusOK, "goal deleted")
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "not found")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, goals.ErrNameRequired),
		errors.Is(err, goals.ErrTargetTooLow),
		errors.Is(err, goals.ErrGoalLimit):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, goals.ErrNotFound), errors.Is(err, goals.ErrEventNotFound):
		utils.WriteError(w, http.StatusNotFound, err.Error())
	default:
		h.Logger.Error("API", fmt.Sprintf("%s: %v", op, err))
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
