package contribution_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"eventbite/internal/contributions"
	"eventbite/internal/kafka"
	"eventbite/internal/logger"
	"eventbite/internal/utils"
)

type Handler struct {
	ContributionService *contributions.ContributionService
	Producer            *kafka.Producer
	Logger              *logger.Logger
}

func NewHandler(service *contributions.ContributionService, producer *kafka.Producer, log *logger.Logger) *Handler {
	return &Handler{
		ContributionService: service,
		Producer:            producer,
		Logger:              log,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/contributions", func(r chi.Router) {
		r.Get("/", h.ListContributions)
		r.Post("/", h.CreateContribution)
		r.Get("/event/{eventID}", h.ListContributionsByEvent)
		r.Put("/{id}", h.UpdateContribution)
		r.Delete("/{id}", h.DeleteContribution)
	})
}

func (h *Handler) ListContributions(w http.ResponseWriter, r *http.Request) {
	contributionList, err := h.ContributionService.ListContributions()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListContributions: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, "could not list contributions")
		return
	}
	utils.WriteJSON(w, http.StatusOK, contributionList)
}

func (h *Handler) ListContributionsByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "event not found")
		return
	}

	contributionList, err := h.ContributionService.ListContributionsByEvent(eventID)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListContributionsByEvent: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, "could not list contributions")
		return
	}
	utils.WriteJSON(w, http.StatusOK, contributionList)
}

func (h *Handler) CreateContribution(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GoalID   int64  `json:"goal_id"`
		Assignee string `json:"assignee"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contribution, err := h.ContributionService.CreateContribution(req.GoalID, req.Assignee, req.Quantity)
	if err != nil {
		h.writeServiceError(w, "CreateContribution", err)
		return
	}

	h.Logger.Info("CONTRIBUTION", fmt.Sprintf("Contribution %d created: %s brings %d for goal %d",
		contribution.ID, contribution.Assignee, contribution.Quantity, contribution.GoalID))
	if h.Producer != nil {
		h.Producer.PublishContributionCreated(contribution.ID, contribution.GoalID, contribution.Assignee, contribution.Quantity)
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]int64{"id": contribution.ID})
}

func (h *Handler) UpdateContribution(w http.ResponseWriter, r *http.Request) {
	id, ok := h.contributionID(w, r)
	if !ok {
		return
	}

	var update contributions.ContributionUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.ContributionService.UpdateContribution(id, update); err != nil {
		h.writeServiceError(w, "UpdateContribution", err)
		return
	}

	if h.Producer != nil {
		h.Producer.PublishContributionUpdated(id)
	}
	utils.WriteMsg(w, http.StatusOK, "contribution updated")
}

func (h *Handler) DeleteContribution(w http.ResponseWriter, r *http.Request) {
	id, ok := h.contributionID(w, r)
	if !ok {
		return
	}

	if err := h.ContributionService.DeleteContribution(id); err != nil {
		h.writeServiceError(w, "DeleteContribution", err)
		return
	}

	if h.Producer != nil {
		h.Producer.PublishContributionDeleted(id)
	}
	utils.WriteMsg(w, http.StatusOK, "contribution deleted")
}

func (h *Handler) contributionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "contribution not found")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, contributions.ErrAssigneeRequired), errors.Is(err, contributions.ErrQuantityTooLow):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, contributions.ErrNotFound), errors.Is(err, contributions.ErrGoalNotFound):
		utils.WriteError(w, http.StatusNotFound, err.Error())
	default:
		h.Logger.Error("API", fmt.Sprintf("%s: %v", op, err))
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
