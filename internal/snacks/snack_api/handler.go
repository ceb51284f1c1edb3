package snack_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"eventbite/internal/logger"
	"eventbite/internal/snacks"
	"eventbite/internal/utils"
)

type Handler struct {
	SnackService *snacks.SnackService
	Logger       *logger.Logger
}

func NewHandler(service *snacks.SnackService, log *logger.Logger) *Handler {
	return &Handler{SnackService: service, Logger: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/snacks", func(r chi.Router) {
		r.Get("/", h.ListSnacks)
		r.Post("/", h.CreateSnack)
		r.Get("/{id}", h.GetSnack)
		r.Put("/{id}", h.UpdateSnack)
		r.Delete("/{id}", h.DeleteSnack)
	})
}

func (h *Handler) ListSnacks(w http.ResponseWriter, r *http.Request) {
	snackList, err := h.SnackService.ListSnacks()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListSnacks: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, "could not list snacks")
		return
	}
	utils.WriteJSON(w, http.StatusOK, snackList)
}

func (h *Handler) GetSnack(w http.ResponseWriter, r *http.Request) {
	id, ok := h.snackID(w, r)
	if !ok {
		return
	}

	snack, err := h.SnackService.GetSnack(id)
	if err != nil {
		h.writeServiceError(w, "GetSnack", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, snack)
}

func (h *Handler) CreateSnack(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name           string `json:"name"`
		Quantity       int    `json:"quantity"`
		AssignedPerson string `json:"assigned_person"`
		Status         string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snack, err := h.SnackService.CreateSnack(req.Name, req.Quantity, req.AssignedPerson, req.Status)
	if err != nil {
		h.writeServiceError(w, "CreateSnack", err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, snack)
}

func (h *Handler) UpdateSnack(w http.ResponseWriter, r *http.Request) {
	id, ok := h.snackID(w, r)
	if !ok {
		return
	}

	var update snacks.SnackUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snack, err := h.SnackService.UpdateSnack(id, update)
	if err != nil {
		h.writeServiceError(w, "UpdateSnack", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, snack)
}

func (h *Handler) DeleteSnack(w http.ResponseWriter, r *http.Request) {
	id, ok := h.snackID(w, r)
	if !ok {
		return
	}

	if err := h.SnackService.DeleteSnack(id); err != nil {
		h.writeServiceError(w, "DeleteSnack", err)
		return
	}
	utils.WriteMsg(w, http.StatusOK, "snack deleted")
}

func (h *Handler) snackID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "snack not found")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, snacks.ErrNameRequired),
		errors.Is(err, snacks.ErrPersonRequired),
		errors.Is(err, snacks.ErrQuantityTooLow):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, snacks.ErrNotFound):
		utils.WriteError(w, http.StatusNotFound, err.Error())
	default:
		h.Logger.Error("API", fmt.Sprintf("%s: %v", op, err))
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
