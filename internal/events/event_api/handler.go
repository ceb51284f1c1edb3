package event_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"eventbite/internal/events"
	"eventbite/internal/events/qr"
	eventsredis "eventbite/internal/events/redis"
	"eventbite/internal/kafka"
	"eventbite/internal/logger"
	"eventbite/internal/utils"
)

type Handler struct {
	EventService *events.EventService
	Limiter      *eventsredis.Limiter
	QR           *qr.Generator
	Producer     *kafka.Producer
	Logger       *logger.Logger
}

func NewHandler(service *events.EventService, limiter *eventsredis.Limiter, qrGen *qr.Generator, producer *kafka.Producer, log *logger.Logger) *Handler {
	return &Handler{
		EventService: service,
		Limiter:      limiter,
		QR:           qrGen,
		Producer:     producer,
		Logger:       log,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/events", h.ListEvents)
	r.Post("/create-event", h.CreateEvent)
	r.Post("/verify-admin", h.VerifyAdmin)
	r.Route("/event/{id}", func(r chi.Router) {
		r.Get("/", h.GetEvent)
		r.Put("/", h.UpdateEvent)
		r.Delete("/", h.DeleteEvent)
		r.Get("/qr", h.ShareQR)
	})
	r.Delete("/reset/{id}", h.ResetEvent)
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	eventList, err := h.EventService.ListEvents()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListEvents: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, "could not list events")
		return
	}
	utils.WriteJSON(w, http.StatusOK, eventList)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.EventService.CreateEvent(req.Name, req.Password)
	if err != nil {
		h.writeServiceError(w, "CreateEvent", err)
		return
	}

	h.Logger.LogEvent("CREATE", event.ID, fmt.Sprintf("Event %q created", event.Name))
	if h.Producer != nil {
		h.Producer.PublishEventCreated(event.ID, event.Name)
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"id":   event.ID,
		"name": event.Name,
	})
}

func (h *Handler) VerifyAdmin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EventID  int64  `json:"event_id"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !h.Limiter.Allow(req.EventID) {
		utils.WriteJSON(w, http.StatusUnauthorized, map[string]bool{"valid": false})
		return
	}

	if err := h.EventService.VerifyAdmin(req.EventID, req.Password); err != nil {
		if errors.Is(err, events.ErrInvalidCredentials) {
			h.Logger.LogSecurity("VERIFY_FAILED", fmt.Sprintf("Rejected admin verification for event %d", req.EventID))
			utils.WriteJSON(w, http.StatusUnauthorized, map[string]bool{"valid": false})
			return
		}
		h.Logger.Error("API", fmt.Sprintf("VerifyAdmin: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, "could not verify password")
		return
	}

	h.Limiter.Reset(req.EventID)
	utils.WriteJSON(w, http.StatusOK, map[string]bool{"valid": true})
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventID(w, r)
	if !ok {
		return
	}

	event, err := h.EventService.GetEvent(id)
	if err != nil {
		h.writeServiceError(w, "GetEvent", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, event)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventID(w, r)
	if !ok {
		return
	}

	var req struct {
		Name *string `json:"name"`
		Date *string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.EventService.UpdateEvent(id, req.Name, req.Date)
	if err != nil {
		h.writeServiceError(w, "UpdateEvent", err)
		return
	}

	h.Logger.LogEvent("UPDATE", event.ID, "Event updated")
	utils.WriteJSON(w, http.StatusOK, event)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventID(w, r)
	if !ok {
		return
	}

	if err := h.EventService.DeleteEvent(id); err != nil {
		h.writeServiceError(w, "DeleteEvent", err)
		return
	}

	h.Logger.LogEvent("DELETE", id, "Event deleted with goals and contributions")
	utils.WriteMsg(w, http.StatusOK, "event deleted")
}

func (h *Handler) ResetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventID(w, r)
	if !ok {
		return
	}

	if err := h.EventService.ResetEvent(id); err != nil {
		h.writeServiceError(w, "ResetEvent", err)
		return
	}

	h.Logger.LogEvent("RESET", id, "Goals and contributions cleared, event kept")
	utils.WriteMsg(w, http.StatusOK, "event reset")
}

func (h *Handler) ShareQR(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventID(w, r)
	if !ok {
		return
	}

	// The event must exist before handing out a share code for it.
	if _, err := h.EventService.GetEvent(id); err != nil {
		h.writeServiceError(w, "ShareQR", err)
		return
	}

	png, err := h.QR.GenerateShareQR(id)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ShareQR: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, "could not generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (h *Handler) eventID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "event not found")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, events.ErrNameRequired), errors.Is(err, events.ErrPasswordRequired):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, events.ErrNotFound):
		utils.WriteError(w, http.StatusNotFound, err.Error())
	default:
		h.Logger.Error("API", fmt.Sprintf("%s: %v", op, err))
		utils.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
