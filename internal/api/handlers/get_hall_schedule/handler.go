package get_hall_schedule

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hallhub/SHB-ScheduleService/internal/api/handlers"
)

const msgInvalidHallID = "некорректный ID зала"

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/hall/{hallId}
// Возвращает массив дневных записей; пустой массив означает,
// что расписание еще не настроено.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем hallId из URL
	vars := mux.Vars(r)
	hallIDStr := vars["hallId"]

	hallID, err := strconv.ParseInt(hallIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /schedules/hall/{id} - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	result, err := h.service.GetByHall(r.Context(), hallID)
	if err != nil {
		h.logger.Error("GET /schedules/hall/{id} - Failed to get schedule: hall_id=%d, error=%v",
			hallID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedules/hall/{id} - Schedule retrieved: hall_id=%d, entries=%d",
		hallID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
