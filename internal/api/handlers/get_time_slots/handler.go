package get_time_slots

import (
	"net/http"

	"github.com/hallhub/SHB-ScheduleService/internal/api/handlers"
	"github.com/hallhub/SHB-ScheduleService/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/schedules/time-slots
// Возвращает фиксированную сетку допустимых значений времени (шаг 90 минут).
// Публичный endpoint - без авторизации.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{Slots: domain.GenerateTimeSlots()})
}
