package update_hall_schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/hallhub/SHB-ScheduleService/internal/api/handlers"
	"github.com/hallhub/SHB-ScheduleService/internal/api/middleware"
	"github.com/hallhub/SHB-ScheduleService/internal/service/schedule"
	"github.com/hallhub/SHB-ScheduleService/internal/service/schedule/models"
)

const (
	msgInvalidHallID      = "некорректный ID зала"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgHallNotFound       = "зал не найден"
	msgForbidden          = "доступ запрещен"
	msgUnauthorized       = "требуется аутентификация"
)

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

// Handle POST /api/v1/schedules/hall/{hallId}
// Тело запроса — массив ровно из семи дневных записей; расписание зала
// полностью заменяется (bulk upsert). Возвращает сохраненный массив.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем hallId из URL
	vars := mux.Vars(r)
	hallIDStr := vars["hallId"]

	hallID, err := strconv.ParseInt(hallIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /schedules/hall/{id} - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	// Пользователь из Auth middleware
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /schedules/hall/{id} - Missing user in context: hall_id=%d", hallID)
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Декодируем body (массив дневных записей)
	var days []models.DayRecord
	if err := json.NewDecoder(r.Body).Decode(&days); err != nil {
		h.logger.Warn("POST /schedules/hall/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req := &models.ReplaceScheduleRequest{
		UserID: userID,
		Days:   days,
	}

	result, err := h.service.Replace(r.Context(), hallID, req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrHallNotFound):
			h.logger.Warn("POST /schedules/hall/{id} - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("POST /schedules/hall/{id} - Access denied: hall_id=%d, user_id=%d",
				hallID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /schedules/hall/{id} - Invalid data: hall_id=%d, error=%v",
				hallID, err)
			handlers.RespondBadRequest(w, violationMessage(err))

		default:
			h.logger.Error("POST /schedules/hall/{id} - Failed to replace schedule: hall_id=%d, error=%v",
				hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules/hall/{id} - Schedule replaced: hall_id=%d, user_id=%d",
		hallID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// violationMessage снимает префикс сентинеля, оставляя описание нарушения
// с именем дня недели
func violationMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}
