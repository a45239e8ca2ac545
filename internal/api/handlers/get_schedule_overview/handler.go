package get_schedule_overview

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hallhub/SHB-ScheduleService/internal/api/handlers"
	overviewUC "github.com/hallhub/SHB-ScheduleService/internal/usecase/get_schedule_overview"
)

const (
	msgInvalidHallID = "некорректный ID зала"
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	usecase OverviewUseCase
	logger  Logger
}

func NewHandler(usecase OverviewUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/hall/{hallId}/overview
// Возвращает производные значения расписания: слоты по дням,
// суммарное количество слотов и число активных дней.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем hallId из URL
	vars := mux.Vars(r)
	hallIDStr := vars["hallId"]

	hallID, err := strconv.ParseInt(hallIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /schedules/hall/{id}/overview - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	result, err := h.usecase.Execute(r.Context(), &overviewUC.Request{HallID: hallID})
	if err != nil {
		if errors.Is(err, overviewUC.ErrInvalidInput) {
			h.logger.Warn("GET /schedules/hall/{id}/overview - Invalid params: hall_id=%d, error=%v",
				hallID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}

		h.logger.Error("GET /schedules/hall/{id}/overview - Failed to build overview: hall_id=%d, error=%v",
			hallID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedules/hall/{id}/overview - Overview built: hall_id=%d, total_slots=%d",
		hallID, result.TotalSlots)
	handlers.RespondJSON(w, http.StatusOK, result)
}
