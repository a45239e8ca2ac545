package get_time_slots

import "github.com/hallhub/SHB-ScheduleService/pkg/types"

// Response список допустимых значений времени начала/окончания работы
type Response struct {
	Slots []types.TimeString `json:"slots"`
}
