package get_schedule_overview

// Request модель запроса сводки по расписанию зала
type Request struct {
	HallID int64 // ID зала
}

// DayOverview сводка по одному дню недели
type DayOverview struct {
	DayOfWeek int    `json:"dayOfWeek"`
	Weekday   string `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsActive  bool   `json:"isActive"`
	Slots     int    `json:"slots"` // количество 90-минутных слотов
}

// Response сводка по недельному расписанию зала с производными значениями
type Response struct {
	HallID     int64         `json:"hallId"`
	Configured bool          `json:"configured"` // false = показаны значения стандартного шаблона
	Days       []DayOverview `json:"days"`
	TotalSlots int           `json:"totalSlots"`
	ActiveDays int           `json:"activeDays"`
}
