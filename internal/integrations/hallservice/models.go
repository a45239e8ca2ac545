package hallservice

// Hall модель спортивного зала из HallService
type Hall struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	City       string  `json:"city"`
	Address    string  `json:"address"`
	ManagerIDs []int64 `json:"managerIds"`
	IsActive   bool    `json:"isActive"`
}

// ErrorResponse модель ошибки от HallService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
