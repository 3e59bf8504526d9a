package loyaltycard

// Card ответ сервиса карт постоянного клиента
type Card struct {
	Number string `json:"number"`
	Valid  bool   `json:"valid"`
}

// ErrorResponse модель ошибки от сервиса карт
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
