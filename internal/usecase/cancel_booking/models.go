package cancel_booking

// Request модель запроса на удаление занятия из корзины
type Request struct {
	SessionID string
	BookingID string
}

// Response модель ответа
type Response struct {
	Removed  int // Удаленные строки; для группового пакета - все его даты
	CartSize int
}
