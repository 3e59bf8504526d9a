package cancel_booking

import cancelBooking "github.com/m04kA/SMC-SkiSchoolBooking/internal/usecase/cancel_booking"

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Removed  int `json:"removed"`
	CartSize int `json:"cartSize"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		Removed:  resp.Removed,
		CartSize: resp.CartSize,
	}
}
