package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/session"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/ptr"
)

// UseCase use case для получения отфильтрованных слотов сессии
type UseCase struct {
	sessions SessionRegistry
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionRegistry, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		logger:   logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: session=%s, kind=%s, all=%t", req.SessionID, req.Kind, req.ShowAll)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сессию
	s, err := uc.sessions.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			uc.logger.Warn("GetAvailableSlots: session %s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get session %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	s.Lock()
	defer s.Unlock()

	// 3. Смена даты сбрасывает пагинацию обоих списков
	if req.Date != nil {
		s.Classes.SetDate(*req.Date)
	}

	// 4. "Pokaż więcej" раскрывает весь отфильтрованный список
	if req.ShowAll {
		if err := s.Classes.LoadMore(req.Kind); err != nil {
			uc.logger.Error("GetAvailableSlots: failed to load more: %v", err)
			return nil, fmt.Errorf("%w: failed to load more: %v", ErrInternal, err)
		}
	}

	// 5. Текущая страница
	slots, total, err := s.Classes.DisplayedSlots(req.Kind)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to filter slots: %v", err)
		return nil, fmt.Errorf("%w: failed to filter slots: %v", ErrInternal, err)
	}

	resp := &Response{
		Kind:    req.Kind,
		Date:    s.Classes.Date(),
		Slots:   toSlots(slots),
		Total:   total,
		Limit:   s.Classes.Limit(req.Kind),
		HasMore: len(slots) < total,
	}
	if selected := s.Classes.SelectedSlot(req.Kind); selected != nil {
		resp.SelectedSlotID = ptr.Ptr(selected.ID)
	}

	uc.logger.Info("GetAvailableSlots: session=%s, kind=%s, date=%q: %d of %d slots",
		req.SessionID, req.Kind, resp.Date, len(resp.Slots), total)

	return resp, nil
}
