package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не существует или была вытеснена
	ErrSessionNotFound = errors.New("session: not found")
)
