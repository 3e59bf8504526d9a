package preferences

import "errors"

var (
	// ErrEncode возвращается, когда предпочтения не удалось сериализовать
	ErrEncode = errors.New("preferences.repository: failed to encode value")
)
