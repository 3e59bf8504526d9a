package uid

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Length длина идентификатора
const Length = 8

const (
	timePartLength = 3
	alphabet       = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// Generator выдает короткие уникальные идентификаторы участников и бронирований.
// Идентификатор = хвост текущего времени в base36 + случайные символы base36, в верхнем регистре.
// Один и тот же генератор никогда не выдает идентификатор повторно;
// генератор живет столько же, сколько сессия, и освобождается вместе с ней.
type Generator struct {
	mu     sync.Mutex
	now    func() time.Time
	issued map[string]struct{}
}

// NewGenerator создает генератор на системных часах
func NewGenerator() *Generator {
	return &Generator{
		now:    time.Now,
		issued: make(map[string]struct{}),
	}
}

// New возвращает новый идентификатор длины Length
func (g *Generator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		id := build(g.now())
		if _, seen := g.issued[id]; seen {
			continue
		}
		g.issued[id] = struct{}{}
		return id
	}
}

func build(now time.Time) string {
	ts := strconv.FormatInt(now.UnixNano(), 36)
	if len(ts) > timePartLength {
		ts = ts[len(ts)-timePartLength:]
	}

	var b strings.Builder
	b.Grow(Length)
	b.WriteString(ts)
	for b.Len() < Length {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}

	return strings.ToUpper(b.String())
}
