package notifications

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/m04kA/SMC-SkiSchoolBooking/internal/domain"
)

const (
	sendBuffer = 64
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub уведомления одной сессии, доставляемые подключенным клиентам по websocket.
// Без подключенного клиента простые уведомления копятся до следующего подключения,
// уведомления с действием остаются открытыми, пока их не закроют или не нажмут.
type Hub struct {
	mu        sync.Mutex
	clients   map[*client]struct{}
	pending   []Message
	open      []Message
	callbacks map[string]func()
	closed    bool

	// колбэки действий выполняются под этой блокировкой (блокировка сессии)
	locker sync.Locker
	ids    IDGenerator
	logger Logger
}

// NewHub создает хаб уведомлений сессии
func NewHub(locker sync.Locker, ids IDGenerator, logger Logger) *Hub {
	return &Hub{
		clients:   make(map[*client]struct{}),
		callbacks: make(map[string]func()),
		locker:    locker,
		ids:       ids,
		logger:    logger,
	}
}

// ShowSimpleMessage показывает уведомление, которое закрывается автоматически
func (h *Hub) ShowSimpleMessage(text string, severity domain.Severity) {
	if !severity.IsValid() {
		severity = domain.SeverityInfo
	}
	msg := Message{
		Type:        TypeSimple,
		ID:          h.ids.New(),
		Text:        text,
		Severity:    severity,
		AutoCloseMs: SimpleAutoCloseMs,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.deliver(msg) {
		h.pending = append(h.pending, msg)
	}
}

// ShowActionMessage показывает постоянное уведомление с кнопкой.
// onAction вызывается не более одного раза, после чего уведомление закрывается.
func (h *Hub) ShowActionMessage(content, actionLabel string, onAction func()) {
	msg := Message{
		Type:        TypeAction,
		ID:          h.ids.New(),
		Text:        content,
		ActionLabel: actionLabel,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.open = append(h.open, msg)
	if onAction != nil {
		h.callbacks[msg.ID] = onAction
	}
	h.deliver(msg)
}

// Open возвращает открытые уведомления с действием
func (h *Hub) Open() []Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Message(nil), h.open...)
}

// Act выполняет действие уведомления и закрывает его.
// Неизвестный или уже обработанный ID игнорируется, возвращается false.
func (h *Hub) Act(id string) bool {
	h.mu.Lock()
	callback, ok := h.callbacks[id]
	delete(h.callbacks, id)
	h.mu.Unlock()

	if !ok {
		h.logger.Warn("Notifications: action id=%s not found", id)
		return false
	}

	h.locker.Lock()
	callback()
	h.locker.Unlock()

	h.Dismiss(id)
	return true
}

// Dismiss закрывает уведомление без выполнения действия
func (h *Hub) Dismiss(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.callbacks, id)
	for i, m := range h.open {
		if m.ID == id {
			h.open = append(h.open[:i], h.open[i+1:]...)
			break
		}
	}
	h.deliver(Message{Type: TypeDismiss, ID: id})
}

// Close отключает всех клиентов
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// ServeHTTP подключает клиента по websocket
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Notifications: websocket upgrade failed: %v", err)
		return
	}

	c, ok := h.register(conn)
	if !ok {
		_ = conn.Close()
		return
	}
	go h.writePump(c)
	go h.readPump(c)
}

// register добавляет клиента и отправляет ему накопленные и открытые уведомления
func (h *Hub) register(conn *websocket.Conn) (*client, bool) {
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, false
	}

	h.clients[c] = struct{}{}
	backlog := append(append([]Message(nil), h.open...), h.pending...)
	h.pending = nil
	for _, m := range backlog {
		if data, err := json.Marshal(m); err == nil {
			select {
			case c.send <- data:
			default:
			}
		}
	}
	h.logger.Info("Notifications: client connected, %d messages replayed", len(backlog))
	return c, true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// deliver отправляет сообщение всем клиентам; вызывается под h.mu.
// Медленный клиент отключается. Возвращает false, если получателей нет.
func (h *Hub) deliver(msg Message) bool {
	if len(h.clients) == 0 {
		h.logger.Info("Notifications: no client connected, %s message id=%s kept", msg.Type, msg.ID)
		return false
	}

	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("Notifications: failed to encode message id=%s: %v", msg.ID, err)
		return false
	}

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			delete(h.clients, c)
			close(c.send)
		}
	}
	return true
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var in inbound
		if err := json.Unmarshal(raw, &in); err != nil {
			h.logger.Warn("Notifications: invalid payload: %v", err)
			continue
		}

		switch in.Type {
		case TypeAction:
			h.Act(in.ID)
		case TypeDismiss:
			h.Dismiss(in.ID)
		default:
			h.logger.Warn("Notifications: unknown message type %q", in.Type)
		}
	}
}
