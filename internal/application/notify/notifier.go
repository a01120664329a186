// Package notify implementa las notificaciones transitorias del panel: cada
// resultado de mutación produce un aviso que se registra en el log y se
// difunde a los suscriptores conectados (SSE).
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/resto-admin-api/pkg/logger"
)

// Level severidad del aviso.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification aviso transitorio para la interfaz.
type Notification struct {
	ID      string    `json:"id"`
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notifier puerto de publicación de avisos.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Hub difunde avisos a todos los suscriptores. El envío nunca bloquea: un
// suscriptor con el buffer lleno pierde el aviso.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]chan Notification
	log  *logger.Logger
}

// NewHub construye el hub.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		subs: make(map[string]chan Notification),
		log:  log.Component("notify"),
	}
}

// Success publica un aviso de éxito.
func (h *Hub) Success(message string) { h.publish(LevelSuccess, message) }

// Error publica un aviso de error.
func (h *Hub) Error(message string) { h.publish(LevelError, message) }

func (h *Hub) publish(level Level, message string) {
	n := Notification{
		ID:      uuid.New().String(),
		Level:   level,
		Message: message,
		At:      time.Now(),
	}

	if level == LevelError {
		h.log.Warn().Str("id", n.ID).Msg(message)
	} else {
		h.log.Info().Str("id", n.ID).Msg(message)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- n:
		default:
			// Suscriptor lento: se descarta el aviso
		}
	}
}

// Subscribe registra un suscriptor y devuelve su id y canal de avisos.
func (h *Hub) Subscribe() (string, <-chan Notification) {
	id := uuid.New().String()
	ch := make(chan Notification, 16)

	h.mu.Lock()
	h.subs[id] = ch
	h.mu.Unlock()

	return id, ch
}

// Unsubscribe retira un suscriptor y cierra su canal.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
}
