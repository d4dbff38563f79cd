package websockets

import (
	"encoding/json"
	"server/config"
	"server/internal/database"
	"server/internal/events"
	"server/internal/logger"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// Manager tracks one set of connections per user and pushes payment events
// to them. The browser also polls the status endpoint, so a dropped socket
// is never fatal.
type Manager struct {
	log         logger.Logger
	mu          sync.RWMutex
	connections map[string]map[*websocket.Conn]bool
}

func New(db database.DB, eventBus *events.EventBus, config config.Config) (*Manager, error) {
	manager := &Manager{
		log:         logger.New("websockets"),
		connections: make(map[string]map[*websocket.Conn]bool),
	}

	eventBus.Subscribe("payments", manager.handlePaymentEvent)

	return manager, nil
}

// HandleWebSocket serves one connection. The user ID is resolved by the
// auth middleware before the upgrade and stashed in conn locals.
func (m *Manager) HandleWebSocket(c *websocket.Conn) {
	log := m.log.Function("HandleWebSocket")

	userID, _ := c.Locals("userID").(string)
	if userID == "" {
		log.ErMsg("websocket connection without user")
		_ = c.Close()
		return
	}

	m.register(userID, c)
	defer m.unregister(userID, c)

	log.Info("Websocket connected", "userID", userID)

	// Reads are only for detecting close; clients don't send anything.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}

func (m *Manager) register(userID string, c *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connections[userID] == nil {
		m.connections[userID] = make(map[*websocket.Conn]bool)
	}
	m.connections[userID][c] = true
}

func (m *Manager) unregister(userID string, c *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.connections[userID], c)
	if len(m.connections[userID]) == 0 {
		delete(m.connections, userID)
	}
}

func (m *Manager) handlePaymentEvent(event events.Event) {
	log := m.log.Function("handlePaymentEvent")

	if event.UserID == "" {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Er("failed to marshal event for push", err)
		return
	}

	m.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(m.connections[event.UserID]))
	for c := range m.connections[event.UserID] {
		conns = append(conns, c)
	}
	m.mu.RUnlock()

	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Warn("failed to push event, dropping connection", "userID", event.UserID, "error", err)
			_ = c.Close()
		}
	}
}
