// Package realtime entrega atualizações de facção e galeria aos clientes WebSocket conectados.
package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
	"github.com/rafabene/gravegrounds-backend/internal/domain/events"
	"github.com/rafabene/gravegrounds-backend/internal/domain/ports"
)

const (
	EventFactionUpdate = "factionUpdate"
	EventFactionStats  = "factionStats"

	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 64
	snapshotWait   = 5 * time.Second
)

// Message é o envelope enviado pelo socket
type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte

	// até o snapshot ser enfileirado, eventos ficam retidos em pending
	ready   bool
	pending []pendingEvent
}

type pendingEvent struct {
	event   events.FactionUpdate
	payload []byte
}

// Hub mantém o registro de clientes conectados e faz o fan-out dos eventos.
// Entrega é best-effort: um cliente com buffer cheio perde a mensagem.
type Hub struct {
	upgrader  websocket.Upgrader
	snapshots ports.SnapshotProvider
	log       ports.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

// NewHub cria o hub; allowedOrigins vazio ou contendo "*" aceita qualquer origem
func NewHub(snapshots ports.SnapshotProvider, log ports.Logger, allowedOrigins []string) *Hub {
	h := &Hub{
		snapshots: snapshots,
		log:       log.With("component", "realtime"),
		clients:   make(map[*client]struct{}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     checkOrigin(allowedOrigins),
	}
	return h
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 || slices.Contains(allowed, "*") {
		return func(r *http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowed, origin)
	}
}

// Publish implementa ports.EventPublisher
func (h *Hub) Publish(event events.FactionUpdate) {
	payload, err := json.Marshal(Message{Event: EventFactionUpdate, Data: event})
	if err != nil {
		h.log.Error("failed to encode event", "type", event.Type, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		if !c.ready {
			if len(c.pending) >= sendBuffer {
				h.log.Warn("dropping message for pending client", "type", event.Type)
				continue
			}
			c.pending = append(c.pending, pendingEvent{event: event, payload: payload})
			continue
		}
		h.enqueue(c, payload)
	}
}

// enqueue nunca bloqueia; exige h.mu
func (h *Hub) enqueue(c *client, payload []byte) {
	select {
	case c.send <- payload:
	default:
		h.log.Warn("dropping message for slow client")
	}
}

// ServeWS faz o upgrade, registra o cliente e só então lê o snapshot completo,
// garantindo que o cliente observe um estado igual ou posterior a qualquer evento já emitido.
// Eventos publicados durante a leitura seguem depois do snapshot, exceto os que ele já cobre.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	if !h.register(c) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		conn.Close() //nolint:errcheck
		return
	}

	go h.writer(c)
	h.sendSnapshot(r.Context(), c)
	h.reader(c)
}

func (h *Hub) sendSnapshot(ctx context.Context, c *client) {
	ctx, cancel := context.WithTimeout(ctx, snapshotWait)
	defer cancel()

	var payload []byte
	stats, err := h.snapshots.Snapshot(ctx)
	if err == nil {
		payload, err = json.Marshal(Message{Event: EventFactionStats, Data: stats})
	}
	if err != nil {
		h.log.Error("failed to load faction snapshot", "error", err)
	}

	byFaction := make(map[entities.Faction]*entities.FactionStats, len(stats))
	for _, s := range stats {
		byFaction[s.Faction] = s
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}

	if payload != nil {
		h.enqueue(c, payload)
	}
	for _, p := range c.pending {
		if p.event.OlderThan(byFaction[p.event.Faction]) {
			continue
		}
		h.enqueue(c, p.payload)
	}
	c.pending = nil
	c.ready = true
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	h.log.Debug("client connected", "clients", len(h.clients))
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		h.log.Debug("client disconnected", "clients", len(h.clients))
	}
}

// reader descarta mensagens do cliente e detecta desconexão
func (h *Hub) reader(c *client) {
	defer func() {
		h.unregister(c)
		c.conn.Close() //nolint:errcheck
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("websocket closed unexpectedly", "error", err)
			}
			return
		}
	}
}

func (h *Hub) writer(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close() //nolint:errcheck
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
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

// ClientCount retorna o número de clientes conectados
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close desconecta todos os clientes e recusa novas conexões
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
