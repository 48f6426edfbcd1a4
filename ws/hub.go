package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub mantiene los dashboards conectados para avisarles de cambios en los
// registros (el equivalente backend de los toasts del cliente original).
type Hub struct {
	Clients map[*websocket.Conn]*Client
	Mutex   sync.RWMutex
}

var H = Hub{
	Clients: make(map[*websocket.Conn]*Client),
}

// Evento de cambio sobre un registro (usuario, estudio o dirección)
type RecordChangeEvent struct {
	Entity string `json:"entity"`
	Action string `json:"action"` // created | updated | deleted
	ID     string `json:"id"`
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	h.Clients[conn] = client

	// el handler hace de read pump; aquí solo arranca el write pump
	go h.writePump(conn)
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if client, ok := h.Clients[conn]; ok {
		close(client.Send)
		delete(h.Clients, conn)
	}
}

// Broadcast a todos los clientes conectados; los que tengan el buffer
// lleno se saltan en vez de bloquear.
func (h *Hub) Broadcast(data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	for _, client := range h.Clients {
		select {
		case client.Send <- data:
		default:
		}
	}
}

func (h *Hub) writePump(conn *websocket.Conn) {
	h.Mutex.RLock()
	client := h.Clients[conn]
	h.Mutex.RUnlock()
	if client == nil {
		return
	}
	defer func() {
		conn.WriteMessage(websocket.CloseMessage, []byte{})
		conn.Close()
	}()
	for msg := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// NotifyChange publica un evento de cambio a todos los dashboards.
func NotifyChange(entity, action, id string) {
	evento := RecordChangeEvent{Entity: entity, Action: action, ID: id}
	data, err := json.Marshal(evento)
	if err != nil {
		log.Println("Error en JSON marshal:", err)
		return
	}
	H.Broadcast(data)
}

// GetStats devuelve el número de clientes conectados, para el health check.
func (h *Hub) GetStats() map[string]int {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()
	return map[string]int{"clients": len(h.Clients)}
}
