package ws

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/jcamargo/panel-usuarios-backend/config"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // solo para desarrollo, en producción hay que limitarlo
	},
}

// envía un message en JSON por el WebSocket
func sendJSON(conn *websocket.Conn, data interface{}) {
	msg, err := json.Marshal(data)
	if err != nil {
		log.Println("Error en JSON marshal:", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		log.Println("Error enviando message:", err)
	}
}

// WebSocket global de cambios de registros
func HandleStatusWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Falta el token"})
		return
	}
	sesion, ok := config.Sessions.Session(token)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión inválida o expirada"})
		return
	}

	userID := sesion.User.ID
	log.Printf("WS conectado: userID=%s\n", userID)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Falló el upgrade del WebSocket:", err)
		return
	}
	H.Register(conn)
	defer H.Unregister(conn)

	sendJSON(conn, gin.H{"type": "connected", "message": "Conectado al canal de cambios"})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	log.Printf("WS desconectado: userID=%s\n", userID)
	conn.Close()
}
