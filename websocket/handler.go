// websocket/handler.go
package websocket

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Дашборд отдается с того же сервера, но разрешаем и внешние страницы
		return true
	},
}

// HandleConnections обрабатывает новые WebSocket-подключения дашборда
func (manager *Manager) HandleConnections(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Ошибка при обновлении соединения: %v", err)
		return
	}

	client := &Client{
		ID:      uuid.NewString(),
		Socket:  conn,
		Send:    make(chan []byte, 16),
		manager: manager,
	}

	manager.Register <- client

	go client.WriteMessages()
	go client.ReadMessages()
}
