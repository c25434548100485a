// websocket/types.go
package websocket

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/Nikhil6906/Phonepe-transaction-insights/database"
)

// Параметры соединений
const (
	// Максимальный размер входящего сообщения
	maxMessageSize = 1024

	// Время ожидания записи
	writeWait = 10 * time.Second

	// Время ожидания pong-ответа от клиента
	pongWait = 60 * time.Second

	// Период отправки ping-сообщений (меньше pongWait)
	pingPeriod = (pongWait * 9) / 10
)

// Client подключенный клиент дашборда
type Client struct {
	ID     string
	Socket *websocket.Conn
	Send   chan []byte

	manager *Manager
}

// Manager управляет WebSocket-соединениями дашборда
type Manager struct {
	Register   chan *Client
	Unregister chan *Client
	Clients    map[string]*Client

	queries *database.Queries
}

// QueryRequest запрос клиента на обновление данных
type QueryRequest struct {
	Dataset string `json:"dataset"`
	Year    int    `json:"year"`
	Quarter int    `json:"quarter"`
	State   string `json:"state"`
}

// QueryResponse ответ сервера с обновленными данными
type QueryResponse struct {
	Dataset string      `json:"dataset"`
	Year    int         `json:"year"`
	Quarter int         `json:"quarter"`
	State   string      `json:"state,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
