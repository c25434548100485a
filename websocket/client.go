// websocket/client.go
package websocket

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

// ReadMessages читает запросы клиента и отвечает обновленными данными
func (c *Client) ReadMessages() {
	defer func() {
		c.manager.Unregister <- c
		c.Socket.Close()
	}()

	c.Socket.SetReadLimit(maxMessageSize)
	c.Socket.SetReadDeadline(time.Now().Add(pongWait))
	c.Socket.SetPongHandler(func(string) error {
		c.Socket.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Ошибка чтения от клиента %s: %v", c.ID, err)
			}
			return
		}

		var req QueryRequest
		if err := json.Unmarshal(message, &req); err != nil {
			c.reply(QueryResponse{Error: "Неверный формат запроса"})
			continue
		}

		c.reply(c.manager.resolve(req))
	}
}

// WriteMessages отправляет клиенту ответы и поддерживает соединение ping-сообщениями
func (c *Client) WriteMessages() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Socket.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Socket.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Менеджер закрыл канал
				c.Socket.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Socket.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("Ошибка записи клиенту %s: %v", c.ID, err)
				return
			}

		case <-ticker.C:
			c.Socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Socket.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// reply ставит ответ в очередь отправки клиенту
func (c *Client) reply(resp QueryResponse) {
	body, err := json.Marshal(resp)
	if err != nil {
		log.Printf("Ошибка при сериализации ответа клиенту %s: %v", c.ID, err)
		return
	}

	select {
	case c.Send <- body:
	default:
		log.Printf("Клиент %s не успевает читать, ответ отброшен", c.ID)
	}
}
