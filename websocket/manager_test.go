package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Неизвестный набор данных отклоняется без обращения к базе
func TestResolveUnknownDataset(t *testing.T) {
	manager := NewManager(nil)

	resp := manager.resolve(QueryRequest{Dataset: "nonexistent", Year: 2022, Quarter: 1})
	assert.Equal(t, "Неизвестный набор данных", resp.Error)
	assert.Nil(t, resp.Data)
}

// Неверный квартал отклоняется для периодных наборов
func TestResolveInvalidQuarter(t *testing.T) {
	manager := NewManager(nil)

	resp := manager.resolve(QueryRequest{Dataset: "transactions/states", Year: 2022, Quarter: 7})
	assert.Equal(t, "Неверный номер квартала", resp.Error)

	resp = manager.resolve(QueryRequest{Dataset: "users/brands", Year: 2022, Quarter: 0})
	assert.Equal(t, "Неверный номер квартала", resp.Error)
}

// Регистрация и отключение клиентов проходят через цикл менеджера.
// Каналы Register/Unregister небуферизованы, поэтому цикл обрабатывает
// события строго по порядку; закрытие Send подтверждает, что отключение
// завершилось, и после него карту клиентов можно читать без гонки.
func TestManagerRegisterUnregister(t *testing.T) {
	manager := NewManager(nil)
	go manager.Run()

	client := &Client{
		ID:      "test-client",
		Send:    make(chan []byte, 1),
		manager: manager,
	}

	manager.Register <- client
	manager.Unregister <- client

	// Канал отправки закрывается при отключении
	select {
	case _, open := <-client.Send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("канал отправки не был закрыт при отключении")
	}

	assert.Empty(t, manager.Clients)
}
