// websocket/manager.go
package websocket

import (
	"log"

	"github.com/Nikhil6906/Phonepe-transaction-insights/database"
)

// NewManager создает новый менеджер WebSocket-соединений
func NewManager(queries *database.Queries) *Manager {
	return &Manager{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Clients:    make(map[string]*Client),
		queries:    queries,
	}
}

// Run запускает работу менеджера
func (manager *Manager) Run() {
	for {
		select {
		case client := <-manager.Register:
			manager.Clients[client.ID] = client
			log.Printf("Клиент %s подключился", client.ID)

		case client := <-manager.Unregister:
			if _, ok := manager.Clients[client.ID]; ok {
				delete(manager.Clients, client.ID)
				close(client.Send)
				log.Printf("Клиент %s отключился", client.ID)
			}
		}
	}
}

// resolve выполняет запрос клиента к слою данных
func (manager *Manager) resolve(req QueryRequest) QueryResponse {
	resp := QueryResponse{
		Dataset: req.Dataset,
		Year:    req.Year,
		Quarter: req.Quarter,
		State:   req.State,
	}

	// Наборы, привязанные к периоду, требуют корректного квартала
	switch req.Dataset {
	case "transactions/states", "transactions/types", "users/brands",
		"users/engagement", "insurance/states":
		if req.Quarter < 1 || req.Quarter > 4 {
			resp.Error = "Неверный номер квартала"
			return resp
		}
	}

	var data interface{}
	var err error

	switch req.Dataset {
	case "summary":
		data, err = manager.queries.GetSummary()
	case "transactions/states":
		data, err = manager.queries.GetTransactionStateTotals(req.Year, req.Quarter)
	case "transactions/types":
		data, err = manager.queries.GetTransactionTypeSplit(req.Year, req.Quarter)
	case "transactions/trend":
		data, err = manager.queries.GetTransactionTrend(req.State)
	case "users/brands":
		data, err = manager.queries.GetBrandShares(req.Year, req.Quarter, 10)
	case "users/engagement":
		data, err = manager.queries.GetUserEngagement(req.Year, req.Quarter, 10)
	case "users/trend":
		data, err = manager.queries.GetUserTrend(req.State)
	case "insurance/states":
		data, err = manager.queries.GetInsuranceStateTotals(req.Year, req.Quarter)
	case "insurance/trend":
		data, err = manager.queries.GetInsuranceTrend(req.State)
	default:
		resp.Error = "Неизвестный набор данных"
		return resp
	}

	if err != nil {
		log.Printf("Ошибка при обновлении данных для клиента: %v", err)
		resp.Error = "Ошибка при получении данных"
		return resp
	}

	resp.Data = data
	return resp
}
