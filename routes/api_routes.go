// routes/api_routes.go
package routes

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Nikhil6906/Phonepe-transaction-insights/database"
	"github.com/Nikhil6906/Phonepe-transaction-insights/geo"
	"github.com/Nikhil6906/Phonepe-transaction-insights/middleware"
	"github.com/Nikhil6906/Phonepe-transaction-insights/websocket"
)

// SetupRoutes настраивает все маршруты API и WebSocket
func SetupRoutes(router *mux.Router, db *sql.DB, wsManager *websocket.Manager, fc *geo.FeatureCollection) {
	// Применяем CORS middleware
	router.Use(middleware.CORSMiddleware)

	queries := database.NewQueries(db)

	// WebSocket соединения: живое обновление данных дашборда
	router.HandleFunc("/ws/dashboard", wsManager.HandleConnections)

	// API сводки и фильтров
	router.HandleFunc("/api/summary", SummaryHandler(queries)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/filters", FiltersHandler(queries)).Methods("GET", "OPTIONS")

	// API платежей
	router.HandleFunc("/api/transactions/states", TransactionStatesHandler(queries)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/transactions/types", TransactionTypesHandler(queries)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/transactions/trend", TransactionTrendHandler(queries)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/transactions/top", TopTransactionsHandler(queries)).Methods("GET", "OPTIONS")

	// API пользователей
	router.HandleFunc("/api/users/brands", UserBrandsHandler(queries)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/users/engagement", UserEngagementHandler(queries)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/users/trend", UserTrendHandler(queries)).Methods("GET", "OPTIONS")

	// API страховок
	router.HandleFunc("/api/insurance/states", InsuranceStatesHandler(queries)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/insurance/trend", InsuranceTrendHandler(queries)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/insurance/top", TopInsuranceHandler(queries)).Methods("GET", "OPTIONS")

	// API прогнозов
	router.HandleFunc("/api/trends/forecast", ForecastHandler(db)).Methods("GET", "OPTIONS")

	// API графиков: готовые фигуры Plotly
	router.HandleFunc("/api/charts/trend", ChartTrendHandler(queries)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/charts/types", ChartTypesHandler(queries)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/charts/top-states", ChartTopStatesHandler(queries)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/charts/brands", ChartBrandsHandler(queries)).Methods("GET", "OPTIONS")

	// API карт: готовые фигуры Plotly
	router.HandleFunc("/api/map/transactions", MapTransactionsHandler(queries, fc)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/map/users", MapUsersHandler(queries, fc)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/map/insurance", MapInsuranceHandler(queries, fc)).Methods("GET", "OPTIONS")

	// Статические файлы
	router.PathPrefix("/").Handler(http.FileServer(http.Dir("public")))
}
