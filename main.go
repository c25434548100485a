// main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/gorilla/mux"

	"github.com/Nikhil6906/Phonepe-transaction-insights/database"
	"github.com/Nikhil6906/Phonepe-transaction-insights/geo"
	"github.com/Nikhil6906/Phonepe-transaction-insights/routes"
	"github.com/Nikhil6906/Phonepe-transaction-insights/websocket"
)

func main() {
	addr := flag.String("addr", ":8080", "адрес HTTP-сервера")
	geoPath := flag.String("geo", "Indian_States.geojson", "путь к файлу геометрии штатов")
	flag.Parse()

	fmt.Println("Запуск сервера дашборда...")

	// Инициализация базы данных
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("❌ Не удалось подключиться к базе данных: %v", err)
	}
	defer db.Close()

	// Загружаем геометрию штатов для хороплетов
	fc, err := geo.Load(*geoPath)
	if err != nil {
		log.Fatalf("❌ Не удалось загрузить геометрию штатов: %v", err)
	}
	log.Printf("✅ Геометрия загружена: %d штатов", len(fc.Features))

	// Создаем менеджер WebSocket для живых обновлений
	wsManager := websocket.NewManager(database.NewQueries(db))
	go wsManager.Run()

	// Создаем маршрутизатор и регистрируем обработчики
	router := mux.NewRouter()
	routes.SetupRoutes(router, db, wsManager, fc)

	// Настраиваем сервер
	server := &http.Server{
		Addr:         *addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Запускаем сервер в отдельной горутине
	go func() {
		log.Printf("✅ Сервер запущен на http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Ошибка запуска сервера: %v", err)
		}
	}()

	// Канал для сигналов завершения
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Ожидаем сигнал завершения
	<-stop
	log.Println("⚠️ Получен сигнал завершения, закрываем соединения...")

	// Даем активным запросам время завершиться
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Ошибка остановки сервера: %v", err)
	}

	// Закрываем соединение с базой данных
	if err := db.Close(); err != nil {
		log.Printf("❌ Ошибка закрытия соединения с БД: %v", err)
	} else {
		log.Println("✅ Соединение с БД закрыто")
	}

	log.Println("👋 Сервер остановлен")
}
