package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/becom/pointage-backend-go/internal/config"
	appHTTP "github.com/becom/pointage-backend-go/internal/handler/http"
	"github.com/becom/pointage-backend-go/internal/pkg/archive"
	"github.com/becom/pointage-backend-go/internal/pkg/cron"
	"github.com/becom/pointage-backend-go/internal/pkg/database"
	"github.com/becom/pointage-backend-go/internal/pkg/jwt"
	"github.com/becom/pointage-backend-go/internal/pkg/report"
	"github.com/becom/pointage-backend-go/internal/pkg/storage"
	"github.com/becom/pointage-backend-go/internal/repository/postgresql"
	employeeService "github.com/becom/pointage-backend-go/internal/service/employee"
	exportService "github.com/becom/pointage-backend-go/internal/service/export"
	recordService "github.com/becom/pointage-backend-go/internal/service/record"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Export.BasePath, cfg.Export.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize export storage:", err)
	}

	var renderer report.Renderer
	switch cfg.Export.Format {
	case "pdf":
		renderer = report.NewPDFRenderer()
	case "xlsx":
		renderer = report.NewXLSXRenderer()
	default:
		log.Fatal("Unsupported export format: ", cfg.Export.Format)
	}

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	recordSvc := recordService.NewRecordService(recordRepo, employeeRepo)
	exportSvc := exportService.NewExportService(
		recordRepo,
		employeeRepo,
		renderer,
		archive.NewZipBundler(),
		fileStorage,
	)

	if password := os.Getenv("ADMIN_SEED_PASSWORD"); password != "" {
		login, created, err := employeeSvc.SeedAdmin(context.Background(), password)
		if err != nil {
			log.Fatal("Failed to seed admin account:", err)
		}
		if created {
			fmt.Println("Seeded admin account:", login)
		}
	}

	recordHandler := appHTTP.NewRecordHandler(recordSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	exportHandler := appHTTP.NewExportHandler(exportSvc, fileStorage)

	router := appHTTP.NewRouter(
		JWTService,
		recordHandler,
		employeeHandler,
		exportHandler,
	)

	if cfg.Scheduler.Enabled {
		scheduler := cron.NewScheduler()
		cron.NewExportJobs(exportSvc).RegisterJobs(scheduler)
		scheduler.Start(context.Background())
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := server.Shutdown(context.Background()); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
