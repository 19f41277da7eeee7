package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"wastetrack/cmd"
	httpadapter "wastetrack/internal/adapters/in/http"
	"wastetrack/internal/adapters/out/postgres/accountrepo"
	"wastetrack/internal/adapters/out/postgres/assignmentrepo"
	"wastetrack/internal/adapters/out/postgres/issuerepo"
	"wastetrack/internal/adapters/out/postgres/routerepo"
	"wastetrack/internal/adapters/out/postgres/trackingrepo"
	"wastetrack/internal/adapters/out/postgres/truckrepo"
	"wastetrack/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)
	mustValidateOpenAPISpec()

	app := cmd.NewCompositionRoot(configs, gormDB)
	server := app.CreateHTTPServer(configs)

	jobManager := jobs.NewJobManager(gormDB, slog.Default())
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(server, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
	}

	ttl, err := time.ParseDuration(goDotEnvVariable("TOKEN_TTL"))
	if err != nil {
		log.Fatalf("Invalid TOKEN_TTL: %v", err)
	}
	config.TokenTTL = ttl

	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&accountrepo.UserDTO{},
		&accountrepo.OrganizationDTO{},
		&accountrepo.MembershipDTO{},
		&truckrepo.TruckDTO{},
		&routerepo.RouteDTO{},
		&routerepo.WaypointDTO{},
		&assignmentrepo.AssignmentDTO{},
		&trackingrepo.CurrentLocationDTO{},
		&trackingrepo.HistoryRecordDTO{},
		&trackingrepo.CitizenLocationDTO{},
		&issuerepo.IssueDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func mustValidateOpenAPISpec() {
	if _, err := httpadapter.LoadOpenAPISpec(context.Background()); err != nil {
		log.Fatalf("Invalid OpenAPI contract: %v", err)
	}
}

func startWebServer(server *httpadapter.Server, port string) {
	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
