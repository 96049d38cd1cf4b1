package main

import (
	"fmt"
	"net/http"
	"os"

	"workshop/cmd"
	workshophttp "workshop/internal/adapters/in/http"
	"workshop/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	if err := postgres.MigrateDatabase(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		NoteNumberPrefix:   goDotEnvVariable("NOTE_NUMBER_PREFIX"),
		Surcharges:         goDotEnvVariable("SURCHARGES"),
		ThicknessThreshold: goDotEnvVariable("THICKNESS_THRESHOLD"),
		NoteLockAfterDays:  goDotEnvVariable("NOTE_LOCK_AFTER_DAYS"),
	}
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
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := workshophttp.NewServer(
		app.CreateCreateDeliveryNoteCommandHandler(),
		app.CreateAddLineItemCommandHandler(),
		app.CreateRemoveLineItemCommandHandler(),
		app.CreateUpdateItemPriceCommandHandler(),
		app.CreateValidateDeliveryNoteCommandHandler(),
		app.CreateFinalizeDeliveryNoteCommandHandler(),
		app.CreateReopenDeliveryNoteCommandHandler(),
		app.CreateCreatePricingProfileCommandHandler(),
		app.CreateUpdatePricingRatesCommandHandler(),
		app.CreateReplaceSpecialPricesCommandHandler(),
		app.CreateGetDeliveryNoteQueryHandler(),
		app.CreateGetUnfinalizedDeliveryNotesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
