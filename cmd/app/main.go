package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"fooddelivery/cmd"
	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/in/ws"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	startWebServer(&app, configs, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:         goDotEnvVariable("JWT_SECRET"),
		RazorpayKeyID:     goDotEnvVariable("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: goDotEnvVariable("RAZORPAY_KEY_SECRET"),
		TwilioAccountSID:  goDotEnvVariable("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   goDotEnvVariable("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber:  goDotEnvVariable("TWILIO_FROM_NUMBER"),
		SMSDefaultPrefix:  goDotEnvVariable("SMS_DEFAULT_PREFIX"),
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
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateInitiatePaymentCommandHandler(),
		app.CreateSettleOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateIssueDeliveryCodeCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateReportDriverLocationCommandHandler(),
		app.CreateHideOrderCommandHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
		app.CreateGetOwnerOrdersQueryHandler(),
		app.CreateGetLatestOrderQueryHandler(),
		app.CreateGetNearbyRestaurantsQueryHandler(),
	)

	auth := httpin.NewAuthMiddleware(configs.JWTSecret)
	server.RegisterRoutes(e, auth.Require())

	wsHandler := ws.NewHandler(app.Hub(), logger)
	e.GET("/ws/orders", echo.WrapHandler(wsHandler))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
