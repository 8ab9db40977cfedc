package routes

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	_ "kanalsepet/docs" // This will be auto-generated
	"kanalsepet/internal/adapter/http/handlers"
	repository2 "kanalsepet/internal/adapter/persistence/repository"
	"kanalsepet/internal/domain/entities"
	"kanalsepet/internal/infrastructure/bridge"
	"kanalsepet/internal/infrastructure/database"
	"kanalsepet/internal/infrastructure/notify"
	"kanalsepet/internal/infrastructure/realtime"
	"kanalsepet/internal/platform/logger"
	"kanalsepet/internal/usecase"
	"kanalsepet/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	appLog, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()

	hub := realtime.NewHub(appLog)
	center := notify.NewCenter(hub, appLog)

	setMiddlewares(center, appLog)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(hub, center, appLog)

	err = router.Run(":" + serverPort())
	if err != nil {
		appLog.Fatal("Failed to startup the application", "error", err)
	}
}

// serverPort honors the PORT env key, falling back to the default.
func serverPort() string {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		return v
	}
	return strconv.Itoa(PORT)
}

func getRoutes(hub *realtime.Hub, center *notify.Center, appLog *logger.Logger) {
	ctx := context.Background()

	store, err := buildItemStore(ctx, appLog)
	if err != nil {
		appLog.Fatal("Failed to configure item store", "error", err)
	}

	// One-way migration out of the legacy blob. Best effort: the order sheet
	// must come up even when the old data is unreadable.
	legacy := repository2.NewLegacyFileStore(appLog)
	repository2.MigrateLegacy(ctx, legacy, store, appLog)

	orderUseCase := usecase.NewOrderUseCase(store, center, appLog)
	if err := orderUseCase.Load(ctx); err != nil {
		appLog.Warn("Order sheet loaded empty", "error", err)
	}

	stateBridge := bridge.New(hub, appLog)
	flowUseCase := usecase.NewCartFlowUseCase(orderUseCase, stateBridge, center, appLog)

	wireEvents(hub, orderUseCase, flowUseCase)

	orderHandler := handlers.NewOrderHandler(orderUseCase, flowUseCase)
	surfaceHandler := handlers.NewSurfaceHandler(hub, stateBridge, appLog)
	notificationHandler := handlers.NewNotificationHandler(hub, center)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler)
	addSurfaceRoutes(v1, surfaceHandler, notificationHandler)
}

// wireEvents pushes aggregate changes out to attached UI clients so badge
// counts and flow affordances stay live without polling.
func wireEvents(hub *realtime.Hub, orders *usecase.OrderUseCase, flow *usecase.CartFlowUseCase) {
	orders.OnChange(func(sheet entities.OrderSheet) {
		sum := sheet.Summary()
		hub.Broadcast(realtime.Message{
			Channel: realtime.ChannelUI,
			Event:   realtime.EventCartUpdated,
			Data: gin.H{
				"item_count":     sum.ItemCount,
				"total_quantity": sum.TotalQuantity,
				"badge_text":     sheet.BadgeText(),
			},
		})
	})
	flow.OnPhase(func(phase usecase.FlowPhase) {
		hub.Broadcast(realtime.Message{
			Channel: realtime.ChannelUI,
			Event:   realtime.EventFlowState,
			Data:    gin.H{"phase": string(phase)},
		})
	})
}

func buildItemStore(ctx context.Context, appLog *logger.Logger) (interfaces.IItemStore, error) {
	switch backend := os.Getenv("STORE_BACKEND"); backend {
	case "dynamodb":
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		return repository2.NewDynamoItemStore(ddb), nil
	case "", "sqlite":
		return repository2.NewSQLiteItemStore(appLog), nil
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}
}

func setMiddlewares(center *notify.Center, appLog *logger.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		appLog.Error("Recovered from panic", "panic", recovered)
		center.Error("Beklenmeyen bir hata oluştu", fmt.Sprintf("%v", recovered))
		c.AbortWithStatus(500)
	}))
}
