package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"storefront-service/auth"
	"storefront-service/booking"
	"storefront-service/catalog"
	"storefront-service/checkout"
	"storefront-service/clients"
	"storefront-service/config"
	"storefront-service/handlers"
	"storefront-service/loyalty"
	"storefront-service/rabbitmq"
	"storefront-service/storage"
)

func main() {
	cfg := config.LoadConfig()

	log.Printf("Starting Storefront Service on port %s", cfg.Port)

	// Set Gin mode
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	shippingRate, err := decimal.NewFromString(cfg.ShippingFlatRate)
	if err != nil {
		log.Fatalf("Invalid SHIPPING_FLAT_RATE %q: %v", cfg.ShippingFlatRate, err)
	}

	// Catalog: seeded by default, replaced by the remote catalog
	// backend when one is configured.
	cat := catalog.NewSeeded()
	if cfg.CatalogServiceURL != "" {
		catalogClient := clients.NewCatalogClient(cfg.CatalogServiceURL)
		products, err := catalogClient.ListProducts()
		if err != nil {
			log.Printf("Failed to fetch remote catalog, keeping seeded products: %v", err)
		} else {
			cat = catalog.New()
			for _, p := range products {
				cat.Put(p)
			}
			log.Printf("Loaded %d products from %s", len(products), cfg.CatalogServiceURL)
		}
	}

	// Order history lives in a single JSON blob on disk.
	store := storage.NewFileStore(cfg.DataFile)

	// Fulfillment publisher is optional; without a broker the order
	// store remains the source of truth.
	var publisher checkout.EventPublisher
	if cfg.RabbitMQURL != "" {
		channelPool, err := rabbitmq.NewChannelPool(cfg.RabbitMQURL, cfg.RabbitMQQueue, cfg.ChannelPoolSize)
		if err != nil {
			log.Fatalf("Failed to create RabbitMQ channel pool: %v", err)
		}
		defer channelPool.Close()
		publisher = rabbitmq.NewPublisher(channelPool, cfg.RabbitMQQueue)
	}

	ledger := loyalty.NewLedger()
	materializer := checkout.NewMaterializer(store, shippingRate, publisher, ledger)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(cat)
	cartHandler := handlers.NewCartHandler(cat)
	checkoutHandler := handlers.NewCheckoutHandler(cartHandler, materializer)
	orderHandler := handlers.NewOrderHandler(store)
	adminHandler := handlers.NewAdminHandler(auth.NewSeededDirectory())
	bookingHandler := handlers.NewBookingHandler(booking.NewSeededBook())

	// Setup router
	router := gin.Default()

	// Routes
	router.GET("/products", productHandler.ListProducts)
	router.GET("/products/:productId", productHandler.GetProduct)

	router.POST("/carts", cartHandler.CreateCart)
	router.GET("/carts/:cartId", cartHandler.GetCartContents)
	router.POST("/carts/:cartId/items", cartHandler.AddItem)
	router.PUT("/carts/:cartId/items/:productId", cartHandler.UpdateQuantity)
	router.DELETE("/carts/:cartId/items/:productId", cartHandler.RemoveItem)
	router.POST("/carts/:cartId/checkout", checkoutHandler.Checkout)

	router.GET("/orders", orderHandler.ListOrders)
	router.GET("/orders/:orderId", orderHandler.GetOrder)
	router.GET("/confirmation", orderHandler.Confirmation)

	router.POST("/admin/login", adminHandler.Login)

	router.GET("/services", bookingHandler.ListServices)
	router.POST("/appointments", bookingHandler.CreateAppointment)
	router.GET("/appointments", bookingHandler.ListAppointments)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	log.Fatal(router.Run(":" + cfg.Port))
}
