package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"

	"canteen-backend/internal/config"
	"canteen-backend/internal/database"
	"canteen-backend/internal/handlers"
	"canteen-backend/internal/middleware"
	"canteen-backend/internal/notify"
)

func main() {
	cfg := config.Load()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(cfg.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Println("order index warning:", err)
	}
	if err := database.EnsureCouponIndexes(db); err != nil {
		log.Println("coupon index warning:", err)
	}
	if err := database.EnsureItemIndexes(db); err != nil {
		log.Println("item index warning:", err)
	}

	if err := database.SeedAdmin(db, cfg.AdminPass); err != nil {
		log.Println("admin seed warning:", err)
	}
	if err := database.SeedCoupons(db); err != nil {
		log.Println("coupon seed warning:", err)
	}
	if err := database.CleanUpItems(db); err != nil {
		log.Println("item cleanup warning:", err)
	}

	notifier := notify.NewDispatcher(cfg.TelegramBotToken, cfg.TelegramChatID)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(), gin.Recovery())
	r.Use(cors.Default())
	r.Use(static.Serve("/", static.LocalFile("./public", false)))

	api := r.Group("/api")

	api.GET("/menu", handlers.GetMenu(db))
	api.POST("/verify-coupon", handlers.VerifyCoupon(db))
	api.POST("/order", handlers.CreateOrder(db, notifier))
	api.GET("/orders", handlers.GetOrders(db))
	api.POST("/update-status", handlers.UpdateOrderStatus(db))
	api.POST("/delete-order", handlers.DeleteOrder(db))
	api.POST("/clear-all", handlers.ClearOrders(db))
	api.GET("/status", handlers.GetShopStatus(db))
	api.POST("/toggle-shop", handlers.ToggleShop(db))

	api.POST("/admin/login", handlers.AdminLogin(db, cfg))

	admin := api.Group("/admin")
	if cfg.RequireAdminToken {
		admin.Use(middleware.AdminAuth(cfg.JWTSecret))
	}
	admin.POST("/add-item", handlers.AddItem(db))
	admin.POST("/delete-item", handlers.DeleteItem(db))
	admin.POST("/update-stock", handlers.UpdateItemAvailability(db))
	admin.GET("/revenue", handlers.GetRevenue(db))
	admin.POST("/announce", handlers.Announce(db))

	log.Println("Server ready on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
