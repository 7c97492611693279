package main

import (
	"fmt"
	"log"
	"os"

	"lassie-backend/config"
	"lassie-backend/controller"
	"lassie-backend/dao"
	"lassie-backend/logic"
	"lassie-backend/middleware"
	"lassie-backend/models"
	"lassie-backend/pkg"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Initialize config
	if len(os.Args) < 2 {
		log.Fatal("Usage: lassie-backend <config.yaml>")
	}
	configFile := os.Args[1]
	if err := config.LoadConfig(configFile); err != nil {
		log.Fatalf("Failed to load config from %s: %v", configFile, err)
	}

	// Initialize database
	db, err := gorm.Open(postgres.Open(config.GlobalConfig.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	db.AutoMigrate(
		&models.Conversation{},
		&models.Message{},
		&models.AssistantConfig{},
		&models.FileRecord{},
		&models.Brand{},
		&models.Campaign{},
		&models.Publisher{},
	)

	// Initialize external clients
	assistantClient := pkg.NewAssistantClient(config.GlobalConfig.OpenAI.APIKey, config.GlobalConfig.OpenAI.Model)
	storageClient := pkg.NewStorageClient(
		config.GlobalConfig.Supabase.URL,
		config.GlobalConfig.Supabase.ServiceKey,
		config.GlobalConfig.Supabase.Bucket,
	)

	// Initialize DAOs
	convoDAO := dao.NewConversationDAO(db)
	messageDAO := dao.NewMessageDAO(db)
	assistantDAO := dao.NewAssistantConfigDAO(db)
	fileDAO := dao.NewFileRecordDAO(db)
	brandDAO := dao.NewBrandDAO(db)
	campaignDAO := dao.NewCampaignDAO(db)
	publisherDAO := dao.NewPublisherDAO(db)

	// Initialize Logics
	assistantLogic := logic.NewAssistantLogic(assistantDAO, assistantClient)
	chatLogic := logic.NewChatLogic(convoDAO, messageDAO, fileDAO, assistantLogic, assistantClient, storageClient)
	convoLogic := logic.NewConversationLogic(convoDAO, messageDAO)
	fileLogic := logic.NewFileLogic(fileDAO, storageClient)
	brandLogic := logic.NewBrandLogic(brandDAO)
	campaignLogic := logic.NewCampaignLogic(campaignDAO, brandDAO)
	publisherLogic := logic.NewPublisherLogic(publisherDAO)

	// Initialize Controllers
	chatCtrl := controller.NewChatController(chatLogic)
	convoCtrl := controller.NewConversationController(convoLogic)
	fileCtrl := controller.NewFileController(fileLogic)
	brandCtrl := controller.NewBrandController(brandLogic)
	campaignCtrl := controller.NewCampaignController(campaignLogic)
	publisherCtrl := controller.NewPublisherController(publisherLogic)

	// Setup Gin router
	r := gin.Default()
	r.POST("/chat/stream", middleware.Auth, chatCtrl.Stream)
	r.GET("/conversations", middleware.Auth, convoCtrl.GetConversations)
	r.GET("/conversations/:id/messages", middleware.Auth, convoCtrl.GetMessages)
	r.POST("/files", middleware.Auth, fileCtrl.Upload)
	r.GET("/files", middleware.Auth, fileCtrl.GetFiles)
	r.POST("/brands", middleware.Auth, brandCtrl.CreateBrand)
	r.GET("/brands", middleware.Auth, brandCtrl.GetBrands)
	r.GET("/brands/:id", middleware.Auth, brandCtrl.GetBrand)
	r.PUT("/brands/:id", middleware.Auth, brandCtrl.UpdateBrand)
	r.DELETE("/brands/:id", middleware.Auth, brandCtrl.DeleteBrand)
	r.POST("/campaigns", middleware.Auth, campaignCtrl.CreateCampaign)
	r.GET("/campaigns", middleware.Auth, campaignCtrl.GetCampaigns)
	r.GET("/campaigns/:id", middleware.Auth, campaignCtrl.GetCampaign)
	r.PUT("/campaigns/:id", middleware.Auth, campaignCtrl.UpdateCampaign)
	r.DELETE("/campaigns/:id", middleware.Auth, campaignCtrl.DeleteCampaign)
	r.POST("/publishers", middleware.Auth, publisherCtrl.CreatePublisher)
	r.GET("/publishers", middleware.Auth, publisherCtrl.GetPublishers)
	r.GET("/publishers/:id", middleware.Auth, publisherCtrl.GetPublisher)
	r.PUT("/publishers/:id", middleware.Auth, publisherCtrl.UpdatePublisher)
	r.DELETE("/publishers/:id", middleware.Auth, publisherCtrl.DeletePublisher)

	// Run server
	if err := r.Run(fmt.Sprintf(":%d", config.GlobalConfig.Server.Port)); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
