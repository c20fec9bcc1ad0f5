package initialization

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lkuo/naf-backend/pkg/cache"
	"github.com/lkuo/naf-backend/pkg/database"
	"github.com/lkuo/naf-backend/pkg/encryption"
	store "github.com/lkuo/naf-backend/pkg/s3"
	"github.com/lkuo/naf-backend/pkg/utils"
)

// Init all need when server start
func Init() {
	database.InitMongoDB()
	if err := database.SetupIndexes(); err != nil {
		utils.Logger.Sugar().Fatalf("Failed to setup indexes: %v", err)
	}
	cache.InitRedis()
	encryption.InitSnowflake()
	utils.InitVariables()
	utils.InitValidator()
	store.ConnectS3()
	fmt.Println(lipgloss.NewStyle().Foreground(lipgloss.Color("#18FD7BFF")).Render("Successfully initialized all necessary services"))
}
