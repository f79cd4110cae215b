package main

import (
	"net/http"

	"github.com/rs/cors"

	"skilllink/cmd/api/router"
	"skilllink/cmd/api/services"
	"skilllink/cmd/internal/logger"
	"skilllink/config"
	"skilllink/repositories"
)

// @title           SkillLink API
// @version         1.0
// @description     Skill-exchange bulletin board: offers to teach, requests to learn
// @BasePath        /
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	store := repositories.NewFileStore(cfg.Storage.DataDir)
	postRepo := repositories.NewPostRepository(store)
	userRepo := repositories.NewUserRepository(cfg.Storage.DataDir)

	postSvc := services.NewPostService(postRepo)
	authSvc := services.NewAuthService(userRepo)

	r := router.New(postSvc, authSvc)

	handler := cors.AllowAll().Handler(r)
	logger.Log.Infof("listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil && err != http.ErrServerClosed {
		logger.Log.Errorf("server stopped: %v", err)
	}
}
