package main

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gigpay/gigpay/pkg/configpkg"
	"github.com/gigpay/gigpay/pkg/dbpkg"
	_ "github.com/lib/pq"

	"github.com/gigpay/gigpay/internal/contractdelivery"
	"github.com/gigpay/gigpay/internal/contractrepo"
	"github.com/gigpay/gigpay/internal/contractservice"
	"github.com/gigpay/gigpay/internal/jobdelivery"
	"github.com/gigpay/gigpay/internal/jobrepo"
	"github.com/gigpay/gigpay/internal/jobservice"
	"github.com/gigpay/gigpay/internal/middleware"
	"github.com/gigpay/gigpay/internal/profilerepo"
	"github.com/gigpay/gigpay/internal/reportdelivery"
	"github.com/gigpay/gigpay/internal/reportrepo"
	"github.com/gigpay/gigpay/internal/reportservice"
	"github.com/gigpay/gigpay/internal/settlementdelivery"
	"github.com/gigpay/gigpay/internal/settlementrepo"
	"github.com/gigpay/gigpay/internal/settlementservice"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	conn, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}

	if err := dbpkg.Migrate(conn, config.MigrationsPath); err != nil {
		logger.Fatal().Err(err).Msg("cannot apply migrations")
	}

	server, err := createServer(conn, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	err = server.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}

func createServer(conn *sql.DB, logger zerolog.Logger) (*gin.Engine, error) {
	profileRepo := profilerepo.NewRepoPGS(conn)
	contractRepo := contractrepo.NewRepoPGS(conn)
	jobRepo := jobrepo.NewRepoPGS(conn)
	reportRepo := reportrepo.NewRepoPGS(conn)
	settlementStore := settlementrepo.NewStorePGS(conn)

	contractService := contractservice.New(contractRepo)
	jobService := jobservice.New(jobRepo)
	reportService := reportservice.New(reportRepo)
	settlementService := settlementservice.New(settlementStore)

	contractHandler := contractdelivery.NewHandler(contractService)
	jobHandler := jobdelivery.NewHandler(jobService)
	reportHandler := reportdelivery.NewHandler(reportService)
	settlementHandler := settlementdelivery.NewHandler(settlementService)

	gin.SetMode(gin.ReleaseMode)
	server := gin.New()

	server.Use(middleware.RequestLogger(logger))
	server.Use(gin.Recovery())

	authRoutes := server.Group("/").Use(middleware.ProfileAuth(profileRepo))

	authRoutes.GET("/contracts", contractHandler.List)
	authRoutes.GET("/contracts/:id", contractHandler.Get)

	authRoutes.GET("/jobs/unpaid", jobHandler.ListUnpaid)

	authRoutes.POST("/jobs/:jobId/pay", settlementHandler.PayJob)
	authRoutes.POST("/balances/deposit/:userId", settlementHandler.Deposit)
	authRoutes.GET("/balances/outstanding", reportHandler.Outstanding)

	authRoutes.GET("/admin/best-profession", reportHandler.BestProfessions)
	authRoutes.GET("/admin/best-clients", reportHandler.BestClients)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("money", settlementdelivery.ValidMoneyAmount)
		if err != nil {
			return nil, errors.New("cannot register money validator")
		}
	}

	return server, nil
}
