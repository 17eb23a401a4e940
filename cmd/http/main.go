package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"psyeval-service/internal/app/config"
	"psyeval-service/internal/app/contracts"
	"psyeval-service/internal/app/delivery/http/middlewares"
	"psyeval-service/internal/app/delivery/http/routers"
	"psyeval-service/internal/app/drivers/database"
	"psyeval-service/internal/app/drivers/logger"
	"psyeval-service/internal/app/drivers/messaging"
	"psyeval-service/internal/app/drivers/storage"
	"psyeval-service/internal/app/services/backend/assessments"
	"psyeval-service/internal/app/services/backend/patients"
	"psyeval-service/internal/app/services/backend/questionnaires"
	"psyeval-service/internal/app/services/backend/transport"
	"psyeval-service/internal/app/services/core/catalog"
	"psyeval-service/internal/app/services/core/resume"
	"psyeval-service/internal/app/services/core/sessions"
	"psyeval-service/internal/app/services/core/submission"
	"psyeval-service/internal/app/services/core/workflow"
	"psyeval-service/internal/app/services/shared/archive"
	"psyeval-service/internal/app/services/shared/eventqueue"
	"psyeval-service/internal/app/services/shared/locker"
	sharedRedis "psyeval-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	workflowUsecase := bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	workflowUsecase.Shutdown()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) contracts.WorkflowUsecase {
	// Redis
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.ZapLogger)

	// RabbitMQ
	eventPublisher, err := eventqueue.NewService(bootstrap.RabbitMQ, bootstrap.ZapLogger)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to set up event queue: %v", err)
	}

	// Minio
	resultArchive := archive.NewResultArchiveService(
		bootstrap.Minio,
		bootstrap.DriverConfig.Minio.BucketName,
		bootstrap.ZapLogger,
	)

	// Backend clients
	pacedClient := transport.NewPacedClient(
		bootstrap.InternalConfig.Backend.RequestsPerSecond,
		bootstrap.InternalConfig.Backend.RequestBurst,
		bootstrap.InternalConfig.Backend.TimeoutInSecond,
	)
	assessmentBackendClient := assessments.NewAssessmentBackendClient(bootstrap.InternalConfig.Backend.BaseUrl, pacedClient)
	patientBackendClient := patients.NewPatientBackendClient(bootstrap.InternalConfig.Backend.BaseUrl, pacedClient)
	questionnaireBackendClient := questionnaires.NewQuestionnaireBackendClient(bootstrap.InternalConfig.Backend.BaseUrl, pacedClient)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, bootstrap.InternalConfig)

	// Catalog
	catalogUsecase := catalog.NewCatalogUsecase(
		questionnaireBackendClient,
		redisRepository,
		time.Duration(bootstrap.InternalConfig.Workflow.CatalogCacheTTLInSecond)*time.Second,
		bootstrap.ZapLogger,
	)

	// Workflow
	resolver := resume.NewResolver(assessmentBackendClient, patientBackendClient, bootstrap.ZapLogger)
	coordinator := submission.NewCoordinator(assessmentBackendClient, bootstrap.ZapLogger)
	workflowMongoRepository := workflow.NewWorkflowMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	workflowUsecase := workflow.NewWorkflowUsecase(
		assessmentBackendClient,
		catalogUsecase,
		lockerService,
		workflowMongoRepository,
		resultArchive,
		eventPublisher,
		resolver,
		coordinator,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
	)
	workflowController := workflow.NewWorkflowController(bootstrap.ZapLogger, workflowUsecase)

	// Session
	sessionUsecase := sessions.NewSessionUsecase(assessmentBackendClient, bootstrap.ZapLogger)
	sessionController := sessions.NewSessionController(bootstrap.ZapLogger, sessionUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, workflowController, sessionController)

	return workflowUsecase
}
