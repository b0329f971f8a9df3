package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	dynamorepo "github.com/ogurasousui/onboarding-grpc-clean-arch/internal/adapters/repository/dynamo"
	pgrepo "github.com/ogurasousui/onboarding-grpc-clean-arch/internal/adapters/repository/postgres"
	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/collection"
	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/platform/config"
	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/platform/db/dynamo"
	pg "github.com/ogurasousui/onboarding-grpc-clean-arch/internal/platform/db/postgres"
	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer dbPool.Close()

	dynamoClient, err := dynamo.NewClient(ctx, cfg.DocumentStore)
	if err != nil {
		log.Fatalf("failed to initialize document store client: %v", err)
	}

	stateRepo := pgrepo.NewStateRepository(dbPool)
	profileRepo := pgrepo.NewProfileRepository(dbPool)
	documentStore := dynamorepo.NewDocumentStore(dynamoClient, cfg.DocumentStore.Table)

	collectionSvc := collection.NewService(stateRepo, profileRepo, documentStore, nil)
	grpcServer := server.New(cfg.Server.ListenAddr, collectionSvc)

	log.Printf("gRPC server listening on %s", cfg.Server.ListenAddr)

	if err := grpcServer.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
