package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"

	"github.com/lqhuy182/art-registry/internal/adapter/handler"
	"github.com/lqhuy182/art-registry/internal/adapter/handler/pb"
	"github.com/lqhuy182/art-registry/internal/adapter/receiver"
	"github.com/lqhuy182/art-registry/internal/adapter/storage"
	"github.com/lqhuy182/art-registry/internal/config"
	"github.com/lqhuy182/art-registry/internal/core/domain"
	"github.com/lqhuy182/art-registry/internal/core/service"
	"github.com/lqhuy182/art-registry/internal/port"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize MySQL
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("failed to connect mysql: %v", err)
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}
	log.Println("connected to mysql")

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		PoolSize: 100,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	log.Println("connected to redis")

	// Initialize adapters
	redisAdapter := storage.NewRedisAdapter(rdb)
	mysqlAdapter := storage.NewMySQLAdapter(db)
	receivers := receiver.NewRegistry()

	// Initialize the artist registry and service
	artist, err := domain.NewArtist(domain.Account(cfg.ArtistAccount), domain.Account(cfg.RegistryAccount))
	if err != nil {
		log.Fatalf("failed to create artist registry: %v", err)
	}
	registry := service.NewRegistryService(artist, receivers, redisAdapter, cfg.EventQueueSize)
	log.Printf("artist registry ready: artist=%s registry=%s", cfg.ArtistAccount, cfg.RegistryAccount)

	// Start audit workers
	var wg sync.WaitGroup
	for i := 0; i < cfg.WorkerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			auditLoop(id, registry.Events(), mysqlAdapter)
		}(i)
	}
	log.Printf("started %d audit workers", cfg.WorkerCount)

	// Initialize gRPC server
	grpcServer := grpc.NewServer()
	grpcHandler := handler.NewGRPCHandler(registry)
	pb.RegisterArtistServiceServer(grpcServer, grpcHandler)

	// Start gRPC server
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", cfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(registry)
	mux := http.NewServeMux()
	httpHandler.RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	// Stop HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")

	// Stop gRPC server
	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")

	// Close the event queue and wait for audit workers to drain it
	registry.Close()
	wg.Wait()
	log.Println("audit workers stopped")

	// Close connections
	rdb.Close()
	db.Close()
	log.Println("connections closed")
}

// auditLoop drains notifications into the audit store. The trail is an
// external observer of the ledger: a failed insert is logged and
// dropped, never unwound into ledger state.
func auditLoop(id int, events <-chan domain.Event, sink port.EventRepository) {
	for event := range events {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		if err := sink.RecordEvent(ctx, event); err != nil {
			log.Printf("audit worker %d: failed to record %s event for item %d: %v", id, event.Kind, event.ItemID, err)
		}

		cancel()
	}
}
