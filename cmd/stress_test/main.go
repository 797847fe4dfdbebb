// Command stress_test races many buyers for a single minted artwork.
// There is exactly one item, so exactly one Sell may succeed; every
// other attempt must fail the custody check. Run against a local Redis.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/lqhuy182/art-registry/internal/adapter/receiver"
	"github.com/lqhuy182/art-registry/internal/adapter/storage"
	"github.com/lqhuy182/art-registry/internal/core/domain"
	"github.com/lqhuy182/art-registry/internal/core/service"
)

const (
	redisAddr     = "localhost:6379"
	contentID     = domain.ItemID(42)
	totalBuyers   = 50
	queueSize     = 100
	artistAccount = domain.Account("artist")
	selfAccount   = domain.Account("registry")
)

func main() {
	ctx := context.Background()

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	defer rdb.Close()

	// Clear previous test data
	rdb.Del(ctx, fmt.Sprintf("owner:%d", contentID))

	redisAdapter := storage.NewRedisAdapter(rdb)
	artist, err := domain.NewArtist(artistAccount, selfAccount)
	if err != nil {
		log.Fatalf("failed to create artist registry: %v", err)
	}
	registry := service.NewRegistryService(artist, receiver.NewRegistry(), redisAdapter, queueSize)
	defer registry.Close()

	// Drain the event queue in background
	go func() {
		for range registry.Events() {
		}
	}()

	if _, err := registry.Mint(ctx, contentID, "stress test piece", artistAccount); err != nil {
		log.Fatalf("failed to mint: %v", err)
	}

	// Counters
	var successCount atomic.Int32
	var custodyFailCount atomic.Int32

	// Spawn concurrent buyers
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalBuyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			buyer := domain.Account("buyer-" + uuid.NewString())
			err := registry.Sell(ctx, contentID, buyer, artistAccount)
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, domain.ErrInvalidState):
				custodyFailCount.Add(1)
			default:
				log.Printf("unexpected failure: %v", err)
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start)

	owner, err := registry.OwnerOf(ctx, contentID)
	if err != nil {
		log.Fatalf("failed to read owner: %v", err)
	}
	mirror, hit, _ := registry.MirroredOwner(ctx, contentID)

	fmt.Printf("buyers: %d, elapsed: %v\n", totalBuyers, elapsed)
	fmt.Printf("successes: %d (want 1), custody failures: %d (want %d)\n",
		successCount.Load(), custodyFailCount.Load(), totalBuyers-1)
	fmt.Printf("final owner: %s, mirror hit: %v, mirror owner: %s\n", owner, hit, mirror)

	if successCount.Load() != 1 {
		log.Fatal("FAIL: more or fewer than one sale succeeded")
	}
	if hit && mirror != owner {
		log.Fatal("FAIL: owner mirror diverged from ledger")
	}
	fmt.Println("OK")
}
