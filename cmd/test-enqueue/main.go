package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/redshift-games/tyrian-world/pkg/options"
	"github.com/redshift-games/tyrian-world/pkg/queue"
)

func main() {
	// Connect to Redis
	redisOpts, err := redis.ParseURL("redis://localhost:6379")
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}
	client := redis.NewClient(redisOpts)
	defer client.Close()

	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis successfully!")

	// A default request with a fixed seed
	defaultReq := &queue.Request{
		RequestID:  uuid.New().String(),
		Type:       queue.RequestTypeGenerate,
		WorldID:    uuid.New(),
		Seed:       "GENCORE",
		EnqueuedAt: time.Now(),
	}

	data, err := json.Marshal(defaultReq)
	if err != nil {
		log.Fatal("Failed to marshal request:", err)
	}

	if err := client.RPush(ctx, "generation-requests", data).Err(); err != nil {
		log.Fatal("Failed to enqueue request:", err)
	}

	fmt.Printf("✅ Enqueued generation request: %s (world %s)\n", defaultReq.RequestID, defaultReq.WorldID)

	// A Tyrian 2000 request with all five episodes as goals
	t2k := true
	money := 10000
	goal := options.Choice{Name: "goal", IsName: true}
	t2kReq := &queue.Request{
		RequestID: uuid.New().String(),
		Type:      queue.RequestTypeGenerate,
		WorldID:   uuid.New(),
		Options: &options.Raw{
			EnableTyrian2000Support: &t2k,
			Episode1:                &goal,
			Episode2:                &goal,
			Episode3:                &goal,
			Episode4:                &goal,
			Episode5:                &goal,
			StartingMoney:           &money,
		},
		EnqueuedAt: time.Now(),
	}

	data, err = json.Marshal(t2kReq)
	if err != nil {
		log.Fatal("Failed to marshal request:", err)
	}

	if err := client.RPush(ctx, "generation-requests", data).Err(); err != nil {
		log.Fatal("Failed to enqueue request:", err)
	}

	fmt.Printf("✅ Enqueued generation request: %s (world %s)\n", t2kReq.RequestID, t2kReq.WorldID)

	// Check queue depth
	depth, err := client.LLen(ctx, "generation-requests").Result()
	if err != nil {
		log.Fatal("Failed to get queue depth:", err)
	}

	fmt.Printf("\n📊 Queue depth: %d requests\n", depth)
	fmt.Println("\n💡 Now start the worker to see it process these requests!")
	fmt.Println("   Run: go run cmd/worker/main.go")
}
