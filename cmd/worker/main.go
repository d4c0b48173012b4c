package main

import (
	"context"
	"log"
	"os"

	"github.com/Weslleykacau1/AvatarForge/internal/platform"
	"github.com/Weslleykacau1/AvatarForge/orchestrator"
	"github.com/Weslleykacau1/AvatarForge/tasks"
	"github.com/Weslleykacau1/AvatarForge/worker"
)

func main() {
	// Use the shared initializers
	db := platform.NewDBConnection()
	platform.AutoMigrate(db)
	rdb := platform.NewRedisClient()
	ctx := context.Background()

	orch, err := orchestrator.NewFromEnv(os.Getenv("VIDEO_MODEL"))
	if err != nil {
		log.Fatalf("Failed to build orchestrator: %v", err)
	}

	p := worker.NewProcessor(db, rdb, orch)
	p.Register(tasks.QueueSceneRender, p.HandleSceneRender)
	p.Register(tasks.QueueScriptRender, p.HandleScriptRender)

	log.Println("Worker started, waiting for queue tasks...")
	p.Listen(ctx, tasks.QueueSceneRender, tasks.QueueScriptRender)
}
