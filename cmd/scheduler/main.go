package main

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/Weslleykacau1/AvatarForge/internal/platform"
	"github.com/Weslleykacau1/AvatarForge/models"
	"github.com/Weslleykacau1/AvatarForge/tasks"
)

// staleAfter is how long a job may sit in a processing status before the
// scheduler assumes its worker died. Longer than the poller's maximum
// wait, so a healthy slow render is never requeued.
const staleAfter = 15 * time.Minute

func main() {
	// Use the shared initializers
	db := platform.NewDBConnection()
	rdb := platform.NewRedisClient()
	ctx := context.Background()

	// Create a new cron scheduler
	c := cron.New()

	_, err := c.AddFunc("@every 1m", func() {
		requeueStaleJobs(ctx, db, rdb)
	})
	if err != nil {
		log.Fatalf("Error scheduling stale-job sweep: %v", err)
	}

	c.Start()
	defer c.Stop()

	log.Println("Scheduler started, sweeping for stale jobs...")
	// Keep the main thread alive
	select {}
}

// requeueStaleJobs finds jobs stuck in a non-terminal status and puts them
// back on their queue. Pending jobs are requeued as-is; jobs that died
// mid-pipeline restart from the beginning. Every stage is safe to rerun,
// the remote video job is simply resubmitted.
func requeueStaleJobs(ctx context.Context, db *gorm.DB, rdb *redis.Client) {
	cutoff := time.Now().Add(-staleAfter)

	var stale []models.SceneJob
	err := db.Where("status IN ? AND updated_at < ?", []string{
		models.JobStatusPending,
		models.JobStatusProcessingNarrative,
		models.JobStatusProcessingVideo,
		models.JobStatusPolling,
		models.JobStatusFetching,
	}, cutoff).Find(&stale).Error
	if err != nil {
		log.Printf("Error querying stale jobs: %v", err)
		return
	}

	for _, job := range stale {
		queue := tasks.QueueSceneRender
		if job.Kind == "script" {
			queue = tasks.QueueScriptRender
		}

		payload, err := tasks.Marshal(tasks.RenderTaskPayload{JobID: job.PublicID})
		if err != nil {
			log.Printf("Error marshalling requeue task for job %s: %v", job.PublicID, err)
			continue
		}

		if err := rdb.LPush(ctx, queue, payload).Err(); err != nil {
			log.Printf("Error requeueing job %s: %v", job.PublicID, err)
			continue
		}

		db.Model(&job).Update("status", models.JobStatusPending)
		log.Printf("Requeued stale job %s (was stuck since %s)", job.PublicID, job.UpdatedAt.Format(time.RFC3339))
	}
}
