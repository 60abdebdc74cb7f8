package queue

import (
	"encoding/json"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/config"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/logger"

	"github.com/hibiken/asynq"
)

// Client enqueues background tasks. The scheduling engine hands completed
// placements to it so notification fan-out never blocks a drag-drop.
type Client interface {
	Enqueue(taskType string, payload any) error
	Close() error
}

type asynqClient struct {
	client *asynq.Client
}

func NewClient(cfg config.RedisConfig) Client {
	return &asynqClient{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (c *asynqClient) Enqueue(taskType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	info, err := c.client.Enqueue(asynq.NewTask(taskType, data), asynq.MaxRetry(5))
	if err != nil {
		return err
	}
	logger.Debug("Queue:Enqueue", "type", taskType, "task_id", info.ID, "queue", info.Queue)
	return nil
}

func (c *asynqClient) Close() error {
	return c.client.Close()
}

// RunWorker starts the asynq server with the given handler mux. Blocks until
// the server stops.
func RunWorker(cfg config.RedisConfig, mux *asynq.ServeMux) error {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{Concurrency: 5},
	)
	return srv.Run(mux)
}
