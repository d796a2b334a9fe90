package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"meca-api/core/logger"

	"github.com/hibiken/asynq"
)

// Enqueuer is what producers depend on.
type Enqueuer interface {
	Enqueue(ctx context.Context, taskType string, payload any, opts ...asynq.Option) error
}

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

type Queue struct {
	client *asynq.Client
	server *asynq.Server
	mux    *asynq.ServeMux
}

func New(opt RedisOptions, concurrency int) *Queue {
	redisOpt := asynq.RedisClientOpt{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	}
	if concurrency <= 0 {
		concurrency = 5
	}
	return &Queue{
		client: asynq.NewClient(redisOpt),
		server: asynq.NewServer(redisOpt, asynq.Config{
			Concurrency: concurrency,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error("Queue:TaskFailed", "type", task.Type(), "error", err)
			}),
		}),
		mux: asynq.NewServeMux(),
	}
}

func (q *Queue) Enqueue(ctx context.Context, taskType string, payload any, opts ...asynq.Option) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}
	info, err := q.client.EnqueueContext(ctx, asynq.NewTask(taskType, raw), opts...)
	if err != nil {
		logger.Error("Queue:Enqueue", "type", taskType, "error", err)
		return err
	}
	logger.Debug("Queue:Enqueue", "type", taskType, "id", info.ID, "queue", info.Queue)
	return nil
}

func (q *Queue) Handle(taskType string, handler func(ctx context.Context, task *asynq.Task) error) {
	q.mux.HandleFunc(taskType, handler)
}

// Start runs the worker in the background.
func (q *Queue) Start() error {
	return q.server.Start(q.mux)
}

func (q *Queue) Shutdown() {
	q.server.Shutdown()
	if err := q.client.Close(); err != nil {
		logger.Error("Queue:Shutdown:CloseClient", "error", err)
	}
}
