// internal/common/camunda/worker.go
package camunda

import (
	"context"
	"fmt"
	"sync"
	"time"

	"marketplace-workers/internal/common/config"
	"marketplace-workers/internal/common/errors"
	"marketplace-workers/internal/common/logger"
	"marketplace-workers/internal/common/metrics"
	"marketplace-workers/internal/common/observability"

	"github.com/camunda/zeebe/clients/go/v8/pkg/commands"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// Job outcome labels recorded per handled job.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusError     = "error"
	StatusAbandoned = "abandoned"
	StatusPanicked  = "panicked"
)

// SendTimeout bounds a single complete/fail/throw round trip to the gateway.
const SendTimeout = 10 * time.Second

var completeRetryConfig = &RetryConfig{
	MaxRetries: 2,
	BaseDelay:  200 * time.Millisecond,
	MaxDelay:   time.Second,
}

// Runner opens job workers on a Zeebe client and instruments every handler call.
type Runner struct {
	client zbc.Client
	obs    *observability.Observability
	logger logger.Logger

	mu      sync.Mutex
	workers []worker.JobWorker
}

func NewRunner(client zbc.Client, obs *observability.Observability, log logger.Logger) *Runner {
	return &Runner{
		client: client,
		obs:    obs,
		logger: log,
	}
}

// Start opens a job worker for taskType. It returns false when the worker is disabled.
func (r *Runner) Start(taskType string, cfg config.WorkerConfig, handler worker.JobHandler) bool {
	if !cfg.Enabled {
		r.logger.Info("worker disabled", map[string]interface{}{"taskType": taskType})
		return false
	}

	jobWorker := r.client.NewJobWorker().
		JobType(taskType).
		Handler(r.Instrument(taskType, handler)).
		MaxJobsActive(cfg.MaxJobsActive).
		Timeout(cfg.TimeoutDuration()).
		Name(taskType).
		Open()

	r.mu.Lock()
	r.workers = append(r.workers, jobWorker)
	r.mu.Unlock()

	r.logger.Info("worker started", map[string]interface{}{
		"taskType":      taskType,
		"maxJobsActive": cfg.MaxJobsActive,
		"timeout_ms":    cfg.Timeout,
	})
	return true
}

// Count returns the number of open workers.
func (r *Runner) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workers)
}

// Stop closes every worker and waits for in-flight jobs to finish.
func (r *Runner) Stop() {
	r.mu.Lock()
	workers := r.workers
	r.workers = nil
	r.mu.Unlock()

	for _, w := range workers {
		w.Close()
	}
	for _, w := range workers {
		w.AwaitClose()
	}
	r.logger.Info("workers stopped", map[string]interface{}{"count": len(workers)})
}

// Instrument wraps handler with a job span, the active gauge and the outcome metrics.
func (r *Runner) Instrument(taskType string, handler worker.JobHandler) worker.JobHandler {
	return func(client worker.JobClient, job entities.Job) {
		active := metrics.WorkerJobsActive.WithLabelValues(taskType)
		active.Inc()
		defer active.Dec()

		tracked := &trackingClient{JobClient: client, status: StatusAbandoned}
		_, span := r.obs.StartJobSpan(context.Background(), taskType, job.Key, job.ProcessInstanceKey)
		start := time.Now()

		defer func() {
			if rec := recover(); rec != nil {
				tracked.status = StatusPanicked
				r.logger.Error("job handler panicked", map[string]interface{}{
					"taskType": taskType,
					"jobKey":   job.Key,
					"panic":    fmt.Sprint(rec),
				})
			}
			observability.EndJobSpan(span, tracked.status)
			r.record(taskType, tracked.status, time.Since(start))
		}()

		handler(tracked, job)
	}
}

func (r *Runner) record(taskType, status string, duration time.Duration) {
	metrics.WorkerJobDuration.WithLabelValues(taskType).Observe(duration.Seconds())
	if status == StatusCompleted {
		metrics.WorkerJobsCompleted.WithLabelValues(taskType).Inc()
	}

	ctx := context.Background()
	r.obs.RecordJobProcessed(ctx, taskType, status)
	r.obs.RecordJobDuration(ctx, taskType, duration, status)
}

// trackingClient remembers which terminal command the handler issued.
type trackingClient struct {
	worker.JobClient
	status string
}

func (c *trackingClient) NewCompleteJobCommand() commands.CompleteJobCommandStep1 {
	c.status = StatusCompleted
	return c.JobClient.NewCompleteJobCommand()
}

func (c *trackingClient) NewFailJobCommand() commands.FailJobCommandStep1 {
	c.status = StatusFailed
	return c.JobClient.NewFailJobCommand()
}

func (c *trackingClient) NewThrowErrorCommand() commands.ThrowErrorCommandStep1 {
	c.status = StatusError
	return c.JobClient.NewThrowErrorCommand()
}

// CompleteJob completes job with output as its variables, retrying transient gateway errors.
func CompleteJob(client worker.JobClient, job entities.Job, output interface{}) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		return fmt.Errorf("create complete job command: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), SendTimeout)
	defer cancel()

	return Retry(ctx, completeRetryConfig, "complete job", func(ctx context.Context) error {
		_, err := cmd.Send(ctx)
		return err
	})
}

// FailJob counts the failure under its error code and reports it through handler.
func FailJob(client worker.JobClient, job entities.Job, taskType string, err error, handler *errors.ErrorHandler) {
	stdErr := errors.Normalize(err)
	metrics.WorkerJobsFailed.WithLabelValues(taskType, string(stdErr.Code)).Inc()

	ctx, cancel := context.WithTimeout(context.Background(), SendTimeout)
	defer cancel()

	handler.HandleJobError(ctx, client, job, stdErr)
}
