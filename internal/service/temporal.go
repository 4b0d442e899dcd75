package service

import (
	"context"
	"fmt"

	"github.com/cx-tal-miterani/flightselect/internal/models"
	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
)

// TemporalService resolves searches by running FlightSearchWorkflow on a worker
type TemporalService struct {
	temporalClient client.Client
	taskQueue      string
}

// NewTemporalService creates a TemporalService
func NewTemporalService(temporalClient client.Client, taskQueue string) *TemporalService {
	if taskQueue == "" {
		taskQueue = models.DefaultTaskQueue
	}
	return &TemporalService{
		temporalClient: temporalClient,
		taskQueue:      taskQueue,
	}
}

func (s *TemporalService) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error) {
	workflowOptions := client.StartWorkflowOptions{
		ID:        "flight-search-" + uuid.NewString(),
		TaskQueue: s.taskQueue,
	}

	run, err := s.temporalClient.ExecuteWorkflow(ctx, workflowOptions, models.WorkflowFlightSearch, req)
	if err != nil {
		return nil, fmt.Errorf("failed to start workflow: %w", err)
	}

	var result models.SearchResult
	if err := run.Get(ctx, &result); err != nil {
		return nil, fmt.Errorf("flight search workflow failed: %w", err)
	}
	return &result, nil
}
