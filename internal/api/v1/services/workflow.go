package services

import (
	"context"

	"transcript-control/internal/api/errors"
	"transcript-control/internal/app/workflow"
)

// WorkflowServiceImpl implements WorkflowService
type WorkflowServiceImpl struct {
	engine WorkflowEngine
}

// NewWorkflowService creates a new workflow service
func NewWorkflowService(engine WorkflowEngine) WorkflowService {
	return &WorkflowServiceImpl{engine: engine}
}

func (s *WorkflowServiceImpl) Start(ctx context.Context) error {
	if err := s.engine.Start(ctx); err != nil {
		return errors.NewServiceUnavailableError("Failed to start workflow")
	}
	return nil
}

func (s *WorkflowServiceImpl) Status(ctx context.Context) workflow.StatusReport {
	return s.engine.Status(ctx)
}
