package freeconnect

import (
	"context"
	"fmt"
	"time"
)

// Task is a unit of work inside a project.
type Task struct {
	ID          uint      `json:"task_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	Budget      float64   `json:"budget"`
	Status      string    `json:"status"`
	ProjectID   uint      `json:"project_id"`
}

// TaskInput carries the fields submitted when creating or editing a task.
type TaskInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	Budget      float64   `json:"budget,omitempty"`
	Status      string    `json:"status,omitempty"`
}

// TasksService wraps the task endpoints, which nest under projects.
type TasksService struct {
	client *Client
}

func (s *TasksService) List(ctx context.Context, projectID uint) ([]Task, error) {
	var out struct {
		Tasks []Task `json:"tasks"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/projects/%d/tasks", projectID), &out); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

func (s *TasksService) Get(ctx context.Context, projectID, taskID uint) (*Task, error) {
	var out struct {
		Task *Task `json:"task"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/projects/%d/tasks/%d", projectID, taskID), &out); err != nil {
		return nil, err
	}
	return out.Task, nil
}

func (s *TasksService) Create(ctx context.Context, projectID uint, input TaskInput) (*Task, error) {
	var out struct {
		Task *Task `json:"task"`
	}
	if err := s.client.post(ctx, fmt.Sprintf("/projects/%d/tasks", projectID), input, &out); err != nil {
		return nil, err
	}
	return out.Task, nil
}

func (s *TasksService) Update(ctx context.Context, projectID, taskID uint, input TaskInput) (*Task, error) {
	var out struct {
		Task *Task `json:"task"`
	}
	if err := s.client.put(ctx, fmt.Sprintf("/projects/%d/tasks/%d", projectID, taskID), input, &out); err != nil {
		return nil, err
	}
	return out.Task, nil
}

func (s *TasksService) Delete(ctx context.Context, projectID, taskID uint) error {
	return s.client.delete(ctx, fmt.Sprintf("/projects/%d/tasks/%d", projectID, taskID))
}
