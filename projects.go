package freeconnect

import (
	"context"
	"fmt"
	"time"
)

// Project is a client's posted engagement, optionally awarded to a
// freelancer.
type Project struct {
	ID           uint      `json:"project_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Budget       float64   `json:"budget"`
	Duration     int       `json:"duration"` // in days
	Status       string    `json:"status"`
	CreationDate time.Time `json:"creation_date"`
	ClientID     uint      `json:"client_id"`
	Client       *User     `json:"client,omitempty"`
	FreelancerID *uint     `json:"freelancer_id,omitempty"`
	Freelancer   *User     `json:"freelancer,omitempty"`
	Tasks        []Task    `json:"tasks,omitempty"`
}

// ProjectInput carries the fields a client submits when posting or editing
// a project.
type ProjectInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
	Duration    int     `json:"duration"`
	Status      string  `json:"status,omitempty"`
	ClientID    uint    `json:"client_id,omitempty"`
}

// ProjectsService wraps the /projects endpoints.
type ProjectsService struct {
	client *Client
}

func (s *ProjectsService) List(ctx context.Context) ([]Project, error) {
	var out struct {
		Projects []Project `json:"projects"`
	}
	if err := s.client.get(ctx, "/projects", &out); err != nil {
		return nil, err
	}
	return out.Projects, nil
}

func (s *ProjectsService) Get(ctx context.Context, id uint) (*Project, error) {
	var out struct {
		Project *Project `json:"project"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/projects/%d", id), &out); err != nil {
		return nil, err
	}
	return out.Project, nil
}

func (s *ProjectsService) Create(ctx context.Context, input ProjectInput) (*Project, error) {
	var out struct {
		Project *Project `json:"project"`
	}
	if err := s.client.post(ctx, "/projects", input, &out); err != nil {
		return nil, err
	}
	return out.Project, nil
}

func (s *ProjectsService) Update(ctx context.Context, id uint, input ProjectInput) (*Project, error) {
	var out struct {
		Project *Project `json:"project"`
	}
	if err := s.client.put(ctx, fmt.Sprintf("/projects/%d", id), input, &out); err != nil {
		return nil, err
	}
	return out.Project, nil
}
