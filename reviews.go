package freeconnect

import (
	"context"
	"fmt"
	"time"
)

// Review is feedback left by one user about another on a project.
type Review struct {
	ID           uint      `json:"review_id"`
	Rating       float64   `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	ReviewedBy   uint      `json:"reviewed_by"`
	ReviewedeeID uint      `json:"reviewedee_id"`
	ProjectID    uint      `json:"project_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ReviewInput carries the fields submitted with a review.
type ReviewInput struct {
	Rating       float64 `json:"rating"`
	Comment      string  `json:"comment,omitempty"`
	ReviewedBy   uint    `json:"reviewed_by"`
	ReviewedeeID uint    `json:"reviewedee_id"`
	ProjectID    uint    `json:"project_id"`
}

// ReviewsService wraps the /reviews endpoints.
type ReviewsService struct {
	client *Client
}

func (s *ReviewsService) Create(ctx context.Context, input ReviewInput) (*Review, error) {
	var out struct {
		Review *Review `json:"review"`
	}
	if err := s.client.post(ctx, "/reviews", input, &out); err != nil {
		return nil, err
	}
	return out.Review, nil
}

func (s *ReviewsService) Get(ctx context.Context, id uint) (*Review, error) {
	var out struct {
		Review *Review `json:"review"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/reviews/%d", id), &out); err != nil {
		return nil, err
	}
	return out.Review, nil
}

func (s *ReviewsService) ListByProject(ctx context.Context, projectID uint) ([]Review, error) {
	var out struct {
		Reviews []Review `json:"reviews"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/projects/%d/reviews", projectID), &out); err != nil {
		return nil, err
	}
	return out.Reviews, nil
}

func (s *ReviewsService) Update(ctx context.Context, id uint, input ReviewInput) (*Review, error) {
	var out struct {
		Review *Review `json:"review"`
	}
	if err := s.client.put(ctx, fmt.Sprintf("/reviews/%d", id), input, &out); err != nil {
		return nil, err
	}
	return out.Review, nil
}

func (s *ReviewsService) Delete(ctx context.Context, id uint) error {
	return s.client.delete(ctx, fmt.Sprintf("/reviews/%d", id))
}
