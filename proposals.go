package freeconnect

import (
	"context"
	"fmt"
	"time"
)

// Proposal is a freelancer's bid on a project.
type Proposal struct {
	ID                uint      `json:"proposal_id"`
	ProposalText      string    `json:"proposal_text"`
	EstimatedDuration int       `json:"estimated_duration"`
	BidAmount         float64   `json:"bid_amount"`
	SubmissionDate    time.Time `json:"submission_date"`
	Status            string    `json:"status"`
	ProjectID         uint      `json:"project_id"`
	Project           *Project  `json:"project,omitempty"`
	FreelancerID      uint      `json:"freelancer_id"`
	Freelancer        *User     `json:"freelancer,omitempty"`
}

// ProposalInput carries the fields a freelancer submits with a bid.
type ProposalInput struct {
	ProposalText      string  `json:"proposal_text"`
	EstimatedDuration int     `json:"estimated_duration"`
	BidAmount         float64 `json:"bid_amount"`
	ProjectID         uint    `json:"project_id"`
	FreelancerID      uint    `json:"freelancer_id"`
}

// ProposalsService wraps the /proposals endpoints.
type ProposalsService struct {
	client *Client
}

func (s *ProposalsService) Create(ctx context.Context, input ProposalInput) (*Proposal, error) {
	var out struct {
		Proposal *Proposal `json:"proposal"`
	}
	if err := s.client.post(ctx, "/proposals", input, &out); err != nil {
		return nil, err
	}
	return out.Proposal, nil
}

func (s *ProposalsService) ListByProject(ctx context.Context, projectID uint) ([]Proposal, error) {
	var out struct {
		Proposals []Proposal `json:"proposals"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/projects/%d/proposals", projectID), &out); err != nil {
		return nil, err
	}
	return out.Proposals, nil
}
