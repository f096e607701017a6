package freeconnect

import (
	"context"
	"fmt"
	"time"
)

// Skill is a marketable capability freelancers attach to their profile.
type Skill struct {
	ID          uint      `json:"skill_id"`
	Name        string    `json:"name"`
	Level       string    `json:"level,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SkillInput carries the fields submitted when creating or editing a skill.
type SkillInput struct {
	Name        string `json:"name"`
	Level       string `json:"level,omitempty"`
	Description string `json:"description,omitempty"`
}

// SkillsService wraps the /skills endpoints.
type SkillsService struct {
	client *Client
}

func (s *SkillsService) List(ctx context.Context) ([]Skill, error) {
	var out struct {
		Skills []Skill `json:"skills"`
	}
	if err := s.client.get(ctx, "/skills", &out); err != nil {
		return nil, err
	}
	return out.Skills, nil
}

func (s *SkillsService) Get(ctx context.Context, id uint) (*Skill, error) {
	var out struct {
		Skill *Skill `json:"skill"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/skills/%d", id), &out); err != nil {
		return nil, err
	}
	return out.Skill, nil
}

func (s *SkillsService) Create(ctx context.Context, input SkillInput) (*Skill, error) {
	var out struct {
		Skill *Skill `json:"skill"`
	}
	if err := s.client.post(ctx, "/skills", input, &out); err != nil {
		return nil, err
	}
	return out.Skill, nil
}

func (s *SkillsService) Update(ctx context.Context, id uint, input SkillInput) (*Skill, error) {
	var out struct {
		Skill *Skill `json:"skill"`
	}
	if err := s.client.put(ctx, fmt.Sprintf("/skills/%d", id), input, &out); err != nil {
		return nil, err
	}
	return out.Skill, nil
}

func (s *SkillsService) Delete(ctx context.Context, id uint) error {
	return s.client.delete(ctx, fmt.Sprintf("/skills/%d", id))
}
