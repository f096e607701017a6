package freeconnect

import (
	"context"
	"fmt"
)

// UserInput carries the editable profile fields.
type UserInput struct {
	Name        string  `json:"name,omitempty"`
	Email       string  `json:"email,omitempty"`
	Bio         string  `json:"bio,omitempty"`
	CompanyName string  `json:"company_name,omitempty"`
	HourlyRate  float64 `json:"hourly_rate,omitempty"`
}

// UsersService wraps the /users endpoints.
type UsersService struct {
	client *Client
}

func (s *UsersService) Get(ctx context.Context, id uint) (*User, error) {
	var out struct {
		User *User `json:"user"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/users/%d", id), &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (s *UsersService) Update(ctx context.Context, id uint, input UserInput) (*User, error) {
	var out struct {
		User *User `json:"user"`
	}
	if err := s.client.put(ctx, fmt.Sprintf("/users/%d", id), input, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (s *UsersService) Delete(ctx context.Context, id uint) error {
	return s.client.delete(ctx, fmt.Sprintf("/users/%d", id))
}
