package freeconnect

import (
	"context"
	"fmt"
)

// AdminService wraps the /admin endpoints. The backend enforces the admin
// role server-side; the Guard keeps well-behaved clients from even asking.
type AdminService struct {
	client *Client
}

// ListUsers returns every registered user.
func (s *AdminService) ListUsers(ctx context.Context) ([]User, error) {
	var out struct {
		Users []User `json:"users"`
	}
	if err := s.client.get(ctx, "/admin/users", &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// ApproveUser approves a pending account. The backend records approval by
// promoting the user's role to freelancer.
func (s *AdminService) ApproveUser(ctx context.Context, id uint) error {
	return s.client.put(ctx, fmt.Sprintf("/admin/users/%d/approve", id), struct{}{}, nil)
}
