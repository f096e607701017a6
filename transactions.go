package freeconnect

import (
	"context"
	"fmt"
	"time"
)

// Transaction is a payment between a client and a freelancer for a project.
type Transaction struct {
	ID            uint      `json:"transaction_id"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	ClientID      uint      `json:"client_id"`
	FreelancerID  uint      `json:"freelancer_id"`
	ProjectID     uint      `json:"project_id"`
}

// TransactionInput carries the fields submitted when recording a payment.
type TransactionInput struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status,omitempty"`
	ClientID      uint    `json:"client_id"`
	FreelancerID  uint    `json:"freelancer_id"`
	ProjectID     uint    `json:"project_id"`
}

// TransactionsService wraps the /transactions endpoints.
type TransactionsService struct {
	client *Client
}

func (s *TransactionsService) List(ctx context.Context) ([]Transaction, error) {
	var out struct {
		Transactions []Transaction `json:"transactions"`
	}
	if err := s.client.get(ctx, "/transactions", &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

func (s *TransactionsService) Get(ctx context.Context, id uint) (*Transaction, error) {
	var out struct {
		Transaction *Transaction `json:"transaction"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/transactions/%d", id), &out); err != nil {
		return nil, err
	}
	return out.Transaction, nil
}

func (s *TransactionsService) Create(ctx context.Context, input TransactionInput) (*Transaction, error) {
	var out struct {
		Transaction *Transaction `json:"transaction"`
	}
	if err := s.client.post(ctx, "/transactions", input, &out); err != nil {
		return nil, err
	}
	return out.Transaction, nil
}
