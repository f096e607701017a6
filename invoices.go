package freeconnect

import (
	"context"
	"fmt"
	"time"
)

// Invoice is a bill issued against a project.
type Invoice struct {
	ID            uint      `json:"invoice_id"`
	InvoiceNumber string    `json:"invoice_number"`
	Date          time.Time `json:"date"`
	AmountDue     float64   `json:"amount_due"`
	PaymentStatus string    `json:"payment_status"`
	DueDate       time.Time `json:"due_date"`
	ProjectID     uint      `json:"project_id"`
	ClientID      uint      `json:"client_id"`
}

// InvoiceInput carries the fields submitted when creating or editing an
// invoice.
type InvoiceInput struct {
	InvoiceNumber string    `json:"invoice_number"`
	AmountDue     float64   `json:"amount_due"`
	PaymentStatus string    `json:"payment_status,omitempty"`
	DueDate       time.Time `json:"due_date"`
	ProjectID     uint      `json:"project_id"`
	ClientID      uint      `json:"client_id"`
}

// InvoicesService wraps the /invoices endpoints.
type InvoicesService struct {
	client *Client
}

func (s *InvoicesService) Create(ctx context.Context, input InvoiceInput) (*Invoice, error) {
	var out struct {
		Invoice *Invoice `json:"invoice"`
	}
	if err := s.client.post(ctx, "/invoices", input, &out); err != nil {
		return nil, err
	}
	return out.Invoice, nil
}

func (s *InvoicesService) Get(ctx context.Context, id uint) (*Invoice, error) {
	var out struct {
		Invoice *Invoice `json:"invoice"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/invoices/%d", id), &out); err != nil {
		return nil, err
	}
	return out.Invoice, nil
}

func (s *InvoicesService) ListByProject(ctx context.Context, projectID uint) ([]Invoice, error) {
	var out struct {
		Invoices []Invoice `json:"invoices"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/projects/%d/invoices", projectID), &out); err != nil {
		return nil, err
	}
	return out.Invoices, nil
}

func (s *InvoicesService) Update(ctx context.Context, id uint, input InvoiceInput) (*Invoice, error) {
	var out struct {
		Invoice *Invoice `json:"invoice"`
	}
	if err := s.client.put(ctx, fmt.Sprintf("/invoices/%d", id), input, &out); err != nil {
		return nil, err
	}
	return out.Invoice, nil
}

func (s *InvoicesService) Delete(ctx context.Context, id uint) error {
	return s.client.delete(ctx, fmt.Sprintf("/invoices/%d", id))
}
