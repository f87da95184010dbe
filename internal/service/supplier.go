package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/planora/planora-go/internal/model"
	"github.com/planora/planora-go/internal/repository"
)

// SupplierStore is the supplier persistence surface the service needs.
type SupplierStore interface {
	Create(ctx context.Context, supplier *model.Supplier) error
	GetByID(ctx context.Context, id string) (*model.Supplier, error)
	ListByUser(ctx context.Context, userID string) ([]model.Supplier, error)
	Update(ctx context.Context, supplier *model.Supplier) error
	Delete(ctx context.Context, id string) error
}

// SupplierService handles vendor contacts. Suppliers are owned directly by
// the user rather than through an event.
type SupplierService struct {
	suppliers SupplierStore
	policy    OwnershipPolicy
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(suppliers SupplierStore, policy OwnershipPolicy) *SupplierService {
	return &SupplierService{suppliers: suppliers, policy: policy}
}

// Create stores a new supplier for the caller.
func (s *SupplierService) Create(ctx context.Context, userID string, req model.CreateSupplierRequest) (*model.Supplier, error) {
	supplier := &model.Supplier{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     req.Name,
		Category: req.Category,
		Contact:  req.Contact,
		Phone:    req.Phone,
		Email:    req.Email,
		Website:  req.Website,
		Address:  req.Address,
		Notes:    req.Notes,
	}
	if err := s.suppliers.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Get returns one supplier after an ownership check.
func (s *SupplierService) Get(ctx context.Context, userID, supplierID string) (*model.Supplier, error) {
	return s.authorize(ctx, userID, supplierID)
}

// List returns the caller's suppliers sorted by name.
func (s *SupplierService) List(ctx context.Context, userID string) ([]model.Supplier, error) {
	suppliers, err := s.suppliers.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if suppliers == nil {
		suppliers = []model.Supplier{}
	}
	return suppliers, nil
}

// Update applies the non-nil fields of req to an owned supplier.
func (s *SupplierService) Update(ctx context.Context, userID, supplierID string, req model.UpdateSupplierRequest) (*model.Supplier, error) {
	supplier, err := s.authorize(ctx, userID, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Category != nil {
		supplier.Category = *req.Category
	}
	if req.Contact != nil {
		supplier.Contact = *req.Contact
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Website != nil {
		supplier.Website = *req.Website
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.Notes != nil {
		supplier.Notes = *req.Notes
	}

	if err := s.suppliers.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete removes an owned supplier.
func (s *SupplierService) Delete(ctx context.Context, userID, supplierID string) error {
	if _, err := s.authorize(ctx, userID, supplierID); err != nil {
		return err
	}
	err := s.suppliers.Delete(ctx, supplierID)
	if errors.Is(err, repository.ErrSupplierNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *SupplierService) authorize(ctx context.Context, userID, supplierID string) (*model.Supplier, error) {
	supplier, err := s.suppliers.GetByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if supplier.UserID != userID {
		return nil, s.policy.Denied()
	}
	return supplier, nil
}
