package repository

import (
	"context"

	"github.com/Arjun-1431/bharttapp-addproduct/internal/models"
	"github.com/Arjun-1431/bharttapp-addproduct/internal/repository/mongodb"
)

type OrderStore interface {
	Create(ctx context.Context, ord models.Order) (string, error)
	GetAll(ctx context.Context) ([]models.Order, error)
}

type Repository struct {
	OrderStore
}

func NewRepository(db *mongodb.DB) *Repository {
	return &Repository{
		OrderStore: mongodb.NewOrderRepo(db),
	}
}
