package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Arjun-1431/bharttapp-addproduct/internal/models"
)

type OrderRepo struct {
	db *DB
}

func NewOrderRepo(db *DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) Create(ctx context.Context, ord models.Order) (string, error) {
	res, err := r.db.orders.InsertOne(ctx, ord)
	if err != nil {
		return "", errors.Wrap(err, "insert order")
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("insert order: unexpected id type")
	}
	return oid.Hex(), nil
}

func (r *OrderRepo) GetAll(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.db.orders.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find orders")
	}
	defer cur.Close(ctx)

	out := []models.Order{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "decode orders")
	}
	return out, nil
}
