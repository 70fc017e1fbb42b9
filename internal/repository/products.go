// Package repository provides data access for the product catalog.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

// WeightOptionDocument represents a single weight tier price point.
type WeightOptionDocument struct {
	Weight string  `bson:"weight" json:"weight"`
	Price  float64 `bson:"price" json:"price"`
}

// ProductDocument represents a catalog product document.
type ProductDocument struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	ProductID   string                 `bson:"product_id" json:"product_id"`
	Name        string                 `bson:"name" json:"name"`
	Description string                 `bson:"description,omitempty" json:"description,omitempty"`
	Image       string                 `bson:"image,omitempty" json:"image,omitempty"`
	Price       float64                `bson:"price" json:"price"`
	Offer       float64                `bson:"offer,omitempty" json:"offer,omitempty"`
	Weights     []WeightOptionDocument `bson:"weights,omitempty" json:"weights,omitempty"`
	Position    int                    `bson:"position" json:"position"`
	CreatedAt   time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time              `bson:"updated_at" json:"updated_at"`
}

// ToModel converts the document to a domain product.
func (d *ProductDocument) ToModel() model.Product {
	weights := make([]model.WeightOption, len(d.Weights))
	for i, w := range d.Weights {
		weights[i] = model.WeightOption{
			Weight: w.Weight,
			Price:  w.Price,
		}
	}
	return model.Product{
		ID:          d.ProductID,
		Name:        d.Name,
		Description: d.Description,
		Image:       d.Image,
		Price:       d.Price,
		Offer:       d.Offer,
		Weights:     weights,
	}
}

// documentFromModel converts a domain product into a document, preserving the
// list position so catalog ordering survives round trips through Mongo.
func documentFromModel(p model.Product, position int) *ProductDocument {
	weights := make([]WeightOptionDocument, len(p.Weights))
	for i, w := range p.Weights {
		weights[i] = WeightOptionDocument{
			Weight: w.Weight,
			Price:  w.Price,
		}
	}
	now := time.Now()
	return &ProductDocument{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		Price:       p.Price,
		Offer:       p.Offer,
		Weights:     weights,
		Position:    position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ProductsRepository provides methods for catalog product operations.
type ProductsRepository struct {
	collection *mongo.Collection
}

// NewProductsRepository creates a new products repository.
func NewProductsRepository(db *MongoDB) *ProductsRepository {
	return &ProductsRepository{
		collection: db.Products,
	}
}

// All returns every catalog product in stable position order.
func (r *ProductsRepository) All(ctx context.Context) ([]model.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "product_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []ProductDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	products := make([]model.Product, len(docs))
	for i := range docs {
		products[i] = docs[i].ToModel()
	}
	return products, nil
}

// GetByID returns a single product by its catalog identifier.
// Returns (nil, nil) when no product with that identifier exists.
func (r *ProductsRepository) GetByID(ctx context.Context, productID string) (*model.Product, error) {
	var doc ProductDocument
	err := r.collection.FindOne(ctx, bson.M{"product_id": productID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p := doc.ToModel()
	return &p, nil
}

// Count returns the number of products in the catalog.
func (r *ProductsRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Seed upserts the given products, keyed by product identifier. Existing
// documents are replaced so seed data stays authoritative across restarts.
func (r *ProductsRepository) Seed(ctx context.Context, products []model.Product) error {
	for i, p := range products {
		doc := documentFromModel(p, i)
		filter := bson.M{"product_id": p.ID}
		update := bson.M{
			"$set": bson.M{
				"name":        doc.Name,
				"description": doc.Description,
				"image":       doc.Image,
				"price":       doc.Price,
				"offer":       doc.Offer,
				"weights":     doc.Weights,
				"position":    doc.Position,
				"updated_at":  time.Now(),
			},
			"$setOnInsert": bson.M{
				"product_id": doc.ProductID,
				"created_at": doc.CreatedAt,
			},
		}
		_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		if err != nil {
			return err
		}
	}
	return nil
}
