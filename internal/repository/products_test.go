//go:build !integration

package repository

import (
	"testing"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductDocument_RoundTrip(t *testing.T) {
	product := model.Product{
		ID:          "chocolate-cake",
		Name:        "Chocolate Cake",
		Description: "Rich dark chocolate cake with ganache",
		Image:       "/images/chocolate-cake.png",
		Price:       400,
		Offer:       300,
		Weights: []model.WeightOption{
			{Weight: "1/4 KG", Price: 120},
			{Weight: "1 KG", Price: 400},
		},
	}

	doc := documentFromModel(product, 3)

	assert.Equal(t, "chocolate-cake", doc.ProductID)
	assert.Equal(t, 3, doc.Position)
	assert.False(t, doc.CreatedAt.IsZero())
	require.Len(t, doc.Weights, 2)
	assert.Equal(t, "1/4 KG", doc.Weights[0].Weight)
	assert.Equal(t, 120.0, doc.Weights[0].Price)

	assert.Equal(t, product, doc.ToModel())
}

func TestProductDocument_ToModel_NoWeights(t *testing.T) {
	doc := documentFromModel(model.Product{
		ID:    "fruit-tart",
		Name:  "Fruit Tart",
		Price: 250,
		Offer: 200,
	}, 0)

	got := doc.ToModel()

	assert.Equal(t, "fruit-tart", got.ID)
	assert.Equal(t, 250.0, got.Price)
	assert.Empty(t, got.Weights)
}
