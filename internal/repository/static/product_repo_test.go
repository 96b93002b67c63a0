package static

import (
	"context"
	"testing"

	"clockstore-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalog(t *testing.T) {
	repo, err := NewProductRepository()
	require.NoError(t, err)

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 20)
	assert.Equal(t, "w001", products[0].ID)

	p, err := repo.GetByID(context.Background(), "w004")
	require.NoError(t, err)
	assert.Equal(t, "Classic Gold", p.Name)
	assert.Equal(t, domain.CategoryClassico, p.Category)
	assert.Equal(t, 1199.0, p.Price)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, err := NewProductRepository()
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestList_ReturnsCopy(t *testing.T) {
	repo, err := NewProductRepository()
	require.NoError(t, err)

	first, _ := repo.List(context.Background())
	first[0].Name = "changed"

	second, _ := repo.List(context.Background())
	assert.Equal(t, "Apex Steel", second[0].Name)
}

func TestNewProductRepositoryFromJSON_Rejects(t *testing.T) {
	cases := map[string]string{
		"malformed":        `[{"id":`,
		"missing id":       `[{"name":"x","category":"masculino","price":1}]`,
		"duplicate id":     `[{"id":"a","category":"masculino","price":1},{"id":"a","category":"feminino","price":2}]`,
		"unknown category": `[{"id":"a","category":"infantil","price":1}]`,
		"negative price":   `[{"id":"a","category":"masculino","price":-1}]`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewProductRepositoryFromJSON([]byte(data))
			assert.Error(t, err)
		})
	}
}
