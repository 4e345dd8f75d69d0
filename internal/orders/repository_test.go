package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/themosthappypiano/thewoofingoven/internal/catalog"
	"github.com/themosthappypiano/thewoofingoven/pkg/db/models"
	pkgerrors "github.com/themosthappypiano/thewoofingoven/pkg/errors"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, catalog.AutoMigrate(db))
	return db
}

func TestCreateAndFindOrder(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupOrdersTestDB(t))
	ctx := context.Background()

	phone := "0851234567"
	order := &models.Order{
		CustomerName:  "Sadie's Human",
		CustomerEmail: "sadie@example.com",
		CustomerPhone: &phone,
		TotalAmount:   "53.50",
		Status:        models.OrderStatusPending,
		DeliveryType:  models.DeliveryTypeDelivery,
		ShippingAddress: map[string]any{
			"address":    "12 Main Street",
			"city":       "Dublin",
			"postalCode": "D06 W2P4",
		},
		Items: []models.OrderItem{
			{ProductVariantID: 3, Quantity: 1, Price: "45.00", Customization: map[string]any{"message": "Happy Barkday Sadie"}},
			{ProductVariantID: 9, Quantity: 2, Price: "4.25"},
		},
	}

	require.NoError(t, repo.Create(ctx, order))
	require.NotZero(t, order.ID)

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)

	assert.Equal(t, "sadie@example.com", found.CustomerEmail)
	assert.Equal(t, "53.50", found.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, found.Status)
	require.Len(t, found.Items, 2)
	assert.Equal(t, int64(3), found.Items[0].ProductVariantID)
	assert.Equal(t, "4.25", found.Items[1].Price)
}

func TestFindOrderNotFound(t *testing.T) {
	t.Parallel()

	repo := NewRepository(setupOrdersTestDB(t))

	_, err := repo.FindByID(context.Background(), 9000)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	assert.Equal(t, "Order not found", typed.Message())
}
