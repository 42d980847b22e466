package i18n

import (
	"testing"
	"time"

	"souq-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeBilingualResolution(t *testing.T) {
	product := models.Product{
		ID:       1,
		Name:     models.Bilingual{EN: "Olive Oil", AR: "زيت زيتون"},
		Price:    9.99,
		Stock:    5,
		SKU:      "OLIV-000001",
		IsActive: true,
	}

	t.Run("arabic", func(t *testing.T) {
		shaped, ok := Shape(product, LangAR).(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "زيت زيتون", shaped["name"])
		assert.Equal(t, 9.99, shaped["price"])
	})

	t.Run("english", func(t *testing.T) {
		shaped, ok := Shape(product, LangEN).(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Olive Oil", shaped["name"])
	})

	t.Run("bilingual mode passes through", func(t *testing.T) {
		shaped := Shape(product, "")
		original, ok := shaped.(models.Product)
		require.True(t, ok)
		assert.Equal(t, "Olive Oil", original.Name.EN)
		assert.Equal(t, "زيت زيتون", original.Name.AR)
	})
}

func TestShapeFallback(t *testing.T) {
	// Arabic variant missing: the populated English one is served.
	product := models.Product{Name: models.Bilingual{EN: "Honey"}}

	shaped, ok := Shape(product, LangAR).(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Honey", shaped["name"])
}

func TestShapeNested(t *testing.T) {
	order := models.Order{
		ID:          7,
		OrderNumber: "ORD-20260830-000042",
		Items: []models.OrderItem{
			{ProductID: 1, ProductName: models.Bilingual{EN: "Tea", AR: "شاي"}, Quantity: 2, Price: 3, Subtotal: 6},
		},
		TotalAmount: 6,
		Status:      models.StatusPending,
	}

	shaped, ok := Shape(order, LangAR).(map[string]interface{})
	require.True(t, ok)

	items, ok := shaped["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)

	item, ok := items[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "شاي", item["product_name"])
}

func TestShapeSkipsHiddenAndEmptyFields(t *testing.T) {
	user := models.User{ID: 3, Name: "Amina", Email: "amina@example.com", Password: "hash"}

	shaped, ok := Shape(user, LangEN).(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, shaped, "Password")
	assert.NotContains(t, shaped, "password")
	assert.Equal(t, "Amina", shaped["name"])
}

func TestShapePreservesTime(t *testing.T) {
	now := time.Now()
	category := models.Category{Name: models.Bilingual{EN: "Spices", AR: "بهارات"}, CreatedAt: now}

	shaped, ok := Shape(category, LangEN).(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, now, shaped["created_at"])
}

func TestShapeNilAndScalars(t *testing.T) {
	assert.Nil(t, Shape(nil, LangEN))
	assert.Equal(t, 42, Shape(42, LangEN))
	assert.Equal(t, "plain", Shape("plain", LangAR))
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "Order created successfully", Translate("order.created_success", LangEN))
	assert.Equal(t, "تم إنشاء الطلب بنجاح", Translate("order.created_success", LangAR))

	// Unknown keys fall back to English, then the key itself.
	assert.Equal(t, "no.such.key", Translate("no.such.key", LangAR))
}

func TestTranslateMessageBilingual(t *testing.T) {
	msg := TranslateMessage("order.created_success", "", true)
	both, ok := msg.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "Order created successfully", both[LangEN])
	assert.Equal(t, "تم إنشاء الطلب بنجاح", both[LangAR])
}
