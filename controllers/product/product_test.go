package productcontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jbook26/inventory-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", GetProducts(db))
	r.POST("/products", CreateProduct(db))
	r.PUT("/products", UpdateProduct(db))
	r.DELETE("/products/:id", DeleteProduct(db))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProductStoresCents(t *testing.T) {
	db := testDB(t)
	r := newRouter(db)

	w := doJSON(r, http.MethodPost, "/products", `{"name": "  Notebook ", "price": 199.00, "stock": 12}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Notebook", created.Name)
	assert.Equal(t, int64(19900), created.PriceCents)
	assert.Equal(t, 12, created.Stock)
	assert.NotZero(t, created.ID)

	// Round-trip back to major units for display.
	assert.Equal(t, "199.00", fmt.Sprintf("%.2f", float64(created.PriceCents)/100))
}

func TestCreateProductValidation(t *testing.T) {
	db := testDB(t)
	r := newRouter(db)

	for name, body := range map[string]string{
		"empty name":     `{"name": "   ", "price": 1, "stock": 1}`,
		"negative price": `{"name": "X", "price": -1, "stock": 1}`,
		"negative stock": `{"name": "X", "price": 1, "stock": -1}`,
		"bad payload":    `{"name": 5}`,
	} {
		w := doJSON(r, http.MethodPost, "/products", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
}

func TestGetProductsActiveOnly(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&models.Product{Name: "In stock", PriceCents: 100, Stock: 5}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Sold out", PriceCents: 100, Stock: 0}).Error)
	require.NoError(t, db.Create(&models.Product{
		Name: "Retired", PriceCents: 100, Stock: 7,
		DeletedAt: gorm.DeletedAt{Time: time.Now(), Valid: true},
	}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Also in stock", PriceCents: 100, Stock: 2}).Error)
	r := newRouter(db)

	w := doJSON(r, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 2)
	// Ordered by id ascending.
	assert.Equal(t, "In stock", products[0].Name)
	assert.Equal(t, "Also in stock", products[1].Name)
}

func TestUpdateProduct(t *testing.T) {
	db := testDB(t)
	p := models.Product{Name: "Old", PriceCents: 500, Stock: 3}
	require.NoError(t, db.Create(&p).Error)
	r := newRouter(db)

	w := doJSON(r, http.MethodPut, "/products",
		fmt.Sprintf(`{"id": %d, "name": "New", "price": 7.50, "stock": 9}`, p.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Product
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, int64(750), got.PriceCents)
	assert.Equal(t, 9, got.Stock)

	w = doJSON(r, http.MethodPut, "/products", `{"id": 999, "name": "Ghost", "price": 1, "stock": 1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPut, "/products", `{"id": 0, "name": "NoID", "price": 1, "stock": 1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRestockClearsRetirement(t *testing.T) {
	db := testDB(t)
	p := models.Product{
		Name: "Comeback", PriceCents: 900, Stock: 0,
		DeletedAt: gorm.DeletedAt{Time: time.Now(), Valid: true},
	}
	require.NoError(t, db.Create(&p).Error)
	r := newRouter(db)

	w := doJSON(r, http.MethodPut, "/products",
		fmt.Sprintf(`{"id": %d, "name": "Comeback", "price": 9.00, "stock": 20}`, p.ID))
	require.Equal(t, http.StatusOK, w.Code)

	// Back in the active scope and listing.
	var got models.Product
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, 20, got.Stock)
	assert.False(t, got.DeletedAt.Valid)
}

func TestDeleteProduct(t *testing.T) {
	db := testDB(t)
	p := models.Product{Name: "Doomed", PriceCents: 100, Stock: 1}
	require.NoError(t, db.Create(&p).Error)
	r := newRouter(db)

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", p.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	// The row is gone for good, not soft-deleted.
	err := db.Unscoped().First(&models.Product{}, p.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", p.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodDelete, "/products/zero", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
