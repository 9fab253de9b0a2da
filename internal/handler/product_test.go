package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/deppfellow/product-service/internal/config"
	"github.com/deppfellow/product-service/internal/gateway"
	"github.com/deppfellow/product-service/internal/model"
	"github.com/deppfellow/product-service/internal/repository"
	"github.com/deppfellow/product-service/internal/server"
	"github.com/deppfellow/product-service/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store down")

type failingStore struct{}

func (failingStore) Get(context.Context, string) (model.Product, error) { return nil, errStoreDown }
func (failingStore) Put(context.Context, model.Product) error           { return errStoreDown }
func (failingStore) Delete(context.Context, string) error               { return errStoreDown }
func (failingStore) Scan(context.Context) ([]model.Product, error)      { return nil, errStoreDown }

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Storage: config.StorageConfig{Driver: config.DriverMemory},
		},
		Logger: &logger,
	}
}

func newTestProductHandler(store repository.ProductStore) *ProductHandler {
	return NewProductHandler(newTestServer(), service.NewProductService(store))
}

func withID(id string, body string) gateway.Request {
	return gateway.Request{
		Body:           body,
		PathParameters: map[string]string{gateway.PathParamID: id},
	}
}

func decodeObject(t *testing.T, res gateway.Response) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.Body), &out))
	return out
}

func validationErrors(t *testing.T, res gateway.Response) []string {
	t.Helper()

	var out struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.Body), &out))
	return out.Errors
}

func createProduct(t *testing.T, h *ProductHandler, body string) string {
	t.Helper()

	res, err := h.CreateProduct(context.Background(), gateway.Request{Body: body})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	id, _ := decodeObject(t, res)[model.FieldID].(string)
	require.NotEmpty(t, id)
	return id
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the body under a generated id", func(t *testing.T) {
		h := newTestProductHandler(repository.NewMemoryProductStore())

		res, err := h.CreateProduct(ctx, gateway.Request{
			Body: `{"name":"Widget","price":9.5,"color":"red","productID":"mine"}`,
		})
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, gateway.ContentTypeJSON, res.Headers[gateway.HeaderContentType])

		product := decodeObject(t, res)
		assert.Equal(t, "Widget", product["name"])
		assert.Equal(t, 9.5, product["price"])
		assert.Equal(t, "red", product["color"])
		assert.NotEqual(t, "mine", product[model.FieldID])

		got, err := h.GetProduct(ctx, withID(product[model.FieldID].(string), ""))
		require.NoError(t, err)
		assert.JSONEq(t, res.Body, got.Body)
	})

	t.Run("generates distinct ids", func(t *testing.T) {
		h := newTestProductHandler(repository.NewMemoryProductStore())

		first := createProduct(t, h, `{"name":"a","price":1}`)
		second := createProduct(t, h, `{"name":"a","price":1}`)
		assert.NotEqual(t, first, second)
	})

	t.Run("reports every validation error", func(t *testing.T) {
		h := newTestProductHandler(repository.NewMemoryProductStore())

		res, err := h.CreateProduct(ctx, gateway.Request{Body: `{}`})
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, []string{
			"name is a required field",
			"price is a required field",
		}, validationErrors(t, res))
	})

	t.Run("rejects a string price", func(t *testing.T) {
		h := newTestProductHandler(repository.NewMemoryProductStore())

		res, err := h.CreateProduct(ctx, gateway.Request{Body: `{"name":"a","price":"12"}`})
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, []string{
			"price must be a `number` type, but the final value was: `\"12\"`.",
		}, validationErrors(t, res))
	})

	t.Run("rejects a numeric name", func(t *testing.T) {
		h := newTestProductHandler(repository.NewMemoryProductStore())

		res, err := h.CreateProduct(ctx, gateway.Request{Body: `{"name":123,"price":1}`})
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, []string{
			"name must be a `string` type, but the final value was: `123`.",
		}, validationErrors(t, res))
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		store := repository.NewMemoryProductStore()
		h := newTestProductHandler(store)

		res, err := h.CreateProduct(ctx, gateway.Request{Body: `{"name":`})
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		msg, _ := decodeObject(t, res)["error"].(string)
		assert.True(t, strings.HasPrefix(msg, `invalid request body format : "`), msg)

		products, err := store.Scan(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("propagates store failures", func(t *testing.T) {
		h := newTestProductHandler(failingStore{})

		res, err := h.CreateProduct(ctx, gateway.Request{Body: `{"name":"a","price":1}`})
		require.ErrorIs(t, err, errStoreDown)
		assert.Zero(t, res.StatusCode)
	})
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("missing product", func(t *testing.T) {
		h := newTestProductHandler(repository.NewMemoryProductStore())

		res, err := h.GetProduct(ctx, withID("nope", ""))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.JSONEq(t, `{"error":"not found"}`, res.Body)
	})

	t.Run("propagates store failures", func(t *testing.T) {
		h := newTestProductHandler(failingStore{})

		_, err := h.GetProduct(ctx, withID("x", ""))
		require.ErrorIs(t, err, errStoreDown)
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the whole record", func(t *testing.T) {
		h := newTestProductHandler(repository.NewMemoryProductStore())
		id := createProduct(t, h, `{"name":"a","price":1,"color":"red"}`)

		res, err := h.UpdateProduct(ctx, withID(id, `{"name":"b","price":2,"productID":"other"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)

		product := decodeObject(t, res)
		assert.Equal(t, id, product[model.FieldID])
		assert.Equal(t, "b", product["name"])
		assert.NotContains(t, product, "color")

		got, err := h.GetProduct(ctx, withID(id, ""))
		require.NoError(t, err)
		assert.JSONEq(t, res.Body, got.Body)
	})

	t.Run("reports only the first validation error", func(t *testing.T) {
		h := newTestProductHandler(repository.NewMemoryProductStore())
		id := createProduct(t, h, `{"name":"a","price":1}`)

		res, err := h.UpdateProduct(ctx, withID(id, `{}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, []string{"name is a required field"}, validationErrors(t, res))
	})

	t.Run("missing product wins over a bad body", func(t *testing.T) {
		h := newTestProductHandler(repository.NewMemoryProductStore())

		res, err := h.UpdateProduct(ctx, withID("nope", `not json`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.JSONEq(t, `{"error":"not found"}`, res.Body)
	})

	t.Run("rejects malformed json on an existing product", func(t *testing.T) {
		h := newTestProductHandler(repository.NewMemoryProductStore())
		id := createProduct(t, h, `{"name":"a","price":1}`)

		res, err := h.UpdateProduct(ctx, withID(id, `[1,2]`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	h := newTestProductHandler(repository.NewMemoryProductStore())
	id := createProduct(t, h, `{"name":"a","price":1}`)

	res, err := h.DeleteProduct(ctx, withID(id, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	assert.Empty(t, res.Body)
	assert.Empty(t, res.Headers)

	res, err = h.GetProduct(ctx, withID(id, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, err = h.DeleteProduct(ctx, withID(id, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		h := newTestProductHandler(repository.NewMemoryProductStore())

		res, err := h.ListProducts(ctx, gateway.Request{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.JSONEq(t, `[]`, res.Body)
	})

	t.Run("returns every product", func(t *testing.T) {
		h := newTestProductHandler(repository.NewMemoryProductStore())
		createProduct(t, h, `{"name":"a","price":1}`)
		createProduct(t, h, `{"name":"b","price":2}`)

		res, err := h.ListProducts(ctx, gateway.Request{})
		require.NoError(t, err)

		var products []map[string]any
		require.NoError(t, json.Unmarshal([]byte(res.Body), &products))
		assert.Len(t, products, 2)
	})

	t.Run("propagates store failures", func(t *testing.T) {
		h := newTestProductHandler(failingStore{})

		_, err := h.ListProducts(ctx, gateway.Request{})
		require.ErrorIs(t, err, errStoreDown)
	})
}

func TestEntrypoints(t *testing.T) {
	h := newTestProductHandler(repository.NewMemoryProductStore())

	entrypoints := h.Entrypoints()
	for _, name := range []string{"create", "get", "update", "delete", "list"} {
		assert.Contains(t, entrypoints, name)
	}
	assert.Len(t, entrypoints, 5)
}
