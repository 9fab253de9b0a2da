package router

import (
	"github.com/deppfellow/product-service/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerProductRoutes(r *echo.Echo, h *handler.Handlers) {
	products := h.Product

	group := r.Group("/products")
	group.POST("", handler.Handle(products.Handler, "create_product", products.CreateProduct))
	group.GET("", handler.Handle(products.Handler, "list_products", products.ListProducts))
	group.GET("/:id", handler.Handle(products.Handler, "get_product", products.GetProduct))
	group.PUT("/:id", handler.Handle(products.Handler, "update_product", products.UpdateProduct))
	group.DELETE("/:id", handler.Handle(products.Handler, "delete_product", products.DeleteProduct))
}
