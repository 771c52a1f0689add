// Package http provides the inbound HTTP adapter: a thin echo façade that
// converts requests into core commands and queries and serializes their
// results. All policy lives in the core; the façade only authenticates,
// authorizes admin routes, and maps error types to status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the wire shape of every non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLineRequest is one requested item in an order submission.
type OrderLineRequest struct {
	ItemID       int64  `json:"item_id"`
	ItemName     string `json:"item_name"`
	ItemQuantity int    `json:"item_quantity"`
}

// CreateOrdersResponse reports the ids assigned to a successful submission.
type CreateOrdersResponse struct {
	OrderIDs []int64 `json:"order_ids"`
}

// OrderResponse is the wire shape of one order in list and detail replies.
type OrderResponse struct {
	ID            int64     `json:"id"`
	OwnerID       int64     `json:"owner_id"`
	OwnerUsername string    `json:"owner_username"`
	ItemID        int64     `json:"item_id"`
	ItemName      string    `json:"item_name"`
	Quantity      int       `json:"quantity"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProductResponse is the wire shape of one product search hit.
type ProductResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	acceptOrderHandler commands.AcceptOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	getOrdersByOwnerHandler queries.GetOrdersByOwnerQueryHandler
	getAllOrdersHandler     queries.GetAllOrdersQueryHandler
	searchProductsHandler   queries.SearchProductsQueryHandler
}

// NewServer creates the HTTP server façade over the given use case handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersByOwnerHandler queries.GetOrdersByOwnerQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	searchProductsHandler queries.SearchProductsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		acceptOrderHandler:      acceptOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		getOrderHandler:         getOrderHandler,
		getOrdersByOwnerHandler: getOrdersByOwnerHandler,
		getAllOrdersHandler:     getAllOrdersHandler,
		searchProductsHandler:   searchProductsHandler,
	}
}

// RegisterRoutes mounts the API routes. identityMW must be the
// IdentityMiddleware for the same token secret the auth service signs with.
func (s *Server) RegisterRoutes(e *echo.Echo, identityMW echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	api := e.Group("/api", identityMW)
	api.POST("/orders", s.CreateOrders)
	api.GET("/orders/user", s.GetUserOrders)
	api.GET("/products/search", s.SearchProducts)

	admin := api.Group("/admin")
	admin.GET("/orders", s.GetAllOrders)
	admin.POST("/orders/:id/accept", s.AcceptOrder)
	admin.POST("/orders/:id/cancel", s.CancelOrder)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrders handles POST /api/orders - submits one or more orders for the
// authenticated caller. The body is a JSON array of order lines; every line
// becomes its own order.
func (s *Server) CreateOrders(c echo.Context) error {
	ident, err := IdentityFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var body []OrderLineRequest
	if err = c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines := make([]commands.OrderLine, 0, len(body))
	for _, line := range body {
		lines = append(lines, commands.OrderLine{
			ItemID:   line.ItemID,
			ItemName: line.ItemName,
			Quantity: line.ItemQuantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(ident.UserID(), ident.Username(), lines)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	ids, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreateOrdersResponse{OrderIDs: ids})
}

// GetUserOrders handles GET /api/orders/user - the caller's order history,
// newest first.
func (s *Server) GetUserOrders(c echo.Context) error {
	ident, err := IdentityFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	query, err := queries.NewGetOrdersByOwnerQuery(ident.UserID())
	if err != nil {
		return writeError(c, err)
	}

	orders, err := s.getOrdersByOwnerHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetAllOrders handles GET /api/admin/orders - every order in the system,
// newest first. Admin only.
func (s *Server) GetAllOrders(c echo.Context) error {
	ident, err := IdentityFromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	if !ident.IsAdmin() {
		return forbidden(c)
	}

	orders, err := s.getAllOrdersHandler.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// AcceptOrder handles POST /api/admin/orders/:id/accept - moves a Pending
// order into the fulfillment queue. Admin only.
func (s *Server) AcceptOrder(c echo.Context) error {
	ident, err := IdentityFromContext(c)
	if err != nil {
		return unauthorized(c)
	}
	if !ident.IsAdmin() {
		return forbidden(c)
	}

	orderID, err := parseOrderID(c)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.acceptOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/admin/orders/:id/cancel - cancels a
// non-terminal order. Allowed for admins and for the order's owner.
func (s *Server) CancelOrder(c echo.Context) error {
	ident, err := IdentityFromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	orderID, err := parseOrderID(c)
	if err != nil {
		return writeError(c, err)
	}

	if !ident.IsAdmin() {
		query, queryErr := queries.NewGetOrderQuery(orderID)
		if queryErr != nil {
			return writeError(c, queryErr)
		}

		o, getErr := s.getOrderHandler.Handle(c.Request().Context(), query)
		if getErr != nil {
			return writeError(c, getErr)
		}
		if o.OwnerID != ident.UserID() {
			return forbidden(c)
		}
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.cancelOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SearchProducts handles GET /api/products/search?search=<term> - catalog
// lookup for the order form.
func (s *Server) SearchProducts(c echo.Context) error {
	query := queries.NewSearchProductsQuery(c.QueryParam("search"))

	products, err := s.searchProductsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, ProductResponse{ID: p.ID, Name: p.Name})
	}

	return c.JSON(http.StatusOK, response)
}

func toOrderResponses(orders []queries.OrderResponse) []OrderResponse {
	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, OrderResponse{
			ID:            o.ID,
			OwnerID:       o.OwnerID,
			OwnerUsername: o.OwnerUsername,
			ItemID:        o.ItemID,
			ItemName:      o.ItemName,
			Quantity:      o.Quantity,
			Status:        o.Status,
			CreatedAt:     o.CreatedAt,
		})
	}
	return response
}

func parseOrderID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError("order id")
	}
	return id, nil
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "Invalid or missing credentials",
	})
}

func forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, ErrorResponse{
		Code:    http.StatusForbidden,
		Message: "Operation not permitted",
	})
}

// writeError maps core error types onto HTTP status codes. Anything outside
// the known taxonomy is a 500 with no internal detail leaked.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, errs.ErrInvalidState):
		return c.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}
