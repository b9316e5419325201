// Package http exposes the order lifecycle over a JSON REST API using echo.
// Request bodies are thin DTOs mapped into guarded commands; domain errors are
// translated to HTTP status codes in one place.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	initiatePaymentHandler      commands.InitiatePaymentCommandHandler
	settleOrderHandler          commands.SettleOrderCommandHandler
	updateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	issueDeliveryCodeHandler    commands.IssueDeliveryCodeCommandHandler
	completeDeliveryHandler     commands.CompleteDeliveryCommandHandler
	reportDriverLocationHandler commands.ReportDriverLocationCommandHandler
	hideOrderHandler            commands.HideOrderCommandHandler

	// Query handlers
	getCustomerOrdersHandler    queries.GetCustomerOrdersQueryHandler
	getOwnerOrdersHandler       queries.GetOwnerOrdersQueryHandler
	getLatestOrderHandler       queries.GetLatestOrderQueryHandler
	getNearbyRestaurantsHandler queries.GetNearbyRestaurantsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	initiatePaymentHandler commands.InitiatePaymentCommandHandler,
	settleOrderHandler commands.SettleOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	issueDeliveryCodeHandler commands.IssueDeliveryCodeCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	reportDriverLocationHandler commands.ReportDriverLocationCommandHandler,
	hideOrderHandler commands.HideOrderCommandHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getOwnerOrdersHandler queries.GetOwnerOrdersQueryHandler,
	getLatestOrderHandler queries.GetLatestOrderQueryHandler,
	getNearbyRestaurantsHandler queries.GetNearbyRestaurantsQueryHandler,
) *Server {
	return &Server{
		initiatePaymentHandler:      initiatePaymentHandler,
		settleOrderHandler:          settleOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		issueDeliveryCodeHandler:    issueDeliveryCodeHandler,
		completeDeliveryHandler:     completeDeliveryHandler,
		reportDriverLocationHandler: reportDriverLocationHandler,
		hideOrderHandler:            hideOrderHandler,
		getCustomerOrdersHandler:    getCustomerOrdersHandler,
		getOwnerOrdersHandler:       getOwnerOrdersHandler,
		getLatestOrderHandler:       getLatestOrderHandler,
		getNearbyRestaurantsHandler: getNearbyRestaurantsHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1. All routes require an
// authenticated actor.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	api := e.Group("/api/v1", auth)

	api.POST("/payments/initiate", s.InitiatePayment)
	api.POST("/orders", s.SettleOrder)
	api.GET("/orders", s.GetCustomerOrders)
	api.GET("/orders/latest", s.GetLatestOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/delivery-code", s.IssueDeliveryCode)
	api.POST("/orders/:id/complete", s.CompleteDelivery)
	api.POST("/orders/:id/driver-location", s.ReportDriverLocation)
	api.DELETE("/orders/:id", s.HideOrder)
	api.GET("/owner/orders", s.GetOwnerOrders)
	api.GET("/restaurants/nearby", s.GetNearbyRestaurants)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type cartLineRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

type initiatePaymentRequest struct {
	RestaurantID string            `json:"restaurant_id"`
	Items        []cartLineRequest `json:"items"`
}

type initiatePaymentResponse struct {
	ChargeRef string `json:"charge_ref"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}

type settleOrderRequest struct {
	RestaurantID    string            `json:"restaurant_id"`
	Items           []cartLineRequest `json:"items"`
	ChargeRef       string            `json:"charge_ref"`
	PaymentRef      string            `json:"payment_ref"`
	Signature       string            `json:"signature"`
	DeliveryAddress string            `json:"delivery_address"`
	DeliveryLat     *float64          `json:"delivery_lat"`
	DeliveryLng     *float64          `json:"delivery_lng"`
}

type settleOrderResponse struct {
	OrderID string `json:"order_id"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

type completeDeliveryRequest struct {
	Code string `json:"code"`
}

type driverLocationRequest struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Distance string  `json:"distance"`
	Time     string  `json:"time"`
	Message  string  `json:"message"`
}

type orderSummaryResponse struct {
	ID              string    `json:"id"`
	RestaurantID    string    `json:"restaurant_id"`
	CustomerID      string    `json:"customer_id,omitempty"`
	Status          string    `json:"status"`
	TotalAmount     int64     `json:"total_amount"`
	DeliveryAddress string    `json:"delivery_address"`
	CreatedAt       time.Time `json:"created_at"`
}

type latestOrderResponse struct {
	ID              string    `json:"id"`
	RestaurantID    string    `json:"restaurant_id"`
	Status          string    `json:"status"`
	TotalAmount     int64     `json:"total_amount"`
	DeliveryAddress string    `json:"delivery_address"`
	DeliveryLat     *float64  `json:"delivery_lat"`
	DeliveryLng     *float64  `json:"delivery_lng"`
	CreatedAt       time.Time `json:"created_at"`
}

type nearbyRestaurantResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	DistanceMeters float64 `json:"distance_meters"`
}

// InitiatePayment handles POST /api/v1/payments/initiate - prices the cart
// server side and registers a charge at the payment gateway.
func (s *Server) InitiatePayment(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var request initiatePaymentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	restaurantID, lines, err := parseCart(request.RestaurantID, request.Items)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewInitiatePaymentCommand(actor, restaurantID, lines)
	if err != nil {
		return writeError(ctx, err)
	}

	charge, err := s.initiatePaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, initiatePaymentResponse{
		ChargeRef: charge.Reference,
		Amount:    charge.Amount,
		Currency:  charge.Currency,
	})
}

// SettleOrder handles POST /api/v1/orders - verifies the payment signature,
// reprices the cart, and commits the order.
func (s *Server) SettleOrder(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var request settleOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	restaurantID, lines, err := parseCart(request.RestaurantID, request.Items)
	if err != nil {
		return writeError(ctx, err)
	}

	var deliveryPoint *kernel.GeoPoint
	if request.DeliveryLat != nil && request.DeliveryLng != nil {
		point, pointErr := kernel.NewGeoPoint(*request.DeliveryLat, *request.DeliveryLng)
		if pointErr != nil {
			return writeError(ctx, pointErr)
		}
		deliveryPoint = &point
	}

	cmd, err := commands.NewSettleOrderCommand(actor, restaurantID, lines,
		request.ChargeRef, request.PaymentRef, request.Signature,
		request.DeliveryAddress, deliveryPoint)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := s.settleOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, settleOrderResponse{OrderID: orderID.String()})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var request updateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	newStatus, err := order.StatusFromString(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actor, orderID, newStatus)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// IssueDeliveryCode handles POST /api/v1/orders/:id/delivery-code.
func (s *Server) IssueDeliveryCode(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewIssueDeliveryCodeCommand(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.issueDeliveryCodeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var request completeDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(actor, orderID, request.Code)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReportDriverLocation handles POST /api/v1/orders/:id/driver-location.
func (s *Server) ReportDriverLocation(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var request driverLocationRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	position, err := kernel.NewGeoPoint(request.Lat, request.Lng)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReportDriverLocationCommand(actor, orderID, position,
		request.Distance, request.Time, request.Message)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.reportDriverLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// HideOrder handles DELETE /api/v1/orders/:id - hides the order from the
// caller's dashboard without touching the permanent record.
func (s *Server) HideOrder(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewHideOrderCommand(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.hideOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomerOrders handles GET /api/v1/orders - the caller's order history.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetCustomerOrdersQuery(actor.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]orderSummaryResponse, len(orders))
	for i, o := range orders {
		response[i] = orderSummaryResponse{
			ID:              o.ID.String(),
			RestaurantID:    o.RestaurantID.String(),
			Status:          o.Status.String(),
			TotalAmount:     o.TotalAmount,
			DeliveryAddress: o.DeliveryAddress,
			CreatedAt:       o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOwnerOrders handles GET /api/v1/owner/orders - orders across the
// caller's restaurants.
func (s *Server) GetOwnerOrders(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetOwnerOrdersQuery(actor.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOwnerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]orderSummaryResponse, len(orders))
	for i, o := range orders {
		response[i] = orderSummaryResponse{
			ID:              o.ID.String(),
			RestaurantID:    o.RestaurantID.String(),
			CustomerID:      o.CustomerID.String(),
			Status:          o.Status.String(),
			TotalAmount:     o.TotalAmount,
			DeliveryAddress: o.DeliveryAddress,
			CreatedAt:       o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLatestOrder handles GET /api/v1/orders/latest - the caller's newest
// visible order, for the live tracking page.
func (s *Server) GetLatestOrder(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetLatestOrderQuery(actor.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	latest, err := s.getLatestOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, latestOrderResponse{
		ID:              latest.ID.String(),
		RestaurantID:    latest.RestaurantID.String(),
		Status:          latest.Status.String(),
		TotalAmount:     latest.TotalAmount,
		DeliveryAddress: latest.DeliveryAddress,
		DeliveryLat:     latest.DeliveryLat,
		DeliveryLng:     latest.DeliveryLng,
		CreatedAt:       latest.CreatedAt,
	})
}

// GetNearbyRestaurants handles GET /api/v1/restaurants/nearby.
func (s *Server) GetNearbyRestaurants(ctx echo.Context) error {
	lat, err := strconv.ParseFloat(ctx.QueryParam("lat"), 64)
	if err != nil {
		return badRequest(ctx, "invalid lat")
	}
	lng, err := strconv.ParseFloat(ctx.QueryParam("lng"), 64)
	if err != nil {
		return badRequest(ctx, "invalid lng")
	}

	radiusMeters := 5000.0
	if raw := ctx.QueryParam("radius"); raw != "" {
		radiusMeters, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return badRequest(ctx, "invalid radius")
		}
	}

	center, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetNearbyRestaurantsQuery(center, radiusMeters)
	if err != nil {
		return writeError(ctx, err)
	}

	restaurants, err := s.getNearbyRestaurantsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]nearbyRestaurantResponse, len(restaurants))
	for i, r := range restaurants {
		response[i] = nearbyRestaurantResponse{
			ID:             r.ID.String(),
			Name:           r.Name,
			Address:        r.Address,
			Lat:            r.Location.Latitude(),
			Lng:            r.Location.Longitude(),
			DistanceMeters: r.DistanceMeters,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// parseCart converts the wire cart into a restaurant ID and cart lines.
func parseCart(restaurantID string, items []cartLineRequest) (kernel.UUID, []services.CartLine, error) {
	id, err := kernel.UUIDFromString(restaurantID)
	if err != nil {
		return kernel.UUID{}, nil, errs.NewValueIsInvalidErrorWithCause("restaurant_id", err)
	}

	lines := make([]services.CartLine, 0, len(items))
	for _, item := range items {
		menuItemID, itemErr := kernel.UUIDFromString(item.MenuItemID)
		if itemErr != nil {
			return kernel.UUID{}, nil, errs.NewValueIsInvalidErrorWithCause("menu_item_id", itemErr)
		}
		lines = append(lines, services.CartLine{MenuItemID: menuItemID, Quantity: item.Quantity})
	}

	return id, lines, nil
}

// writeError maps domain errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrPaymentFailed):
		status = http.StatusPaymentRequired
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, errorResponse{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, errorResponse{
		Code:    http.StatusUnauthorized,
		Message: "authentication required",
	})
}
