// Package http binds the application's command and query handlers to the
// Echo HTTP surface.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	assignOrderHandler       commands.AssignOrderCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	createPartnerHandler     commands.CreatePartnerCommandHandler
	updatePartnerHandler     commands.UpdatePartnerCommandHandler
	deletePartnerHandler     commands.DeletePartnerCommandHandler

	// Query handlers
	getAssignmentMetricsHandler queries.GetAssignmentMetricsQueryHandler
	getAllOrdersHandler         queries.GetAllOrdersQueryHandler
	getOrderHandler             queries.GetOrderQueryHandler
	getAllPartnersHandler       queries.GetAllPartnersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	assignOrderHandler commands.AssignOrderCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	createPartnerHandler commands.CreatePartnerCommandHandler,
	updatePartnerHandler commands.UpdatePartnerCommandHandler,
	deletePartnerHandler commands.DeletePartnerCommandHandler,
	getAssignmentMetricsHandler queries.GetAssignmentMetricsQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllPartnersHandler queries.GetAllPartnersQueryHandler,
) *Server {
	return &Server{
		assignOrderHandler:          assignOrderHandler,
		createOrderHandler:          createOrderHandler,
		changeOrderStatusHandler:    changeOrderStatusHandler,
		createPartnerHandler:        createPartnerHandler,
		updatePartnerHandler:        updatePartnerHandler,
		deletePartnerHandler:        deletePartnerHandler,
		getAssignmentMetricsHandler: getAssignmentMetricsHandler,
		getAllOrdersHandler:         getAllOrdersHandler,
		getOrderHandler:             getOrderHandler,
		getAllPartnersHandler:       getAllPartnersHandler,
	}
}

// RegisterRoutes binds every endpoint onto the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	api.POST("/orders/assign", s.AssignOrder)
	api.GET("/assignments/metrics", s.GetAssignmentMetrics)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderId/single-order", s.GetOrder)
	api.PUT("/orders/:orderId/status", s.ChangeOrderStatus)

	api.POST("/partners", s.CreatePartner)
	api.GET("/partners", s.GetPartners)
	api.PUT("/partners/:partnerId", s.UpdatePartner)
	api.DELETE("/partners/:partnerId", s.DeletePartner)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// AssignOrder handles POST /api/orders/assign - evaluates a partner for an
// order. Rule rejections answer 400 like validation failures, but the body
// still carries the persisted assignment record.
func (s *Server) AssignOrder(ctx echo.Context) error {
	var request AssignOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if request.OrderID == "" || request.PartnerID == "" {
		return badRequest(ctx, "All fields are necessary!")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}
	partnerID, err := kernel.UUIDFromString(request.PartnerID)
	if err != nil {
		return badRequest(ctx, "Invalid partner id: "+err.Error())
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, partnerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	record, err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to assign order")
	}

	if !record.IsSuccess() {
		return ctx.JSON(http.StatusBadRequest, Response{
			Code:    http.StatusBadRequest,
			Data:    assignmentToResponse(record),
			Message: rejectionMessage(record.Reason()),
		})
	}

	return ctx.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Data:    assignmentToResponse(record),
		Message: "Order successfully assigned.",
	})
}

// GetAssignmentMetrics handles GET /api/assignments/metrics - computes the
// aggregate report over the full assignment history.
func (s *Server) GetAssignmentMetrics(ctx echo.Context) error {
	query := queries.NewGetAssignmentMetricsQuery()

	report, err := s.getAssignmentMetricsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Response{
			Code:    http.StatusInternalServerError,
			Message: "Failed to calculate metrics",
		})
	}

	return ctx.JSON(http.StatusOK, metricsToResponse(report))
}

// CreateOrder handles POST /api/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customer, err := order.NewCustomer(request.Customer.Name, request.Customer.Phone, request.Customer.Address)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	items := make([]order.Item, 0, len(request.Items))
	for _, payload := range request.Items {
		item, itemErr := order.NewItem(payload.Name, payload.Quantity, payload.Price)
		if itemErr != nil {
			return badRequest(ctx, itemErr.Error())
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(customer, request.Area, items, request.ScheduledFor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Data:    orderToResponse(created),
		Message: "Order created Successfully!",
	})
}

// GetOrders handles GET /api/orders - retrieves all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Response{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderReadModelToResponse(o))
	}

	return ctx.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Data:    response,
		Message: "Orders fetched successfully!",
	})
}

// GetOrder handles GET /api/orders/:orderId/single-order - fetches one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	single, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Order does not exist!")
	}

	return ctx.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Data:    orderReadModelToResponse(single),
		Message: "Order fetched successfully!",
	})
}

// ChangeOrderStatus handles PUT /api/orders/:orderId/status - advances the
// order lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var request ChangeOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if request.Status == "" {
		return badRequest(ctx, "Status is not given!")
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to update order status")
	}

	return ctx.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Data:    orderToResponse(updated),
		Message: "Order status updated successfully!",
	})
}

// CreatePartner handles POST /api/partners - registers a delivery partner.
func (s *Server) CreatePartner(ctx echo.Context) error {
	var request CreatePartnerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if len(request.Areas) == 0 {
		return badRequest(ctx, "At least one area is must!")
	}

	shift, err := partner.NewShift(request.Shift.Start, request.Shift.End)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCreatePartnerCommand(request.Name, request.Email, request.Phone, request.Areas, shift)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	created, err := s.createPartnerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrPartnerAlreadyExists) {
			return badRequest(ctx, "Delivery partner already exists!")
		}
		return errorResponse(ctx, err, "Failed to create delivery partner")
	}

	return ctx.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Data:    partnerToResponse(created),
		Message: "Delivery partner created successfully!",
	})
}

// GetPartners handles GET /api/partners - retrieves all partners.
func (s *Server) GetPartners(ctx echo.Context) error {
	query := queries.NewGetAllPartnersQuery()

	partners, err := s.getAllPartnersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Response{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve delivery partners",
		})
	}

	response := make([]PartnerResponse, 0, len(partners))
	for _, p := range partners {
		response = append(response, partnerReadModelToResponse(p))
	}

	return ctx.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Data:    response,
		Message: "All delivery partners fetched successfully!",
	})
}

// UpdatePartner handles PUT /api/partners/:partnerId - partial update of a
// partner's contact details, areas, shift or status.
func (s *Server) UpdatePartner(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("partnerId"))
	if err != nil {
		return badRequest(ctx, "Invalid partner id: "+err.Error())
	}

	var request UpdatePartnerRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var shift *partner.Shift
	if request.Shift != nil {
		parsed, shiftErr := partner.NewShift(request.Shift.Start, request.Shift.End)
		if shiftErr != nil {
			return badRequest(ctx, shiftErr.Error())
		}
		shift = &parsed
	}

	var status *partner.Status
	if request.Status != nil {
		parsed, statusErr := partner.StatusFromString(*request.Status)
		if statusErr != nil {
			return badRequest(ctx, statusErr.Error())
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdatePartnerCommand(
		partnerID,
		request.Name,
		request.Email,
		request.Phone,
		request.Areas,
		shift,
		status,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.updatePartnerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Partner does not exist!")
	}

	return ctx.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Data:    partnerToResponse(updated),
		Message: "Partner details changed successfully!",
	})
}

// DeletePartner handles DELETE /api/partners/:partnerId - removes a partner.
func (s *Server) DeletePartner(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("partnerId"))
	if err != nil {
		return badRequest(ctx, "Invalid partner id: "+err.Error())
	}

	cmd, err := commands.NewDeletePartnerCommand(partnerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deletePartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err, "Partner does not exist!")
	}

	return ctx.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "Delivery Partner deleted successfully!",
	})
}

// rejectionMessage maps a recorded failure reason to the human-readable
// message accompanying the 400 response.
func rejectionMessage(reason *string) string {
	if reason == nil {
		return "Failed to assign order."
	}

	switch *reason {
	case assignment.ReasonShiftMismatch:
		return "Failed to assign order: Delivery partner unavailable."
	case assignment.ReasonAreaMismatch:
		return "Failed to assign order: Delivery partner does not serve this area."
	case assignment.ReasonLoadExceeded:
		return "Assignment failed due to partner load"
	default:
		return "Failed to assign order."
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Response{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps application errors onto HTTP statuses: invalid input and
// missing entities answer 400 (missing entities are 400 on this API, not 404),
// anything else is a storage-level 500.
func errorResponse(ctx echo.Context, err error, message string) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrStatusTransitionNotAllowed):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Response{
		Code:    code,
		Message: message + ": " + err.Error(),
	})
}
