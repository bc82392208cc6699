package http

import (
	"errors"
	"net/http"

	"orderstatus/internal/core/application/usecases/commands"
	"orderstatus/internal/core/application/usecases/queries"
	"orderstatus/internal/core/domain/model/access"
	"orderstatus/internal/core/domain/model/kernel"
	"orderstatus/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the HTTP endpoints of the order status API.
// It binds request parameters, delegates to application use cases and
// translates transition outcomes into HTTP responses.
type Server struct {
	// Command handlers
	acceptOrderHandler        commands.AcceptOrderCommandHandler
	rejectOrderHandler        commands.RejectOrderCommandHandler
	prepareOrderHandler       commands.PrepareOrderCommandHandler
	giveOrderToCourierHandler commands.GiveOrderToCourierCommandHandler
	startOrderTransitHandler  commands.StartOrderTransitCommandHandler
	deliverOrderHandler       commands.DeliverOrderCommandHandler
	createOrderHandler        commands.CreateOrderCommandHandler
	registerUserHandler       commands.RegisterUserCommandHandler

	// Query handlers
	getOrderStatusHandler queries.GetOrderStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	prepareOrderHandler commands.PrepareOrderCommandHandler,
	giveOrderToCourierHandler commands.GiveOrderToCourierCommandHandler,
	startOrderTransitHandler commands.StartOrderTransitCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	registerUserHandler commands.RegisterUserCommandHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
) *Server {
	return &Server{
		acceptOrderHandler:        acceptOrderHandler,
		rejectOrderHandler:        rejectOrderHandler,
		prepareOrderHandler:       prepareOrderHandler,
		giveOrderToCourierHandler: giveOrderToCourierHandler,
		startOrderTransitHandler:  startOrderTransitHandler,
		deliverOrderHandler:       deliverOrderHandler,
		createOrderHandler:        createOrderHandler,
		registerUserHandler:       registerUserHandler,
		getOrderStatusHandler:     getOrderStatusHandler,
	}
}

// RegisterRoutes attaches all API endpoints to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.PUT("/status/:orderId/accepted", s.UpdateToAccepted)
	e.PUT("/status/:orderId/rejected", s.UpdateToRejected)
	e.PUT("/status/:orderId/preparing", s.UpdateToPreparing)
	e.PUT("/status/:orderId/giventocourier", s.UpdateToGivenToCourier)
	e.PUT("/status/:orderId/intransit", s.UpdateToInTransit)
	e.PUT("/status/:orderId/delivered", s.UpdateToDelivered)
	e.GET("/status/:orderId", s.GetOrderStatus)
	e.POST("/orders", s.CreateOrder)
	e.POST("/users", s.RegisterUser)
}

// UpdateToAccepted handles PUT /status/:orderId/accepted - the vendor accepts a pending order.
//
//	@Summary		Accept a pending order
//	@Description	Moves the order from PENDING to ACCEPTED on behalf of the vendor.
//	@Tags			status
//	@Param			orderId			path	string	true	"Order identifier"		format(uuid)
//	@Param			authorization	query	string	true	"Requester identifier"	format(uuid)
//	@Success		200
//	@Failure		400	{object}	Error
//	@Failure		403	{object}	Error
//	@Failure		404	{object}	Error
//	@Failure		500	{object}	Error
//	@Router			/status/{orderId}/accepted [put]
func (s *Server) UpdateToAccepted(ctx echo.Context) error {
	orderID, requesterID, err := bindTransitionParams(ctx)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, requesterID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid transition request: "+err.Error())
	}

	outcome, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to accept order")
	}

	return respondTransition(ctx, outcome)
}

// UpdateToRejected handles PUT /status/:orderId/rejected - the vendor rejects a pending order.
//
//	@Summary		Reject a pending order
//	@Description	Moves the order from PENDING to REJECTED and records a delivery exception.
//	@Tags			status
//	@Param			orderId			path	string	true	"Order identifier"		format(uuid)
//	@Param			authorization	query	string	true	"Requester identifier"	format(uuid)
//	@Success		200
//	@Failure		400	{object}	Error
//	@Failure		403	{object}	Error
//	@Failure		404	{object}	Error
//	@Failure		500	{object}	Error
//	@Router			/status/{orderId}/rejected [put]
func (s *Server) UpdateToRejected(ctx echo.Context) error {
	orderID, requesterID, err := bindTransitionParams(ctx)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, requesterID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid transition request: "+err.Error())
	}

	outcome, err := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to reject order")
	}

	return respondTransition(ctx, outcome)
}

// UpdateToPreparing handles PUT /status/:orderId/preparing - the vendor starts preparing the order.
//
//	@Summary		Start preparing an order
//	@Description	Moves the order from ACCEPTED to PREPARING, recording the preparation
//	@Description	time and the promised delivery time.
//	@Tags			status
//	@Accept			json
//	@Param			orderId			path	string				true	"Order identifier"		format(uuid)
//	@Param			authorization	query	string				true	"Requester identifier"	format(uuid)
//	@Param			request			body	PrepareOrderRequest	true	"Preparation details"
//	@Success		200
//	@Failure		400	{object}	Error
//	@Failure		403	{object}	Error
//	@Failure		404	{object}	Error
//	@Failure		500	{object}	Error
//	@Router			/status/{orderId}/preparing [put]
func (s *Server) UpdateToPreparing(ctx echo.Context) error {
	orderID, requesterID, err := bindTransitionParams(ctx)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	var request PrepareOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewPrepareOrderCommand(orderID, requesterID, request.PrepTimeMinutes, request.ExpectedDeliveryTime)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid transition request: "+err.Error())
	}

	outcome, err := s.prepareOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to start order preparation")
	}

	return respondTransition(ctx, outcome)
}

// UpdateToGivenToCourier handles PUT /status/:orderId/giventocourier - the vendor hands the order over.
//
//	@Summary		Hand an order to a courier
//	@Description	Moves the order from PREPARING to GIVEN_TO_COURIER and records which
//	@Description	courier took it.
//	@Tags			status
//	@Accept			json
//	@Param			orderId			path	string						true	"Order identifier"		format(uuid)
//	@Param			authorization	query	string						true	"Requester identifier"	format(uuid)
//	@Param			request			body	GiveOrderToCourierRequest	true	"Courier details"
//	@Success		200
//	@Failure		400	{object}	Error
//	@Failure		403	{object}	Error
//	@Failure		404	{object}	Error
//	@Failure		500	{object}	Error
//	@Router			/status/{orderId}/giventocourier [put]
func (s *Server) UpdateToGivenToCourier(ctx echo.Context) error {
	orderID, requesterID, err := bindTransitionParams(ctx)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	var request GiveOrderToCourierRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromBytes(request.CourierId[:])
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid courier identifier")
	}

	cmd, err := commands.NewGiveOrderToCourierCommand(orderID, requesterID, courierID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid transition request: "+err.Error())
	}

	outcome, err := s.giveOrderToCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to hand order to courier")
	}

	return respondTransition(ctx, outcome)
}

// UpdateToInTransit handles PUT /status/:orderId/intransit - the courier starts the delivery trip.
//
//	@Summary		Start order transit
//	@Description	Moves the order from GIVEN_TO_COURIER to IN_TRANSIT on behalf of the courier.
//	@Tags			status
//	@Param			orderId			path	string	true	"Order identifier"		format(uuid)
//	@Param			authorization	query	string	true	"Requester identifier"	format(uuid)
//	@Success		200
//	@Failure		400	{object}	Error
//	@Failure		403	{object}	Error
//	@Failure		404	{object}	Error
//	@Failure		500	{object}	Error
//	@Router			/status/{orderId}/intransit [put]
func (s *Server) UpdateToInTransit(ctx echo.Context) error {
	orderID, requesterID, err := bindTransitionParams(ctx)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewStartOrderTransitCommand(orderID, requesterID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid transition request: "+err.Error())
	}

	outcome, err := s.startOrderTransitHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to start order transit")
	}

	return respondTransition(ctx, outcome)
}

// UpdateToDelivered handles PUT /status/:orderId/delivered - the courier completes the delivery.
//
//	@Summary		Complete a delivery
//	@Description	Moves the order from IN_TRANSIT to DELIVERED and records the actual
//	@Description	delivery time.
//	@Tags			status
//	@Accept			json
//	@Param			orderId			path	string				true	"Order identifier"		format(uuid)
//	@Param			authorization	query	string				true	"Requester identifier"	format(uuid)
//	@Param			request			body	DeliverOrderRequest	true	"Delivery details"
//	@Success		200
//	@Failure		400	{object}	Error
//	@Failure		403	{object}	Error
//	@Failure		404	{object}	Error
//	@Failure		500	{object}	Error
//	@Router			/status/{orderId}/delivered [put]
func (s *Server) UpdateToDelivered(ctx echo.Context) error {
	orderID, requesterID, err := bindTransitionParams(ctx)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	var request DeliverOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, requesterID, request.ActualDeliveryTime)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid transition request: "+err.Error())
	}

	outcome, err := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to complete delivery")
	}

	return respondTransition(ctx, outcome)
}

// GetOrderStatus handles GET /status/:orderId - reads the current order status.
//
//	@Summary		Get the current order status
//	@Description	Returns the order's current status as plain text, e.g. "PREPARING".
//	@Tags			status
//	@Produce		plain
//	@Param			orderId			path		string	true	"Order identifier"		format(uuid)
//	@Param			authorization	query		string	true	"Requester identifier"	format(uuid)
//	@Success		200				{string}	string	"Current status"
//	@Failure		400				{object}	Error
//	@Failure		403				{object}	Error
//	@Failure		404				{object}	Error
//	@Failure		500				{object}	Error
//	@Router			/status/{orderId} [get]
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	orderID, requesterID, err := bindTransitionParams(ctx)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetOrderStatusQuery(orderID, requesterID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid status request: "+err.Error())
	}

	status, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notAuthorized *queries.NotAuthorizedError
		switch {
		case errors.As(err, &notAuthorized):
			return respondError(ctx, http.StatusForbidden, notAuthorized.Reason)
		case errors.Is(err, errs.ErrObjectNotFound):
			return respondError(ctx, http.StatusNotFound, "Order not found")
		default:
			return respondError(ctx, http.StatusInternalServerError, "Failed to retrieve order status")
		}
	}

	return ctx.String(http.StatusOK, status.String())
}

// CreateOrder handles POST /orders - places a new order in PENDING status.
//
//	@Summary		Place a new order
//	@Description	Creates an order for the given vendor. The order starts in PENDING status.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			authorization	query		string		true	"Requester identifier"	format(uuid)
//	@Param			request			body		NewOrder	true	"Order details"
//	@Success		201				{object}	CreatedResource
//	@Failure		400				{object}	Error
//	@Failure		403				{object}	Error
//	@Failure		500				{object}	Error
//	@Router			/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	requesterID, err := bindAuthorization(ctx)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err.Error())
	}

	var request NewOrder
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	vendorID, err := kernel.UUIDFromBytes(request.VendorId[:])
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid vendor identifier")
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, vendorID, requesterID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	outcome, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to create order")
	}

	if outcome.Kind() != commands.OutcomeSuccess {
		return respondTransition(ctx, outcome)
	}

	return ctx.JSON(http.StatusCreated, CreatedResource{Id: orderID.Bytes()})
}

// RegisterUser handles POST /users - registers a requester with a role.
//
//	@Summary		Register a user
//	@Description	Registers a requester under one of the CUSTOMER, VENDOR or COURIER
//	@Description	roles. Registration itself requires no authorization.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		NewUser	true	"User details"
//	@Success		201		{object}	CreatedResource
//	@Failure		400		{object}	Error
//	@Failure		500		{object}	Error
//	@Router			/users [post]
func (s *Server) RegisterUser(ctx echo.Context) error {
	var request NewUser
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	role, err := access.RoleFromString(request.Role)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid user data: "+err.Error())
	}

	userID := kernel.NewUUID()

	cmd, err := commands.NewRegisterUserCommand(userID, request.Name, role)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid user data: "+err.Error())
	}

	if handleErr := s.registerUserHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to register user")
	}

	return ctx.JSON(http.StatusCreated, CreatedResource{Id: userID.Bytes()})
}

// bindTransitionParams extracts the order identifier from the path and the
// requester identifier from the authorization query parameter.
func bindTransitionParams(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	requesterID, err := bindAuthorization(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return orderID, requesterID, nil
}

func bindOrderID(ctx echo.Context) (kernel.UUID, error) {
	var rawOrderID openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &rawOrderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return kernel.UUID{}, errors.New("Invalid order identifier")
	}

	orderID, err := kernel.UUIDFromBytes(rawOrderID[:])
	if err != nil {
		return kernel.UUID{}, errors.New("Invalid order identifier")
	}

	return orderID, nil
}

func bindAuthorization(ctx echo.Context) (kernel.UUID, error) {
	var rawRequesterID openapi_types.UUID
	err := runtime.BindQueryParameter("form", true, true, "authorization", ctx.QueryParams(), &rawRequesterID)
	if err != nil {
		return kernel.UUID{}, errors.New("Missing or invalid authorization parameter")
	}

	requesterID, err := kernel.UUIDFromBytes(rawRequesterID[:])
	if err != nil {
		return kernel.UUID{}, errors.New("Missing or invalid authorization parameter")
	}

	return requesterID, nil
}

// respondTransition maps a transition outcome onto the HTTP contract:
// success responds 200 with no body, unknown orders respond 404, stale or
// invalid transitions respond 400 and authorization denials respond 403.
func respondTransition(ctx echo.Context, outcome commands.TransitionOutcome) error {
	switch outcome.Kind() {
	case commands.OutcomeSuccess:
		return ctx.NoContent(http.StatusOK)
	case commands.OutcomeNotFound:
		return respondError(ctx, http.StatusNotFound, "Order not found")
	case commands.OutcomeInvalidPreviousState:
		return respondError(ctx, http.StatusBadRequest, outcome.Reason())
	case commands.OutcomeValidationFailed:
		return respondError(ctx, http.StatusBadRequest, outcome.Reason())
	case commands.OutcomeUnauthorized:
		return respondError(ctx, http.StatusForbidden, outcome.Reason())
	default:
		return respondError(ctx, http.StatusInternalServerError, "Unexpected transition outcome")
	}
}

func respondError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{
		Code:    int32(code),
		Message: message,
	})
}
