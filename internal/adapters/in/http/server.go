package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/application/usecases/commands"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/application/usecases/queries"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/order"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/shipment"
	"github.com/drakon-axiom/kit-maker-sub003/internal/generated/servers"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	issueQuoteHandler        commands.IssueQuoteCommandHandler
	recordDecisionHandler    commands.RecordCustomerDecisionCommandHandler
	renewQuoteHandler        commands.RenewQuoteCommandHandler
	recordPaymentHandler     commands.RecordPaymentCommandHandler
	advanceHandler           commands.AdvanceFulfillmentCommandHandler
	holdOrderHandler         commands.HoldOrderCommandHandler
	resumeOrderHandler       commands.ResumeOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	createBatchHandler       commands.CreateBatchCommandHandler
	startBatchStepHandler    commands.StartBatchStepCommandHandler
	completeBatchStepHandler commands.CompleteBatchStepCommandHandler
	purchaseLabelHandler     commands.PurchaseLabelCommandHandler
	voidLabelHandler         commands.VoidLabelCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	getOpenOrdersHandler    queries.GetOpenOrdersQueryHandler
	getBatchProgressHandler queries.GetBatchProgressQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	issueQuoteHandler commands.IssueQuoteCommandHandler,
	recordDecisionHandler commands.RecordCustomerDecisionCommandHandler,
	renewQuoteHandler commands.RenewQuoteCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	advanceHandler commands.AdvanceFulfillmentCommandHandler,
	holdOrderHandler commands.HoldOrderCommandHandler,
	resumeOrderHandler commands.ResumeOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createBatchHandler commands.CreateBatchCommandHandler,
	startBatchStepHandler commands.StartBatchStepCommandHandler,
	completeBatchStepHandler commands.CompleteBatchStepCommandHandler,
	purchaseLabelHandler commands.PurchaseLabelCommandHandler,
	voidLabelHandler commands.VoidLabelCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler,
	getBatchProgressHandler queries.GetBatchProgressQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		issueQuoteHandler:        issueQuoteHandler,
		recordDecisionHandler:    recordDecisionHandler,
		renewQuoteHandler:        renewQuoteHandler,
		recordPaymentHandler:     recordPaymentHandler,
		advanceHandler:           advanceHandler,
		holdOrderHandler:         holdOrderHandler,
		resumeOrderHandler:       resumeOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		createBatchHandler:       createBatchHandler,
		startBatchStepHandler:    startBatchStepHandler,
		completeBatchStepHandler: completeBatchStepHandler,
		purchaseLabelHandler:     purchaseLabelHandler,
		voidLabelHandler:         voidLabelHandler,
		getOrderHandler:          getOrderHandler,
		getOpenOrdersHandler:     getOpenOrdersHandler,
		getBatchProgressHandler:  getBatchProgressHandler,
	}
}

// errorJSON maps domain errors to HTTP status codes. Validation problems
// are the client's fault, conflicts mean the request raced another writer
// or asked for an impossible transition, and upstream failures surface as
// a bad gateway.
func errorJSON(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, errs.ErrQuoteExpired):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrRateLimited):
		code = http.StatusTooManyRequests
	case errors.Is(err, errs.ErrUpstreamFailure):
		code = http.StatusBadGateway
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequestJSON(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func toKernelUUID(ctx echo.Context, id openapi_types.UUID) (kernel.UUID, bool) {
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		_ = badRequestJSON(ctx, "Invalid identifier")
		return kernel.UUID{}, false
	}
	return parsed, true
}

func shipmentAddress(a servers.Address) shipment.Address {
	addr := shipment.Address{
		Name:       a.Name,
		Line1:      a.Line1,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
	if a.Line2 != nil {
		addr.Line2 = *a.Line2
	}
	if a.Phone != nil {
		addr.Phone = *a.Phone
	}
	return addr
}

func shipmentParcel(p servers.Parcel) shipment.Parcel {
	return shipment.Parcel{
		LengthCm: float64(p.LengthCm),
		WidthCm:  float64(p.WidthCm),
		HeightCm: float64(p.HeightCm),
		WeightG:  float64(p.WeightG),
	}
}

// CreateOrder handles POST /api/v1/orders - creates a draft order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	lines := make([]commands.LineInput, 0, len(newOrder.Lines))
	for _, line := range newOrder.Lines {
		lines = append(lines, commands.LineInput{
			Product:        line.Product,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
		})
	}

	var brandID *kernel.UUID
	if newOrder.BrandId != nil {
		parsed, ok := toKernelUUID(ctx, *newOrder.BrandId)
		if !ok {
			return nil
		}
		brandID = &parsed
	}

	internalSource := newOrder.InternalSource != nil && *newOrder.InternalSource
	depositRequired := newOrder.DepositCents != nil && *newOrder.DepositCents > 0
	var depositCents int64
	if newOrder.DepositCents != nil {
		depositCents = *newOrder.DepositCents
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), newOrder.Code, brandID, internalSource,
		lines, depositRequired, depositCents)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetOpenOrders handles GET /api/v1/orders - lists orders still in flight.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	query := queries.NewGetOpenOrdersQuery()

	orders, err := s.getOpenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = servers.OrderSummary{
			Id:             o.ID.Bytes(),
			Code:           o.Code,
			Status:         o.Status,
			QuoteExpiresAt: o.QuoteExpiresAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, ok := toKernelUUID(ctx, orderId)
	if !ok {
		return nil
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	lines := make([]servers.OrderLine, len(result.Lines))
	for i, line := range result.Lines {
		lines[i] = servers.OrderLine{
			Product:        line.Product,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
			TotalCents:     line.TotalCents,
		}
	}

	response := servers.Order{
		Id:             result.ID.Bytes(),
		Code:           result.Code,
		Status:         result.Status,
		QuoteExpiresAt: result.QuoteExpiresAt,
		Lines:          lines,
		SubtotalCents:  result.SubtotalCents,
		Version:        result.Version,
	}
	if result.DepositRequired {
		response.DepositRequired = &result.DepositRequired
		response.DepositCents = &result.DepositCents
		response.DepositStatus = &result.DepositStatus
	}

	return ctx.JSON(http.StatusOK, response)
}

// IssueQuote handles POST /api/v1/orders/{orderId}/quote.
func (s *Server) IssueQuote(ctx echo.Context, orderId openapi_types.UUID) error {
	id, ok := toKernelUUID(ctx, orderId)
	if !ok {
		return nil
	}

	var body servers.IssueQuoteRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	days := 0
	if body.ExpirationDays != nil {
		days = *body.ExpirationDays
	}

	cmd, err := commands.NewIssueQuoteCommand(id, days)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.issueQuoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordQuoteDecision handles POST /api/v1/orders/{orderId}/quote/decision.
func (s *Server) RecordQuoteDecision(ctx echo.Context, orderId openapi_types.UUID) error {
	id, ok := toKernelUUID(ctx, orderId)
	if !ok {
		return nil
	}

	var body servers.QuoteDecisionRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	var decision order.ActionType
	switch body.Decision {
	case servers.Accept:
		decision = order.ActionAccept
	case servers.Reject:
		decision = order.ActionReject
	default:
		return badRequestJSON(ctx, "Decision must be accept or reject")
	}

	var notes string
	if body.Notes != nil {
		notes = *body.Notes
	}

	var actorID *kernel.UUID
	if body.ActorId != nil {
		parsed, ok := toKernelUUID(ctx, *body.ActorId)
		if !ok {
			return nil
		}
		actorID = &parsed
	}

	cmd, err := commands.NewRecordCustomerDecisionCommand(id, decision, notes, actorID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.recordDecisionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RenewQuote handles POST /api/v1/orders/{orderId}/quote/renewal.
func (s *Server) RenewQuote(ctx echo.Context, orderId openapi_types.UUID) error {
	id, ok := toKernelUUID(ctx, orderId)
	if !ok {
		return nil
	}

	var body servers.RenewQuoteRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	days := 0
	if body.ExpirationDays != nil {
		days = *body.ExpirationDays
	}

	var actorID *kernel.UUID
	if body.ActorId != nil {
		parsed, ok := toKernelUUID(ctx, *body.ActorId)
		if !ok {
			return nil
		}
		actorID = &parsed
	}

	cmd, err := commands.NewRenewQuoteCommand(id, days, actorID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.renewQuoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPayment handles POST /api/v1/orders/{orderId}/payments.
func (s *Server) RecordPayment(ctx echo.Context, orderId openapi_types.UUID) error {
	id, ok := toKernelUUID(ctx, orderId)
	if !ok {
		return nil
	}

	var body servers.PaymentRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	var kind commands.PaymentKind
	switch body.Kind {
	case servers.DepositPartial:
		kind = commands.PaymentDepositPartial
	case servers.Deposit:
		kind = commands.PaymentDeposit
	case servers.Final:
		kind = commands.PaymentFinal
	default:
		return badRequestJSON(ctx, "Unknown payment kind")
	}

	cmd, err := commands.NewRecordPaymentCommand(id, kind)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceFulfillment handles POST /api/v1/orders/{orderId}/advance.
func (s *Server) AdvanceFulfillment(ctx echo.Context, orderId openapi_types.UUID) error {
	id, ok := toKernelUUID(ctx, orderId)
	if !ok {
		return nil
	}

	cmd, err := commands.NewAdvanceFulfillmentCommand(id)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.advanceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// HoldOrder handles POST /api/v1/orders/{orderId}/hold.
func (s *Server) HoldOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, ok := toKernelUUID(ctx, orderId)
	if !ok {
		return nil
	}

	var body servers.HoldRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	var target order.Status
	switch body.Reason {
	case servers.Customer:
		target = order.OnHoldCustomer
	case servers.Internal:
		target = order.OnHoldInternal
	case servers.Materials:
		target = order.OnHoldMaterials
	default:
		return badRequestJSON(ctx, "Unknown hold reason")
	}

	cmd, err := commands.NewHoldOrderCommand(id, target)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.holdOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResumeOrder handles POST /api/v1/orders/{orderId}/resume.
func (s *Server) ResumeOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, ok := toKernelUUID(ctx, orderId)
	if !ok {
		return nil
	}

	cmd, err := commands.NewResumeOrderCommand(id)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.resumeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, ok := toKernelUUID(ctx, orderId)
	if !ok {
		return nil
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateBatch handles POST /api/v1/batches.
func (s *Server) CreateBatch(ctx echo.Context) error {
	var newBatch servers.NewBatch
	if err := ctx.Bind(&newBatch); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	orderID, ok := toKernelUUID(ctx, newBatch.OrderId)
	if !ok {
		return nil
	}

	priority := 0
	if newBatch.Priority != nil {
		priority = *newBatch.Priority
	}

	cmd, err := commands.NewCreateBatchCommand(
		kernel.NewUUID(), orderID, newBatch.PlannedQty,
		priority, newBatch.PlannedStart, newBatch.Steps)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.createBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetBatchProgress handles GET /api/v1/batches/{batchId}.
func (s *Server) GetBatchProgress(ctx echo.Context, batchId openapi_types.UUID) error {
	id, ok := toKernelUUID(ctx, batchId)
	if !ok {
		return nil
	}

	query, err := queries.NewGetBatchProgressQuery(id)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.getBatchProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	steps := make([]servers.StepProgress, len(result.Steps))
	for i, step := range result.Steps {
		steps[i] = servers.StepProgress{
			Name:        step.Name,
			Status:      step.Status,
			StartedAt:   step.StartedAt,
			CompletedAt: step.CompletedAt,
		}
	}

	return ctx.JSON(http.StatusOK, servers.BatchProgress{
		Id:         result.BatchID.Bytes(),
		OrderId:    result.OrderID.Bytes(),
		Status:     result.Status,
		PlannedQty: result.PlannedQty,
		ActiveStep: result.ActiveStep,
		DoneSteps:  result.DoneSteps,
		Steps:      steps,
	})
}

// StartBatchStep handles POST /api/v1/batches/{batchId}/steps/{stepIndex}/start.
func (s *Server) StartBatchStep(ctx echo.Context, batchId openapi_types.UUID, stepIndex int) error {
	id, ok := toKernelUUID(ctx, batchId)
	if !ok {
		return nil
	}

	cmd, err := commands.NewStartBatchStepCommand(id, stepIndex)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.startBatchStepHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteBatchStep handles POST /api/v1/batches/{batchId}/steps/{stepIndex}/complete.
func (s *Server) CompleteBatchStep(ctx echo.Context, batchId openapi_types.UUID, stepIndex int) error {
	id, ok := toKernelUUID(ctx, batchId)
	if !ok {
		return nil
	}

	cmd, err := commands.NewCompleteBatchStepCommand(id, stepIndex)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.completeBatchStepHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PurchaseShippingLabel handles POST /api/v1/orders/{orderId}/shipment/label.
func (s *Server) PurchaseShippingLabel(ctx echo.Context, orderId openapi_types.UUID) error {
	id, ok := toKernelUUID(ctx, orderId)
	if !ok {
		return nil
	}

	var body servers.PurchaseLabelRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	addr := shipmentAddress(body.Address)
	parcel := shipmentParcel(body.Parcel)

	cmd, err := commands.NewPurchaseLabelCommand(id, addr, parcel)
	if err != nil {
		return errorJSON(ctx, err)
	}

	label, err := s.purchaseLabelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := servers.Label{
		TrackingNumber: label.TrackingNumber,
		Carrier:        label.Carrier,
	}
	if label.LabelURL != "" {
		response.LabelUrl = &label.LabelURL
	}

	return ctx.JSON(http.StatusCreated, response)
}

// VoidShippingLabel handles DELETE /api/v1/orders/{orderId}/shipment/label.
func (s *Server) VoidShippingLabel(ctx echo.Context, orderId openapi_types.UUID) error {
	id, ok := toKernelUUID(ctx, orderId)
	if !ok {
		return nil
	}

	cmd, err := commands.NewVoidLabelCommand(id)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err := s.voidLabelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
