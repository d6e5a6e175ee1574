// Package http exposes the shipment operation surface over echo.
// Handlers translate JSON requests into commands and queries, and map the
// error taxonomy onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createShipmentHandler    commands.CreateShipmentCommandHandler
	scheduleShipmentHandler  commands.ScheduleShipmentCommandHandler
	cancelShipmentHandler    commands.CancelShipmentCommandHandler
	trackShipmentHandler     queries.TrackShipmentQueryHandler
	getShipmentStatusHandler queries.GetShipmentStatusQueryHandler
	getAllShipmentsHandler   queries.GetAllShipmentsQueryHandler
	getCarrierOptionsHandler queries.GetCarrierOptionsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	scheduleShipmentHandler commands.ScheduleShipmentCommandHandler,
	cancelShipmentHandler commands.CancelShipmentCommandHandler,
	trackShipmentHandler queries.TrackShipmentQueryHandler,
	getShipmentStatusHandler queries.GetShipmentStatusQueryHandler,
	getAllShipmentsHandler queries.GetAllShipmentsQueryHandler,
	getCarrierOptionsHandler queries.GetCarrierOptionsQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:    createShipmentHandler,
		scheduleShipmentHandler:  scheduleShipmentHandler,
		cancelShipmentHandler:    cancelShipmentHandler,
		trackShipmentHandler:     trackShipmentHandler,
		getShipmentStatusHandler: getShipmentStatusHandler,
		getAllShipmentsHandler:   getAllShipmentsHandler,
		getCarrierOptionsHandler: getCarrierOptionsHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/shipments", s.CreateShipment)
	api.POST("/shipments/schedule", s.ScheduleShipment)
	api.POST("/shipments/:id/cancel", s.CancelShipment)
	api.GET("/shipments", s.GetShipments)
	api.GET("/tracking", s.TrackShipment)
	api.GET("/tracking/status", s.GetShipmentStatus)
	api.GET("/carriers", s.GetCarrierOptions)
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateShipmentRequest is the POST /shipments body.
type CreateShipmentRequest struct {
	OrderID    string `json:"orderId"`
	DeviceID   string `json:"deviceId"`
	DeviceName string `json:"deviceName"`
}

// ScheduleShipmentRequest is the POST /shipments/schedule body.
type ScheduleShipmentRequest struct {
	OrderID string `json:"orderId"`
	Carrier string `json:"carrier"`
}

// CancelShipmentResponse reports the outcome of a cancellation.
type CancelShipmentResponse struct {
	Success bool `json:"success"`
}

// TrackingEventResponse is one tracking history entry.
type TrackingEventResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location"`
	Note      string    `json:"note"`
}

// ShipmentResponse is the shipment read model on the wire.
type ShipmentResponse struct {
	ID                    string                  `json:"id"`
	OrderID               string                  `json:"orderId"`
	DeviceID              string                  `json:"deviceId"`
	DeviceName            string                  `json:"deviceName"`
	Carrier               string                  `json:"carrier"`
	CarrierDisplayName    string                  `json:"carrierDisplayName"`
	TrackingNumber        string                  `json:"trackingNumber"`
	Status                string                  `json:"status"`
	EstimatedDeliveryTime time.Time               `json:"estimatedDeliveryTime"`
	ActualDeliveryTime    *time.Time              `json:"actualDeliveryTime,omitempty"`
	Cost                  int                     `json:"cost"`
	Distance              int                     `json:"distance"`
	CreatedAt             time.Time               `json:"createdAt"`
	UpdatedAt             time.Time               `json:"updatedAt"`
	Events                []TrackingEventResponse `json:"events"`
}

// TrackShipmentResponse is the tracking history on the wire.
type TrackShipmentResponse struct {
	TrackingNumber string                  `json:"trackingNumber"`
	Carrier        string                  `json:"carrier"`
	Known          bool                    `json:"known"`
	Events         []TrackingEventResponse `json:"events"`
}

// ShipmentStatusResponse is the status lookup result on the wire.
type ShipmentStatusResponse struct {
	Status string `json:"status"`
	Found  bool   `json:"found"`
}

// CarrierOptionResponse is one selectable carrier offer on the wire.
type CarrierOptionResponse struct {
	Carrier       string  `json:"carrier"`
	DisplayName   string  `json:"displayName"`
	Icon          string  `json:"icon"`
	Description   string  `json:"description"`
	BasePrice     int     `json:"basePrice"`
	EstimatedTime string  `json:"estimatedTime"`
	Rating        float64 `json:"rating"`
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var request CreateShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateShipmentCommand(request.OrderID, request.DeviceID, request.DeviceName)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toShipmentResponse(created))
}

// ScheduleShipment handles POST /api/v1/shipments/schedule.
func (s *Server) ScheduleShipment(ctx echo.Context) error {
	var request ScheduleShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	chosen, err := carrier.FromString(request.Carrier)
	if err != nil {
		return badRequest(ctx, "Unknown carrier: "+request.Carrier)
	}

	cmd, err := commands.NewScheduleShipmentCommand(request.OrderID, chosen)
	if err != nil {
		return badRequest(ctx, "Invalid schedule data: "+err.Error())
	}

	scheduled, err := s.scheduleShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(scheduled))
}

// CancelShipment handles POST /api/v1/shipments/:id/cancel.
func (s *Server) CancelShipment(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	cmd, err := commands.NewCancelShipmentCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid cancel data: "+err.Error())
	}

	ok, err := s.cancelShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CancelShipmentResponse{Success: ok})
}

// GetShipments handles GET /api/v1/shipments.
func (s *Server) GetShipments(ctx echo.Context) error {
	shipments, err := s.getAllShipmentsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetAllShipmentsQuery(),
	)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]ShipmentResponse, 0, len(shipments))
	for _, model := range shipments {
		response = append(response, toShipmentResponseFromReadModel(model))
	}

	return ctx.JSON(http.StatusOK, response)
}

// TrackShipment handles GET /api/v1/tracking.
func (s *Server) TrackShipment(ctx echo.Context) error {
	trackingNumber := ctx.QueryParam("trackingNumber")
	chosen, err := carrier.FromString(ctx.QueryParam("carrier"))
	if err != nil {
		return badRequest(ctx, "Unknown carrier: "+ctx.QueryParam("carrier"))
	}

	query, err := queries.NewTrackShipmentQuery(trackingNumber, chosen)
	if err != nil {
		return badRequest(ctx, "Invalid tracking request: "+err.Error())
	}

	history, err := s.trackShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := TrackShipmentResponse{
		TrackingNumber: history.TrackingNumber,
		Carrier:        history.Carrier.String(),
		Known:          history.Known,
		Events:         make([]TrackingEventResponse, 0, len(history.Events)),
	}
	for _, event := range history.Events {
		response.Events = append(response.Events, TrackingEventResponse{
			Timestamp: event.Timestamp,
			Location:  event.Location,
			Note:      event.Note,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipmentStatus handles GET /api/v1/tracking/status.
func (s *Server) GetShipmentStatus(ctx echo.Context) error {
	trackingNumber := ctx.QueryParam("trackingNumber")
	chosen, err := carrier.FromString(ctx.QueryParam("carrier"))
	if err != nil {
		return badRequest(ctx, "Unknown carrier: "+ctx.QueryParam("carrier"))
	}

	query, err := queries.NewGetShipmentStatusQuery(trackingNumber, chosen)
	if err != nil {
		return badRequest(ctx, "Invalid status request: "+err.Error())
	}

	status, err := s.getShipmentStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShipmentStatusResponse{
		Status: status.Status.String(),
		Found:  status.Found,
	})
}

// GetCarrierOptions handles GET /api/v1/carriers.
func (s *Server) GetCarrierOptions(ctx echo.Context) error {
	options, err := s.getCarrierOptionsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetCarrierOptionsQuery(),
	)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]CarrierOptionResponse, 0, len(options))
	for _, option := range options {
		response = append(response, CarrierOptionResponse{
			Carrier:       option.Carrier.String(),
			DisplayName:   option.DisplayName,
			Icon:          option.Icon,
			Description:   option.Description,
			BasePrice:     option.BasePrice,
			EstimatedTime: option.EstimatedTime,
			Rating:        option.Rating,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// toShipmentResponse maps a shipment aggregate onto the wire model.
func toShipmentResponse(record *shipment.Shipment) ShipmentResponse {
	events := record.TrackingEvents()
	response := ShipmentResponse{
		ID:                    record.ID().String(),
		OrderID:               record.OrderID(),
		DeviceID:              record.DeviceID(),
		DeviceName:            record.DeviceName(),
		Carrier:               record.Carrier().String(),
		CarrierDisplayName:    record.CarrierName(),
		TrackingNumber:        record.TrackingNumber(),
		Status:                record.Status().String(),
		EstimatedDeliveryTime: record.EstimatedDeliveryTime(),
		ActualDeliveryTime:    record.ActualDeliveryTime(),
		Cost:                  record.Cost(),
		Distance:              record.Distance(),
		CreatedAt:             record.CreatedAt(),
		UpdatedAt:             record.UpdatedAt(),
		Events:                make([]TrackingEventResponse, 0, len(events)),
	}
	for _, event := range events {
		response.Events = append(response.Events, TrackingEventResponse{
			Timestamp: event.Timestamp(),
			Location:  event.Location(),
			Note:      event.Note(),
		})
	}

	return response
}

// toShipmentResponseFromReadModel maps a listing read model onto the wire
// model.
func toShipmentResponseFromReadModel(model queries.GetAllShipmentsQueryResponse) ShipmentResponse {
	response := ShipmentResponse{
		ID:                    model.ID.String(),
		OrderID:               model.OrderID,
		DeviceID:              model.DeviceID,
		DeviceName:            model.DeviceName,
		Carrier:               model.Carrier.String(),
		CarrierDisplayName:    model.CarrierName,
		TrackingNumber:        model.TrackingNumber,
		Status:                model.Status.String(),
		EstimatedDeliveryTime: model.EstimatedDeliveryTime,
		ActualDeliveryTime:    model.ActualDeliveryTime,
		Cost:                  model.Cost,
		Distance:              model.Distance,
		CreatedAt:             model.CreatedAt,
		UpdatedAt:             model.UpdatedAt,
		Events:                make([]TrackingEventResponse, 0, len(model.Events)),
	}
	for _, event := range model.Events {
		response.Events = append(response.Events, TrackingEventResponse{
			Timestamp: event.Timestamp,
			Location:  event.Location,
			Note:      event.Note,
		})
	}

	return response
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates the error taxonomy onto HTTP status codes.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, carrier.ErrUnknownCarrier),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}
