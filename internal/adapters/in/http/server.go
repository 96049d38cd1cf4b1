// Package http exposes the workshop's delivery-note API over echo.
// Handlers translate JSON requests into commands and queries and map
// domain error codes to HTTP statuses.
package http

import (
	"errors"
	"net/http"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/pricing"
	"workshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createNoteHandler           commands.CreateDeliveryNoteCommandHandler
	addItemHandler              commands.AddLineItemCommandHandler
	removeItemHandler           commands.RemoveLineItemCommandHandler
	updateItemPriceHandler      commands.UpdateItemPriceCommandHandler
	validateNoteHandler         commands.ValidateDeliveryNoteCommandHandler
	finalizeNoteHandler         commands.FinalizeDeliveryNoteCommandHandler
	reopenNoteHandler           commands.ReopenDeliveryNoteCommandHandler
	createProfileHandler        commands.CreatePricingProfileCommandHandler
	updateRatesHandler          commands.UpdatePricingRatesCommandHandler
	replaceSpecialPricesHandler commands.ReplaceSpecialPricesCommandHandler

	// Query handlers
	getNoteHandler             queries.GetDeliveryNoteQueryHandler
	getUnfinalizedNotesHandler queries.GetUnfinalizedDeliveryNotesQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createNoteHandler commands.CreateDeliveryNoteCommandHandler,
	addItemHandler commands.AddLineItemCommandHandler,
	removeItemHandler commands.RemoveLineItemCommandHandler,
	updateItemPriceHandler commands.UpdateItemPriceCommandHandler,
	validateNoteHandler commands.ValidateDeliveryNoteCommandHandler,
	finalizeNoteHandler commands.FinalizeDeliveryNoteCommandHandler,
	reopenNoteHandler commands.ReopenDeliveryNoteCommandHandler,
	createProfileHandler commands.CreatePricingProfileCommandHandler,
	updateRatesHandler commands.UpdatePricingRatesCommandHandler,
	replaceSpecialPricesHandler commands.ReplaceSpecialPricesCommandHandler,
	getNoteHandler queries.GetDeliveryNoteQueryHandler,
	getUnfinalizedNotesHandler queries.GetUnfinalizedDeliveryNotesQueryHandler,
) *Server {
	return &Server{
		createNoteHandler:           createNoteHandler,
		addItemHandler:              addItemHandler,
		removeItemHandler:           removeItemHandler,
		updateItemPriceHandler:      updateItemPriceHandler,
		validateNoteHandler:         validateNoteHandler,
		finalizeNoteHandler:         finalizeNoteHandler,
		reopenNoteHandler:           reopenNoteHandler,
		createProfileHandler:        createProfileHandler,
		updateRatesHandler:          updateRatesHandler,
		replaceSpecialPricesHandler: replaceSpecialPricesHandler,
		getNoteHandler:              getNoteHandler,
		getUnfinalizedNotesHandler:  getUnfinalizedNotesHandler,
	}
}

// RegisterRoutes mounts every API endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/delivery-notes", s.CreateDeliveryNote)
	api.GET("/delivery-notes", s.GetUnfinalizedDeliveryNotes)
	api.GET("/delivery-notes/:noteId", s.GetDeliveryNote)
	api.POST("/delivery-notes/:noteId/items", s.AddLineItem)
	api.DELETE("/delivery-notes/:noteId/items/:itemId", s.RemoveLineItem)
	api.PUT("/delivery-notes/:noteId/items/:itemId/price", s.UpdateItemPrice)
	api.POST("/delivery-notes/:noteId/validate", s.ValidateDeliveryNote)
	api.POST("/delivery-notes/:noteId/finalize", s.FinalizeDeliveryNote)
	api.POST("/delivery-notes/:noteId/reopen", s.ReopenDeliveryNote)

	api.POST("/pricing-profiles", s.CreatePricingProfile)
	api.PUT("/pricing-profiles/:profileId/rates", s.UpdatePricingRates)
	api.PUT("/pricing-profiles/:profileId/special-prices", s.ReplaceSpecialPrices)
}

// CreateDeliveryNote handles POST /api/v1/delivery-notes.
func (s *Server) CreateDeliveryNote(ctx echo.Context) error {
	var body NewDeliveryNote
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	noteID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryNoteCommand(noteID, customerID, body.CustomerName)
	if err != nil {
		return badRequest(ctx, "Invalid note data: "+err.Error())
	}

	if err = s.createNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, DeliveryNoteCreated{ID: noteID.String()})
}

// AddLineItem handles POST /api/v1/delivery-notes/:noteId/items.
func (s *Server) AddLineItem(ctx echo.Context) error {
	noteID, err := pathUUID(ctx, "noteId")
	if err != nil {
		return badRequest(ctx, "Invalid note id")
	}

	var body NewLineItem
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddLineItemCommand(
		noteID,
		itemID,
		body.Name,
		body.Color,
		body.Quantity,
		body.Length,
		body.Area,
		body.Thickness,
	)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if err = s.addItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, LineItemCreated{ID: itemID.String()})
}

// RemoveLineItem handles DELETE /api/v1/delivery-notes/:noteId/items/:itemId.
func (s *Server) RemoveLineItem(ctx echo.Context) error {
	noteID, err := pathUUID(ctx, "noteId")
	if err != nil {
		return badRequest(ctx, "Invalid note id")
	}

	itemID, err := pathUUID(ctx, "itemId")
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewRemoveLineItemCommand(noteID, itemID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateItemPrice handles PUT /api/v1/delivery-notes/:noteId/items/:itemId/price.
func (s *Server) UpdateItemPrice(ctx echo.Context) error {
	noteID, err := pathUUID(ctx, "noteId")
	if err != nil {
		return badRequest(ctx, "Invalid note id")
	}

	itemID, err := pathUUID(ctx, "itemId")
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var body ItemPrice
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoney(body.Price)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewUpdateItemPriceCommand(noteID, itemID, price)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.updateItemPriceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ValidateDeliveryNote handles POST /api/v1/delivery-notes/:noteId/validate.
func (s *Server) ValidateDeliveryNote(ctx echo.Context) error {
	noteID, err := pathUUID(ctx, "noteId")
	if err != nil {
		return badRequest(ctx, "Invalid note id")
	}

	cmd, err := commands.NewValidateDeliveryNoteCommand(noteID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.validateNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinalizeDeliveryNote handles POST /api/v1/delivery-notes/:noteId/finalize.
func (s *Server) FinalizeDeliveryNote(ctx echo.Context) error {
	noteID, err := pathUUID(ctx, "noteId")
	if err != nil {
		return badRequest(ctx, "Invalid note id")
	}

	cmd, err := commands.NewFinalizeDeliveryNoteCommand(noteID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.finalizeNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReopenDeliveryNote handles POST /api/v1/delivery-notes/:noteId/reopen.
func (s *Server) ReopenDeliveryNote(ctx echo.Context) error {
	noteID, err := pathUUID(ctx, "noteId")
	if err != nil {
		return badRequest(ctx, "Invalid note id")
	}

	cmd, err := commands.NewReopenDeliveryNoteCommand(noteID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.reopenNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryNote handles GET /api/v1/delivery-notes/:noteId.
func (s *Server) GetDeliveryNote(ctx echo.Context) error {
	noteID, err := pathUUID(ctx, "noteId")
	if err != nil {
		return badRequest(ctx, "Invalid note id")
	}

	query, err := queries.NewGetDeliveryNoteQuery(noteID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	note, err := s.getNoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	items := make([]LineItem, len(note.Items))
	for i, item := range note.Items {
		items[i] = LineItem{
			ID:         item.ID.String(),
			Name:       item.Name,
			Color:      item.ColorValue,
			ColorType:  item.ColorType,
			Quantity:   item.Quantity,
			Length:     item.Length,
			Area:       item.Area,
			Thickness:  item.Thickness,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		}
	}

	return ctx.JSON(http.StatusOK, DeliveryNote{
		ID:           note.ID.String(),
		Number:       note.Number,
		CustomerID:   note.CustomerID.String(),
		CustomerName: note.CustomerName,
		Date:         note.Date,
		Status:       note.Status,
		Notes:        note.Notes,
		Items:        items,
		TotalAmount:  note.TotalAmount,
	})
}

// GetUnfinalizedDeliveryNotes handles GET /api/v1/delivery-notes.
func (s *Server) GetUnfinalizedDeliveryNotes(ctx echo.Context) error {
	query := queries.NewGetUnfinalizedDeliveryNotesQuery()

	notes, err := s.getUnfinalizedNotesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]DeliveryNoteSummary, len(notes))
	for i, note := range notes {
		response[i] = DeliveryNoteSummary{
			ID:           note.ID.String(),
			Number:       note.Number,
			CustomerName: note.CustomerName,
			Date:         note.Date,
			Status:       note.Status,
			ItemCount:    note.ItemCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePricingProfile handles POST /api/v1/pricing-profiles.
func (s *Server) CreatePricingProfile(ctx echo.Context) error {
	var body NewPricingProfile
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	rates, err := moneyTriple(body.LinearRate, body.AreaRate, body.MinimumCharge)
	if err != nil {
		return domainError(ctx, err)
	}

	specialPrices, err := specialPricesFromBody(body.SpecialPrices)
	if err != nil {
		return domainError(ctx, err)
	}

	profileID := kernel.NewUUID()
	cmd, err := commands.NewCreatePricingProfileCommand(
		profileID,
		customerID,
		rates[0],
		rates[1],
		rates[2],
		specialPrices,
	)
	if err != nil {
		return badRequest(ctx, "Invalid profile data: "+err.Error())
	}

	if err = s.createProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PricingProfileCreated{ID: profileID.String()})
}

// UpdatePricingRates handles PUT /api/v1/pricing-profiles/:profileId/rates.
func (s *Server) UpdatePricingRates(ctx echo.Context) error {
	profileID, err := pathUUID(ctx, "profileId")
	if err != nil {
		return badRequest(ctx, "Invalid profile id")
	}

	var body PricingRates
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	rates, err := moneyTriple(body.LinearRate, body.AreaRate, body.MinimumCharge)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewUpdatePricingRatesCommand(profileID, rates[0], rates[1], rates[2])
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.updateRatesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReplaceSpecialPrices handles PUT /api/v1/pricing-profiles/:profileId/special-prices.
func (s *Server) ReplaceSpecialPrices(ctx echo.Context) error {
	profileID, err := pathUUID(ctx, "profileId")
	if err != nil {
		return badRequest(ctx, "Invalid profile id")
	}

	var body SpecialPrices
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	specialPrices, err := specialPricesFromBody(body.SpecialPrices)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewReplaceSpecialPricesCommand(profileID, specialPrices)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.replaceSpecialPricesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// moneyTriple builds the three pricing Money values, failing on the first
// negative input.
func moneyTriple(linearRate, areaRate, minimumCharge float64) ([3]kernel.Money, error) {
	var rates [3]kernel.Money

	for i, amount := range []float64{linearRate, areaRate, minimumCharge} {
		money, err := kernel.NewMoney(amount)
		if err != nil {
			return rates, err
		}
		rates[i] = money
	}

	return rates, nil
}

// specialPricesFromBody converts override bodies into domain value objects.
func specialPricesFromBody(body []SpecialPrice) ([]pricing.SpecialPrice, error) {
	specialPrices := make([]pricing.SpecialPrice, 0, len(body))
	for _, sp := range body {
		price, err := kernel.NewMoney(sp.Price)
		if err != nil {
			return nil, err
		}

		specialPrice, err := pricing.NewSpecialPrice(sp.Name, price)
		if err != nil {
			return nil, err
		}
		specialPrices = append(specialPrices, specialPrice)
	}

	return specialPrices, nil
}

// badRequest answers with a 400 and the uniform error body.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps an application error to an HTTP response. Domain rule
// violations carry a machine-readable code that clients switch on; the code
// decides the status class.
func domainError(ctx echo.Context, err error) error {
	if code, ok := errs.DomainCodeOf(err); ok {
		return ctx.JSON(statusForCode(code), Error{
			Code:    statusForCode(code),
			Status:  string(code),
			Message: err.Error(),
		})
	}

	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	var invalid *errs.ValueIsInvalidError
	if errors.As(err, &invalid) {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	})
}

// statusForCode maps domain error codes to HTTP statuses: lifecycle
// conflicts are 409, unmet validation preconditions are 422, missing items
// are 404, and bad input values are 400.
func statusForCode(code errs.ErrorCode) int {
	switch code {
	case errs.CodeNotEditable, errs.CodeInvalidStatus, errs.CodeAlreadyFinalized:
		return http.StatusConflict
	case errs.CodeWithoutItems, errs.CodeItemsWithoutPrice, errs.CodeWithoutCustomer:
		return http.StatusUnprocessableEntity
	case errs.CodeItemNotFound:
		return http.StatusNotFound
	case errs.CodeInvalidID, errs.CodeInvalidName, errs.CodeInvalidQuantity,
		errs.CodeNegativePrice, errs.CodeInvalidColorCode:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
