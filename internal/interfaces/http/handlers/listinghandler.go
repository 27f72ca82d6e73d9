package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmgate/internal/application/listing/usecases"
	"farmgate/internal/interfaces/http/middleware"
	"farmgate/internal/shared/logger"
	"farmgate/internal/shared/utils"
)

type ListingHandler struct {
	createListingUC createListingUseCase
	getListingUC    getListingUseCase
	listListingsUC  listListingsUseCase
	updateListingUC updateListingUseCase
	delistListingUC delistListingUseCase
	logger          logger.Interface
}

func NewListingHandler(
	createListingUC createListingUseCase,
	getListingUC getListingUseCase,
	listListingsUC listListingsUseCase,
	updateListingUC updateListingUseCase,
	delistListingUC delistListingUseCase,
) *ListingHandler {
	return &ListingHandler{
		createListingUC: createListingUC,
		getListingUC:    getListingUC,
		listListingsUC:  listListingsUC,
		updateListingUC: updateListingUC,
		delistListingUC: delistListingUC,
		logger:          logger.NewLogger(),
	}
}

type CreateListingRequest struct {
	Title            string   `json:"title" binding:"required,max=200"`
	Description      string   `json:"description" binding:"max=10000"`
	Location         string   `json:"location" binding:"required,max=200"`
	AreaAcres        float64  `json:"area_acres" binding:"required,gt=0"`
	MonthlyRentCents int64    `json:"monthly_rent_cents" binding:"required,min=1"`
	Photos           []string `json:"photos" binding:"max=20,dive,url"`
}

// UpdateListingRequest replaces the editable fields wholesale (PUT
// semantics), matching Listing.UpdateDetails.
type UpdateListingRequest struct {
	Title            string `json:"title" binding:"required,max=200"`
	Description      string `json:"description" binding:"max=10000"`
	Location         string `json:"location" binding:"required,max=200"`
	MonthlyRentCents int64  `json:"monthly_rent_cents" binding:"required,min=1"`
}

func (h *ListingHandler) CreateListing(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create listing", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateListingCommand{
		OwnerID:          middleware.ActorID(c),
		Title:            req.Title,
		Description:      req.Description,
		Location:         req.Location,
		AreaAcres:        req.AreaAcres,
		MonthlyRentCents: req.MonthlyRentCents,
		Photos:           req.Photos,
	}

	result, err := h.createListingUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "listing created")
}

func (h *ListingHandler) GetListing(c *gin.Context) {
	listingID, err := utils.ParseIDParam(c, "id", "listing")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getListingUC.Execute(c.Request.Context(), listingID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "listing retrieved", result)
}

func (h *ListingHandler) ListListings(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	query := usecases.ListListingsQuery{
		Page:     page,
		PageSize: pageSize,
	}

	if raw := c.Query("owner_id"); raw != "" {
		id, err := utils.ParseQueryID(c, "owner_id")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		query.OwnerID = &id
	}
	if status := c.Query("status"); status != "" {
		query.Status = &status
	}
	if location := c.Query("location"); location != "" {
		query.Location = &location
	}

	listings, total, err := h.listListingsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, listings, total, page, pageSize, "listings retrieved")
}

func (h *ListingHandler) UpdateListing(c *gin.Context) {
	listingID, err := utils.ParseIDParam(c, "id", "listing")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update listing", "error", err, "listing_id", listingID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateListingCommand{
		ListingID:        listingID,
		ActorID:          middleware.ActorID(c),
		IsAdmin:          middleware.IsAdmin(c),
		Title:            req.Title,
		Description:      req.Description,
		Location:         req.Location,
		MonthlyRentCents: req.MonthlyRentCents,
	}

	result, err := h.updateListingUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "listing updated", result)
}

func (h *ListingHandler) DelistListing(c *gin.Context) {
	listingID, err := utils.ParseIDParam(c, "id", "listing")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DelistListingCommand{
		ListingID: listingID,
		ActorID:   middleware.ActorID(c),
		IsAdmin:   middleware.IsAdmin(c),
	}

	result, err := h.delistListingUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "listing delisted", result)
}
