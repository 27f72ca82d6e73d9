package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmgate/internal/application/claim/usecases"
	"farmgate/internal/interfaces/http/middleware"
	"farmgate/internal/shared/logger"
	"farmgate/internal/shared/utils"
)

type ClaimHandler struct {
	submitClaimUC       submitClaimUseCase
	decideClaimUC       decideClaimUseCase
	issueHandoverOtpUC  issueHandoverOtpUseCase
	verifyHandoverOtpUC verifyHandoverOtpUseCase
	getClaimUC          getClaimUseCase
	listClaimsUC        listClaimsUseCase
	logger              logger.Interface
}

func NewClaimHandler(
	submitClaimUC submitClaimUseCase,
	decideClaimUC decideClaimUseCase,
	issueHandoverOtpUC issueHandoverOtpUseCase,
	verifyHandoverOtpUC verifyHandoverOtpUseCase,
	getClaimUC getClaimUseCase,
	listClaimsUC listClaimsUseCase,
) *ClaimHandler {
	return &ClaimHandler{
		submitClaimUC:       submitClaimUC,
		decideClaimUC:       decideClaimUC,
		issueHandoverOtpUC:  issueHandoverOtpUC,
		verifyHandoverOtpUC: verifyHandoverOtpUC,
		getClaimUC:          getClaimUC,
		listClaimsUC:        listClaimsUC,
		logger:              logger.NewLogger(),
	}
}

type SubmitClaimRequest struct {
	ListingID uint   `json:"listing_id" binding:"required"`
	Message   string `json:"message" binding:"max=2000"`
	Months    int    `json:"months" binding:"required,min=1,max=120"`
}

type DecideClaimRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

type VerifyHandoverCodeRequest struct {
	Code string `json:"code" binding:"required,len=6,numeric"`
}

func (h *ClaimHandler) SubmitClaim(c *gin.Context) {
	var req SubmitClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit claim", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SubmitClaimCommand{
		ListingID:  req.ListingID,
		ClaimantID: middleware.ActorID(c),
		Message:    req.Message,
		Months:     req.Months,
	}

	result, err := h.submitClaimUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "claim submitted")
}

func (h *ClaimHandler) DecideClaim(c *gin.Context) {
	claimID, err := utils.ParseIDParam(c, "id", "claim")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DecideClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for decide claim", "error", err, "claim_id", claimID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DecideClaimCommand{
		ClaimID: claimID,
		ActorID: middleware.ActorID(c),
		IsAdmin: middleware.IsAdmin(c),
		Approve: *req.Approve,
	}

	result, err := h.decideClaimUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "claim rejected"
	if *req.Approve {
		message = "claim approved"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}

func (h *ClaimHandler) IssueHandoverCode(c *gin.Context) {
	claimID, err := utils.ParseIDParam(c, "id", "claim")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.IssueHandoverOtpCommand{
		ClaimID: claimID,
		ActorID: middleware.ActorID(c),
		IsAdmin: middleware.IsAdmin(c),
	}

	result, err := h.issueHandoverOtpUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "handover code sent to the claimant", result)
}

func (h *ClaimHandler) VerifyHandoverCode(c *gin.Context) {
	claimID, err := utils.ParseIDParam(c, "id", "claim")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req VerifyHandoverCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for verify handover code", "error", err, "claim_id", claimID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.VerifyHandoverOtpCommand{
		ClaimID: claimID,
		ActorID: middleware.ActorID(c),
		IsAdmin: middleware.IsAdmin(c),
		Code:    req.Code,
	}

	result, err := h.verifyHandoverOtpUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "handover completed", result)
}

func (h *ClaimHandler) GetClaim(c *gin.Context) {
	claimID, err := utils.ParseIDParam(c, "id", "claim")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetClaimQuery{
		ClaimID: claimID,
		ActorID: middleware.ActorID(c),
		IsAdmin: middleware.IsAdmin(c),
	}

	result, err := h.getClaimUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "claim retrieved", result)
}

func (h *ClaimHandler) ListClaims(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	query := usecases.ListClaimsQuery{
		ActorID:     middleware.ActorID(c),
		IsAdmin:     middleware.IsAdmin(c),
		Perspective: c.Query("perspective"),
		Page:        page,
		PageSize:    pageSize,
	}

	if raw := c.Query("listing_id"); raw != "" {
		id, err := utils.ParseQueryID(c, "listing_id")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		query.ListingID = &id
	}
	if status := c.Query("status"); status != "" {
		query.Status = &status
	}

	claims, total, err := h.listClaimsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, claims, total, page, pageSize, "claims retrieved")
}
