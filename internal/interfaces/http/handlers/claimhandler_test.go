package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	claimdto "farmgate/internal/application/claim/dto"
	"farmgate/internal/application/claim/usecases"
	"farmgate/internal/interfaces/http/handlers/testutil"
	"farmgate/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockSubmitClaimUC struct {
	result *claimdto.ClaimDTO
	err    error
	gotCmd usecases.SubmitClaimCommand
	called bool
}

func (m *mockSubmitClaimUC) Execute(ctx context.Context, cmd usecases.SubmitClaimCommand) (*claimdto.ClaimDTO, error) {
	m.gotCmd = cmd
	m.called = true
	return m.result, m.err
}

type mockDecideClaimUC struct {
	result *claimdto.ClaimDTO
	err    error
	gotCmd usecases.DecideClaimCommand
}

func (m *mockDecideClaimUC) Execute(ctx context.Context, cmd usecases.DecideClaimCommand) (*claimdto.ClaimDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockIssueHandoverOtpUC struct {
	result *usecases.IssueHandoverOtpResult
	err    error
	gotCmd usecases.IssueHandoverOtpCommand
}

func (m *mockIssueHandoverOtpUC) Execute(ctx context.Context, cmd usecases.IssueHandoverOtpCommand) (*usecases.IssueHandoverOtpResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockVerifyHandoverOtpUC struct {
	result *claimdto.ClaimDTO
	err    error
	gotCmd usecases.VerifyHandoverOtpCommand
}

func (m *mockVerifyHandoverOtpUC) Execute(ctx context.Context, cmd usecases.VerifyHandoverOtpCommand) (*claimdto.ClaimDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetClaimUC struct {
	result *claimdto.ClaimDTO
	err    error
}

func (m *mockGetClaimUC) Execute(ctx context.Context, query usecases.GetClaimQuery) (*claimdto.ClaimDTO, error) {
	return m.result, m.err
}

type mockListClaimsUC struct {
	result   []*claimdto.ClaimDTO
	total    int64
	err      error
	gotQuery usecases.ListClaimsQuery
}

func (m *mockListClaimsUC) Execute(ctx context.Context, query usecases.ListClaimsQuery) ([]*claimdto.ClaimDTO, int64, error) {
	m.gotQuery = query
	return m.result, m.total, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

func testClaimDTO(status string) *claimdto.ClaimDTO {
	return &claimdto.ClaimDTO{
		ID:         5,
		ListingID:  2,
		ClaimantID: 3,
		OwnerID:    4,
		Months:     6,
		Status:     status,
	}
}

func newTestClaimHandler(
	submitUC submitClaimUseCase,
	decideUC decideClaimUseCase,
	issueUC issueHandoverOtpUseCase,
	verifyUC verifyHandoverOtpUseCase,
	getUC getClaimUseCase,
	listUC listClaimsUseCase,
) *ClaimHandler {
	return NewClaimHandler(submitUC, decideUC, issueUC, verifyUC, getUC, listUC)
}

// =====================================================================
// SubmitClaim
// =====================================================================

func TestClaimHandler_SubmitClaim_Success(t *testing.T) {
	mockUC := &mockSubmitClaimUC{result: testClaimDTO("pending")}
	handler := newTestClaimHandler(mockUC, nil, nil, nil, nil, nil)

	body := SubmitClaimRequest{ListingID: 2, Message: "keen to graze here", Months: 6}
	c, w := testutil.NewTestContext(http.MethodPost, "/claims", body)
	testutil.SetAuthContext(c, 3)

	handler.SubmitClaim(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(3), mockUC.gotCmd.ClaimantID)
	assert.Equal(t, uint(2), mockUC.gotCmd.ListingID)
	assert.Equal(t, 6, mockUC.gotCmd.Months)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestClaimHandler_SubmitClaim_MissingListingID(t *testing.T) {
	mockUC := &mockSubmitClaimUC{}
	handler := newTestClaimHandler(mockUC, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/claims", map[string]any{"months": 6})
	testutil.SetAuthContext(c, 3)

	handler.SubmitClaim(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockUC.called)
}

func TestClaimHandler_SubmitClaim_SelfClaim(t *testing.T) {
	mockUC := &mockSubmitClaimUC{err: errors.NewSelfClaimError("cannot claim your own listing")}
	handler := newTestClaimHandler(mockUC, nil, nil, nil, nil, nil)

	body := SubmitClaimRequest{ListingID: 2, Months: 6}
	c, w := testutil.NewTestContext(http.MethodPost, "/claims", body)
	testutil.SetAuthContext(c, 4)

	handler.SubmitClaim(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "cannot claim your own listing", resp.Error.Message)
}

// =====================================================================
// DecideClaim
// =====================================================================

func TestClaimHandler_DecideClaim_Approve(t *testing.T) {
	mockUC := &mockDecideClaimUC{result: testClaimDTO("approved")}
	handler := newTestClaimHandler(nil, mockUC, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/claims/5/decision", map[string]any{"approve": true})
	testutil.SetAuthContext(c, 4)
	testutil.SetURLParam(c, "id", "5")

	handler.DecideClaim(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), mockUC.gotCmd.ClaimID)
	assert.Equal(t, uint(4), mockUC.gotCmd.ActorID)
	assert.True(t, mockUC.gotCmd.Approve)
	assert.False(t, mockUC.gotCmd.IsAdmin)
}

func TestClaimHandler_DecideClaim_RejectAsAdmin(t *testing.T) {
	mockUC := &mockDecideClaimUC{result: testClaimDTO("rejected")}
	handler := newTestClaimHandler(nil, mockUC, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/claims/5/decision", map[string]any{"approve": false})
	testutil.SetAdminContext(c, 99)
	testutil.SetURLParam(c, "id", "5")

	handler.DecideClaim(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, mockUC.gotCmd.Approve)
	assert.True(t, mockUC.gotCmd.IsAdmin)
}

func TestClaimHandler_DecideClaim_MissingApprove(t *testing.T) {
	mockUC := &mockDecideClaimUC{}
	handler := newTestClaimHandler(nil, mockUC, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/claims/5/decision", map[string]any{})
	testutil.SetAuthContext(c, 4)
	testutil.SetURLParam(c, "id", "5")

	handler.DecideClaim(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClaimHandler_DecideClaim_NotPending(t *testing.T) {
	mockUC := &mockDecideClaimUC{err: errors.NewInvalidStateError("claim is not pending")}
	handler := newTestClaimHandler(nil, mockUC, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/claims/5/decision", map[string]any{"approve": true})
	testutil.SetAuthContext(c, 4)
	testutil.SetURLParam(c, "id", "5")

	handler.DecideClaim(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestClaimHandler_DecideClaim_InvalidID(t *testing.T) {
	handler := newTestClaimHandler(nil, &mockDecideClaimUC{}, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/claims/abc/decision", map[string]any{"approve": true})
	testutil.SetAuthContext(c, 4)
	testutil.SetURLParam(c, "id", "abc")

	handler.DecideClaim(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// Handover codes
// =====================================================================

func TestClaimHandler_IssueHandoverCode_Success(t *testing.T) {
	expires := time.Now().Add(15 * time.Minute)
	mockUC := &mockIssueHandoverOtpUC{result: &usecases.IssueHandoverOtpResult{
		ClaimID:   5,
		Status:    "handover_in_progress",
		ExpiresAt: expires,
	}}
	handler := newTestClaimHandler(nil, nil, mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/claims/5/handover/code", nil)
	testutil.SetAuthContext(c, 4)
	testutil.SetURLParam(c, "id", "5")

	handler.IssueHandoverCode(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), mockUC.gotCmd.ClaimID)
	assert.Equal(t, uint(4), mockUC.gotCmd.ActorID)
}

func TestClaimHandler_VerifyHandoverCode_Success(t *testing.T) {
	mockUC := &mockVerifyHandoverOtpUC{result: testClaimDTO("completed")}
	handler := newTestClaimHandler(nil, nil, nil, mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/claims/5/handover/verify", map[string]any{"code": "482913"})
	testutil.SetAuthContext(c, 4)
	testutil.SetURLParam(c, "id", "5")

	handler.VerifyHandoverCode(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "482913", mockUC.gotCmd.Code)
}

func TestClaimHandler_VerifyHandoverCode_MalformedCode(t *testing.T) {
	mockUC := &mockVerifyHandoverOtpUC{}
	handler := newTestClaimHandler(nil, nil, nil, mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/claims/5/handover/verify", map[string]any{"code": "12ab"})
	testutil.SetAuthContext(c, 4)
	testutil.SetURLParam(c, "id", "5")

	handler.VerifyHandoverCode(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClaimHandler_VerifyHandoverCode_WrongCode(t *testing.T) {
	mockUC := &mockVerifyHandoverOtpUC{err: errors.NewInvalidCodeError("incorrect code")}
	handler := newTestClaimHandler(nil, nil, nil, mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/claims/5/handover/verify", map[string]any{"code": "000000"})
	testutil.SetAuthContext(c, 4)
	testutil.SetURLParam(c, "id", "5")

	handler.VerifyHandoverCode(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "incorrect code", resp.Error.Message)
}

func TestClaimHandler_VerifyHandoverCode_RateLimited(t *testing.T) {
	mockUC := &mockVerifyHandoverOtpUC{err: errors.NewRateLimitedError("too many attempts, try again later")}
	handler := newTestClaimHandler(nil, nil, nil, mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/claims/5/handover/verify", map[string]any{"code": "000000"})
	testutil.SetAuthContext(c, 4)
	testutil.SetURLParam(c, "id", "5")

	handler.VerifyHandoverCode(c)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

// =====================================================================
// GetClaim / ListClaims
// =====================================================================

func TestClaimHandler_GetClaim_NotFound(t *testing.T) {
	mockUC := &mockGetClaimUC{err: errors.NewNotFoundError("claim not found")}
	handler := newTestClaimHandler(nil, nil, nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/claims/5", nil)
	testutil.SetAuthContext(c, 3)
	testutil.SetURLParam(c, "id", "5")

	handler.GetClaim(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClaimHandler_ListClaims_ForwardsFilters(t *testing.T) {
	mockUC := &mockListClaimsUC{result: []*claimdto.ClaimDTO{testClaimDTO("pending")}, total: 1}
	handler := newTestClaimHandler(nil, nil, nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/claims", nil)
	testutil.SetAuthContext(c, 3)
	testutil.SetQueryParams(c, map[string]string{
		"perspective": "claimant",
		"status":      "pending",
		"listing_id":  "2",
		"page":        "2",
		"page_size":   "10",
	})

	handler.ListClaims(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "claimant", mockUC.gotQuery.Perspective)
	require.NotNil(t, mockUC.gotQuery.Status)
	assert.Equal(t, "pending", *mockUC.gotQuery.Status)
	require.NotNil(t, mockUC.gotQuery.ListingID)
	assert.Equal(t, uint(2), *mockUC.gotQuery.ListingID)
	assert.Equal(t, 2, mockUC.gotQuery.Page)
	assert.Equal(t, 10, mockUC.gotQuery.PageSize)
}
