package handlers

import (
	"context"

	claimdto "farmgate/internal/application/claim/dto"
	"farmgate/internal/application/claim/usecases"
)

// Use case interfaces for ClaimHandler - enable unit testing with mocks.

type submitClaimUseCase interface {
	Execute(ctx context.Context, cmd usecases.SubmitClaimCommand) (*claimdto.ClaimDTO, error)
}

type decideClaimUseCase interface {
	Execute(ctx context.Context, cmd usecases.DecideClaimCommand) (*claimdto.ClaimDTO, error)
}

type issueHandoverOtpUseCase interface {
	Execute(ctx context.Context, cmd usecases.IssueHandoverOtpCommand) (*usecases.IssueHandoverOtpResult, error)
}

type verifyHandoverOtpUseCase interface {
	Execute(ctx context.Context, cmd usecases.VerifyHandoverOtpCommand) (*claimdto.ClaimDTO, error)
}

type getClaimUseCase interface {
	Execute(ctx context.Context, query usecases.GetClaimQuery) (*claimdto.ClaimDTO, error)
}

type listClaimsUseCase interface {
	Execute(ctx context.Context, query usecases.ListClaimsQuery) ([]*claimdto.ClaimDTO, int64, error)
}
