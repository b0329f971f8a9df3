package handler

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/collection"
	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/schema"
)

// toStatusError はドメインエラーを gRPC ステータスへ変換します。
func toStatusError(err error) error {
	var incomplete *collection.IncompleteError
	if errors.As(err, &incomplete) {
		return status.Error(codes.FailedPrecondition, incomplete.Error())
	}

	var partial *collection.PartialWriteError
	if errors.As(err, &partial) {
		return status.Error(codes.Unavailable, partial.Error())
	}

	switch {
	case errors.Is(err, collection.ErrAlreadyCollecting):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, schema.ErrUnknownJurisdiction),
		errors.Is(err, collection.ErrUnknownField),
		errors.Is(err, collection.ErrUnknownSection),
		errors.Is(err, collection.ErrSectionMismatch),
		errors.Is(err, collection.ErrInvalidEmployeeID),
		errors.Is(err, collection.ErrInvalidSessionID),
		errors.Is(err, collection.ErrInvalidFieldKey):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, collection.ErrSessionNotFound),
		errors.Is(err, collection.ErrDocumentNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, collection.ErrSessionNotActive):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, fmt.Sprintf("internal error: %v", err))
	}
}
