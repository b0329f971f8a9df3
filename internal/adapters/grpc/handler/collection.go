package handler

import (
	"context"

	onboardingpb "github.com/ogurasousui/onboarding-grpc-clean-arch/internal/adapters/grpc/gen/onboarding/v1"
	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/collection"
	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/schema"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// CollectionGrpcHandler は CollectionService の gRPC 実装です。
type CollectionGrpcHandler struct {
	svc collection.UseCase
	onboardingpb.UnimplementedCollectionServiceServer
}

// NewCollectionGrpcHandler は CollectionGrpcHandler を生成します。
func NewCollectionGrpcHandler(svc collection.UseCase) *CollectionGrpcHandler {
	return &CollectionGrpcHandler{svc: svc}
}

// InitializeCollection は従業員の収集セッションを開始します。
func (h *CollectionGrpcHandler) InitializeCollection(ctx context.Context, req *onboardingpb.InitializeCollectionRequest) (*onboardingpb.InitializeCollectionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	jurisdiction, err := toDomainJurisdiction(req.GetJurisdiction())
	if err != nil {
		return nil, toStatusError(err)
	}

	initialData := make(map[schema.FieldKey]string, len(req.GetInitialData()))
	for key, value := range req.GetInitialData() {
		initialData[schema.FieldKey(key)] = value
	}

	state, err := h.svc.InitializeCollection(ctx, collection.InitializeCollectionInput{
		EmployeeID:   req.GetEmployeeId(),
		Jurisdiction: jurisdiction,
		InitialData:  initialData,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &onboardingpb.InitializeCollectionResponse{State: toProtoState(state)}, nil
}

// UpdateField はフィールド 1 件を収集します。
func (h *CollectionGrpcHandler) UpdateField(ctx context.Context, req *onboardingpb.UpdateFieldRequest) (*onboardingpb.UpdateFieldResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	section, err := toDomainSection(req.GetSection())
	if err != nil {
		return nil, toStatusError(err)
	}

	result, err := h.svc.UpdateField(ctx, collection.UpdateFieldInput{
		SessionID: req.GetSessionId(),
		Key:       schema.FieldKey(req.GetKey()),
		Value:     req.GetValue(),
		Section:   section,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &onboardingpb.UpdateFieldResponse{
		Field:           string(result.Field),
		CollectedCount:  int32(result.CollectedCount),
		RemainingFields: int32(result.RemainingFields),
	}, nil
}

// ResumeCollection は中断されたセッションを再開します。
func (h *CollectionGrpcHandler) ResumeCollection(ctx context.Context, req *onboardingpb.ResumeCollectionRequest) (*onboardingpb.ResumeCollectionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	state, err := h.svc.ResumeCollection(ctx, collection.ResumeCollectionInput{SessionID: req.GetSessionId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &onboardingpb.ResumeCollectionResponse{State: toProtoState(state)}, nil
}

// FinalizeCollection はセッションを確定し契約書を返します。
func (h *CollectionGrpcHandler) FinalizeCollection(ctx context.Context, req *onboardingpb.FinalizeCollectionRequest) (*onboardingpb.FinalizeCollectionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	contract, err := h.svc.FinalizeCollection(ctx, collection.FinalizeCollectionInput{SessionID: req.GetSessionId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &onboardingpb.FinalizeCollectionResponse{Contract: toProtoDocument(contract)}, nil
}

// ClearState はセッションを破棄します。
func (h *CollectionGrpcHandler) ClearState(ctx context.Context, req *onboardingpb.ClearStateRequest) (*onboardingpb.ClearStateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.ClearState(ctx, collection.ClearStateInput{SessionID: req.GetSessionId()}); err != nil {
		return nil, toStatusError(err)
	}

	return &onboardingpb.ClearStateResponse{}, nil
}

// GetState は従業員の直近のセッション状態を返します。存在しなければ state は未設定です。
func (h *CollectionGrpcHandler) GetState(ctx context.Context, req *onboardingpb.GetStateRequest) (*onboardingpb.GetStateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	state, err := h.svc.GetState(ctx, req.GetEmployeeId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &onboardingpb.GetStateResponse{State: toProtoState(state)}, nil
}

// GetActiveSession は契約交渉が進行中かどうかを返します。
func (h *CollectionGrpcHandler) GetActiveSession(ctx context.Context, req *onboardingpb.GetActiveSessionRequest) (*onboardingpb.GetActiveSessionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	info, err := h.svc.ActiveSession(ctx, req.GetEmployeeId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &onboardingpb.GetActiveSessionResponse{
		Active:     info.Active,
		EmployeeId: info.EmployeeID,
		SessionId:  info.SessionID,
	}, nil
}

// GetTemplate はテンプレート形態のドキュメントを返します。存在しなければ document は未設定です。
func (h *CollectionGrpcHandler) GetTemplate(ctx context.Context, req *onboardingpb.GetDocumentRequest) (*onboardingpb.GetDocumentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	doc, err := h.svc.LoadTemplate(ctx, req.GetEmployeeId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &onboardingpb.GetDocumentResponse{Document: toProtoDocument(doc)}, nil
}

// GetContract は契約書形態のドキュメントを返します。存在しなければ document は未設定です。
func (h *CollectionGrpcHandler) GetContract(ctx context.Context, req *onboardingpb.GetDocumentRequest) (*onboardingpb.GetDocumentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	doc, err := h.svc.LoadContract(ctx, req.GetEmployeeId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &onboardingpb.GetDocumentResponse{Document: toProtoDocument(doc)}, nil
}

func toDomainJurisdiction(j onboardingpb.Jurisdiction) (schema.Jurisdiction, error) {
	switch j {
	case onboardingpb.Jurisdiction_JURISDICTION_MY:
		return schema.JurisdictionMY, nil
	case onboardingpb.Jurisdiction_JURISDICTION_SG:
		return schema.JurisdictionSG, nil
	default:
		return "", schema.ErrUnknownJurisdiction
	}
}

func toProtoJurisdiction(j schema.Jurisdiction) onboardingpb.Jurisdiction {
	switch j {
	case schema.JurisdictionMY:
		return onboardingpb.Jurisdiction_JURISDICTION_MY
	case schema.JurisdictionSG:
		return onboardingpb.Jurisdiction_JURISDICTION_SG
	default:
		return onboardingpb.Jurisdiction_JURISDICTION_UNSPECIFIED
	}
}

func toDomainSection(s onboardingpb.Section) (schema.Section, error) {
	switch s {
	case onboardingpb.Section_SECTION_PERSONAL_DETAILS:
		return schema.SectionPersonal, nil
	case onboardingpb.Section_SECTION_BANKING_DETAILS:
		return schema.SectionBanking, nil
	case onboardingpb.Section_SECTION_EMPLOYMENT_DETAILS:
		return schema.SectionEmployment, nil
	default:
		return "", collection.ErrUnknownSection
	}
}

func toProtoSection(s schema.Section) onboardingpb.Section {
	switch s {
	case schema.SectionPersonal:
		return onboardingpb.Section_SECTION_PERSONAL_DETAILS
	case schema.SectionBanking:
		return onboardingpb.Section_SECTION_BANKING_DETAILS
	case schema.SectionEmployment:
		return onboardingpb.Section_SECTION_EMPLOYMENT_DETAILS
	default:
		return onboardingpb.Section_SECTION_UNSPECIFIED
	}
}

func toProtoState(state *collection.CollectionState) *onboardingpb.CollectionState {
	if state == nil {
		return nil
	}

	collected := make(map[string]string, len(state.Collected))
	for key, value := range state.Collected {
		collected[string(key)] = value
	}

	missing := make([]*onboardingpb.FieldDescriptor, 0, len(state.Missing))
	for _, f := range state.Missing {
		missing = append(missing, &onboardingpb.FieldDescriptor{
			Key:      string(f.Key),
			Section:  toProtoSection(f.Section),
			Required: f.Required,
		})
	}

	pb := &onboardingpb.CollectionState{
		SessionId:     state.SessionID,
		EmployeeId:    state.EmployeeID,
		Jurisdiction:  toProtoJurisdiction(state.Jurisdiction),
		Collected:     collected,
		Missing:       missing,
		Phase:         string(state.Phase),
		StartedAt:     timestamppb.New(state.StartedAt),
		LastUpdatedAt: timestamppb.New(state.LastUpdatedAt),
		ResumeCount:   int32(state.ResumeCount),
	}
	if state.LastResumedAt != nil {
		pb.LastResumedAt = timestamppb.New(*state.LastResumedAt)
	}
	return pb
}

func toProtoDocument(doc *collection.WorkingDocument) *onboardingpb.WorkingDocument {
	if doc == nil {
		return nil
	}

	pb := &onboardingpb.WorkingDocument{
		EmployeeId:        doc.EmployeeID,
		SessionId:         doc.SessionID,
		Status:            string(doc.Status),
		Jurisdiction:      toProtoJurisdiction(doc.Jurisdiction),
		CreatedAt:         timestamppb.New(doc.CreatedAt),
		LastUpdated:       timestamppb.New(doc.LastUpdated),
		PersonalDetails:   doc.PersonalDetails,
		BankingDetails:    doc.BankingDetails,
		EmploymentDetails: doc.EmploymentDetails,
		CollectionProgress: &onboardingpb.CollectionProgress{
			TotalFields:     int32(doc.CollectionProgress.TotalFields),
			CollectedFields: int32(doc.CollectionProgress.CollectedFields),
			MissingFields:   doc.CollectionProgress.MissingFields,
		},
	}
	if doc.FinalizedAt != nil {
		pb.FinalizedAt = timestamppb.New(*doc.FinalizedAt)
	}
	if doc.Signature != nil {
		pb.Signature = wrapperspb.String(*doc.Signature)
	}
	if doc.SignedAt != nil {
		pb.SignedAt = timestamppb.New(*doc.SignedAt)
	}
	return pb
}
