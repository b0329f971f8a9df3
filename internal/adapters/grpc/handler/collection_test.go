package handler

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	onboardingpb "github.com/ogurasousui/onboarding-grpc-clean-arch/internal/adapters/grpc/gen/onboarding/v1"
	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/collection"
	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/schema"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type stubCollectionUseCase struct {
	initializeInput collection.InitializeCollectionInput
	initializeErr   error
	initializeOut   *collection.CollectionState

	updateInput collection.UpdateFieldInput
	updateErr   error
	updateOut   *collection.UpdateFieldResult

	resumeInput collection.ResumeCollectionInput
	resumeErr   error
	resumeOut   *collection.CollectionState

	finalizeInput collection.FinalizeCollectionInput
	finalizeErr   error
	finalizeOut   *collection.WorkingDocument

	clearInput collection.ClearStateInput
	clearErr   error

	stateEmployeeID string
	stateErr        error
	stateOut        *collection.CollectionState

	activeEmployeeID string
	activeErr        error
	activeOut        *collection.ActiveSessionInfo

	templateEmployeeID string
	templateErr        error
	templateOut        *collection.WorkingDocument

	contractEmployeeID string
	contractErr        error
	contractOut        *collection.WorkingDocument
}

func (s *stubCollectionUseCase) InitializeCollection(ctx context.Context, in collection.InitializeCollectionInput) (*collection.CollectionState, error) {
	s.initializeInput = in
	return s.initializeOut, s.initializeErr
}

func (s *stubCollectionUseCase) UpdateField(ctx context.Context, in collection.UpdateFieldInput) (*collection.UpdateFieldResult, error) {
	s.updateInput = in
	return s.updateOut, s.updateErr
}

func (s *stubCollectionUseCase) ResumeCollection(ctx context.Context, in collection.ResumeCollectionInput) (*collection.CollectionState, error) {
	s.resumeInput = in
	return s.resumeOut, s.resumeErr
}

func (s *stubCollectionUseCase) FinalizeCollection(ctx context.Context, in collection.FinalizeCollectionInput) (*collection.WorkingDocument, error) {
	s.finalizeInput = in
	return s.finalizeOut, s.finalizeErr
}

func (s *stubCollectionUseCase) ClearState(ctx context.Context, in collection.ClearStateInput) error {
	s.clearInput = in
	return s.clearErr
}

func (s *stubCollectionUseCase) GetState(ctx context.Context, employeeID string) (*collection.CollectionState, error) {
	s.stateEmployeeID = employeeID
	return s.stateOut, s.stateErr
}

func (s *stubCollectionUseCase) ActiveSession(ctx context.Context, employeeID string) (*collection.ActiveSessionInfo, error) {
	s.activeEmployeeID = employeeID
	return s.activeOut, s.activeErr
}

func (s *stubCollectionUseCase) LoadTemplate(ctx context.Context, employeeID string) (*collection.WorkingDocument, error) {
	s.templateEmployeeID = employeeID
	return s.templateOut, s.templateErr
}

func (s *stubCollectionUseCase) LoadContract(ctx context.Context, employeeID string) (*collection.WorkingDocument, error) {
	s.contractEmployeeID = employeeID
	return s.contractOut, s.contractErr
}

func sampleState(now time.Time) *collection.CollectionState {
	return &collection.CollectionState{
		SessionID:    "session-1",
		EmployeeID:   "emp-1",
		Jurisdiction: schema.JurisdictionMY,
		Collected:    map[schema.FieldKey]string{"full_name": "Aisyah binti Rahman"},
		Missing: []schema.FieldDescriptor{
			{Key: "national_id", Section: schema.SectionPersonal, Required: true},
		},
		Phase:         collection.PhaseCollecting,
		StartedAt:     now,
		LastUpdatedAt: now,
	}
}

func TestCollectionGrpcHandler_InitializeCollection(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stub := &stubCollectionUseCase{initializeOut: sampleState(now)}
	handler := NewCollectionGrpcHandler(stub)

	resp, err := handler.InitializeCollection(context.Background(), &onboardingpb.InitializeCollectionRequest{
		EmployeeId:   "emp-1",
		Jurisdiction: onboardingpb.Jurisdiction_JURISDICTION_MY,
		InitialData:  map[string]string{"full_name": "Aisyah binti Rahman"},
	})
	if err != nil {
		t.Fatalf("InitializeCollection returned error: %v", err)
	}

	if stub.initializeInput.EmployeeID != "emp-1" {
		t.Errorf("expected employee id passed through, got %s", stub.initializeInput.EmployeeID)
	}
	if stub.initializeInput.Jurisdiction != schema.JurisdictionMY {
		t.Errorf("expected jurisdiction my, got %s", stub.initializeInput.Jurisdiction)
	}
	if stub.initializeInput.InitialData["full_name"] != "Aisyah binti Rahman" {
		t.Errorf("expected initial data passed through, got %+v", stub.initializeInput.InitialData)
	}

	state := resp.GetState()
	if state.GetSessionId() != "session-1" {
		t.Errorf("expected session-1, got %s", state.GetSessionId())
	}
	if state.GetJurisdiction() != onboardingpb.Jurisdiction_JURISDICTION_MY {
		t.Errorf("unexpected jurisdiction: %v", state.GetJurisdiction())
	}
	if len(state.GetMissing()) != 1 || state.GetMissing()[0].GetKey() != "national_id" {
		t.Errorf("unexpected missing fields: %+v", state.GetMissing())
	}
	if state.GetLastResumedAt() != nil {
		t.Errorf("last_resumed_at must be unset before a resume")
	}
}

func TestCollectionGrpcHandler_InitializeCollection_UnspecifiedJurisdiction(t *testing.T) {
	t.Parallel()

	handler := NewCollectionGrpcHandler(&stubCollectionUseCase{})

	_, err := handler.InitializeCollection(context.Background(), &onboardingpb.InitializeCollectionRequest{
		EmployeeId: "emp-1",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestCollectionGrpcHandler_InitializeCollection_AlreadyCollecting(t *testing.T) {
	t.Parallel()

	stub := &stubCollectionUseCase{initializeErr: collection.ErrAlreadyCollecting}
	handler := NewCollectionGrpcHandler(stub)

	_, err := handler.InitializeCollection(context.Background(), &onboardingpb.InitializeCollectionRequest{
		EmployeeId:   "emp-1",
		Jurisdiction: onboardingpb.Jurisdiction_JURISDICTION_SG,
	})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}
}

func TestCollectionGrpcHandler_UpdateField(t *testing.T) {
	t.Parallel()

	stub := &stubCollectionUseCase{
		updateOut: &collection.UpdateFieldResult{Field: "bank_name", CollectedCount: 3, RemainingFields: 12},
	}
	handler := NewCollectionGrpcHandler(stub)

	resp, err := handler.UpdateField(context.Background(), &onboardingpb.UpdateFieldRequest{
		SessionId: "session-1",
		Key:       "bank_name",
		Value:     "Maybank",
		Section:   onboardingpb.Section_SECTION_BANKING_DETAILS,
	})
	if err != nil {
		t.Fatalf("UpdateField returned error: %v", err)
	}

	if stub.updateInput.Section != schema.SectionBanking {
		t.Errorf("expected banking section, got %s", stub.updateInput.Section)
	}
	if resp.GetField() != "bank_name" {
		t.Errorf("expected bank_name, got %s", resp.GetField())
	}
	if resp.GetCollectedCount() != 3 || resp.GetRemainingFields() != 12 {
		t.Errorf("unexpected counts: %+v", resp)
	}
}

func TestCollectionGrpcHandler_UpdateField_UnspecifiedSection(t *testing.T) {
	t.Parallel()

	handler := NewCollectionGrpcHandler(&stubCollectionUseCase{})

	_, err := handler.UpdateField(context.Background(), &onboardingpb.UpdateFieldRequest{
		SessionId: "session-1",
		Key:       "bank_name",
		Value:     "Maybank",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestCollectionGrpcHandler_UpdateField_PartialWrite(t *testing.T) {
	t.Parallel()

	stub := &stubCollectionUseCase{
		updateErr: &collection.PartialWriteError{
			Store: collection.StoreProfile,
			Field: "bank_name",
			Err:   errors.New("connection reset"),
		},
	}
	handler := NewCollectionGrpcHandler(stub)

	_, err := handler.UpdateField(context.Background(), &onboardingpb.UpdateFieldRequest{
		SessionId: "session-1",
		Key:       "bank_name",
		Value:     "Maybank",
		Section:   onboardingpb.Section_SECTION_BANKING_DETAILS,
	})
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("expected Unavailable, got %v", err)
	}
}

func TestCollectionGrpcHandler_ResumeCollection(t *testing.T) {
	t.Parallel()

	now := time.Now()
	resumed := sampleState(now)
	resumed.ResumeCount = 2
	resumed.LastResumedAt = &now

	stub := &stubCollectionUseCase{resumeOut: resumed}
	handler := NewCollectionGrpcHandler(stub)

	resp, err := handler.ResumeCollection(context.Background(), &onboardingpb.ResumeCollectionRequest{SessionId: "session-1"})
	if err != nil {
		t.Fatalf("ResumeCollection returned error: %v", err)
	}

	if stub.resumeInput.SessionID != "session-1" {
		t.Errorf("expected session id passed through, got %s", stub.resumeInput.SessionID)
	}
	if resp.GetState().GetResumeCount() != 2 {
		t.Errorf("expected resume count 2, got %d", resp.GetState().GetResumeCount())
	}
	if resp.GetState().GetLastResumedAt() == nil {
		t.Errorf("expected last_resumed_at to be set")
	}
}

func TestCollectionGrpcHandler_ResumeCollection_NotFound(t *testing.T) {
	t.Parallel()

	stub := &stubCollectionUseCase{resumeErr: collection.ErrSessionNotFound}
	handler := NewCollectionGrpcHandler(stub)

	_, err := handler.ResumeCollection(context.Background(), &onboardingpb.ResumeCollectionRequest{SessionId: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestCollectionGrpcHandler_FinalizeCollection(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stub := &stubCollectionUseCase{
		finalizeOut: &collection.WorkingDocument{
			EmployeeID:   "emp-1",
			SessionID:    "session-1",
			Status:       collection.DocumentStatusReadyForSignature,
			Jurisdiction: schema.JurisdictionSG,
			CreatedAt:    now,
			LastUpdated:  now,
			PersonalDetails: map[string]string{
				"full_name": "Wei Ling Tan",
			},
			BankingDetails:    map[string]string{},
			EmploymentDetails: map[string]string{},
			CollectionProgress: collection.Progress{
				TotalFields:     18,
				CollectedFields: 17,
				MissingFields:   []string{"work_pass_type"},
			},
			FinalizedAt: &now,
		},
	}
	handler := NewCollectionGrpcHandler(stub)

	resp, err := handler.FinalizeCollection(context.Background(), &onboardingpb.FinalizeCollectionRequest{SessionId: "session-1"})
	if err != nil {
		t.Fatalf("FinalizeCollection returned error: %v", err)
	}

	contract := resp.GetContract()
	if contract.GetStatus() != string(collection.DocumentStatusReadyForSignature) {
		t.Errorf("unexpected status: %s", contract.GetStatus())
	}
	if contract.GetFinalizedAt() == nil {
		t.Errorf("expected finalized_at to be set")
	}
	if contract.GetSignature() != nil {
		t.Errorf("signature must be unset on a fresh contract")
	}
}

func TestCollectionGrpcHandler_FinalizeCollection_Incomplete(t *testing.T) {
	t.Parallel()

	stub := &stubCollectionUseCase{
		finalizeErr: &collection.IncompleteError{MissingRequired: []schema.FieldKey{"national_id"}},
	}
	handler := NewCollectionGrpcHandler(stub)

	_, err := handler.FinalizeCollection(context.Background(), &onboardingpb.FinalizeCollectionRequest{SessionId: "session-1"})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
	if st, _ := status.FromError(err); st != nil {
		if want := "national_id"; !strings.Contains(st.Message(), want) {
			t.Errorf("expected message to name %s, got %s", want, st.Message())
		}
	}
}

func TestCollectionGrpcHandler_FinalizeCollection_NotActive(t *testing.T) {
	t.Parallel()

	stub := &stubCollectionUseCase{finalizeErr: collection.ErrSessionNotActive}
	handler := NewCollectionGrpcHandler(stub)

	_, err := handler.FinalizeCollection(context.Background(), &onboardingpb.FinalizeCollectionRequest{SessionId: "session-1"})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}

func TestCollectionGrpcHandler_ClearState(t *testing.T) {
	t.Parallel()

	stub := &stubCollectionUseCase{}
	handler := NewCollectionGrpcHandler(stub)

	if _, err := handler.ClearState(context.Background(), &onboardingpb.ClearStateRequest{SessionId: "session-1"}); err != nil {
		t.Fatalf("ClearState returned error: %v", err)
	}
	if stub.clearInput.SessionID != "session-1" {
		t.Errorf("expected session id passed through, got %s", stub.clearInput.SessionID)
	}
}

func TestCollectionGrpcHandler_GetState_Empty(t *testing.T) {
	t.Parallel()

	handler := NewCollectionGrpcHandler(&stubCollectionUseCase{})

	resp, err := handler.GetState(context.Background(), &onboardingpb.GetStateRequest{EmployeeId: "emp-missing"})
	if err != nil {
		t.Fatalf("GetState returned error: %v", err)
	}
	if resp.GetState() != nil {
		t.Fatalf("expected unset state, got %+v", resp.GetState())
	}
}

func TestCollectionGrpcHandler_GetActiveSession(t *testing.T) {
	t.Parallel()

	stub := &stubCollectionUseCase{
		activeOut: &collection.ActiveSessionInfo{Active: true, EmployeeID: "emp-1", SessionID: "session-1"},
	}
	handler := NewCollectionGrpcHandler(stub)

	resp, err := handler.GetActiveSession(context.Background(), &onboardingpb.GetActiveSessionRequest{EmployeeId: "emp-1"})
	if err != nil {
		t.Fatalf("GetActiveSession returned error: %v", err)
	}
	if !resp.GetActive() || resp.GetSessionId() != "session-1" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestCollectionGrpcHandler_GetTemplate_Empty(t *testing.T) {
	t.Parallel()

	handler := NewCollectionGrpcHandler(&stubCollectionUseCase{})

	resp, err := handler.GetTemplate(context.Background(), &onboardingpb.GetDocumentRequest{EmployeeId: "emp-1"})
	if err != nil {
		t.Fatalf("GetTemplate returned error: %v", err)
	}
	if resp.GetDocument() != nil {
		t.Fatalf("expected unset document, got %+v", resp.GetDocument())
	}
}

func TestCollectionGrpcHandler_GetContract(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stub := &stubCollectionUseCase{
		contractOut: &collection.WorkingDocument{
			EmployeeID:   "emp-1",
			SessionID:    "session-1",
			Status:       collection.DocumentStatusReadyForSignature,
			Jurisdiction: schema.JurisdictionMY,
			CreatedAt:    now,
			LastUpdated:  now,
			FinalizedAt:  &now,
		},
	}
	handler := NewCollectionGrpcHandler(stub)

	resp, err := handler.GetContract(context.Background(), &onboardingpb.GetDocumentRequest{EmployeeId: "emp-1"})
	if err != nil {
		t.Fatalf("GetContract returned error: %v", err)
	}
	if stub.contractEmployeeID != "emp-1" {
		t.Errorf("expected employee id passed through, got %s", stub.contractEmployeeID)
	}
	if resp.GetDocument().GetStatus() != string(collection.DocumentStatusReadyForSignature) {
		t.Errorf("unexpected status: %s", resp.GetDocument().GetStatus())
	}
}
