package dynamo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/collection"
	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/schema"
)

type stubAPI struct {
	putFn    func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	getFn    func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	updateFn func(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	deleteFn func(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

func (s *stubAPI) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return s.putFn(ctx, params, optFns...)
}

func (s *stubAPI) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return s.getFn(ctx, params, optFns...)
}

func (s *stubAPI) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return s.updateFn(ctx, params, optFns...)
}

func (s *stubAPI) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return s.deleteFn(ctx, params, optFns...)
}

func sampleDocument() *collection.WorkingDocument {
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return &collection.WorkingDocument{
		EmployeeID:   "emp-1",
		SessionID:    "session-1",
		Status:       collection.DocumentStatusCollecting,
		Jurisdiction: schema.JurisdictionMY,
		CreatedAt:    created,
		LastUpdated:  created,
		PersonalDetails: map[string]string{
			"full_name": "Aisyah binti Rahman",
		},
		BankingDetails:    map[string]string{},
		EmploymentDetails: map[string]string{},
		CollectionProgress: collection.Progress{
			TotalFields:     18,
			CollectedFields: 1,
			MissingFields:   []string{"national_id"},
		},
	}
}

func TestDocumentStore_Create_ItemLayout(t *testing.T) {
	t.Parallel()

	var captured map[string]types.AttributeValue
	api := &stubAPI{
		putFn: func(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			captured = params.Item
			return &dynamodb.PutItemOutput{}, nil
		},
	}

	store := NewDocumentStore(api, "onboarding_documents")
	if err := store.Create(context.Background(), sampleDocument()); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	for _, key := range []string{
		"employee_id", "session_id", "status", "jurisdiction", "created_at",
		"last_updated", "personal_details", "banking_details", "employment_details",
		"collection_progress",
	} {
		if _, ok := captured[key]; !ok {
			t.Errorf("expected top-level key %s in stored item", key)
		}
	}

	// 署名関連のキーは確定前には存在しない。
	for _, key := range []string{"finalized_at", "signature", "signed_at"} {
		if _, ok := captured[key]; ok {
			t.Errorf("key %s must be absent before finalization", key)
		}
	}

	status, ok := captured["status"].(*types.AttributeValueMemberS)
	if !ok || status.Value != "collecting_data" {
		t.Errorf("unexpected status attribute: %+v", captured["status"])
	}
}

func TestDocumentStore_Get_RoundTrip(t *testing.T) {
	t.Parallel()

	doc := sampleDocument()
	item, err := attributevalue.MarshalMap(toDocumentItem(doc))
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	api := &stubAPI{
		getFn: func(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: item}, nil
		},
	}

	store := NewDocumentStore(api, "onboarding_documents")
	loaded, err := store.Get(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if loaded == nil {
		t.Fatalf("expected a document")
	}
	if loaded.Status != collection.DocumentStatusCollecting {
		t.Errorf("unexpected status: %s", loaded.Status)
	}
	if !loaded.CreatedAt.Equal(doc.CreatedAt) {
		t.Errorf("created_at not round-tripped: %v", loaded.CreatedAt)
	}
	if loaded.PersonalDetails["full_name"] != "Aisyah binti Rahman" {
		t.Errorf("section values not round-tripped: %+v", loaded.PersonalDetails)
	}
	if loaded.CollectionProgress.TotalFields != 18 {
		t.Errorf("progress not round-tripped: %+v", loaded.CollectionProgress)
	}
}

func TestDocumentStore_Get_Absent(t *testing.T) {
	t.Parallel()

	api := &stubAPI{
		getFn: func(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		},
	}

	store := NewDocumentStore(api, "onboarding_documents")
	loaded, err := store.Get(context.Background(), "emp-missing")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if loaded != nil {
		t.Fatalf("expected nil for absent item, got %+v", loaded)
	}
}

func TestDocumentStore_Get_MalformedItemReadsAsAbsent(t *testing.T) {
	t.Parallel()

	api := &stubAPI{
		getFn: func(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
				"employee_id": &types.AttributeValueMemberS{Value: "emp-1"},
				"created_at":  &types.AttributeValueMemberS{Value: "not-a-timestamp"},
				"last_updated": &types.AttributeValueMemberS{
					Value: "also-not-a-timestamp",
				},
			}}, nil
		},
	}

	store := NewDocumentStore(api, "onboarding_documents")
	loaded, err := store.Get(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("malformed item must not surface an error: %v", err)
	}
	if loaded != nil {
		t.Fatalf("malformed item must read as absent, got %+v", loaded)
	}
}

func TestDocumentStore_UpdateField_Expression(t *testing.T) {
	t.Parallel()

	var captured *dynamodb.UpdateItemInput
	api := &stubAPI{
		updateFn: func(_ context.Context, params *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
			captured = params
			return &dynamodb.UpdateItemOutput{}, nil
		},
	}

	store := NewDocumentStore(api, "onboarding_documents")
	err := store.UpdateField(context.Background(), "emp-1", schema.SectionBanking, "bank_name", "Maybank",
		time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), collection.Progress{TotalFields: 18, CollectedFields: 2})
	if err != nil {
		t.Fatalf("UpdateField returned error: %v", err)
	}

	if captured.ExpressionAttributeNames["#section"] != "banking_details" {
		t.Errorf("unexpected section name: %+v", captured.ExpressionAttributeNames)
	}
	if captured.ExpressionAttributeNames["#key"] != "bank_name" {
		t.Errorf("unexpected key name: %+v", captured.ExpressionAttributeNames)
	}
	value, ok := captured.ExpressionAttributeValues[":value"].(*types.AttributeValueMemberS)
	if !ok || value.Value != "Maybank" {
		t.Errorf("unexpected value attribute: %+v", captured.ExpressionAttributeValues[":value"])
	}
}

func TestDocumentStore_UpdateField_MissingDocument(t *testing.T) {
	t.Parallel()

	api := &stubAPI{
		updateFn: func(_ context.Context, params *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		},
	}

	store := NewDocumentStore(api, "onboarding_documents")
	err := store.UpdateField(context.Background(), "emp-1", schema.SectionBanking, "bank_name", "Maybank",
		time.Now().UTC(), collection.Progress{})
	if !errors.Is(err, collection.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestDocumentStore_Finalize_AlreadyFinalizedConverges(t *testing.T) {
	t.Parallel()

	finalized := sampleDocument()
	finalized.Status = collection.DocumentStatusReadyForSignature
	at := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	finalized.FinalizedAt = &at
	item, err := attributevalue.MarshalMap(toDocumentItem(finalized))
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	api := &stubAPI{
		updateFn: func(_ context.Context, params *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		},
		getFn: func(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: item}, nil
		},
	}

	store := NewDocumentStore(api, "onboarding_documents")
	contract, err := store.Finalize(context.Background(), "emp-1", time.Now().UTC())
	if err != nil {
		t.Fatalf("Finalize returned error: %v", err)
	}
	if contract == nil || contract.Status != collection.DocumentStatusReadyForSignature {
		t.Fatalf("expected the existing contract, got %+v", contract)
	}
	if contract.FinalizedAt == nil || !contract.FinalizedAt.Equal(at) {
		t.Fatalf("original finalized_at must be preserved, got %v", contract.FinalizedAt)
	}
}

func TestDocumentStore_Finalize_Absent(t *testing.T) {
	t.Parallel()

	api := &stubAPI{
		updateFn: func(_ context.Context, params *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		},
		getFn: func(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		},
	}

	store := NewDocumentStore(api, "onboarding_documents")
	contract, err := store.Finalize(context.Background(), "emp-missing", time.Now().UTC())
	if err != nil {
		t.Fatalf("Finalize returned error: %v", err)
	}
	if contract != nil {
		t.Fatalf("expected nil for absent document, got %+v", contract)
	}
}

func TestDocumentStore_DeleteTemplate_SkipsContract(t *testing.T) {
	t.Parallel()

	api := &stubAPI{
		deleteFn: func(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		},
	}

	store := NewDocumentStore(api, "onboarding_documents")
	if err := store.DeleteTemplate(context.Background(), "emp-1"); err != nil {
		t.Fatalf("DeleteTemplate must tolerate a non-template item: %v", err)
	}
}
