package dynamo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/collection"
	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/schema"
)

// API は DocumentStore が利用する DynamoDB 操作のサブセットです。
// *dynamodb.Client がこれを満たします。
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// DocumentStore は DynamoDB を利用したワーキングドキュメント永続化の実装です。
//
// Table requirements:
//   - PK: employee_id (string)
type DocumentStore struct {
	ddb       API
	tableName string
}

// NewDocumentStore は DocumentStore を生成します。
func NewDocumentStore(ddb API, tableName string) *DocumentStore {
	return &DocumentStore{ddb: ddb, tableName: tableName}
}

type progressItem struct {
	TotalFields     int      `dynamodbav:"total_fields"`
	CollectedFields int      `dynamodbav:"collected_fields"`
	MissingFields   []string `dynamodbav:"missing_fields"`
}

type documentItem struct {
	EmployeeID         string            `dynamodbav:"employee_id"`
	SessionID          string            `dynamodbav:"session_id"`
	Status             string            `dynamodbav:"status"`
	Jurisdiction       string            `dynamodbav:"jurisdiction"`
	CreatedAt          string            `dynamodbav:"created_at"`
	LastUpdated        string            `dynamodbav:"last_updated"`
	PersonalDetails    map[string]string `dynamodbav:"personal_details"`
	BankingDetails     map[string]string `dynamodbav:"banking_details"`
	EmploymentDetails  map[string]string `dynamodbav:"employment_details"`
	CollectionProgress progressItem      `dynamodbav:"collection_progress"`
	FinalizedAt        *string           `dynamodbav:"finalized_at,omitempty"`
	Signature          *string           `dynamodbav:"signature,omitempty"`
	SignedAt           *string           `dynamodbav:"signed_at,omitempty"`
}

// Create はドキュメントを従業員 ID で上書き保存します。
// 同一従業員のドキュメントは常に 1 件であり、再初期化は前のドキュメントを置き換えます。
func (s *DocumentStore) Create(ctx context.Context, doc *collection.WorkingDocument) error {
	av, err := attributevalue.MarshalMap(toDocumentItem(doc))
	if err != nil {
		return fmt.Errorf("dynamo: marshal document: %w", err)
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("dynamo: put document: %w", err)
	}
	return nil
}

// Get はドキュメントを取得します。存在しない、または読み取れないアイテムは nil として扱います。
func (s *DocumentStore) Get(ctx context.Context, employeeID string) (*collection.WorkingDocument, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"employee_id": &types.AttributeValueMemberS{Value: employeeID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("dynamo: get document: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		log.Printf("dynamo: unreadable document for employee %s: %v", employeeID, err)
		return nil, nil
	}

	doc, err := fromDocumentItem(it)
	if err != nil {
		log.Printf("dynamo: unreadable document for employee %s: %v", employeeID, err)
		return nil, nil
	}
	return doc, nil
}

// UpdateField はセクション内の葉と進捗を上書きします。
// テンプレート形態でなくなったドキュメントへの書き込みは弾かれます。
func (s *DocumentStore) UpdateField(ctx context.Context, employeeID string, section schema.Section, key schema.FieldKey, value string, updatedAt time.Time, progress collection.Progress) error {
	progressAV, err := attributevalue.Marshal(progressItem{
		TotalFields:     progress.TotalFields,
		CollectedFields: progress.CollectedFields,
		MissingFields:   progress.MissingFields,
	})
	if err != nil {
		return fmt.Errorf("dynamo: marshal progress: %w", err)
	}

	_, err = s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"employee_id": &types.AttributeValueMemberS{Value: employeeID},
		},
		UpdateExpression:    aws.String("SET #section.#key = :value, last_updated = :updated, collection_progress = :progress"),
		ConditionExpression: aws.String("attribute_exists(employee_id) AND #status = :collecting"),
		ExpressionAttributeNames: map[string]string{
			"#section": string(section),
			"#key":     string(key),
			"#status":  "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value":      &types.AttributeValueMemberS{Value: value},
			":updated":    &types.AttributeValueMemberS{Value: formatTime(updatedAt)},
			":progress":   progressAV,
			":collecting": &types.AttributeValueMemberS{Value: string(collection.DocumentStatusCollecting)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return collection.ErrDocumentNotFound
		}
		return fmt.Errorf("dynamo: update document field: %w", err)
	}
	return nil
}

// Finalize はテンプレートをその場で契約書へ変換します。
// 既に契約書へ変換済みであれば、それをそのまま返します(再実行で収束)。
func (s *DocumentStore) Finalize(ctx context.Context, employeeID string, at time.Time) (*collection.WorkingDocument, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"employee_id": &types.AttributeValueMemberS{Value: employeeID},
		},
		UpdateExpression:    aws.String("SET #status = :ready, finalized_at = :at, last_updated = :at"),
		ConditionExpression: aws.String("attribute_exists(employee_id) AND #status = :collecting"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ready":      &types.AttributeValueMemberS{Value: string(collection.DocumentStatusReadyForSignature)},
			":collecting": &types.AttributeValueMemberS{Value: string(collection.DocumentStatusCollecting)},
			":at":         &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			existing, getErr := s.Get(ctx, employeeID)
			if getErr != nil {
				return nil, getErr
			}
			if existing != nil && existing.Status == collection.DocumentStatusReadyForSignature {
				return existing, nil
			}
			return nil, nil
		}
		return nil, fmt.Errorf("dynamo: finalize document: %w", err)
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return nil, fmt.Errorf("dynamo: unmarshal finalized document: %w", err)
	}
	return fromDocumentItem(it)
}

// DeleteTemplate はテンプレート形態のドキュメントのみ削除します。
// 契約書や存在しないアイテムに対しては何もせず成功します。
func (s *DocumentStore) DeleteTemplate(ctx context.Context, employeeID string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"employee_id": &types.AttributeValueMemberS{Value: employeeID},
		},
		ConditionExpression: aws.String("#status = :collecting"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":collecting": &types.AttributeValueMemberS{Value: string(collection.DocumentStatusCollecting)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return nil
		}
		return fmt.Errorf("dynamo: delete template: %w", err)
	}
	return nil
}

func toDocumentItem(doc *collection.WorkingDocument) documentItem {
	return documentItem{
		EmployeeID:        doc.EmployeeID,
		SessionID:         doc.SessionID,
		Status:            string(doc.Status),
		Jurisdiction:      string(doc.Jurisdiction),
		CreatedAt:         formatTime(doc.CreatedAt),
		LastUpdated:       formatTime(doc.LastUpdated),
		PersonalDetails:   doc.PersonalDetails,
		BankingDetails:    doc.BankingDetails,
		EmploymentDetails: doc.EmploymentDetails,
		CollectionProgress: progressItem{
			TotalFields:     doc.CollectionProgress.TotalFields,
			CollectedFields: doc.CollectionProgress.CollectedFields,
			MissingFields:   doc.CollectionProgress.MissingFields,
		},
		FinalizedAt: formatTimePtr(doc.FinalizedAt),
		Signature:   doc.Signature,
		SignedAt:    formatTimePtr(doc.SignedAt),
	}
}

func fromDocumentItem(it documentItem) (*collection.WorkingDocument, error) {
	createdAt, err := parseTime(it.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("dynamo: parse created_at: %w", err)
	}
	lastUpdated, err := parseTime(it.LastUpdated)
	if err != nil {
		return nil, fmt.Errorf("dynamo: parse last_updated: %w", err)
	}
	finalizedAt, err := parseTimePtr(it.FinalizedAt)
	if err != nil {
		return nil, fmt.Errorf("dynamo: parse finalized_at: %w", err)
	}
	signedAt, err := parseTimePtr(it.SignedAt)
	if err != nil {
		return nil, fmt.Errorf("dynamo: parse signed_at: %w", err)
	}

	return &collection.WorkingDocument{
		EmployeeID:        it.EmployeeID,
		SessionID:         it.SessionID,
		Status:            collection.DocumentStatus(it.Status),
		Jurisdiction:      schema.Jurisdiction(it.Jurisdiction),
		CreatedAt:         createdAt,
		LastUpdated:       lastUpdated,
		PersonalDetails:   it.PersonalDetails,
		BankingDetails:    it.BankingDetails,
		EmploymentDetails: it.EmploymentDetails,
		CollectionProgress: collection.Progress{
			TotalFields:     it.CollectionProgress.TotalFields,
			CollectedFields: it.CollectionProgress.CollectedFields,
			MissingFields:   it.CollectionProgress.MissingFields,
		},
		FinalizedAt: finalizedAt,
		Signature:   it.Signature,
		SignedAt:    signedAt,
	}, nil
}

func isConditionalCheckFailed(err error) bool {
	var conditional *types.ConditionalCheckFailedException
	return errors.As(err, &conditional)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := formatTime(*t)
	return &formatted
}

func parseTime(raw string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, raw)
}

func parseTimePtr(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := parseTime(*raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
