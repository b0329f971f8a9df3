package collection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/schema"
)

var (
	ErrInvalidEmployeeID = errors.New("collection: invalid employee id")
	ErrInvalidSessionID  = errors.New("collection: invalid session id")
	ErrInvalidFieldKey   = errors.New("collection: invalid field key")
	ErrUnknownField      = errors.New("collection: unknown field key")
	ErrUnknownSection    = errors.New("collection: unknown section")
	ErrSectionMismatch   = errors.New("collection: field does not belong to section")
	ErrAlreadyCollecting = errors.New("collection: collection already in progress for employee")
	ErrSessionNotFound   = errors.New("collection: session not found")
	ErrSessionNotActive  = errors.New("collection: session is not collecting")
	ErrDocumentNotFound  = errors.New("collection: working document not found")
)

// ストア名は PartialWriteError の発生箇所を示します。
const (
	StoreState    = "state"
	StoreProfile  = "profile"
	StoreDocument = "document"
)

// IncompleteError は必須フィールドが未収集のまま確定が要求されたことを表します。
type IncompleteError struct {
	MissingRequired []schema.FieldKey
}

func (e *IncompleteError) Error() string {
	keys := make([]string, 0, len(e.MissingRequired))
	for _, k := range e.MissingRequired {
		keys = append(keys, string(k))
	}
	return fmt.Sprintf("collection: required fields not collected: %s", strings.Join(keys, ", "))
}

// PartialWriteError は正本への書き込み成功後に後続ストアへの書き込みが失敗したことを表します。
// 正本はコミット済みであり、同一フィールドの再実行で収束します。
type PartialWriteError struct {
	Store string
	Field schema.FieldKey
	Err   error
}

func (e *PartialWriteError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("collection: partial write: store %s: %v", e.Store, e.Err)
	}
	return fmt.Sprintf("collection: partial write: store %s, field %s: %v", e.Store, e.Field, e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}
