package collection

import (
	"time"

	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/schema"
)

// Phase は収集セッションの状態を表します。
type Phase string

const (
	PhaseCollecting Phase = "collecting"
	PhaseFinalized  Phase = "finalized"
	PhaseCancelled  Phase = "cancelled"
)

// IsTerminal は終端状態かどうかを判定します。
func (p Phase) IsTerminal() bool {
	return p == PhaseFinalized || p == PhaseCancelled
}

// CollectionState は契約フィールド収集セッションの正本レコードです。
// 三つのストアが食い違った場合の調停はこのレコードを信頼します。
type CollectionState struct {
	SessionID     string
	EmployeeID    string
	Jurisdiction  schema.Jurisdiction
	Collected     map[schema.FieldKey]string
	Missing       []schema.FieldDescriptor
	Phase         Phase
	StartedAt     time.Time
	LastUpdatedAt time.Time
	LastResumedAt *time.Time
	ResumeCount   int
}

// IsCollected は指定キーが収集済みかどうかを判定します。
func (s *CollectionState) IsCollected(key schema.FieldKey) bool {
	_, ok := s.Collected[key]
	return ok
}

// MissingKeys は未収集フィールドのキーを質問順で返します。
func (s *CollectionState) MissingKeys() []schema.FieldKey {
	keys := make([]schema.FieldKey, 0, len(s.Missing))
	for _, f := range s.Missing {
		keys = append(keys, f.Key)
	}
	return keys
}

// Clone は状態の深いコピーを返します。
func (s *CollectionState) Clone() *CollectionState {
	if s == nil {
		return nil
	}

	clone := *s

	clone.Collected = make(map[schema.FieldKey]string, len(s.Collected))
	for k, v := range s.Collected {
		clone.Collected[k] = v
	}

	clone.Missing = make([]schema.FieldDescriptor, len(s.Missing))
	copy(clone.Missing, s.Missing)

	if s.LastResumedAt != nil {
		t := *s.LastResumedAt
		clone.LastResumedAt = &t
	}

	return &clone
}
