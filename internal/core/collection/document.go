package collection

import (
	"time"

	"github.com/ogurasousui/onboarding-grpc-clean-arch/internal/core/schema"
)

// DocumentStatus はワーキングドキュメントの状態を表します。
// 同一従業員のドキュメントはテンプレートか契約書のどちらか一方としてのみ存在します。
type DocumentStatus string

const (
	DocumentStatusCollecting        DocumentStatus = "collecting_data"
	DocumentStatusReadyForSignature DocumentStatus = "ready_for_signature"
)

// Progress はドキュメントに埋め込む収集進捗です。
type Progress struct {
	TotalFields     int      `json:"total_fields"`
	CollectedFields int      `json:"collected_fields"`
	MissingFields   []string `json:"missing_fields"`
}

// WorkingDocument は収集中のテンプレート、確定後の契約書となる構造化ドキュメントです。
// 永続化レイアウトは json タグのキー名に一致します。
type WorkingDocument struct {
	EmployeeID         string              `json:"employee_id"`
	SessionID          string              `json:"session_id"`
	Status             DocumentStatus      `json:"status"`
	Jurisdiction       schema.Jurisdiction `json:"jurisdiction"`
	CreatedAt          time.Time           `json:"created_at"`
	LastUpdated        time.Time           `json:"last_updated"`
	PersonalDetails    map[string]string   `json:"personal_details"`
	BankingDetails     map[string]string   `json:"banking_details"`
	EmploymentDetails  map[string]string   `json:"employment_details"`
	CollectionProgress Progress            `json:"collection_progress"`
	FinalizedAt        *time.Time          `json:"finalized_at,omitempty"`
	Signature          *string             `json:"signature,omitempty"`
	SignedAt           *time.Time          `json:"signed_at,omitempty"`
}

// SectionValues は指定セクションの値マップを返します。未初期化なら作成します。
func (d *WorkingDocument) SectionValues(section schema.Section) map[string]string {
	switch section {
	case schema.SectionPersonal:
		if d.PersonalDetails == nil {
			d.PersonalDetails = make(map[string]string)
		}
		return d.PersonalDetails
	case schema.SectionBanking:
		if d.BankingDetails == nil {
			d.BankingDetails = make(map[string]string)
		}
		return d.BankingDetails
	case schema.SectionEmployment:
		if d.EmploymentDetails == nil {
			d.EmploymentDetails = make(map[string]string)
		}
		return d.EmploymentDetails
	default:
		return nil
	}
}

// SetField はセクション内の葉をキー単位で上書きします。
func (d *WorkingDocument) SetField(section schema.Section, key schema.FieldKey, value string) {
	values := d.SectionValues(section)
	if values == nil {
		return
	}
	values[string(key)] = value
}
