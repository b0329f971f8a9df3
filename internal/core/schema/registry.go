package schema

import (
	"errors"
	"fmt"
)

// Jurisdiction は契約が準拠する法域を表します。
type Jurisdiction string

const (
	JurisdictionMY Jurisdiction = "MY"
	JurisdictionSG Jurisdiction = "SG"
)

// Section は契約書ドキュメント内のセクションを表します。
type Section string

const (
	SectionPersonal   Section = "personal_details"
	SectionBanking    Section = "banking_details"
	SectionEmployment Section = "employment_details"
)

// FieldKey は収集対象フィールドの識別子です。
type FieldKey string

// FieldDescriptor は収集対象フィールドの静的定義です。
// ProfileColumn が空でない場合、そのフィールドは従業員プロフィールへ投影されます。
type FieldDescriptor struct {
	Key           FieldKey
	Section       Section
	Required      bool
	ProfileColumn string
}

var ErrUnknownJurisdiction = errors.New("schema: unknown jurisdiction")

var myFields = []FieldDescriptor{
	{Key: "full_name", Section: SectionPersonal, Required: true, ProfileColumn: "full_name"},
	{Key: "national_id", Section: SectionPersonal, Required: true},
	{Key: "passport_number", Section: SectionPersonal},
	{Key: "date_of_birth", Section: SectionPersonal, Required: true, ProfileColumn: "date_of_birth"},
	{Key: "nationality", Section: SectionPersonal, Required: true, ProfileColumn: "nationality"},
	{Key: "residential_address", Section: SectionPersonal, Required: true, ProfileColumn: "residential_address"},
	{Key: "phone_number", Section: SectionPersonal, Required: true, ProfileColumn: "phone_number"},
	{Key: "email", Section: SectionPersonal, Required: true, ProfileColumn: "email"},
	{Key: "bank_name", Section: SectionBanking, Required: true, ProfileColumn: "bank_name"},
	{Key: "bank_account_number", Section: SectionBanking, Required: true, ProfileColumn: "bank_account_number"},
	{Key: "account_holder_name", Section: SectionBanking, Required: true, ProfileColumn: "account_holder_name"},
	{Key: "position", Section: SectionEmployment, Required: true},
	{Key: "department", Section: SectionEmployment, Required: true},
	{Key: "start_date", Section: SectionEmployment, Required: true},
	{Key: "basic_salary", Section: SectionEmployment, Required: true},
	{Key: "employment_type", Section: SectionEmployment, Required: true},
	{Key: "epf_number", Section: SectionEmployment, Required: true},
	{Key: "socso_number", Section: SectionEmployment, Required: true},
}

var sgFields = []FieldDescriptor{
	{Key: "full_name", Section: SectionPersonal, Required: true, ProfileColumn: "full_name"},
	{Key: "nric_fin", Section: SectionPersonal, Required: true},
	{Key: "passport_number", Section: SectionPersonal},
	{Key: "date_of_birth", Section: SectionPersonal, Required: true, ProfileColumn: "date_of_birth"},
	{Key: "nationality", Section: SectionPersonal, Required: true, ProfileColumn: "nationality"},
	{Key: "residential_address", Section: SectionPersonal, Required: true, ProfileColumn: "residential_address"},
	{Key: "phone_number", Section: SectionPersonal, Required: true, ProfileColumn: "phone_number"},
	{Key: "email", Section: SectionPersonal, Required: true, ProfileColumn: "email"},
	{Key: "bank_name", Section: SectionBanking, Required: true, ProfileColumn: "bank_name"},
	{Key: "bank_account_number", Section: SectionBanking, Required: true, ProfileColumn: "bank_account_number"},
	{Key: "account_holder_name", Section: SectionBanking, Required: true, ProfileColumn: "account_holder_name"},
	{Key: "position", Section: SectionEmployment, Required: true},
	{Key: "department", Section: SectionEmployment, Required: true},
	{Key: "start_date", Section: SectionEmployment, Required: true},
	{Key: "basic_salary", Section: SectionEmployment, Required: true},
	{Key: "employment_type", Section: SectionEmployment, Required: true},
	{Key: "cpf_account_number", Section: SectionEmployment, Required: true},
	{Key: "work_pass_type", Section: SectionEmployment},
}

// Fields は法域に対応する全フィールド定義を定義順で返します。
func Fields(j Jurisdiction) ([]FieldDescriptor, error) {
	var src []FieldDescriptor
	switch j {
	case JurisdictionMY:
		src = myFields
	case JurisdictionSG:
		src = sgFields
	default:
		return nil, fmt.Errorf("%q: %w", string(j), ErrUnknownJurisdiction)
	}

	fields := make([]FieldDescriptor, len(src))
	copy(fields, src)
	return fields, nil
}

// IsValidJurisdiction は既知の法域かどうかを判定します。
func IsValidJurisdiction(j Jurisdiction) bool {
	switch j {
	case JurisdictionMY, JurisdictionSG:
		return true
	default:
		return false
	}
}

// IsValidSection は既知のセクションかどうかを判定します。
func IsValidSection(s Section) bool {
	switch s {
	case SectionPersonal, SectionBanking, SectionEmployment:
		return true
	default:
		return false
	}
}

// Sections は全セクションを文書上の出現順で返します。
func Sections() []Section {
	return []Section{SectionPersonal, SectionBanking, SectionEmployment}
}

// ProfileColumns は全法域を通じてプロフィールへ投影され得る列名の一覧を返します。
func ProfileColumns() []string {
	seen := make(map[string]struct{})
	columns := make([]string, 0, 16)
	for _, fields := range [][]FieldDescriptor{myFields, sgFields} {
		for _, f := range fields {
			if f.ProfileColumn == "" {
				continue
			}
			if _, ok := seen[f.ProfileColumn]; ok {
				continue
			}
			seen[f.ProfileColumn] = struct{}{}
			columns = append(columns, f.ProfileColumn)
		}
	}
	return columns
}
