package schema

import (
	"errors"
	"testing"
)

func TestFields_UnknownJurisdiction(t *testing.T) {
	t.Parallel()

	_, err := Fields(Jurisdiction("TH"))
	if !errors.Is(err, ErrUnknownJurisdiction) {
		t.Fatalf("expected ErrUnknownJurisdiction, got %v", err)
	}
}

func TestFields_KeysAreUniquePerJurisdiction(t *testing.T) {
	t.Parallel()

	for _, j := range []Jurisdiction{JurisdictionMY, JurisdictionSG} {
		fields, err := Fields(j)
		if err != nil {
			t.Fatalf("Fields(%s) returned error: %v", j, err)
		}
		if len(fields) == 0 {
			t.Fatalf("Fields(%s) returned no descriptors", j)
		}

		seen := make(map[FieldKey]struct{}, len(fields))
		for _, f := range fields {
			if _, dup := seen[f.Key]; dup {
				t.Errorf("jurisdiction %s: duplicate field key %s", j, f.Key)
			}
			seen[f.Key] = struct{}{}

			if !IsValidSection(f.Section) {
				t.Errorf("jurisdiction %s: field %s has unknown section %s", j, f.Key, f.Section)
			}
		}
	}
}

func TestFields_JurisdictionSpecificIdentityDocuments(t *testing.T) {
	t.Parallel()

	myFields, err := Fields(JurisdictionMY)
	if err != nil {
		t.Fatalf("Fields(MY) returned error: %v", err)
	}
	sgFields, err := Fields(JurisdictionSG)
	if err != nil {
		t.Fatalf("Fields(SG) returned error: %v", err)
	}

	myKeys := keySet(myFields)
	sgKeys := keySet(sgFields)

	if _, ok := myKeys["national_id"]; !ok {
		t.Errorf("MY must require national_id")
	}
	if _, ok := sgKeys["national_id"]; ok {
		t.Errorf("SG must not contain national_id")
	}
	if _, ok := sgKeys["nric_fin"]; !ok {
		t.Errorf("SG must require nric_fin")
	}
	if _, ok := myKeys["nric_fin"]; ok {
		t.Errorf("MY must not contain nric_fin")
	}

	for _, f := range myFields {
		if f.Key == "national_id" && !f.Required {
			t.Errorf("national_id must be required under MY")
		}
	}
	for _, f := range sgFields {
		if f.Key == "nric_fin" && !f.Required {
			t.Errorf("nric_fin must be required under SG")
		}
	}
}

func TestFields_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first, err := Fields(JurisdictionMY)
	if err != nil {
		t.Fatalf("Fields returned error: %v", err)
	}
	first[0].Key = "mutated"

	second, err := Fields(JurisdictionMY)
	if err != nil {
		t.Fatalf("Fields returned error: %v", err)
	}
	if second[0].Key == "mutated" {
		t.Fatalf("mutating the returned slice must not affect the registry")
	}
}

func TestProfileColumns(t *testing.T) {
	t.Parallel()

	columns := ProfileColumns()
	if len(columns) == 0 {
		t.Fatalf("ProfileColumns returned no columns")
	}

	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, dup := seen[c]; dup {
			t.Errorf("duplicate profile column %s", c)
		}
		seen[c] = struct{}{}
	}

	for _, want := range []string{"full_name", "email", "bank_account_number"} {
		if _, ok := seen[want]; !ok {
			t.Errorf("expected profile column %s", want)
		}
	}

	for _, identity := range []string{"national_id", "nric_fin"} {
		if _, ok := seen[identity]; ok {
			t.Errorf("identity document %s must not be projected to the profile", identity)
		}
	}
}

func keySet(fields []FieldDescriptor) map[FieldKey]struct{} {
	keys := make(map[FieldKey]struct{}, len(fields))
	for _, f := range fields {
		keys[f.Key] = struct{}{}
	}
	return keys
}
