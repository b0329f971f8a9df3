// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: onboarding/v1/collection.proto

package onboardingpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	wrapperspb "google.golang.org/protobuf/types/known/wrapperspb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Jurisdiction int32

const (
	Jurisdiction_JURISDICTION_UNSPECIFIED Jurisdiction = 0
	Jurisdiction_JURISDICTION_MY          Jurisdiction = 1
	Jurisdiction_JURISDICTION_SG          Jurisdiction = 2
)

// Enum value maps for Jurisdiction.
var (
	Jurisdiction_name = map[int32]string{
		0: "JURISDICTION_UNSPECIFIED",
		1: "JURISDICTION_MY",
		2: "JURISDICTION_SG",
	}
	Jurisdiction_value = map[string]int32{
		"JURISDICTION_UNSPECIFIED": 0,
		"JURISDICTION_MY":          1,
		"JURISDICTION_SG":          2,
	}
)

func (x Jurisdiction) Enum() *Jurisdiction {
	p := new(Jurisdiction)
	*p = x
	return p
}

func (x Jurisdiction) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Jurisdiction) Descriptor() protoreflect.EnumDescriptor {
	return file_onboarding_v1_collection_proto_enumTypes[0].Descriptor()
}

func (Jurisdiction) Type() protoreflect.EnumType {
	return &file_onboarding_v1_collection_proto_enumTypes[0]
}

func (x Jurisdiction) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Jurisdiction.Descriptor instead.
func (Jurisdiction) EnumDescriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{0}
}

type Section int32

const (
	Section_SECTION_UNSPECIFIED        Section = 0
	Section_SECTION_PERSONAL_DETAILS   Section = 1
	Section_SECTION_BANKING_DETAILS    Section = 2
	Section_SECTION_EMPLOYMENT_DETAILS Section = 3
)

// Enum value maps for Section.
var (
	Section_name = map[int32]string{
		0: "SECTION_UNSPECIFIED",
		1: "SECTION_PERSONAL_DETAILS",
		2: "SECTION_BANKING_DETAILS",
		3: "SECTION_EMPLOYMENT_DETAILS",
	}
	Section_value = map[string]int32{
		"SECTION_UNSPECIFIED":        0,
		"SECTION_PERSONAL_DETAILS":   1,
		"SECTION_BANKING_DETAILS":    2,
		"SECTION_EMPLOYMENT_DETAILS": 3,
	}
)

func (x Section) Enum() *Section {
	p := new(Section)
	*p = x
	return p
}

func (x Section) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Section) Descriptor() protoreflect.EnumDescriptor {
	return file_onboarding_v1_collection_proto_enumTypes[1].Descriptor()
}

func (Section) Type() protoreflect.EnumType {
	return &file_onboarding_v1_collection_proto_enumTypes[1]
}

func (x Section) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Section.Descriptor instead.
func (Section) EnumDescriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{1}
}

type FieldDescriptor struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Key           string                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Section       Section                `protobuf:"varint,2,opt,name=section,proto3,enum=onboarding.v1.Section" json:"section,omitempty"`
	Required      bool                   `protobuf:"varint,3,opt,name=required,proto3" json:"required,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldDescriptor) Reset() {
	*x = FieldDescriptor{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldDescriptor) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldDescriptor) ProtoMessage() {}

func (x *FieldDescriptor) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldDescriptor.ProtoReflect.Descriptor instead.
func (*FieldDescriptor) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{0}
}

func (x *FieldDescriptor) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *FieldDescriptor) GetSection() Section {
	if x != nil {
		return x.Section
	}
	return Section_SECTION_UNSPECIFIED
}

func (x *FieldDescriptor) GetRequired() bool {
	if x != nil {
		return x.Required
	}
	return false
}

type CollectionState struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	EmployeeId    string                 `protobuf:"bytes,2,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	Jurisdiction  Jurisdiction           `protobuf:"varint,3,opt,name=jurisdiction,proto3,enum=onboarding.v1.Jurisdiction" json:"jurisdiction,omitempty"`
	Collected     map[string]string      `protobuf:"bytes,4,rep,name=collected,proto3" json:"collected,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Missing       []*FieldDescriptor     `protobuf:"bytes,5,rep,name=missing,proto3" json:"missing,omitempty"`
	Phase         string                 `protobuf:"bytes,6,opt,name=phase,proto3" json:"phase,omitempty"`
	StartedAt     *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	LastUpdatedAt *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=last_updated_at,json=lastUpdatedAt,proto3" json:"last_updated_at,omitempty"`
	LastResumedAt *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=last_resumed_at,json=lastResumedAt,proto3" json:"last_resumed_at,omitempty"`
	ResumeCount   int32                  `protobuf:"varint,10,opt,name=resume_count,json=resumeCount,proto3" json:"resume_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CollectionState) Reset() {
	*x = CollectionState{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CollectionState) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CollectionState) ProtoMessage() {}

func (x *CollectionState) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CollectionState.ProtoReflect.Descriptor instead.
func (*CollectionState) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{1}
}

func (x *CollectionState) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *CollectionState) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *CollectionState) GetJurisdiction() Jurisdiction {
	if x != nil {
		return x.Jurisdiction
	}
	return Jurisdiction_JURISDICTION_UNSPECIFIED
}

func (x *CollectionState) GetCollected() map[string]string {
	if x != nil {
		return x.Collected
	}
	return nil
}

func (x *CollectionState) GetMissing() []*FieldDescriptor {
	if x != nil {
		return x.Missing
	}
	return nil
}

func (x *CollectionState) GetPhase() string {
	if x != nil {
		return x.Phase
	}
	return ""
}

func (x *CollectionState) GetStartedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.StartedAt
	}
	return nil
}

func (x *CollectionState) GetLastUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.LastUpdatedAt
	}
	return nil
}

func (x *CollectionState) GetLastResumedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.LastResumedAt
	}
	return nil
}

func (x *CollectionState) GetResumeCount() int32 {
	if x != nil {
		return x.ResumeCount
	}
	return 0
}

type CollectionProgress struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	TotalFields     int32                  `protobuf:"varint,1,opt,name=total_fields,json=totalFields,proto3" json:"total_fields,omitempty"`
	CollectedFields int32                  `protobuf:"varint,2,opt,name=collected_fields,json=collectedFields,proto3" json:"collected_fields,omitempty"`
	MissingFields   []string               `protobuf:"bytes,3,rep,name=missing_fields,json=missingFields,proto3" json:"missing_fields,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CollectionProgress) Reset() {
	*x = CollectionProgress{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CollectionProgress) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CollectionProgress) ProtoMessage() {}

func (x *CollectionProgress) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CollectionProgress.ProtoReflect.Descriptor instead.
func (*CollectionProgress) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{2}
}

func (x *CollectionProgress) GetTotalFields() int32 {
	if x != nil {
		return x.TotalFields
	}
	return 0
}

func (x *CollectionProgress) GetCollectedFields() int32 {
	if x != nil {
		return x.CollectedFields
	}
	return 0
}

func (x *CollectionProgress) GetMissingFields() []string {
	if x != nil {
		return x.MissingFields
	}
	return nil
}

type WorkingDocument struct {
	state              protoimpl.MessageState  `protogen:"open.v1"`
	EmployeeId         string                  `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	SessionId          string                  `protobuf:"bytes,2,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Status             string                  `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Jurisdiction       Jurisdiction            `protobuf:"varint,4,opt,name=jurisdiction,proto3,enum=onboarding.v1.Jurisdiction" json:"jurisdiction,omitempty"`
	CreatedAt          *timestamppb.Timestamp  `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	LastUpdated        *timestamppb.Timestamp  `protobuf:"bytes,6,opt,name=last_updated,json=lastUpdated,proto3" json:"last_updated,omitempty"`
	PersonalDetails    map[string]string       `protobuf:"bytes,7,rep,name=personal_details,json=personalDetails,proto3" json:"personal_details,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	BankingDetails     map[string]string       `protobuf:"bytes,8,rep,name=banking_details,json=bankingDetails,proto3" json:"banking_details,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	EmploymentDetails  map[string]string       `protobuf:"bytes,9,rep,name=employment_details,json=employmentDetails,proto3" json:"employment_details,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	CollectionProgress *CollectionProgress     `protobuf:"bytes,10,opt,name=collection_progress,json=collectionProgress,proto3" json:"collection_progress,omitempty"`
	FinalizedAt        *timestamppb.Timestamp  `protobuf:"bytes,11,opt,name=finalized_at,json=finalizedAt,proto3" json:"finalized_at,omitempty"`
	Signature          *wrapperspb.StringValue `protobuf:"bytes,12,opt,name=signature,proto3" json:"signature,omitempty"`
	SignedAt           *timestamppb.Timestamp  `protobuf:"bytes,13,opt,name=signed_at,json=signedAt,proto3" json:"signed_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *WorkingDocument) Reset() {
	*x = WorkingDocument{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WorkingDocument) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WorkingDocument) ProtoMessage() {}

func (x *WorkingDocument) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WorkingDocument.ProtoReflect.Descriptor instead.
func (*WorkingDocument) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{3}
}

func (x *WorkingDocument) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *WorkingDocument) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *WorkingDocument) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *WorkingDocument) GetJurisdiction() Jurisdiction {
	if x != nil {
		return x.Jurisdiction
	}
	return Jurisdiction_JURISDICTION_UNSPECIFIED
}

func (x *WorkingDocument) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *WorkingDocument) GetLastUpdated() *timestamppb.Timestamp {
	if x != nil {
		return x.LastUpdated
	}
	return nil
}

func (x *WorkingDocument) GetPersonalDetails() map[string]string {
	if x != nil {
		return x.PersonalDetails
	}
	return nil
}

func (x *WorkingDocument) GetBankingDetails() map[string]string {
	if x != nil {
		return x.BankingDetails
	}
	return nil
}

func (x *WorkingDocument) GetEmploymentDetails() map[string]string {
	if x != nil {
		return x.EmploymentDetails
	}
	return nil
}

func (x *WorkingDocument) GetCollectionProgress() *CollectionProgress {
	if x != nil {
		return x.CollectionProgress
	}
	return nil
}

func (x *WorkingDocument) GetFinalizedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.FinalizedAt
	}
	return nil
}

func (x *WorkingDocument) GetSignature() *wrapperspb.StringValue {
	if x != nil {
		return x.Signature
	}
	return nil
}

func (x *WorkingDocument) GetSignedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.SignedAt
	}
	return nil
}

type InitializeCollectionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId    string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	Jurisdiction  Jurisdiction           `protobuf:"varint,2,opt,name=jurisdiction,proto3,enum=onboarding.v1.Jurisdiction" json:"jurisdiction,omitempty"`
	InitialData   map[string]string      `protobuf:"bytes,3,rep,name=initial_data,json=initialData,proto3" json:"initial_data,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InitializeCollectionRequest) Reset() {
	*x = InitializeCollectionRequest{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InitializeCollectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InitializeCollectionRequest) ProtoMessage() {}

func (x *InitializeCollectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InitializeCollectionRequest.ProtoReflect.Descriptor instead.
func (*InitializeCollectionRequest) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{4}
}

func (x *InitializeCollectionRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *InitializeCollectionRequest) GetJurisdiction() Jurisdiction {
	if x != nil {
		return x.Jurisdiction
	}
	return Jurisdiction_JURISDICTION_UNSPECIFIED
}

func (x *InitializeCollectionRequest) GetInitialData() map[string]string {
	if x != nil {
		return x.InitialData
	}
	return nil
}

type InitializeCollectionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	State         *CollectionState       `protobuf:"bytes,1,opt,name=state,proto3" json:"state,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InitializeCollectionResponse) Reset() {
	*x = InitializeCollectionResponse{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InitializeCollectionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InitializeCollectionResponse) ProtoMessage() {}

func (x *InitializeCollectionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InitializeCollectionResponse.ProtoReflect.Descriptor instead.
func (*InitializeCollectionResponse) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{5}
}

func (x *InitializeCollectionResponse) GetState() *CollectionState {
	if x != nil {
		return x.State
	}
	return nil
}

type UpdateFieldRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Key           string                 `protobuf:"bytes,2,opt,name=key,proto3" json:"key,omitempty"`
	Value         string                 `protobuf:"bytes,3,opt,name=value,proto3" json:"value,omitempty"`
	Section       Section                `protobuf:"varint,4,opt,name=section,proto3,enum=onboarding.v1.Section" json:"section,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateFieldRequest) Reset() {
	*x = UpdateFieldRequest{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFieldRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFieldRequest) ProtoMessage() {}

func (x *UpdateFieldRequest) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFieldRequest.ProtoReflect.Descriptor instead.
func (*UpdateFieldRequest) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{6}
}

func (x *UpdateFieldRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *UpdateFieldRequest) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *UpdateFieldRequest) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *UpdateFieldRequest) GetSection() Section {
	if x != nil {
		return x.Section
	}
	return Section_SECTION_UNSPECIFIED
}

type UpdateFieldResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Field           string                 `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`
	CollectedCount  int32                  `protobuf:"varint,2,opt,name=collected_count,json=collectedCount,proto3" json:"collected_count,omitempty"`
	RemainingFields int32                  `protobuf:"varint,3,opt,name=remaining_fields,json=remainingFields,proto3" json:"remaining_fields,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *UpdateFieldResponse) Reset() {
	*x = UpdateFieldResponse{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFieldResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFieldResponse) ProtoMessage() {}

func (x *UpdateFieldResponse) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFieldResponse.ProtoReflect.Descriptor instead.
func (*UpdateFieldResponse) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{7}
}

func (x *UpdateFieldResponse) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *UpdateFieldResponse) GetCollectedCount() int32 {
	if x != nil {
		return x.CollectedCount
	}
	return 0
}

func (x *UpdateFieldResponse) GetRemainingFields() int32 {
	if x != nil {
		return x.RemainingFields
	}
	return 0
}

type ResumeCollectionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeCollectionRequest) Reset() {
	*x = ResumeCollectionRequest{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeCollectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeCollectionRequest) ProtoMessage() {}

func (x *ResumeCollectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeCollectionRequest.ProtoReflect.Descriptor instead.
func (*ResumeCollectionRequest) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{8}
}

func (x *ResumeCollectionRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type ResumeCollectionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	State         *CollectionState       `protobuf:"bytes,1,opt,name=state,proto3" json:"state,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeCollectionResponse) Reset() {
	*x = ResumeCollectionResponse{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeCollectionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeCollectionResponse) ProtoMessage() {}

func (x *ResumeCollectionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeCollectionResponse.ProtoReflect.Descriptor instead.
func (*ResumeCollectionResponse) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{9}
}

func (x *ResumeCollectionResponse) GetState() *CollectionState {
	if x != nil {
		return x.State
	}
	return nil
}

type FinalizeCollectionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FinalizeCollectionRequest) Reset() {
	*x = FinalizeCollectionRequest{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinalizeCollectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinalizeCollectionRequest) ProtoMessage() {}

func (x *FinalizeCollectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FinalizeCollectionRequest.ProtoReflect.Descriptor instead.
func (*FinalizeCollectionRequest) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{10}
}

func (x *FinalizeCollectionRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type FinalizeCollectionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contract      *WorkingDocument       `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FinalizeCollectionResponse) Reset() {
	*x = FinalizeCollectionResponse{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinalizeCollectionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinalizeCollectionResponse) ProtoMessage() {}

func (x *FinalizeCollectionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FinalizeCollectionResponse.ProtoReflect.Descriptor instead.
func (*FinalizeCollectionResponse) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{11}
}

func (x *FinalizeCollectionResponse) GetContract() *WorkingDocument {
	if x != nil {
		return x.Contract
	}
	return nil
}

type ClearStateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearStateRequest) Reset() {
	*x = ClearStateRequest{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearStateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearStateRequest) ProtoMessage() {}

func (x *ClearStateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearStateRequest.ProtoReflect.Descriptor instead.
func (*ClearStateRequest) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{12}
}

func (x *ClearStateRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type ClearStateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearStateResponse) Reset() {
	*x = ClearStateResponse{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearStateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearStateResponse) ProtoMessage() {}

func (x *ClearStateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearStateResponse.ProtoReflect.Descriptor instead.
func (*ClearStateResponse) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{13}
}

type GetStateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId    string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStateRequest) Reset() {
	*x = GetStateRequest{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStateRequest) ProtoMessage() {}

func (x *GetStateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStateRequest.ProtoReflect.Descriptor instead.
func (*GetStateRequest) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{14}
}

func (x *GetStateRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

type GetStateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	State         *CollectionState       `protobuf:"bytes,1,opt,name=state,proto3" json:"state,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStateResponse) Reset() {
	*x = GetStateResponse{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStateResponse) ProtoMessage() {}

func (x *GetStateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStateResponse.ProtoReflect.Descriptor instead.
func (*GetStateResponse) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{15}
}

func (x *GetStateResponse) GetState() *CollectionState {
	if x != nil {
		return x.State
	}
	return nil
}

type GetActiveSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId    string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetActiveSessionRequest) Reset() {
	*x = GetActiveSessionRequest{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetActiveSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetActiveSessionRequest) ProtoMessage() {}

func (x *GetActiveSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetActiveSessionRequest.ProtoReflect.Descriptor instead.
func (*GetActiveSessionRequest) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{16}
}

func (x *GetActiveSessionRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

type GetActiveSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Active        bool                   `protobuf:"varint,1,opt,name=active,proto3" json:"active,omitempty"`
	EmployeeId    string                 `protobuf:"bytes,2,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	SessionId     string                 `protobuf:"bytes,3,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetActiveSessionResponse) Reset() {
	*x = GetActiveSessionResponse{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetActiveSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetActiveSessionResponse) ProtoMessage() {}

func (x *GetActiveSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetActiveSessionResponse.ProtoReflect.Descriptor instead.
func (*GetActiveSessionResponse) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{17}
}

func (x *GetActiveSessionResponse) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

func (x *GetActiveSessionResponse) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *GetActiveSessionResponse) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId    string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{18}
}

func (x *GetDocumentRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *WorkingDocument       `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_onboarding_v1_collection_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_onboarding_v1_collection_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_onboarding_v1_collection_proto_rawDescGZIP(), []int{19}
}

func (x *GetDocumentResponse) GetDocument() *WorkingDocument {
	if x != nil {
		return x.Document
	}
	return nil
}

var File_onboarding_v1_collection_proto protoreflect.FileDescriptor

const file_onboarding_v1_collection_proto_rawDesc = "" +
	"\n" +
	"\x1eonboarding/v1/collection.proto\x12\ronboarding.v1\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x1egoogle/protobuf/wrappers.proto\"q\n" +
	"\x0fFieldDescriptor\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x120\n" +
	"\asection\x18\x02 \x01(\x0e2\x16.onboarding.v1.SectionR\asection\x12\x1a\n" +
	"\brequired\x18\x03 \x01(\bR\brequired\"\xd3\x04\n" +
	"\x0fCollectionState\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x1f\n" +
	"\vemployee_id\x18\x02 \x01(\tR\n" +
	"employeeId\x12?\n" +
	"\fjurisdiction\x18\x03 \x01(\x0e2\x1b.onboarding.v1.JurisdictionR\fjurisdiction\x12K\n" +
	"\tcollected\x18\x04 \x03(\v2-.onboarding.v1.CollectionState.CollectedEntryR\tcollected\x128\n" +
	"\amissing\x18\x05 \x03(\v2\x1e.onboarding.v1.FieldDescriptorR\amissing\x12\x14\n" +
	"\x05phase\x18\x06 \x01(\tR\x05phase\x129\n" +
	"\n" +
	"started_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\tstartedAt\x12B\n" +
	"\x0flast_updated_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\rlastUpdatedAt\x12B\n" +
	"\x0flast_resumed_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\rlastResumedAt\x12!\n" +
	"\fresume_count\x18\n" +
	" \x01(\x05R\vresumeCount\x1a<\n" +
	"\x0eCollectedEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x89\x01\n" +
	"\x12CollectionProgress\x12!\n" +
	"\ftotal_fields\x18\x01 \x01(\x05R\vtotalFields\x12)\n" +
	"\x10collected_fields\x18\x02 \x01(\x05R\x0fcollectedFields\x12%\n" +
	"\x0emissing_fields\x18\x03 \x03(\tR\rmissingFields\"\x9c\b\n" +
	"\x0fWorkingDocument\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\x12\x1d\n" +
	"\n" +
	"session_id\x18\x02 \x01(\tR\tsessionId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12?\n" +
	"\fjurisdiction\x18\x04 \x01(\x0e2\x1b.onboarding.v1.JurisdictionR\fjurisdiction\x129\n" +
	"\n" +
	"created_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x12=\n" +
	"\flast_updated\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\vlastUpdated\x12^\n" +
	"\x10personal_details\x18\a \x03(\v23.onboarding.v1.WorkingDocument.PersonalDetailsEntryR\x0fpersonalDetails\x12[\n" +
	"\x0fbanking_details\x18\b \x03(\v22.onboarding.v1.WorkingDocument.BankingDetailsEntryR\x0ebankingDetails\x12d\n" +
	"\x12employment_details\x18\t \x03(\v25.onboarding.v1.WorkingDocument.EmploymentDetailsEntryR\x11employmentDetails\x12R\n" +
	"\x13collection_progress\x18\n" +
	" \x01(\v2!.onboarding.v1.CollectionProgressR\x12collectionProgress\x12=\n" +
	"\ffinalized_at\x18\v \x01(\v2\x1a.google.protobuf.TimestampR\vfinalizedAt\x12:\n" +
	"\tsignature\x18\f \x01(\v2\x1c.google.protobuf.StringValueR\tsignature\x127\n" +
	"\tsigned_at\x18\r \x01(\v2\x1a.google.protobuf.TimestampR\bsignedAt\x1aB\n" +
	"\x14PersonalDetailsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\x1aA\n" +
	"\x13BankingDetailsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\x1aD\n" +
	"\x16EmploymentDetailsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x9f\x02\n" +
	"\x1bInitializeCollectionRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\x12?\n" +
	"\fjurisdiction\x18\x02 \x01(\x0e2\x1b.onboarding.v1.JurisdictionR\fjurisdiction\x12^\n" +
	"\finitial_data\x18\x03 \x03(\v2;.onboarding.v1.InitializeCollectionRequest.InitialDataEntryR\vinitialData\x1a>\n" +
	"\x10InitialDataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"T\n" +
	"\x1cInitializeCollectionResponse\x124\n" +
	"\x05state\x18\x01 \x01(\v2\x1e.onboarding.v1.CollectionStateR\x05state\"\x8d\x01\n" +
	"\x12UpdateFieldRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x10\n" +
	"\x03key\x18\x02 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x03 \x01(\tR\x05value\x120\n" +
	"\asection\x18\x04 \x01(\x0e2\x16.onboarding.v1.SectionR\asection\"\x7f\n" +
	"\x13UpdateFieldResponse\x12\x14\n" +
	"\x05field\x18\x01 \x01(\tR\x05field\x12'\n" +
	"\x0fcollected_count\x18\x02 \x01(\x05R\x0ecollectedCount\x12)\n" +
	"\x10remaining_fields\x18\x03 \x01(\x05R\x0fremainingFields\"8\n" +
	"\x17ResumeCollectionRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"P\n" +
	"\x18ResumeCollectionResponse\x124\n" +
	"\x05state\x18\x01 \x01(\v2\x1e.onboarding.v1.CollectionStateR\x05state\":\n" +
	"\x19FinalizeCollectionRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"X\n" +
	"\x1aFinalizeCollectionResponse\x12:\n" +
	"\bcontract\x18\x01 \x01(\v2\x1e.onboarding.v1.WorkingDocumentR\bcontract\"2\n" +
	"\x11ClearStateRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"\x14\n" +
	"\x12ClearStateResponse\"2\n" +
	"\x0fGetStateRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\"H\n" +
	"\x10GetStateResponse\x124\n" +
	"\x05state\x18\x01 \x01(\v2\x1e.onboarding.v1.CollectionStateR\x05state\":\n" +
	"\x17GetActiveSessionRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\"r\n" +
	"\x18GetActiveSessionResponse\x12\x16\n" +
	"\x06active\x18\x01 \x01(\bR\x06active\x12\x1f\n" +
	"\vemployee_id\x18\x02 \x01(\tR\n" +
	"employeeId\x12\x1d\n" +
	"\n" +
	"session_id\x18\x03 \x01(\tR\tsessionId\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\"Q\n" +
	"\x13GetDocumentResponse\x12:\n" +
	"\bdocument\x18\x01 \x01(\v2\x1e.onboarding.v1.WorkingDocumentR\bdocument*V\n" +
	"\fJurisdiction\x12\x1c\n" +
	"\x18JURISDICTION_UNSPECIFIED\x10\x00\x12\x13\n" +
	"\x0fJURISDICTION_MY\x10\x01\x12\x13\n" +
	"\x0fJURISDICTION_SG\x10\x02*}\n" +
	"\aSection\x12\x17\n" +
	"\x13SECTION_UNSPECIFIED\x10\x00\x12\x1c\n" +
	"\x18SECTION_PERSONAL_DETAILS\x10\x01\x12\x1b\n" +
	"\x17SECTION_BANKING_DETAILS\x10\x02\x12\x1e\n" +
	"\x1aSECTION_EMPLOYMENT_DETAILS\x10\x032\xdb\x06\n" +
	"\x11CollectionService\x12o\n" +
	"\x14InitializeCollection\x12*.onboarding.v1.InitializeCollectionRequest\x1a+.onboarding.v1.InitializeCollectionResponse\x12T\n" +
	"\vUpdateField\x12!.onboarding.v1.UpdateFieldRequest\x1a\".onboarding.v1.UpdateFieldResponse\x12c\n" +
	"\x10ResumeCollection\x12&.onboarding.v1.ResumeCollectionRequest\x1a'.onboarding.v1.ResumeCollectionResponse\x12i\n" +
	"\x12FinalizeCollection\x12(.onboarding.v1.FinalizeCollectionRequest\x1a).onboarding.v1.FinalizeCollectionResponse\x12Q\n" +
	"\n" +
	"ClearState\x12 .onboarding.v1.ClearStateRequest\x1a!.onboarding.v1.ClearStateResponse\x12K\n" +
	"\bGetState\x12\x1e.onboarding.v1.GetStateRequest\x1a\x1f.onboarding.v1.GetStateResponse\x12c\n" +
	"\x10GetActiveSession\x12&.onboarding.v1.GetActiveSessionRequest\x1a'.onboarding.v1.GetActiveSessionResponse\x12T\n" +
	"\vGetTemplate\x12!.onboarding.v1.GetDocumentRequest\x1a\".onboarding.v1.GetDocumentResponse\x12T\n" +
	"\vGetContract\x12!.onboarding.v1.GetDocumentRequest\x1a\".onboarding.v1.GetDocumentResponseBiZggithub.com/ogurasousui/onboarding-grpc-clean-arch/internal/adapters/grpc/gen/onboarding/v1;onboardingpbb\x06proto3"

var (
	file_onboarding_v1_collection_proto_rawDescOnce sync.Once
	file_onboarding_v1_collection_proto_rawDescData []byte
)

func file_onboarding_v1_collection_proto_rawDescGZIP() []byte {
	file_onboarding_v1_collection_proto_rawDescOnce.Do(func() {
		file_onboarding_v1_collection_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_onboarding_v1_collection_proto_rawDesc), len(file_onboarding_v1_collection_proto_rawDesc)))
	})
	return file_onboarding_v1_collection_proto_rawDescData
}

var file_onboarding_v1_collection_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_onboarding_v1_collection_proto_msgTypes = make([]protoimpl.MessageInfo, 25)
var file_onboarding_v1_collection_proto_goTypes = []any{
	(Jurisdiction)(0),                    // 0: onboarding.v1.Jurisdiction
	(Section)(0),                         // 1: onboarding.v1.Section
	(*FieldDescriptor)(nil),              // 2: onboarding.v1.FieldDescriptor
	(*CollectionState)(nil),              // 3: onboarding.v1.CollectionState
	(*CollectionProgress)(nil),           // 4: onboarding.v1.CollectionProgress
	(*WorkingDocument)(nil),              // 5: onboarding.v1.WorkingDocument
	(*InitializeCollectionRequest)(nil),  // 6: onboarding.v1.InitializeCollectionRequest
	(*InitializeCollectionResponse)(nil), // 7: onboarding.v1.InitializeCollectionResponse
	(*UpdateFieldRequest)(nil),           // 8: onboarding.v1.UpdateFieldRequest
	(*UpdateFieldResponse)(nil),          // 9: onboarding.v1.UpdateFieldResponse
	(*ResumeCollectionRequest)(nil),      // 10: onboarding.v1.ResumeCollectionRequest
	(*ResumeCollectionResponse)(nil),     // 11: onboarding.v1.ResumeCollectionResponse
	(*FinalizeCollectionRequest)(nil),    // 12: onboarding.v1.FinalizeCollectionRequest
	(*FinalizeCollectionResponse)(nil),   // 13: onboarding.v1.FinalizeCollectionResponse
	(*ClearStateRequest)(nil),            // 14: onboarding.v1.ClearStateRequest
	(*ClearStateResponse)(nil),           // 15: onboarding.v1.ClearStateResponse
	(*GetStateRequest)(nil),              // 16: onboarding.v1.GetStateRequest
	(*GetStateResponse)(nil),             // 17: onboarding.v1.GetStateResponse
	(*GetActiveSessionRequest)(nil),      // 18: onboarding.v1.GetActiveSessionRequest
	(*GetActiveSessionResponse)(nil),     // 19: onboarding.v1.GetActiveSessionResponse
	(*GetDocumentRequest)(nil),           // 20: onboarding.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),          // 21: onboarding.v1.GetDocumentResponse
	nil,                                  // 22: onboarding.v1.CollectionState.CollectedEntry
	nil,                                  // 23: onboarding.v1.WorkingDocument.PersonalDetailsEntry
	nil,                                  // 24: onboarding.v1.WorkingDocument.BankingDetailsEntry
	nil,                                  // 25: onboarding.v1.WorkingDocument.EmploymentDetailsEntry
	nil,                                  // 26: onboarding.v1.InitializeCollectionRequest.InitialDataEntry
	(*timestamppb.Timestamp)(nil),        // 27: google.protobuf.Timestamp
	(*wrapperspb.StringValue)(nil),       // 28: google.protobuf.StringValue
}
var file_onboarding_v1_collection_proto_depIdxs = []int32{
	1,  // 0: onboarding.v1.FieldDescriptor.section:type_name -> onboarding.v1.Section
	0,  // 1: onboarding.v1.CollectionState.jurisdiction:type_name -> onboarding.v1.Jurisdiction
	22, // 2: onboarding.v1.CollectionState.collected:type_name -> onboarding.v1.CollectionState.CollectedEntry
	2,  // 3: onboarding.v1.CollectionState.missing:type_name -> onboarding.v1.FieldDescriptor
	27, // 4: onboarding.v1.CollectionState.started_at:type_name -> google.protobuf.Timestamp
	27, // 5: onboarding.v1.CollectionState.last_updated_at:type_name -> google.protobuf.Timestamp
	27, // 6: onboarding.v1.CollectionState.last_resumed_at:type_name -> google.protobuf.Timestamp
	0,  // 7: onboarding.v1.WorkingDocument.jurisdiction:type_name -> onboarding.v1.Jurisdiction
	27, // 8: onboarding.v1.WorkingDocument.created_at:type_name -> google.protobuf.Timestamp
	27, // 9: onboarding.v1.WorkingDocument.last_updated:type_name -> google.protobuf.Timestamp
	23, // 10: onboarding.v1.WorkingDocument.personal_details:type_name -> onboarding.v1.WorkingDocument.PersonalDetailsEntry
	24, // 11: onboarding.v1.WorkingDocument.banking_details:type_name -> onboarding.v1.WorkingDocument.BankingDetailsEntry
	25, // 12: onboarding.v1.WorkingDocument.employment_details:type_name -> onboarding.v1.WorkingDocument.EmploymentDetailsEntry
	4,  // 13: onboarding.v1.WorkingDocument.collection_progress:type_name -> onboarding.v1.CollectionProgress
	27, // 14: onboarding.v1.WorkingDocument.finalized_at:type_name -> google.protobuf.Timestamp
	28, // 15: onboarding.v1.WorkingDocument.signature:type_name -> google.protobuf.StringValue
	27, // 16: onboarding.v1.WorkingDocument.signed_at:type_name -> google.protobuf.Timestamp
	0,  // 17: onboarding.v1.InitializeCollectionRequest.jurisdiction:type_name -> onboarding.v1.Jurisdiction
	26, // 18: onboarding.v1.InitializeCollectionRequest.initial_data:type_name -> onboarding.v1.InitializeCollectionRequest.InitialDataEntry
	3,  // 19: onboarding.v1.InitializeCollectionResponse.state:type_name -> onboarding.v1.CollectionState
	1,  // 20: onboarding.v1.UpdateFieldRequest.section:type_name -> onboarding.v1.Section
	3,  // 21: onboarding.v1.ResumeCollectionResponse.state:type_name -> onboarding.v1.CollectionState
	5,  // 22: onboarding.v1.FinalizeCollectionResponse.contract:type_name -> onboarding.v1.WorkingDocument
	3,  // 23: onboarding.v1.GetStateResponse.state:type_name -> onboarding.v1.CollectionState
	5,  // 24: onboarding.v1.GetDocumentResponse.document:type_name -> onboarding.v1.WorkingDocument
	6,  // 25: onboarding.v1.CollectionService.InitializeCollection:input_type -> onboarding.v1.InitializeCollectionRequest
	8,  // 26: onboarding.v1.CollectionService.UpdateField:input_type -> onboarding.v1.UpdateFieldRequest
	10, // 27: onboarding.v1.CollectionService.ResumeCollection:input_type -> onboarding.v1.ResumeCollectionRequest
	12, // 28: onboarding.v1.CollectionService.FinalizeCollection:input_type -> onboarding.v1.FinalizeCollectionRequest
	14, // 29: onboarding.v1.CollectionService.ClearState:input_type -> onboarding.v1.ClearStateRequest
	16, // 30: onboarding.v1.CollectionService.GetState:input_type -> onboarding.v1.GetStateRequest
	18, // 31: onboarding.v1.CollectionService.GetActiveSession:input_type -> onboarding.v1.GetActiveSessionRequest
	20, // 32: onboarding.v1.CollectionService.GetTemplate:input_type -> onboarding.v1.GetDocumentRequest
	20, // 33: onboarding.v1.CollectionService.GetContract:input_type -> onboarding.v1.GetDocumentRequest
	7,  // 34: onboarding.v1.CollectionService.InitializeCollection:output_type -> onboarding.v1.InitializeCollectionResponse
	9,  // 35: onboarding.v1.CollectionService.UpdateField:output_type -> onboarding.v1.UpdateFieldResponse
	11, // 36: onboarding.v1.CollectionService.ResumeCollection:output_type -> onboarding.v1.ResumeCollectionResponse
	13, // 37: onboarding.v1.CollectionService.FinalizeCollection:output_type -> onboarding.v1.FinalizeCollectionResponse
	15, // 38: onboarding.v1.CollectionService.ClearState:output_type -> onboarding.v1.ClearStateResponse
	17, // 39: onboarding.v1.CollectionService.GetState:output_type -> onboarding.v1.GetStateResponse
	19, // 40: onboarding.v1.CollectionService.GetActiveSession:output_type -> onboarding.v1.GetActiveSessionResponse
	21, // 41: onboarding.v1.CollectionService.GetTemplate:output_type -> onboarding.v1.GetDocumentResponse
	21, // 42: onboarding.v1.CollectionService.GetContract:output_type -> onboarding.v1.GetDocumentResponse
	34, // [34:43] is the sub-list for method output_type
	25, // [25:34] is the sub-list for method input_type
	25, // [25:25] is the sub-list for extension type_name
	25, // [25:25] is the sub-list for extension extendee
	0,  // [0:25] is the sub-list for field type_name
}

func init() { file_onboarding_v1_collection_proto_init() }
func file_onboarding_v1_collection_proto_init() {
	if File_onboarding_v1_collection_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_onboarding_v1_collection_proto_rawDesc), len(file_onboarding_v1_collection_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   25,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_onboarding_v1_collection_proto_goTypes,
		DependencyIndexes: file_onboarding_v1_collection_proto_depIdxs,
		EnumInfos:         file_onboarding_v1_collection_proto_enumTypes,
		MessageInfos:      file_onboarding_v1_collection_proto_msgTypes,
	}.Build()
	File_onboarding_v1_collection_proto = out.File
	file_onboarding_v1_collection_proto_goTypes = nil
	file_onboarding_v1_collection_proto_depIdxs = nil
}
