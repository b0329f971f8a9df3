// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: onboarding/v1/collection.proto

package onboardingpb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	CollectionService_InitializeCollection_FullMethodName = "/onboarding.v1.CollectionService/InitializeCollection"
	CollectionService_UpdateField_FullMethodName          = "/onboarding.v1.CollectionService/UpdateField"
	CollectionService_ResumeCollection_FullMethodName     = "/onboarding.v1.CollectionService/ResumeCollection"
	CollectionService_FinalizeCollection_FullMethodName   = "/onboarding.v1.CollectionService/FinalizeCollection"
	CollectionService_ClearState_FullMethodName           = "/onboarding.v1.CollectionService/ClearState"
	CollectionService_GetState_FullMethodName             = "/onboarding.v1.CollectionService/GetState"
	CollectionService_GetActiveSession_FullMethodName     = "/onboarding.v1.CollectionService/GetActiveSession"
	CollectionService_GetTemplate_FullMethodName          = "/onboarding.v1.CollectionService/GetTemplate"
	CollectionService_GetContract_FullMethodName          = "/onboarding.v1.CollectionService/GetContract"
)

// CollectionServiceClient is the client API for CollectionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CollectionService は契約フィールド収集セッションを操作する API です。
type CollectionServiceClient interface {
	InitializeCollection(ctx context.Context, in *InitializeCollectionRequest, opts ...grpc.CallOption) (*InitializeCollectionResponse, error)
	UpdateField(ctx context.Context, in *UpdateFieldRequest, opts ...grpc.CallOption) (*UpdateFieldResponse, error)
	ResumeCollection(ctx context.Context, in *ResumeCollectionRequest, opts ...grpc.CallOption) (*ResumeCollectionResponse, error)
	FinalizeCollection(ctx context.Context, in *FinalizeCollectionRequest, opts ...grpc.CallOption) (*FinalizeCollectionResponse, error)
	ClearState(ctx context.Context, in *ClearStateRequest, opts ...grpc.CallOption) (*ClearStateResponse, error)
	GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*GetStateResponse, error)
	GetActiveSession(ctx context.Context, in *GetActiveSessionRequest, opts ...grpc.CallOption) (*GetActiveSessionResponse, error)
	GetTemplate(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error)
	GetContract(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error)
}

type collectionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCollectionServiceClient(cc grpc.ClientConnInterface) CollectionServiceClient {
	return &collectionServiceClient{cc}
}

func (c *collectionServiceClient) InitializeCollection(ctx context.Context, in *InitializeCollectionRequest, opts ...grpc.CallOption) (*InitializeCollectionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(InitializeCollectionResponse)
	err := c.cc.Invoke(ctx, CollectionService_InitializeCollection_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collectionServiceClient) UpdateField(ctx context.Context, in *UpdateFieldRequest, opts ...grpc.CallOption) (*UpdateFieldResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateFieldResponse)
	err := c.cc.Invoke(ctx, CollectionService_UpdateField_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collectionServiceClient) ResumeCollection(ctx context.Context, in *ResumeCollectionRequest, opts ...grpc.CallOption) (*ResumeCollectionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResumeCollectionResponse)
	err := c.cc.Invoke(ctx, CollectionService_ResumeCollection_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collectionServiceClient) FinalizeCollection(ctx context.Context, in *FinalizeCollectionRequest, opts ...grpc.CallOption) (*FinalizeCollectionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FinalizeCollectionResponse)
	err := c.cc.Invoke(ctx, CollectionService_FinalizeCollection_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collectionServiceClient) ClearState(ctx context.Context, in *ClearStateRequest, opts ...grpc.CallOption) (*ClearStateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClearStateResponse)
	err := c.cc.Invoke(ctx, CollectionService_ClearState_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collectionServiceClient) GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*GetStateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetStateResponse)
	err := c.cc.Invoke(ctx, CollectionService_GetState_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collectionServiceClient) GetActiveSession(ctx context.Context, in *GetActiveSessionRequest, opts ...grpc.CallOption) (*GetActiveSessionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetActiveSessionResponse)
	err := c.cc.Invoke(ctx, CollectionService_GetActiveSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collectionServiceClient) GetTemplate(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentResponse)
	err := c.cc.Invoke(ctx, CollectionService_GetTemplate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collectionServiceClient) GetContract(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentResponse)
	err := c.cc.Invoke(ctx, CollectionService_GetContract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CollectionServiceServer is the server API for CollectionService service.
// All implementations must embed UnimplementedCollectionServiceServer
// for forward compatibility.
//
// CollectionService は契約フィールド収集セッションを操作する API です。
type CollectionServiceServer interface {
	InitializeCollection(context.Context, *InitializeCollectionRequest) (*InitializeCollectionResponse, error)
	UpdateField(context.Context, *UpdateFieldRequest) (*UpdateFieldResponse, error)
	ResumeCollection(context.Context, *ResumeCollectionRequest) (*ResumeCollectionResponse, error)
	FinalizeCollection(context.Context, *FinalizeCollectionRequest) (*FinalizeCollectionResponse, error)
	ClearState(context.Context, *ClearStateRequest) (*ClearStateResponse, error)
	GetState(context.Context, *GetStateRequest) (*GetStateResponse, error)
	GetActiveSession(context.Context, *GetActiveSessionRequest) (*GetActiveSessionResponse, error)
	GetTemplate(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error)
	GetContract(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error)
	mustEmbedUnimplementedCollectionServiceServer()
}

// UnimplementedCollectionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCollectionServiceServer struct{}

func (UnimplementedCollectionServiceServer) InitializeCollection(context.Context, *InitializeCollectionRequest) (*InitializeCollectionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method InitializeCollection not implemented")
}
func (UnimplementedCollectionServiceServer) UpdateField(context.Context, *UpdateFieldRequest) (*UpdateFieldResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateField not implemented")
}
func (UnimplementedCollectionServiceServer) ResumeCollection(context.Context, *ResumeCollectionRequest) (*ResumeCollectionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResumeCollection not implemented")
}
func (UnimplementedCollectionServiceServer) FinalizeCollection(context.Context, *FinalizeCollectionRequest) (*FinalizeCollectionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FinalizeCollection not implemented")
}
func (UnimplementedCollectionServiceServer) ClearState(context.Context, *ClearStateRequest) (*ClearStateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ClearState not implemented")
}
func (UnimplementedCollectionServiceServer) GetState(context.Context, *GetStateRequest) (*GetStateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetState not implemented")
}
func (UnimplementedCollectionServiceServer) GetActiveSession(context.Context, *GetActiveSessionRequest) (*GetActiveSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetActiveSession not implemented")
}
func (UnimplementedCollectionServiceServer) GetTemplate(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTemplate not implemented")
}
func (UnimplementedCollectionServiceServer) GetContract(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetContract not implemented")
}
func (UnimplementedCollectionServiceServer) mustEmbedUnimplementedCollectionServiceServer() {}
func (UnimplementedCollectionServiceServer) testEmbeddedByValue()                           {}

// UnsafeCollectionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CollectionServiceServer will
// result in compilation errors.
type UnsafeCollectionServiceServer interface {
	mustEmbedUnimplementedCollectionServiceServer()
}

func RegisterCollectionServiceServer(s grpc.ServiceRegistrar, srv CollectionServiceServer) {
	// If the following call panics, it indicates UnimplementedCollectionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CollectionService_ServiceDesc, srv)
}

func _CollectionService_InitializeCollection_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InitializeCollectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollectionServiceServer).InitializeCollection(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollectionService_InitializeCollection_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollectionServiceServer).InitializeCollection(ctx, req.(*InitializeCollectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollectionService_UpdateField_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateFieldRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollectionServiceServer).UpdateField(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollectionService_UpdateField_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollectionServiceServer).UpdateField(ctx, req.(*UpdateFieldRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollectionService_ResumeCollection_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResumeCollectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollectionServiceServer).ResumeCollection(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollectionService_ResumeCollection_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollectionServiceServer).ResumeCollection(ctx, req.(*ResumeCollectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollectionService_FinalizeCollection_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FinalizeCollectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollectionServiceServer).FinalizeCollection(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollectionService_FinalizeCollection_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollectionServiceServer).FinalizeCollection(ctx, req.(*FinalizeCollectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollectionService_ClearState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClearStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollectionServiceServer).ClearState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollectionService_ClearState_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollectionServiceServer).ClearState(ctx, req.(*ClearStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollectionService_GetState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollectionServiceServer).GetState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollectionService_GetState_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollectionServiceServer).GetState(ctx, req.(*GetStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollectionService_GetActiveSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetActiveSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollectionServiceServer).GetActiveSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollectionService_GetActiveSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollectionServiceServer).GetActiveSession(ctx, req.(*GetActiveSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollectionService_GetTemplate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollectionServiceServer).GetTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollectionService_GetTemplate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollectionServiceServer).GetTemplate(ctx, req.(*GetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CollectionService_GetContract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CollectionServiceServer).GetContract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CollectionService_GetContract_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CollectionServiceServer).GetContract(ctx, req.(*GetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CollectionService_ServiceDesc is the grpc.ServiceDesc for CollectionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CollectionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "onboarding.v1.CollectionService",
	HandlerType: (*CollectionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "InitializeCollection",
			Handler:    _CollectionService_InitializeCollection_Handler,
		},
		{
			MethodName: "UpdateField",
			Handler:    _CollectionService_UpdateField_Handler,
		},
		{
			MethodName: "ResumeCollection",
			Handler:    _CollectionService_ResumeCollection_Handler,
		},
		{
			MethodName: "FinalizeCollection",
			Handler:    _CollectionService_FinalizeCollection_Handler,
		},
		{
			MethodName: "ClearState",
			Handler:    _CollectionService_ClearState_Handler,
		},
		{
			MethodName: "GetState",
			Handler:    _CollectionService_GetState_Handler,
		},
		{
			MethodName: "GetActiveSession",
			Handler:    _CollectionService_GetActiveSession_Handler,
		},
		{
			MethodName: "GetTemplate",
			Handler:    _CollectionService_GetTemplate_Handler,
		},
		{
			MethodName: "GetContract",
			Handler:    _CollectionService_GetContract_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "onboarding/v1/collection.proto",
}
