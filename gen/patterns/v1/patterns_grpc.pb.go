// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: patterns/v1/patterns.proto

package patternsv1

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
	AnalysisService_Analyze_FullMethodName       = "/patterns.v1.AnalysisService/Analyze"
	AnalysisService_GetCredits_FullMethodName    = "/patterns.v1.AnalysisService/GetCredits"
	AnalysisService_GrantAdReward_FullMethodName = "/patterns.v1.AnalysisService/GrantAdReward"
	AnalysisService_GetUsageStats_FullMethodName = "/patterns.v1.AnalysisService/GetUsageStats"
	AnalysisService_ExportUsage_FullMethodName   = "/patterns.v1.AnalysisService/ExportUsage"
	AnalysisService_RefreshModels_FullMethodName = "/patterns.v1.AnalysisService/RefreshModels"
)

// AnalysisServiceClient is the client API for AnalysisService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AnalysisService exposes pattern analysis and the usage ledger.
type AnalysisServiceClient interface {
	// Analyze runs one uploaded pattern document through the vision pipeline.
	Analyze(ctx context.Context, in *AnalyzeRequest, opts ...grpc.CallOption) (*AnalyzeResponse, error)
	// GetCredits reports the caller's current quota state.
	GetCredits(ctx context.Context, in *GetCreditsRequest, opts ...grpc.CallOption) (*GetCreditsResponse, error)
	// GrantAdReward credits the account for a confirmed rewarded-ad view.
	GrantAdReward(ctx context.Context, in *GrantAdRewardRequest, opts ...grpc.CallOption) (*GrantAdRewardResponse, error)
	// GetUsageStats aggregates lifetime counters with recent attempts.
	GetUsageStats(ctx context.Context, in *GetUsageStatsRequest, opts ...grpc.CallOption) (*GetUsageStatsResponse, error)
	// ExportUsage returns the attempt history as an XLSX workbook.
	ExportUsage(ctx context.Context, in *ExportUsageRequest, opts ...grpc.CallOption) (*ExportUsageResponse, error)
	// RefreshModels drops the model catalog cache and refetches it.
	RefreshModels(ctx context.Context, in *RefreshModelsRequest, opts ...grpc.CallOption) (*RefreshModelsResponse, error)
}

type analysisServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAnalysisServiceClient(cc grpc.ClientConnInterface) AnalysisServiceClient {
	return &analysisServiceClient{cc}
}

func (c *analysisServiceClient) Analyze(ctx context.Context, in *AnalyzeRequest, opts ...grpc.CallOption) (*AnalyzeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AnalyzeResponse)
	err := c.cc.Invoke(ctx, AnalysisService_Analyze_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *analysisServiceClient) GetCredits(ctx context.Context, in *GetCreditsRequest, opts ...grpc.CallOption) (*GetCreditsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCreditsResponse)
	err := c.cc.Invoke(ctx, AnalysisService_GetCredits_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *analysisServiceClient) GrantAdReward(ctx context.Context, in *GrantAdRewardRequest, opts ...grpc.CallOption) (*GrantAdRewardResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GrantAdRewardResponse)
	err := c.cc.Invoke(ctx, AnalysisService_GrantAdReward_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *analysisServiceClient) GetUsageStats(ctx context.Context, in *GetUsageStatsRequest, opts ...grpc.CallOption) (*GetUsageStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetUsageStatsResponse)
	err := c.cc.Invoke(ctx, AnalysisService_GetUsageStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *analysisServiceClient) ExportUsage(ctx context.Context, in *ExportUsageRequest, opts ...grpc.CallOption) (*ExportUsageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportUsageResponse)
	err := c.cc.Invoke(ctx, AnalysisService_ExportUsage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *analysisServiceClient) RefreshModels(ctx context.Context, in *RefreshModelsRequest, opts ...grpc.CallOption) (*RefreshModelsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RefreshModelsResponse)
	err := c.cc.Invoke(ctx, AnalysisService_RefreshModels_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AnalysisServiceServer is the server API for AnalysisService service.
// All implementations must embed UnimplementedAnalysisServiceServer
// for forward compatibility.
//
// AnalysisService exposes pattern analysis and the usage ledger.
type AnalysisServiceServer interface {
	// Analyze runs one uploaded pattern document through the vision pipeline.
	Analyze(context.Context, *AnalyzeRequest) (*AnalyzeResponse, error)
	// GetCredits reports the caller's current quota state.
	GetCredits(context.Context, *GetCreditsRequest) (*GetCreditsResponse, error)
	// GrantAdReward credits the account for a confirmed rewarded-ad view.
	GrantAdReward(context.Context, *GrantAdRewardRequest) (*GrantAdRewardResponse, error)
	// GetUsageStats aggregates lifetime counters with recent attempts.
	GetUsageStats(context.Context, *GetUsageStatsRequest) (*GetUsageStatsResponse, error)
	// ExportUsage returns the attempt history as an XLSX workbook.
	ExportUsage(context.Context, *ExportUsageRequest) (*ExportUsageResponse, error)
	// RefreshModels drops the model catalog cache and refetches it.
	RefreshModels(context.Context, *RefreshModelsRequest) (*RefreshModelsResponse, error)
	mustEmbedUnimplementedAnalysisServiceServer()
}

// UnimplementedAnalysisServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAnalysisServiceServer struct{}

func (UnimplementedAnalysisServiceServer) Analyze(context.Context, *AnalyzeRequest) (*AnalyzeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Analyze not implemented")
}
func (UnimplementedAnalysisServiceServer) GetCredits(context.Context, *GetCreditsRequest) (*GetCreditsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCredits not implemented")
}
func (UnimplementedAnalysisServiceServer) GrantAdReward(context.Context, *GrantAdRewardRequest) (*GrantAdRewardResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GrantAdReward not implemented")
}
func (UnimplementedAnalysisServiceServer) GetUsageStats(context.Context, *GetUsageStatsRequest) (*GetUsageStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUsageStats not implemented")
}
func (UnimplementedAnalysisServiceServer) ExportUsage(context.Context, *ExportUsageRequest) (*ExportUsageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportUsage not implemented")
}
func (UnimplementedAnalysisServiceServer) RefreshModels(context.Context, *RefreshModelsRequest) (*RefreshModelsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RefreshModels not implemented")
}
func (UnimplementedAnalysisServiceServer) mustEmbedUnimplementedAnalysisServiceServer() {}
func (UnimplementedAnalysisServiceServer) testEmbeddedByValue()                         {}

// UnsafeAnalysisServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AnalysisServiceServer will
// result in compilation errors.
type UnsafeAnalysisServiceServer interface {
	mustEmbedUnimplementedAnalysisServiceServer()
}

func RegisterAnalysisServiceServer(s grpc.ServiceRegistrar, srv AnalysisServiceServer) {
	// If the following call pancis, it indicates UnimplementedAnalysisServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AnalysisService_ServiceDesc, srv)
}

func _AnalysisService_Analyze_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AnalysisServiceServer).Analyze(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AnalysisService_Analyze_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AnalysisServiceServer).Analyze(ctx, req.(*AnalyzeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AnalysisService_GetCredits_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCreditsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AnalysisServiceServer).GetCredits(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AnalysisService_GetCredits_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AnalysisServiceServer).GetCredits(ctx, req.(*GetCreditsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AnalysisService_GrantAdReward_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GrantAdRewardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AnalysisServiceServer).GrantAdReward(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AnalysisService_GrantAdReward_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AnalysisServiceServer).GrantAdReward(ctx, req.(*GrantAdRewardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AnalysisService_GetUsageStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUsageStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AnalysisServiceServer).GetUsageStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AnalysisService_GetUsageStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AnalysisServiceServer).GetUsageStats(ctx, req.(*GetUsageStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AnalysisService_ExportUsage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportUsageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AnalysisServiceServer).ExportUsage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AnalysisService_ExportUsage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AnalysisServiceServer).ExportUsage(ctx, req.(*ExportUsageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AnalysisService_RefreshModels_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RefreshModelsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AnalysisServiceServer).RefreshModels(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AnalysisService_RefreshModels_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AnalysisServiceServer).RefreshModels(ctx, req.(*RefreshModelsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AnalysisService_ServiceDesc is the grpc.ServiceDesc for AnalysisService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AnalysisService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "patterns.v1.AnalysisService",
	HandlerType: (*AnalysisServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Analyze",
			Handler:    _AnalysisService_Analyze_Handler,
		},
		{
			MethodName: "GetCredits",
			Handler:    _AnalysisService_GetCredits_Handler,
		},
		{
			MethodName: "GrantAdReward",
			Handler:    _AnalysisService_GrantAdReward_Handler,
		},
		{
			MethodName: "GetUsageStats",
			Handler:    _AnalysisService_GetUsageStats_Handler,
		},
		{
			MethodName: "ExportUsage",
			Handler:    _AnalysisService_ExportUsage_Handler,
		},
		{
			MethodName: "RefreshModels",
			Handler:    _AnalysisService_RefreshModels_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "patterns/v1/patterns.proto",
}
