// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: patterns/v1/patterns.proto

package patternsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

type AnalyzeRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	UserId   string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FileName string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Data     []byte                 `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
	// Forces page-by-page analysis for PDFs; by default a whole-document
	// submission is attempted first.
	Paginated     bool `protobuf:"varint,4,opt,name=paginated,proto3" json:"paginated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeRequest) Reset() {
	*x = AnalyzeRequest{}
	mi := &file_patterns_v1_patterns_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeRequest) ProtoMessage() {}

func (x *AnalyzeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_patterns_v1_patterns_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeRequest) Descriptor() ([]byte, []int) {
	return file_patterns_v1_patterns_proto_rawDescGZIP(), []int{0}
}

func (x *AnalyzeRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *AnalyzeRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *AnalyzeRequest) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *AnalyzeRequest) GetPaginated() bool {
	if x != nil {
		return x.Paginated
	}
	return false
}

type StitchPoint struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Row           int32                  `protobuf:"varint,1,opt,name=row,proto3" json:"row,omitempty"`
	TargetStitch  int32                  `protobuf:"varint,2,opt,name=target_stitch,json=targetStitch,proto3" json:"target_stitch,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StitchPoint) Reset() {
	*x = StitchPoint{}
	mi := &file_patterns_v1_patterns_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StitchPoint) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StitchPoint) ProtoMessage() {}

func (x *StitchPoint) ProtoReflect() protoreflect.Message {
	mi := &file_patterns_v1_patterns_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StitchPoint.ProtoReflect.Descriptor instead.
func (*StitchPoint) Descriptor() ([]byte, []int) {
	return file_patterns_v1_patterns_proto_rawDescGZIP(), []int{1}
}

func (x *StitchPoint) GetRow() int32 {
	if x != nil {
		return x.Row
	}
	return 0
}

func (x *StitchPoint) GetTargetStitch() int32 {
	if x != nil {
		return x.TargetStitch
	}
	return 0
}

type PatternPart struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PartName      string                 `protobuf:"bytes,1,opt,name=part_name,json=partName,proto3" json:"part_name,omitempty"`
	StartRow      int32                  `protobuf:"varint,2,opt,name=start_row,json=startRow,proto3" json:"start_row,omitempty"`
	TargetRow     int32                  `protobuf:"varint,3,opt,name=target_row,json=targetRow,proto3" json:"target_row,omitempty"`
	StitchGuide   []*StitchPoint         `protobuf:"bytes,4,rep,name=stitch_guide,json=stitchGuide,proto3" json:"stitch_guide,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PatternPart) Reset() {
	*x = PatternPart{}
	mi := &file_patterns_v1_patterns_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PatternPart) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PatternPart) ProtoMessage() {}

func (x *PatternPart) ProtoReflect() protoreflect.Message {
	mi := &file_patterns_v1_patterns_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PatternPart.ProtoReflect.Descriptor instead.
func (*PatternPart) Descriptor() ([]byte, []int) {
	return file_patterns_v1_patterns_proto_rawDescGZIP(), []int{2}
}

func (x *PatternPart) GetPartName() string {
	if x != nil {
		return x.PartName
	}
	return ""
}

func (x *PatternPart) GetStartRow() int32 {
	if x != nil {
		return x.StartRow
	}
	return 0
}

func (x *PatternPart) GetTargetRow() int32 {
	if x != nil {
		return x.TargetRow
	}
	return 0
}

func (x *PatternPart) GetStitchGuide() []*StitchPoint {
	if x != nil {
		return x.StitchGuide
	}
	return nil
}

type PatternAnalysis struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectName   string                 `protobuf:"bytes,1,opt,name=project_name,json=projectName,proto3" json:"project_name,omitempty"`
	Parts         []*PatternPart         `protobuf:"bytes,2,rep,name=parts,proto3" json:"parts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PatternAnalysis) Reset() {
	*x = PatternAnalysis{}
	mi := &file_patterns_v1_patterns_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PatternAnalysis) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PatternAnalysis) ProtoMessage() {}

func (x *PatternAnalysis) ProtoReflect() protoreflect.Message {
	mi := &file_patterns_v1_patterns_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PatternAnalysis.ProtoReflect.Descriptor instead.
func (*PatternAnalysis) Descriptor() ([]byte, []int) {
	return file_patterns_v1_patterns_proto_rawDescGZIP(), []int{3}
}

func (x *PatternAnalysis) GetProjectName() string {
	if x != nil {
		return x.ProjectName
	}
	return ""
}

func (x *PatternAnalysis) GetParts() []*PatternPart {
	if x != nil {
		return x.Parts
	}
	return nil
}

type AnalyzeResponse struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Analysis *PatternAnalysis       `protobuf:"bytes,1,opt,name=analysis,proto3" json:"analysis,omitempty"`
	// One of RUNNING, SUCCEEDED, FAILED_FREE, FAILED_CHARGED.
	Status           string `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	CreditsRemaining int32  `protobuf:"varint,3,opt,name=credits_remaining,json=creditsRemaining,proto3" json:"credits_remaining,omitempty"`
	FileHash         string `protobuf:"bytes,4,opt,name=file_hash,json=fileHash,proto3" json:"file_hash,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *AnalyzeResponse) Reset() {
	*x = AnalyzeResponse{}
	mi := &file_patterns_v1_patterns_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeResponse) ProtoMessage() {}

func (x *AnalyzeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_patterns_v1_patterns_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeResponse) Descriptor() ([]byte, []int) {
	return file_patterns_v1_patterns_proto_rawDescGZIP(), []int{4}
}

func (x *AnalyzeResponse) GetAnalysis() *PatternAnalysis {
	if x != nil {
		return x.Analysis
	}
	return nil
}

func (x *AnalyzeResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *AnalyzeResponse) GetCreditsRemaining() int32 {
	if x != nil {
		return x.CreditsRemaining
	}
	return 0
}

func (x *AnalyzeResponse) GetFileHash() string {
	if x != nil {
		return x.FileHash
	}
	return ""
}

type GetCreditsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCreditsRequest) Reset() {
	*x = GetCreditsRequest{}
	mi := &file_patterns_v1_patterns_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCreditsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCreditsRequest) ProtoMessage() {}

func (x *GetCreditsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_patterns_v1_patterns_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCreditsRequest.ProtoReflect.Descriptor instead.
func (*GetCreditsRequest) Descriptor() ([]byte, []int) {
	return file_patterns_v1_patterns_proto_rawDescGZIP(), []int{5}
}

func (x *GetCreditsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type GetCreditsResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Credits            int32                  `protobuf:"varint,1,opt,name=credits,proto3" json:"credits,omitempty"`
	RemainingAdRewards int32                  `protobuf:"varint,2,opt,name=remaining_ad_rewards,json=remainingAdRewards,proto3" json:"remaining_ad_rewards,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *GetCreditsResponse) Reset() {
	*x = GetCreditsResponse{}
	mi := &file_patterns_v1_patterns_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCreditsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCreditsResponse) ProtoMessage() {}

func (x *GetCreditsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_patterns_v1_patterns_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCreditsResponse.ProtoReflect.Descriptor instead.
func (*GetCreditsResponse) Descriptor() ([]byte, []int) {
	return file_patterns_v1_patterns_proto_rawDescGZIP(), []int{6}
}

func (x *GetCreditsResponse) GetCredits() int32 {
	if x != nil {
		return x.Credits
	}
	return 0
}

func (x *GetCreditsResponse) GetRemainingAdRewards() int32 {
	if x != nil {
		return x.RemainingAdRewards
	}
	return 0
}

type GrantAdRewardRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	UserId string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	// Optional; the server default applies when zero.
	Amount        int32 `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GrantAdRewardRequest) Reset() {
	*x = GrantAdRewardRequest{}
	mi := &file_patterns_v1_patterns_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GrantAdRewardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GrantAdRewardRequest) ProtoMessage() {}

func (x *GrantAdRewardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_patterns_v1_patterns_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GrantAdRewardRequest.ProtoReflect.Descriptor instead.
func (*GrantAdRewardRequest) Descriptor() ([]byte, []int) {
	return file_patterns_v1_patterns_proto_rawDescGZIP(), []int{7}
}

func (x *GrantAdRewardRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GrantAdRewardRequest) GetAmount() int32 {
	if x != nil {
		return x.Amount
	}
	return 0
}

type GrantAdRewardResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Credits            int32                  `protobuf:"varint,1,opt,name=credits,proto3" json:"credits,omitempty"`
	RemainingAdRewards int32                  `protobuf:"varint,2,opt,name=remaining_ad_rewards,json=remainingAdRewards,proto3" json:"remaining_ad_rewards,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *GrantAdRewardResponse) Reset() {
	*x = GrantAdRewardResponse{}
	mi := &file_patterns_v1_patterns_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GrantAdRewardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GrantAdRewardResponse) ProtoMessage() {}

func (x *GrantAdRewardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_patterns_v1_patterns_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GrantAdRewardResponse.ProtoReflect.Descriptor instead.
func (*GrantAdRewardResponse) Descriptor() ([]byte, []int) {
	return file_patterns_v1_patterns_proto_rawDescGZIP(), []int{8}
}

func (x *GrantAdRewardResponse) GetCredits() int32 {
	if x != nil {
		return x.Credits
	}
	return 0
}

func (x *GrantAdRewardResponse) GetRemainingAdRewards() int32 {
	if x != nil {
		return x.RemainingAdRewards
	}
	return 0
}

type GetUsageStatsRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	UserId string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	// Optional YYYY-MM-DD lower bound for the attempt listing.
	SinceDate     string `protobuf:"bytes,2,opt,name=since_date,json=sinceDate,proto3" json:"since_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUsageStatsRequest) Reset() {
	*x = GetUsageStatsRequest{}
	mi := &file_patterns_v1_patterns_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUsageStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUsageStatsRequest) ProtoMessage() {}

func (x *GetUsageStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_patterns_v1_patterns_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUsageStatsRequest.ProtoReflect.Descriptor instead.
func (*GetUsageStatsRequest) Descriptor() ([]byte, []int) {
	return file_patterns_v1_patterns_proto_rawDescGZIP(), []int{9}
}

func (x *GetUsageStatsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetUsageStatsRequest) GetSinceDate() string {
	if x != nil {
		return x.SinceDate
	}
	return ""
}

type AnalysisAttempt struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FileName      string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	FileHash      string                 `protobuf:"bytes,3,opt,name=file_hash,json=fileHash,proto3" json:"file_hash,omitempty"`
	Succeeded     bool                   `protobuf:"varint,4,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	AttemptedAt   string                 `protobuf:"bytes,5,opt,name=attempted_at,json=attemptedAt,proto3" json:"attempted_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalysisAttempt) Reset() {
	*x = AnalysisAttempt{}
	mi := &file_patterns_v1_patterns_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalysisAttempt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalysisAttempt) ProtoMessage() {}

func (x *AnalysisAttempt) ProtoReflect() protoreflect.Message {
	mi := &file_patterns_v1_patterns_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalysisAttempt.ProtoReflect.Descriptor instead.
func (*AnalysisAttempt) Descriptor() ([]byte, []int) {
	return file_patterns_v1_patterns_proto_rawDescGZIP(), []int{10}
}

func (x *AnalysisAttempt) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *AnalysisAttempt) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *AnalysisAttempt) GetFileHash() string {
	if x != nil {
		return x.FileHash
	}
	return ""
}

func (x *AnalysisAttempt) GetSucceeded() bool {
	if x != nil {
		return x.Succeeded
	}
	return false
}

func (x *AnalysisAttempt) GetAttemptedAt() string {
	if x != nil {
		return x.AttemptedAt
	}
	return ""
}

type GetUsageStatsResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Credits        int32                  `protobuf:"varint,1,opt,name=credits,proto3" json:"credits,omitempty"`
	AdRewardsUsed  int32                  `protobuf:"varint,2,opt,name=ad_rewards_used,json=adRewardsUsed,proto3" json:"ad_rewards_used,omitempty"`
	TotalAttempts  int32                  `protobuf:"varint,3,opt,name=total_attempts,json=totalAttempts,proto3" json:"total_attempts,omitempty"`
	SuccessCount   int32                  `protobuf:"varint,4,opt,name=success_count,json=successCount,proto3" json:"success_count,omitempty"`
	FailureCount   int32                  `protobuf:"varint,5,opt,name=failure_count,json=failureCount,proto3" json:"failure_count,omitempty"`
	SuccessRate    float64                `protobuf:"fixed64,6,opt,name=success_rate,json=successRate,proto3" json:"success_rate,omitempty"`
	RecentAttempts []*AnalysisAttempt     `protobuf:"bytes,7,rep,name=recent_attempts,json=recentAttempts,proto3" json:"recent_attempts,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetUsageStatsResponse) Reset() {
	*x = GetUsageStatsResponse{}
	mi := &file_patterns_v1_patterns_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUsageStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUsageStatsResponse) ProtoMessage() {}

func (x *GetUsageStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_patterns_v1_patterns_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUsageStatsResponse.ProtoReflect.Descriptor instead.
func (*GetUsageStatsResponse) Descriptor() ([]byte, []int) {
	return file_patterns_v1_patterns_proto_rawDescGZIP(), []int{11}
}

func (x *GetUsageStatsResponse) GetCredits() int32 {
	if x != nil {
		return x.Credits
	}
	return 0
}

func (x *GetUsageStatsResponse) GetAdRewardsUsed() int32 {
	if x != nil {
		return x.AdRewardsUsed
	}
	return 0
}

func (x *GetUsageStatsResponse) GetTotalAttempts() int32 {
	if x != nil {
		return x.TotalAttempts
	}
	return 0
}

func (x *GetUsageStatsResponse) GetSuccessCount() int32 {
	if x != nil {
		return x.SuccessCount
	}
	return 0
}

func (x *GetUsageStatsResponse) GetFailureCount() int32 {
	if x != nil {
		return x.FailureCount
	}
	return 0
}

func (x *GetUsageStatsResponse) GetSuccessRate() float64 {
	if x != nil {
		return x.SuccessRate
	}
	return 0
}

func (x *GetUsageStatsResponse) GetRecentAttempts() []*AnalysisAttempt {
	if x != nil {
		return x.RecentAttempts
	}
	return nil
}

type ExportUsageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	SinceDate     string                 `protobuf:"bytes,2,opt,name=since_date,json=sinceDate,proto3" json:"since_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportUsageRequest) Reset() {
	*x = ExportUsageRequest{}
	mi := &file_patterns_v1_patterns_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportUsageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportUsageRequest) ProtoMessage() {}

func (x *ExportUsageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_patterns_v1_patterns_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportUsageRequest.ProtoReflect.Descriptor instead.
func (*ExportUsageRequest) Descriptor() ([]byte, []int) {
	return file_patterns_v1_patterns_proto_rawDescGZIP(), []int{12}
}

func (x *ExportUsageRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ExportUsageRequest) GetSinceDate() string {
	if x != nil {
		return x.SinceDate
	}
	return ""
}

type ExportUsageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportUsageResponse) Reset() {
	*x = ExportUsageResponse{}
	mi := &file_patterns_v1_patterns_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportUsageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportUsageResponse) ProtoMessage() {}

func (x *ExportUsageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_patterns_v1_patterns_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportUsageResponse.ProtoReflect.Descriptor instead.
func (*ExportUsageResponse) Descriptor() ([]byte, []int) {
	return file_patterns_v1_patterns_proto_rawDescGZIP(), []int{13}
}

func (x *ExportUsageResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type RefreshModelsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RefreshModelsRequest) Reset() {
	*x = RefreshModelsRequest{}
	mi := &file_patterns_v1_patterns_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefreshModelsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefreshModelsRequest) ProtoMessage() {}

func (x *RefreshModelsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_patterns_v1_patterns_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefreshModelsRequest.ProtoReflect.Descriptor instead.
func (*RefreshModelsRequest) Descriptor() ([]byte, []int) {
	return file_patterns_v1_patterns_proto_rawDescGZIP(), []int{14}
}

type RefreshModelsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Models        []string               `protobuf:"bytes,1,rep,name=models,proto3" json:"models,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RefreshModelsResponse) Reset() {
	*x = RefreshModelsResponse{}
	mi := &file_patterns_v1_patterns_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefreshModelsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefreshModelsResponse) ProtoMessage() {}

func (x *RefreshModelsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_patterns_v1_patterns_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefreshModelsResponse.ProtoReflect.Descriptor instead.
func (*RefreshModelsResponse) Descriptor() ([]byte, []int) {
	return file_patterns_v1_patterns_proto_rawDescGZIP(), []int{15}
}

func (x *RefreshModelsResponse) GetModels() []string {
	if x != nil {
		return x.Models
	}
	return nil
}

var File_patterns_v1_patterns_proto protoreflect.FileDescriptor

const file_patterns_v1_patterns_proto_rawDesc = "" +
	"\n" +
	"\x1apatterns/v1/patterns.proto\x12\vpatterns.v1\"x\n" +
	"\x0eAnalyzeRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\x12\x12\n" +
	"\x04data\x18\x03 \x01(\fR\x04data\x12\x1c\n" +
	"\tpaginated\x18\x04 \x01(\bR\tpaginated\"D\n" +
	"\vStitchPoint\x12\x10\n" +
	"\x03row\x18\x01 \x01(\x05R\x03row\x12#\n" +
	"\rtarget_stitch\x18\x02 \x01(\x05R\ftargetStitch\"\xa3\x01\n" +
	"\vPatternPart\x12\x1b\n" +
	"\tpart_name\x18\x01 \x01(\tR\bpartName\x12\x1b\n" +
	"\tstart_row\x18\x02 \x01(\x05R\bstartRow\x12\x1d\n" +
	"\n" +
	"target_row\x18\x03 \x01(\x05R\ttargetRow\x12;\n" +
	"\fstitch_guide\x18\x04 \x03(\v2\x18.patterns.v1.StitchPointR\vstitchGuide\"d\n" +
	"\x0fPatternAnalysis\x12!\n" +
	"\fproject_name\x18\x01 \x01(\tR\vprojectName\x12.\n" +
	"\x05parts\x18\x02 \x03(\v2\x18.patterns.v1.PatternPartR\x05parts\"\xad\x01\n" +
	"\x0fAnalyzeResponse\x128\n" +
	"\banalysis\x18\x01 \x01(\v2\x1c.patterns.v1.PatternAnalysisR\banalysis\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12+\n" +
	"\x11credits_remaining\x18\x03 \x01(\x05R\x10creditsRemaining\x12\x1b\n" +
	"\tfile_hash\x18\x04 \x01(\tR\bfileHash\",\n" +
	"\x11GetCreditsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"`\n" +
	"\x12GetCreditsResponse\x12\x18\n" +
	"\acredits\x18\x01 \x01(\x05R\acredits\x120\n" +
	"\x14remaining_ad_rewards\x18\x02 \x01(\x05R\x12remainingAdRewards\"G\n" +
	"\x14GrantAdRewardRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\x05R\x06amount\"c\n" +
	"\x15GrantAdRewardResponse\x12\x18\n" +
	"\acredits\x18\x01 \x01(\x05R\acredits\x120\n" +
	"\x14remaining_ad_rewards\x18\x02 \x01(\x05R\x12remainingAdRewards\"N\n" +
	"\x14GetUsageStatsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1d\n" +
	"\n" +
	"since_date\x18\x02 \x01(\tR\tsinceDate\"\x9c\x01\n" +
	"\x0fAnalysisAttempt\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\x12\x1b\n" +
	"\tfile_hash\x18\x03 \x01(\tR\bfileHash\x12\x1c\n" +
	"\tsucceeded\x18\x04 \x01(\bR\tsucceeded\x12!\n" +
	"\fattempted_at\x18\x05 \x01(\tR\vattemptedAt\"\xb4\x02\n" +
	"\x15GetUsageStatsResponse\x12\x18\n" +
	"\acredits\x18\x01 \x01(\x05R\acredits\x12&\n" +
	"\x0fad_rewards_used\x18\x02 \x01(\x05R\radRewardsUsed\x12%\n" +
	"\x0etotal_attempts\x18\x03 \x01(\x05R\rtotalAttempts\x12#\n" +
	"\rsuccess_count\x18\x04 \x01(\x05R\fsuccessCount\x12#\n" +
	"\rfailure_count\x18\x05 \x01(\x05R\ffailureCount\x12!\n" +
	"\fsuccess_rate\x18\x06 \x01(\x01R\vsuccessRate\x12E\n" +
	"\x0frecent_attempts\x18\a \x03(\v2\x1c.patterns.v1.AnalysisAttemptR\x0erecentAttempts\"L\n" +
	"\x12ExportUsageRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1d\n" +
	"\n" +
	"since_date\x18\x02 \x01(\tR\tsinceDate\")\n" +
	"\x13ExportUsageResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\x16\n" +
	"\x14RefreshModelsRequest\"/\n" +
	"\x15RefreshModelsResponse\x12\x16\n" +
	"\x06models\x18\x01 \x03(\tR\x06models2\x80\x04\n" +
	"\x0fAnalysisService\x12D\n" +
	"\aAnalyze\x12\x1b.patterns.v1.AnalyzeRequest\x1a\x1c.patterns.v1.AnalyzeResponse\x12M\n" +
	"\n" +
	"GetCredits\x12\x1e.patterns.v1.GetCreditsRequest\x1a\x1f.patterns.v1.GetCreditsResponse\x12V\n" +
	"\rGrantAdReward\x12!.patterns.v1.GrantAdRewardRequest\x1a\".patterns.v1.GrantAdRewardResponse\x12V\n" +
	"\rGetUsageStats\x12!.patterns.v1.GetUsageStatsRequest\x1a\".patterns.v1.GetUsageStatsResponse\x12P\n" +
	"\vExportUsage\x12\x1f.patterns.v1.ExportUsageRequest\x1a .patterns.v1.ExportUsageResponse\x12V\n" +
	"\rRefreshModels\x12!.patterns.v1.RefreshModelsRequest\x1a\".patterns.v1.RefreshModelsResponseBBZ@github.com/knitworks/pattern-analyzer/gen/patterns/v1;patternsv1b\x06proto3"

var (
	file_patterns_v1_patterns_proto_rawDescOnce sync.Once
	file_patterns_v1_patterns_proto_rawDescData []byte
)

func file_patterns_v1_patterns_proto_rawDescGZIP() []byte {
	file_patterns_v1_patterns_proto_rawDescOnce.Do(func() {
		file_patterns_v1_patterns_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_patterns_v1_patterns_proto_rawDesc), len(file_patterns_v1_patterns_proto_rawDesc)))
	})
	return file_patterns_v1_patterns_proto_rawDescData
}

var file_patterns_v1_patterns_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_patterns_v1_patterns_proto_goTypes = []any{
	(*AnalyzeRequest)(nil),        // 0: patterns.v1.AnalyzeRequest
	(*StitchPoint)(nil),           // 1: patterns.v1.StitchPoint
	(*PatternPart)(nil),           // 2: patterns.v1.PatternPart
	(*PatternAnalysis)(nil),       // 3: patterns.v1.PatternAnalysis
	(*AnalyzeResponse)(nil),       // 4: patterns.v1.AnalyzeResponse
	(*GetCreditsRequest)(nil),     // 5: patterns.v1.GetCreditsRequest
	(*GetCreditsResponse)(nil),    // 6: patterns.v1.GetCreditsResponse
	(*GrantAdRewardRequest)(nil),  // 7: patterns.v1.GrantAdRewardRequest
	(*GrantAdRewardResponse)(nil), // 8: patterns.v1.GrantAdRewardResponse
	(*GetUsageStatsRequest)(nil),  // 9: patterns.v1.GetUsageStatsRequest
	(*AnalysisAttempt)(nil),       // 10: patterns.v1.AnalysisAttempt
	(*GetUsageStatsResponse)(nil), // 11: patterns.v1.GetUsageStatsResponse
	(*ExportUsageRequest)(nil),    // 12: patterns.v1.ExportUsageRequest
	(*ExportUsageResponse)(nil),   // 13: patterns.v1.ExportUsageResponse
	(*RefreshModelsRequest)(nil),  // 14: patterns.v1.RefreshModelsRequest
	(*RefreshModelsResponse)(nil), // 15: patterns.v1.RefreshModelsResponse
}
var file_patterns_v1_patterns_proto_depIdxs = []int32{
	1,  // 0: patterns.v1.PatternPart.stitch_guide:type_name -> patterns.v1.StitchPoint
	2,  // 1: patterns.v1.PatternAnalysis.parts:type_name -> patterns.v1.PatternPart
	3,  // 2: patterns.v1.AnalyzeResponse.analysis:type_name -> patterns.v1.PatternAnalysis
	10, // 3: patterns.v1.GetUsageStatsResponse.recent_attempts:type_name -> patterns.v1.AnalysisAttempt
	0,  // 4: patterns.v1.AnalysisService.Analyze:input_type -> patterns.v1.AnalyzeRequest
	5,  // 5: patterns.v1.AnalysisService.GetCredits:input_type -> patterns.v1.GetCreditsRequest
	7,  // 6: patterns.v1.AnalysisService.GrantAdReward:input_type -> patterns.v1.GrantAdRewardRequest
	9,  // 7: patterns.v1.AnalysisService.GetUsageStats:input_type -> patterns.v1.GetUsageStatsRequest
	12, // 8: patterns.v1.AnalysisService.ExportUsage:input_type -> patterns.v1.ExportUsageRequest
	14, // 9: patterns.v1.AnalysisService.RefreshModels:input_type -> patterns.v1.RefreshModelsRequest
	4,  // 10: patterns.v1.AnalysisService.Analyze:output_type -> patterns.v1.AnalyzeResponse
	6,  // 11: patterns.v1.AnalysisService.GetCredits:output_type -> patterns.v1.GetCreditsResponse
	8,  // 12: patterns.v1.AnalysisService.GrantAdReward:output_type -> patterns.v1.GrantAdRewardResponse
	11, // 13: patterns.v1.AnalysisService.GetUsageStats:output_type -> patterns.v1.GetUsageStatsResponse
	13, // 14: patterns.v1.AnalysisService.ExportUsage:output_type -> patterns.v1.ExportUsageResponse
	15, // 15: patterns.v1.AnalysisService.RefreshModels:output_type -> patterns.v1.RefreshModelsResponse
	10, // [10:16] is the sub-list for method output_type
	4,  // [4:10] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_patterns_v1_patterns_proto_init() }
func file_patterns_v1_patterns_proto_init() {
	if File_patterns_v1_patterns_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_patterns_v1_patterns_proto_rawDesc), len(file_patterns_v1_patterns_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_patterns_v1_patterns_proto_goTypes,
		DependencyIndexes: file_patterns_v1_patterns_proto_depIdxs,
		MessageInfos:      file_patterns_v1_patterns_proto_msgTypes,
	}.Build()
	File_patterns_v1_patterns_proto = out.File
	file_patterns_v1_patterns_proto_goTypes = nil
	file_patterns_v1_patterns_proto_depIdxs = nil
}
