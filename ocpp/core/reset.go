package core

import (
	"ocppcore/types"
	"reflect"
)

const ResetFeatureName = "Reset"

type ResetRequest struct {
	Type types.ResetType `json:"type"`
}

type ResetResponse struct {
	Status types.ResetStatus `json:"status"`
}

type ResetFeature struct{}

func (f ResetFeature) GetFeatureName() string {
	return ResetFeatureName
}

func (f ResetFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(ResetRequest{})
}

func (f ResetFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(ResetResponse{})
}

func NewResetRequest(resetType types.ResetType) *ResetRequest {
	return &ResetRequest{Type: resetType}
}

func (r *ResetRequest) GetFeatureName() string {
	return ResetFeatureName
}

func (r *ResetResponse) GetFeatureName() string {
	return ResetFeatureName
}
