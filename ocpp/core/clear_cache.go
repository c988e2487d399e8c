package core

import (
	"ocppcore/types"
	"reflect"
)

const ClearCacheFeatureName = "ClearCache"

type ClearCacheStatus string

const (
	ClearCacheStatusAccepted ClearCacheStatus = "Accepted"
	ClearCacheStatusRejected ClearCacheStatus = "Rejected"
)

func (s ClearCacheStatus) IsValid() bool {
	return s == ClearCacheStatusAccepted || s == ClearCacheStatusRejected
}

func (s *ClearCacheStatus) UnmarshalJSON(data []byte) error {
	return types.UnmarshalEnum(data, s, "ClearCacheStatus")
}

type ClearCacheRequest struct {
}

type ClearCacheResponse struct {
	Status ClearCacheStatus `json:"status"`
}

type ClearCacheFeature struct{}

func (f ClearCacheFeature) GetFeatureName() string {
	return ClearCacheFeatureName
}

func (f ClearCacheFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(ClearCacheRequest{})
}

func (f ClearCacheFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(ClearCacheResponse{})
}

func (r *ClearCacheRequest) GetFeatureName() string {
	return ClearCacheFeatureName
}

func (r *ClearCacheResponse) GetFeatureName() string {
	return ClearCacheFeatureName
}

func NewClearCacheRequest() *ClearCacheRequest {
	return &ClearCacheRequest{}
}

func NewClearCacheResponse(status ClearCacheStatus) *ClearCacheResponse {
	return &ClearCacheResponse{Status: status}
}
