package firmware

import (
	"ocppcore/ocpp"
	"ocppcore/types"
	"reflect"
)

const GetDiagnosticsFeatureName = "GetDiagnostics"

// GetDiagnosticsRequest Location is the directory URI the diagnostics file is uploaded to.
type GetDiagnosticsRequest struct {
	Location      string          `json:"location"`
	Retries       *int            `json:"retries,omitempty"`
	RetryInterval *int            `json:"retryInterval,omitempty"`
	StartTime     *types.DateTime `json:"startTime,omitempty"`
	StopTime      *types.DateTime `json:"stopTime,omitempty"`
}

// GetDiagnosticsResponse FileName is absent when no diagnostics are available.
type GetDiagnosticsResponse struct {
	FileName *types.CiString255Type `json:"fileName,omitempty"`
}

type GetDiagnosticsFeature struct{}

func (f GetDiagnosticsFeature) GetFeatureName() string {
	return GetDiagnosticsFeatureName
}

func (f GetDiagnosticsFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(GetDiagnosticsRequest{})
}

func (f GetDiagnosticsFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(GetDiagnosticsResponse{})
}

func (r GetDiagnosticsRequest) GetFeatureName() string {
	return GetDiagnosticsFeatureName
}

func (c GetDiagnosticsResponse) GetFeatureName() string {
	return GetDiagnosticsFeatureName
}

func NewGetDiagnosticsRequest(location string) *GetDiagnosticsRequest {
	return &GetDiagnosticsRequest{Location: location}
}

func NewGetDiagnosticsResponse(fileName *string) (*GetDiagnosticsResponse, error) {
	name, err := types.NewOptionalCiString[types.Len255](fileName)
	if err != nil {
		return nil, ocpp.Field("fileName", err)
	}
	return &GetDiagnosticsResponse{FileName: name}, nil
}
