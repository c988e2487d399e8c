package smartcharging

import (
	"ocppcore/types"
	"reflect"
)

const ClearChargingProfileFeatureName = "ClearChargingProfile"

type ClearChargingProfileStatus string

const (
	ClearChargingProfileStatusAccepted ClearChargingProfileStatus = "Accepted"
	ClearChargingProfileStatusUnknown  ClearChargingProfileStatus = "Unknown"
)

func (s ClearChargingProfileStatus) IsValid() bool {
	return s == ClearChargingProfileStatusAccepted || s == ClearChargingProfileStatusUnknown
}

func (s *ClearChargingProfileStatus) UnmarshalJSON(data []byte) error {
	return types.UnmarshalEnum(data, s, "ClearChargingProfileStatus")
}

// ClearChargingProfileRequest Clears either the profile with the given Id or every profile matching the
// other criteria. An absent criterion matches all values; an absent ConnectorId matches all connectors.
type ClearChargingProfileRequest struct {
	Id                     *int                             `json:"id,omitempty"`
	ConnectorId            *int                             `json:"connectorId,omitempty"`
	ChargingProfilePurpose types.ChargingProfilePurposeType `json:"chargingProfilePurpose,omitempty"`
	StackLevel             *int                             `json:"stackLevel,omitempty"`
}

type ClearChargingProfileResponse struct {
	Status ClearChargingProfileStatus `json:"status"`
}

type ClearChargingProfileFeature struct{}

func (f ClearChargingProfileFeature) GetFeatureName() string {
	return ClearChargingProfileFeatureName
}

func (f ClearChargingProfileFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(ClearChargingProfileRequest{})
}

func (f ClearChargingProfileFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(ClearChargingProfileResponse{})
}

func (r ClearChargingProfileRequest) GetFeatureName() string {
	return ClearChargingProfileFeatureName
}

func (c ClearChargingProfileResponse) GetFeatureName() string {
	return ClearChargingProfileFeatureName
}

func NewClearChargingProfileRequest() *ClearChargingProfileRequest {
	return &ClearChargingProfileRequest{}
}

func NewClearDefaultChargingProfileRequest() *ClearChargingProfileRequest {
	id := 1
	stackLevel := 1
	return &ClearChargingProfileRequest{
		Id:                     &id,
		StackLevel:             &stackLevel,
		ChargingProfilePurpose: types.ChargingProfilePurposeTxDefaultProfile,
	}
}

func NewClearChargingProfileResponse(status ClearChargingProfileStatus) *ClearChargingProfileResponse {
	return &ClearChargingProfileResponse{Status: status}
}
