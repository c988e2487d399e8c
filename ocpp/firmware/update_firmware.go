package firmware

import (
	"ocppcore/types"
	"reflect"
)

const UpdateFirmwareFeatureName = "UpdateFirmware"

type UpdateFirmwareRequest struct {
	Location      string          `json:"location"`
	Retries       *int            `json:"retries,omitempty"`
	RetrieveDate  *types.DateTime `json:"retrieveDate"`
	RetryInterval *int            `json:"retryInterval,omitempty"`
}

type UpdateFirmwareResponse struct {
}

type UpdateFirmwareFeature struct{}

func (f UpdateFirmwareFeature) GetFeatureName() string {
	return UpdateFirmwareFeatureName
}

func (f UpdateFirmwareFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(UpdateFirmwareRequest{})
}

func (f UpdateFirmwareFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(UpdateFirmwareResponse{})
}

func (r UpdateFirmwareRequest) GetFeatureName() string {
	return UpdateFirmwareFeatureName
}

func (c UpdateFirmwareResponse) GetFeatureName() string {
	return UpdateFirmwareFeatureName
}

func NewUpdateFirmwareRequest(location string, retrieveDate *types.DateTime) *UpdateFirmwareRequest {
	return &UpdateFirmwareRequest{Location: location, RetrieveDate: retrieveDate}
}
