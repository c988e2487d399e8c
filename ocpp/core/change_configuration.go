package core

import (
	"ocppcore/ocpp"
	"ocppcore/types"
	"reflect"
)

const ChangeConfigurationFeatureName = "ChangeConfiguration"

type ChangeConfigurationRequest struct {
	Key   types.CiString50Type  `json:"key"`
	Value types.CiString500Type `json:"value"`
}

type ChangeConfigurationResponse struct {
	Status types.ConfigurationStatus `json:"status"`
}

type ChangeConfigurationFeature struct{}

func (f ChangeConfigurationFeature) GetFeatureName() string {
	return ChangeConfigurationFeatureName
}

func (f ChangeConfigurationFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(ChangeConfigurationRequest{})
}

func (f ChangeConfigurationFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(ChangeConfigurationResponse{})
}

func (request *ChangeConfigurationRequest) GetFeatureName() string {
	return ChangeConfigurationFeatureName
}

func (response *ChangeConfigurationResponse) GetFeatureName() string {
	return ChangeConfigurationFeatureName
}

func NewChangeConfigurationRequest(key, value string) (*ChangeConfigurationRequest, error) {
	k, err := types.NewCiString50Type(key)
	if err != nil {
		return nil, ocpp.Field("key", err)
	}
	v, err := types.NewCiString500Type(value)
	if err != nil {
		return nil, ocpp.Field("value", err)
	}
	return &ChangeConfigurationRequest{Key: k, Value: v}, nil
}

func NewChangeConfigurationResponse(status types.ConfigurationStatus) *ChangeConfigurationResponse {
	return &ChangeConfigurationResponse{Status: status}
}
