package core

import (
	"fmt"
	"ocppcore/ocpp"
	"ocppcore/types"
	"reflect"
)

const GetConfigurationFeatureName = "GetConfiguration"

// GetConfigurationRequest The field definition of the GetConfiguration request payload sent by the Central System to the Charge Point.
// An empty Key list asks for all known keys.
type GetConfigurationRequest struct {
	Key []types.CiString50Type `json:"key,omitempty"`
}

type GetConfigurationResponse struct {
	ConfigurationKey []types.KeyValue       `json:"configurationKey,omitempty"`
	UnknownKey       []types.CiString50Type `json:"unknownKey,omitempty"`
}

type GetConfigurationFeature struct{}

func (f GetConfigurationFeature) GetFeatureName() string {
	return GetConfigurationFeatureName
}

func (f GetConfigurationFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(GetConfigurationRequest{})
}

func (f GetConfigurationFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(GetConfigurationResponse{})
}

func (request *GetConfigurationRequest) GetFeatureName() string {
	return GetConfigurationFeatureName
}

func (response *GetConfigurationResponse) GetFeatureName() string {
	return GetConfigurationFeatureName
}

func NewGetConfigurationRequest(key []string) (*GetConfigurationRequest, error) {
	keys, err := ciStrings50(key, "key")
	if err != nil {
		return nil, err
	}
	return &GetConfigurationRequest{Key: keys}, nil
}

func NewGetConfigurationResponse(configurationKey []types.KeyValue, unknownKey []string) (*GetConfigurationResponse, error) {
	unknown, err := ciStrings50(unknownKey, "unknownKey")
	if err != nil {
		return nil, err
	}
	return &GetConfigurationResponse{ConfigurationKey: configurationKey, UnknownKey: unknown}, nil
}

func ciStrings50(raw []string, field string) ([]types.CiString50Type, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	result := make([]types.CiString50Type, 0, len(raw))
	for i, s := range raw {
		v, err := types.NewCiString50Type(s)
		if err != nil {
			return nil, ocpp.Field(fmt.Sprintf("%s[%d]", field, i), err)
		}
		result = append(result, v)
	}
	return result, nil
}
