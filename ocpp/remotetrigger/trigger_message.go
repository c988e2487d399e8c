package remotetrigger

import (
	"ocppcore/ocpp"
	"ocppcore/types"
	"reflect"
)

const TriggerMessageFeatureName = "TriggerMessage"
const ProfileName = "RemoteTrigger"

type TriggerMessageRequest struct {
	RequestedMessage types.MessageTrigger `json:"requestedMessage"`
	ConnectorId      *int                 `json:"connectorId,omitempty"`
}

type TriggerMessageResponse struct {
	Status types.TriggerMessageStatus `json:"status"`
}

type TriggerMessageFeature struct{}

func (f TriggerMessageFeature) GetFeatureName() string {
	return TriggerMessageFeatureName
}

func (f TriggerMessageFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(TriggerMessageRequest{})
}

func (f TriggerMessageFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(TriggerMessageResponse{})
}

func (r TriggerMessageRequest) GetFeatureName() string {
	return TriggerMessageFeatureName
}

func (c TriggerMessageResponse) GetFeatureName() string {
	return TriggerMessageFeatureName
}

// NewTriggerMessageRequest a negative connectorId leaves the connector unspecified
func NewTriggerMessageRequest(requestedMessage types.MessageTrigger, connectorId int) *TriggerMessageRequest {
	request := &TriggerMessageRequest{RequestedMessage: requestedMessage}
	if connectorId >= 0 {
		request.ConnectorId = &connectorId
	}
	return request
}

var Profile = []ocpp.Feature{
	TriggerMessageFeature{},
}
