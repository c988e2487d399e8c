package core

import (
	"ocppcore/types"
	"reflect"
)

const StatusNotificationFeatureName = "StatusNotification"

// StatusNotificationRequest ConnectorId 0 reports the status of the main controller.
type StatusNotificationRequest struct {
	ConnectorId     int                        `json:"connectorId"`
	ErrorCode       types.ChargePointErrorCode `json:"errorCode"`
	Info            *types.CiString50Type      `json:"info,omitempty"`
	Status          types.ChargePointStatus    `json:"status"`
	Timestamp       *types.DateTime            `json:"timestamp,omitempty"`
	VendorId        *types.CiString255Type     `json:"vendorId,omitempty"`
	VendorErrorCode *types.CiString50Type      `json:"vendorErrorCode,omitempty"`
}

type StatusNotificationResponse struct {
}

type StatusNotificationFeature struct{}

func (f StatusNotificationFeature) GetFeatureName() string {
	return StatusNotificationFeatureName
}

func (f StatusNotificationFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(StatusNotificationRequest{})
}

func (f StatusNotificationFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(StatusNotificationResponse{})
}

func (r StatusNotificationRequest) GetFeatureName() string {
	return StatusNotificationFeatureName
}

func (c StatusNotificationResponse) GetFeatureName() string {
	return StatusNotificationFeatureName
}

func NewStatusNotificationRequest(connectorId int, errorCode types.ChargePointErrorCode, status types.ChargePointStatus) *StatusNotificationRequest {
	return &StatusNotificationRequest{ConnectorId: connectorId, ErrorCode: errorCode, Status: status}
}

func NewStatusNotificationResponse() *StatusNotificationResponse {
	return &StatusNotificationResponse{}
}
