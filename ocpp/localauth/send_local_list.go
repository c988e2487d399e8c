package localauth

import (
	"ocppcore/types"
	"reflect"
)

const SendLocalListFeatureName = "SendLocalList"

type UpdateType string
type UpdateStatus string

const (
	UpdateTypeDifferential      UpdateType   = "Differential"
	UpdateTypeFull              UpdateType   = "Full"
	UpdateStatusAccepted        UpdateStatus = "Accepted"
	UpdateStatusFailed          UpdateStatus = "Failed"
	UpdateStatusNotSupported    UpdateStatus = "NotSupported"
	UpdateStatusVersionMismatch UpdateStatus = "VersionMismatch"
)

func (t UpdateType) IsValid() bool {
	return t == UpdateTypeDifferential || t == UpdateTypeFull
}

func (t *UpdateType) UnmarshalJSON(data []byte) error {
	return types.UnmarshalEnum(data, t, "UpdateType")
}

func (s UpdateStatus) IsValid() bool {
	switch s {
	case UpdateStatusAccepted, UpdateStatusFailed, UpdateStatusNotSupported, UpdateStatusVersionMismatch:
		return true
	}
	return false
}

func (s *UpdateStatus) UnmarshalJSON(data []byte) error {
	return types.UnmarshalEnum(data, s, "UpdateStatus")
}

type SendLocalListRequest struct {
	ListVersion            int                       `json:"listVersion"`
	LocalAuthorizationList []types.AuthorizationData `json:"localAuthorizationList,omitempty"`
	UpdateType             UpdateType                `json:"updateType"`
}

type SendLocalListResponse struct {
	Status UpdateStatus `json:"status"`
}

type SendLocalListFeature struct{}

func (f SendLocalListFeature) GetFeatureName() string {
	return SendLocalListFeatureName
}

func (f SendLocalListFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(SendLocalListRequest{})
}

func (f SendLocalListFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(SendLocalListResponse{})
}

func (r SendLocalListRequest) GetFeatureName() string {
	return SendLocalListFeatureName
}

func (c SendLocalListResponse) GetFeatureName() string {
	return SendLocalListFeatureName
}

// NewSendLocalListRequest creates SendLocalListRequest containing all required field. Optional fields may be set afterward.
func NewSendLocalListRequest(version int, updateType UpdateType, list ...types.AuthorizationData) *SendLocalListRequest {
	return &SendLocalListRequest{ListVersion: version, UpdateType: updateType, LocalAuthorizationList: list}
}

// NewSendLocalListResponse Creates a new SendLocalListConfirmation, containing all required fields. There are no optional fields for this message.
func NewSendLocalListResponse(status UpdateStatus) *SendLocalListResponse {
	return &SendLocalListResponse{Status: status}
}
