package firmware

import (
	"ocppcore/types"
	"reflect"
)

const DiagnosticsStatusNotificationFeatureName = "DiagnosticsStatusNotification"

type DiagnosticsStatus string

const (
	DiagnosticsStatusIdle         DiagnosticsStatus = "Idle"
	DiagnosticsStatusUploaded     DiagnosticsStatus = "Uploaded"
	DiagnosticsStatusUploadFailed DiagnosticsStatus = "UploadFailed"
	DiagnosticsStatusUploading    DiagnosticsStatus = "Uploading"
)

func (s DiagnosticsStatus) IsValid() bool {
	switch s {
	case DiagnosticsStatusIdle, DiagnosticsStatusUploaded, DiagnosticsStatusUploadFailed, DiagnosticsStatusUploading:
		return true
	}
	return false
}

func (s *DiagnosticsStatus) UnmarshalJSON(data []byte) error {
	return types.UnmarshalEnum(data, s, "DiagnosticsStatus")
}

type DiagnosticsStatusNotificationRequest struct {
	Status DiagnosticsStatus `json:"status"`
}

type DiagnosticsStatusNotificationResponse struct {
}

type DiagnosticsStatusNotificationFeature struct{}

func (f DiagnosticsStatusNotificationFeature) GetFeatureName() string {
	return DiagnosticsStatusNotificationFeatureName
}

func (f DiagnosticsStatusNotificationFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(DiagnosticsStatusNotificationRequest{})
}

func (f DiagnosticsStatusNotificationFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(DiagnosticsStatusNotificationResponse{})
}

func (r DiagnosticsStatusNotificationRequest) GetFeatureName() string {
	return DiagnosticsStatusNotificationFeatureName
}

func (c DiagnosticsStatusNotificationResponse) GetFeatureName() string {
	return DiagnosticsStatusNotificationFeatureName
}

func NewDiagnosticsStatusNotificationRequest(status DiagnosticsStatus) *DiagnosticsStatusNotificationRequest {
	return &DiagnosticsStatusNotificationRequest{Status: status}
}

func NewDiagnosticsStatusNotificationResponse() *DiagnosticsStatusNotificationResponse {
	return &DiagnosticsStatusNotificationResponse{}
}
