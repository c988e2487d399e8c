package firmware

import (
	"ocppcore/types"
	"reflect"
)

const StatusNotificationFeatureName = "FirmwareStatusNotification"

// Status Progress of a firmware installation.
type Status string

const (
	StatusDownloaded         Status = "Downloaded"
	StatusDownloadFailed     Status = "DownloadFailed"
	StatusDownloading        Status = "Downloading"
	StatusIdle               Status = "Idle"
	StatusInstallationFailed Status = "InstallationFailed"
	StatusInstalling         Status = "Installing"
	StatusInstalled          Status = "Installed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDownloaded, StatusDownloadFailed, StatusDownloading, StatusIdle,
		StatusInstallationFailed, StatusInstalling, StatusInstalled:
		return true
	}
	return false
}

func (s *Status) UnmarshalJSON(data []byte) error {
	return types.UnmarshalEnum(data, s, "FirmwareStatus")
}

type StatusNotificationRequest struct {
	Status Status `json:"status"`
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

func NewStatusNotificationRequest(status Status) *StatusNotificationRequest {
	return &StatusNotificationRequest{Status: status}
}

func NewStatusNotificationResponse() *StatusNotificationResponse {
	return &StatusNotificationResponse{}
}
