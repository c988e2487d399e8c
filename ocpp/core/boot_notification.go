package core

import (
	"ocppcore/ocpp"
	"ocppcore/types"
	"reflect"
)

const BootNotificationFeatureName = "BootNotification"

// RegistrationStatus Result of registration in response to a BootNotification request.
type RegistrationStatus string

const (
	RegistrationStatusAccepted RegistrationStatus = "Accepted"
	RegistrationStatusPending  RegistrationStatus = "Pending"
	RegistrationStatusRejected RegistrationStatus = "Rejected"
)

func (s RegistrationStatus) IsValid() bool {
	switch s {
	case RegistrationStatusAccepted, RegistrationStatusPending, RegistrationStatusRejected:
		return true
	}
	return false
}

func (s *RegistrationStatus) UnmarshalJSON(data []byte) error {
	return types.UnmarshalEnum(data, s, "RegistrationStatus")
}

// BootNotificationRequest Vendor and model are required; the rest are optional and may be set after construction.
// ChargeBoxSerialNumber is deprecated in favour of ChargePointSerialNumber.
type BootNotificationRequest struct {
	ChargeBoxSerialNumber   *types.CiString25Type `json:"chargeBoxSerialNumber,omitempty"`
	ChargePointModel        types.CiString20Type  `json:"chargePointModel"`
	ChargePointSerialNumber *types.CiString25Type `json:"chargePointSerialNumber,omitempty"`
	ChargePointVendor       types.CiString20Type  `json:"chargePointVendor"`
	FirmwareVersion         *types.CiString50Type `json:"firmwareVersion,omitempty"`
	Iccid                   *types.CiString20Type `json:"iccid,omitempty"`
	Imsi                    *types.CiString20Type `json:"imsi,omitempty"`
	MeterSerialNumber       *types.CiString25Type `json:"meterSerialNumber,omitempty"`
	MeterType               *types.CiString25Type `json:"meterType,omitempty"`
}

// BootNotificationResponse Interval is the heartbeat interval in seconds when accepted, otherwise the retry interval.
type BootNotificationResponse struct {
	CurrentTime *types.DateTime    `json:"currentTime"`
	Interval    int                `json:"interval"`
	Status      RegistrationStatus `json:"status"`
}

type BootNotificationFeature struct{}

func (f BootNotificationFeature) GetFeatureName() string {
	return BootNotificationFeatureName
}

func (f BootNotificationFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(BootNotificationRequest{})
}

func (f BootNotificationFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(BootNotificationResponse{})
}

func (r *BootNotificationRequest) GetFeatureName() string {
	return BootNotificationFeatureName
}

func (r *BootNotificationResponse) GetFeatureName() string {
	return BootNotificationFeatureName
}

// NewBootNotificationRequest Creates a request with the required fields only.
func NewBootNotificationRequest(chargePointVendor, chargePointModel string) (*BootNotificationRequest, error) {
	vendor, err := types.NewCiString20Type(chargePointVendor)
	if err != nil {
		return nil, ocpp.Field("chargePointVendor", err)
	}
	model, err := types.NewCiString20Type(chargePointModel)
	if err != nil {
		return nil, ocpp.Field("chargePointModel", err)
	}
	return &BootNotificationRequest{ChargePointVendor: vendor, ChargePointModel: model}, nil
}

// NewBootNotificationResponse Creates a new BootNotificationResponse. There are no optional fields for this message.
func NewBootNotificationResponse(currentTime *types.DateTime, interval int, status RegistrationStatus) *BootNotificationResponse {
	return &BootNotificationResponse{CurrentTime: currentTime, Interval: interval, Status: status}
}
