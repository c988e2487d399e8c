package smartcharging

import (
	"ocppcore/types"
	"reflect"
	"time"
)

const SetChargingProfileFeatureName = "SetChargingProfile"

type ChargingProfileStatus string

const (
	ChargingProfileStatusAccepted     ChargingProfileStatus = "Accepted"
	ChargingProfileStatusRejected     ChargingProfileStatus = "Rejected"
	ChargingProfileStatusNotSupported ChargingProfileStatus = "NotSupported"
)

func (s ChargingProfileStatus) IsValid() bool {
	switch s {
	case ChargingProfileStatusAccepted, ChargingProfileStatusRejected, ChargingProfileStatusNotSupported:
		return true
	}
	return false
}

func (s *ChargingProfileStatus) UnmarshalJSON(data []byte) error {
	return types.UnmarshalEnum(data, s, "ChargingProfileStatus")
}

type SetChargingProfileRequest struct {
	ConnectorId     int                    `json:"connectorId"`
	ChargingProfile *types.ChargingProfile `json:"csChargingProfiles"`
}

type SetChargingProfileResponse struct {
	Status ChargingProfileStatus `json:"status"`
}

type SetChargingProfileFeature struct{}

func (f SetChargingProfileFeature) GetFeatureName() string {
	return SetChargingProfileFeatureName
}

func (f SetChargingProfileFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(SetChargingProfileRequest{})
}

func (f SetChargingProfileFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(SetChargingProfileResponse{})
}

func NewSetChargingProfileRequest(connectorId int, chargingProfile *types.ChargingProfile) *SetChargingProfileRequest {
	return &SetChargingProfileRequest{ConnectorId: connectorId, ChargingProfile: chargingProfile}
}

func (r SetChargingProfileRequest) GetFeatureName() string {
	return SetChargingProfileFeatureName
}

func (c SetChargingProfileResponse) GetFeatureName() string {
	return SetChargingProfileFeatureName
}

// NewDefaultChargingProfile daily recurring TxDefaultProfile with a single limit in amperes
func NewDefaultChargingProfile(limit int, start time.Time) *types.ChargingProfile {
	duration := 86400
	schedule := types.NewChargingSchedule(types.ChargingRateUnitAmperes, types.NewChargingSchedulePeriod(0, float64(limit)))
	schedule.StartSchedule = types.NewDateTime(start)
	schedule.Duration = &duration
	return &types.ChargingProfile{
		ChargingProfileId:      1,
		StackLevel:             1,
		ChargingProfilePurpose: types.ChargingProfilePurposeTxDefaultProfile,
		ChargingProfileKind:    types.ChargingProfileKindRecurring,
		RecurrencyKind:         types.RecurrencyKindDaily,
		ChargingSchedule:       schedule,
	}
}

func NewTransactionChargingProfile(transactionId, limit int) *types.ChargingProfile {
	return &types.ChargingProfile{
		ChargingProfileId:      10,
		StackLevel:             10,
		TransactionId:          &transactionId,
		ChargingProfilePurpose: types.ChargingProfilePurposeTxProfile,
		ChargingProfileKind:    types.ChargingProfileKindRelative,
		ChargingSchedule:       types.NewChargingSchedule(types.ChargingRateUnitAmperes, types.NewChargingSchedulePeriod(0, float64(limit))),
	}
}
