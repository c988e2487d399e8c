package smartcharging

import "ocppcore/ocpp"

const ProfileName = "SmartCharging"

var Profile = []ocpp.Feature{
	ClearChargingProfileFeature{},
	GetCompositeScheduleFeature{},
	SetChargingProfileFeature{},
}
