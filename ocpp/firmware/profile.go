package firmware

import "ocppcore/ocpp"

const ProfileName = "FirmwareManagement"

var Profile = []ocpp.Feature{
	DiagnosticsStatusNotificationFeature{},
	StatusNotificationFeature{},
	GetDiagnosticsFeature{},
	UpdateFirmwareFeature{},
}
