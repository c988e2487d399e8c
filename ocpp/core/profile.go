package core

import "ocppcore/ocpp"

const ProfileName = "Core"

// Profile lists the features of the Core profile.
var Profile = []ocpp.Feature{
	AuthorizeFeature{},
	BootNotificationFeature{},
	ChangeAvailabilityFeature{},
	ChangeConfigurationFeature{},
	ClearCacheFeature{},
	DataTransferFeature{},
	GetConfigurationFeature{},
	HeartbeatFeature{},
	MeterValuesFeature{},
	RemoteStartTransactionFeature{},
	RemoteStopTransactionFeature{},
	ResetFeature{},
	StartTransactionFeature{},
	StatusNotificationFeature{},
	StopTransactionFeature{},
	UnlockConnectorFeature{},
}
