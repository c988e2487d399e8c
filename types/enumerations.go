package types

import "encoding/json"

// Enumeration is a closed set of wire strings.
type Enumeration interface {
	~string
	IsValid() bool
}

// UnmarshalEnum decodes a JSON string into v, rejecting values that are not
// members of T.
func UnmarshalEnum[T Enumeration](data []byte, v *T, name string) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !T(raw).IsValid() {
		return &UnknownValueError{Type: name, Value: raw}
	}
	*v = T(raw)
	return nil
}

type AuthorizationStatus string

const (
	AuthorizationStatusAccepted     AuthorizationStatus = "Accepted"
	AuthorizationStatusBlocked      AuthorizationStatus = "Blocked"
	AuthorizationStatusExpired      AuthorizationStatus = "Expired"
	AuthorizationStatusInvalid      AuthorizationStatus = "Invalid"
	AuthorizationStatusConcurrentTx AuthorizationStatus = "ConcurrentTx"
)

func (s AuthorizationStatus) IsValid() bool {
	switch s {
	case AuthorizationStatusAccepted, AuthorizationStatusBlocked, AuthorizationStatusExpired,
		AuthorizationStatusInvalid, AuthorizationStatusConcurrentTx:
		return true
	}
	return false
}

func (s *AuthorizationStatus) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, s, "AuthorizationStatus")
}

type ChargePointErrorCode string

const (
	ChargePointErrorConnectorLockFailure ChargePointErrorCode = "ConnectorLockFailure"
	ChargePointErrorEVCommunicationError ChargePointErrorCode = "EVCommunicationError"
	ChargePointErrorGroundFailure        ChargePointErrorCode = "GroundFailure"
	ChargePointErrorHighTemperature      ChargePointErrorCode = "HighTemperature"
	ChargePointErrorInternalError        ChargePointErrorCode = "InternalError"
	ChargePointErrorLocalListConflict    ChargePointErrorCode = "LocalListConflict"
	ChargePointErrorNoError              ChargePointErrorCode = "NoError"
	ChargePointErrorOtherError           ChargePointErrorCode = "OtherError"
	ChargePointErrorOverCurrentFailure   ChargePointErrorCode = "OverCurrentFailure"
	ChargePointErrorOverVoltage          ChargePointErrorCode = "OverVoltage"
	ChargePointErrorPowerMeterFailure    ChargePointErrorCode = "PowerMeterFailure"
	ChargePointErrorPowerSwitchFailure   ChargePointErrorCode = "PowerSwitchFailure"
	ChargePointErrorReaderFailure        ChargePointErrorCode = "ReaderFailure"
	ChargePointErrorResetFailure         ChargePointErrorCode = "ResetFailure"
	ChargePointErrorUnderVoltage         ChargePointErrorCode = "UnderVoltage"
	ChargePointErrorWeakSignal           ChargePointErrorCode = "WeakSignal"
)

func (c ChargePointErrorCode) IsValid() bool {
	switch c {
	case ChargePointErrorConnectorLockFailure, ChargePointErrorEVCommunicationError, ChargePointErrorGroundFailure,
		ChargePointErrorHighTemperature, ChargePointErrorInternalError, ChargePointErrorLocalListConflict,
		ChargePointErrorNoError, ChargePointErrorOtherError, ChargePointErrorOverCurrentFailure,
		ChargePointErrorOverVoltage, ChargePointErrorPowerMeterFailure, ChargePointErrorPowerSwitchFailure,
		ChargePointErrorReaderFailure, ChargePointErrorResetFailure, ChargePointErrorUnderVoltage,
		ChargePointErrorWeakSignal:
		return true
	}
	return false
}

func (c *ChargePointErrorCode) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, c, "ChargePointErrorCode")
}

type ChargePointStatus string

const (
	ChargePointStatusAvailable     ChargePointStatus = "Available"
	ChargePointStatusPreparing     ChargePointStatus = "Preparing"
	ChargePointStatusCharging      ChargePointStatus = "Charging"
	ChargePointStatusSuspendedEVSE ChargePointStatus = "SuspendedEVSE"
	ChargePointStatusSuspendedEV   ChargePointStatus = "SuspendedEV"
	ChargePointStatusFinishing     ChargePointStatus = "Finishing"
	ChargePointStatusReserved      ChargePointStatus = "Reserved"
	ChargePointStatusUnavailable   ChargePointStatus = "Unavailable"
	ChargePointStatusFaulted       ChargePointStatus = "Faulted"
)

func (s ChargePointStatus) IsValid() bool {
	switch s {
	case ChargePointStatusAvailable, ChargePointStatusPreparing, ChargePointStatusCharging,
		ChargePointStatusSuspendedEVSE, ChargePointStatusSuspendedEV, ChargePointStatusFinishing,
		ChargePointStatusReserved, ChargePointStatusUnavailable, ChargePointStatusFaulted:
		return true
	}
	return false
}

func (s *ChargePointStatus) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, s, "ChargePointStatus")
}

// Metering

type ReadingContext string
type ValueFormat string
type Measurand string
type Phase string
type Location string
type UnitOfMeasure string

const (
	ReadingContextInterruptionBegin ReadingContext = "Interruption.Begin"
	ReadingContextInterruptionEnd   ReadingContext = "Interruption.End"
	ReadingContextOther             ReadingContext = "Other"
	ReadingContextSampleClock       ReadingContext = "Sample.Clock"
	ReadingContextSamplePeriodic    ReadingContext = "Sample.Periodic"
	ReadingContextTransactionBegin  ReadingContext = "Transaction.Begin"
	ReadingContextTransactionEnd    ReadingContext = "Transaction.End"
	ReadingContextTrigger           ReadingContext = "Trigger"
)

const (
	ValueFormatRaw        ValueFormat = "Raw"
	ValueFormatSignedData ValueFormat = "SignedData"
)

const (
	MeasurandCurrentExport                Measurand = "Current.Export"
	MeasurandCurrentImport                Measurand = "Current.Import"
	MeasurandCurrentOffered               Measurand = "Current.Offered"
	MeasurandEnergyActiveExportRegister   Measurand = "Energy.Active.Export.Register"
	MeasurandEnergyActiveImportRegister   Measurand = "Energy.Active.Import.Register"
	MeasurandEnergyReactiveExportRegister Measurand = "Energy.Reactive.Export.Register"
	MeasurandEnergyReactiveImportRegister Measurand = "Energy.Reactive.Import.Register"
	MeasurandEnergyActiveExportInterval   Measurand = "Energy.Active.Export.Interval"
	MeasurandEnergyActiveImportInterval   Measurand = "Energy.Active.Import.Interval"
	MeasurandEnergyReactiveExportInterval Measurand = "Energy.Reactive.Export.Interval"
	MeasurandEnergyReactiveImportInterval Measurand = "Energy.Reactive.Import.Interval"
	MeasurandFrequency                    Measurand = "Frequency"
	MeasurandPowerActiveExport            Measurand = "Power.Active.Export"
	MeasurandPowerActiveImport            Measurand = "Power.Active.Import"
	MeasurandPowerFactor                  Measurand = "Power.Factor"
	MeasurandPowerOffered                 Measurand = "Power.Offered"
	MeasurandPowerReactiveExport          Measurand = "Power.Reactive.Export"
	MeasurandPowerReactiveImport          Measurand = "Power.Reactive.Import"
	MeasurandRPM                          Measurand = "RPM"
	MeasurandSoC                          Measurand = "SoC"
	MeasurandTemperature                  Measurand = "Temperature"
	MeasurandVoltage                      Measurand = "Voltage"
)

const (
	PhaseL1   Phase = "L1"
	PhaseL2   Phase = "L2"
	PhaseL3   Phase = "L3"
	PhaseN    Phase = "N"
	PhaseL1N  Phase = "L1-N"
	PhaseL2N  Phase = "L2-N"
	PhaseL3N  Phase = "L3-N"
	PhaseL1L2 Phase = "L1-L2"
	PhaseL2L3 Phase = "L2-L3"
	PhaseL3L1 Phase = "L3-L1"
)

const (
	LocationBody   Location = "Body"
	LocationCable  Location = "Cable"
	LocationEV     Location = "EV"
	LocationInlet  Location = "Inlet"
	LocationOutlet Location = "Outlet"
)

const (
	UnitOfMeasureWh         UnitOfMeasure = "Wh"
	UnitOfMeasureKWh        UnitOfMeasure = "kWh"
	UnitOfMeasureVarh       UnitOfMeasure = "varh"
	UnitOfMeasureKvarh      UnitOfMeasure = "kvarh"
	UnitOfMeasureW          UnitOfMeasure = "W"
	UnitOfMeasureKW         UnitOfMeasure = "kW"
	UnitOfMeasureVA         UnitOfMeasure = "VA"
	UnitOfMeasureKVA        UnitOfMeasure = "kVA"
	UnitOfMeasureVar        UnitOfMeasure = "var"
	UnitOfMeasureKvar       UnitOfMeasure = "kvar"
	UnitOfMeasureA          UnitOfMeasure = "A"
	UnitOfMeasureV          UnitOfMeasure = "V"
	UnitOfMeasureCelsius    UnitOfMeasure = "Celsius"
	UnitOfMeasureFahrenheit UnitOfMeasure = "Fahrenheit"
	UnitOfMeasureK          UnitOfMeasure = "K"
	UnitOfMeasurePercent    UnitOfMeasure = "Percent"
)

func (c ReadingContext) IsValid() bool {
	switch c {
	case ReadingContextInterruptionBegin, ReadingContextInterruptionEnd, ReadingContextOther,
		ReadingContextSampleClock, ReadingContextSamplePeriodic, ReadingContextTransactionBegin,
		ReadingContextTransactionEnd, ReadingContextTrigger:
		return true
	}
	return false
}

func (c *ReadingContext) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, c, "ReadingContext")
}

func (f ValueFormat) IsValid() bool {
	return f == ValueFormatRaw || f == ValueFormatSignedData
}

func (f *ValueFormat) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, f, "ValueFormat")
}

func (m Measurand) IsValid() bool {
	switch m {
	case MeasurandCurrentExport, MeasurandCurrentImport, MeasurandCurrentOffered,
		MeasurandEnergyActiveExportRegister, MeasurandEnergyActiveImportRegister,
		MeasurandEnergyReactiveExportRegister, MeasurandEnergyReactiveImportRegister,
		MeasurandEnergyActiveExportInterval, MeasurandEnergyActiveImportInterval,
		MeasurandEnergyReactiveExportInterval, MeasurandEnergyReactiveImportInterval,
		MeasurandFrequency, MeasurandPowerActiveExport, MeasurandPowerActiveImport,
		MeasurandPowerFactor, MeasurandPowerOffered, MeasurandPowerReactiveExport,
		MeasurandPowerReactiveImport, MeasurandRPM, MeasurandSoC, MeasurandTemperature,
		MeasurandVoltage:
		return true
	}
	return false
}

func (m *Measurand) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, m, "Measurand")
}

func (p Phase) IsValid() bool {
	switch p {
	case PhaseL1, PhaseL2, PhaseL3, PhaseN, PhaseL1N, PhaseL2N, PhaseL3N, PhaseL1L2, PhaseL2L3, PhaseL3L1:
		return true
	}
	return false
}

func (p *Phase) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, p, "Phase")
}

func (l Location) IsValid() bool {
	switch l {
	case LocationBody, LocationCable, LocationEV, LocationInlet, LocationOutlet:
		return true
	}
	return false
}

func (l *Location) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, l, "Location")
}

func (u UnitOfMeasure) IsValid() bool {
	switch u {
	case UnitOfMeasureWh, UnitOfMeasureKWh, UnitOfMeasureVarh, UnitOfMeasureKvarh,
		UnitOfMeasureW, UnitOfMeasureKW, UnitOfMeasureVA, UnitOfMeasureKVA,
		UnitOfMeasureVar, UnitOfMeasureKvar, UnitOfMeasureA, UnitOfMeasureV,
		UnitOfMeasureCelsius, UnitOfMeasureFahrenheit, UnitOfMeasureK, UnitOfMeasurePercent:
		return true
	}
	return false
}

func (u *UnitOfMeasure) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, u, "UnitOfMeasure")
}

// Charging Profiles

type ChargingProfilePurposeType string
type ChargingProfileKindType string
type RecurrencyKindType string
type ChargingRateUnitType string

const (
	ChargingProfilePurposeChargePointMaxProfile ChargingProfilePurposeType = "ChargePointMaxProfile"
	ChargingProfilePurposeTxDefaultProfile      ChargingProfilePurposeType = "TxDefaultProfile"
	ChargingProfilePurposeTxProfile             ChargingProfilePurposeType = "TxProfile"
	ChargingProfileKindAbsolute                 ChargingProfileKindType    = "Absolute"
	ChargingProfileKindRecurring                ChargingProfileKindType    = "Recurring"
	ChargingProfileKindRelative                 ChargingProfileKindType    = "Relative"
	RecurrencyKindDaily                         RecurrencyKindType         = "Daily"
	RecurrencyKindWeekly                        RecurrencyKindType         = "Weekly"
	ChargingRateUnitWatts                       ChargingRateUnitType       = "W"
	ChargingRateUnitAmperes                     ChargingRateUnitType       = "A"
)

func (p ChargingProfilePurposeType) IsValid() bool {
	switch p {
	case ChargingProfilePurposeChargePointMaxProfile, ChargingProfilePurposeTxDefaultProfile, ChargingProfilePurposeTxProfile:
		return true
	}
	return false
}

func (p *ChargingProfilePurposeType) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, p, "ChargingProfilePurposeType")
}

func (k ChargingProfileKindType) IsValid() bool {
	switch k {
	case ChargingProfileKindAbsolute, ChargingProfileKindRecurring, ChargingProfileKindRelative:
		return true
	}
	return false
}

func (k *ChargingProfileKindType) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, k, "ChargingProfileKindType")
}

func (k RecurrencyKindType) IsValid() bool {
	return k == RecurrencyKindDaily || k == RecurrencyKindWeekly
}

func (k *RecurrencyKindType) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, k, "RecurrencyKindType")
}

func (u ChargingRateUnitType) IsValid() bool {
	return u == ChargingRateUnitWatts || u == ChargingRateUnitAmperes
}

func (u *ChargingRateUnitType) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, u, "ChargingRateUnitType")
}

// Reason for stopping a transaction.
type Reason string

const (
	ReasonDeAuthorized   Reason = "DeAuthorized"
	ReasonEmergencyStop  Reason = "EmergencyStop"
	ReasonEVDisconnected Reason = "EVDisconnected"
	ReasonHardReset      Reason = "HardReset"
	ReasonLocal          Reason = "Local"
	ReasonOther          Reason = "Other"
	ReasonPowerLoss      Reason = "PowerLoss"
	ReasonReboot         Reason = "Reboot"
	ReasonRemote         Reason = "Remote"
	ReasonSoftReset      Reason = "SoftReset"
	ReasonUnlockCommand  Reason = "UnlockCommand"
)

func (r Reason) IsValid() bool {
	switch r {
	case ReasonDeAuthorized, ReasonEmergencyStop, ReasonEVDisconnected, ReasonHardReset, ReasonLocal,
		ReasonOther, ReasonPowerLoss, ReasonReboot, ReasonRemote, ReasonSoftReset, ReasonUnlockCommand:
		return true
	}
	return false
}

func (r *Reason) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, r, "Reason")
}

type MessageTrigger string
type TriggerMessageStatus string

const (
	MessageTriggerBootNotification              MessageTrigger       = "BootNotification"
	MessageTriggerDiagnosticsStatusNotification MessageTrigger       = "DiagnosticsStatusNotification"
	MessageTriggerFirmwareStatusNotification    MessageTrigger       = "FirmwareStatusNotification"
	MessageTriggerHeartbeat                     MessageTrigger       = "Heartbeat"
	MessageTriggerMeterValues                   MessageTrigger       = "MeterValues"
	MessageTriggerStatusNotification            MessageTrigger       = "StatusNotification"
	TriggerMessageStatusAccepted                TriggerMessageStatus = "Accepted"
	TriggerMessageStatusRejected                TriggerMessageStatus = "Rejected"
	TriggerMessageStatusNotImplemented          TriggerMessageStatus = "NotImplemented"
)

func (m MessageTrigger) IsValid() bool {
	switch m {
	case MessageTriggerBootNotification, MessageTriggerDiagnosticsStatusNotification,
		MessageTriggerFirmwareStatusNotification, MessageTriggerHeartbeat,
		MessageTriggerMeterValues, MessageTriggerStatusNotification:
		return true
	}
	return false
}

func (m *MessageTrigger) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, m, "MessageTrigger")
}

func (s TriggerMessageStatus) IsValid() bool {
	switch s {
	case TriggerMessageStatusAccepted, TriggerMessageStatusRejected, TriggerMessageStatusNotImplemented:
		return true
	}
	return false
}

func (s *TriggerMessageStatus) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, s, "TriggerMessageStatus")
}

type RemoteStartStopStatus string

const (
	RemoteStartStopStatusAccepted RemoteStartStopStatus = "Accepted"
	RemoteStartStopStatusRejected RemoteStartStopStatus = "Rejected"
)

func (s RemoteStartStopStatus) IsValid() bool {
	return s == RemoteStartStopStatusAccepted || s == RemoteStartStopStatusRejected
}

func (s *RemoteStartStopStatus) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, s, "RemoteStartStopStatus")
}

type ReservationStatus string

const (
	ReservationStatusAccepted    ReservationStatus = "Accepted"
	ReservationStatusFaulted     ReservationStatus = "Faulted"
	ReservationStatusOccupied    ReservationStatus = "Occupied"
	ReservationStatusRejected    ReservationStatus = "Rejected"
	ReservationStatusUnavailable ReservationStatus = "Unavailable"
)

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusAccepted, ReservationStatusFaulted, ReservationStatusOccupied,
		ReservationStatusRejected, ReservationStatusUnavailable:
		return true
	}
	return false
}

func (s *ReservationStatus) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, s, "ReservationStatus")
}

type ResetType string
type ResetStatus string

const (
	ResetTypeHard       ResetType   = "Hard"
	ResetTypeSoft       ResetType   = "Soft"
	ResetStatusAccepted ResetStatus = "Accepted"
	ResetStatusRejected ResetStatus = "Rejected"
)

func (t ResetType) IsValid() bool {
	return t == ResetTypeHard || t == ResetTypeSoft
}

func (t *ResetType) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, t, "ResetType")
}

func (s ResetStatus) IsValid() bool {
	return s == ResetStatusAccepted || s == ResetStatusRejected
}

func (s *ResetStatus) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, s, "ResetStatus")
}

type UnlockStatus string

const (
	UnlockStatusUnlocked     UnlockStatus = "Unlocked"
	UnlockStatusUnlockFailed UnlockStatus = "UnlockFailed"
	UnlockStatusNotSupported UnlockStatus = "NotSupported"
)

func (s UnlockStatus) IsValid() bool {
	switch s {
	case UnlockStatusUnlocked, UnlockStatusUnlockFailed, UnlockStatusNotSupported:
		return true
	}
	return false
}

func (s *UnlockStatus) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, s, "UnlockStatus")
}

type ConfigurationStatus string

const (
	ConfigurationStatusAccepted       ConfigurationStatus = "Accepted"
	ConfigurationStatusRejected       ConfigurationStatus = "Rejected"
	ConfigurationStatusRebootRequired ConfigurationStatus = "RebootRequired"
	ConfigurationStatusNotSupported   ConfigurationStatus = "NotSupported"
)

func (s ConfigurationStatus) IsValid() bool {
	switch s {
	case ConfigurationStatusAccepted, ConfigurationStatusRejected,
		ConfigurationStatusRebootRequired, ConfigurationStatusNotSupported:
		return true
	}
	return false
}

func (s *ConfigurationStatus) UnmarshalJSON(data []byte) error {
	return UnmarshalEnum(data, s, "ConfigurationStatus")
}
