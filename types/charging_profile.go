package types

// ChargingSchedulePeriod Start of the period is in seconds from the start of schedule and also defines the stop time of the previous period.
type ChargingSchedulePeriod struct {
	StartPeriod  int     `json:"startPeriod" bson:"start_period"`
	Limit        float64 `json:"limit" bson:"limit"`
	NumberPhases *int    `json:"numberPhases,omitempty" bson:"number_phases,omitempty"`
}

func NewChargingSchedulePeriod(startPeriod int, limit float64) ChargingSchedulePeriod {
	return ChargingSchedulePeriod{StartPeriod: startPeriod, Limit: limit}
}

// ChargingSchedule Limits for the available power or current over time.
// Without Duration the last period continues indefinitely; without StartSchedule the schedule is relative to the start of charging.
type ChargingSchedule struct {
	Duration               *int                     `json:"duration,omitempty" bson:"duration,omitempty"`
	StartSchedule          *DateTime                `json:"startSchedule,omitempty" bson:"start_schedule,omitempty"`
	ChargingRateUnit       ChargingRateUnitType     `json:"chargingRateUnit" bson:"charging_rate_unit"`
	ChargingSchedulePeriod []ChargingSchedulePeriod `json:"chargingSchedulePeriod" bson:"charging_schedule_period"`
	MinChargingRate        *float64                 `json:"minChargingRate,omitempty" bson:"min_charging_rate,omitempty"`
}

func NewChargingSchedule(chargingRateUnit ChargingRateUnitType, schedulePeriod ...ChargingSchedulePeriod) *ChargingSchedule {
	return &ChargingSchedule{ChargingRateUnit: chargingRateUnit, ChargingSchedulePeriod: schedulePeriod}
}

// ChargingProfile Higher StackLevel values have precedence. TransactionId is only meaningful for TxProfile.
type ChargingProfile struct {
	ChargingProfileId      int                        `json:"chargingProfileId" bson:"charging_profile_id"`
	TransactionId          *int                       `json:"transactionId,omitempty" bson:"transaction_id,omitempty"`
	StackLevel             int                        `json:"stackLevel" bson:"stack_level"`
	ChargingProfilePurpose ChargingProfilePurposeType `json:"chargingProfilePurpose" bson:"charging_profile_purpose"`
	ChargingProfileKind    ChargingProfileKindType    `json:"chargingProfileKind" bson:"charging_profile_kind"`
	RecurrencyKind         RecurrencyKindType         `json:"recurrencyKind,omitempty" bson:"recurrency_kind,omitempty"`
	ValidFrom              *DateTime                  `json:"validFrom,omitempty" bson:"valid_from,omitempty"`
	ValidTo                *DateTime                  `json:"validTo,omitempty" bson:"valid_to,omitempty"`
	ChargingSchedule       *ChargingSchedule          `json:"chargingSchedule" bson:"charging_schedule"`
}
