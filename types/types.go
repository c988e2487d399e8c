package types

const SubProtocol16 = "ocpp1.6"

// SampledValue Single sampled value in MeterValues. Value is a string to allow for signed data readings.
type SampledValue struct {
	Value     string         `json:"value" bson:"value"`
	Context   ReadingContext `json:"context,omitempty" bson:"context,omitempty"`
	Format    ValueFormat    `json:"format,omitempty" bson:"format,omitempty"`
	Measurand Measurand      `json:"measurand,omitempty" bson:"measurand,omitempty"`
	Phase     Phase          `json:"phase,omitempty" bson:"phase,omitempty"`
	Location  Location       `json:"location,omitempty" bson:"location,omitempty"`
	Unit      UnitOfMeasure  `json:"unit,omitempty" bson:"unit,omitempty"`
}

// MeterValue Collection of one or more sampled values, all sampled at the same time.
type MeterValue struct {
	Timestamp    *DateTime      `json:"timestamp" bson:"timestamp"`
	SampledValue []SampledValue `json:"sampledValue" bson:"sampled_value"`
}

func NewMeterValue(timestamp *DateTime, sampledValue ...SampledValue) MeterValue {
	return MeterValue{Timestamp: timestamp, SampledValue: sampledValue}
}

// KeyValue Contains information about a specific configuration key. It is returned in GetConfiguration response.
// Value is absent when the key is known but not set.
type KeyValue struct {
	Key      CiString50Type   `json:"key" bson:"key"`
	Readonly bool             `json:"readonly" bson:"readonly"`
	Value    *CiString500Type `json:"value,omitempty" bson:"value,omitempty"`
}

func NewKeyValue(key string, readonly bool, value *string) (*KeyValue, error) {
	k, err := NewCiString50Type(key)
	if err != nil {
		return nil, err
	}
	v, err := NewOptionalCiString[Len500](value)
	if err != nil {
		return nil, err
	}
	return &KeyValue{Key: k, Readonly: readonly, Value: v}, nil
}
