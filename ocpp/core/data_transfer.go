package core

import (
	"ocppcore/ocpp"
	"ocppcore/types"
	"reflect"
)

const DataTransferFeatureName = "DataTransfer"

type DataTransferStatus string

const (
	DataTransferStatusAccepted         DataTransferStatus = "Accepted"
	DataTransferStatusRejected         DataTransferStatus = "Rejected"
	DataTransferStatusUnknownMessageId DataTransferStatus = "UnknownMessageId"
	DataTransferStatusUnknownVendorId  DataTransferStatus = "UnknownVendorId"
)

func (s DataTransferStatus) IsValid() bool {
	switch s {
	case DataTransferStatusAccepted, DataTransferStatusRejected,
		DataTransferStatusUnknownMessageId, DataTransferStatusUnknownVendorId:
		return true
	}
	return false
}

func (s *DataTransferStatus) UnmarshalJSON(data []byte) error {
	return types.UnmarshalEnum(data, s, "DataTransferStatus")
}

// DataTransferRequest Data has no specified length or format.
type DataTransferRequest struct {
	VendorId  types.CiString255Type `json:"vendorId"`
	MessageId *types.CiString50Type `json:"messageId,omitempty"`
	Data      interface{}           `json:"data,omitempty"`
}

type DataTransferResponse struct {
	Status DataTransferStatus `json:"status"`
	Data   interface{}        `json:"data,omitempty"`
}

type DataTransferFeature struct{}

func (f DataTransferFeature) GetFeatureName() string {
	return DataTransferFeatureName
}

func (f DataTransferFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(DataTransferRequest{})
}

func (f DataTransferFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(DataTransferResponse{})
}

func (r DataTransferRequest) GetFeatureName() string {
	return DataTransferFeatureName
}

func (c DataTransferResponse) GetFeatureName() string {
	return DataTransferFeatureName
}

// NewDataTransferRequest messageId may be nil.
func NewDataTransferRequest(vendorId string, messageId *string, data interface{}) (*DataTransferRequest, error) {
	vendor, err := types.NewCiString255Type(vendorId)
	if err != nil {
		return nil, ocpp.Field("vendorId", err)
	}
	message, err := types.NewOptionalCiString[types.Len50](messageId)
	if err != nil {
		return nil, ocpp.Field("messageId", err)
	}
	return &DataTransferRequest{VendorId: vendor, MessageId: message, Data: data}, nil
}

func NewDataTransferResponse(status DataTransferStatus) *DataTransferResponse {
	return &DataTransferResponse{Status: status}
}
