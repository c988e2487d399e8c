package core

import (
	"ocppcore/ocpp"
	"ocppcore/types"
	"reflect"
)

const StopTransactionFeatureName = "StopTransaction"

type StopTransactionRequest struct {
	IdTag           *types.IdToken     `json:"idTag,omitempty"`
	MeterStop       int                `json:"meterStop"`
	Timestamp       *types.DateTime    `json:"timestamp"`
	TransactionId   int                `json:"transactionId"`
	Reason          types.Reason       `json:"reason,omitempty"`
	TransactionData []types.MeterValue `json:"transactionData,omitempty"`
}

type StopTransactionResponse struct {
	IdTagInfo *types.IdTagInfo `json:"idTagInfo,omitempty"`
}

type StopTransactionFeature struct{}

func (f StopTransactionFeature) GetFeatureName() string {
	return StopTransactionFeatureName
}

func (f StopTransactionFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(StopTransactionRequest{})
}

func (f StopTransactionFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(StopTransactionResponse{})
}

func (r StopTransactionRequest) GetFeatureName() string {
	return StopTransactionFeatureName
}

func (c StopTransactionResponse) GetFeatureName() string {
	return StopTransactionFeatureName
}

// NewStopTransactionRequest idTag may be nil when the transaction was not stopped by a tag.
func NewStopTransactionRequest(transactionId, meterStop int, timestamp *types.DateTime, idTag *string) (*StopTransactionRequest, error) {
	token, err := types.NewOptionalIdToken(idTag)
	if err != nil {
		return nil, ocpp.Field("idTag", err)
	}
	return &StopTransactionRequest{TransactionId: transactionId, MeterStop: meterStop, Timestamp: timestamp, IdTag: token}, nil
}

func NewStopTransactionResponse() *StopTransactionResponse {
	return &StopTransactionResponse{}
}
