package reservation

import (
	"ocppcore/ocpp"
	"ocppcore/types"
	"reflect"
)

const ReserveNowFeatureName = "ReserveNow"
const ProfileName = "Reservation"

// ReserveNowRequest ConnectorId 0 reserves any connector of the Charge Point.
type ReserveNowRequest struct {
	ConnectorId   int             `json:"connectorId"`
	ExpiryDate    *types.DateTime `json:"expiryDate"`
	IdTag         types.IdToken   `json:"idTag"`
	ParentIdTag   *types.IdToken  `json:"parentIdTag,omitempty"`
	ReservationId int             `json:"reservationId"`
}

type ReserveNowResponse struct {
	Status types.ReservationStatus `json:"status"`
}

type ReserveNowFeature struct{}

func (f ReserveNowFeature) GetFeatureName() string {
	return ReserveNowFeatureName
}

func (f ReserveNowFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(ReserveNowRequest{})
}

func (f ReserveNowFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(ReserveNowResponse{})
}

func (r ReserveNowRequest) GetFeatureName() string {
	return ReserveNowFeatureName
}

func (c ReserveNowResponse) GetFeatureName() string {
	return ReserveNowFeatureName
}

func NewReserveNowRequest(connectorId int, expiryDate *types.DateTime, idTag string, reservationId int) (*ReserveNowRequest, error) {
	token, err := types.NewIdToken(idTag)
	if err != nil {
		return nil, ocpp.Field("idTag", err)
	}
	return &ReserveNowRequest{
		ConnectorId:   connectorId,
		ExpiryDate:    expiryDate,
		IdTag:         token,
		ReservationId: reservationId,
	}, nil
}

var Profile = []ocpp.Feature{
	CancelReservationFeature{},
	ReserveNowFeature{},
}
