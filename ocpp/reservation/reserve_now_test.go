package reservation

import (
	"encoding/json"
	"errors"
	"ocppcore/ocpp"
	"ocppcore/types"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReserveNowRequest(t *testing.T) {
	expiry := types.NewDateTime(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	request, err := NewReserveNowRequest(2, expiry, "abcd-01234", 77)
	require.NoError(t, err)
	assert.Nil(t, request.ParentIdTag)

	out, err := json.Marshal(request)
	require.NoError(t, err)
	assert.JSONEq(t, `{"connectorId":2,"expiryDate":"2024-06-01T12:00:00Z","idTag":"abcd-01234","reservationId":77}`, string(out))

	_, err = NewReserveNowRequest(2, expiry, strings.Repeat("a", 21), 77)
	var fieldErr *ocpp.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "idTag", fieldErr.Field)
}

func TestReserveNowResponseJson(t *testing.T) {
	response, err := ocpp.ParseRawJsonResponse([]byte(`{"status":"Occupied"}`), ReserveNowFeature{}.GetResponseType())
	require.NoError(t, err)
	assert.Equal(t, types.ReservationStatusOccupied, response.(*ReserveNowResponse).Status)

	_, err = ocpp.ParseRawJsonResponse([]byte(`{"status":"Busy"}`), ReserveNowFeature{}.GetResponseType())
	var unknown *types.UnknownValueError
	assert.ErrorAs(t, err, &unknown)
}
