package smartcharging

import (
	"encoding/json"
	"ocppcore/ocpp"
	"ocppcore/types"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearChargingProfileCriteria(t *testing.T) {
	request, err := ocpp.ParseRawJsonRequest([]byte(`{}`), ClearChargingProfileFeature{}.GetRequestType())
	require.NoError(t, err)
	criteria := request.(*ClearChargingProfileRequest)
	assert.Nil(t, criteria.Id)
	assert.Nil(t, criteria.ConnectorId)
	assert.Nil(t, criteria.StackLevel)
	assert.Empty(t, criteria.ChargingProfilePurpose)

	out, err := json.Marshal(criteria)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))

	request, err = ocpp.ParseRawJsonRequest([]byte(`{"connectorId":0,"chargingProfilePurpose":"TxProfile"}`), ClearChargingProfileFeature{}.GetRequestType())
	require.NoError(t, err)
	criteria = request.(*ClearChargingProfileRequest)
	require.NotNil(t, criteria.ConnectorId)
	assert.Equal(t, 0, *criteria.ConnectorId)
	assert.Equal(t, types.ChargingProfilePurposeTxProfile, criteria.ChargingProfilePurpose)

	_, err = ocpp.ParseRawJsonRequest([]byte(`{"chargingProfilePurpose":"Everything"}`), ClearChargingProfileFeature{}.GetRequestType())
	var unknown *types.UnknownValueError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ChargingProfilePurposeType", unknown.Type)
}

func TestClearChargingProfileResponse(t *testing.T) {
	response, err := ocpp.ParseRawJsonResponse([]byte(`{"status":"Unknown"}`), ClearChargingProfileFeature{}.GetResponseType())
	require.NoError(t, err)
	assert.Equal(t, ClearChargingProfileStatusUnknown, response.(*ClearChargingProfileResponse).Status)

	_, err = ocpp.ParseRawJsonResponse([]byte(`{"status":"Cleared"}`), ClearChargingProfileFeature{}.GetResponseType())
	var unknown *types.UnknownValueError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ClearChargingProfileStatus", unknown.Type)

	out, err := json.Marshal(NewClearDefaultChargingProfileRequest())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"stackLevel":1,"chargingProfilePurpose":"TxDefaultProfile"}`, string(out))
}

func TestGetCompositeScheduleJson(t *testing.T) {
	out, err := json.Marshal(NewGetCompositeScheduleRequest(1, 3600))
	require.NoError(t, err)
	assert.JSONEq(t, `{"connectorId":1,"duration":3600}`, string(out))

	_, err = ocpp.ParseRawJsonRequest([]byte(`{"connectorId":1,"duration":60,"chargingRateUnit":"kW"}`), GetCompositeScheduleFeature{}.GetRequestType())
	var unknown *types.UnknownValueError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ChargingRateUnitType", unknown.Type)

	raw := `{"status":"Accepted","connectorId":1,"scheduleStart":"2024-05-01T08:00:00Z",
		"chargingSchedule":{"chargingRateUnit":"A","chargingSchedulePeriod":[{"startPeriod":0,"limit":16},{"startPeriod":1800,"limit":8}]}}`
	response, err := ocpp.ParseRawJsonResponse([]byte(raw), GetCompositeScheduleFeature{}.GetResponseType())
	require.NoError(t, err)
	schedule := response.(*GetCompositeScheduleResponse)
	assert.Equal(t, GetCompositeScheduleStatusAccepted, schedule.Status)
	require.NotNil(t, schedule.ConnectorId)
	assert.Equal(t, 1, *schedule.ConnectorId)
	require.NotNil(t, schedule.ScheduleStart)
	assert.True(t, schedule.ScheduleStart.Equal(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)))
	require.NotNil(t, schedule.ChargingSchedule)
	assert.Equal(t, types.ChargingRateUnitAmperes, schedule.ChargingSchedule.ChargingRateUnit)
	require.Len(t, schedule.ChargingSchedule.ChargingSchedulePeriod, 2)
	assert.Equal(t, 8.0, schedule.ChargingSchedule.ChargingSchedulePeriod[1].Limit)

	rejected, err := ocpp.ParseRawJsonResponse([]byte(`{"status":"Rejected"}`), GetCompositeScheduleFeature{}.GetResponseType())
	require.NoError(t, err)
	assert.Nil(t, rejected.(*GetCompositeScheduleResponse).ChargingSchedule)

	_, err = ocpp.ParseRawJsonResponse([]byte(`{"status":"Pending"}`), GetCompositeScheduleFeature{}.GetResponseType())
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "GetCompositeScheduleStatus", unknown.Type)
}
