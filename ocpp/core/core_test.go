package core

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

func requireFieldError(t *testing.T, err error, field string, actual, max int) {
	t.Helper()
	var fieldErr *ocpp.FieldError
	require.True(t, errors.As(err, &fieldErr), "expected a field error, got %v", err)
	assert.Equal(t, field, fieldErr.Field)
	var tooLong *types.TooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, actual, tooLong.Actual)
	assert.Equal(t, max, tooLong.Max)
}

func TestNewBootNotificationRequest(t *testing.T) {
	request, err := NewBootNotificationRequest("Vendor", "Model-1")
	require.NoError(t, err)
	assert.Equal(t, "Vendor", request.ChargePointVendor.String())
	assert.Equal(t, "Model-1", request.ChargePointModel.String())
	assert.Nil(t, request.FirmwareVersion)

	_, err = NewBootNotificationRequest(strings.Repeat("v", 21), "Model-1")
	requireFieldError(t, err, "chargePointVendor", 21, 20)

	_, err = NewBootNotificationRequest("Vendor", strings.Repeat("m", 25))
	requireFieldError(t, err, "chargePointModel", 25, 20)
}

func TestBootNotificationRequestJson(t *testing.T) {
	raw := `{"chargePointVendor":"Vendor","chargePointModel":"Model-1","firmwareVersion":"1.2.3"}`
	request, err := ocpp.ParseRawJsonRequest([]byte(raw), BootNotificationFeature{}.GetRequestType())
	require.NoError(t, err)
	boot, ok := request.(*BootNotificationRequest)
	require.True(t, ok)
	require.NotNil(t, boot.FirmwareVersion)
	assert.Equal(t, "1.2.3", boot.FirmwareVersion.String())
	assert.Nil(t, boot.Iccid)

	out, err := json.Marshal(boot)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))

	_, err = ocpp.ParseRawJsonRequest([]byte(`{"chargePointVendor":"Vendor","chargePointModel":"Model-1","iccid":"`+strings.Repeat("9", 21)+`"}`),
		BootNotificationFeature{}.GetRequestType())
	assert.ErrorIs(t, err, types.ErrTooLong)
}

func TestIdTagConstructors(t *testing.T) {
	long := strings.Repeat("a", 21)

	authorize, err := NewAuthorizeRequest("abcd-01234")
	require.NoError(t, err)
	assert.True(t, authorize.IdTag.Equal(mustToken(t, "ABCD-01234")))
	_, err = NewAuthorizeRequest(long)
	requireFieldError(t, err, "idTag", 21, 20)

	start, err := NewStartTransactionRequest(1, "abcd-01234", 100, types.NewDateTime(time.Now()))
	require.NoError(t, err)
	assert.Equal(t, 1, start.ConnectorId)
	_, err = NewStartTransactionRequest(1, long, 100, types.NewDateTime(time.Now()))
	requireFieldError(t, err, "idTag", 21, 20)

	stop, err := NewStopTransactionRequest(5, 200, types.NewDateTime(time.Now()), nil)
	require.NoError(t, err)
	assert.Nil(t, stop.IdTag)
	_, err = NewStopTransactionRequest(5, 200, types.NewDateTime(time.Now()), &long)
	requireFieldError(t, err, "idTag", 21, 20)

	_, err = NewRemoteStartTransactionRequest(long)
	requireFieldError(t, err, "idTag", 21, 20)
}

func TestConfigurationConstructors(t *testing.T) {
	change, err := NewChangeConfigurationRequest("HeartbeatInterval", "300")
	require.NoError(t, err)
	assert.Equal(t, "HeartbeatInterval", change.Key.String())
	assert.Equal(t, "300", change.Value.String())

	_, err = NewChangeConfigurationRequest(strings.Repeat("k", 51), "300")
	requireFieldError(t, err, "key", 51, 50)
	_, err = NewChangeConfigurationRequest("MeterValuesSampledData", strings.Repeat("v", 501))
	requireFieldError(t, err, "value", 501, 500)

	get, err := NewGetConfigurationRequest(nil)
	require.NoError(t, err)
	assert.Empty(t, get.Key)
	_, err = NewGetConfigurationRequest([]string{"HeartbeatInterval", strings.Repeat("k", 51)})
	requireFieldError(t, err, "key[1]", 51, 50)

	value := "300"
	keyValue, err := types.NewKeyValue("HeartbeatInterval", false, &value)
	require.NoError(t, err)
	response, err := NewGetConfigurationResponse([]types.KeyValue{*keyValue}, []string{"Unknown"})
	require.NoError(t, err)
	out, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"configurationKey":[{"key":"HeartbeatInterval","readonly":false,"value":"300"}],"unknownKey":["Unknown"]}`, string(out))
}

func TestNewDataTransferRequest(t *testing.T) {
	messageId := "Prices"
	request, err := NewDataTransferRequest("com.vendor", &messageId, map[string]int{"price": 30})
	require.NoError(t, err)
	require.NotNil(t, request.MessageId)
	assert.Equal(t, "Prices", request.MessageId.String())

	_, err = NewDataTransferRequest(strings.Repeat("v", 256), nil, nil)
	requireFieldError(t, err, "vendorId", 256, 255)

	long := strings.Repeat("m", 51)
	_, err = NewDataTransferRequest("com.vendor", &long, nil)
	requireFieldError(t, err, "messageId", 51, 50)
}

func TestStatusNotificationRequestJson(t *testing.T) {
	raw := `{"connectorId":1,"errorCode":"NoError","status":"Charging","info":"ok"}`
	request, err := ocpp.ParseRawJsonRequest([]byte(raw), StatusNotificationFeature{}.GetRequestType())
	require.NoError(t, err)
	status := request.(*StatusNotificationRequest)
	assert.Equal(t, types.ChargePointStatusCharging, status.Status)
	assert.Equal(t, "ok", status.Info.String())

	_, err = ocpp.ParseRawJsonRequest([]byte(`{"connectorId":1,"errorCode":"Broken","status":"Charging"}`),
		StatusNotificationFeature{}.GetRequestType())
	var unknown *types.UnknownValueError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Broken", unknown.Value)
}

func TestProfile(t *testing.T) {
	names := make(map[string]bool)
	for _, feature := range Profile {
		names[feature.GetFeatureName()] = true
		assert.NotNil(t, feature.GetRequestType())
		assert.NotNil(t, feature.GetResponseType())
	}
	assert.Len(t, names, len(Profile))
	assert.True(t, names[BootNotificationFeatureName])
	assert.True(t, names[UnlockConnectorFeatureName])
}

func mustToken(t *testing.T, raw string) types.IdToken {
	t.Helper()
	token, err := types.NewIdToken(raw)
	require.NoError(t, err)
	return token
}

func TestChangeAvailabilityJson(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		valid bool
		want  AvailabilityType
	}{
		{"operative", `{"connectorId":0,"type":"Operative"}`, true, AvailabilityTypeOperative},
		{"inoperative", `{"connectorId":2,"type":"Inoperative"}`, true, AvailabilityTypeInoperative},
		{"lower case", `{"connectorId":2,"type":"operative"}`, false, ""},
		{"unknown", `{"connectorId":2,"type":"Sleeping"}`, false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			request, err := ocpp.ParseRawJsonRequest([]byte(tc.raw), ChangeAvailabilityFeature{}.GetRequestType())
			if !tc.valid {
				var unknown *types.UnknownValueError
				require.ErrorAs(t, err, &unknown)
				assert.Equal(t, "AvailabilityType", unknown.Type)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, request.(*ChangeAvailabilityRequest).Type)
		})
	}

	response, err := ocpp.ParseRawJsonResponse([]byte(`{"status":"Scheduled"}`), ChangeAvailabilityFeature{}.GetResponseType())
	require.NoError(t, err)
	assert.Equal(t, AvailabilityStatusScheduled, response.(*ChangeAvailabilityResponse).Status)
	_, err = ocpp.ParseRawJsonResponse([]byte(`{"status":"Later"}`), ChangeAvailabilityFeature{}.GetResponseType())
	assert.Error(t, err)

	out, err := json.Marshal(NewChangeAvailabilityRequest(1, AvailabilityTypeInoperative))
	require.NoError(t, err)
	assert.JSONEq(t, `{"connectorId":1,"type":"Inoperative"}`, string(out))
}

func TestMeterValuesJson(t *testing.T) {
	raw := `{"connectorId":1,"transactionId":7,"meterValue":[{"timestamp":"2024-01-01T10:00:00Z","sampledValue":[
		{"value":"1520","measurand":"Energy.Active.Import.Register","unit":"Wh"},
		{"value":"16.1","measurand":"Current.Import","phase":"L1","unit":"A"}]}]}`
	request, err := ocpp.ParseRawJsonRequest([]byte(raw), MeterValuesFeature{}.GetRequestType())
	require.NoError(t, err)
	meterValues := request.(*MeterValuesRequest)
	require.NotNil(t, meterValues.TransactionId)
	assert.Equal(t, 7, *meterValues.TransactionId)
	require.Len(t, meterValues.MeterValue, 1)
	sampled := meterValues.MeterValue[0].SampledValue
	require.Len(t, sampled, 2)
	assert.Equal(t, types.MeasurandEnergyActiveImportRegister, sampled[0].Measurand)
	assert.Equal(t, types.Phase("L1"), sampled[1].Phase)
	assert.Empty(t, sampled[0].Context)

	noTransaction, err := ocpp.ParseRawJsonRequest([]byte(`{"connectorId":1,"meterValue":[]}`), MeterValuesFeature{}.GetRequestType())
	require.NoError(t, err)
	assert.Nil(t, noTransaction.(*MeterValuesRequest).TransactionId)

	cases := map[string]string{
		"Measurand": `{"connectorId":1,"meterValue":[{"timestamp":"2024-01-01T10:00:00Z","sampledValue":[{"value":"1","measurand":"Energy"}]}]}`,
		"Phase":     `{"connectorId":1,"meterValue":[{"timestamp":"2024-01-01T10:00:00Z","sampledValue":[{"value":"1","phase":"L4"}]}]}`,
		"Location":  `{"connectorId":1,"meterValue":[{"timestamp":"2024-01-01T10:00:00Z","sampledValue":[{"value":"1","location":"Roof"}]}]}`,
	}
	for typeName, raw := range cases {
		_, err := ocpp.ParseRawJsonRequest([]byte(raw), MeterValuesFeature{}.GetRequestType())
		var unknown *types.UnknownValueError
		require.ErrorAs(t, err, &unknown, typeName)
		assert.Equal(t, typeName, unknown.Type)
	}
}
