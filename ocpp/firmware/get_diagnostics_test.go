package firmware

import (
	"errors"
	"ocppcore/ocpp"
	"ocppcore/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDiagnosticsResponse(t *testing.T) {
	response, err := NewGetDiagnosticsResponse(nil)
	require.NoError(t, err)
	assert.Nil(t, response.FileName)

	name := "diagnostics-2024.zip"
	response, err = NewGetDiagnosticsResponse(&name)
	require.NoError(t, err)
	assert.Equal(t, name, response.FileName.String())

	long := strings.Repeat("f", 256)
	_, err = NewGetDiagnosticsResponse(&long)
	var fieldErr *ocpp.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "fileName", fieldErr.Field)
	assert.ErrorIs(t, err, types.ErrTooLong)
}

func TestFirmwareStatusNotificationJson(t *testing.T) {
	request, err := ocpp.ParseRawJsonRequest([]byte(`{"status":"Installed"}`), StatusNotificationFeature{}.GetRequestType())
	require.NoError(t, err)
	assert.Equal(t, StatusInstalled, request.(*StatusNotificationRequest).Status)

	_, err = ocpp.ParseRawJsonRequest([]byte(`{"status":"Done"}`), StatusNotificationFeature{}.GetRequestType())
	var unknown *types.UnknownValueError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "FirmwareStatus", unknown.Type)
}
