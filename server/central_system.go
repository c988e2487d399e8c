package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"ocppcore/ocpp"
	"ocppcore/ocpp/core"
	"ocppcore/ocpp/firmware"
	"ocppcore/ocpp/localauth"
	"ocppcore/ocpp/ocppj"
	"ocppcore/ocpp/remotetrigger"
	"ocppcore/ocpp/reservation"
	"ocppcore/ocpp/smartcharging"

	"go.uber.org/zap"
)

// CentralSystem answers OCPP-J frames received from charge points.
type CentralSystem struct {
	parser      *ocppj.Parser
	coreHandler *SystemHandler
	logger      *zap.Logger
}

func NewCentralSystem(handler *SystemHandler, logger *zap.Logger) *CentralSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	parser := ocppj.NewParser(logger.Named("ocppj"),
		core.Profile,
		firmware.Profile,
		localauth.Profile,
		remotetrigger.Profile,
		reservation.Profile,
		smartcharging.Profile,
	)
	return &CentralSystem{
		parser:      parser,
		coreHandler: handler,
		logger:      logger,
	}
}

// HandleMessage returns the encoded CallResult or CallError answering data.
// Results and errors sent by the charge point produce no answer.
func (cs *CentralSystem) HandleMessage(chargePointId string, data []byte) ([]byte, error) {
	callType, err := ocppj.MessageType(data)
	if err == nil && (callType == ocppj.CallTypeResult || callType == ocppj.CallTypeError) {
		cs.logger.Warn("unexpected message from charge point",
			zap.String("charge_point_id", chargePointId),
			zap.Int("type", int(callType)),
			zap.ByteString("data", data))
		return nil, nil
	}

	call, err := cs.parser.ParseCall(data)
	if err != nil {
		var callError *ocppj.CallError
		if !errors.As(err, &callError) {
			return nil, err
		}
		observeRejected(string(callError.ErrorCode))
		return json.Marshal(callError)
	}
	observeCall(call.Action)

	confirmation, err := cs.dispatch(chargePointId, call.Payload)
	if err != nil {
		cs.logger.Warn("call not handled",
			zap.String("charge_point_id", chargePointId),
			zap.String("action", call.Action),
			zap.Error(err))
		callError := ocppj.NewCallError(call.UniqueId, ocppj.NotSupported, err.Error())
		observeRejected(string(callError.ErrorCode))
		return json.Marshal(callError)
	}
	return json.Marshal(ocppj.NewCallResult(call.UniqueId, confirmation))
}

func (cs *CentralSystem) dispatch(chargePointId string, request ocpp.Request) (ocpp.Response, error) {
	action := request.GetFeatureName()
	switch action {
	case core.BootNotificationFeatureName:
		return cs.coreHandler.OnBootNotification(chargePointId, request.(*core.BootNotificationRequest))
	case core.AuthorizeFeatureName:
		return cs.coreHandler.OnAuthorize(chargePointId, request.(*core.AuthorizeRequest))
	case core.HeartbeatFeatureName:
		return cs.coreHandler.OnHeartbeat(chargePointId, request.(*core.HeartbeatRequest))
	case core.StartTransactionFeatureName:
		return cs.coreHandler.OnStartTransaction(chargePointId, request.(*core.StartTransactionRequest))
	case core.StopTransactionFeatureName:
		return cs.coreHandler.OnStopTransaction(chargePointId, request.(*core.StopTransactionRequest))
	case core.MeterValuesFeatureName:
		return cs.coreHandler.OnMeterValues(chargePointId, request.(*core.MeterValuesRequest))
	case core.StatusNotificationFeatureName:
		return cs.coreHandler.OnStatusNotification(chargePointId, request.(*core.StatusNotificationRequest))
	case core.DataTransferFeatureName:
		return cs.coreHandler.OnDataTransfer(chargePointId, request.(*core.DataTransferRequest))
	case firmware.DiagnosticsStatusNotificationFeatureName:
		return cs.coreHandler.OnDiagnosticsStatusNotification(chargePointId, request.(*firmware.DiagnosticsStatusNotificationRequest))
	case firmware.StatusNotificationFeatureName:
		return cs.coreHandler.OnFirmwareStatusNotification(chargePointId, request.(*firmware.StatusNotificationRequest))
	case localauth.SendLocalListFeatureName:
		return cs.coreHandler.OnSendLocalList(chargePointId, request.(*localauth.SendLocalListRequest))
	case localauth.GetLocalListVersionFeatureName:
		return cs.coreHandler.OnGetLocalListVersion(chargePointId, request.(*localauth.GetLocalListVersionRequest))
	default:
		return nil, fmt.Errorf("feature not supported: %s", action)
	}
}
