package server

import (
	"fmt"
	"ocppcore/ocpp/core"
	"ocppcore/ocpp/firmware"
	"ocppcore/ocpp/localauth"
	"ocppcore/types"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultHeartbeatInterval = 600

// AuthListStore persists the authorization list between runs.
type AuthListStore interface {
	SaveLocalList(listId string, version int, entries []types.AuthorizationData) error
	LoadLocalList(listId string) (int, []types.AuthorizationData, error)
}

// ChargePointState is what the central system last heard from a charge point.
// Connectors holds the status of each connector above 0.
type ChargePointState struct {
	Vendor            string
	Model             string
	Status            types.ChargePointStatus
	ErrorCode         types.ChargePointErrorCode
	DiagnosticsStatus firmware.DiagnosticsStatus
	FirmwareStatus    firmware.Status
	Connectors        map[int]types.ChargePointStatus
}

type SystemHandler struct {
	chargePoints      map[string]*ChargePointState
	authList          *localauth.LocalAuthList
	listId            string
	store             AuthListStore
	storeMux          *sync.Mutex
	logger            *zap.Logger
	heartbeatInterval int
	acceptUnknownTag  bool
	lastTransactionId int
	mux               *sync.Mutex
}

func NewSystemHandler(authList *localauth.LocalAuthList, logger *zap.Logger) *SystemHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SystemHandler{
		chargePoints:      make(map[string]*ChargePointState),
		authList:          authList,
		logger:            logger,
		heartbeatInterval: defaultHeartbeatInterval,
		storeMux:          &sync.Mutex{},
		mux:               &sync.Mutex{},
	}
}

// SetStore enables persistence of the authorization list under listId.
func (h *SystemHandler) SetStore(store AuthListStore, listId string) {
	h.store = store
	h.listId = listId
}

func (h *SystemHandler) SetHeartbeatInterval(interval int) {
	if interval > 0 {
		h.heartbeatInterval = interval
	}
}

// SetAcceptUnknownTag accepts id tags missing from the authorization list.
func (h *SystemHandler) SetAcceptUnknownTag(accept bool) {
	h.acceptUnknownTag = accept
}

// OnStart restores the authorization list from the store.
func (h *SystemHandler) OnStart() error {
	if h.store == nil {
		return nil
	}
	version, entries, err := h.store.LoadLocalList(h.listId)
	if err != nil {
		return fmt.Errorf("failed to load authorization list: %w", err)
	}
	h.authList.Restore(version, entries)
	h.logger.Debug("authorization list loaded",
		zap.String("list_id", h.listId),
		zap.Int("version", version),
		zap.Int("entries", len(entries)))
	return nil
}

func (h *SystemHandler) featureEvent(feature, chargePointId, text string) {
	h.logger.Info(text,
		zap.String("feature", feature),
		zap.String("charge_point_id", chargePointId))
}

func (h *SystemHandler) getChargePoint(chargePointId string) *ChargePointState {
	state, ok := h.chargePoints[chargePointId]
	if !ok {
		state = &ChargePointState{
			Status:     types.ChargePointStatusAvailable,
			ErrorCode:  types.ChargePointErrorNoError,
			Connectors: make(map[int]types.ChargePointStatus),
		}
		h.chargePoints[chargePointId] = state
	}
	return state
}

// ChargePoint returns a copy of the state recorded for chargePointId.
func (h *SystemHandler) ChargePoint(chargePointId string) (ChargePointState, bool) {
	h.mux.Lock()
	defer h.mux.Unlock()
	state, ok := h.chargePoints[chargePointId]
	if !ok {
		return ChargePointState{}, false
	}
	result := *state
	result.Connectors = make(map[int]types.ChargePointStatus, len(state.Connectors))
	for connectorId, status := range state.Connectors {
		result.Connectors[connectorId] = status
	}
	return result, true
}

// authorize resolves the status of idTag against the authorization list.
func (h *SystemHandler) authorize(idTag types.IdToken) *types.IdTagInfo {
	info, ok := h.authList.Lookup(idTag)
	if !ok || info == nil {
		if h.acceptUnknownTag {
			return types.NewIdTagInfo(types.AuthorizationStatusAccepted)
		}
		return types.NewIdTagInfo(types.AuthorizationStatusInvalid)
	}
	result := *info
	if result.Status == types.AuthorizationStatusAccepted && result.ExpiryDate != nil && result.ExpiryDate.Before(time.Now()) {
		result.Status = types.AuthorizationStatusExpired
	}
	return &result
}

func (h *SystemHandler) OnBootNotification(chargePointId string, request *core.BootNotificationRequest) (*core.BootNotificationResponse, error) {
	h.mux.Lock()
	defer h.mux.Unlock()
	state := h.getChargePoint(chargePointId)
	state.Vendor = request.ChargePointVendor.String()
	state.Model = request.ChargePointModel.String()
	h.featureEvent(request.GetFeatureName(), chargePointId, fmt.Sprintf("registered %s %s", state.Vendor, state.Model))
	return core.NewBootNotificationResponse(types.NewDateTime(time.Now()), h.heartbeatInterval, core.RegistrationStatusAccepted), nil
}

func (h *SystemHandler) OnAuthorize(chargePointId string, request *core.AuthorizeRequest) (*core.AuthorizeResponse, error) {
	info := h.authorize(request.IdTag)
	h.featureEvent(request.GetFeatureName(), chargePointId, fmt.Sprintf("id tag: %s; authorization status: %s", request.IdTag, info.Status))
	return core.NewAuthorizationResponse(info), nil
}

func (h *SystemHandler) OnHeartbeat(chargePointId string, request *core.HeartbeatRequest) (*core.HeartbeatResponse, error) {
	h.logger.Debug("heartbeat", zap.String("charge_point_id", chargePointId))
	return core.NewHeartbeatResponse(types.NewDateTime(time.Now())), nil
}

// OnStartTransaction authorizes the id tag and assigns the next transaction id.
// Transactions are not tracked beyond that.
func (h *SystemHandler) OnStartTransaction(chargePointId string, request *core.StartTransactionRequest) (*core.StartTransactionResponse, error) {
	info := h.authorize(request.IdTag)
	h.mux.Lock()
	h.lastTransactionId++
	transactionId := h.lastTransactionId
	h.mux.Unlock()
	h.featureEvent(request.GetFeatureName(), chargePointId, fmt.Sprintf("transaction #%d on connector #%d; id tag: %s; status: %s", transactionId, request.ConnectorId, request.IdTag, info.Status))
	return core.NewStartTransactionResponse(info, transactionId), nil
}

func (h *SystemHandler) OnStopTransaction(chargePointId string, request *core.StopTransactionRequest) (*core.StopTransactionResponse, error) {
	response := core.NewStopTransactionResponse()
	if request.IdTag != nil {
		response.IdTagInfo = h.authorize(*request.IdTag)
	}
	h.featureEvent(request.GetFeatureName(), chargePointId, fmt.Sprintf("transaction #%d stopped; meter: %d; reason: %s", request.TransactionId, request.MeterStop, request.Reason))
	return response, nil
}

func (h *SystemHandler) OnMeterValues(chargePointId string, request *core.MeterValuesRequest) (*core.MeterValuesResponse, error) {
	h.logger.Debug("meter values",
		zap.String("charge_point_id", chargePointId),
		zap.Int("connector_id", request.ConnectorId),
		zap.Int("values", len(request.MeterValue)))
	return core.NewMeterValuesResponse(), nil
}

func (h *SystemHandler) OnStatusNotification(chargePointId string, request *core.StatusNotificationRequest) (*core.StatusNotificationResponse, error) {
	h.mux.Lock()
	defer h.mux.Unlock()
	state := h.getChargePoint(chargePointId)
	if request.ConnectorId > 0 {
		state.Connectors[request.ConnectorId] = request.Status
		h.featureEvent(request.GetFeatureName(), chargePointId, fmt.Sprintf("updated connector #%v status to %v", request.ConnectorId, request.Status))
	} else {
		state.Status = request.Status
		state.ErrorCode = request.ErrorCode
		h.featureEvent(request.GetFeatureName(), chargePointId, fmt.Sprintf("updated main controller status to %v", request.Status))
	}
	if request.ErrorCode != types.ChargePointErrorNoError {
		observeError(chargePointId, string(request.ErrorCode))
	}
	return core.NewStatusNotificationResponse(), nil
}

func (h *SystemHandler) OnDataTransfer(chargePointId string, request *core.DataTransferRequest) (*core.DataTransferResponse, error) {
	h.featureEvent(request.GetFeatureName(), chargePointId, fmt.Sprintf("received data from vendor %s", request.VendorId))
	return core.NewDataTransferResponse(core.DataTransferStatusUnknownVendorId), nil
}

func (h *SystemHandler) OnDiagnosticsStatusNotification(chargePointId string, request *firmware.DiagnosticsStatusNotificationRequest) (*firmware.DiagnosticsStatusNotificationResponse, error) {
	h.mux.Lock()
	defer h.mux.Unlock()
	h.getChargePoint(chargePointId).DiagnosticsStatus = request.Status
	h.featureEvent(request.GetFeatureName(), chargePointId, fmt.Sprintf("updated diagnostic status to %v", request.Status))
	return firmware.NewDiagnosticsStatusNotificationResponse(), nil
}

func (h *SystemHandler) OnFirmwareStatusNotification(chargePointId string, request *firmware.StatusNotificationRequest) (*firmware.StatusNotificationResponse, error) {
	h.mux.Lock()
	defer h.mux.Unlock()
	h.getChargePoint(chargePointId).FirmwareStatus = request.Status
	h.featureEvent(request.GetFeatureName(), chargePointId, fmt.Sprintf("updated firmware status to %v", request.Status))
	return firmware.NewStatusNotificationResponse(), nil
}

// OnSendLocalList installs a list update and saves the result when a store is set.
// Updates are applied and saved one at a time so the store never falls behind the list.
func (h *SystemHandler) OnSendLocalList(chargePointId string, request *localauth.SendLocalListRequest) (*localauth.SendLocalListResponse, error) {
	h.storeMux.Lock()
	defer h.storeMux.Unlock()
	status := h.authList.Apply(request)
	h.featureEvent(request.GetFeatureName(), chargePointId, fmt.Sprintf("%s update to version %d: %s", request.UpdateType, request.ListVersion, status))
	if status == localauth.UpdateStatusAccepted && h.store != nil {
		version, entries := h.authList.Snapshot()
		if err := h.store.SaveLocalList(h.listId, version, entries); err != nil {
			h.logger.Error("save authorization list", zap.Error(err))
		}
	}
	return localauth.NewSendLocalListResponse(status), nil
}

func (h *SystemHandler) OnGetLocalListVersion(chargePointId string, request *localauth.GetLocalListVersionRequest) (*localauth.GetLocalListVersionResponse, error) {
	return localauth.NewGetLocalListVersionResponse(h.authList.Version()), nil
}
