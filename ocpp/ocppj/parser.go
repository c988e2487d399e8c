package ocppj

import (
	"encoding/json"
	"errors"
	"fmt"
	"ocppcore/ocpp"
	"ocppcore/types"
	"ocppcore/utility"
	"sort"
	"time"

	"go.uber.org/zap"
)

// Parser decodes OCPP-J frames for a fixed set of features. It holds no
// mutable state and may be shared between connections.
type Parser struct {
	features map[string]ocpp.Feature
	logger   *zap.Logger
}

func NewParser(logger *zap.Logger, profiles ...[]ocpp.Feature) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	features := make(map[string]ocpp.Feature)
	for _, profile := range profiles {
		for _, feature := range profile {
			features[feature.GetFeatureName()] = feature
		}
	}
	return &Parser{features: features, logger: logger}
}

// SupportedActions returns the sorted names of all registered features.
func (p *Parser) SupportedActions() []string {
	names := make([]string, 0, len(p.features))
	for name := range p.features {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MessageType reports the type id of a frame without decoding the payload.
func MessageType(data []byte) (CallType, error) {
	fields, err := utility.ParseJson(data)
	if err != nil {
		return 0, err
	}
	if len(fields) == 0 {
		return 0, errors.New("empty message")
	}
	var typeId int
	if err = json.Unmarshal(fields[0], &typeId); err != nil {
		return 0, fmt.Errorf("invalid message type: %w", err)
	}
	return CallType(typeId), nil
}

// ParseCall decodes a Call frame. A rejected frame yields a *CallError that
// carries the unique id when it could be read.
func (p *Parser) ParseCall(data []byte) (*Call, error) {
	call, err := p.parseCall(data)
	if err != nil {
		p.logger.Warn("call rejected",
			zap.String("unique_id", err.UniqueId),
			zap.String("code", string(err.ErrorCode)),
			zap.String("description", err.ErrorDescription))
		return nil, err
	}
	p.logger.Debug("call accepted",
		zap.String("unique_id", call.UniqueId),
		zap.String("action", call.Action))
	return call, nil
}

func (p *Parser) parseCall(data []byte) (*Call, *CallError) {
	fields, err := utility.ParseJson(data)
	if err != nil {
		return nil, NewCallError("", FormationViolation, err.Error())
	}
	if len(fields) != 4 {
		return nil, NewCallError("", FormationViolation, "unsupported request format; expected length: 4 elements")
	}
	var uniqueId string
	if err = json.Unmarshal(fields[1], &uniqueId); err != nil || uniqueId == "" {
		return nil, NewCallError("", FormationViolation, "invalid message unique id in request")
	}
	var typeId int
	if err = json.Unmarshal(fields[0], &typeId); err != nil || CallType(typeId) != CallTypeRequest {
		return nil, NewCallError(uniqueId, FormationViolation, fmt.Sprintf("invalid request type id: %s", fields[0]))
	}
	var action string
	if err = json.Unmarshal(fields[2], &action); err != nil {
		return nil, NewCallError(uniqueId, FormationViolation, "invalid action in request")
	}
	feature, ok := p.features[action]
	if !ok {
		return nil, NewCallError(uniqueId, NotImplemented, fmt.Sprintf("unsupported action requested: %s", action))
	}
	request, err := ocpp.ParseRawJsonRequest(fields[3], feature.GetRequestType())
	if err != nil {
		return nil, NewCallError(uniqueId, ErrorCodeFor(err), err.Error())
	}
	return &Call{
		TypeId:   CallTypeRequest,
		UniqueId: uniqueId,
		Action:   action,
		Payload:  request,
	}, nil
}

// ParseCallResult decodes a CallResult frame answering a Call for action.
func (p *Parser) ParseCallResult(data []byte, action string) (*CallResult, error) {
	fields, err := utility.ParseJson(data)
	if err != nil {
		return nil, err
	}
	if len(fields) != 3 {
		return nil, errors.New("unsupported result format; expected length: 3 elements")
	}
	var typeId int
	if err = json.Unmarshal(fields[0], &typeId); err != nil || CallType(typeId) != CallTypeResult {
		return nil, fmt.Errorf("invalid result type id: %s", fields[0])
	}
	var uniqueId string
	if err = json.Unmarshal(fields[1], &uniqueId); err != nil {
		return nil, fmt.Errorf("invalid unique id in result: %w", err)
	}
	feature, ok := p.features[action]
	if !ok {
		return nil, fmt.Errorf("unsupported action: %s", action)
	}
	response, err := ocpp.ParseRawJsonResponse(fields[2], feature.GetResponseType())
	if err != nil {
		p.logger.Warn("result rejected",
			zap.String("unique_id", uniqueId),
			zap.String("action", action),
			zap.Error(err))
		return nil, err
	}
	return NewCallResult(uniqueId, response), nil
}

// ParseCallError decodes a CallError frame.
func (p *Parser) ParseCallError(data []byte) (*CallError, error) {
	fields, err := utility.ParseJson(data)
	if err != nil {
		return nil, err
	}
	if len(fields) != 5 {
		return nil, errors.New("unsupported error format; expected length: 5 elements")
	}
	var typeId int
	if err = json.Unmarshal(fields[0], &typeId); err != nil || CallType(typeId) != CallTypeError {
		return nil, fmt.Errorf("invalid error type id: %s", fields[0])
	}
	callError := &CallError{TypeId: CallTypeError}
	if err = json.Unmarshal(fields[1], &callError.UniqueId); err != nil {
		return nil, err
	}
	if err = json.Unmarshal(fields[2], &callError.ErrorCode); err != nil {
		return nil, err
	}
	if err = json.Unmarshal(fields[3], &callError.ErrorDescription); err != nil {
		return nil, err
	}
	if err = json.Unmarshal(fields[4], &callError.ErrorDetails); err != nil {
		return nil, err
	}
	return callError, nil
}

// ErrorCodeFor maps a payload decoding error to the CallError code to answer with.
func ErrorCodeFor(err error) ErrorCode {
	var tooLong *types.TooLongError
	var unknown *types.UnknownValueError
	var typeErr *json.UnmarshalTypeError
	var timeErr *time.ParseError
	var missing *types.MissingFieldError
	switch {
	case errors.As(err, &missing):
		return OccurrenceConstraintViolation
	case errors.As(err, &tooLong), errors.As(err, &unknown):
		return PropertyConstraintViolation
	case errors.As(err, &typeErr), errors.As(err, &timeErr):
		return TypeConstraintViolation
	default:
		return FormationViolation
	}
}
