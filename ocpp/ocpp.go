package ocpp

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Request message
type Request interface {
	// GetFeatureName Returns the unique name of the feature, to which this request belongs to.
	GetFeatureName() string
}

// Response message
type Response interface {
	// GetFeatureName Returns the unique name of the feature, to which this request belongs to.
	GetFeatureName() string
}

type Feature interface {
	GetFeatureName() string
	GetRequestType() reflect.Type
	GetResponseType() reflect.Type
}

// FieldError names the payload field whose value failed validation.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Field wraps a non-nil err into a FieldError.
func Field(name string, err error) error {
	if err == nil {
		return nil
	}
	return &FieldError{Field: name, Err: err}
}

// ParseRawJsonRequest decodes a raw payload into a new value of requestType.
// Every bounded string and enumeration is validated while decoding.
func ParseRawJsonRequest(raw interface{}, requestType reflect.Type) (Request, error) {
	v, err := parseRaw(raw, requestType)
	if err != nil {
		return nil, err
	}
	request, ok := v.(Request)
	if !ok {
		return nil, fmt.Errorf("%s is not a request", requestType)
	}
	return request, nil
}

func ParseRawJsonResponse(raw interface{}, responseType reflect.Type) (Response, error) {
	v, err := parseRaw(raw, responseType)
	if err != nil {
		return nil, err
	}
	response, ok := v.(Response)
	if !ok {
		return nil, fmt.Errorf("%s is not a response", responseType)
	}
	return response, nil
}

func parseRaw(raw interface{}, t reflect.Type) (interface{}, error) {
	if raw == nil {
		raw = &struct{}{}
	}
	var bytes []byte
	switch r := raw.(type) {
	case json.RawMessage:
		bytes = r
	case []byte:
		bytes = r
	default:
		var err error
		bytes, err = json.Marshal(raw)
		if err != nil {
			return nil, err
		}
	}
	v := reflect.New(t).Interface()
	if err := json.Unmarshal(bytes, v); err != nil {
		return nil, err
	}
	return v, nil
}
