package core

import (
	"ocppcore/ocpp"
	"ocppcore/types"
	"reflect"
)

const AuthorizeFeatureName = "Authorize"

type AuthorizeRequest struct {
	IdTag types.IdToken `json:"idTag"`
}

type AuthorizeResponse struct {
	IdTagInfo *types.IdTagInfo `json:"idTagInfo"`
}

type AuthorizeFeature struct{}

func (f AuthorizeFeature) GetFeatureName() string {
	return AuthorizeFeatureName
}

func (f AuthorizeFeature) GetRequestType() reflect.Type {
	return reflect.TypeOf(AuthorizeRequest{})
}

func (f AuthorizeFeature) GetResponseType() reflect.Type {
	return reflect.TypeOf(AuthorizeResponse{})
}

func (r *AuthorizeRequest) GetFeatureName() string {
	return AuthorizeFeatureName
}

func (r *AuthorizeResponse) GetFeatureName() string {
	return AuthorizeFeatureName
}

// NewAuthorizeRequest fails when idTag is longer than 20 characters.
func NewAuthorizeRequest(idTag string) (*AuthorizeRequest, error) {
	token, err := types.NewIdToken(idTag)
	if err != nil {
		return nil, ocpp.Field("idTag", err)
	}
	return &AuthorizeRequest{IdTag: token}, nil
}

func NewAuthorizationResponse(idTagInfo *types.IdTagInfo) *AuthorizeResponse {
	return &AuthorizeResponse{IdTagInfo: idTagInfo}
}
