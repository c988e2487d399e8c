package types

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
)

// IdTagInfo carries the authorization status of an id tag together with
// optional expiry and parent tag. Status is required when decoding.
type IdTagInfo struct {
	ExpiryDate  *DateTime           `json:"expiryDate,omitempty" bson:"expiry_date,omitempty"`
	ParentIdTag *IdToken            `json:"parentIdTag,omitempty" bson:"parent_id_tag,omitempty"`
	Status      AuthorizationStatus `json:"status" bson:"status"`
}

// idTagInfo has the fields of IdTagInfo without its codecs.
type idTagInfo IdTagInfo

func NewIdTagInfo(status AuthorizationStatus) *IdTagInfo {
	return &IdTagInfo{Status: status}
}

func (i *IdTagInfo) UnmarshalJSON(data []byte) error {
	var v idTagInfo
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if err := checkStatus(v.Status); err != nil {
		return err
	}
	*i = IdTagInfo(v)
	return nil
}

func (i *IdTagInfo) UnmarshalBSON(data []byte) error {
	var v idTagInfo
	if err := bson.Unmarshal(data, &v); err != nil {
		return err
	}
	if err := checkStatus(v.Status); err != nil {
		return err
	}
	*i = IdTagInfo(v)
	return nil
}

// An absent status decodes to the empty value, which is not a member of the set.
func checkStatus(status AuthorizationStatus) error {
	if status == "" {
		return &MissingFieldError{Field: "status"}
	}
	if !status.IsValid() {
		return &UnknownValueError{Type: "AuthorizationStatus", Value: string(status)}
	}
	return nil
}

// AuthorizationData is one entry of a local authorization list. A nil
// IdTagInfo is kept as nil; in a differential list update it means the entry
// is to be removed.
type AuthorizationData struct {
	IdTag     IdToken    `json:"idTag" bson:"id_tag"`
	IdTagInfo *IdTagInfo `json:"idTagInfo,omitempty" bson:"id_tag_info,omitempty"`
}

func NewAuthorizationData(idTag IdToken, idTagInfo *IdTagInfo) AuthorizationData {
	return AuthorizationData{IdTag: idTag, IdTagInfo: idTagInfo}
}

func (a AuthorizationData) HasIdTagInfo() bool {
	return a.IdTagInfo != nil
}
