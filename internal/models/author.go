package models

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author is a stored record in the authors collection. UserName uniqueness
// is checked in the service layer before writes, not by a database index.
type Author struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	UserName  string             `bson:"userName" json:"userName"`
}

// DisplayName joins the name parts, tolerating either one being empty
func (a *Author) DisplayName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// AuthorView is the serialized author returned by the API
type AuthorView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	UserName string `json:"userName"`
}

// Serialize builds the response projection for an author
func (a *Author) Serialize() *AuthorView {
	return &AuthorView{
		ID:       a.ID.Hex(),
		Name:     a.DisplayName(),
		UserName: a.UserName,
	}
}

type CreateAuthorRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserName, validation.Required.Error("userName is required")),
	)
}

// UpdateAuthorRequest carries an allow-listed patch. Nil fields were not
// submitted and must leave the stored value untouched.
type UpdateAuthorRequest struct {
	ID        string  `json:"id"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	UserName  *string `json:"userName"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserName, validation.NilOrNotEmpty.Error("userName cannot be empty")),
	)
}
