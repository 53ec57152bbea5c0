package httpapi

import (
	"github.com/getkin/kin-openapi/openapi3"

	rs "github.com/Gobd/ruleset"
	"github.com/Gobd/ruleset/internal/user"
	"github.com/Gobd/ruleset/openapi"
)

// NewDoc describes the user endpoints. Request bodies are generated from the
// rule sets that validate them.
func NewDoc(registration *rs.RuleSet[user.RegistrationRequest]) *openapi3.T {
	doc := openapi.DocBase("users", "User registration and profile service", "1.0.0")

	failed := openapi.Response{Desc: "Validation failed", Bodies: []any{ErrorResponse{}}}
	internal := openapi.Response{Desc: "Internal error", Bodies: []any{ErrorResponse{}}}

	openapi.Post(doc, "/api/users/register", "registerUser", openapi.Endpoint{
		Summary: "Register a user",
		Tags:    []string{"users"},
		Request: registration,
		Responses: map[string]openapi.Response{
			"201": {Desc: "Registered", Bodies: []any{user.Response{}}},
			"400": failed,
			"500": internal,
		},
	})

	openapi.Put(doc, "/api/users/{userId}/profile", "updateProfile", openapi.Endpoint{
		Summary: "Update the phone number of a user",
		Tags:    []string{"users"},
		Parameters: openapi3.Parameters{
			openapi.PathParam("userId", "user id", openapi3.NewIntegerSchema()),
			openapi.QueryParam("newPhone", "new phone number", true, openapi3.NewStringSchema()),
		},
		Responses: map[string]openapi.Response{
			"200": {Desc: "Updated", Bodies: []any{MessageResponse{}}},
			"400": failed,
			"404": {Desc: "User not found", Bodies: []any{ErrorResponse{}}},
			"500": internal,
		},
	})

	openapi.Post(doc, "/api/users/vip/validate", "validateVip", openapi.Endpoint{
		Summary:     "Check a VIP tier assignment",
		Description: "Record rules are listed in the request schema description.",
		Tags:        []string{"users"},
		Request:     user.VipRules,
		Responses: map[string]openapi.Response{
			"200": {Desc: "Valid", Bodies: []any{MessageResponse{}}},
			"400": failed,
			"500": internal,
		},
	})

	openapi.Get(doc, "/health", "health", openapi.Endpoint{
		Summary:  "Liveness probe",
		Response: MessageResponse{},
	})
	return doc
}
