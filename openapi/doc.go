// Package openapi assembles OpenAPI 3 documents whose request bodies are
// described by rule sets and whose responses are generated from Go values.
//
// Use [DocBase] to create a base document, register endpoints with [Get],
// [Post], [Put], [Patch], or [Delete], and serve the document with
// [HandlerMust]:
//
//	doc := openapi.DocBase("users", "User API", "1.0")
//	openapi.Post(doc, "/users", "createUser", openapi.Endpoint{
//	    Request:  userRules,
//	    Response: UserResponse{},
//	})
//	r.Handle("/docs.json", openapi.HandlerMust(doc))
package openapi
