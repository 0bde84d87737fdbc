// Package api embeds the OpenAPI document of the HTTP interface. The same
// document drives request validation and the /swagger UI.
package api

import _ "embed"

//go:embed openapi.json
var OpenAPI []byte
