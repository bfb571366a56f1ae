// Package api holds the HTTP types and chi routing generated from
// api/openapi.yaml.
package api

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=../../api/oapi-codegen.yaml ../../api/openapi.yaml
