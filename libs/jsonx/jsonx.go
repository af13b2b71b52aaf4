// Package jsonx is the JSON codec used for calculation reports.
// Field names are written in lowerCamelCase and 64-bit integers are written as strings,
// so volumes above 2^53 survive JavaScript consumers unchanged.
package jsonx

import (
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

var _jsonx = func() jsoniter.API {
	api := jsoniter.Config{
		IndentionStep:          2,
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()
	api.RegisterExtension(newIntegerExtension(reflect.Int64, reflect.Uint64))
	api.RegisterExtension(&camelCaseExtension{})
	return api
}()

var (
	Marshal       = _jsonx.Marshal
	Unmarshal     = _jsonx.Unmarshal
	MarshalIndent = _jsonx.MarshalIndent
	NewEncoder    = _jsonx.NewEncoder
	NewDecoder    = _jsonx.NewDecoder
)
