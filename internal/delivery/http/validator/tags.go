package validator

import (
	"reflect"
	"strings"
)

// jsonName reports fields by their JSON key so messages match the request body.
func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}

	return name
}
