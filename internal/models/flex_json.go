package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// fieldMaps caches JSON tag -> struct field index mappings per request type.
var fieldMaps sync.Map

func fieldMap(t reflect.Type) map[string]int {
	if m, ok := fieldMaps.Load(t); ok {
		return m.(map[string]int)
	}
	m := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		m[strings.Split(tag, ",")[0]] = i
	}
	actual, _ := fieldMaps.LoadOrStore(t, m)
	return actual.(map[string]int)
}

// UnmarshalJSON accepts the amount as a JSON string or a JSON number.
func (r *AmountRequest) UnmarshalJSON(data []byte) error {
	type Alias AmountRequest
	return flexUnmarshal(data, (*Alias)(r))
}

// UnmarshalJSON accepts the amount as a JSON string or a JSON number.
func (r *TransferRequest) UnmarshalJSON(data []byte) error {
	type Alias TransferRequest
	return flexUnmarshal(data, (*Alias)(r))
}

// UnmarshalJSON accepts the ids as JSON numbers or numeric strings.
func (r *UpgradeRequest) UnmarshalJSON(data []byte) error {
	type Alias UpgradeRequest
	return flexUnmarshal(data, (*Alias)(r))
}

// flexUnmarshal decodes data into the struct dst points to. Browser forms
// often send numbers as strings and token amounts as numbers, so values
// that do not match the field type are coerced where possible and
// otherwise left zero for validation to report.
func flexUnmarshal(data []byte, dst interface{}) error {
	// Fast path: all types match natively
	if err := json.Unmarshal(data, dst); err == nil {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("flex unmarshal: %w", err)
	}

	v := reflect.ValueOf(dst).Elem()
	fields := fieldMap(v.Type())

	for key, rawVal := range raw {
		idx, ok := fields[key]
		if !ok {
			continue
		}
		fv := v.Field(idx)
		if !fv.CanSet() {
			continue
		}

		ptr := reflect.New(fv.Type())
		if err := json.Unmarshal(rawVal, ptr.Interface()); err == nil {
			fv.Set(ptr.Elem())
			continue
		}

		rawVal = bytes.TrimSpace(rawVal)
		if len(rawVal) > 1 && rawVal[0] == '"' {
			var s string
			if err := json.Unmarshal(rawVal, &s); err != nil || s == "" {
				continue
			}
			coerceStringToField(fv, strings.TrimSpace(s))
			continue
		}

		// A bare number into a string field keeps its literal text so
		// large token amounts survive without float rounding.
		var num json.Number
		if err := json.Unmarshal(rawVal, &num); err == nil && fv.Kind() == reflect.String {
			fv.SetString(num.String())
		}
	}

	return nil
}

// coerceStringToField converts a string value to the field's native type.
func coerceStringToField(fv reflect.Value, s string) {
	if fv.Kind() == reflect.Ptr {
		elem := reflect.New(fv.Type().Elem())
		if coerceStringToField(elem.Elem(), s); !elem.Elem().IsZero() || s == "0" {
			fv.Set(elem)
		}
		return
	}

	switch fv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			fv.SetInt(n)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n, err := strconv.ParseUint(s, 10, 64); err == nil {
			fv.SetUint(n)
		}
	case reflect.Float32, reflect.Float64:
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			fv.SetFloat(n)
		}
	case reflect.Bool:
		if b, err := strconv.ParseBool(s); err == nil {
			fv.SetBool(b)
		}
	case reflect.String:
		fv.SetString(s)
	}
}
