package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ParseStringAs converts content into T.
//
// Strings are returned as-is. Booleans and numbers go through strconv.
// Everything else is decoded as JSON; when that fails, the input is run
// through jsonrepair and decoded again, so trailing commas, single quotes
// and unquoted keys are tolerated.
//
//	type entry struct {
//	    ID    string `json:"id"`
//	    Essay string `json:"essay"`
//	}
//
//	entries, err := parse.ParseStringAs[[]entry](`[{id: 'a', essay: 'text',},]`)
func ParseStringAs[T any](content string) (T, error) {
	var result T
	target := reflect.ValueOf(&result).Elem()

	switch target.Kind() {
	case reflect.String:
		target.SetString(content)
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(strings.TrimSpace(content))
		if err != nil {
			return result, fmt.Errorf("parse %q as bool: %w", content, err)
		}
		target.SetBool(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(strings.TrimSpace(content), target.Type().Bits())
		if err != nil {
			return result, fmt.Errorf("parse %q as float: %w", content, err)
		}
		target.SetFloat(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(strings.TrimSpace(content), 10, target.Type().Bits())
		if err != nil {
			return result, fmt.Errorf("parse %q as int: %w", content, err)
		}
		target.SetInt(val)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(strings.TrimSpace(content), 10, target.Type().Bits())
		if err != nil {
			return result, fmt.Errorf("parse %q as uint: %w", content, err)
		}
		target.SetUint(val)
		return result, nil
	}

	err := json.Unmarshal([]byte(content), &result)
	if err == nil {
		return result, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		return result, fmt.Errorf("decode %T: %w (repair failed: %v)", result, err, repairErr)
	}

	var retry T
	if err := json.Unmarshal([]byte(repaired), &retry); err != nil {
		return result, fmt.Errorf("decode repaired %T: %w", result, err)
	}
	return retry, nil
}
