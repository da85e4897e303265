package entity

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/unipoint-lab/appcore/pkg/api"
)

// Decode maps a dynamic response object into a typed record. A field whose
// shape does not match the target record is an explicit error; malformed
// responses are never silently collapsed into zero values.
func Decode[T any](data api.JSON) (T, error) {
	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &out,
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err != nil {
		return out, err
	}

	if err := decoder.Decode(map[string]any(data)); err != nil {
		return out, fmt.Errorf("cannot decode %T: %w", out, err)
	}

	return out, nil
}

// DecodeList maps every element of a response array, failing on the first
// element that does not decode.
func DecodeList[T any](data api.Array) ([]T, error) {
	result := make([]T, 0, len(data))
	for i, elem := range data {
		record, err := Decode[T](elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		result = append(result, record)
	}

	return result, nil
}
