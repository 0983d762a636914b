package inspect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/graphwatch/graphwatch-go/pkg/model"
)

// ErrUnsupportedType is returned when text input cannot be converted to a
// field's data type.
var ErrUnsupportedType = errors.New("unsupported data type")

// ParseValue converts text input to a value of the given data type.
// "null" and "nil" convert to nil for entity fields; entities cannot
// otherwise be written from text.
func ParseValue(dt model.DataType, input string) (any, error) {
	input = strings.TrimSpace(input)

	switch dt {
	case model.DataTypeBool:
		return strconv.ParseBool(input)

	case model.DataTypeInt8:
		v, err := strconv.ParseInt(input, 0, 8)
		return int8(v), numErr(err, input)
	case model.DataTypeInt16:
		v, err := strconv.ParseInt(input, 0, 16)
		return int16(v), numErr(err, input)
	case model.DataTypeInt32:
		v, err := strconv.ParseInt(input, 0, 32)
		return int32(v), numErr(err, input)
	case model.DataTypeInt64:
		v, err := strconv.ParseInt(input, 0, 64)
		return v, numErr(err, input)

	case model.DataTypeUint8:
		v, err := strconv.ParseUint(input, 0, 8)
		return uint8(v), numErr(err, input)
	case model.DataTypeUint16:
		v, err := strconv.ParseUint(input, 0, 16)
		return uint16(v), numErr(err, input)
	case model.DataTypeUint32:
		v, err := strconv.ParseUint(input, 0, 32)
		return uint32(v), numErr(err, input)
	case model.DataTypeUint64:
		v, err := strconv.ParseUint(input, 0, 64)
		return v, numErr(err, input)

	case model.DataTypeFloat32:
		v, err := strconv.ParseFloat(input, 32)
		return float32(v), numErr(err, input)
	case model.DataTypeFloat64:
		v, err := strconv.ParseFloat(input, 64)
		return v, numErr(err, input)

	case model.DataTypeString:
		if unquoted, err := strconv.Unquote(input); err == nil {
			return unquoted, nil
		}
		return input, nil

	case model.DataTypeEntity:
		if input == "null" || input == "nil" {
			return nil, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, dt)
}

func numErr(err error, input string) error {
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidNumber, input)
	}
	return nil
}
