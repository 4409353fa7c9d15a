package convert

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"

	"github.com/footprint-tools/cobalt/internal/descriptor"
)

// Builtin parses token per typ. TypeString, TypeOther and unknown tags pass
// the token through unchanged.
func Builtin(token string, typ descriptor.TypeTag) (any, error) {
	switch typ {
	case descriptor.TypeInt:
		n, err := strconv.ParseInt(token, 10, strconv.IntSize)
		return int(n), wrap(err, typ)
	case descriptor.TypeInt8:
		n, err := strconv.ParseInt(token, 10, 8)
		return int8(n), wrap(err, typ)
	case descriptor.TypeInt16:
		n, err := strconv.ParseInt(token, 10, 16)
		return int16(n), wrap(err, typ)
	case descriptor.TypeInt32:
		n, err := strconv.ParseInt(token, 10, 32)
		return int32(n), wrap(err, typ)
	case descriptor.TypeInt64:
		n, err := strconv.ParseInt(token, 10, 64)
		return n, wrap(err, typ)
	case descriptor.TypeUint:
		n, err := strconv.ParseUint(token, 10, strconv.IntSize)
		return uint(n), wrap(err, typ)
	case descriptor.TypeUint8:
		n, err := strconv.ParseUint(token, 10, 8)
		return uint8(n), wrap(err, typ)
	case descriptor.TypeUint16:
		n, err := strconv.ParseUint(token, 10, 16)
		return uint16(n), wrap(err, typ)
	case descriptor.TypeUint32:
		n, err := strconv.ParseUint(token, 10, 32)
		return uint32(n), wrap(err, typ)
	case descriptor.TypeUint64:
		n, err := strconv.ParseUint(token, 10, 64)
		return n, wrap(err, typ)
	case descriptor.TypeFloat32:
		f, err := strconv.ParseFloat(token, 32)
		return float32(f), wrap(err, typ)
	case descriptor.TypeFloat64:
		f, err := strconv.ParseFloat(token, 64)
		return f, wrap(err, typ)
	case descriptor.TypeDecimal:
		return parseDecimal(token)
	case descriptor.TypeBool:
		return parseBool(token)
	case descriptor.TypeChar:
		return parseChar(token)
	default:
		return token, nil
	}
}

func wrap(err error, typ descriptor.TypeTag) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "parse %s", typ)
}

func parseDecimal(token string) (any, error) {
	d, _, err := apd.NewFromString(token)
	if err != nil {
		return nil, errors.Wrap(err, "parse decimal")
	}
	return d, nil
}

func parseBool(token string) (any, error) {
	switch {
	case strings.EqualFold(token, "true"):
		return true, nil
	case strings.EqualFold(token, "false"):
		return false, nil
	}
	return nil, errors.Errorf("parse bool: want true or false, got %q", token)
}

func parseChar(token string) (any, error) {
	if utf8.RuneCountInString(token) != 1 {
		return nil, errors.Errorf("parse char: want exactly one character, got %d", utf8.RuneCountInString(token))
	}
	r, _ := utf8.DecodeRuneInString(token)
	return r, nil
}
