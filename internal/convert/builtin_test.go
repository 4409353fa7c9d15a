package convert

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cobalt/internal/descriptor"
)

func TestBuiltin_Parses(t *testing.T) {
	tests := []struct {
		name  string
		token string
		typ   descriptor.TypeTag
		want  any
	}{
		{"int", "-42", descriptor.TypeInt, -42},
		{"int8", "127", descriptor.TypeInt8, int8(127)},
		{"int16", "-300", descriptor.TypeInt16, int16(-300)},
		{"int32", "70000", descriptor.TypeInt32, int32(70000)},
		{"int64", "9000000000", descriptor.TypeInt64, int64(9000000000)},
		{"uint", "7", descriptor.TypeUint, uint(7)},
		{"uint8", "255", descriptor.TypeUint8, uint8(255)},
		{"uint16", "65535", descriptor.TypeUint16, uint16(65535)},
		{"uint32", "4000000000", descriptor.TypeUint32, uint32(4000000000)},
		{"uint64", "18000000000000000000", descriptor.TypeUint64, uint64(18000000000000000000)},
		{"float", "1.5", descriptor.TypeFloat32, float32(1.5)},
		{"double", "2.25", descriptor.TypeFloat64, 2.25},
		{"bool true", "true", descriptor.TypeBool, true},
		{"bool False", "False", descriptor.TypeBool, false},
		{"char", "x", descriptor.TypeChar, 'x'},
		{"multibyte char", "é", descriptor.TypeChar, 'é'},
		{"string", "hello", descriptor.TypeString, "hello"},
		{"other passes through", "raw", descriptor.TypeOther, "raw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Builtin(tt.token, tt.typ)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBuiltin_Decimal(t *testing.T) {
	got, err := Builtin("12.50", descriptor.TypeDecimal)
	require.NoError(t, err)

	d, ok := got.(*apd.Decimal)
	require.True(t, ok)
	require.Equal(t, "12.50", d.String())
}

func TestBuiltin_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		token string
		typ   descriptor.TypeTag
	}{
		{"int garbage", "abc", descriptor.TypeInt},
		{"int8 overflow", "128", descriptor.TypeInt8},
		{"uint negative", "-1", descriptor.TypeUint},
		{"uint8 overflow", "256", descriptor.TypeUint8},
		{"double garbage", "1.2.3", descriptor.TypeFloat64},
		{"decimal garbage", "ten", descriptor.TypeDecimal},
		{"bool yes", "yes", descriptor.TypeBool},
		{"bool 1", "1", descriptor.TypeBool},
		{"char empty", "", descriptor.TypeChar},
		{"char two", "ab", descriptor.TypeChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Builtin(tt.token, tt.typ)
			require.Error(t, err)
		})
	}
}
