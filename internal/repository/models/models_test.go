package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSlice_Value(t *testing.T) {
	v, err := StringSlice(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringSlice{"국물", "신라", "", "먹다"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["국물","신라","","먹다"]`, v)
}

func TestStringSlice_Scan(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  StringSlice
	}{
		{"nil", nil, StringSlice{}},
		{"empty string", "", StringSlice{}},
		{"json null", []byte("null"), StringSlice{}},
		{"string", `["a","b"]`, StringSlice{"a", "b"}},
		{"bytes", []byte(`["1","2","3","4"]`), StringSlice{"1", "2", "3", "4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringSlice
			require.NoError(t, s.Scan(tt.input))
			assert.Equal(t, tt.want, s)
		})
	}

	var s StringSlice
	assert.Error(t, s.Scan(42))
	assert.Error(t, s.Scan("not json"))
}
