package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestFromInterface(t *testing.T) {
	testCases := []struct {
		description string
		input       interface{}
		expected    Value
		shouldError bool
	}{
		{description: "string", input: "https://qa.example.com", expected: String("https://qa.example.com")},
		{description: "int", input: 10, expected: Int(10)},
		{description: "int64", input: int64(42), expected: Int(42)},
		{description: "uint16", input: uint16(8080), expected: Int(8080)},
		{description: "float64", input: 1.5, expected: Float(1.5)},
		{description: "float32", input: float32(2.5), expected: Float(2.5)},
		{description: "bool", input: true, expected: Bool(true)},
		{description: "json integer number", input: json.Number("7"), expected: Int(7)},
		{description: "json float number", input: json.Number("7.5"), expected: Float(7.5)},
		{description: "nil rejected", input: nil, shouldError: true},
		{description: "slice rejected", input: []string{"a"}, shouldError: true},
		{description: "map rejected", input: map[string]string{}, shouldError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := FromInterface(tc.input)
			if tc.shouldError {
				assert.ErrorIs(t, err, ErrUnsupportedValue)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tc.expected.Equal(actual), "expected %v, got %v", tc.expected, actual)
		})
	}
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, Int(5).Equal(Int(5)))
	assert.False(t, Int(5).Equal(Float(5)), "numeric kinds must not compare equal across kind")
	assert.False(t, String("true").Equal(Bool(true)))
	assert.False(t, Float(1.0).Equal(Float(1.5)))
}

func TestValue_JSONRoundTrip(t *testing.T) {
	testCases := []struct {
		description string
		value       Value
		encoded     string
	}{
		{description: "string", value: String("qa"), encoded: `"qa"`},
		{description: "int", value: Int(15), encoded: `15`},
		{description: "float", value: Float(2.5), encoded: `2.5`},
		{description: "bool", value: Bool(true), encoded: `true`},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			data, err := json.Marshal(tc.value)
			assert.NoError(t, err)
			assert.Equal(t, tc.encoded, string(data))

			var decoded Value
			assert.NoError(t, json.Unmarshal(data, &decoded))
			assert.True(t, tc.value.Equal(decoded))
		})
	}
}

func TestValue_YAMLDecodePreservesKind(t *testing.T) {
	var config EnvConfig
	input := `
API_URL: https://qa.example.com
TIMEOUT_SECONDS: 10
RATE: 0.5
CACHE_ENABLED: true
`
	assert.NoError(t, yaml.Unmarshal([]byte(input), &config))
	assert.True(t, config["API_URL"].Equal(String("https://qa.example.com")))
	assert.True(t, config["TIMEOUT_SECONDS"].Equal(Int(10)))
	assert.True(t, config["RATE"].Equal(Float(0.5)))
	assert.True(t, config["CACHE_ENABLED"].Equal(Bool(true)))
}
