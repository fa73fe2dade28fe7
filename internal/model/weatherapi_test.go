package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIResponse_Result(t *testing.T) {
	body := `{"location":{"name":"Quito","region":"Pichincha","country":"Ecuador"},"current":{"temp_c":18.5,"condition":{"text":"Parcialmente nublado"},"humidity":70,"feelslike_c":17.9}}`
	var resp APIResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	result, ok := resp.Result()

	require.True(t, ok)
	assert.Nil(t, resp.Error)
	assert.Equal(t, "Quito", result.Location.Name)
	assert.Equal(t, "Pichincha", result.Location.Region)
	assert.Equal(t, "Ecuador", result.Location.Country)
	assert.Equal(t, 18.5, result.Current.TempC)
	assert.Equal(t, 17.9, result.Current.FeelsLikeC)
	assert.Equal(t, 70, result.Current.Humidity)
	assert.Equal(t, "Parcialmente nublado", result.Current.Condition.Text)
}

func TestAPIResponse_ResultIncomplete(t *testing.T) {
	tests := map[string]string{
		"empty object":     `{}`,
		"missing current":  `{"location":{"name":"Quito"}}`,
		"missing location": `{"current":{"temp_c":18.5}}`,
		"error body":       `{"error":{"code":2006,"message":"API key is invalid."}}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			var resp APIResponse
			require.NoError(t, json.Unmarshal([]byte(body), &resp))

			result, ok := resp.Result()

			assert.False(t, ok)
			assert.Nil(t, result)
		})
	}
}

func TestAPIError(t *testing.T) {
	var resp APIResponse
	require.NoError(t, json.Unmarshal([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`), &resp))

	require.NotNil(t, resp.Error)
	assert.Equal(t, 1006, resp.Error.Code)
	assert.EqualError(t, resp.Error, "No matching location found.")
}
