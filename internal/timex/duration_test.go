package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	var v struct {
		A Duration `json:"a"`
		B Duration `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"1m30s","b":2000000000}`), &v))
	assert.Equal(t, 90*time.Second, v.A.Duration)
	assert.Equal(t, 2*time.Second, v.B.Duration)
}

func TestDuration_UnmarshalJSON_Invalid(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{Duration: 3 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, `"3s"`, string(b))
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	var v struct {
		A Duration `yaml:"a"`
		B Duration `yaml:"b"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: 5s\nb: 1000\n"), &v))
	assert.Equal(t, 5*time.Second, v.A.Duration)
	assert.Equal(t, time.Microsecond, v.B.Duration)

	var bad struct {
		A Duration `yaml:"a"`
	}
	assert.Error(t, yaml.Unmarshal([]byte("a: [1, 2]\n"), &bad))
}
