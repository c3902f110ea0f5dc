package diskutils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/diskutils/internal/errors"
)

func TestParseVolume(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Volume
		wantErr bool
	}{
		{"internal", Internal, false},
		{"External", External, false},
		{" EXTERNAL ", External, false},
		{"", Internal, true},
		{"sdcard", Internal, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseVolume(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCategory(err, errors.CategoryValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVolume_ZeroValueAndText(t *testing.T) {
	t.Parallel()

	var v Volume
	assert.Equal(t, Internal, v)
	assert.Equal(t, "internal", Internal.String())
	assert.Equal(t, "external", External.String())
	assert.Equal(t, "volume(7)", Volume(7).String())

	data, err := json.Marshal(map[string]Volume{"v": External})
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":"external"}`, string(data))

	var decoded map[string]Volume
	require.NoError(t, json.Unmarshal([]byte(`{"v":"internal"}`), &decoded))
	assert.Equal(t, Internal, decoded["v"])
}
