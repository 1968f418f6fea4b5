package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() {
		_ = Setup("", &bytes.Buffer{})
	})

	tests := []struct {
		name    string
		level   string
		want    logrus.Level
		wantErr bool
	}{
		{name: "default", level: "", want: logrus.WarnLevel},
		{name: "debug", level: "debug", want: logrus.DebugLevel},
		{name: "upper case", level: "ERROR", want: logrus.ErrorLevel},
		{name: "unknown", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Setup(tt.level, &bytes.Buffer{})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), `"loud"`)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, logrus.GetLevel())
		})
	}
}

func TestSetupWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Setup("info", &buf))
	t.Cleanup(func() {
		_ = Setup("", &bytes.Buffer{})
	})

	logrus.WithField("kind", "drop").Info("command built")
	logrus.Debug("hidden")

	assert.Contains(t, buf.String(), "command built")
	assert.Contains(t, buf.String(), "kind=drop")
	assert.NotContains(t, buf.String(), "hidden")
}
