package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	cfg := NewConfig().Disable("ch01").SetSeverity(" sl01 ", SeverityInfo)

	assert.True(t, cfg.IsDisabled("CH01"))
	assert.False(t, cfg.IsDisabled("CH02"))
	assert.Equal(t, SeverityInfo, cfg.GetSeverity("SL01", SeverityError))
	assert.Equal(t, SeverityError, cfg.GetSeverity("FL01", SeverityError))

	var nilCfg *Config
	assert.False(t, nilCfg.IsDisabled("CH01"))
	assert.Equal(t, SeverityHint, nilCfg.GetSeverity("CH01", SeverityHint))
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in     string
		want   Severity
		wantOK bool
	}{
		{in: "error", want: SeverityError, wantOK: true},
		{in: " Warning ", want: SeverityWarning, wantOK: true},
		{in: "INFO", want: SeverityInfo, wantOK: true},
		{in: "hint", want: SeverityHint, wantOK: true},
		{in: "fatal", want: SeverityWarning, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSeverity(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	var s Severity
	assert.NoError(t, s.UnmarshalText([]byte("info")))
	assert.Equal(t, SeverityInfo, s)
	assert.Error(t, s.UnmarshalText([]byte("loud")))
}
