package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hl7risk/pkg/domain/types"
)

func TestParseLevel(t *testing.T) {
	for _, level := range types.AllLevels() {
		got, err := types.ParseLevel(level.String())
		gt.NoError(t, err)
		gt.V(t, got).Equal(level)
	}

	_, err := types.ParseLevel("Extreme")
	gt.Error(t, err).Is(types.ErrInvalidInput)
}

func TestParseRegisterStatus(t *testing.T) {
	for _, status := range types.AllRegisterStatuses() {
		got, err := types.ParseRegisterStatus(status.String())
		gt.NoError(t, err)
		gt.V(t, got).Equal(status)
	}

	_, err := types.ParseRegisterStatus("open")
	gt.Error(t, err).Is(types.ErrInvalidInput)
}

func TestParseVendorCategory(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"EHR", false},
		{"Integration Engine", false},
		{"Middleware", false},
		{"Cloud Platform", false},
		{"Database", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := types.ParseVendorCategory(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestParseSupportLevel(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"Full", false},
		{"Partial", false},
		{"Limited", false},
		{"None", false},
		{"Some", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := types.ParseSupportLevel(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}
