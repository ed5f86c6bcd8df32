package worksession

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustmentNote(t *testing.T) {
	tests := []struct {
		name     string
		delta    float64
		expected string
	}{
		{name: "add hours", delta: 2.5, expected: "ADJUSTED: +2h 30m"},
		{name: "remove hours", delta: -1.25, expected: "ADJUSTED: -1h 15m"},
		{name: "sub-hour correction", delta: 0.1, expected: "ADJUSTED: +0h 6m"},
		{name: "whole hours", delta: 3, expected: "ADJUSTED: +3h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adjustmentNote(tt.delta))
		})
	}
}
