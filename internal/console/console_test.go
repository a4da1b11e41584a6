package console

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/redlinehq/redline/internal/editor"
)

func TestParseDecision(t *testing.T) {
	tests := []struct {
		in     string
		want   editor.Decision
		wantOK bool
	}{
		{"y", editor.DecisionAccept, true},
		{"Y", editor.DecisionAccept, true},
		{"yes", editor.DecisionAccept, true},
		{" YES ", editor.DecisionAccept, true},
		{"n", editor.DecisionReject, true},
		{"No", editor.DecisionReject, true},
		{"", editor.DecisionReject, false},
		{"maybe", editor.DecisionReject, false},
		{"yess", editor.DecisionReject, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseDecision(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
