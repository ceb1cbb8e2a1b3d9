package ttyguard

import "testing"

func TestShouldSuppressTTYQueries(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		envRobot bool
		envTest  bool
		want     bool
	}{
		{"interactive", []string{"tix"}, false, false, false},
		{"interactive with flags", []string{"tix", "--store", "sqlite"}, false, false, false},
		{"robot window", []string{"tix", "--robot-window", "--offset", "10"}, false, false, true},
		{"robot metrics", []string{"tix", "--robot-metrics"}, false, false, true},
		{"version", []string{"tix", "--version"}, false, false, true},
		{"help", []string{"tix", "-h"}, false, false, true},
		{"robot env", []string{"tix"}, true, false, true},
		{"test env", []string{"tix"}, false, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldSuppressTTYQueries(tt.args, tt.envRobot, tt.envTest); got != tt.want {
				t.Errorf("shouldSuppressTTYQueries(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
