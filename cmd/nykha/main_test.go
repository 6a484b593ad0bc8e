package main

import "testing"

func TestNeedsLoad(t *testing.T) {
	tests := []struct {
		command string
		want    bool
	}{
		{"init", false},
		{"migrate", false},
		{"doctor", false},
		{"keyring set <connection-string>", false},
		{"plan", false},
		{"plan <user-id>", false},
		{"backup restore <path>", false},
		{"mark <user-id> <category>", true},
		{"serve", true},
		{"planner", true},
	}
	for _, tt := range tests {
		if got := needsLoad(tt.command); got != tt.want {
			t.Errorf("needsLoad(%q) = %v, want %v", tt.command, got, tt.want)
		}
	}
}
