package core

import "testing"

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key      string
		expected Action
	}{
		{"up", ActionUp},
		{"W", ActionUp},
		{"k", ActionUp},
		{"down", ActionDown},
		{"s", ActionDown},
		{"j", ActionDown},
		{" Left ", ActionLeft},
		{"a", ActionLeft},
		{"h", ActionLeft},
		{"right", ActionRight},
		{"d", ActionRight},
		{"l", ActionRight},
		{"jump", ActionNone},
		{"", ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := ActionForKey(tc.key); got != tc.expected {
				t.Errorf("ActionForKey(%q) = %v, expected %v", tc.key, got, tc.expected)
			}
		})
	}
}
