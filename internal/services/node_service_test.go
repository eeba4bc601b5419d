package services

import "testing"

func TestSubtreeContains(t *testing.T) {
	subtree := []string{"f-1", "f-2", "d-3"}

	tests := []struct {
		name   string
		target string
		want   bool
	}{
		{"moved node itself", "f-1", true},
		{"descendant folder", "f-2", true},
		{"descendant document", "d-3", true},
		{"unrelated folder", "f-9", false},
		{"empty target", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := subtreeContains(subtree, tt.target); got != tt.want {
				t.Errorf("subtreeContains(%v, %q) = %v; want %v", subtree, tt.target, got, tt.want)
			}
		})
	}
}
