package preflight

import "testing"

func TestSatisfies(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		constraint string
		want       bool
		wantErr    bool
	}{
		{"node newer", "v18.17.1", ">=14.0.0", true, false},
		{"node older", "v12.22.0", ">=14.0.0", false, false},
		{"exact boundary", "1.12.0", ">=1.12.0", true, false},
		{"yarn berry", "3.6.4", ">=1.12.0", true, false},
		{"whitespace", " 9.8.1\n", ">=6.0.0", true, false},
		{"invalid version", "notaversion", ">=1.0.0", false, true},
		{"invalid constraint", "1.0.0", ">>1", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Satisfies(tt.version, tt.constraint)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Satisfies(%q, %q) = %v, want %v", tt.version, tt.constraint, got, tt.want)
			}
		})
	}
}
