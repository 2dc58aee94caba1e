package validation

import "testing"

func TestUSNPattern(t *testing.T) {
	tests := []struct {
		name  string
		usn   string
		valid bool
	}{
		{name: "valid", usn: "1JS20IS001", valid: true},
		{name: "valid other branch", usn: "4MH21CS123", valid: true},
		{name: "lowercase", usn: "1js20is001", valid: false},
		{name: "too short", usn: "1JS20IS01", valid: false},
		{name: "missing digits", usn: "AJS20IS001", valid: false},
		{name: "empty", usn: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompiledPatterns.USN.MatchString(tt.usn); got != tt.valid {
				t.Errorf("USN %q: got %v, want %v", tt.usn, got, tt.valid)
			}
		})
	}
}

func TestSIDPattern(t *testing.T) {
	tests := []struct {
		name  string
		sid   string
		valid bool
	}{
		{name: "valid", sid: "CS857", valid: true},
		{name: "long prefix", sid: "MATH41", valid: true},
		{name: "digits only", sid: "857", valid: false},
		{name: "lowercase", sid: "cs857", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompiledPatterns.SID.MatchString(tt.sid); got != tt.valid {
				t.Errorf("SID %q: got %v, want %v", tt.sid, got, tt.valid)
			}
		})
	}
}
