package validation

import "testing"

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{
			name:     "valid username",
			username: "alice",
			wantErr:  false,
		},
		{
			name:     "username with spaces around it",
			username: "  bobby  ",
			wantErr:  false,
		},
		{
			name:     "empty username",
			username: "",
			wantErr:  true,
		},
		{
			name:     "whitespace only",
			username: "   ",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePIN(t *testing.T) {
	tests := []struct {
		name    string
		pin     string
		wantErr bool
	}{
		{
			name:    "valid PIN",
			pin:     "4821",
			wantErr: false,
		},
		{
			name:    "leading zeros allowed",
			pin:     "0042",
			wantErr: false,
		},
		{
			name:    "too short",
			pin:     "123",
			wantErr: true,
		},
		{
			name:    "too long",
			pin:     "12345",
			wantErr: true,
		},
		{
			name:    "non-numeric",
			pin:     "12a4",
			wantErr: true,
		},
		{
			name:    "empty",
			pin:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePIN(tt.pin)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePIN(%q) error = %v, wantErr %v", tt.pin, err, tt.wantErr)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := Error{Field: "password", Message: "password is required"}
	want := "password: password is required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
