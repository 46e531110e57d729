package config

import (
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid config",
			config: Config{
				Port:          "8080",
				AppName:       "BudgetBuddy",
				GinMode:       "release",
				LogLevel:      "info",
				CurrentUserID: "user-1",
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:          "abc",
				GinMode:       "debug",
				LogLevel:      "info",
				CurrentUserID: "user-1",
			},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name: "invalid port - out of range",
			config: Config{
				Port:          "70000",
				GinMode:       "debug",
				LogLevel:      "info",
				CurrentUserID: "user-1",
			},
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name: "invalid gin mode",
			config: Config{
				Port:          "8080",
				GinMode:       "production",
				LogLevel:      "info",
				CurrentUserID: "user-1",
			},
			wantErr:     true,
			errorString: "invalid gin mode 'production'",
		},
		{
			name: "invalid log level",
			config: Config{
				Port:          "8080",
				GinMode:       "debug",
				LogLevel:      "verbose",
				CurrentUserID: "user-1",
			},
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
		{
			name: "empty current user",
			config: Config{
				Port:     "8080",
				GinMode:  "debug",
				LogLevel: "info",
			},
			wantErr:     true,
			errorString: "current user id cannot be empty",
		},
		{
			name: "multiple problems reported together",
			config: Config{
				Port:     "bad",
				GinMode:  "bad",
				LogLevel: "bad",
			},
			wantErr:     true,
			errorString: "invalid port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.errorString)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	Load()
	if AppConfig == nil {
		t.Fatal("AppConfig not populated")
	}
	if err := AppConfig.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}
