package domain

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"bare", ErrTokenAlreadyArmed, "[UV-TOK-4090] token already armed"},
		{"details", ErrInvalidConfig.WithDetails("vault.engine must be memory or badger, got etcd"),
			"[UV-CFG-4000] invalid configuration: vault.engine must be memory or badger, got etcd"},
		{"cause is not printed", ErrVaultStorage.WithCause(io.ErrClosedPipe), "[UV-VLT-5001] vault storage error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDomainError_IsMatchesByCode(t *testing.T) {
	decorated := ErrEntropyUnavailable.WithDetails("read 4 bytes").WithCause(io.ErrUnexpectedEOF)

	if !errors.Is(decorated, ErrEntropyUnavailable) {
		t.Error("decorated copy should still match its sentinel")
	}
	if errors.Is(decorated, ErrVaultStorage) {
		t.Error("different codes must not match")
	}
	if !errors.Is(decorated, io.ErrUnexpectedEOF) {
		t.Error("errors.Is should reach the cause")
	}
	if errors.Is(ErrNoActiveToken, errors.New("[UV-TOK-4040] no active token")) {
		t.Error("a plain error with the same text must not match")
	}
}

func TestDomainError_CopiesDoNotMutateSentinel(t *testing.T) {
	_ = ErrVaultStorage.WithDetails("badger: txn too big").WithCause(io.ErrShortWrite)

	if ErrVaultStorage.Details != "" || ErrVaultStorage.Cause != nil {
		t.Errorf("sentinel mutated: %+v", ErrVaultStorage)
	}
}

func TestDomainError_WithCauseKeepsDetails(t *testing.T) {
	err := ErrInvalidConfig.WithDetails("metrics.addr").WithCause(io.EOF)

	if err.Details != "metrics.addr" {
		t.Errorf("Details = %q, want metrics.addr", err.Details)
	}
	if errors.Unwrap(err) != io.EOF {
		t.Errorf("Unwrap() = %v, want io.EOF", errors.Unwrap(err))
	}
	if errors.Unwrap(ErrInvalidConfig) != nil {
		t.Error("sentinel should have no cause")
	}
}

func TestIsDomainErrorAndGetErrorCode(t *testing.T) {
	wrapped := fmt.Errorf("load config: %w", ErrInvalidConfig.WithDetails("bad"))

	tests := []struct {
		name     string
		err      error
		code     string
		wantIs   bool
		wantCode string
	}{
		{"wrapped, any code", wrapped, "", true, "UV-CFG-4000"},
		{"wrapped, matching code", wrapped, "UV-CFG-4000", true, "UV-CFG-4000"},
		{"wrapped, other code", wrapped, "UV-VLT-5001", false, "UV-CFG-4000"},
		{"plain error", io.EOF, "", false, ""},
		{"nil", nil, "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDomainError(tt.err, tt.code); got != tt.wantIs {
				t.Errorf("IsDomainError() = %v, want %v", got, tt.wantIs)
			}
			if got := GetErrorCode(tt.err); got != tt.wantCode {
				t.Errorf("GetErrorCode() = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestSentinelCodes(t *testing.T) {
	sentinels := map[string]*DomainError{
		"UV-ENT-5030": ErrEntropyUnavailable,
		"UV-TOK-4090": ErrTokenAlreadyArmed,
		"UV-TOK-4040": ErrNoActiveToken,
		"UV-VLT-4220": ErrUnityCheckFailed,
		"UV-VLT-5001": ErrVaultStorage,
		"UV-VLT-5002": ErrVaultClosed,
		"UV-CFG-4000": ErrInvalidConfig,
	}

	for code, err := range sentinels {
		t.Run(code, func(t *testing.T) {
			if err.Code != code {
				t.Errorf("Code = %q, want %q", err.Code, code)
			}
			if !strings.HasPrefix(err.Code, "UV-") {
				t.Errorf("code %q lacks the UV- prefix", err.Code)
			}
			if err.Message == "" {
				t.Error("empty message")
			}
		})
	}
}
