package symbol

import (
	"strings"
	"testing"

	"github.com/matzehuels/sfsymbol/pkg/errors"
)

func TestValidateIcon(t *testing.T) {
	tests := []struct {
		name    string
		attrs   string
		wantErr bool
	}{
		{"exact", `width="32" height="32" viewBox="0 0 32 32"`, false},
		{"wide", `width="64" height="32" viewBox="0 0 32 32"`, true},
		{"tall", `width="32" height="64" viewBox="0 0 32 32"`, true},
		{"viewBox mismatch", `width="32" height="32" viewBox="0 0 64 64"`, true},
		{"viewBox offset", `width="32" height="32" viewBox="1 1 32 32"`, true},
		{"pixel units", `width="32px" height="32px" viewBox="0 0 32 32"`, true},
		{"percent", `width="100%" height="100%" viewBox="0 0 32 32"`, true},
		{"no width", `height="32" viewBox="0 0 32 32"`, true},
		{"no viewBox", `width="32" height="32"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			icon := mustParse(t, `<svg xmlns="http://www.w3.org/2000/svg" `+tt.attrs+`/>`)
			err := ValidateIcon(icon, "star.svg", 32, 32)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateIcon() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, errors.ErrCodeSizeMismatch) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeSizeMismatch)
			}
			if !strings.Contains(err.Error(), "star.svg") {
				t.Errorf("error %q should name the icon", err)
			}
		})
	}
}
