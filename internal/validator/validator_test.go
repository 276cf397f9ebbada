package validator

import (
	"testing"
)

func TestValidate_RegisterRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{name: "valid", req: RegisterRequest{Name: "Arjun Sharma", Email: "arjun@example.com", Password: "SecurePass123!"}},
		{name: "missing name", req: RegisterRequest{Email: "arjun@example.com", Password: "SecurePass123!"}, wantErr: true},
		{name: "bad email", req: RegisterRequest{Name: "Arjun", Email: "not-an-email", Password: "SecurePass123!"}, wantErr: true},
		{name: "short password", req: RegisterRequest{Name: "Arjun", Email: "arjun@example.com", Password: "abc"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(&tt.req)
			if (len(errs) > 0) != tt.wantErr {
				t.Fatalf("Validate() errors = %v, wantErr %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidate_UpdateStreamRequest(t *testing.T) {
	v := New()

	for _, stream := range []string{"Science", "Commerce", "Arts"} {
		if errs := v.Validate(&UpdateStreamRequest{Stream: stream}); len(errs) > 0 {
			t.Errorf("stream %q should be valid, got %v", stream, errs)
		}
	}

	for _, stream := range []string{"", "science", "Engineering"} {
		if errs := v.Validate(&UpdateStreamRequest{Stream: stream}); len(errs) == 0 {
			t.Errorf("stream %q should be rejected", stream)
		}
	}
}

func TestValidate_ProgressUpdateRequest(t *testing.T) {
	v := New()

	// Completed=false must be accepted: it is how steps are unmarked.
	req := &ProgressUpdateRequest{CareerID: "c1", StepID: "1", Completed: false}
	if errs := v.Validate(req); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if errs := v.Validate(&ProgressUpdateRequest{StepID: "1"}); len(errs) == 0 {
		t.Fatal("missing career_id should be rejected")
	}
}
