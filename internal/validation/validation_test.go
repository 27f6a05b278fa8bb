package validation

import (
	"strings"
	"testing"
)

type registerInput struct {
	Username string `validate:"required,min=3,max=30,alphanum"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestStructValid(t *testing.T) {
	in := registerInput{
		Username: "binger42",
		Email:    "binger@example.com",
		Password: "hunter2hunter2",
	}
	if err := Struct(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructErrors(t *testing.T) {
	tests := []struct {
		name string
		in   registerInput
		want string
	}{
		{
			name: "missing username",
			in:   registerInput{Email: "a@b.com", Password: "hunter2hunter2"},
			want: "username is required",
		},
		{
			name: "username too short",
			in:   registerInput{Username: "ab", Email: "a@b.com", Password: "hunter2hunter2"},
			want: "username must be at least 3",
		},
		{
			name: "username not alphanumeric",
			in:   registerInput{Username: "bad user!", Email: "a@b.com", Password: "hunter2hunter2"},
			want: "username must contain only letters and digits",
		},
		{
			name: "bad email",
			in:   registerInput{Username: "binger42", Email: "nope", Password: "hunter2hunter2"},
			want: "email must be a valid email address",
		},
		{
			name: "short password",
			in:   registerInput{Username: "binger42", Email: "a@b.com", Password: "short"},
			want: "password must be at least 8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestStructJoinsMultipleErrors(t *testing.T) {
	err := Struct(registerInput{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, want := range []string{"username is required", "email is required", "password is required"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not contain %q", err.Error(), want)
		}
	}
}
