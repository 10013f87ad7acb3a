package features

import (
	"reflect"
	"testing"

	"github.com/featgate/featgate/pkg/errors"
)

func TestValidateOnlyFeatures(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    []string
		wantErr bool
	}{
		{
			name: "absent option",
			raw:  nil,
			want: nil,
		},
		{
			name: "single feature",
			raw:  []any{"metrics"},
			want: []string{"metrics"},
		},
		{
			name: "multiple features",
			raw:  []any{"metrics", "json"},
			want: []string{"metrics", "json"},
		},
		{
			name: "typed string slice",
			raw:  []string{"json"},
			want: []string{"json"},
		},
		{
			name:    "empty list",
			raw:     []any{},
			wantErr: true,
		},
		{
			name:    "non-list value",
			raw:     "metrics",
			wantErr: true,
		},
		{
			name:    "boolean value",
			raw:     true,
			wantErr: true,
		},
		{
			name:    "non-string element",
			raw:     []any{"metrics", int64(1)},
			wantErr: true,
		},
		{
			name:    "non-identifier element",
			raw:     []any{"met rics"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateOnlyFeatures("libmetrics", tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ValidateOnlyFeatures() expected error, got nil")
				}
				if code := errors.GetCode(err); code != errors.ErrCodeInvalidOnlyFeatures {
					t.Errorf("code = %v, want %v", code, errors.ErrCodeInvalidOnlyFeatures)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateOnlyFeatures() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ValidateOnlyFeatures() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShouldInclude(t *testing.T) {
	consumer := NewState(Declaration{
		Default:  []string{"json"},
		Optional: []string{"cli"},
	}, "myapp", nil)

	tests := []struct {
		name     string
		consumer *State
		only     []string
		want     bool
	}{
		{
			name:     "no requirement",
			consumer: consumer,
			only:     nil,
			want:     true,
		},
		{
			name:     "OR match on one enabled feature",
			consumer: consumer,
			only:     []string{"metrics", "json"},
			want:     true,
		},
		{
			name:     "no enabled match",
			consumer: consumer,
			only:     []string{"metrics"},
			want:     false,
		},
		{
			name:     "declared but disabled feature",
			consumer: consumer,
			only:     []string{"cli"},
			want:     false,
		},
		{
			name:     "consumer without features includes everything",
			consumer: NewState(Declaration{}, "bare", nil),
			only:     []string{"metrics"},
			want:     true,
		},
		{
			name:     "nil consumer includes everything",
			consumer: nil,
			only:     []string{"metrics"},
			want:     true,
		},
		{
			name:     "nil consumer without requirement",
			consumer: nil,
			only:     nil,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldInclude(tt.consumer, tt.only); got != tt.want {
				t.Errorf("ShouldInclude(%v) = %v, want %v", tt.only, got, tt.want)
			}
		})
	}
}
