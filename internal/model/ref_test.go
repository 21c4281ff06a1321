package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseLogRef(t *testing.T) {
	ref, err := ParseLogRef("42")
	assert.NoError(t, err)
	assert.Equal(t, LogRef(42), ref)
	assert.Equal(t, "42", ref.String())

	for _, bad := range []string{"", "0", "-1", "abc", "1.5"} {
		_, err := ParseLogRef(bad)
		assert.Error(t, err, bad)
	}
}

func TestParsePersonRef(t *testing.T) {
	id := uuid.New().String()
	ref, err := ParsePersonRef(id)
	assert.NoError(t, err)
	assert.Equal(t, id, ref.String())

	_, err = ParsePersonRef("not-a-uuid")
	assert.Error(t, err)
}

func TestParseEntityKind(t *testing.T) {
	tests := []struct {
		token string
		kind  EntityKind
		ok    bool
	}{
		{"person", KindPerson, true},
		{"PERSON", KindPerson, true},
		{"log", KindDailyLog, true},
		{"daily_log", KindDailyLog, true},
		{"log_section", KindLogSection, true},
		{"animal", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		kind, ok := ParseEntityKind(tt.token)
		assert.Equal(t, tt.ok, ok, tt.token)
		if tt.ok {
			assert.Equal(t, tt.kind, kind, tt.token)
		}
	}
}
