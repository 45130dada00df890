package util_test

import (
	"encoding/json"
	"testing"
	"time"

	util "github.com/saulo-duarte/chronos-quiz/internal/utils"
)

func TestISOTime_JSON(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	it := util.NewISOTime(time.Date(2024, 3, 9, 21, 30, 0, 0, loc))

	raw, err := json.Marshal(struct {
		At util.ISOTime `json:"at"`
	}{it})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(raw), `{"at":"2024-03-10T00:30:00Z"}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if it.String() != "2024-03-10T00:30:00Z" {
		t.Errorf("String() = %s", it)
	}
}

func TestISOTime_Zero(t *testing.T) {
	raw, err := json.Marshal(util.ISOTime{})
	if err != nil || string(raw) != "null" {
		t.Errorf("zero time should encode as null, got %s (%v)", raw, err)
	}
	if s := (util.ISOTime{}).String(); s != "" {
		t.Errorf("zero String() = %q", s)
	}
}
