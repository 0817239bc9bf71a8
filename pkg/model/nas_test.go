package model

import (
	"slices"
	"testing"
)

func TestNasPatch(t *testing.T) {
	var empty NasPatch
	if !empty.IsEmpty() {
		t.Error("zero NasPatch should be empty")
	}

	addr := "10.0.0.2"
	secret := "new-secret"
	p := NasPatch{NasName: &addr, Secret: &secret}
	if p.IsEmpty() {
		t.Error("NasPatch with fields should not be empty")
	}
	if got := p.Fields(); !slices.Equal(got, []string{"nasname", "secret"}) {
		t.Errorf("Fields() = %v", got)
	}

	e := NasEntry{ID: 1, NasName: "10.0.0.1", Secret: "old", Status: NasStatusActive}
	applied := p.Apply(e)
	if applied.NasName != addr || applied.Secret != secret {
		t.Errorf("Apply() = %+v", applied)
	}
	if applied.Status != NasStatusActive {
		t.Errorf("Apply() Status = %q, want unchanged", applied.Status)
	}
	if e.NasName != "10.0.0.1" {
		t.Error("Apply() must not modify the original entry")
	}
}
