package service

import (
	"errors"
	"testing"

	"github.com/psisite/internal/db"
)

func TestFooterServiceDefaultsWithoutRow(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewFooterService(gdb)

	settings, err := svc.Get()
	if err != nil {
		t.Fatalf("get footer failed: %v", err)
	}
	if settings.PracticeName != DefaultFooter().PracticeName {
		t.Fatalf("expected default practice name, got %q", settings.PracticeName)
	}

	var count int64
	gdb.Model(&db.FooterSettings{}).Count(&count)
	if count != 0 {
		t.Fatalf("reading defaults must not write, got %d rows", count)
	}
}

func TestFooterServiceUpdateKeepsSingleRow(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewFooterService(gdb)

	if _, err := svc.Update(FooterInput{PracticeName: "Clínica Aurora", Email: "contato@aurora.com"}); err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	updated, err := svc.Update(FooterInput{PracticeName: " Clínica Aurora ", CRP: "CRP 06/1234"})
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if updated.PracticeName != "Clínica Aurora" || updated.CRP != "CRP 06/1234" || updated.Email != "" {
		t.Fatalf("unexpected footer after overwrite: %+v", updated)
	}

	var count int64
	gdb.Model(&db.FooterSettings{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected a single footer row, got %d", count)
	}

	stored, err := svc.Get()
	if err != nil {
		t.Fatalf("get footer failed: %v", err)
	}
	if stored.CRP != "CRP 06/1234" {
		t.Fatalf("expected stored crp, got %q", stored.CRP)
	}
}

func TestFooterServiceValidation(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewFooterService(gdb)

	if _, err := svc.Update(FooterInput{}); !errors.Is(err, ErrFooterInvalid) {
		t.Fatalf("expected ErrFooterInvalid for missing name, got %v", err)
	}
	if _, err := svc.Update(FooterInput{PracticeName: "X", Email: "not-an-email"}); !errors.Is(err, ErrFooterInvalid) {
		t.Fatalf("expected ErrFooterInvalid for bad email, got %v", err)
	}
}
