package service

import (
	"errors"
	"testing"
)

func TestOfferingServiceCreateAndList(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewOfferingService(gdb)

	if _, err := svc.Create(OfferingInput{Title: "Terapia individual", Icon: "heart"}); err != nil {
		t.Fatalf("create offering failed: %v", err)
	}
	hidden, err := svc.Create(OfferingInput{Title: "Terapia de casal", Visible: boolPtr(false)})
	if err != nil {
		t.Fatalf("create offering failed: %v", err)
	}
	if hidden.Visible {
		t.Fatalf("expected second offering to be hidden")
	}

	visible, err := svc.List(false)
	if err != nil {
		t.Fatalf("list offerings failed: %v", err)
	}
	if len(visible) != 1 {
		t.Fatalf("expected 1 visible offering, got %d", len(visible))
	}

	all, err := svc.List(true)
	if err != nil {
		t.Fatalf("list all offerings failed: %v", err)
	}
	if len(all) != 2 || all[0].Sort != 0 || all[1].Sort != 1 {
		t.Fatalf("expected incremental sort values, got %+v", all)
	}
}

func TestOfferingServiceUpdateAndValidation(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewOfferingService(gdb)

	if _, err := svc.Create(OfferingInput{Title: "  "}); !errors.Is(err, ErrItemInvalid) {
		t.Fatalf("expected ErrItemInvalid, got %v", err)
	}

	created, err := svc.Create(OfferingInput{Title: "Orientação"})
	if err != nil {
		t.Fatalf("create offering failed: %v", err)
	}
	updated, err := svc.Update(created.ID, OfferingInput{Title: " Orientação parental ", Sort: intPtr(7)})
	if err != nil {
		t.Fatalf("update offering failed: %v", err)
	}
	if updated.Title != "Orientação parental" || updated.Sort != 7 || !updated.Visible {
		t.Fatalf("unexpected updated offering: %+v", updated)
	}

	if _, err := svc.Update(9999, OfferingInput{Title: "x"}); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestOfferingServiceReorderAndDelete(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewOfferingService(gdb)

	first, _ := svc.Create(OfferingInput{Title: "A"})
	second, _ := svc.Create(OfferingInput{Title: "B"})
	third, _ := svc.Create(OfferingInput{Title: "C"})

	if err := svc.Reorder([]uint{third.ID, first.ID, second.ID}); err != nil {
		t.Fatalf("reorder failed: %v", err)
	}
	items, err := svc.List(true)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if items[0].Title != "C" || items[1].Title != "A" || items[2].Title != "B" {
		t.Fatalf("unexpected order after reorder: %s %s %s", items[0].Title, items[1].Title, items[2].Title)
	}

	if err := svc.Delete(first.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(first.ID); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected second delete to report not found, got %v", err)
	}
	items, _ = svc.List(true)
	if len(items) != 2 {
		t.Fatalf("expected 2 offerings after delete, got %d", len(items))
	}
}

func TestTestimonialServiceRating(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewTestimonialService(gdb)

	created, err := svc.Create(TestimonialInput{Name: "M.", Content: "Mudou minha vida."})
	if err != nil {
		t.Fatalf("create testimonial failed: %v", err)
	}
	if created.Rating != 5 {
		t.Fatalf("expected default rating 5, got %d", created.Rating)
	}

	if _, err := svc.Create(TestimonialInput{Name: "J.", Content: "Ótimo", Rating: 6}); !errors.Is(err, ErrItemInvalid) {
		t.Fatalf("expected rating validation error, got %v", err)
	}
	if _, err := svc.Create(TestimonialInput{Name: "J."}); !errors.Is(err, ErrItemInvalid) {
		t.Fatalf("expected missing content error, got %v", err)
	}

	updated, err := svc.Update(created.ID, TestimonialInput{Name: "M.", Role: "Paciente", Content: "Recomendo.", Rating: 4, Visible: boolPtr(false)})
	if err != nil {
		t.Fatalf("update testimonial failed: %v", err)
	}
	if updated.Rating != 4 || updated.Visible {
		t.Fatalf("unexpected testimonial after update: %+v", updated)
	}

	visible, err := svc.List(false)
	if err != nil {
		t.Fatalf("list testimonials failed: %v", err)
	}
	if len(visible) != 0 {
		t.Fatalf("expected hidden testimonial to be filtered, got %d", len(visible))
	}
}

func TestFAQServiceCRUD(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewFAQService(gdb)

	if _, err := svc.Create(FAQInput{Question: "Como funciona?"}); !errors.Is(err, ErrItemInvalid) {
		t.Fatalf("expected missing answer error, got %v", err)
	}

	first, err := svc.Create(FAQInput{Question: "Atende online?", Answer: "Sim, **online** e presencial."})
	if err != nil {
		t.Fatalf("create faq failed: %v", err)
	}
	second, err := svc.Create(FAQInput{Question: "Aceita convênio?", Answer: "Emitimos recibo."})
	if err != nil {
		t.Fatalf("create faq failed: %v", err)
	}
	if err := svc.Reorder([]uint{second.ID, first.ID}); err != nil {
		t.Fatalf("reorder faq failed: %v", err)
	}

	items, err := svc.List(false)
	if err != nil {
		t.Fatalf("list faq failed: %v", err)
	}
	if len(items) != 2 || items[0].ID != second.ID {
		t.Fatalf("unexpected faq order: %+v", items)
	}
}

func TestGalleryServiceValidatesImageURL(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewGalleryService(gdb)

	if _, err := svc.Create(GalleryInput{Title: "Sala"}); !errors.Is(err, ErrItemInvalid) {
		t.Fatalf("expected missing url error, got %v", err)
	}
	if _, err := svc.Create(GalleryInput{ImageURL: "javascript:alert(1)"}); !errors.Is(err, ErrItemInvalid) {
		t.Fatalf("expected unsafe url to be rejected, got %v", err)
	}

	local, err := svc.Create(GalleryInput{Title: "Sala", ImageURL: "/uploads/sala.jpg"})
	if err != nil {
		t.Fatalf("create gallery image failed: %v", err)
	}
	remote, err := svc.Create(GalleryInput{Title: "Jardim", ImageURL: "https://example.com/jardim.jpg", SortOrder: intPtr(10)})
	if err != nil {
		t.Fatalf("create gallery image failed: %v", err)
	}
	if local.SortOrder != 0 || remote.SortOrder != 10 {
		t.Fatalf("unexpected sort orders: %d, %d", local.SortOrder, remote.SortOrder)
	}

	next, err := svc.Create(GalleryInput{ImageURL: "/uploads/next.jpg"})
	if err != nil {
		t.Fatalf("create gallery image failed: %v", err)
	}
	if next.SortOrder != 11 {
		t.Fatalf("expected new image to be appended after max sort, got %d", next.SortOrder)
	}
}
