package session

import (
	"testing"
	"time"

	"github.com/Hadedyzz/Lager-Produktivitaet/internal/aggregate"
	"github.com/Hadedyzz/Lager-Produktivitaet/internal/model"
)

func testSession(id string) *Session {
	return &Session{
		ID:        id,
		FileName:  "rollenbewegung.xlsx",
		FileHash:  "abc123",
		CreatedAt: time.Now(),
		Tidy: []model.TidyRow{
			{Date: time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC), Shift: "Früh", Team: "Team 1", Metric: "sägen", Value: 10},
		},
		Coefficients: model.CoefficientTable{
			Column:  "Minuten",
			Minutes: map[string]float64{"sägen": 6},
		},
		Cache: aggregate.NewResultCache(),
	}
}

func TestStore_PutGetDelete(t *testing.T) {
	t.Parallel()

	store := NewStore()
	if store.Count() != 0 {
		t.Fatalf("new store must be empty, Count = %d", store.Count())
	}

	store.Put(testSession("a"))
	store.Put(testSession("b"))
	if store.Count() != 2 {
		t.Fatalf("Count = %d, want 2", store.Count())
	}

	sess, err := store.Get("a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess.ID != "a" {
		t.Fatalf("wrong session: %q", sess.ID)
	}

	store.Delete("a")
	if _, err := store.Get("a"); err == nil {
		t.Fatal("deleted session must not be found")
	}
	if store.Count() != 1 {
		t.Fatalf("Count = %d, want 1", store.Count())
	}
}

func TestStore_GetUnknown(t *testing.T) {
	t.Parallel()

	store := NewStore()
	if _, err := store.Get("missing"); err == nil {
		t.Fatal("expected an error for an unknown session")
	}
}

func TestStore_CopyDataIsIndependent(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Put(testSession("a"))

	tidy, coeffs, err := store.CopyData("a")
	if err != nil {
		t.Fatalf("CopyData: %v", err)
	}

	// Mutating the copies must not touch the stored session.
	tidy[0].Value = 99
	coeffs.Minutes["sägen"] = 99
	coeffs.Minutes["neu"] = 1

	sess, _ := store.Get("a")
	if sess.Tidy[0].Value != 10 {
		t.Fatalf("tidy copy leaked into the session: %v", sess.Tidy[0].Value)
	}
	if sess.Coefficients.Minutes["sägen"] != 6 {
		t.Fatalf("coefficient copy leaked into the session: %v", sess.Coefficients.Minutes["sägen"])
	}
	if _, ok := sess.Coefficients.Minutes["neu"]; ok {
		t.Fatal("new key leaked into the session")
	}
}

func TestStore_CopyDataNilMinutes(t *testing.T) {
	t.Parallel()

	sess := testSession("a")
	sess.Coefficients = model.CoefficientTable{}
	store := NewStore()
	store.Put(sess)

	_, coeffs, err := store.CopyData("a")
	if err != nil {
		t.Fatalf("CopyData: %v", err)
	}
	if coeffs.Minutes == nil {
		t.Fatal("copied coefficient map must never be nil")
	}
}
