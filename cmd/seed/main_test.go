package main

import (
	"math/rand"
	"testing"
	"time"
)

func TestDefaultUsers_CoverAllRoles(t *testing.T) {
	t.Parallel()

	users := defaultUsers()
	if len(users) != 4 {
		t.Fatalf("defaultUsers count = %d, want 4", len(users))
	}

	byRole := map[string]string{}
	for _, u := range users {
		if prev, dup := byRole[u.Role]; dup {
			t.Fatalf("role %s assigned to both %s and %s", u.Role, prev, u.Username)
		}
		byRole[u.Role] = u.Username
	}
	for _, role := range []string{"Admin", "RA", "Manager", "Viewer"} {
		if _, ok := byRole[role]; !ok {
			t.Errorf("missing default user for role %s", role)
		}
	}
}

func TestRandomResource_FieldsAreConsistent(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	now := time.Now().UTC()

	for i := 0; i < 50; i++ {
		r := randomResource(rng, now, i)

		if len(r.Skills) < 2 || len(r.Skills) > 5 {
			t.Errorf("skills len = %d, want 2..5", len(r.Skills))
		}
		seen := map[string]bool{}
		for _, s := range r.Skills {
			if seen[s] {
				t.Errorf("duplicate skill %q in %v", s, r.Skills)
			}
			seen[s] = true
		}

		if r.IdleFrom.After(now) {
			t.Errorf("idleFrom %v is in the future", r.IdleFrom)
		}
		if r.IsUrgent != (r.IdleDuration >= 2) {
			t.Errorf("urgency flag inconsistent: duration=%d urgent=%v", r.IdleDuration, r.IsUrgent)
		}
		if r.Rate <= 0 {
			t.Errorf("rate = %v, want positive", r.Rate)
		}
	}
}

func TestRandomResource_UniqueEmployeeCodes(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	now := time.Now().UTC()

	codes := map[string]bool{}
	for i := 0; i < resourceCount; i++ {
		r := randomResource(rng, now, i)
		if codes[r.EmployeeCode] {
			t.Fatalf("duplicate employee code %s", r.EmployeeCode)
		}
		codes[r.EmployeeCode] = true
	}
}
