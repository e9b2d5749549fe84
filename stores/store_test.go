package stores

import "testing"

func TestStoreNotifiesSynchronously(t *testing.T) {
	s := New(0)

	var seen []int
	cancel := s.Subscribe(func(v int) { seen = append(seen, v) })

	s.Set(1)
	s.Update(func(v int) int { return v + 10 })

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 11 {
		t.Fatalf("subscriber saw %v", seen)
	}
	if s.Get() != 11 {
		t.Fatalf("value = %d", s.Get())
	}

	cancel()
	s.Set(99)
	if len(seen) != 2 {
		t.Fatal("cancelled subscriber still notified")
	}
}

func TestStoreIsolatedInstances(t *testing.T) {
	a := New("a")
	b := New("b")

	fired := false
	a.Subscribe(func(string) { fired = true })
	b.Set("changed")

	if fired {
		t.Fatal("subscriber on a saw a change on b")
	}
	if a.Get() != "a" || b.Get() != "changed" {
		t.Fatalf("values leaked: %q %q", a.Get(), b.Get())
	}
}
