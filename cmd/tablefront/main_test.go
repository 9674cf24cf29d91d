package main

import "testing"

func TestRootCmdWiring(t *testing.T) {
	root := NewRootCmd()

	want := []string{"login", "logout", "whoami", "tables", "availability", "menu", "reservations", "notifications-read", "ping"}
	for _, name := range want {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("sub-command %q not registered", name)
		}
	}
}

func TestTokenExpiryOnGarbage(t *testing.T) {
	if exp := tokenExpiry("not-a-jwt"); !exp.IsZero() {
		t.Fatalf("garbage token produced expiry %v", exp)
	}
}
