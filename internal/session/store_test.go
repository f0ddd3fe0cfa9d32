package session

import (
	"sync"
	"testing"
)

func TestLoginThenRead(t *testing.T) {
	store := NewStore()

	store.Login("cadet-42", RoleCadet)
	got := store.Read()
	if got.UserID != "cadet-42" || got.Role != RoleCadet {
		t.Errorf("Read after Login: got %+v", got)
	}
	if !got.LoggedIn() {
		t.Error("expected LoggedIn after Login")
	}
}

func TestLogoutClearsBothFields(t *testing.T) {
	store := NewStore()
	store.Login("ano-1", RoleANO)

	store.Logout()
	got := store.Read()
	if got.UserID != "" || got.Role != "" {
		t.Errorf("Read after Logout: got %+v, want both fields empty", got)
	}
	if got.LoggedIn() {
		t.Error("expected logged-out state after Logout")
	}
}

func TestInitialStateIsLoggedOut(t *testing.T) {
	store := NewStore()
	if store.Read().LoggedIn() {
		t.Error("a new store must start logged out")
	}
}

func TestLoginReplacesPreviousSession(t *testing.T) {
	store := NewStore()
	store.Login("cadet-1", RoleCadet)
	store.Login("ano-9", RoleANO)

	got := store.Read()
	if got.UserID != "ano-9" || got.Role != RoleANO {
		t.Errorf("second Login must replace the session, got %+v", got)
	}
}

// The fields must never be observed independently null/non-null, even under
// concurrent login/logout churn.
func TestSessionNeverPartiallySet(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			if i%2 == 0 {
				store.Login("cadet-7", RoleCadet)
			} else {
				store.Logout()
			}
		}
	}()

	for i := 0; i < 1000; i++ {
		got := store.Read()
		if (got.UserID == "") != (got.Role == "") {
			t.Fatalf("partially set session observed: %+v", got)
		}
	}
	close(stop)
	wg.Wait()
}
