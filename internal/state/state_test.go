package state

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func openTestState(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("open state: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := ApplyMigrations(db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

func TestMigrationsIdempotent(t *testing.T) {
	db := openTestState(t)
	if err := ApplyMigrations(db); err != nil {
		t.Fatalf("second migration run: %v", err)
	}
}

func TestSetGetOverwrite(t *testing.T) {
	db := openTestState(t)

	if err := Set(db, KeyTheme, "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := Get(db, KeyTheme)
	if err != nil || !ok || v != "dark" {
		t.Fatalf("get = %q %v %v", v, ok, err)
	}

	if err := Set(db, KeyTheme, "light"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = Get(db, KeyTheme)
	if v != "light" {
		t.Fatalf("overwrite not applied: %q", v)
	}

	_, ok, err = Get(db, "missing")
	if err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	db := openTestState(t)

	if _, ok, _ := CurrentSession(db); ok {
		t.Fatalf("expected no session in fresh store")
	}
	if err := SaveSession(db, "tok-9", "sam"); err != nil {
		t.Fatalf("save session: %v", err)
	}
	sess, ok, err := CurrentSession(db)
	if err != nil || !ok {
		t.Fatalf("current session: ok=%v err=%v", ok, err)
	}
	if sess.Token != "tok-9" || sess.Username != "sam" {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if err := SaveSession(db, "", "sam"); err == nil {
		t.Fatalf("expected error for empty token")
	}
}

func TestClearAllRemovesEveryKey(t *testing.T) {
	db := openTestState(t)

	for _, kv := range [][2]string{
		{KeyToken, "tok"},
		{KeyUsername, "sam"},
		{KeyTheme, "dark"},
		{KeyLastReminder, "2026-08-31T13"},
	} {
		if err := Set(db, kv[0], kv[1]); err != nil {
			t.Fatalf("seed %s: %v", kv[0], err)
		}
	}
	if err := ClearAll(db); err != nil {
		t.Fatalf("clear: %v", err)
	}
	all, err := List(db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("keys survived clear: %v", all)
	}
	if _, ok, _ := CurrentSession(db); ok {
		t.Fatalf("session survived clear")
	}
}

func TestOptimisticSetRevertsOnFailure(t *testing.T) {
	db := openTestState(t)

	if err := Set(db, KeyRemindersEnabled, "false"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	remoteErr := errors.New("remote write failed")
	err := OptimisticSet(db, KeyRemindersEnabled, "true", func() error { return remoteErr })
	if !errors.Is(err, remoteErr) {
		t.Fatalf("expected remote error, got %v", err)
	}
	v, _, _ := Get(db, KeyRemindersEnabled)
	if v != "false" {
		t.Fatalf("value not reverted: %q", v)
	}

	// Success path keeps the new value.
	if err := OptimisticSet(db, KeyRemindersEnabled, "true", func() error { return nil }); err != nil {
		t.Fatalf("optimistic set: %v", err)
	}
	v, _, _ = Get(db, KeyRemindersEnabled)
	if v != "true" {
		t.Fatalf("value not kept: %q", v)
	}

	// A key absent before the attempt is deleted again on revert.
	err = OptimisticSet(db, "scratch", "x", func() error { return remoteErr })
	if !errors.Is(err, remoteErr) {
		t.Fatalf("expected remote error, got %v", err)
	}
	if _, ok, _ := Get(db, "scratch"); ok {
		t.Fatalf("absent key not removed on revert")
	}
}
