package state

import (
	"database/sql"
	"fmt"
)

// Persisted keys. KeyLastReminder dedups reminder notifications per
// (date, hour) bucket; KeyRemindersEnabled caches the profile flag for the
// daemon between profile fetches.
const (
	KeyToken            = "token"
	KeyUsername         = "username"
	KeyTheme            = "theme"
	KeyLastReminder     = "last_meal_notification"
	KeyRemindersEnabled = "reminders_enabled"
)

type Session struct {
	Token    string
	Username string
}

// SaveSession stores the bearer token and username after login/register.
func SaveSession(db *sql.DB, token, username string) error {
	if token == "" {
		return fmt.Errorf("session token is required")
	}
	if err := Set(db, KeyToken, token); err != nil {
		return err
	}
	return Set(db, KeyUsername, username)
}

// CurrentSession reports whether a session exists. Token presence is the
// whole authentication check; validity is only known once the API rejects.
func CurrentSession(db *sql.DB) (Session, bool, error) {
	token, ok, err := Get(db, KeyToken)
	if err != nil || !ok || token == "" {
		return Session{}, false, err
	}
	username, _, err := Get(db, KeyUsername)
	if err != nil {
		return Session{}, false, err
	}
	return Session{Token: token, Username: username}, true, nil
}

// OptimisticSet writes the new value, runs the remote commit, and restores
// the prior value when the commit fails. Single-writer, so snapshot/restore
// is race-free.
func OptimisticSet(db *sql.DB, key, value string, commit func() error) error {
	prior, existed, err := Get(db, key)
	if err != nil {
		return err
	}
	if err := Set(db, key, value); err != nil {
		return err
	}
	if err := commit(); err != nil {
		if existed {
			if revertErr := Set(db, key, prior); revertErr != nil {
				return fmt.Errorf("%w (revert failed: %v)", err, revertErr)
			}
		} else if revertErr := Delete(db, key); revertErr != nil {
			return fmt.Errorf("%w (revert failed: %v)", err, revertErr)
		}
		return err
	}
	return nil
}
