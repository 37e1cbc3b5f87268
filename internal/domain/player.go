package domain

import "fmt"

// ValidatePlayerID checks that id is usable as a save slot key in every
// store: 1-64 characters of letters, digits, '-' or '_'.
func ValidatePlayerID(id string) error {
	if id == "" || len(id) > MaxPlayerIDLength {
		return fmt.Errorf("%w: length must be 1-%d", ErrInvalidPlayerID, MaxPlayerIDLength)
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: unexpected character %q", ErrInvalidPlayerID, r)
		}
	}
	return nil
}
