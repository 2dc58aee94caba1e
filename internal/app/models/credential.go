package models

// Credential is an auth record keyed by email, one-to-one with a student
// or teacher profile. Admin credentials carry no profile row.
type Credential struct {
	Email       string `json:"email" db:"email"`
	PasswordEnc string `json:"-" db:"password_enc"`
	Role        Role   `json:"role" db:"role"`
}
