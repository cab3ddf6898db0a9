package record

import "time"

// Account is a stored user identity. The username partitions every other
// collection in the store.
type Account struct {
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session is the transient authenticated-user marker. It is remembered
// between runs under its own key but is not itself data of record.
type Session struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Authenticated bool   `json:"authenticated"`
}

// LocalUser is the implicit identity used when nobody is logged in.
const LocalUser = "local"
