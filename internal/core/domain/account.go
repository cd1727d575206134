package domain

// Account is the caller identity resolved by the Account Directory.
// Everything else about accounts lives outside this system.
type Account struct {
	ID       UserID
	Username string
}
