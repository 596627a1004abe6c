package domain

import "time"

type User struct {
	Username     string     `json:"username"`
	Password     string     `json:"-"`
	Accounts     []*Account `json:"accounts"`
	RegisteredAt time.Time  `json:"registered_at"`
}

func (u *User) CheckPassword(password string) bool {
	return u.Password == password
}

func (u *User) AddAccount(a *Account) {
	u.Accounts = append(u.Accounts, a)
}

// Account looks the number up among this user's accounts only.
func (u *User) Account(number int) (*Account, bool) {
	for _, a := range u.Accounts {
		if a.Number == number {
			return a, true
		}
	}
	return nil, false
}
