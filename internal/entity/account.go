package entity

import (
	"github.com/uptrace/bun"
)

// Account is a credentialed login (admin or wall dashboard). Mechanics are
// not accounts; the shop runs on a shared device and the roster is only
// validated, not authenticated.
type Account struct {
	bun.BaseModel `bun:"table:accounts"`

	BasicEntity
	Login    *string `json:"login" bun:"login"`
	Password *string `json:"password" bun:"password"`
	Role     *string `json:"role" bun:"role"`
}
