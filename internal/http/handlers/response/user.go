package response

import (
	"inventory/internal/core/domain/user"
)

type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Name = du.Name
	u.Email = string(du.Email)
	u.CreatedAt = du.CreatedAt.UTC().Format(TIME_FORMAT)
	u.UpdatedAt = du.UpdatedAt.UTC().Format(TIME_FORMAT)
}
