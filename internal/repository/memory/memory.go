package memory

import (
	"console_bank/internal/repository"
)

var (
	_ repository.UserRepository = (*UserRepository)(nil)
)
