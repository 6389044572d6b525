package utils

import (
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

func bcryptCost() int {
	cost, err := strconv.Atoi(os.Getenv("BCRYPT_ROUNDS"))
	if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return 10
	}
	return cost
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost())
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}
