// Command hashpw prints the bcrypt hash for a coach password, for use as
// COACH_PASSWORD_HASH.
//
//	go run ./cmd/hashpw 'my-password'
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nekogravitycat/tennis-scheduling-backend/internal/auth"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <password>", os.Args[0])
	}

	hasher := auth.NewBcryptPasswordHasher()
	hash, err := hasher.Hash(os.Args[1])
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	fmt.Println(hash)
}
