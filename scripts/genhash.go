package main

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Generates bcrypt hashes for the demo accounts used when seeding a
// development database. Run with: go run scripts/genhash.go
func main() {
	passwords := map[string]string{
		"demo.student": "Student@2024!",
		"demo.alumni":  "Alumni@2024!",
		"demo.faculty": "Faculty@2024!",
	}

	for user, pass := range passwords {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), 12)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("User: %s\nPassword: %s\nHash: %s\n\n", user, pass, string(hash))
	}
}
