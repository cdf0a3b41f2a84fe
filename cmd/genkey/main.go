package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
)

// Generates a random JWT signing secret suitable for the JWT_SECRET
// environment variable. An optional argument sets the byte length.
func main() {
	size := 32
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 32 {
			fmt.Fprintln(os.Stderr, "usage: genkey [bytes >= 32]")
			os.Exit(1)
		}
		size = n
	}

	secret := make([]byte, size)
	if _, err := rand.Read(secret); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Printf("JWT_SECRET=%s\n", base64.RawURLEncoding.EncodeToString(secret))
}
