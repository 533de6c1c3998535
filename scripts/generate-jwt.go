//go:build ignore

// Generates an admin bearer token for the domain-of-the-day endpoints.
// Run with: go run scripts/generate-jwt.go
//
// Environment:
//
//	JWT_SECRET  signing secret, must match auth.jwt_secret in config.yaml
//	JWT_ISSUER  optional issuer, must match auth.jwt_issuer when set
//	JWT_SUBJECT token subject, defaults to "admin"
package main

import (
	"fmt"
	"os"

	"github.com/mainalysis/domain-analyzer/pkg/auth"
)

func main() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is required")
		os.Exit(1)
	}

	subject := os.Getenv("JWT_SUBJECT")
	if subject == "" {
		subject = "admin"
	}

	verifier := auth.NewTokenVerifier(secret, os.Getenv("JWT_ISSUER"))
	token, err := verifier.SignToken(subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to sign token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
