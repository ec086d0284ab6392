package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/you/regsvc/domain"
)

// CredentialsServiceImpl implements domain.CredentialChecker
type CredentialsServiceImpl struct{}

// NewCredentialsService creates a new credential checker
func NewCredentialsService() domain.CredentialChecker {
	return &CredentialsServiceImpl{}
}

// Verify implements domain.CredentialChecker. When the configured
// secret is a bcrypt hash it is verified as such; otherwise the two
// values are compared in constant time.
func (c *CredentialsServiceImpl) Verify(configured, submitted string) bool {
	if configured == "" {
		return false
	}
	if strings.HasPrefix(configured, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(submitted)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(submitted)) == 1
}
