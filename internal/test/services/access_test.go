package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"heirloom-gallery-backend/internal/models"
	"heirloom-gallery-backend/internal/services"
)

const passwordAlphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func TestGeneratePassword_DefaultLength(t *testing.T) {
	password := services.GeneratePassword(0)
	assert.Len(t, password, services.DefaultPasswordLength)

	password = services.GeneratePassword(-5)
	assert.Len(t, password, services.DefaultPasswordLength)
}

func TestGeneratePassword_CustomLength(t *testing.T) {
	assert.Len(t, services.GeneratePassword(20), 20)
}

func TestGeneratePassword_AlphabetExcludesAmbiguousCharacters(t *testing.T) {
	for i := 0; i < 50; i++ {
		password := services.GeneratePassword(services.DefaultPasswordLength)
		for _, r := range password {
			assert.True(t, strings.ContainsRune(passwordAlphabet, r),
				"password %q contains %q outside the alphabet", password, r)
		}
	}
}

func TestGeneratePassword_Varies(t *testing.T) {
	assert.NotEqual(t, services.GeneratePassword(12), services.GeneratePassword(12))
}

func TestVerifyPassword(t *testing.T) {
	gallery := &models.Gallery{Password: "Xy3kP9mQ2rT7"}

	assert.True(t, services.VerifyPassword(gallery, "Xy3kP9mQ2rT7"))
	assert.False(t, services.VerifyPassword(gallery, "xy3kp9mq2rt7"), "verification is case-sensitive")
	assert.False(t, services.VerifyPassword(gallery, "Xy3kP9mQ2rT7 "))
	assert.False(t, services.VerifyPassword(gallery, ""))
}
