package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice@example.com", "member")
	env.register(t, "bob@example.com", "member")

	t.Run("get returns the registered data", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/profile", alice, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			FullName         string  `json:"full_name"`
			Email            string  `json:"email"`
			Role             string  `json:"role"`
			MembershipExpiry *string `json:"membership_expiry"`
		}
		decode(t, w, &resp)
		assert.Equal(t, "Test User", resp.FullName)
		assert.Equal(t, "alice@example.com", resp.Email)
		assert.Equal(t, "member", resp.Role)
		assert.NotNil(t, resp.MembershipExpiry)
	})

	t.Run("update changes name and address", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/profile", alice, gin.H{
			"fullName": "Alice Renamed",
			"email":    "alice@example.com",
			"phone":    "5550199",
			"address":  "12 Library Lane",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = env.do(t, http.MethodGet, "/api/profile", alice, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			FullName string `json:"full_name"`
			Address  string `json:"address"`
		}
		decode(t, w, &resp)
		assert.Equal(t, "Alice Renamed", resp.FullName)
		assert.Equal(t, "12 Library Lane", resp.Address)
	})

	t.Run("cannot take another user's email", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/profile", alice, gin.H{
			"fullName": "Alice",
			"email":    "bob@example.com",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Error string `json:"error"`
		}
		decode(t, w, &resp)
		assert.Equal(t, "Email already exists", resp.Error)
	})

	t.Run("keeping your own email is fine", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/profile", alice, gin.H{
			"fullName": "Alice",
			"email":    "alice@example.com",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
