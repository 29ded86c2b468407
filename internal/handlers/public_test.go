package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/llum/portfolio-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestPublicHandler_GetUser(t *testing.T) {
	env := setupTestEnv(t)

	bio := "Photographer based in Barcelona."
	owner := createTestOwner(t, env.db)
	owner.Bio = &bio
	require.NoError(t, env.db.Save(owner).Error)

	// Another account must not shadow the configured owner.
	createTestUser(t, env.db, "Other", "other@example.com")

	w := env.doRequest(t, http.MethodGet, "/public/user", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.EqualValues(t, owner.ID, payload["id"])
	require.Equal(t, "Owner", payload["name"])
	require.Equal(t, bio, payload["bio"])

	// Credentials never leave the server.
	require.NotContains(t, payload, "email")
	require.NotContains(t, payload, "password_hash")
	require.NotContains(t, w.Body.String(), testOwnerEmail)
}

func TestPublicHandler_GetUser_NoOwnerProvisioned(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doRequest(t, http.MethodGet, "/public/user", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicHandler_ListCategories(t *testing.T) {
	env := setupTestEnv(t)
	owner := createTestOwner(t, env.db)
	other := createTestUser(t, env.db, "Other", "other@example.com")

	seed := []models.Category{
		{UserID: owner.ID, Name: "Portraits", Slug: "portraits", DisplayOrder: 1},
		{UserID: owner.ID, Name: "Stories", Slug: "stories", DisplayOrder: 0},
		{UserID: other.ID, Name: "Hidden", Slug: "hidden", DisplayOrder: 0},
	}
	for i := range seed {
		require.NoError(t, env.db.Create(&seed[i]).Error)
	}

	w := env.doRequest(t, http.MethodGet, "/public/categories", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var categories []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 2)
	require.Equal(t, "Stories", categories[0]["name"])
	require.Equal(t, "Portraits", categories[1]["name"])

	// The public projection carries only navigation fields.
	for _, category := range categories {
		require.NotContains(t, category, "user_id")
		require.NotContains(t, category, "description")
	}
}

func TestPublicHandler_ListCategories_NoOwner(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doRequest(t, http.MethodGet, "/public/categories", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, "[]", w.Body.String())
}
