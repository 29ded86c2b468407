package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/llum/portfolio-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestCategoryHandler_Create_DerivesSlug(t *testing.T) {
	env := setupTestEnv(t)
	owner := createTestOwner(t, env.db)

	w := env.doRequest(t, http.MethodPost, "/categories", map[string]any{
		"name": "Stories",
	}, tokenFor(t, owner.ID))

	require.Equal(t, http.StatusCreated, w.Code)

	var category models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))
	require.Equal(t, "Stories", category.Name)
	require.Equal(t, "stories", category.Slug)
	require.Equal(t, owner.ID, category.UserID)
	require.Equal(t, 0, category.DisplayOrder)
}

func TestCategoryHandler_Create_RequiresToken(t *testing.T) {
	env := setupTestEnv(t)
	createTestOwner(t, env.db)

	w := env.doRequest(t, http.MethodPost, "/categories", map[string]any{
		"name": "Stories",
	}, "")

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Category{}).Count(&count).Error)
	require.Zero(t, count, "rejected request must not change state")
}

func TestCategoryHandler_Create_DuplicateSlugConflicts(t *testing.T) {
	env := setupTestEnv(t)
	owner := createTestOwner(t, env.db)
	token := tokenFor(t, owner.ID)

	first := env.doRequest(t, http.MethodPost, "/categories", map[string]any{"name": "Stories"}, token)
	require.Equal(t, http.StatusCreated, first.Code)

	// "Stories!" slugs to "stories" as well.
	second := env.doRequest(t, http.MethodPost, "/categories", map[string]any{"name": "Stories!"}, token)
	require.Equal(t, http.StatusConflict, second.Code)
}

func TestCategoryHandler_Create_ValidationEnumeratesAllFields(t *testing.T) {
	env := setupTestEnv(t)
	owner := createTestOwner(t, env.db)

	longDescription := make([]byte, 501)
	for i := range longDescription {
		longDescription[i] = 'a'
	}

	w := env.doRequest(t, http.MethodPost, "/categories", map[string]any{
		"name":        "",
		"description": string(longDescription),
		"order":       -1,
	}, tokenFor(t, owner.ID))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Code    string `json:"code"`
		Details []struct {
			Field string `json:"field"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "INVALID_INPUT", response.Code)

	fields := make([]string, len(response.Details))
	for i, d := range response.Details {
		fields[i] = d.Field
	}
	require.ElementsMatch(t, []string{"name", "description", "order"}, fields)
}

func TestCategoryHandler_Update_RenameRegeneratesSlug(t *testing.T) {
	env := setupTestEnv(t)
	owner := createTestOwner(t, env.db)
	token := tokenFor(t, owner.ID)

	w := env.doRequest(t, http.MethodPost, "/categories", map[string]any{"name": "Stories"}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	var category models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))

	w = env.doRequest(t, http.MethodPatch, fmt.Sprintf("/categories/%d", category.ID), map[string]any{
		"name": "Travel Diaries",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "travel-diaries", updated.Slug)

	// The old slug is gone; only the new one resolves.
	var stored models.Category
	require.NoError(t, env.db.First(&stored, category.ID).Error)
	require.Equal(t, "travel-diaries", stored.Slug)
}

func TestCategoryHandler_Update_PartialKeepsOmittedFields(t *testing.T) {
	env := setupTestEnv(t)
	owner := createTestOwner(t, env.db)
	token := tokenFor(t, owner.ID)

	w := env.doRequest(t, http.MethodPost, "/categories", map[string]any{
		"name":        "Stories",
		"description": "long form work",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	var category models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))

	// Only order supplied: name, slug and description stay.
	w = env.doRequest(t, http.MethodPatch, fmt.Sprintf("/categories/%d", category.ID), map[string]any{
		"order": 5,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "Stories", updated.Name)
	require.Equal(t, "stories", updated.Slug)
	require.NotNil(t, updated.Description)
	require.Equal(t, "long form work", *updated.Description)
	require.Equal(t, 5, updated.DisplayOrder)

	// Explicit null clears the nullable description.
	w = env.doRequest(t, http.MethodPatch, fmt.Sprintf("/categories/%d", category.ID), map[string]any{
		"description": nil,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Nil(t, updated.Description)
}

func TestCategoryHandler_Mutation_WrongOwnerForbidden(t *testing.T) {
	env := setupTestEnv(t)
	owner := createTestOwner(t, env.db)
	intruder := createTestUser(t, env.db, "Intruder", "intruder@example.com")

	w := env.doRequest(t, http.MethodPost, "/categories", map[string]any{"name": "Stories"}, tokenFor(t, owner.ID))
	require.Equal(t, http.StatusCreated, w.Code)
	var category models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))

	update := env.doRequest(t, http.MethodPatch, fmt.Sprintf("/categories/%d", category.ID), map[string]any{
		"name": "Mine Now",
	}, tokenFor(t, intruder.ID))
	require.Equal(t, http.StatusForbidden, update.Code)

	del := env.doRequest(t, http.MethodDelete, fmt.Sprintf("/categories/%d", category.ID), nil, tokenFor(t, intruder.ID))
	require.Equal(t, http.StatusForbidden, del.Code)

	var stored models.Category
	require.NoError(t, env.db.First(&stored, category.ID).Error)
	require.Equal(t, "Stories", stored.Name)
}

func TestCategoryHandler_ListByUser_Ordering(t *testing.T) {
	env := setupTestEnv(t)
	owner := createTestOwner(t, env.db)

	// Duplicate order values tie-break by ID ascending; gaps are kept.
	seed := []models.Category{
		{UserID: owner.ID, Name: "C", Slug: "c", DisplayOrder: 2},
		{UserID: owner.ID, Name: "A", Slug: "a", DisplayOrder: 0},
		{UserID: owner.ID, Name: "B", Slug: "b", DisplayOrder: 0},
		{UserID: owner.ID, Name: "D", Slug: "d", DisplayOrder: 9},
	}
	for i := range seed {
		require.NoError(t, env.db.Create(&seed[i]).Error)
	}

	w := env.doRequest(t, http.MethodGet, fmt.Sprintf("/users/%d/categories", owner.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 4)

	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	require.Equal(t, []string{"A", "B", "C", "D"}, names)
}

func TestCategoryHandler_ListByUser_UnknownUser(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doRequest(t, http.MethodGet, "/users/999/categories", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryHandler_InvalidIDParam(t *testing.T) {
	env := setupTestEnv(t)
	owner := createTestOwner(t, env.db)

	w := env.doRequest(t, http.MethodDelete, "/categories/abc", nil, tokenFor(t, owner.ID))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doRequest(t, http.MethodDelete, "/categories/0", nil, tokenFor(t, owner.ID))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoryHandler_Delete_Cascades(t *testing.T) {
	env := setupTestEnv(t)
	owner := createTestOwner(t, env.db)
	token := tokenFor(t, owner.ID)

	category := models.Category{UserID: owner.ID, Name: "Stories", Slug: "stories"}
	require.NoError(t, env.db.Create(&category).Error)
	work := models.Work{UserID: owner.ID, CategoryID: category.ID, Title: "Reflection"}
	require.NoError(t, env.db.Create(&work).Error)
	section := models.WorkSection{WorkID: work.ID, Type: models.SectionTextOnly}
	require.NoError(t, env.db.Create(&section).Error)
	image := models.WorkSectionImage{WorkSectionID: section.ID, ImageURL: "https://img.example.com/1.jpg"}
	require.NoError(t, env.db.Create(&image).Error)

	w := env.doRequest(t, http.MethodDelete, fmt.Sprintf("/categories/%d", category.ID), nil, token)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())

	for _, model := range []any{
		&models.Category{},
		&models.Work{},
		&models.WorkSection{},
		&models.WorkSectionImage{},
	} {
		var count int64
		require.NoError(t, env.db.Model(model).Count(&count).Error)
		require.Zero(t, count, "expected cascade to remove %T rows", model)
	}
}
