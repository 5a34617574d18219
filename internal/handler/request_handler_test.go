package handler_test

import (
	"net/http"
	"testing"

	"skillswap/backend/internal/database"
	"skillswap/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRequest(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	alice := createTestUser(t, "alice", "a@x.com")
	bob := createTestUser(t, "bob", "b@x.com")

	rr := perform(router, http.MethodPost, "/send-request", "", map[string]interface{}{
		"username": "alice",
		"receiver": "bob",
	})

	require.Equal(t, http.StatusCreated, rr.Code)

	var request models.MatchRequest
	require.NoError(t, database.DB.First(&request).Error)
	assert.Equal(t, alice.ID, request.SenderID)
	assert.Equal(t, bob.ID, request.ReceiverID)
}

func TestSendRequest_ToSelf(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	createTestUser(t, "alice", "a@x.com")

	rr := perform(router, http.MethodPost, "/send-request", "", map[string]interface{}{
		"username": "alice",
		"receiver": "alice",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSendRequest_DuplicatePending(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	createTestUser(t, "alice", "a@x.com")
	createTestUser(t, "bob", "b@x.com")

	input := map[string]interface{}{"username": "alice", "receiver": "bob"}
	require.Equal(t, http.StatusCreated, perform(router, http.MethodPost, "/send-request", "", input).Code)

	rr := perform(router, http.MethodPost, "/send-request", "", input)
	assert.Equal(t, http.StatusConflict, rr.Code)

	var count int64
	database.DB.Model(&models.MatchRequest{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestFetchRequests(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	alice := createTestUser(t, "alice", "a@x.com")
	bob := createTestUser(t, "bob", "b@x.com")
	carol := createTestUser(t, "carol", "c@x.com")

	require.NoError(t, database.DB.Create(&models.MatchRequest{SenderID: alice.ID, ReceiverID: bob.ID}).Error)
	require.NoError(t, database.DB.Create(&models.MatchRequest{SenderID: carol.ID, ReceiverID: alice.ID}).Error)

	rr := perform(router, http.MethodGet, "/fetch-requests?user=alice", tokenFor(t, "alice"), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.ElementsMatch(t, []interface{}{"bob"}, body["sent"])
	assert.ElementsMatch(t, []interface{}{"carol"}, body["received"])
}

func TestFetchRequests_EmptyListsAreArrays(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	createTestUser(t, "alice", "a@x.com")

	rr := perform(router, http.MethodGet, "/fetch-requests", tokenFor(t, "alice"), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.NotNil(t, body["sent"])
	assert.NotNil(t, body["received"])
}

func TestFetchRequests_MismatchedUserParam(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	createTestUser(t, "alice", "a@x.com")
	createTestUser(t, "bob", "b@x.com")

	rr := perform(router, http.MethodGet, "/fetch-requests?user=bob", tokenFor(t, "alice"), nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestFetchRequests_NoToken(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	rr := perform(router, http.MethodGet, "/fetch-requests?user=alice", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRemoveAllMatchRequests_OnlyDeletesSent(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	alice := createTestUser(t, "alice", "a@x.com")
	bob := createTestUser(t, "bob", "b@x.com")
	carol := createTestUser(t, "carol", "c@x.com")

	require.NoError(t, database.DB.Create(&models.MatchRequest{SenderID: alice.ID, ReceiverID: bob.ID}).Error)
	require.NoError(t, database.DB.Create(&models.MatchRequest{SenderID: alice.ID, ReceiverID: carol.ID}).Error)
	require.NoError(t, database.DB.Create(&models.MatchRequest{SenderID: bob.ID, ReceiverID: alice.ID}).Error)

	rr := perform(router, http.MethodDelete, "/remove-all-match-requests?username=alice", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.EqualValues(t, 2, body["removed"])

	// Requests where alice is the receiver are untouched.
	var remaining []models.MatchRequest
	require.NoError(t, database.DB.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, bob.ID, remaining[0].SenderID)
	assert.Equal(t, alice.ID, remaining[0].ReceiverID)
}
