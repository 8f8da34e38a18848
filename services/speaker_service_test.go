package services

import (
	"testing"

	"event-feedback-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSpeakerWithAddress(t *testing.T) {
	db := newTestDB(t)
	speakers := NewSpeakerService(db, newTestConfig())

	speaker, err := speakers.Create(SpeakerInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "555-0100",
		Street:    "12 Analytical Way",
		City:      "London",
		State:     "LN",
		Zip:       "00001",
	})
	require.NoError(t, err)
	require.NotZero(t, speaker.ID)
	assert.Equal(t, "Ada Lovelace", speaker.Name())

	var address models.Address
	require.NoError(t, db.Where("speaker_id = ?", speaker.ID).First(&address).Error)
	assert.Equal(t, "12 Analytical Way", address.Street)
	assert.Nil(t, address.EventID)
}

func TestGetSpeakerLoadsRelations(t *testing.T) {
	db := newTestDB(t)
	speakers := NewSpeakerService(db, newTestConfig())

	created, err := speakers.Create(SpeakerInput{
		FirstName: "Grace", LastName: "Hopper",
		Email: "grace@example.com", Phone: "555-0101",
		Street: "1 Navy Yard", City: "Arlington", State: "VA", Zip: "22202",
	})
	require.NoError(t, err)

	author := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	mustCreate(t, db, author)
	require.NoError(t, speakers.AddComment(created.ID, author.ID, "inspiring"))

	got, err := speakers.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "1 Navy Yard", got.Address.Street)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "inspiring", got.Comments[0].Body)
	assert.Equal(t, "alice", got.Comments[0].Author.Username)

	_, err = speakers.GetByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSpeakerListPagesNewestFirst(t *testing.T) {
	db := newTestDB(t)
	speakers := NewSpeakerService(db, newTestConfig()) // two per page

	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		_, err := speakers.Create(SpeakerInput{
			FirstName: name, LastName: "Speaker",
			Email: name + "@example.com", Phone: "555",
			Street: "s", City: "c", State: "st", Zip: "z",
		})
		require.NoError(t, err)
	}

	page1, pg, err := speakers.List(1)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, "Third", page1[0].FirstName)
	assert.Equal(t, "Second", page1[1].FirstName)
	assert.True(t, pg.HasNext())

	page2, pg, err := speakers.List(2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "First", page2[0].FirstName)
	assert.False(t, pg.HasNext())
}

func TestListForSelectOrdersByLastName(t *testing.T) {
	db := newTestDB(t)
	speakers := NewSpeakerService(db, newTestConfig())

	mustCreate(t, db, &models.Speaker{FirstName: "Grace", LastName: "Hopper"})
	mustCreate(t, db, &models.Speaker{FirstName: "Niklaus", LastName: "Wirth"})
	mustCreate(t, db, &models.Speaker{FirstName: "Edsger", LastName: "Dijkstra"})

	all, err := speakers.ListForSelect()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Dijkstra", all[0].LastName)
	assert.Equal(t, "Hopper", all[1].LastName)
	assert.Equal(t, "Wirth", all[2].LastName)
}
