package itinerary

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-travel-assistant/internal/types"
)

// MockItineraryRepo is a mock implementation of the Repository interface
type MockItineraryRepo struct {
	mock.Mock
}

func (m *MockItineraryRepo) CreateItinerary(ctx context.Context, preferences types.ItineraryPreferences) (*types.Itinerary, error) {
	args := m.Called(ctx, preferences)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Itinerary), args.Error(1)
}

func (m *MockItineraryRepo) GetItinerary(ctx context.Context, itineraryID uuid.UUID) (*types.Itinerary, error) {
	args := m.Called(ctx, itineraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Itinerary), args.Error(1)
}

func (m *MockItineraryRepo) UpdateGeneratedContent(ctx context.Context, itineraryID uuid.UUID, content *types.GeneratedItinerary, status types.ItineraryStatus) (*types.Itinerary, error) {
	args := m.Called(ctx, itineraryID, content, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Itinerary), args.Error(1)
}

func (m *MockItineraryRepo) UpdateStatus(ctx context.Context, itineraryID uuid.UUID, status types.ItineraryStatus) (*types.Itinerary, error) {
	args := m.Called(ctx, itineraryID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Itinerary), args.Error(1)
}

// MockGenerator is a mock implementation of the generativeAI.Generator interface
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateStructuredContent(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDraft(id uuid.UUID) *types.Itinerary {
	return &types.Itinerary{
		ID: id,
		Preferences: types.ItineraryPreferences{
			Location:  "Lisbon",
			StartDate: "2026-09-01",
			EndDate:   "2026-09-03",
		},
		Status:    types.ItineraryStatusDraft,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestCreateItinerary(t *testing.T) {
	ctx := context.Background()
	prefs := types.ItineraryPreferences{Location: "Lisbon"}

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		repo := new(MockItineraryRepo)
		repo.On("CreateItinerary", mock.Anything, prefs).
			Return(&types.Itinerary{ID: id, Preferences: prefs, Status: types.ItineraryStatusDraft}, nil)

		service := NewServiceImpl(repo, new(MockGenerator), testLogger())
		itinerary, err := service.CreateItinerary(ctx, prefs)

		require.NoError(t, err)
		assert.Equal(t, id, itinerary.ID)
		assert.Equal(t, types.ItineraryStatusDraft, itinerary.Status)
		repo.AssertExpectations(t)
	})

	t.Run("Repository error surfaces", func(t *testing.T) {
		repo := new(MockItineraryRepo)
		repo.On("CreateItinerary", mock.Anything, prefs).Return(nil, errors.New("db down"))

		service := NewServiceImpl(repo, new(MockGenerator), testLogger())
		itinerary, err := service.CreateItinerary(ctx, prefs)

		assert.Nil(t, itinerary)
		assert.Error(t, err)
	})
}

func TestGenerateItinerary(t *testing.T) {
	ctx := context.Background()

	t.Run("Success transitions to generated", func(t *testing.T) {
		id := uuid.New()
		repo := new(MockItineraryRepo)
		generator := new(MockGenerator)

		draft := testDraft(id)
		repo.On("GetItinerary", mock.Anything, id).Return(draft, nil)
		generator.On("GenerateStructuredContent", mock.Anything, itinerarySystemPrompt, mock.Anything).
			Return(validItineraryJSON, nil)
		repo.On("UpdateGeneratedContent", mock.Anything, id, mock.AnythingOfType("*types.GeneratedItinerary"), types.ItineraryStatusGenerated).
			Return(&types.Itinerary{ID: id, Status: types.ItineraryStatusGenerated}, nil)

		service := NewServiceImpl(repo, generator, testLogger())
		itinerary, err := service.GenerateItinerary(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, types.ItineraryStatusGenerated, itinerary.Status)
		repo.AssertExpectations(t)
		generator.AssertExpectations(t)
	})

	t.Run("Prompt embeds the stored preferences", func(t *testing.T) {
		id := uuid.New()
		repo := new(MockItineraryRepo)
		generator := new(MockGenerator)

		repo.On("GetItinerary", mock.Anything, id).Return(testDraft(id), nil)
		generator.On("GenerateStructuredContent", mock.Anything, itinerarySystemPrompt, mock.MatchedBy(func(prompt string) bool {
			return containsAll(prompt, "Lisbon", "2026-09-01", "2026-09-03")
		})).Return(validItineraryJSON, nil)
		repo.On("UpdateGeneratedContent", mock.Anything, id, mock.Anything, types.ItineraryStatusGenerated).
			Return(&types.Itinerary{ID: id, Status: types.ItineraryStatusGenerated}, nil)

		service := NewServiceImpl(repo, generator, testLogger())
		_, err := service.GenerateItinerary(ctx, id)

		require.NoError(t, err)
		generator.AssertExpectations(t)
	})

	t.Run("Regeneration on generated record overwrites", func(t *testing.T) {
		id := uuid.New()
		repo := new(MockItineraryRepo)
		generator := new(MockGenerator)

		existing := testDraft(id)
		existing.Status = types.ItineraryStatusGenerated
		existing.GeneratedContent = &types.GeneratedItinerary{Title: "Old Trip"}
		repo.On("GetItinerary", mock.Anything, id).Return(existing, nil)
		generator.On("GenerateStructuredContent", mock.Anything, mock.Anything, mock.Anything).
			Return(validItineraryJSON, nil)
		repo.On("UpdateGeneratedContent", mock.Anything, id, mock.Anything, types.ItineraryStatusGenerated).
			Return(&types.Itinerary{ID: id, Status: types.ItineraryStatusGenerated}, nil)

		service := NewServiceImpl(repo, generator, testLogger())
		_, err := service.GenerateItinerary(ctx, id)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Saved record refuses regeneration", func(t *testing.T) {
		id := uuid.New()
		repo := new(MockItineraryRepo)
		generator := new(MockGenerator)

		saved := testDraft(id)
		saved.Status = types.ItineraryStatusSaved
		repo.On("GetItinerary", mock.Anything, id).Return(saved, nil)

		service := NewServiceImpl(repo, generator, testLogger())
		itinerary, err := service.GenerateItinerary(ctx, id)

		assert.Nil(t, itinerary)
		assert.ErrorIs(t, err, types.ErrItinerarySaved)
		generator.AssertNotCalled(t, "GenerateStructuredContent", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "UpdateGeneratedContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown record surfaces not found", func(t *testing.T) {
		id := uuid.New()
		repo := new(MockItineraryRepo)
		repo.On("GetItinerary", mock.Anything, id).Return(nil, types.ErrItineraryNotFound)

		service := NewServiceImpl(repo, new(MockGenerator), testLogger())
		_, err := service.GenerateItinerary(ctx, id)

		assert.ErrorIs(t, err, types.ErrItineraryNotFound)
	})

	t.Run("Generator failure leaves record untouched", func(t *testing.T) {
		id := uuid.New()
		repo := new(MockItineraryRepo)
		generator := new(MockGenerator)

		repo.On("GetItinerary", mock.Anything, id).Return(testDraft(id), nil)
		generator.On("GenerateStructuredContent", mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("model overloaded"))

		service := NewServiceImpl(repo, generator, testLogger())
		itinerary, err := service.GenerateItinerary(ctx, id)

		assert.Nil(t, itinerary)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "UpdateGeneratedContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Malformed response leaves record untouched", func(t *testing.T) {
		id := uuid.New()
		repo := new(MockItineraryRepo)
		generator := new(MockGenerator)

		repo.On("GetItinerary", mock.Anything, id).Return(testDraft(id), nil)
		generator.On("GenerateStructuredContent", mock.Anything, mock.Anything, mock.Anything).
			Return("this is not json", nil)

		service := NewServiceImpl(repo, generator, testLogger())
		itinerary, err := service.GenerateItinerary(ctx, id)

		assert.Nil(t, itinerary)
		assert.ErrorIs(t, err, types.ErrMalformedResponse)
		repo.AssertNotCalled(t, "UpdateGeneratedContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSaveItinerary(t *testing.T) {
	ctx := context.Background()

	t.Run("Pass-through to saved", func(t *testing.T) {
		id := uuid.New()
		repo := new(MockItineraryRepo)
		repo.On("UpdateStatus", mock.Anything, id, types.ItineraryStatusSaved).
			Return(&types.Itinerary{ID: id, Status: types.ItineraryStatusSaved}, nil)

		service := NewServiceImpl(repo, new(MockGenerator), testLogger())
		itinerary, err := service.SaveItinerary(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, types.ItineraryStatusSaved, itinerary.Status)
		repo.AssertExpectations(t)
	})

	t.Run("Unknown record surfaces not found", func(t *testing.T) {
		id := uuid.New()
		repo := new(MockItineraryRepo)
		repo.On("UpdateStatus", mock.Anything, id, types.ItineraryStatusSaved).
			Return(nil, types.ErrItineraryNotFound)

		service := NewServiceImpl(repo, new(MockGenerator), testLogger())
		_, err := service.SaveItinerary(ctx, id)

		assert.ErrorIs(t, err, types.ErrItineraryNotFound)
	})
}

func containsAll(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
